package parser

import (
	"fmt"

	"github.com/tangzhangming/phpfmt/internal/token"
)

// ErrorKind 语法错误类型
type ErrorKind int

const (
	// ErrUnexpectedToken 当前上下文要求匹配，但没有模块接受这个 token
	ErrUnexpectedToken ErrorKind = iota
	// ErrEOF token 在结构中间耗尽
	ErrEOF
	// ErrInternal test 成功但 parse 无法重建匹配到的结构，表示解析器缺陷
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	case ErrEOF:
		return "Eof"
	case ErrInternal:
		return "Internal"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error 语法分析错误
type Error struct {
	Kind    ErrorKind
	Token   token.Token
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}
