// Package errors 把词法、语法错误整理成带错误码的诊断，并渲染带源码片段的报告
package errors

import (
	stderrors "errors"
	"fmt"
	"unicode/utf8"

	"github.com/tangzhangming/phpfmt/internal/i18n"
	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/parser"
)

// ============================================================================
// 错误级别
// ============================================================================

// Level 错误级别
type Level int

const (
	LevelError   Level = iota // 错误
	LevelWarning              // 警告
	LevelNote                 // 提示
	LevelHelp                 // 帮助
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	case LevelHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ============================================================================
// 错误码
// ============================================================================

const (
	// E0001-E0099: 词法错误
	E0001 = "E0001" // 语法错误（无法归类）
	E0002 = "E0002" // 意外的字符
	E0003 = "E0003" // 字符串、注释或 heredoc 未闭合

	// E0100-E0199: 语法错误
	E0101 = "E0101" // 意外的 token
	E0102 = "E0102" // 意外的输入结束
	E0103 = "E0103" // 解析器内部错误
)

// ============================================================================
// 诊断
// ============================================================================

// Diagnostic 一条定位到源码的诊断
type Diagnostic struct {
	Code    string   // 错误码 (E0101)
	Level   Level    // 错误级别
	Message string   // 主消息
	File    string   // 文件路径
	Line    int      // 行号（从 1 开始）
	Column  int      // 列号（从 1 开始）
	Length  int      // 标注长度（字符数）
	Hints   []string // 修复建议
}

// Error 实现 error 接口
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// FromError 把 *lexer.Error 或 *parser.Error 转成诊断
//
// 其他错误返回 false。
func FromError(file string, err error) (*Diagnostic, bool) {
	var lexErr *lexer.Error
	if stderrors.As(err, &lexErr) {
		code := E0002
		if lexErr.Kind == lexer.ErrEOF {
			code = E0003
		}
		return &Diagnostic{
			Code:    code,
			Level:   LevelError,
			Message: lexErr.Message,
			File:    file,
			Line:    lexErr.Pos.Line,
			Column:  lexErr.Pos.Column + 1,
			Length:  firstLineLen(lexErr.Text),
			Hints:   Suggestions(code),
		}, true
	}

	var parseErr *parser.Error
	if stderrors.As(err, &parseErr) {
		code := E0101
		switch parseErr.Kind {
		case parser.ErrEOF:
			code = E0102
		case parser.ErrInternal:
			code = E0103
		}
		return &Diagnostic{
			Code:    code,
			Level:   LevelError,
			Message: parseErr.Message,
			File:    file,
			Line:    parseErr.Pos.Line,
			Column:  parseErr.Pos.Column + 1,
			Length:  firstLineLen(parseErr.Token.Literal),
			Hints:   Suggestions(code),
		}, true
	}
	return nil, false
}

// Suggestions 返回错误码对应的修复建议
func Suggestions(code string) []string {
	switch code {
	case E0002:
		return []string{i18n.T(i18n.HintUnexpectedChar)}
	case E0003:
		return []string{i18n.T(i18n.HintUnterminated)}
	case E0101:
		return []string{i18n.T(i18n.HintUnexpected)}
	case E0102:
		return []string{i18n.T(i18n.HintUnexpectedEOF)}
	case E0103:
		return []string{i18n.T(i18n.HintInternal)}
	}
	return nil
}

func firstLineLen(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			s = s[:i]
			break
		}
	}
	n := utf8.RuneCountInString(s)
	if n < 1 {
		return 1
	}
	return n
}
