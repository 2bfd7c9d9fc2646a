package lexer

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/phpfmt/internal/i18n"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// Lexer - 词法分析器
// ============================================================================
//
// 词法分析器负责将源代码转换为 Token 序列，单遍扫描，按以下模式切换：
//
// 1. 内联模式：标签之外的原始文本，直到遇到 <?php、<?= 或 <%
// 2. 代码模式：按首字符分派，运算符按最长匹配消歧
// 3. 字符串模式：单引号、双引号与反引号，双引号与反引号支持插值
// 4. heredoc/nowdoc 模式：以标签行结束的多行字符串
//
// 遇到无法识别的字符时立即停止并返回错误。
//
// ============================================================================

// Mode 起始模式
type Mode int

const (
	// ModeAuto 源码（忽略前导空白）以开标签开头时从内联模式开始，否则从代码模式开始
	ModeAuto Mode = iota
	// ModeInline 从内联模式开始（完整的源文件）
	ModeInline
	// ModeCode 从代码模式开始（代码片段）
	ModeCode
)

// Config 词法器配置
type Config struct {
	Mode    Mode // 起始模式
	ASPTags bool // 是否识别 <% %> 标签
}

// ErrorKind 词法错误类型
type ErrorKind int

const (
	// ErrUnrecognised 无法识别的字符序列
	ErrUnrecognised ErrorKind = iota
	// ErrEOF 在字符串、注释或 heredoc 中间遇到输入结束
	ErrEOF
)

// String 返回错误类型名称
func (k ErrorKind) String() string {
	switch k {
	case ErrUnrecognised:
		return "Unrecognised"
	case ErrEOF:
		return "Eof"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error 表示词法分析错误
type Error struct {
	Kind    ErrorKind      // 错误类型
	Text    string         // 出错的文本
	Pos     token.Position // 错误位置
	Message string         // 错误信息
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Lexer 词法分析器结构体
type Lexer struct {
	ctl    *Control
	cfg    Config
	tokens []token.Token
	inline bool // 当前是否处于内联模式
}

// ============================================================================
// 构造函数
// ============================================================================

// New 创建一个新的词法分析器
func New(source string, cfg Config) *Lexer {
	estimated := len(source) / 5
	if estimated < 16 {
		estimated = 16
	}

	l := &Lexer{
		ctl:    NewControl(source),
		cfg:    cfg,
		tokens: make([]token.Token, 0, estimated),
	}

	switch cfg.Mode {
	case ModeInline:
		l.inline = true
	case ModeAuto:
		l.inline = startsWithOpenTag(source, cfg.ASPTags)
	}
	return l
}

// Lex 对整段源码做词法分析
func Lex(source string, cfg Config) ([]token.Token, error) {
	return New(source, cfg).Tokenize()
}

// startsWithOpenTag 判断源码（忽略前导空白）是否以开标签开头
func startsWithOpenTag(source string, asp bool) bool {
	trimmed := strings.TrimLeft(source, " \t\r\n")
	ctl := NewControl(trimmed)
	if ctl.HasPrefixFold("<?php") || ctl.HasPrefix("<?=") {
		return true
	}
	return asp && ctl.HasPrefix("<%")
}

// ============================================================================
// 公共方法
// ============================================================================

// Tokenize 扫描全部 token
//
// 成功时返回的序列以一个 EOF token 结尾；遇到第一个错误即停止。
func (l *Lexer) Tokenize() ([]token.Token, error) {
	for !l.ctl.EOF() {
		var err error
		if l.inline {
			err = l.scanInline()
		} else {
			err = l.scanToken()
		}
		if err != nil {
			return nil, err
		}
	}

	pos := l.ctl.Position()
	l.tokens = append(l.tokens, token.Token{Type: token.EOF, Pos: pos, End: pos})
	return l.tokens, nil
}

// ============================================================================
// 内联模式
// ============================================================================

// scanInline 读取标签之外的文本，直到遇到开标签或输入结束
func (l *Lexer) scanInline() error {
	patterns := []string{"<?php", "<?="}
	if l.cfg.ASPTags {
		patterns = append(patterns, "<%")
	}
	checker := NewSeriesChecker(patterns, false)

	start := l.ctl.Position()
	from := l.ctl.Offset()

	for {
		ch, ok := l.ctl.Next()
		if !ok {
			if text := l.ctl.Slice(from); text != "" {
				l.tokens = append(l.tokens, token.Token{
					Type: token.INLINE, Literal: text, Pos: start, End: l.ctl.Position(),
				})
			}
			return nil
		}

		p, matched := checker.Push(ch)
		if !matched {
			continue
		}
		if p == "<?php" {
			if next, ok := l.ctl.Peek(); ok && !isSpace(next) {
				continue
			}
		}

		// 标签全是单行 ASCII，可以直接回推位置
		end := l.ctl.Position()
		tagPos := token.Position{Line: end.Line, Column: end.Column - len(p), Offset: end.Offset - len(p)}
		if text := l.ctl.Slice(from)[:l.ctl.Offset()-from-len(p)]; text != "" {
			l.tokens = append(l.tokens, token.Token{
				Type: token.INLINE, Literal: text, Pos: start, End: tagPos,
			})
		}

		typ := token.OPEN_TAG
		literal := p
		switch p {
		case "<?=":
			typ = token.OPEN_TAG_ECHO
		case "<%":
			typ = token.OPEN_TAG_ASP
			if next, ok := l.ctl.Peek(); ok && next == '=' {
				l.ctl.Next()
				typ = token.OPEN_TAG_ECHO
				literal = "<%="
			}
		}
		l.tokens = append(l.tokens, token.Token{
			Type: typ, Literal: literal, Pos: tagPos, End: l.ctl.Position(),
		})
		l.inline = false
		return nil
	}
}

// ============================================================================
// 辅助方法
// ============================================================================

// emit 追加一个从 pos 开始、到当前位置结束的 token
func (l *Lexer) emit(t token.TokenType, literal string, pos token.Position) {
	l.tokens = append(l.tokens, token.Token{
		Type:    t,
		Literal: literal,
		Pos:     pos,
		End:     l.ctl.Position(),
	})
}

// previous 返回最近一个非注释 token
func (l *Lexer) previous() (token.Token, bool) {
	for i := len(l.tokens) - 1; i >= 0; i-- {
		if !token.IsComment(l.tokens[i].Type) {
			return l.tokens[i], true
		}
	}
	return token.Token{}, false
}

// fail 构造词法错误
func (l *Lexer) fail(kind ErrorKind, text string, pos token.Position, msgID string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Text:    text,
		Pos:     pos,
		Message: i18n.T(msgID, args...),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isIdentStart 标识符首字符：字母、下划线或任意非 ASCII 字节
func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
