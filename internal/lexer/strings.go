package lexer

import (
	"strings"

	"github.com/tangzhangming/phpfmt/internal/i18n"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 字符串模式
// ============================================================================

// scanSingleQuoted 扫描单引号字符串，Literal 保留引号与转义原文
func (l *Lexer) scanSingleQuoted() error {
	pos := l.ctl.Position()
	from := l.ctl.Offset()
	l.ctl.Next()

	checker := NewSeriesChecker([]string{"'"}, true)
	for {
		ch, ok := l.ctl.Next()
		if !ok {
			return l.fail(ErrEOF, l.ctl.Slice(from), pos, i18n.ErrUnterminatedString)
		}
		if _, matched := checker.Push(ch); matched {
			break
		}
	}

	l.emit(token.STRING, l.ctl.Slice(from), pos)
	return nil
}

// scanDoubleQuoted 扫描双引号或反引号字符串
//
// 没有插值时整体产生一个 STRING；否则产生
// ENCAPSED_STRING_OPEN、若干片段与插值、ENCAPSED_STRING_CLOSE。
func (l *Lexer) scanDoubleQuoted(quote byte) error {
	pos := l.ctl.Position()
	from := l.ctl.Offset()
	first := len(l.tokens)

	l.ctl.Next()
	l.emit(token.ENCAPSED_STRING_OPEN, string(quote), pos)
	if err := l.scanEncapsedBody(quote, ""); err != nil {
		return err
	}

	parts := l.tokens[first:]
	plain := len(parts) == 2 || (len(parts) == 3 && parts[1].Type == token.ENCAPSED_STRING)
	if plain {
		l.tokens = l.tokens[:first]
		l.emit(token.STRING, l.ctl.Slice(from), pos)
	}
	return nil
}

// scanEncapsedBody 扫描插值字符串主体
//
// quote 为 0 时表示 heredoc 主体，以仅含 label 的行结束；此时最后一个换行
// 不属于字符串内容。
func (l *Lexer) scanEncapsedBody(quote byte, label string) error {
	var lit strings.Builder
	var litPos token.Position
	start := l.ctl.Position()

	flush := func() {
		if lit.Len() > 0 {
			l.tokens = append(l.tokens, token.Token{
				Type:    token.ENCAPSED_STRING,
				Literal: lit.String(),
				Pos:     litPos,
				End:     l.ctl.Position(),
			})
			lit.Reset()
		}
	}
	write := func(s string) {
		if lit.Len() == 0 {
			litPos = l.ctl.Position()
		}
		lit.WriteString(s)
	}

	atLineStart := label != ""
	for {
		if atLineStart {
			if n, ok := matchHeredocClose(l.ctl.Rest(), label); ok {
				text := trimFinalNewline(lit.String())
				lit.Reset()
				if text != "" {
					lit.WriteString(text)
				}
				flush()
				closePos := l.ctl.Position()
				closer := l.ctl.Rest()[:n]
				l.ctl.Skip(n)
				l.emit(token.HEREDOC_CLOSE, closer, closePos)
				return nil
			}
			atLineStart = false
		}

		ch, ok := l.ctl.Peek()
		if !ok {
			if label != "" {
				return l.fail(ErrEOF, label, start, i18n.ErrUnterminatedHeredoc, label)
			}
			return l.fail(ErrEOF, string(quote), start, i18n.ErrUnterminatedString)
		}
		next, _ := l.ctl.PeekAt(1)

		switch {
		case quote != 0 && ch == quote:
			flush()
			pos := l.ctl.Position()
			l.ctl.Next()
			l.emit(token.ENCAPSED_STRING_CLOSE, string(quote), pos)
			return nil

		case ch == '\\':
			from := l.ctl.Offset()
			if lit.Len() == 0 {
				litPos = l.ctl.Position()
			}
			l.ctl.Skip(2)
			lit.WriteString(l.ctl.Slice(from))
			if next == '\n' {
				atLineStart = true
			}

		case ch == '$' && isIdentStart(next):
			flush()
			l.scanInterpolatedVariable()

		case ch == '$' && next == '{':
			flush()
			pos := l.ctl.Position()
			l.ctl.Skip(2)
			l.emit(token.ADVANCE_INTERPOLATION_OPEN, "${", pos)
			if err := l.scanInterpolation(); err != nil {
				return err
			}

		case ch == '{' && next == '$':
			flush()
			pos := l.ctl.Position()
			l.ctl.Next()
			l.emit(token.ADVANCE_INTERPOLATION_OPEN, "{", pos)
			if err := l.scanInterpolation(); err != nil {
				return err
			}

		default:
			write(string(ch))
			l.ctl.Next()
			if ch == '\n' {
				atLineStart = label != ""
			}
		}
	}
}

// scanInterpolatedVariable 扫描字符串中的简单插值：$a、$a[0]、$a[key]、$a[$i]、$a->b
func (l *Lexer) scanInterpolatedVariable() {
	pos := l.ctl.Position()
	l.ctl.Next()
	name := l.ctl.NextUntil(func(c byte) bool { return !isIdentChar(c) })
	l.emit(token.VARIABLE, name, pos)

	rest := l.ctl.Rest()
	switch {
	case strings.HasPrefix(rest, "["):
		if n := simpleOffsetLen(rest); n > 0 {
			p := l.ctl.Position()
			l.ctl.Next()
			l.emit(token.LEFT_BRACKET, "[", p)

			p = l.ctl.Position()
			inner := rest[1 : n-1]
			switch {
			case inner[0] == '$':
				l.ctl.Skip(len(inner))
				l.emit(token.VARIABLE, inner[1:], p)
			case inner[0] == '-' || isDigit(inner[0]):
				l.ctl.Skip(len(inner))
				l.emit(token.NUMBER, inner, p)
			default:
				l.ctl.Skip(len(inner))
				l.emit(token.IDENTIFIER, inner, p)
			}

			p = l.ctl.Position()
			l.ctl.Next()
			l.emit(token.RIGHT_BRACKET, "]", p)
		}

	case strings.HasPrefix(rest, "->") && len(rest) > 2 && isIdentStart(rest[2]):
		p := l.ctl.Position()
		l.ctl.Skip(2)
		l.emit(token.ARROW, "->", p)
		p = l.ctl.Position()
		prop := l.ctl.NextUntil(func(c byte) bool { return !isIdentChar(c) })
		l.emit(token.IDENTIFIER, prop, p)

	case strings.HasPrefix(rest, "?->") && len(rest) > 3 && isIdentStart(rest[3]):
		p := l.ctl.Position()
		l.ctl.Skip(3)
		l.emit(token.NULLSAFE_ARROW, "?->", p)
		p = l.ctl.Position()
		prop := l.ctl.NextUntil(func(c byte) bool { return !isIdentChar(c) })
		l.emit(token.IDENTIFIER, prop, p)
	}
}

// simpleOffsetLen 返回 [..] 简单下标的总长度（含方括号），不是简单下标时返回 0
func simpleOffsetLen(s string) int {
	i := 1
	if i >= len(s) {
		return 0
	}
	switch {
	case s[i] == '$':
		i++
		if i >= len(s) || !isIdentStart(s[i]) {
			return 0
		}
		for i < len(s) && isIdentChar(s[i]) {
			i++
		}
	case s[i] == '-' || isDigit(s[i]):
		i++
		digits := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
		if digits == 0 && s[1] == '-' {
			return 0
		}
	case isIdentStart(s[i]):
		for i < len(s) && isIdentChar(s[i]) {
			i++
		}
	default:
		return 0
	}
	if i >= len(s) || s[i] != ']' {
		return 0
	}
	return i + 1
}

// scanInterpolation 在 {$ 或 ${ 之后以代码模式扫描，直到配对的 }
func (l *Lexer) scanInterpolation() error {
	start := l.ctl.Position()
	depth := 0
	for {
		l.ctl.NextUntil(func(c byte) bool { return !isSpace(c) })
		ch, ok := l.ctl.Peek()
		if !ok {
			return l.fail(ErrEOF, "{", start, i18n.ErrUnterminatedInterp)
		}
		if ch == '}' && depth == 0 {
			pos := l.ctl.Position()
			l.ctl.Next()
			l.emit(token.ADVANCE_INTERPOLATION_CLOSE, "}", pos)
			return nil
		}

		n := len(l.tokens)
		if err := l.scanToken(); err != nil {
			return err
		}
		if len(l.tokens) > n {
			switch l.tokens[len(l.tokens)-1].Type {
			case token.LEFT_BRACE:
				depth++
			case token.RIGHT_BRACE:
				depth--
			}
		}
	}
}

// ============================================================================
// heredoc / nowdoc
// ============================================================================

// scanHeredoc 扫描 <<<LABEL 或 <<<'LABEL' 开始的多行字符串
func (l *Lexer) scanHeredoc() error {
	pos := l.ctl.Position()
	from := l.ctl.Offset()
	l.ctl.Skip(3)
	l.ctl.NextUntil(func(c byte) bool { return c != ' ' && c != '\t' })

	var quote byte
	if ch, _ := l.ctl.Peek(); ch == '\'' || ch == '"' {
		quote = ch
		l.ctl.Next()
	}
	label := l.ctl.NextUntil(func(c byte) bool { return !isIdentChar(c) })
	if label == "" || !isIdentStart(label[0]) {
		return l.fail(ErrUnrecognised, l.ctl.Slice(from), pos, i18n.ErrInvalidHeredocLabel)
	}
	if quote != 0 {
		if ch, _ := l.ctl.Peek(); ch != quote {
			return l.fail(ErrUnrecognised, l.ctl.Slice(from), pos, i18n.ErrInvalidHeredocLabel)
		}
		l.ctl.Next()
	}
	if l.ctl.HasPrefix("\r\n") {
		l.ctl.Skip(2)
	} else if l.ctl.HasPrefix("\n") {
		l.ctl.Next()
	} else {
		return l.fail(ErrUnrecognised, l.ctl.Slice(from), pos, i18n.ErrInvalidHeredocLabel)
	}

	if quote == '\'' {
		l.emit(token.NOWDOC_OPEN, label, pos)
		return l.scanNowdocBody(label, pos)
	}
	l.emit(token.HEREDOC_OPEN, label, pos)
	return l.scanEncapsedBody(0, label)
}

// scanNowdocBody 原样读取 nowdoc 主体
func (l *Lexer) scanNowdocBody(label string, start token.Position) error {
	bodyPos := l.ctl.Position()
	from := l.ctl.Offset()
	for {
		if n, ok := matchHeredocClose(l.ctl.Rest(), label); ok {
			body := trimFinalNewline(l.ctl.Slice(from))
			if body != "" {
				l.tokens = append(l.tokens, token.Token{
					Type: token.ENCAPSED_STRING, Literal: body, Pos: bodyPos, End: l.ctl.Position(),
				})
			}
			closePos := l.ctl.Position()
			closer := l.ctl.Rest()[:n]
			l.ctl.Skip(n)
			l.emit(token.NOWDOC_CLOSE, closer, closePos)
			return nil
		}

		l.ctl.NextUntil(func(c byte) bool { return c == '\n' })
		if _, ok := l.ctl.Next(); !ok {
			return l.fail(ErrEOF, label, start, i18n.ErrUnterminatedHeredoc, label)
		}
	}
}

// matchHeredocClose 判断一行是否为结束标签（允许前导空白），返回需要消费的字节数
//
// 结束标签 token 的 Literal 带着这段前导空白，它决定正文每行要去掉的缩进。
func matchHeredocClose(rest, label string) (int, bool) {
	i := 0
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	if !strings.HasPrefix(rest[i:], label) {
		return 0, false
	}
	end := i + len(label)
	if end < len(rest) && isIdentChar(rest[end]) {
		return 0, false
	}
	return end, true
}

// trimFinalNewline 去掉结束标签前的最后一个换行
func trimFinalNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
