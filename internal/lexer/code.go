package lexer

import (
	"github.com/tangzhangming/phpfmt/internal/i18n"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 代码模式
// ============================================================================

// operator 运算符与分隔符
type operator struct {
	text string
	typ  token.TokenType
}

// operators 按长度降序排列，扫描时取第一个匹配（即最长匹配）
var operators = []operator{
	{"<=>", token.SPACESHIP},
	{"**=", token.POW_ASSIGN},
	{"...", token.ELLIPSIS},
	{"<<=", token.SHL_ASSIGN},
	{">>=", token.SHR_ASSIGN},
	{"??=", token.COALESCE_ASSIGN},
	{"===", token.IDENTICAL},
	{"!==", token.NOT_IDENTICAL},
	{"?->", token.NULLSAFE_ARROW},
	{"++", token.PRE_INC},
	{"--", token.PRE_DEC},
	{"->", token.ARROW},
	{"=>", token.DOUBLE_ARROW},
	{"::", token.DOUBLE_COLON},
	{"==", token.EQ},
	{"!=", token.NE},
	{"<>", token.NE_ALT},
	{"<=", token.LE},
	{">=", token.GE},
	{"&&", token.AND},
	{"||", token.OR},
	{"<<", token.SHL},
	{">>", token.SHR},
	{"+=", token.PLUS_ASSIGN},
	{"-=", token.MINUS_ASSIGN},
	{"*=", token.MUL_ASSIGN},
	{"/=", token.DIV_ASSIGN},
	{".=", token.CONCAT_ASSIGN},
	{"%=", token.MOD_ASSIGN},
	{"&=", token.AND_ASSIGN},
	{"|=", token.OR_ASSIGN},
	{"^=", token.XOR_ASSIGN},
	{"??", token.COALESCE},
	{"**", token.POW},
	{";", token.SEMICOLON},
	{",", token.COMMA},
	{"(", token.LEFT_PAREN},
	{")", token.RIGHT_PAREN},
	{"[", token.LEFT_BRACKET},
	{"]", token.RIGHT_BRACKET},
	{"{", token.LEFT_BRACE},
	{"}", token.RIGHT_BRACE},
	{":", token.COLON},
	{"?", token.QUESTION},
	{"@", token.AT},
	{"=", token.ASSIGN},
	{"<", token.LT},
	{">", token.GT},
	{"!", token.NOT},
	{"&", token.BIT_AND},
	{"|", token.BIT_OR},
	{"^", token.BIT_XOR},
	{"~", token.BIT_NOT},
	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.MUL},
	{"/", token.DIV},
	{"%", token.MOD},
	{".", token.CONCAT},
	{"$", token.DOLLAR},
}

// scanToken 扫描单个 token
func (l *Lexer) scanToken() error {
	ch, _ := l.ctl.Peek()
	next, _ := l.ctl.PeekAt(1)

	switch {
	case isSpace(ch):
		l.ctl.NextUntil(func(c byte) bool { return !isSpace(c) })
		return nil

	case ch == '$' && isIdentStart(next):
		pos := l.ctl.Position()
		l.ctl.Next()
		name := l.ctl.NextUntil(func(c byte) bool { return !isIdentChar(c) })
		l.emit(token.VARIABLE, name, pos)
		return nil

	case isIdentStart(ch) || ch == '\\':
		return l.scanIdentifier()

	case isDigit(ch) || (ch == '.' && isDigit(next)):
		l.scanNumber()
		return nil

	case ch == '\'':
		return l.scanSingleQuoted()

	case ch == '"' || ch == '`':
		return l.scanDoubleQuoted(ch)

	case ch == '#' && next == '[':
		pos := l.ctl.Position()
		l.ctl.Skip(2)
		l.emit(token.ATTRIBUTE_OPEN, "#[", pos)
		return nil

	case ch == '#' || (ch == '/' && next == '/'):
		l.scanLineComment()
		return nil

	case ch == '/' && next == '*':
		return l.scanBlockComment()

	case ch == '<' && l.ctl.HasPrefix("<<<"):
		return l.scanHeredoc()

	case ch == '(':
		if l.scanCast() {
			return nil
		}

	case ch == '?' && next == '>':
		l.scanCloseTag("?>")
		return nil

	case ch == '%' && next == '>' && l.cfg.ASPTags:
		l.scanCloseTag("%>")
		return nil
	}

	return l.scanOperator()
}

// scanOperator 按最长匹配扫描运算符与分隔符
func (l *Lexer) scanOperator() error {
	pos := l.ctl.Position()
	for _, op := range operators {
		if !l.ctl.HasPrefix(op.text) {
			continue
		}
		l.ctl.Skip(len(op.text))
		typ := op.typ
		switch typ {
		case token.PRE_INC:
			if l.isPostfix() {
				typ = token.POST_INC
			}
		case token.PRE_DEC:
			if l.isPostfix() {
				typ = token.POST_DEC
			}
		}
		l.emit(typ, op.text, pos)
		return nil
	}

	ch, _ := l.ctl.Peek()
	return l.fail(ErrUnrecognised, string(ch), pos, i18n.ErrUnexpectedChar, ch)
}

// isPostfix 判断刚读到的 ++/-- 是后缀还是前缀
//
// 前一个 token 能结束一个操作数时为后缀；前一个 token 是 } 时无法判断，
// 退回到看下一个字符：空白或 ; , ) ] } ? 之一为后缀，否则为前缀。
func (l *Lexer) isPostfix() bool {
	prev, ok := l.previous()
	if ok {
		switch prev.Type {
		case token.VARIABLE, token.RIGHT_BRACKET, token.RIGHT_PAREN, token.IDENTIFIER,
			token.ENCAPSED_STRING_CLOSE, token.STRING:
			return true
		case token.RIGHT_BRACE:
		default:
			if !token.IsKeyword(prev.Type) {
				return false
			}
			// ->class++ 之类的成员名
			if len(l.tokens) >= 2 {
				before := l.tokens[len(l.tokens)-2].Type
				return before == token.ARROW || before == token.NULLSAFE_ARROW || before == token.DOUBLE_COLON
			}
			return false
		}
	}

	next, ok := l.ctl.Peek()
	if !ok || isSpace(next) {
		return true
	}
	switch next {
	case ';', ',', ')', ']', '}', '?':
		return true
	}
	return false
}

// scanCloseTag 扫描 ?> 并切回内联模式
func (l *Lexer) scanCloseTag(text string) {
	pos := l.ctl.Position()
	l.ctl.Skip(len(text))
	l.emit(token.CLOSE_TAG, text, pos)
	l.inline = true
}

// scanIdentifier 扫描标识符、关键字或限定名
func (l *Lexer) scanIdentifier() error {
	pos := l.ctl.Position()
	from := l.ctl.Offset()
	qualified := false

	if ch, _ := l.ctl.Peek(); ch == '\\' {
		next, _ := l.ctl.PeekAt(1)
		if !isIdentStart(next) {
			return l.fail(ErrUnrecognised, "\\", pos, i18n.ErrUnexpectedChar, '\\')
		}
		l.ctl.Next()
		qualified = true
	}

	readRun := func() {
		l.ctl.NextUntil(func(c byte) bool { return !isIdentChar(c) })
	}
	readRun()

	for {
		ch, _ := l.ctl.Peek()
		next, _ := l.ctl.PeekAt(1)
		if ch != '\\' {
			break
		}
		if isIdentStart(next) {
			l.ctl.Next()
			readRun()
			qualified = true
			continue
		}
		if next == '{' {
			// 分组 use 的前缀：Foo\{A, B}
			l.ctl.Next()
			qualified = true
		}
		break
	}

	text := l.ctl.Slice(from)
	if qualified {
		l.emit(token.NAME, text, pos)
		return nil
	}

	typ := token.LookupIdent(text)
	switch typ {
	case token.PUBLIC, token.PROTECTED, token.PRIVATE:
		typ, text = l.scanAsymmetric(typ, text)
	case token.YIELD:
		if l.scanYieldFrom() {
			typ, text = token.YIELD_FROM, "yield from"
		}
	case token.ENUM:
		if !l.followedByName() {
			typ = token.IDENTIFIER
		}
	}
	l.emit(typ, text, pos)
	return nil
}

// scanAsymmetric 识别 public(set) 之类的非对称可见性
func (l *Lexer) scanAsymmetric(typ token.TokenType, text string) (token.TokenType, string) {
	var suffix string
	switch {
	case l.ctl.HasPrefixFold("(get)"):
		suffix = "(get)"
	case l.ctl.HasPrefixFold("(set)"):
		suffix = "(set)"
	default:
		return typ, text
	}
	l.ctl.Skip(len(suffix))

	get := suffix == "(get)"
	switch typ {
	case token.PUBLIC:
		if get {
			return token.PUBLIC_GET, text + suffix
		}
		return token.PUBLIC_SET, text + suffix
	case token.PROTECTED:
		if get {
			return token.PROTECTED_GET, text + suffix
		}
		return token.PROTECTED_SET, text + suffix
	default:
		if get {
			return token.PRIVATE_GET, text + suffix
		}
		return token.PRIVATE_SET, text + suffix
	}
}

// scanYieldFrom 在 yield 之后查找 from，找到时一并消费
func (l *Lexer) scanYieldFrom() bool {
	rest := l.ctl.Rest()
	i := 0
	for i < len(rest) && isSpace(rest[i]) {
		i++
	}
	if i == 0 || len(rest) < i+4 {
		return false
	}
	if !equalFold(rest[i:i+4], "from") {
		return false
	}
	if len(rest) > i+4 && isIdentChar(rest[i+4]) {
		return false
	}
	l.ctl.Skip(i + 4)
	return true
}

// followedByName 判断之后是否是 空白 + 标识符（enum Foo）
func (l *Lexer) followedByName() bool {
	rest := l.ctl.Rest()
	i := 0
	for i < len(rest) && isSpace(rest[i]) {
		i++
	}
	return i > 0 && i < len(rest) && isIdentStart(rest[i])
}

// scanNumber 扫描数字字面量，原文保留
func (l *Lexer) scanNumber() {
	pos := l.ctl.Position()
	from := l.ctl.Offset()

	ch, _ := l.ctl.Peek()
	next, _ := l.ctl.PeekAt(1)
	if ch == '0' && (next == 'x' || next == 'X' || next == 'b' || next == 'B' || next == 'o' || next == 'O') {
		l.ctl.Skip(2)
		l.ctl.NextUntil(func(c byte) bool { return !isHexDigit(c) && c != '_' })
		l.emit(token.NUMBER, l.ctl.Slice(from), pos)
		return
	}

	digits := func() {
		l.ctl.NextUntil(func(c byte) bool { return !isDigit(c) && c != '_' })
	}
	digits()

	if ch, _ := l.ctl.Peek(); ch == '.' {
		if next, ok := l.ctl.PeekAt(1); ok && isDigit(next) {
			l.ctl.Next()
			digits()
		}
	}

	if ch, _ := l.ctl.Peek(); ch == 'e' || ch == 'E' {
		next, _ := l.ctl.PeekAt(1)
		after, _ := l.ctl.PeekAt(2)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(after)) {
			l.ctl.Skip(2)
			digits()
		}
	}

	l.emit(token.NUMBER, l.ctl.Slice(from), pos)
}

// scanLineComment 扫描 // 或 # 注释，遇到换行或 ?> 结束
func (l *Lexer) scanLineComment() {
	pos := l.ctl.Position()
	from := l.ctl.Offset()
	for !l.ctl.EOF() {
		ch, _ := l.ctl.Peek()
		if ch == '\n' || l.ctl.HasPrefix("?>") {
			break
		}
		l.ctl.Next()
	}
	text := l.ctl.Slice(from)
	for len(text) > 0 && (text[len(text)-1] == '\r' || text[len(text)-1] == ' ' || text[len(text)-1] == '\t') {
		text = text[:len(text)-1]
	}
	l.emit(token.COMMENT_LINE, text, pos)
}

// scanBlockComment 扫描 /* */ 与 /** */ 注释
func (l *Lexer) scanBlockComment() error {
	pos := l.ctl.Position()
	from := l.ctl.Offset()
	l.ctl.Skip(2)
	for {
		if l.ctl.EOF() {
			return l.fail(ErrEOF, l.ctl.Slice(from), pos, i18n.ErrUnterminatedComment)
		}
		if l.ctl.HasPrefix("*/") {
			l.ctl.Skip(2)
			break
		}
		l.ctl.Next()
	}

	text := l.ctl.Slice(from)
	typ := token.COMMENT_BLOCK
	if len(text) > 4 && text[2] == '*' {
		typ = token.COMMENT_DOC
	}
	l.emit(typ, text, pos)
	return nil
}

// scanCast 尝试把 ( 开始的片段识别为类型转换
func (l *Lexer) scanCast() bool {
	rest := l.ctl.Rest()
	i := 1
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	j := i
	for j < len(rest) && ((rest[j] >= 'a' && rest[j] <= 'z') || (rest[j] >= 'A' && rest[j] <= 'Z')) {
		j++
	}
	if j == i {
		return false
	}
	k := j
	for k < len(rest) && (rest[k] == ' ' || rest[k] == '\t') {
		k++
	}
	if k >= len(rest) || rest[k] != ')' {
		return false
	}
	if _, ok := token.LookupCast(rest[i:j]); !ok {
		return false
	}

	pos := l.ctl.Position()
	l.ctl.Skip(k + 1)
	l.emit(token.CAST, rest[:k+1], pos)
	return true
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if x >= 'A' && x <= 'Z' {
			x += 'a' - 'A'
		}
		if y >= 'A' && y <= 'Z' {
			y += 'a' - 'A'
		}
		if x != y {
			return false
		}
	}
	return true
}
