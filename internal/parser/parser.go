// Package parser 把 token 序列解析为 arena 中的语法树。
//
// 解析器由一组小的解析模块组成，每个模块有一个 test（用 Lookup 描述的定长
// 前缀模式）和一个 parse。语句循环按注册顺序找到第一个 test 成功的模块，
// 推进匹配长度后调用它的 parse。左递归的形式（二元运算、调用、下标、成员
// 访问、三元运算）读取 LoopArgument 中的上一个表达式并折叠出新节点。
package parser

import (
	"fmt"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/i18n"
	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// maxDepth 最大嵌套深度，防止栈溢出
const maxDepth = 256

// Config 解析配置
type Config struct {
	Lexer lexer.Config
	// Arena 为 nil 时新建一个
	Arena *ast.Arena
}

// Parser 语法分析器
//
// 注释 token 不参与模式匹配：sig 保存非注释 token 在 tokens 中的下标，
// cur 是当前非注释 token 的序号，raw 是下一个尚未处理的原始下标。
type Parser struct {
	arena  *ast.Arena
	tokens []token.Token
	sig    []int
	cur    int
	raw    int

	// pending 等待挂到下一个节点上的注释与属性
	pending []*ast.Node
	depth   int
}

// Parse 对源码做词法与语法分析，返回 arena 与 Program 节点
func Parse(source string, cfg Config) (*ast.Arena, *ast.Node, error) {
	tokens, err := lexer.Lex(source, cfg.Lexer)
	if err != nil {
		return nil, nil, err
	}
	a := cfg.Arena
	if a == nil {
		a = ast.NewArena(0)
	}
	root, err := New(tokens, a).ParseProgram()
	if err != nil {
		return nil, nil, err
	}
	return a, root, nil
}

// New 创建解析器，tokens 必须以 EOF 结尾
func New(tokens []token.Token, a *ast.Arena) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		var pos token.Position
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].End
		}
		tokens = append(tokens, token.Token{Type: token.EOF, Pos: pos, End: pos})
	}
	sig := make([]int, 0, len(tokens))
	for i, t := range tokens {
		if !token.IsComment(t.Type) {
			sig = append(sig, i)
		}
	}
	return &Parser{arena: a, tokens: tokens, sig: sig}
}

// Arena 返回节点所在的 arena
func (p *Parser) Arena() *ast.Arena {
	return p.arena
}

// ============================================================================
// 程序
// ============================================================================

// ParseProgram 解析完整程序
func (p *Parser) ParseProgram() (*ast.Node, error) {
	start := p.peek().Pos
	prog := ast.Alloc[ast.Program](p.arena)

	switch t := p.peek(); t.Type {
	case token.OPEN_TAG, token.OPEN_TAG_ASP:
		prog.Opener = p.arena.Str(normalizeTag(t.Literal))
		p.advance()
	case token.OPEN_TAG_ECHO:
		// <?= 留给 Echo 模块消费
		prog.Opener = p.arena.Str(t.Literal)
	}

	children, _, err := p.statements(p.statementArg(nil))
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Type != token.EOF {
		return nil, p.unexpected(t)
	}
	prog.Children = children

	n := p.arena.Node(prog)
	n.Range = p.arena.Span(start, p.peek().End)
	return n, nil
}

// ParseExpression 解析单个表达式，用于格式化片段
func (p *Parser) ParseExpression() (*ast.Node, error) {
	arg := p.expressionArg(nil, ExprSeparators, ExprBreakers)
	n, err := p.expression(arg)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.unexpected(p.peek())
	}
	return n, nil
}

func normalizeTag(lit string) string {
	if len(lit) == 5 {
		return "<?php"
	}
	return lit
}

// ============================================================================
// token 游标
// ============================================================================

// peek 当前非注释 token
func (p *Parser) peek() token.Token {
	return p.tokens[p.sig[p.cur]]
}

// peekAt 当前位置之后第 k 个非注释 token，越界时返回 EOF
func (p *Parser) peekAt(k int) token.Token {
	i := p.cur + k
	if i >= len(p.sig) {
		return p.tokens[p.sig[len(p.sig)-1]]
	}
	return p.tokens[p.sig[i]]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) check(t token.TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) checkAny(types ...token.TokenType) bool {
	cur := p.peek().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// advance 消费当前 token，其前的注释进入 pending
func (p *Parser) advance() token.Token {
	t := p.peek()
	if t.Type == token.EOF {
		return t
	}
	p.flushComments()
	p.raw = p.sig[p.cur] + 1
	p.cur++
	return t
}

// skip 消费 n 个非注释 token
func (p *Parser) skip(n int) {
	for i := 0; i < n; i++ {
		p.advance()
	}
}

// match 当前 token 属于 types 之一时消费它
func (p *Parser) match(types ...token.TokenType) (token.Token, bool) {
	if p.checkAny(types...) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect 消费指定类型的 token，否则报错
func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, p.expected(t.String(), p.peek())
}

// previous 最近消费的非注释 token
func (p *Parser) previous() token.Token {
	if p.cur == 0 {
		return token.Token{}
	}
	return p.tokens[p.sig[p.cur-1]]
}

// position 当前 token 的起始位置
func (p *Parser) position() token.Position {
	return p.peek().Pos
}

// ============================================================================
// 注释与附注
// ============================================================================

// flushComments 把当前 token 之前尚未处理的注释放入 pending
func (p *Parser) flushComments() {
	end := p.sig[p.cur]
	for ; p.raw < end; p.raw++ {
		p.pending = append(p.pending, p.comment(p.tokens[p.raw]))
	}
}

func (p *Parser) comment(t token.Token) *ast.Node {
	var n *ast.Node
	text := p.arena.Str(t.Literal)
	switch t.Type {
	case token.COMMENT_DOC:
		n = ast.Make(p.arena, ast.CommentDoc{Text: text})
	case token.COMMENT_BLOCK:
		n = ast.Make(p.arena, ast.CommentBlock{Text: text})
	default:
		n = ast.Make(p.arena, ast.CommentLine{Text: text})
	}
	n.Range = p.arena.Span(t.Pos, t.End)
	return n
}

// takePending 取走等待中的附注
func (p *Parser) takePending() []*ast.Node {
	if len(p.pending) == 0 {
		return nil
	}
	out := p.pending
	p.pending = nil
	return out
}

// lead 把等待中的附注挂为 n 的前置附注
func (p *Parser) lead(n *ast.Node, trivia []*ast.Node) {
	if n != nil && len(trivia) > 0 {
		n.PrependLeading(p.arena, trivia...)
	}
}

// trail 把与上一个 token 同一行的注释挂为 n 的后置附注
func (p *Parser) trail(n *ast.Node) {
	if n == nil || p.cur == 0 {
		return
	}
	line := p.previous().End.Line
	end := p.sig[p.cur]
	for p.raw < end {
		t := p.tokens[p.raw]
		if t.Pos.Line != line {
			return
		}
		n.AddTrailing(p.arena, p.comment(t))
		p.raw++
		if t.Type == token.COMMENT_LINE {
			return
		}
	}
}

// ============================================================================
// 错误
// ============================================================================

func (p *Parser) unexpected(t token.Token) error {
	if t.Type == token.EOF {
		return &Error{Kind: ErrEOF, Token: t, Pos: t.Pos, Message: i18n.T(i18n.ErrUnexpectedEOF)}
	}
	return &Error{Kind: ErrUnexpectedToken, Token: t, Pos: t.Pos, Message: i18n.T(i18n.ErrUnexpectedToken, describe(t))}
}

func (p *Parser) expected(what string, t token.Token) error {
	kind := ErrUnexpectedToken
	if t.Type == token.EOF {
		kind = ErrEOF
	}
	return &Error{Kind: kind, Token: t, Pos: t.Pos, Message: i18n.T(i18n.ErrExpectedToken, what, describe(t))}
}

func (p *Parser) internal(format string, args ...interface{}) error {
	t := p.peek()
	return &Error{Kind: ErrInternal, Token: t, Pos: t.Pos, Message: i18n.T(i18n.ErrInternal, fmt.Sprintf(format, args...))}
}

func describe(t token.Token) string {
	if t.Type == token.EOF {
		return "EOF"
	}
	if t.Literal != "" {
		return fmt.Sprintf("'%s'", t.Literal)
	}
	return t.Type.String()
}

// enter 进入一层嵌套
func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		t := p.peek()
		return &Error{Kind: ErrUnexpectedToken, Token: t, Pos: t.Pos, Message: i18n.T(i18n.ErrTooDeep)}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
