package parser

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 解析模块与注册表
// ============================================================================

// Class 模块在循环中的位置
type Class uint8

const (
	// Prefix 只能开始一个表达式或语句（LoopArgument.Last 为空）
	Prefix Class = iota
	// Postfix 读取上一个表达式，在只读项（term）时也可用：调用、下标、成员访问
	Postfix
	// Infix 读取上一个表达式，只读项时不可用：二元、赋值、三元
	Infix
)

// Module 解析模块
type Module struct {
	Name  string
	Class Class
	Test  func(p *Parser, arg *LoopArgument) (Match, bool)
	Parse func(p *Parser, m Match, arg *LoopArgument) (*ast.Node, error)
}

// Registry 一个上下文中按优先顺序排列的模块
type Registry struct {
	Name    string
	Modules []*Module
}

// find 返回第一个 test 成功的模块
func (r *Registry) find(p *Parser, arg *LoopArgument) (*Module, Match, bool) {
	for _, m := range r.Modules {
		switch m.Class {
		case Prefix:
			if arg.Last != nil {
				continue
			}
		case Postfix:
			if arg.Last == nil {
				continue
			}
		case Infix:
			if arg.Last == nil || arg.termOnly {
				continue
			}
		}
		if match, ok := m.Test(p, arg); ok {
			return m, match, true
		}
	}
	return nil, Match{}, false
}

// ============================================================================
// LoopArgument - 解析上下文
// ============================================================================

// LoopArgument 一次语句循环的上下文
type LoopArgument struct {
	// Registry 候选模块
	Registry *Registry
	// Separators 提交当前语句的 token，循环遇到时停止
	Separators TypeSet
	// Breakers 结束当前序列的 token，循环遇到时停止
	Breakers TypeSet
	// Last 折叠累加器：上一个解析出的表达式
	Last *ast.Node
	// ShouldFail 为 true 时，无模块匹配的 token 是错误；否则安静地停止
	ShouldFail bool

	termOnly bool
}

// stops 是否应停在 t 之前
func (a *LoopArgument) stops(t token.TokenType) bool {
	return t == token.EOF || a.Separators.Has(t) || a.Breakers.Has(t)
}

// Sub 继承注册表与停止集合的新上下文
func (a *LoopArgument) Sub() *LoopArgument {
	return &LoopArgument{
		Registry:   a.Registry,
		Separators: a.Separators,
		Breakers:   a.Breakers,
		ShouldFail: a.ShouldFail,
	}
}

// 常用的停止集合
var (
	StatementSeparators = Set(token.SEMICOLON, token.CLOSE_TAG)
	BlockBreakers       = Set(token.RIGHT_BRACE)
	ExprSeparators      = Set(token.SEMICOLON, token.COMMA, token.CLOSE_TAG)
	ExprBreakers        = Set(token.RIGHT_PAREN, token.RIGHT_BRACKET, token.RIGHT_BRACE,
		token.COLON, token.DOUBLE_ARROW, token.AS, token.ADVANCE_INTERPOLATION_CLOSE)
	ListSeparators = Set(token.COMMA)
)

func (p *Parser) statementArg(breakers []token.TokenType) *LoopArgument {
	return &LoopArgument{
		Registry:   statementRegistry,
		Separators: StatementSeparators,
		Breakers:   Set(breakers...),
		ShouldFail: true,
	}
}

func (p *Parser) expressionArg(last *ast.Node, seps, breakers TypeSet) *LoopArgument {
	return &LoopArgument{
		Registry:   expressionRegistry,
		Separators: seps,
		Breakers:   breakers,
		Last:       last,
		ShouldFail: true,
	}
}

// ============================================================================
// 语句循环
// ============================================================================

// loop 反复寻找匹配的模块并折叠结果
//
// 不消费分隔符与终止符。产出的节点自行结束语句时立即返回。
func (p *Parser) loop(arg *LoopArgument) (*ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	for {
		if arg.Last == nil {
			if err := p.attributes(); err != nil {
				return nil, err
			}
		}
		t := p.peek()
		if arg.stops(t.Type) {
			break
		}

		mod, match, ok := arg.Registry.find(p, arg)
		if !ok {
			if arg.ShouldFail && !arg.termOnly {
				return nil, p.unexpected(t)
			}
			break
		}

		var start token.Position
		var leading []*ast.Node
		if arg.Last != nil {
			start = arg.Last.Start()
		} else {
			start = match.Start
			p.flushComments()
			leading = p.takePending()
		}

		p.skip(match.Size)
		n, err := mod.Parse(p, match, arg)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, p.internal("module %s produced no node", mod.Name)
		}
		p.lead(n, leading)
		n.Range = p.arena.Span(start, p.previous().End)
		arg.Last = n

		if ast.EndsStatement(n) {
			break
		}
	}
	return arg.Last, nil
}

// expression 读取一个完整表达式
func (p *Parser) expression(arg *LoopArgument) (*ast.Node, error) {
	sub := arg.Sub()
	sub.Registry = expressionRegistry
	return p.loop(sub)
}

// requireExpression 读取一个完整表达式，缺失时报错
func (p *Parser) requireExpression(arg *LoopArgument) (*ast.Node, error) {
	n, err := p.expression(arg)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.unexpected(p.peek())
	}
	return n, nil
}

// exprUntil 读取表达式，停在 breakers 之一（不消费）
func (p *Parser) exprUntil(breakers ...token.TokenType) (*ast.Node, error) {
	arg := p.expressionArg(nil, Set(), Set(breakers...))
	return p.requireExpression(arg)
}

// term 只读一个项：前缀运算与调用、下标、成员访问链，不含二元运算
func (p *Parser) term(arg *LoopArgument) (*ast.Node, error) {
	sub := arg.Sub()
	sub.Registry = expressionRegistry
	sub.termOnly = true
	n, err := p.loop(sub)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.unexpected(p.peek())
	}
	return n, nil
}

// statements 读取语句序列，停在 breakers 之一或 EOF（不消费），返回停止的 token 类型
//
// 语句之间的分号被消费；?> 留给 Inline 模块。没有后继节点的附注作为
// 序列中的独立节点保留。
func (p *Parser) statements(arg *LoopArgument) ([]*ast.Node, token.TokenType, error) {
	list := p.arena.NewList(8)
	for {
		if err := p.attributes(); err != nil {
			return nil, 0, err
		}
		t := p.peek()
		if t.Type == token.EOF || arg.Breakers.Has(t.Type) {
			p.flushComments()
			list = p.arena.Append(list, p.takePending()...)
			return list, t.Type, nil
		}
		if t.Type == token.SEMICOLON {
			p.advance()
			continue
		}

		p.flushComments()
		leading := p.takePending()

		if t.Type == token.CLOSE_TAG || t.Type == token.INLINE {
			n, err := p.inline()
			if err != nil {
				return nil, 0, err
			}
			p.lead(n, leading)
			list = p.arena.Append(list, n)
			continue
		}

		sub := arg.Sub()
		n, err := p.loop(sub)
		if err != nil {
			return nil, 0, err
		}
		if n == nil {
			return nil, 0, p.unexpected(p.peek())
		}
		p.lead(n, leading)

		if !ast.EndsStatement(n) {
			switch next := p.peek(); {
			case next.Type == token.SEMICOLON:
				p.advance()
			case next.Type == token.CLOSE_TAG, next.Type == token.EOF, arg.Breakers.Has(next.Type):
			default:
				return nil, 0, p.expected(";", next)
			}
		}
		p.trail(n)
		list = p.arena.Append(list, n)
	}
}

// block 读取 { 语句 }，当前 token 必须是 {
func (p *Parser) block() (*ast.Node, error) {
	start := p.position()
	if _, err := p.expect(token.LEFT_BRACE); err != nil {
		return nil, err
	}
	stmts, _, err := p.statements(p.statementArg([]token.TokenType{token.RIGHT_BRACE}))
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	n := ast.Make(p.arena, ast.Block{Statements: stmts})
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}

// shortBlock 读取短形式主体，停在 breakers 之一（不消费）
func (p *Parser) shortBlock(breakers ...token.TokenType) (*ast.Node, token.TokenType, error) {
	start := p.position()
	stmts, stop, err := p.statements(p.statementArg(breakers))
	if err != nil {
		return nil, 0, err
	}
	if stop == token.EOF {
		return nil, 0, p.unexpected(p.peek())
	}
	n := ast.Make(p.arena, ast.Block{Statements: stmts})
	n.Range = p.arena.Span(start, p.previous().End)
	return n, stop, nil
}

// statement 读取单条语句（含结尾分号），用于不带花括号的控制结构主体
func (p *Parser) statement() (*ast.Node, error) {
	if p.check(token.LEFT_BRACE) {
		return p.block()
	}
	if err := p.attributes(); err != nil {
		return nil, err
	}
	p.flushComments()
	leading := p.takePending()

	n, err := p.loop(p.statementArg(nil))
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.unexpected(p.peek())
	}
	p.lead(n, leading)
	if !ast.EndsStatement(n) {
		switch p.peek().Type {
		case token.SEMICOLON:
			p.advance()
		case token.CLOSE_TAG:
		default:
			return nil, p.expected(";", p.peek())
		}
	}
	p.trail(n)
	return n, nil
}

// ============================================================================
// 逗号分隔序列
// ============================================================================

// commaList 读取以 closer 结束的逗号分隔序列并消费 closer
//
// item 为 nil 的位置（连续逗号）在 allowEmpty 为 true 时由 empty 生成。
// 每项之前的附注作为该项的前置附注，逗号之后同一行的注释作为后置附注。
func (p *Parser) commaList(closer token.TokenType, item func() (*ast.Node, error), empty func() *ast.Node) ([]*ast.Node, error) {
	list := p.arena.NewList(4)
	for {
		if err := p.attributes(); err != nil {
			return nil, err
		}
		if p.check(closer) {
			p.flushComments()
			if rest := p.takePending(); len(rest) > 0 && len(list) > 0 {
				list[len(list)-1].AddTrailing(p.arena, rest...)
			} else if len(rest) > 0 {
				p.pending = rest
			}
			p.advance()
			return list, nil
		}
		if p.isAtEnd() {
			return nil, p.unexpected(p.peek())
		}

		if p.check(token.COMMA) && empty != nil {
			p.advance()
			n := empty()
			p.trail(n)
			list = p.arena.Append(list, n)
			continue
		}

		p.flushComments()
		leading := p.takePending()
		n, err := item()
		if err != nil {
			return nil, err
		}
		p.lead(n, leading)
		list = p.arena.Append(list, n)

		switch {
		case p.check(token.COMMA):
			p.advance()
			p.trail(n)
		case p.check(closer):
			p.trail(n)
		default:
			return nil, p.expected(closer.String(), p.peek())
		}
	}
}

// exprList 读取逗号分隔的表达式，直到 closer（消费 closer）
func (p *Parser) exprList(closer token.TokenType) ([]*ast.Node, error) {
	return p.commaList(closer, func() (*ast.Node, error) {
		return p.exprUntil(token.COMMA, closer)
	}, nil)
}

// bareList 读取逗号分隔的表达式，直到遇到非逗号（不消费结尾）
func (p *Parser) bareList(arg *LoopArgument) ([]*ast.Node, error) {
	list := p.arena.NewList(2)
	sub := arg.Sub()
	sub.Separators = sub.Separators.With(token.COMMA)
	for {
		n, err := p.requireExpression(sub)
		if err != nil {
			return nil, err
		}
		list = p.arena.Append(list, n)
		if !p.check(token.COMMA) {
			return list, nil
		}
		p.advance()
		p.trail(n)
	}
}
