package parser

import (
	"strings"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 运算符优先级
// ============================================================================

// binaryOperators 二元运算符
var binaryOperators = Set(
	token.PLUS, token.MINUS, token.MUL, token.DIV, token.MOD, token.POW,
	token.CONCAT, token.COALESCE,
	token.EQ, token.NE, token.NE_ALT, token.IDENTICAL, token.NOT_IDENTICAL,
	token.LT, token.LE, token.GT, token.GE, token.SPACESHIP,
	token.AND, token.OR, token.BIT_AND, token.BIT_OR, token.BIT_XOR,
	token.SHL, token.SHR, token.INSTANCEOF,
	token.LOGICAL_AND, token.LOGICAL_OR, token.LOGICAL_XOR,
)

// assignOperators 赋值运算符
var assignOperators = Set(
	token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.MUL_ASSIGN,
	token.DIV_ASSIGN, token.MOD_ASSIGN, token.POW_ASSIGN, token.CONCAT_ASSIGN,
	token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN, token.SHL_ASSIGN,
	token.SHR_ASSIGN, token.COALESCE_ASSIGN,
)

// precedence 二元运算符优先级，数值越大结合越紧
var precedence = map[string]int{
	"or":         1,
	"xor":        2,
	"and":        3,
	"??":         5,
	"||":         6,
	"&&":         7,
	"|":          8,
	"^":          9,
	"&":          10,
	"==":         11,
	"!=":         11,
	"<>":         11,
	"===":        11,
	"!==":        11,
	"<=>":        11,
	"<":          12,
	"<=":         12,
	">":          12,
	">=":         12,
	".":          13,
	"<<":         14,
	">>":         14,
	"+":          15,
	"-":          15,
	"*":          16,
	"/":          16,
	"%":          16,
	"instanceof": 18,
	"**":         19,
}

// assignPrecedence 赋值介于 ?? 与 and 之间
const assignPrecedence = 4

func rightAssociative(op string) bool {
	return op == "**" || op == "??"
}

// bindsInside 前缀运算的操作数是否吸收紧随的 op
//
// ! 比 instanceof 和 ** 松；一元 + - ~、类型转换与 @ 只比 ** 松。
func bindsInside(prefix *ast.Node, op string) bool {
	switch prefix.Kind {
	case ast.KindNegate:
		return op == "instanceof" || op == "**"
	case ast.KindUnary, ast.KindCast, ast.KindSilent:
		return op == "**"
	}
	return false
}

// operatorText 运算符的规范写法，关键字运算符统一小写
func operatorText(t token.Token) string {
	if token.IsKeyword(t.Type) {
		return strings.ToLower(t.Literal)
	}
	return t.Literal
}

// foldBinary 把 right 以 op 接到 left 上，按优先级重新结合
//
// Bin 模块只读一个项作为右操作数，所以 left 可能是优先级更低的 Bin，
// 这时新运算应当落到它的右侧。
func (p *Parser) foldBinary(left *ast.Node, op string, right *ast.Node) *ast.Node {
	if !left.HasTrivia() {
		var slot **ast.Node
		switch d := left.Data.(type) {
		case *ast.Bin:
			lp, rp := precedence[d.Operator], precedence[op]
			if lp < rp || (lp == rp && rightAssociative(op)) {
				slot = &d.Right
			}
		case *ast.Negate:
			slot = &d.Value
		case *ast.Unary:
			slot = &d.Value
		case *ast.Cast:
			slot = &d.Value
		case *ast.Silent:
			slot = &d.Value
		}
		if slot != nil && (left.Kind == ast.KindBin || bindsInside(left, op)) {
			*slot = p.foldBinary(*slot, op, right)
			return p.span(left, left, right)
		}
	}
	n := ast.Make(p.arena, ast.Bin{Left: left, Operator: p.arena.Str(op), Right: right})
	return p.span(n, left, right)
}

// span 让 n 的范围从 from 的起点到 to 的终点
func (p *Parser) span(n, from, to *ast.Node) *ast.Node {
	if from.Range != nil && to.Range != nil {
		n.Range = p.arena.Span(from.Start(), to.End())
	}
	return n
}

// assign 以 op 把 right 赋给 left
//
// and、or、xor 比赋值结合得更松，$a = $b and $c 的赋值只取到 $b。
func (p *Parser) assign(left *ast.Node, op string, right *ast.Node) *ast.Node {
	if b := right.AsBin(); b != nil && !right.HasTrivia() && precedence[b.Operator] < assignPrecedence {
		b.Left = p.assign(left, op, b.Left)
		return p.span(right, b.Left, right)
	}
	return p.foldAssignment(left, op, right)
}

// foldAssignment 赋值的左侧是能被赋值的最右操作数
func (p *Parser) foldAssignment(left *ast.Node, op string, right *ast.Node) *ast.Node {
	if !left.HasTrivia() {
		switch d := left.Data.(type) {
		case *ast.Bin:
			d.Right = p.foldAssignment(d.Right, op, right)
			return left
		case *ast.Negate:
			d.Value = p.foldAssignment(d.Value, op, right)
			return left
		case *ast.Silent:
			d.Value = p.foldAssignment(d.Value, op, right)
			return left
		case *ast.Cast:
			d.Value = p.foldAssignment(d.Value, op, right)
			return left
		case *ast.Unary:
			d.Value = p.foldAssignment(d.Value, op, right)
			return left
		}
	}
	n := ast.Make(p.arena, ast.Assignment{Left: left, Operator: p.arena.Str(op), Right: right})
	if left.Range != nil && right.Range != nil {
		n.Range = p.arena.Span(left.Start(), right.End())
	}
	return n
}

// ============================================================================
// 中缀
// ============================================================================

func (p *Parser) parseBin(m Match, arg *LoopArgument) (*ast.Node, error) {
	op := operatorText(m.Slot(0).First())
	right, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return p.foldBinary(arg.Last, op, right), nil
}

func (p *Parser) parseAssignment(m Match, arg *LoopArgument) (*ast.Node, error) {
	op := m.Slot(0).First().Literal
	right, err := p.requireExpression(arg)
	if err != nil {
		return nil, err
	}
	return p.assign(arg.Last, op, right), nil
}

func (p *Parser) parseTernary(_ Match, arg *LoopArgument) (*ast.Node, error) {
	var valid *ast.Node
	if _, ok := p.match(token.COLON); !ok {
		sub := arg.Sub()
		sub.Breakers = sub.Breakers.With(token.COLON)
		v, err := p.requireExpression(sub)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		valid = v
	}
	invalid, err := p.requireExpression(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Ternary{Condition: arg.Last, Valid: valid, Invalid: invalid}), nil
}

// ============================================================================
// 后缀：调用、下标、成员访问
// ============================================================================

func (p *Parser) parseCall(_ Match, arg *LoopArgument) (*ast.Node, error) {
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Call{Callee: arg.Last, Arguments: args}), nil
}

// arguments 读取调用参数，( 已被消费
func (p *Parser) arguments() ([]*ast.Node, error) {
	return p.commaList(token.RIGHT_PAREN, p.argument, nil)
}

func (p *Parser) argument() (*ast.Node, error) {
	start := p.position()
	var name string
	if identLike.Has(p.peek().Type) && p.peekAt(1).Type == token.COLON {
		name = p.arena.Str(p.advance().Literal)
		p.advance()
	}
	// foo(...) 一等可调用语法
	if p.check(token.ELLIPSIS) && p.peekAt(1).Type == token.RIGHT_PAREN {
		p.advance()
		v := ast.Make(p.arena, ast.Variadic{})
		v.Range = p.arena.Span(start, p.previous().End)
		return p.callArgument(name, v, start), nil
	}
	value, err := p.exprUntil(token.COMMA, token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	return p.callArgument(name, value, start), nil
}

func (p *Parser) callArgument(name string, value *ast.Node, start token.Position) *ast.Node {
	n := ast.Make(p.arena, ast.CallArgument{Name: name, Value: value})
	n.Range = p.arena.Span(start, p.previous().End)
	return n
}

func (p *Parser) parseArrayLookup(_ Match, arg *LoopArgument) (*ast.Node, error) {
	var right *ast.Node
	if !p.check(token.RIGHT_BRACKET) {
		r, err := p.exprUntil(token.RIGHT_BRACKET)
		if err != nil {
			return nil, err
		}
		right = r
	}
	if _, err := p.expect(token.RIGHT_BRACKET); err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.ArrayLookup{Left: arg.Last, Right: right}), nil
}

func (p *Parser) parseObjectAccess(m Match, arg *LoopArgument) (*ast.Node, error) {
	right, bracket, err := p.member()
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.ObjectAccess{
		Left:       arg.Last,
		Right:      right,
		UseBracket: bracket,
		IsNullsafe: m.Slot(0).Has(token.NULLSAFE_ARROW),
	}), nil
}

func (p *Parser) parseStaticLookup(_ Match, arg *LoopArgument) (*ast.Node, error) {
	right, bracket, err := p.member()
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.StaticLookup{Left: arg.Last, Right: right, UseBracket: bracket}), nil
}

// member 读取 -> 或 :: 之后的成员名
func (p *Parser) member() (*ast.Node, bool, error) {
	t := p.peek()
	switch {
	case t.Type == token.LEFT_BRACE:
		p.advance()
		n, err := p.exprUntil(token.RIGHT_BRACE)
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expect(token.RIGHT_BRACE); err != nil {
			return nil, false, err
		}
		return n, true, nil
	case t.Type == token.VARIABLE || t.Type == token.DOLLAR:
		n, err := p.simpleVariable()
		return n, false, err
	case identLike.Has(t.Type):
		p.advance()
		n := p.arena.NewIdentifier(t.Literal)
		n.Range = p.arena.Span(t.Pos, t.End)
		return n, false, nil
	}
	return nil, false, p.expected("member name", t)
}

func (p *Parser) parsePost(m Match, arg *LoopArgument) (*ast.Node, error) {
	op := "++"
	if m.Slot(0).Has(token.POST_DEC) {
		op = "--"
	}
	return ast.Make(p.arena, ast.Post{Variable: arg.Last, Operator: op}), nil
}

// ============================================================================
// 前缀运算
// ============================================================================

func (p *Parser) parsePre(m Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	op := "++"
	if m.Slot(0).Has(token.PRE_DEC) {
		op = "--"
	}
	return ast.Make(p.arena, ast.Pre{Operator: op, Variable: v}), nil
}

func (p *Parser) parseNegate(_ Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Negate{Value: v}), nil
}

func (p *Parser) parseUnary(m Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Unary{Operator: p.arena.Str(m.Slot(0).First().Literal), Value: v}), nil
}

func (p *Parser) parseSilent(_ Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Silent{Value: v}), nil
}

func (p *Parser) parseReference(_ Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Reference{Value: v}), nil
}

func (p *Parser) parseVariadic(_ Match, arg *LoopArgument) (*ast.Node, error) {
	if arg.stops(p.peek().Type) {
		return ast.Make(p.arena, ast.Variadic{}), nil
	}
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Variadic{Value: v}), nil
}

func (p *Parser) parseCast(m Match, arg *LoopArgument) (*ast.Node, error) {
	lit := m.Slot(0).First().Literal
	name := strings.TrimSpace(strings.Trim(lit, "()"))
	canonical, ok := token.LookupCast(name)
	if !ok {
		return nil, p.internal("unknown cast %s", lit)
	}
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Cast{Type: canonical, Value: v}), nil
}

func (p *Parser) parseClone(_ Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.term(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Clone{Value: v}), nil
}

func (p *Parser) parsePrint(_ Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.requireExpression(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Print{Value: v}), nil
}

func (p *Parser) parseThrow(_ Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.requireExpression(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Throw{Value: v}), nil
}

func (p *Parser) parseInclude(m Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.requireExpression(arg)
	if err != nil {
		return nil, err
	}
	kw := strings.ToLower(m.Slot(0).First().Literal)
	return ast.Make(p.arena, ast.Include{Keyword: p.arena.Str(kw), Value: v}), nil
}

func (p *Parser) parseYield(_ Match, arg *LoopArgument) (*ast.Node, error) {
	if arg.stops(p.peek().Type) {
		return ast.Make(p.arena, ast.Yield{}), nil
	}
	sub := arg.Sub()
	sub.Breakers = sub.Breakers.With(token.DOUBLE_ARROW)
	first, err := p.requireExpression(sub)
	if err != nil {
		return nil, err
	}
	if _, ok := p.match(token.DOUBLE_ARROW); !ok {
		return ast.Make(p.arena, ast.Yield{Value: first}), nil
	}
	value, err := p.requireExpression(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Yield{Key: first, Value: value}), nil
}

func (p *Parser) parseYieldFrom(_ Match, arg *LoopArgument) (*ast.Node, error) {
	v, err := p.requireExpression(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.YieldFrom{Value: v}), nil
}

// ============================================================================
// new / 匿名类
// ============================================================================

func (p *Parser) parseNew(_ Match, arg *LoopArgument) (*ast.Node, error) {
	start := p.position()
	if p.check(token.CLASS) || (p.check(token.READONLY) && p.peekAt(1).Type == token.CLASS) {
		c, err := p.anonymousClass()
		if err != nil {
			return nil, err
		}
		c.Range = p.arena.Span(start, p.previous().End)
		return ast.Make(p.arena, ast.New{Value: c}), nil
	}
	v, err := p.newTarget(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.New{Value: v}), nil
}

// newTarget 读取 new 之后的类名与构造参数
//
// 类名部分只允许名字、变量、静态与成员访问，( 结束类名并作为构造参数。
func (p *Parser) newTarget(arg *LoopArgument) (*ast.Node, error) {
	if p.check(token.LEFT_PAREN) {
		return p.term(arg)
	}
	start := p.position()
	var target *ast.Node
	t := p.peek()
	switch {
	case t.Type == token.VARIABLE || t.Type == token.DOLLAR:
		v, err := p.simpleVariable()
		if err != nil {
			return nil, err
		}
		target = v
	case t.Type == token.STATIC:
		p.advance()
		target = ast.Make(p.arena, ast.StaticKeyword{})
	case t.Type == token.SELF:
		p.advance()
		target = ast.Make(p.arena, ast.Self{})
	case t.Type == token.PARENT:
		p.advance()
		target = ast.Make(p.arena, ast.Parent{})
	case t.Type == token.IDENTIFIER || t.Type == token.NAME || identLike.Has(t.Type):
		p.advance()
		target = p.arena.NewIdentifier(t.Literal)
	default:
		return nil, p.unexpected(t)
	}
	target.Range = p.arena.Span(start, p.previous().End)

	for {
		var n *ast.Node
		switch {
		case p.check(token.ARROW) || p.check(token.NULLSAFE_ARROW):
			nullsafe := p.advance().Type == token.NULLSAFE_ARROW
			right, bracket, err := p.member()
			if err != nil {
				return nil, err
			}
			n = ast.Make(p.arena, ast.ObjectAccess{Left: target, Right: right, UseBracket: bracket, IsNullsafe: nullsafe})
		case p.check(token.DOUBLE_COLON) && (p.peekAt(1).Type == token.VARIABLE || p.peekAt(1).Type == token.DOLLAR):
			p.advance()
			right, err := p.simpleVariable()
			if err != nil {
				return nil, err
			}
			n = ast.Make(p.arena, ast.StaticLookup{Left: target, Right: right})
		case p.check(token.LEFT_BRACKET):
			p.advance()
			right, err := p.exprUntil(token.RIGHT_BRACKET)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			n = ast.Make(p.arena, ast.ArrayLookup{Left: target, Right: right})
		case p.check(token.LEFT_PAREN):
			p.advance()
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			n = ast.Make(p.arena, ast.Call{Callee: target, Arguments: args})
			n.Range = p.arena.Span(start, p.previous().End)
			return n, nil
		default:
			return target, nil
		}
		n.Range = p.arena.Span(start, p.previous().End)
		target = n
	}
}

// anonymousClass 读取 [readonly] class [(args)] [extends A] [implements B] { }
func (p *Parser) anonymousClass() (*ast.Node, error) {
	c := ast.Alloc[ast.AnonymousClass](p.arena)
	if _, ok := p.match(token.READONLY); ok {
		c.IsReadonly = true
	}
	if _, err := p.expect(token.CLASS); err != nil {
		return nil, err
	}
	if _, ok := p.match(token.LEFT_PAREN); ok {
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		c.Arguments = args
	}
	ext, impls, err := p.inheritance()
	if err != nil {
		return nil, err
	}
	c.Extends, c.Implements = ext, impls
	body, err := p.classBody(classRegistry)
	if err != nil {
		return nil, err
	}
	c.Body = body
	return p.arena.Node(c), nil
}

// ============================================================================
// 闭包
// ============================================================================

func (p *Parser) parseAnonymousFunction(m Match, arg *LoopArgument) (*ast.Node, error) {
	f := ast.Alloc[ast.AnonymousFunction](p.arena)
	f.IsStatic = m.Slot(0).Matched()
	f.IsRef = m.Slot(2).Matched()

	params, err := p.parameters(false)
	if err != nil {
		return nil, err
	}
	f.Parameters = params

	if _, ok := p.match(token.USE); ok {
		if _, err := p.expect(token.LEFT_PAREN); err != nil {
			return nil, err
		}
		uses, err := p.exprList(token.RIGHT_PAREN)
		if err != nil {
			return nil, err
		}
		f.Uses = uses
	}
	if f.ReturnType, err = p.returnType(); err != nil {
		return nil, err
	}
	if f.Body, err = p.block(); err != nil {
		return nil, err
	}
	return p.arena.Node(f), nil
}

func (p *Parser) parseArrowFunction(m Match, arg *LoopArgument) (*ast.Node, error) {
	f := ast.Alloc[ast.ArrowFunction](p.arena)
	f.IsStatic = m.Slot(0).Matched()
	f.IsRef = m.Slot(2).Matched()

	params, err := p.parameters(false)
	if err != nil {
		return nil, err
	}
	f.Parameters = params
	if f.ReturnType, err = p.returnType(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOUBLE_ARROW); err != nil {
		return nil, err
	}
	if f.Body, err = p.requireExpression(arg); err != nil {
		return nil, err
	}
	return p.arena.Node(f), nil
}

// returnType 读取可选的 : 返回类型
func (p *Parser) returnType() (*ast.Node, error) {
	if _, ok := p.match(token.COLON); !ok {
		return nil, nil
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, p.expected("type", p.peek())
	}
	return t, nil
}

// ============================================================================
// 数组、list、括号、match
// ============================================================================

func (p *Parser) parseShortArray(_ Match, _ *LoopArgument) (*ast.Node, error) {
	items, err := p.arrayItems(token.RIGHT_BRACKET)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Array{IsShort: true, Items: items}), nil
}

func (p *Parser) parseLongArray(_ Match, _ *LoopArgument) (*ast.Node, error) {
	items, err := p.arrayItems(token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Array{Items: items}), nil
}

func (p *Parser) parseList(_ Match, _ *LoopArgument) (*ast.Node, error) {
	items, err := p.arrayItems(token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.List{Items: items}), nil
}

// arrayItems 读取数组项，支持 key => value 与解构中跳过的位置
func (p *Parser) arrayItems(closer token.TokenType) ([]*ast.Node, error) {
	return p.commaList(closer, func() (*ast.Node, error) {
		start := p.position()
		first, err := p.exprUntil(token.COMMA, token.DOUBLE_ARROW, closer)
		if err != nil {
			return nil, err
		}
		item := ast.Alloc[ast.ArrayItem](p.arena)
		if _, ok := p.match(token.DOUBLE_ARROW); ok {
			value, err := p.exprUntil(token.COMMA, closer)
			if err != nil {
				return nil, err
			}
			item.Key, item.Value = first, value
		} else {
			item.Value = first
		}
		n := p.arena.Node(item)
		n.Range = p.arena.Span(start, p.previous().End)
		return n, nil
	}, func() *ast.Node {
		return ast.Make(p.arena, ast.ArrayItem{})
	})
}

func (p *Parser) parseParenthesis(_ Match, _ *LoopArgument) (*ast.Node, error) {
	v, err := p.exprUntil(token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Parenthesis{Value: v}), nil
}

func (p *Parser) parseMatch(_ Match, _ *LoopArgument) (*ast.Node, error) {
	cond, err := p.exprUntil(token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LEFT_BRACE); err != nil {
		return nil, err
	}
	arms, err := p.commaList(token.RIGHT_BRACE, p.matchArm, nil)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Match{Condition: cond, Arms: arms}), nil
}

func (p *Parser) matchArm() (*ast.Node, error) {
	start := p.position()
	arm := ast.Alloc[ast.MatchArm](p.arena)
	if p.check(token.DEFAULT) {
		p.advance()
	} else {
		conds := p.arena.NewList(2)
		for {
			c, err := p.exprUntil(token.COMMA, token.DOUBLE_ARROW)
			if err != nil {
				return nil, err
			}
			conds = p.arena.Append(conds, c)
			if _, ok := p.match(token.COMMA); !ok || p.check(token.DOUBLE_ARROW) {
				break
			}
		}
		arm.Conditions = conds
	}
	if _, err := p.expect(token.DOUBLE_ARROW); err != nil {
		return nil, err
	}
	expr, err := p.exprUntil(token.COMMA, token.RIGHT_BRACE)
	if err != nil {
		return nil, err
	}
	arm.Expression = expr
	n := p.arena.Node(arm)
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}
