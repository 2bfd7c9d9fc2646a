package parser

import (
	"strings"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// namespace / use / const / declare
// ============================================================================

func (p *Parser) parseNamespace(m Match, _ *LoopArgument) (*ast.Node, error) {
	node := ast.Namespace{Name: p.arena.Str(m.Slot(1).First().Literal)}
	if p.check(token.LEFT_BRACE) {
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		node.Body, node.IsBracket = body, true
		return ast.Make(p.arena, node), nil
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	start := p.position()
	stmts, _, err := p.statements(p.statementArg([]token.TokenType{token.NAMESPACE}))
	if err != nil {
		return nil, err
	}
	body := ast.Make(p.arena, ast.Block{Statements: stmts})
	body.Range = p.arena.Span(start, p.previous().End)
	node.Body = body
	return ast.Make(p.arena, node), nil
}

func useModifier(t token.TokenType) ast.UseModifier {
	switch t {
	case token.FUNCTION:
		return ast.UseFunction
	case token.CONST:
		return ast.UseConst
	}
	return ast.UseNone
}

func (p *Parser) parseUse(_ Match, _ *LoopArgument) (*ast.Node, error) {
	node := ast.Use{}
	if t, ok := p.match(token.FUNCTION, token.CONST); ok {
		node.Modifier = useModifier(t.Type)
	}

	// use Foo\{A, B}：分组前缀以 \ 结尾
	if t := p.peek(); t.Type == token.NAME && strings.HasSuffix(t.Literal, `\`) && p.peekAt(1).Type == token.LEFT_BRACE {
		p.skip(2)
		node.Prefix = p.arena.Str(strings.TrimSuffix(t.Literal, `\`))
		items, err := p.commaList(token.RIGHT_BRACE, func() (*ast.Node, error) {
			mod := ast.UseNone
			if t, ok := p.match(token.FUNCTION, token.CONST); ok {
				mod = useModifier(t.Type)
			}
			return p.useItem(mod)
		}, nil)
		if err != nil {
			return nil, err
		}
		node.Items = items
		return ast.Make(p.arena, node), nil
	}

	items := p.arena.NewList(1)
	for {
		item, err := p.useItem(ast.UseNone)
		if err != nil {
			return nil, err
		}
		items = p.arena.Append(items, item)
		if _, ok := p.match(token.COMMA); !ok {
			break
		}
		p.trail(item)
	}
	node.Items = items
	return ast.Make(p.arena, node), nil
}

func (p *Parser) useItem(mod ast.UseModifier) (*ast.Node, error) {
	start := p.position()
	t := p.peek()
	if t.Type != token.NAME && !identLike.Has(t.Type) {
		return nil, p.expected("name", t)
	}
	p.advance()
	item := ast.UseItem{Modifier: mod, Name: p.arena.Str(t.Literal)}
	if _, ok := p.match(token.AS); ok {
		alias := p.peek()
		if !identLike.Has(alias.Type) {
			return nil, p.expected("alias", alias)
		}
		p.advance()
		item.Alias = p.arena.Str(alias.Literal)
	}
	n := ast.Make(p.arena, item)
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}

func (p *Parser) parseConst(_ Match, _ *LoopArgument) (*ast.Node, error) {
	items, err := p.constItems()
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Const{Items: items}), nil
}

// constItems 读取 NAME = expr, ...，停在 ; 之前
func (p *Parser) constItems() ([]*ast.Node, error) {
	items := p.arena.NewList(1)
	for {
		start := p.position()
		t := p.peek()
		if !identLike.Has(t.Type) {
			return nil, p.expected("constant name", t)
		}
		p.advance()
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		v, err := p.exprUntil(token.COMMA, token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		n := ast.Make(p.arena, ast.ConstItem{Name: p.arena.Str(t.Literal), Value: v})
		n.Range = p.arena.Span(start, p.previous().End)
		items = p.arena.Append(items, n)
		if _, ok := p.match(token.COMMA); !ok {
			return items, nil
		}
		p.trail(n)
	}
}

func (p *Parser) parseDeclare(_ Match, _ *LoopArgument) (*ast.Node, error) {
	args, err := p.commaList(token.RIGHT_PAREN, func() (*ast.Node, error) {
		start := p.position()
		name, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		v, err := p.exprUntil(token.COMMA, token.RIGHT_PAREN)
		if err != nil {
			return nil, err
		}
		n := ast.Make(p.arena, ast.DeclareArgument{Name: p.arena.Str(name.Literal), Value: v})
		n.Range = p.arena.Span(start, p.previous().End)
		return n, nil
	}, nil)
	if err != nil {
		return nil, err
	}

	node := ast.Declare{Arguments: args}
	switch {
	case p.check(token.SEMICOLON):
		p.advance()
		node.BodyType = ast.BodyEmpty
	case p.check(token.CLOSE_TAG):
		node.BodyType = ast.BodyEmpty
	case p.check(token.COLON):
		p.advance()
		body, _, err := p.shortBlock(token.ENDDECLARE)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDDECLARE); err != nil {
			return nil, err
		}
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		node.Body, node.BodyType = body, ast.BodyShort
	default:
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		node.Body, node.BodyType = body, ast.BodyBasic
	}
	return ast.Make(p.arena, node), nil
}

// ============================================================================
// 类、接口、trait、枚举
// ============================================================================

func (p *Parser) parseClass(m Match, _ *LoopArgument) (*ast.Node, error) {
	c := ast.Alloc[ast.Class](p.arena)
	mods := m.Slot(0)
	c.IsReadonly = mods.Has(token.READONLY)
	switch {
	case mods.Has(token.ABSTRACT):
		c.Inheritance = ast.InheritanceAbstract
	case mods.Has(token.FINAL):
		c.Inheritance = ast.InheritanceFinal
	}
	c.Name = p.arena.Str(m.Slot(2).First().Literal)

	ext, impls, err := p.inheritance()
	if err != nil {
		return nil, err
	}
	c.Extends, c.Implements = ext, impls
	if c.Body, err = p.classBody(classRegistry); err != nil {
		return nil, err
	}
	return p.arena.Node(c), nil
}

// inheritance 读取可选的 extends 与 implements
func (p *Parser) inheritance() (*ast.Node, []*ast.Node, error) {
	var ext *ast.Node
	if _, ok := p.match(token.EXTENDS); ok {
		n, err := p.name()
		if err != nil {
			return nil, nil, err
		}
		ext = n
	}
	var impls []*ast.Node
	if _, ok := p.match(token.IMPLEMENTS); ok {
		list, err := p.names()
		if err != nil {
			return nil, nil, err
		}
		impls = list
	}
	return ext, impls, nil
}

// classBody 读取 { 成员 }
func (p *Parser) classBody(r *Registry) ([]*ast.Node, error) {
	if _, err := p.expect(token.LEFT_BRACE); err != nil {
		return nil, err
	}
	arg := &LoopArgument{
		Registry:   r,
		Separators: Set(token.SEMICOLON),
		Breakers:   BlockBreakers,
		ShouldFail: true,
	}
	body, _, err := p.statements(arg)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	return body, nil
}

func (p *Parser) parseInterface(m Match, _ *LoopArgument) (*ast.Node, error) {
	node := ast.Interface{Name: p.arena.Str(m.Slot(1).First().Literal)}
	if _, ok := p.match(token.EXTENDS); ok {
		list, err := p.names()
		if err != nil {
			return nil, err
		}
		node.Extends = list
	}
	body, err := p.classBody(classRegistry)
	if err != nil {
		return nil, err
	}
	node.Body = body
	return ast.Make(p.arena, node), nil
}

func (p *Parser) parseTrait(m Match, _ *LoopArgument) (*ast.Node, error) {
	body, err := p.classBody(classRegistry)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Trait{Name: p.arena.Str(m.Slot(1).First().Literal), Body: body}), nil
}

func (p *Parser) parseEnum(m Match, _ *LoopArgument) (*ast.Node, error) {
	node := ast.Enum{Name: p.arena.Str(m.Slot(1).First().Literal)}
	if _, ok := p.match(token.COLON); ok {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, p.expected("type", p.peek())
		}
		node.BackedType = t
	}
	if _, ok := p.match(token.IMPLEMENTS); ok {
		list, err := p.names()
		if err != nil {
			return nil, err
		}
		node.Implements = list
	}
	body, err := p.classBody(enumRegistry)
	if err != nil {
		return nil, err
	}
	node.Body = body
	return ast.Make(p.arena, node), nil
}

func (p *Parser) parseEnumItem(m Match, _ *LoopArgument) (*ast.Node, error) {
	node := ast.EnumItem{Name: p.arena.Str(m.Slot(1).First().Literal)}
	if _, ok := p.match(token.ASSIGN); ok {
		v, err := p.exprUntil(token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		node.Value = v
	}
	return ast.Make(p.arena, node), nil
}

// ============================================================================
// trait use
// ============================================================================

func (p *Parser) parseTraitUse(_ Match, _ *LoopArgument) (*ast.Node, error) {
	traits, err := p.names()
	if err != nil {
		return nil, err
	}
	node := ast.TraitUse{Traits: traits}
	if _, ok := p.match(token.SEMICOLON); ok {
		return ast.Make(p.arena, node), nil
	}
	if _, err := p.expect(token.LEFT_BRACE); err != nil {
		return nil, err
	}

	rules := p.arena.NewList(2)
	for {
		p.flushComments()
		if p.check(token.RIGHT_BRACE) {
			if rest := p.takePending(); len(rest) > 0 {
				if len(rules) > 0 {
					rules[len(rules)-1].AddTrailing(p.arena, rest...)
				} else {
					p.pending = rest
				}
			}
			p.advance()
			break
		}
		leading := p.takePending()
		r, err := p.traitRule()
		if err != nil {
			return nil, err
		}
		p.lead(r, leading)
		p.trail(r)
		rules = p.arena.Append(rules, r)
	}
	node.Adaptations = rules
	return ast.Make(p.arena, node), nil
}

// traitRule [Trait::]method insteadof A, B; 或 [Trait::]method as [visibility] [alias];
func (p *Parser) traitRule() (*ast.Node, error) {
	start := p.position()
	rule := ast.TraitUseRule{}
	if p.peekAt(1).Type == token.DOUBLE_COLON {
		t, err := p.name()
		if err != nil {
			return nil, err
		}
		rule.Trait = t
		p.advance()
	}
	method := p.peek()
	if !identLike.Has(method.Type) {
		return nil, p.expected("method name", method)
	}
	p.advance()
	rule.Method = p.arena.Str(method.Literal)

	switch t := p.advance(); t.Type {
	case token.INSTEADOF:
		list, err := p.names()
		if err != nil {
			return nil, err
		}
		rule.InsteadOf = list
	case token.AS:
		if v := p.peek(); visibilities.Has(v.Type) {
			p.advance()
			rule.Visibility = ast.VisibilityFromToken(v.Type)
		}
		if a := p.peek(); identLike.Has(a.Type) {
			p.advance()
			rule.Alias = p.arena.Str(a.Literal)
		}
		if rule.Visibility == ast.VisibilityNone && rule.Alias == "" {
			return nil, p.expected("alias", p.peek())
		}
	default:
		return nil, p.expected("insteadof", t)
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	n := ast.Make(p.arena, rule)
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}

// ============================================================================
// 函数与方法
// ============================================================================

func (p *Parser) parseFunction(m Match, _ *LoopArgument) (*ast.Node, error) {
	f := ast.Alloc[ast.Function](p.arena)
	f.IsRef = m.Slot(1).Matched()
	f.Name = p.arena.Str(m.Slot(2).First().Literal)

	var err error
	if f.Parameters, err = p.parameters(false); err != nil {
		return nil, err
	}
	if f.ReturnType, err = p.returnType(); err != nil {
		return nil, err
	}
	if f.Body, err = p.block(); err != nil {
		return nil, err
	}
	return p.arena.Node(f), nil
}

func (p *Parser) parseMethod(m Match, _ *LoopArgument) (*ast.Node, error) {
	f := ast.Alloc[ast.Method](p.arena)
	for _, t := range m.Slot(0).Tokens {
		switch t.Type {
		case token.ABSTRACT:
			f.Inheritance = ast.InheritanceAbstract
		case token.FINAL:
			f.Inheritance = ast.InheritanceFinal
		case token.STATIC:
			f.IsStatic = true
		default:
			f.Visibility = ast.VisibilityFromToken(t.Type)
		}
	}
	f.IsRef = m.Slot(2).Matched()
	f.Name = p.arena.Str(m.Slot(3).First().Literal)

	var err error
	if f.Parameters, err = p.parameters(strings.EqualFold(f.Name, "__construct")); err != nil {
		return nil, err
	}
	if f.ReturnType, err = p.returnType(); err != nil {
		return nil, err
	}
	if _, ok := p.match(token.SEMICOLON); ok {
		return p.arena.Node(f), nil
	}
	if f.Body, err = p.block(); err != nil {
		return nil, err
	}
	return p.arena.Node(f), nil
}

// parameters 读取参数列表，( 已被消费；promote 为 true 时允许构造函数提升
func (p *Parser) parameters(promote bool) ([]*ast.Node, error) {
	return p.commaList(token.RIGHT_PAREN, func() (*ast.Node, error) {
		return p.parameter(promote)
	}, nil)
}

var parameterPattern = []Lookup{
	Modifiers(VisibilityRule(), OneOf(token.READONLY)),
	OptionalType(),
	Optional(token.BIT_AND),
	Optional(token.ELLIPSIS),
	Equal(token.VARIABLE),
}

func (p *Parser) parameter(promote bool) (*ast.Node, error) {
	start := p.position()
	m, ok := p.lookup(parameterPattern...)
	if !ok {
		return nil, p.unexpected(p.peek())
	}
	if m.Slot(0).Matched() && !promote {
		return nil, p.unexpected(m.Slot(0).First())
	}
	p.skip(m.Size)

	typ, err := p.buildType(m.Slot(1).Tokens)
	if err != nil {
		return nil, err
	}
	param := ast.Parameter{
		Type:       typ,
		IsRef:      m.Slot(2).Matched(),
		IsVariadic: m.Slot(3).Matched(),
		Name:       p.arena.Str(m.Slot(4).First().Literal),
	}
	if _, ok := p.match(token.ASSIGN); ok {
		v, err := p.exprUntil(token.COMMA, token.RIGHT_PAREN)
		if err != nil {
			return nil, err
		}
		param.Default = v
	}
	n := ast.Make(p.arena, param)
	n.Range = p.arena.Span(start, p.previous().End)
	if !m.Slot(0).Matched() {
		return n, nil
	}

	cp := ast.ConstructorParameter{Parameter: n}
	for _, t := range m.Slot(0).Tokens {
		if t.Type == token.READONLY {
			cp.Modifier = ast.ModifierReadonly
			continue
		}
		cp.Visibilities = append(cp.Visibilities, ast.VisibilityFromToken(t.Type))
	}
	c := ast.Make(p.arena, cp)
	c.Range = p.arena.Span(start, p.previous().End)
	return c, nil
}

// ============================================================================
// 属性与类常量
// ============================================================================

func (p *Parser) parseConstProperty(m Match, _ *LoopArgument) (*ast.Node, error) {
	node := ast.ConstProperty{}
	for _, t := range m.Slot(0).Tokens {
		if t.Type == token.FINAL {
			node.IsFinal = true
			continue
		}
		node.Visibilities = append(node.Visibilities, ast.VisibilityFromToken(t.Type))
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	node.Type = t
	if node.Items, err = p.constItems(); err != nil {
		return nil, err
	}
	return ast.Make(p.arena, node), nil
}

func (p *Parser) parseProperty(m Match, _ *LoopArgument) (*ast.Node, error) {
	node := ast.Property{}
	for _, t := range m.Slot(0).Tokens {
		switch t.Type {
		case token.VAR:
			node.IsVar = true
		case token.STATIC:
			if node.Modifier == ast.ModifierNone {
				node.Modifier = ast.ModifierStatic
			}
		case token.READONLY:
			if node.Modifier == ast.ModifierNone {
				node.Modifier = ast.ModifierReadonly
			}
		default:
			node.Visibilities = append(node.Visibilities, ast.VisibilityFromToken(t.Type))
		}
	}
	typ, err := p.buildType(m.Slot(1).Tokens)
	if err != nil {
		return nil, err
	}
	node.Type = typ

	items := p.arena.NewList(1)
	for {
		start := p.position()
		t, err := p.expect(token.VARIABLE)
		if err != nil {
			return nil, err
		}
		item := ast.PropertyItem{Type: ast.CloneInto(typ, p.arena), Name: p.arena.Str(t.Literal)}
		if _, ok := p.match(token.ASSIGN); ok {
			v, err := p.exprUntil(token.COMMA, token.SEMICOLON, token.LEFT_BRACE)
			if err != nil {
				return nil, err
			}
			item.Value = v
		}
		n := ast.Make(p.arena, item)
		n.Range = p.arena.Span(start, p.previous().End)
		items = p.arena.Append(items, n)
		if _, ok := p.match(token.COMMA); !ok {
			break
		}
		p.trail(n)
	}
	node.Items = items

	if p.check(token.LEFT_BRACE) {
		hooks, err := p.hooks()
		if err != nil {
			return nil, err
		}
		node.Hooks = hooks
	}
	return ast.Make(p.arena, node), nil
}

// hooks 读取属性钩子 { get; set(T $v) { } }
func (p *Parser) hooks() ([]*ast.Node, error) {
	p.advance()
	list := p.arena.NewList(2)
	for {
		if err := p.attributes(); err != nil {
			return nil, err
		}
		p.flushComments()
		if p.check(token.RIGHT_BRACE) {
			if rest := p.takePending(); len(rest) > 0 {
				if len(list) > 0 {
					list[len(list)-1].AddTrailing(p.arena, rest...)
				} else {
					p.pending = rest
				}
			}
			p.advance()
			return list, nil
		}
		leading := p.takePending()
		h, err := p.hook()
		if err != nil {
			return nil, err
		}
		p.lead(h, leading)
		p.trail(h)
		list = p.arena.Append(list, h)
	}
}

func (p *Parser) hook() (*ast.Node, error) {
	start := p.position()
	h := ast.Alloc[ast.PropertyHook](p.arena)
	if _, ok := p.match(token.FINAL); ok {
		h.IsFinal = true
	}
	if _, ok := p.match(token.BIT_AND); ok {
		h.IsRef = true
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(name.Literal) {
	case "get":
		h.IsGet = true
	case "set":
	default:
		return nil, p.expected("get or set", name)
	}

	if _, ok := p.match(token.LEFT_PAREN); ok {
		if h.Parameters, err = p.parameters(false); err != nil {
			return nil, err
		}
	}
	switch {
	case p.check(token.SEMICOLON):
		p.advance()
	case p.check(token.DOUBLE_ARROW):
		p.advance()
		v, err := p.exprUntil(token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		h.Body, h.IsShort = v, true
	default:
		if h.Body, err = p.block(); err != nil {
			return nil, err
		}
	}
	n := p.arena.Node(h)
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}
