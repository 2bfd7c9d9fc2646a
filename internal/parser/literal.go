package parser

import (
	"strings"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 字面量
// ============================================================================

func (p *Parser) parseNumber(m Match, _ *LoopArgument) (*ast.Node, error) {
	return p.arena.NewNumber(m.Slot(0).First().Literal), nil
}

func (p *Parser) parseString(m Match, _ *LoopArgument) (*ast.Node, error) {
	lit := m.Slot(0).First().Literal
	if len(lit) < 2 {
		return nil, p.internal("malformed string literal %q", lit)
	}
	return p.arena.NewString(lit[:1], lit[1:len(lit)-1]), nil
}

func (p *Parser) parseIdentifier(m Match, _ *LoopArgument) (*ast.Node, error) {
	return p.arena.NewIdentifier(m.Slot(0).First().Literal), nil
}

func (p *Parser) parseMagic(m Match, _ *LoopArgument) (*ast.Node, error) {
	name := strings.ToUpper(m.Slot(0).First().Literal)
	return ast.Make(p.arena, ast.Magic{Name: p.arena.Str(name)}), nil
}

func (p *Parser) parseBoolean(m Match, _ *LoopArgument) (*ast.Node, error) {
	return ast.Make(p.arena, ast.Boolean{Value: m.Slot(0).Has(token.TRUE)}), nil
}

func (p *Parser) parseNull(_ Match, _ *LoopArgument) (*ast.Node, error) {
	return ast.Make(p.arena, ast.Null{}), nil
}

func (p *Parser) parseSelf(_ Match, _ *LoopArgument) (*ast.Node, error) {
	return ast.Make(p.arena, ast.Self{}), nil
}

func (p *Parser) parseParent(_ Match, _ *LoopArgument) (*ast.Node, error) {
	return ast.Make(p.arena, ast.Parent{}), nil
}

func (p *Parser) parseStaticKeyword(_ Match, _ *LoopArgument) (*ast.Node, error) {
	return ast.Make(p.arena, ast.StaticKeyword{}), nil
}

// ============================================================================
// 变量
// ============================================================================

func (p *Parser) parseVariable(m Match, _ *LoopArgument) (*ast.Node, error) {
	t := m.Slot(0).First()
	return p.variable(t), nil
}

// variable 由 VARIABLE token 创建节点，$this 单独成类
func (p *Parser) variable(t token.Token) *ast.Node {
	if t.Literal == "this" {
		return ast.Make(p.arena, ast.This{})
	}
	name := p.arena.NewIdentifier(t.Literal)
	name.Range = p.arena.Span(t.Pos, t.End)
	return ast.Make(p.arena, ast.Variable{Name: name})
}

// parseDollar $$name 与 ${expr}
func (p *Parser) parseDollar(_ Match, _ *LoopArgument) (*ast.Node, error) {
	return p.dollarRest()
}

// simpleVariable 读取不带后缀的变量：$a、$$a、${expr}
func (p *Parser) simpleVariable() (*ast.Node, error) {
	start := p.position()
	t := p.advance()
	var n *ast.Node
	switch t.Type {
	case token.VARIABLE:
		n = p.variable(t)
	case token.DOLLAR:
		v, err := p.dollarRest()
		if err != nil {
			return nil, err
		}
		n = v
	default:
		return nil, p.expected("variable", t)
	}
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}

// dollarRest 读取 $ 之后的部分，$ 已被消费
func (p *Parser) dollarRest() (*ast.Node, error) {
	if _, ok := p.match(token.LEFT_BRACE); ok {
		inner, err := p.exprUntil(token.RIGHT_BRACE)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RIGHT_BRACE); err != nil {
			return nil, err
		}
		return ast.Make(p.arena, ast.Variable{Name: inner, IsBraced: true}), nil
	}
	inner, err := p.simpleVariable()
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Variable{Name: inner}), nil
}

// ============================================================================
// 插值字符串
// ============================================================================

func (p *Parser) parseEncapsed(m Match, _ *LoopArgument) (*ast.Node, error) {
	quote := m.Slot(0).First().Literal
	parts, err := p.encapsedParts(token.ENCAPSED_STRING_CLOSE)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Encapsed{Quote: p.arena.Str(quote), Values: parts}), nil
}

func (p *Parser) parseHereDoc(m Match, _ *LoopArgument) (*ast.Node, error) {
	label := m.Slot(0).First().Literal
	parts, err := p.encapsedParts(token.HEREDOC_CLOSE)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.HereDoc{
		Label:  p.arena.Str(label),
		Indent: p.arena.Str(closerIndent(p.previous(), label)),
		Values: parts,
	}), nil
}

func (p *Parser) parseNowDoc(m Match, _ *LoopArgument) (*ast.Node, error) {
	label := m.Slot(0).First().Literal
	var value string
	if t, ok := p.match(token.ENCAPSED_STRING); ok {
		value = t.Literal
	}
	closer, err := p.expect(token.NOWDOC_CLOSE)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.NowDoc{
		Label:  p.arena.Str(label),
		Indent: p.arena.Str(closerIndent(closer, label)),
		Value:  p.arena.Str(value),
	}), nil
}

// closerIndent 结束标签前的空白
func closerIndent(closer token.Token, label string) string {
	return strings.TrimSuffix(closer.Literal, label)
}

// encapsedParts 读取插值片段直到 closer（消费 closer）
func (p *Parser) encapsedParts(closer token.TokenType) ([]*ast.Node, error) {
	list := p.arena.NewList(4)
	for {
		t := p.peek()
		start := t.Pos
		var part *ast.EncapsedPart

		switch t.Type {
		case closer:
			p.advance()
			return list, nil

		case token.ENCAPSED_STRING:
			p.advance()
			s := p.arena.NewString("", t.Literal)
			s.Range = p.arena.Span(t.Pos, t.End)
			part = &ast.EncapsedPart{Value: s}

		case token.VARIABLE:
			v, err := p.interpolatedVariable()
			if err != nil {
				return nil, err
			}
			part = &ast.EncapsedPart{Value: v}

		case token.ADVANCE_INTERPOLATION_OPEN:
			p.advance()
			inner, err := p.exprUntil(token.ADVANCE_INTERPOLATION_CLOSE)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.ADVANCE_INTERPOLATION_CLOSE); err != nil {
				return nil, err
			}
			if t.Literal == "${" {
				v := ast.Make(p.arena, ast.Variable{Name: inner, IsBraced: true})
				v.Range = p.arena.Span(start, p.previous().End)
				part = &ast.EncapsedPart{Value: v}
			} else {
				part = &ast.EncapsedPart{IsAdvanced: true, Value: inner}
			}

		default:
			return nil, p.unexpected(t)
		}

		n := ast.Make(p.arena, *part)
		n.Range = p.arena.Span(start, p.previous().End)
		list = p.arena.Append(list, n)
	}
}

// interpolatedVariable 简单插值：$a、$a[0]、$a[key]、$a[$i]、$a->b
func (p *Parser) interpolatedVariable() (*ast.Node, error) {
	t := p.advance()
	v := p.variable(t)
	v.Range = p.arena.Span(t.Pos, t.End)

	switch p.peek().Type {
	case token.LEFT_BRACKET:
		p.advance()
		k := p.advance()
		var key *ast.Node
		switch k.Type {
		case token.NUMBER:
			key = p.arena.NewNumber(k.Literal)
		case token.IDENTIFIER:
			key = p.arena.NewIdentifier(k.Literal)
		case token.VARIABLE:
			key = p.variable(k)
		default:
			return nil, p.unexpected(k)
		}
		key.Range = p.arena.Span(k.Pos, k.End)
		if _, err := p.expect(token.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		n := ast.Make(p.arena, ast.ArrayLookup{Left: v, Right: key})
		n.Range = p.arena.Span(t.Pos, p.previous().End)
		return n, nil

	case token.ARROW, token.NULLSAFE_ARROW:
		nullsafe := p.advance().Type == token.NULLSAFE_ARROW
		m, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		right := p.arena.NewIdentifier(m.Literal)
		right.Range = p.arena.Span(m.Pos, m.End)
		n := ast.Make(p.arena, ast.ObjectAccess{Left: v, Right: right, IsNullsafe: nullsafe})
		n.Range = p.arena.Span(t.Pos, p.previous().End)
		return n, nil
	}
	return v, nil
}
