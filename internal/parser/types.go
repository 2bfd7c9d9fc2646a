package parser

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// typeBuilder 由 OptionalType 匹配到的 token 重建类型节点
type typeBuilder struct {
	p    *Parser
	toks []token.Token
	pos  int
}

// buildType 从匹配到的 token 重建类型，tokens 为空时返回 nil
func (p *Parser) buildType(toks []token.Token) (*ast.Node, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	b := &typeBuilder{p: p, toks: toks}
	n, err := b.expr()
	if err != nil {
		return nil, err
	}
	if b.pos != len(toks) {
		return nil, p.internal("type tokens left over at %s", toks[b.pos].Pos)
	}
	return n, nil
}

// parseType 读取当前位置的类型表达式，不是类型时返回 nil
func (p *Parser) parseType() (*ast.Node, error) {
	n := p.typeLen(0)
	if n == 0 {
		return nil, nil
	}
	toks := make([]token.Token, n)
	for i := range toks {
		toks[i] = p.peekAt(i)
	}
	p.skip(n)
	return p.buildType(toks)
}

func (b *typeBuilder) peek() token.TokenType {
	if b.pos >= len(b.toks) {
		return token.EOF
	}
	return b.toks[b.pos].Type
}

func (b *typeBuilder) expr() (*ast.Node, error) {
	switch b.peek() {
	case token.QUESTION:
		b.pos++
		n, err := b.atom()
		if err != nil {
			return nil, err
		}
		n.AsType().IsNullable = true
		return n, nil
	}

	first, err := b.primary()
	if err != nil {
		return nil, err
	}
	op := b.peek()
	if op != token.BIT_OR && op != token.BIT_AND {
		return first, nil
	}

	members := b.p.arena.NewList(4)
	members = b.flatten(members, first, op)
	for b.peek() == op {
		b.pos++
		next, err := b.primary()
		if err != nil {
			return nil, err
		}
		members = b.flatten(members, next, op)
	}
	if op == token.BIT_OR {
		return ast.Make(b.p.arena, ast.UnionType{Types: members}), nil
	}
	return ast.Make(b.p.arena, ast.IntersectionType{Types: members}), nil
}

// flatten 同类复合类型并入父节点
func (b *typeBuilder) flatten(list []*ast.Node, n *ast.Node, op token.TokenType) []*ast.Node {
	if op == token.BIT_OR {
		if u := n.AsUnionType(); u != nil {
			return b.p.arena.Append(list, u.Types...)
		}
	} else if i := n.AsIntersectionType(); i != nil {
		return b.p.arena.Append(list, i.Types...)
	}
	return b.p.arena.Append(list, n)
}

func (b *typeBuilder) primary() (*ast.Node, error) {
	if b.peek() != token.LEFT_PAREN {
		return b.atom()
	}
	b.pos++
	inner, err := b.expr()
	if err != nil {
		return nil, err
	}
	if b.peek() != token.RIGHT_PAREN {
		return nil, b.p.internal("unbalanced type group")
	}
	b.pos++
	return inner, nil
}

func (b *typeBuilder) atom() (*ast.Node, error) {
	if b.pos >= len(b.toks) || !typeAtoms.Has(b.peek()) {
		return nil, b.p.internal("type atom expected")
	}
	t := b.toks[b.pos]
	b.pos++
	return ast.Make(b.p.arena, ast.Type{Name: b.p.arena.Str(t.Literal)}), nil
}
