package parser

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// attributes 读取连续的 #[...]，结果与其前的注释一起进入 pending，
// 由下一个节点作为前置附注带走
func (p *Parser) attributes() error {
	for p.check(token.ATTRIBUTE_OPEN) {
		start := p.position()
		p.advance()
		saved := p.takePending()
		items, err := p.commaList(token.RIGHT_BRACKET, p.attributeItem, nil)
		if err != nil {
			return err
		}
		n := ast.Make(p.arena, ast.Attribute{Items: items})
		n.Range = p.arena.Span(start, p.previous().End)
		if inner := p.takePending(); len(inner) > 0 {
			n.AddTrailing(p.arena, inner...)
		}
		p.pending = append(saved, n)
		p.trail(n)
	}
	return nil
}

func (p *Parser) attributeItem() (*ast.Node, error) {
	start := p.position()
	t := p.peek()
	if t.Type != token.NAME && !identLike.Has(t.Type) {
		return nil, p.expected("attribute name", t)
	}
	p.advance()
	item := ast.AttributeItem{Name: p.arena.Str(t.Literal)}
	if _, ok := p.match(token.LEFT_PAREN); ok {
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		item.Arguments = args
	}
	n := ast.Make(p.arena, item)
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}
