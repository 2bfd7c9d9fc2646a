package parser

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 内联文本
// ============================================================================

// inline 读取 [?>] 文本 [<?php]，<?= 留给 Echo 模块
func (p *Parser) inline() (*ast.Node, error) {
	start := p.position()
	in := ast.Alloc[ast.Inline](p.arena)
	if t, ok := p.match(token.CLOSE_TAG); ok {
		in.Closer = p.arena.Str(t.Literal)
	}
	if t, ok := p.match(token.INLINE); ok {
		in.Text = p.arena.Str(t.Literal)
	}
	switch t := p.peek(); t.Type {
	case token.OPEN_TAG, token.OPEN_TAG_ASP:
		p.advance()
		in.Opener = p.arena.Str(normalizeTag(t.Literal))
	case token.OPEN_TAG_ECHO:
		in.Opener = p.arena.Str(t.Literal)
	}
	n := p.arena.Node(in)
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}

// endStatement 消费短形式结构结尾的分号，后面紧跟 ?> 时分号可以省略
func (p *Parser) endStatement() error {
	if _, ok := p.match(token.SEMICOLON); ok {
		return nil
	}
	if p.check(token.CLOSE_TAG) || p.isAtEnd() {
		return nil
	}
	return p.expected(";", p.peek())
}

// condition 读取 ( 之后的条件并消费 )
func (p *Parser) condition() (*ast.Node, error) {
	cond, err := p.exprUntil(token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

// ============================================================================
// if / elseif / else
// ============================================================================

func (p *Parser) parseIf(_ Match, _ *LoopArgument) (*ast.Node, error) {
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	if p.check(token.COLON) {
		return p.shortIf(cond)
	}
	return p.curlyIf(cond)
}

func (p *Parser) curlyIf(cond *ast.Node) (*ast.Node, error) {
	valid, err := p.statement()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Condition: cond, Valid: valid}

	switch {
	case p.check(token.ELSEIF):
		start := p.position()
		p.advance()
		leading := p.takePending()
		if _, err := p.expect(token.LEFT_PAREN); err != nil {
			return nil, err
		}
		c, err := p.condition()
		if err != nil {
			return nil, err
		}
		next, err := p.curlyIf(c)
		if err != nil {
			return nil, err
		}
		next.Range = p.arena.Span(start, p.previous().End)
		p.lead(next, leading)
		node.Invalid = next

	case p.check(token.ELSE):
		start := p.position()
		p.advance()
		leading := p.takePending()
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		e := ast.Make(p.arena, ast.Else{Body: body})
		e.Range = p.arena.Span(start, p.previous().End)
		p.lead(e, leading)
		node.Invalid = e
	}
	return ast.Make(p.arena, *node), nil
}

// shortIf if (...): ... elseif (...): ... else: ... endif;
//
// elseif 链中最内层的节点负责消费 endif。
func (p *Parser) shortIf(cond *ast.Node) (*ast.Node, error) {
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	valid, stop, err := p.shortBlock(token.ELSEIF, token.ELSE, token.ENDIF)
	if err != nil {
		return nil, err
	}
	node := &ast.If{Condition: cond, Valid: valid, IsShort: true}

	start := p.position()
	p.advance()
	switch stop {
	case token.ELSEIF:
		leading := p.takePending()
		if _, err := p.expect(token.LEFT_PAREN); err != nil {
			return nil, err
		}
		c, err := p.condition()
		if err != nil {
			return nil, err
		}
		next, err := p.shortIf(c)
		if err != nil {
			return nil, err
		}
		next.Range = p.arena.Span(start, p.previous().End)
		p.lead(next, leading)
		node.Invalid = next
		return ast.Make(p.arena, *node), nil

	case token.ELSE:
		leading := p.takePending()
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		body, _, err := p.shortBlock(token.ENDIF)
		if err != nil {
			return nil, err
		}
		e := ast.Make(p.arena, ast.Else{Body: body, IsShort: true})
		e.Range = p.arena.Span(start, p.previous().End)
		p.lead(e, leading)
		node.Invalid = e
		if _, err := p.expect(token.ENDIF); err != nil {
			return nil, err
		}
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return ast.Make(p.arena, *node), nil
}

// ============================================================================
// 循环
// ============================================================================

// loopBody 读取循环主体：; 空主体、: 短形式（直到 end）或普通语句
func (p *Parser) loopBody(end token.TokenType) (*ast.Node, ast.BodyType, error) {
	switch {
	case p.check(token.SEMICOLON):
		p.advance()
		return nil, ast.BodyEmpty, nil
	case p.check(token.COLON):
		p.advance()
		body, _, err := p.shortBlock(end)
		if err != nil {
			return nil, 0, err
		}
		if _, err := p.expect(end); err != nil {
			return nil, 0, err
		}
		if err := p.endStatement(); err != nil {
			return nil, 0, err
		}
		return body, ast.BodyShort, nil
	}
	body, err := p.statement()
	if err != nil {
		return nil, 0, err
	}
	return body, ast.BodyBasic, nil
}

func (p *Parser) parseWhile(_ Match, _ *LoopArgument) (*ast.Node, error) {
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	body, bt, err := p.loopBody(token.ENDWHILE)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.While{Condition: cond, Body: body, BodyType: bt}), nil
}

func (p *Parser) parseDoWhile(_ Match, _ *LoopArgument) (*ast.Node, error) {
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	start := p.position()
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	leading := p.takePending()
	if _, err := p.expect(token.LEFT_PAREN); err != nil {
		return nil, err
	}
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	c := ast.Make(p.arena, ast.DoWhileCondition{Condition: cond})
	c.Range = p.arena.Span(start, p.previous().End)
	p.lead(c, leading)
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.DoWhile{Body: body, Condition: c}), nil
}

func (p *Parser) parseFor(_ Match, _ *LoopArgument) (*ast.Node, error) {
	inits, err := p.forClause(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	conds, err := p.forClause(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	steps, err := p.forClause(token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	body, bt, err := p.loopBody(token.ENDFOR)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.For{
		Inits:      inits,
		Conditions: conds,
		Steps:      steps,
		Body:       body,
		BodyType:   bt,
	}), nil
}

// forClause for 头部的一段：逗号分隔的表达式，消费结尾的 end
func (p *Parser) forClause(end token.TokenType) ([]*ast.Node, error) {
	if _, ok := p.match(end); ok {
		return nil, nil
	}
	list := p.arena.NewList(2)
	for {
		n, err := p.exprUntil(token.COMMA, end)
		if err != nil {
			return nil, err
		}
		list = p.arena.Append(list, n)
		if _, ok := p.match(token.COMMA); !ok {
			break
		}
	}
	if _, err := p.expect(end); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *Parser) parseForeach(_ Match, _ *LoopArgument) (*ast.Node, error) {
	source, err := p.exprUntil(token.AS)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AS); err != nil {
		return nil, err
	}
	first, err := p.exprUntil(token.DOUBLE_ARROW, token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	node := ast.Foreach{Source: source, Value: first}
	if _, ok := p.match(token.DOUBLE_ARROW); ok {
		value, err := p.exprUntil(token.RIGHT_PAREN)
		if err != nil {
			return nil, err
		}
		node.Key, node.Value = first, value
	}
	if _, err := p.expect(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if node.Body, node.BodyType, err = p.loopBody(token.ENDFOREACH); err != nil {
		return nil, err
	}
	return ast.Make(p.arena, node), nil
}

// ============================================================================
// switch
// ============================================================================

func (p *Parser) parseSwitch(_ Match, _ *LoopArgument) (*ast.Node, error) {
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	node := ast.Switch{Condition: cond}
	closer := token.RIGHT_BRACE
	if _, ok := p.match(token.COLON); ok {
		node.IsShort = true
		closer = token.ENDSWITCH
	} else if _, err := p.expect(token.LEFT_BRACE); err != nil {
		return nil, err
	}

	cases := p.arena.NewList(4)
	for {
		p.flushComments()
		if p.check(closer) {
			if rest := p.takePending(); len(rest) > 0 {
				if len(cases) > 0 {
					c := cases[len(cases)-1].AsCase()
					c.Body = p.arena.Append(c.Body, rest...)
				} else {
					p.pending = rest
				}
			}
			p.advance()
			break
		}
		leading := p.takePending()
		c, err := p.switchCase(closer)
		if err != nil {
			return nil, err
		}
		p.lead(c, leading)
		cases = p.arena.Append(cases, c)
	}
	node.Cases = cases
	if node.IsShort {
		if err := p.endStatement(); err != nil {
			return nil, err
		}
	}
	return ast.Make(p.arena, node), nil
}

func (p *Parser) switchCase(closer token.TokenType) (*ast.Node, error) {
	start := p.position()
	var cond *ast.Node
	switch t := p.peek(); t.Type {
	case token.CASE:
		p.advance()
		c, err := p.exprUntil(token.COLON, token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		cond = c
	case token.DEFAULT:
		p.advance()
	default:
		return nil, p.unexpected(t)
	}
	if _, ok := p.match(token.COLON, token.SEMICOLON); !ok {
		return nil, p.expected(":", p.peek())
	}

	body, _, err := p.statements(p.statementArg([]token.TokenType{token.CASE, token.DEFAULT, closer}))
	if err != nil {
		return nil, err
	}
	n := ast.Make(p.arena, ast.Case{Condition: cond, Body: body})
	n.Range = p.arena.Span(start, p.previous().End)
	return n, nil
}

// ============================================================================
// try / catch / finally
// ============================================================================

func (p *Parser) parseTry(_ Match, _ *LoopArgument) (*ast.Node, error) {
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	node := ast.Try{Body: body}

	catches := p.arena.NewList(2)
	for p.check(token.CATCH) {
		c, err := p.catchClause()
		if err != nil {
			return nil, err
		}
		catches = p.arena.Append(catches, c)
	}
	if len(catches) > 0 {
		node.Catches = catches
	}

	if p.check(token.FINALLY) {
		start := p.position()
		p.advance()
		leading := p.takePending()
		fb, err := p.block()
		if err != nil {
			return nil, err
		}
		f := ast.Make(p.arena, ast.Finally{Body: fb})
		f.Range = p.arena.Span(start, p.previous().End)
		p.lead(f, leading)
		node.Finally = f
	}
	if node.Catches == nil && node.Finally == nil {
		return nil, p.expected("catch", p.peek())
	}
	return ast.Make(p.arena, node), nil
}

func (p *Parser) catchClause() (*ast.Node, error) {
	start := p.position()
	p.advance()
	leading := p.takePending()
	if _, err := p.expect(token.LEFT_PAREN); err != nil {
		return nil, err
	}
	types := p.arena.NewList(1)
	for {
		t, err := p.name()
		if err != nil {
			return nil, err
		}
		types = p.arena.Append(types, t)
		if _, ok := p.match(token.BIT_OR); !ok {
			break
		}
	}
	node := ast.Catch{Types: types}
	if t, ok := p.match(token.VARIABLE); ok {
		node.Variable = p.variable(t)
		node.Variable.Range = p.arena.Span(t.Pos, t.End)
	}
	if _, err := p.expect(token.RIGHT_PAREN); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	node.Body = body
	n := ast.Make(p.arena, node)
	n.Range = p.arena.Span(start, p.previous().End)
	p.lead(n, leading)
	return n, nil
}

// name 读取类名或限定名
func (p *Parser) name() (*ast.Node, error) {
	t := p.peek()
	if t.Type != token.NAME && !identLike.Has(t.Type) {
		return nil, p.expected("name", t)
	}
	p.advance()
	n := p.arena.NewIdentifier(t.Literal)
	n.Range = p.arena.Span(t.Pos, t.End)
	return n, nil
}

// names 读取逗号分隔的名字列表
func (p *Parser) names() ([]*ast.Node, error) {
	list := p.arena.NewList(2)
	for {
		n, err := p.name()
		if err != nil {
			return nil, err
		}
		list = p.arena.Append(list, n)
		if _, ok := p.match(token.COMMA); !ok {
			return list, nil
		}
	}
}

// ============================================================================
// 简单语句
// ============================================================================

func (p *Parser) parseBlock(_ Match, _ *LoopArgument) (*ast.Node, error) {
	return p.block()
}

func (p *Parser) parseReturn(_ Match, arg *LoopArgument) (*ast.Node, error) {
	node := ast.Return{}
	if !arg.stops(p.peek().Type) {
		v, err := p.requireExpression(arg)
		if err != nil {
			return nil, err
		}
		node.Value = v
	}
	return ast.Make(p.arena, node), nil
}

func (p *Parser) parseBreak(_ Match, arg *LoopArgument) (*ast.Node, error) {
	node := ast.Break{}
	if !arg.stops(p.peek().Type) {
		v, err := p.requireExpression(arg)
		if err != nil {
			return nil, err
		}
		node.Level = v
	}
	return ast.Make(p.arena, node), nil
}

func (p *Parser) parseContinue(_ Match, arg *LoopArgument) (*ast.Node, error) {
	node := ast.Continue{}
	if !arg.stops(p.peek().Type) {
		v, err := p.requireExpression(arg)
		if err != nil {
			return nil, err
		}
		node.Level = v
	}
	return ast.Make(p.arena, node), nil
}

func (p *Parser) parseGoto(m Match, _ *LoopArgument) (*ast.Node, error) {
	return ast.Make(p.arena, ast.Goto{Label: p.arena.Str(m.Slot(1).First().Literal)}), nil
}

func (p *Parser) parseLabel(m Match, _ *LoopArgument) (*ast.Node, error) {
	return ast.Make(p.arena, ast.Label{Name: p.arena.Str(m.Slot(0).First().Literal)}), nil
}

func (p *Parser) parseEcho(m Match, arg *LoopArgument) (*ast.Node, error) {
	values, err := p.bareList(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Echo{IsTag: m.Slot(0).Has(token.OPEN_TAG_ECHO), Values: values}), nil
}

func (p *Parser) parseGlobal(_ Match, arg *LoopArgument) (*ast.Node, error) {
	vars, err := p.bareList(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.Global{Variables: vars}), nil
}

func (p *Parser) parseStaticVariables(_ Match, arg *LoopArgument) (*ast.Node, error) {
	items, err := p.bareList(arg)
	if err != nil {
		return nil, err
	}
	return ast.Make(p.arena, ast.StaticVariables{Items: items}), nil
}
