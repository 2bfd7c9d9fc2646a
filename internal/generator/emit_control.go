package generator

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
)

// ============================================================================
// if / else
// ============================================================================

func emitIf(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.ifChain(b, n, "if")
}

// emitElseIf elseif 链中的 If 节点
func emitElseIf(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.ifChain(b, n, "elseif")
}

func (g *Generator) ifChain(b *Builder, n *ast.Node, kw string) {
	x := n.AsIf()
	base := b.LastIndent()
	b.Push(kw + " (")
	after := len(":")
	if !x.IsShort {
		after = bodyWidth(x.Valid, ast.BodyBasic)
	}
	g.withTail(len(")")+after, func() { g.expr(b, x.Condition) })
	b.Push(")")

	if x.IsShort {
		b.Push(":")
		g.indented(b, blockStatements(x.Valid), &defaultTable)
		if x.Invalid != nil {
			b.LineAt(base)
			g.node(b, x.Invalid, Argument{Table: &elseTable})
			if x.Invalid.Kind == ast.KindIf {
				return
			}
		}
		b.LineAt(base)
		b.Push("endif;")
		return
	}

	g.body(b, x.Valid)
	if x.Invalid == nil {
		return
	}
	if isBlock(x.Valid) {
		b.Push(" ")
	} else {
		b.LineAt(base)
	}
	g.node(b, x.Invalid, Argument{Table: &elseTable})
}

func emitElse(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsElse()
	if x.IsShort {
		b.Push("else:")
		g.indented(b, blockStatements(x.Body), &defaultTable)
		return
	}
	b.Push("else")
	if x.Body != nil && x.Body.Kind == ast.KindIf {
		b.Push(" ")
		g.node(b, x.Body, Argument{Table: &defaultTable, End: EndSemicolonDynamic})
		return
	}
	g.body(b, x.Body)
}

func isBlock(n *ast.Node) bool {
	return n != nil && n.Kind == ast.KindBlock && !n.HasTrivia()
}

// ============================================================================
// switch
// ============================================================================

func emitSwitch(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsSwitch()
	b.Push("switch (")
	g.expr(b, x.Condition)
	b.Push(")")
	if !x.IsShort {
		b.Push(" ")
		g.braced(b, x.Cases, &caseTable)
		return
	}
	base := b.LastIndent()
	b.Push(":")
	g.indented(b, x.Cases, &caseTable)
	b.LineAt(base)
	b.Push("endswitch;")
}

func emitCase(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsCase()
	if x.Condition == nil {
		b.Push("default:")
	} else {
		b.Push("case ")
		g.expr(b, x.Condition)
		b.Push(":")
	}
	g.indented(b, x.Body, &defaultTable)
}

// ============================================================================
// 循环
// ============================================================================

func emitFor(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsFor()
	b.Push("for (")
	g.bareList(b, x.Inits)
	b.Push(";")
	if len(x.Conditions) > 0 {
		b.Push(" ")
		g.bareList(b, x.Conditions)
	}
	b.Push(";")
	if len(x.Steps) > 0 {
		b.Push(" ")
		g.bareList(b, x.Steps)
	}
	b.Push(")")
	g.loopBody(b, x.Body, x.BodyType, "endfor")
}

func emitForeach(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsForeach()
	b.Push("foreach (")
	after := len(" as ") + g.render(x.Value).FirstLen() + len(")") + bodyWidth(x.Body, x.BodyType)
	if x.Key != nil {
		after += g.render(x.Key).FirstLen() + len(" => ")
	}
	g.withTail(after, func() { g.expr(b, x.Source) })
	b.Push(" as ")
	if x.Key != nil {
		g.expr(b, x.Key)
		b.Push(" => ")
	}
	g.expr(b, x.Value)
	b.Push(")")
	g.loopBody(b, x.Body, x.BodyType, "endforeach")
}

func emitWhile(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsWhile()
	b.Push("while (")
	g.withTail(len(")")+bodyWidth(x.Body, x.BodyType), func() { g.expr(b, x.Condition) })
	b.Push(")")
	g.loopBody(b, x.Body, x.BodyType, "endwhile")
}

// emitDoWhile do { } while (...);
func emitDoWhile(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsDoWhile()
	base := b.LastIndent()
	b.Push("do")
	g.body(b, x.Body)
	if isBlock(x.Body) {
		b.Push(" ")
	} else {
		b.LineAt(base)
	}
	g.node(b, x.Condition, Argument{Table: &doTable})
	b.Push(";")
}

func emitDoWhileCondition(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push("while (")
	g.expr(b, n.AsDoWhileCondition().Condition)
	b.Push(")")
}

// ============================================================================
// try
// ============================================================================

func emitTry(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsTry()
	b.Push("try ")
	g.braced(b, blockStatements(x.Body), &defaultTable)
	for _, c := range x.Catches {
		b.Push(" ")
		g.node(b, c, Argument{Table: &tryTable})
	}
	if x.Finally != nil {
		b.Push(" ")
		g.node(b, x.Finally, Argument{Table: &tryTable})
	}
}

func emitCatch(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsCatch()
	b.Push("catch (")
	g.joined(b, x.Types, "|")
	if x.Variable != nil {
		b.Push(" ")
		g.expr(b, x.Variable)
	}
	b.Push(") ")
	g.braced(b, blockStatements(x.Body), &defaultTable)
}

func emitFinally(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push("finally ")
	g.braced(b, blockStatements(n.AsFinally().Body), &defaultTable)
}
