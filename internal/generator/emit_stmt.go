package generator

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
)

// ============================================================================
// 程序结构
// ============================================================================

// emitProgram 输出开标签与顶层语句，结束标签由最后的内联节点携带
func emitProgram(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsProgram()
	if x.Opener != "" && x.Opener != "<?=" {
		b.Push(x.Opener)
	}
	g.statements(b, x.Children, &defaultTable)
}

// emitInline ?> 文本 <?php，<?= 由随后的 echo 输出
func emitInline(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsInline()
	s := x.Closer + x.Text
	if x.Opener != "<?=" {
		s += x.Opener
	}
	b.Push(s)
}

func emitBlock(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.braced(b, n.AsBlock().Statements, &defaultTable)
}

func emitNamespace(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsNamespace()
	b.Push("namespace")
	if x.Name != "" {
		b.Push(" " + x.Name)
	}
	if x.IsBracket {
		b.Push(" ")
		g.braced(b, blockStatements(x.Body), &defaultTable)
		return
	}
	b.Push(";")
	if stmts := blockStatements(x.Body); len(stmts) > 0 {
		b.Blank()
		g.statements(b, stmts, &defaultTable)
	}
}

func emitUse(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsUse()
	b.Push("use ")
	if x.Modifier != ast.UseNone {
		b.Push(x.Modifier.String() + " ")
	}
	if x.Prefix != "" {
		g.list(b, x.Prefix+`\{`, x.Items, "}")
		return
	}
	g.bareList(b, x.Items)
}

func emitUseItem(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsUseItem()
	if x.Modifier != ast.UseNone {
		b.Push(x.Modifier.String() + " ")
	}
	b.Push(x.Name)
	if x.Alias != "" {
		b.Push(" as " + x.Alias)
	}
}

func emitConst(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push("const ")
	g.bareList(b, n.AsConst().Items)
}

func emitConstItem(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsConstItem()
	b.Push(x.Name + " = ")
	g.expr(b, x.Value)
}

func emitDeclare(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsDeclare()
	g.list(b, "declare(", x.Arguments, ")")
	g.loopBody(b, x.Body, x.BodyType, "enddeclare")
}

func emitDeclareArgument(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsDeclareArgument()
	b.Push(x.Name + "=")
	g.expr(b, x.Value)
}

func emitLabel(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push(n.AsLabel().Name + ":")
}

func emitGoto(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push("goto " + n.AsGoto().Label)
}

func emitEcho(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsEcho()
	if x.IsTag {
		b.Push("<?= ")
	} else {
		b.Push("echo ")
	}
	g.bareList(b, x.Values)
}

func emitGlobal(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push("global ")
	g.bareList(b, n.AsGlobal().Variables)
}

func emitStaticVariables(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push("static ")
	g.bareList(b, n.AsStaticVariables().Items)
}

// ============================================================================
// 注释与属性
// ============================================================================

// emitCommentLine 单行注释之后总是换行
func emitCommentLine(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push(n.AsCommentLine().Text)
	b.NewLine()
}

func emitCommentBlock(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push(n.AsCommentBlock().Text)
}

func emitCommentDoc(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push(n.AsCommentDoc().Text)
}

func emitAttribute(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.list(b, "#[", n.AsAttribute().Items, "]")
}

func emitAttributeItem(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsAttributeItem()
	b.Push(x.Name)
	if len(x.Arguments) > 0 {
		g.list(b, "(", x.Arguments, ")")
	}
}
