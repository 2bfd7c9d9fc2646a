package generator

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
)

// ============================================================================
// 字面量
// ============================================================================

// emitString 原样输出，插值片段没有引号
func emitString(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsString()
	b.Push(x.Quote + x.Value + x.Quote)
}

// emitNowDoc 正文非空时在结束标签前补一个换行，词法分析会把它去掉
//
// 结束标签按原来的缩进输出，正文保持原样，字符串的值不变。
func emitNowDoc(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsNowDoc()
	s := "<<<'" + x.Label + "'\n"
	if x.Value != "" {
		s += x.Value + "\n"
	}
	b.Push(s + x.Indent + x.Label)
}

func emitHereDoc(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsHereDoc()
	b.Push("<<<" + x.Label + "\n")
	g.parts(b, x.Values)
	if len(x.Values) > 0 {
		b.Push("\n")
	}
	b.Push(x.Indent + x.Label)
}

func emitEncapsed(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsEncapsed()
	b.Push(x.Quote)
	g.parts(b, x.Values)
	b.Push(x.Quote)
}

// parts 插值片段不换行，否则换行与缩进会进入字符串
func (g *Generator) parts(b *Builder, list []*ast.Node) {
	g.flat++
	for _, p := range list {
		g.expr(b, p)
	}
	g.flat--
}

// emitEncapsedPart {$expr} 形式加花括号，简单插值原样输出
func emitEncapsedPart(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsEncapsedPart()
	if x.IsAdvanced {
		b.Push("{")
		g.expr(b, x.Value)
		b.Push("}")
		return
	}
	g.expr(b, x.Value)
}

func emitNumber(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push(n.AsNumber().Value)
}

func emitIdentifier(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push(n.AsIdentifier().Name)
}

// emitVariable $name、$$name 与 ${expr}
func emitVariable(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsVariable()
	if x.IsBraced {
		b.Push("${")
		g.expr(b, x.Name)
		b.Push("}")
		return
	}
	if id := x.Name.AsIdentifier(); id != nil {
		b.Push("$" + id.Name)
		return
	}
	b.Push("$")
	g.expr(b, x.Name)
}

func emitMagic(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push(n.AsMagic().Name)
}

func emitBoolean(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	if n.AsBoolean().Value {
		b.Push("true")
	} else {
		b.Push("false")
	}
}

func emitNull(_ *Generator, b *Builder, _ *ast.Node, _ Argument) {
	b.Push("null")
}

func emitThis(_ *Generator, b *Builder, _ *ast.Node, _ Argument) {
	b.Push("$this")
}

func emitSelf(_ *Generator, b *Builder, _ *ast.Node, _ Argument) {
	b.Push("self")
}

func emitParent(_ *Generator, b *Builder, _ *ast.Node, _ Argument) {
	b.Push("parent")
}

func emitStaticKeyword(_ *Generator, b *Builder, _ *ast.Node, _ Argument) {
	b.Push("static")
}
