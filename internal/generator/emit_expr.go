package generator

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
)

// ============================================================================
// 运算
// ============================================================================

func emitAssignment(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsAssignment()
	g.expr(b, x.Left)
	b.Push(" " + x.Operator + " ")
	g.expr(b, x.Right)
}

// emitBin 右操作数放不下时，运算符连同右操作数换到下一行，
// 同一条链上的换行都比链首所在行多缩进一级
func emitBin(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsBin()
	base := b.LastIndent()
	g.expr(b, x.Left)

	right := g.render(x.Right)
	wrap := g.flat == 0 &&
		!b.CurrentEmpty() &&
		len(x.Right.LeadingNodes()) == 0 &&
		!right.Multiline() &&
		!g.fits(g.width(b)+len(x.Operator)+2+right.FirstLen()+1)
	if wrap {
		if b.LastIndent() > base {
			base = b.LastIndent() - 1
		}
		b.LineAt(base + 1)
		b.Push(x.Operator + " ")
		b.ExtendFirstLine(right)
		return
	}
	b.Push(" " + x.Operator + " ")
	g.place(b, right, x.Right)
}

func emitTernary(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsTernary()
	g.expr(b, x.Condition)
	if x.Valid == nil {
		b.Push(" ?: ")
	} else {
		b.Push(" ? ")
		g.expr(b, x.Valid)
		b.Push(" : ")
	}
	g.expr(b, x.Invalid)
}

func emitPre(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsPre()
	g.prefixed(b, x.Operator, x.Variable)
}

func emitPost(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsPost()
	g.expr(b, x.Variable)
	b.Push(x.Operator)
}

func emitNegate(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.prefixed(b, "!", n.AsNegate().Value)
}

func emitUnary(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsUnary()
	g.prefixed(b, x.Operator, x.Value)
}

func emitSilent(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.prefixed(b, "@", n.AsSilent().Value)
}

func emitReference(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.prefixed(b, "&", n.AsReference().Value)
}

// emitVariadic ...$args；没有值时是一等可调用语法 f(...)
func emitVariadic(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.prefixed(b, "...", n.AsVariadic().Value)
}

// prefixed 前缀运算符，与操作数首字符会粘成另一个运算符时（- -$a）加空格
func (g *Generator) prefixed(b *Builder, op string, v *ast.Node) {
	b.Push(op)
	if v == nil {
		return
	}
	sub := g.render(v)
	if text := sub.FirstText(); text != "" {
		last := op[len(op)-1]
		if (last == '-' || last == '+' || last == '&') && text[0] == last {
			b.Push(" ")
		}
	}
	g.place(b, sub, v)
}

// keyword 关键字加空格再接操作数
func (g *Generator) keyword(b *Builder, kw string, v *ast.Node) {
	if v == nil {
		b.Push(kw)
		return
	}
	b.Push(kw + " ")
	g.expr(b, v)
}

func emitClone(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "clone", n.AsClone().Value)
}

func emitNew(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "new", n.AsNew().Value)
}

func emitPrint(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "print", n.AsPrint().Value)
}

func emitThrow(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "throw", n.AsThrow().Value)
}

func emitBreak(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "break", n.AsBreak().Level)
}

func emitContinue(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "continue", n.AsContinue().Level)
}

func emitReturn(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "return", n.AsReturn().Value)
}

func emitYield(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsYield()
	if x.Key == nil {
		g.keyword(b, "yield", x.Value)
		return
	}
	g.keyword(b, "yield", x.Key)
	b.Push(" => ")
	g.expr(b, x.Value)
}

func emitYieldFrom(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.keyword(b, "yield from", n.AsYieldFrom().Value)
}

func emitCast(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsCast()
	b.Push("(" + x.Type + ") ")
	g.expr(b, x.Value)
}

func emitInclude(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsInclude()
	g.keyword(b, x.Keyword, x.Value)
}

// ============================================================================
// 调用与访问
// ============================================================================

func emitCall(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsCall()
	g.expr(b, x.Callee)
	g.list(b, "(", x.Arguments, ")")
}

func emitCallArgument(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsCallArgument()
	if x.Name != "" {
		b.Push(x.Name + ": ")
	}
	g.expr(b, x.Value)
}

func emitArrayLookup(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsArrayLookup()
	g.expr(b, x.Left)
	b.Push("[")
	g.expr(b, x.Right)
	b.Push("]")
}

func emitStaticLookup(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsStaticLookup()
	g.expr(b, x.Left)
	b.Push("::")
	g.member(b, x.Right, x.UseBracket)
}

func emitObjectAccess(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsObjectAccess()
	g.expr(b, x.Left)
	if x.IsNullsafe {
		b.Push("?->")
	} else {
		b.Push("->")
	}
	g.member(b, x.Right, x.UseBracket)
}

func (g *Generator) member(b *Builder, n *ast.Node, bracket bool) {
	if !bracket {
		g.expr(b, n)
		return
	}
	b.Push("{")
	g.expr(b, n)
	b.Push("}")
}

// ============================================================================
// 数组与 match
// ============================================================================

func emitArray(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsArray()
	if x.IsShort {
		g.list(b, "[", x.Items, "]")
		return
	}
	g.list(b, "array(", x.Items, ")")
}

// emitArrayItem 跳过的位置没有值，只输出逗号
func emitArrayItem(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsArrayItem()
	if x.Key != nil {
		g.expr(b, x.Key)
		b.Push(" => ")
	}
	g.expr(b, x.Value)
}

func emitList(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.list(b, "list(", n.AsList().Items, ")")
}

func emitParenthesis(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	b.Push("(")
	g.expr(b, n.AsParenthesis().Value)
	b.Push(")")
}

// emitMatch 分支总是每个一行
func emitMatch(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsMatch()
	b.Push("match (")
	g.expr(b, x.Condition)
	b.Push(") {")
	if len(x.Arms) == 0 {
		b.Push("}")
		return
	}
	base := b.LastIndent()
	inner := NewBuilder()
	g.depth++
	for i, arm := range x.Arms {
		inner.NewLine()
		g.node(inner, arm, Argument{Table: &defaultTable, End: EndCommaWithoutEnd, IsLast: i == len(x.Arms)-1})
	}
	g.depth--
	b.Nest(inner)
	b.LineAt(base)
	b.Push("}")
}

func emitMatchArm(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsMatchArm()
	if len(x.Conditions) == 0 {
		b.Push("default")
	} else {
		g.joined(b, x.Conditions, ", ")
	}
	b.Push(" => ")
	g.expr(b, x.Expression)
}
