package generator

import (
	"strings"

	"github.com/tangzhangming/phpfmt/internal/ast"
)

// ============================================================================
// 类、接口、trait、枚举
// ============================================================================

func emitClass(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsClass()
	if x.Inheritance != ast.InheritanceNone {
		b.Push(x.Inheritance.String() + " ")
	}
	if x.IsReadonly {
		b.Push("readonly ")
	}
	b.Push("class " + x.Name)
	g.heritage(b, x.Extends, x.Implements)
	b.Push(" ")
	g.braced(b, x.Body, &memberTable)
}

func emitAnonymousClass(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsAnonymousClass()
	if x.IsReadonly {
		b.Push("readonly ")
	}
	b.Push("class")
	if len(x.Arguments) > 0 {
		g.list(b, "(", x.Arguments, ")")
	}
	g.heritage(b, x.Extends, x.Implements)
	b.Push(" ")
	g.braced(b, x.Body, &memberTable)
}

// heritage extends 与 implements 子句
func (g *Generator) heritage(b *Builder, extends *ast.Node, implements []*ast.Node) {
	if extends != nil {
		b.Push(" extends ")
		g.expr(b, extends)
	}
	if len(implements) > 0 {
		b.Push(" implements ")
		g.joined(b, implements, ", ")
	}
}

func emitInterface(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsInterface()
	b.Push("interface " + x.Name)
	if len(x.Extends) > 0 {
		b.Push(" extends ")
		g.joined(b, x.Extends, ", ")
	}
	b.Push(" ")
	g.braced(b, x.Body, &memberTable)
}

func emitTrait(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsTrait()
	b.Push("trait " + x.Name + " ")
	g.braced(b, x.Body, &memberTable)
}

func emitEnum(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsEnum()
	b.Push("enum " + x.Name)
	if x.BackedType != nil {
		b.Push(": ")
		g.expr(b, x.BackedType)
	}
	if len(x.Implements) > 0 {
		b.Push(" implements ")
		g.joined(b, x.Implements, ", ")
	}
	b.Push(" ")
	g.braced(b, x.Body, &enumTable)
}

func emitEnumItem(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsEnumItem()
	b.Push("case " + x.Name)
	if x.Value != nil {
		b.Push(" = ")
		g.expr(b, x.Value)
	}
}

// emitTraitUse use A, B; 或 use A, B { 规则 }
func emitTraitUse(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsTraitUse()
	b.Push("use ")
	g.joined(b, x.Traits, ", ")
	if len(x.Adaptations) == 0 {
		b.Push(";")
		return
	}
	b.Push(" ")
	g.braced(b, x.Adaptations, &ruleTable)
}

func emitTraitUseRule(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsTraitUseRule()
	if x.Trait != nil {
		g.expr(b, x.Trait)
		b.Push("::")
	}
	b.Push(x.Method)
	if len(x.InsteadOf) > 0 {
		b.Push(" insteadof ")
		g.joined(b, x.InsteadOf, ", ")
		return
	}
	b.Push(" as")
	if x.Visibility != ast.VisibilityNone {
		b.Push(" " + x.Visibility.String())
	}
	if x.Alias != "" {
		b.Push(" " + x.Alias)
	}
}

// ============================================================================
// 函数与方法
// ============================================================================

func emitFunction(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsFunction()
	b.Push("function ")
	if x.IsRef {
		b.Push("&")
	}
	b.Push(x.Name)
	g.signature(b, x.Parameters, x.ReturnType, bracedWidth(blockStatements(x.Body)))
	b.Push(" ")
	g.braced(b, blockStatements(x.Body), &defaultTable)
}

func emitAnonymousFunction(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsAnonymousFunction()
	if x.IsStatic {
		b.Push("static ")
	}
	b.Push("function ")
	if x.IsRef {
		b.Push("&")
	}
	tail := g.returnWidth(x.ReturnType) + bracedWidth(blockStatements(x.Body))
	if len(x.Uses) > 0 {
		g.list(b, "(", x.Parameters, ")")
		g.withTail(tail, func() { g.list(b, " use (", x.Uses, ")") })
	} else {
		g.withTail(tail, func() { g.list(b, "(", x.Parameters, ")") })
	}
	g.returnType(b, x.ReturnType)
	b.Push(" ")
	g.braced(b, blockStatements(x.Body), &defaultTable)
}

func emitArrowFunction(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsArrowFunction()
	if x.IsStatic {
		b.Push("static ")
	}
	b.Push("fn")
	if x.IsRef {
		b.Push("&")
	}
	g.signature(b, x.Parameters, x.ReturnType, len(" =>"))
	b.Push(" => ")
	g.expr(b, x.Body)
}

// emitMethod 修饰顺序：abstract/final、可见性、static
func emitMethod(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsMethod()
	var mods []string
	if x.Inheritance != ast.InheritanceNone {
		mods = append(mods, x.Inheritance.String())
	}
	if x.Visibility != ast.VisibilityNone {
		mods = append(mods, x.Visibility.String())
	}
	if x.IsStatic {
		mods = append(mods, "static")
	}
	if len(mods) > 0 {
		b.Push(strings.Join(mods, " ") + " ")
	}
	b.Push("function ")
	if x.IsRef {
		b.Push("&")
	}
	b.Push(x.Name)
	after := len(";")
	if x.Body != nil {
		after = bracedWidth(blockStatements(x.Body))
	}
	g.signature(b, x.Parameters, x.ReturnType, after)
	if x.Body == nil {
		b.Push(";")
		return
	}
	b.Push(" ")
	g.braced(b, blockStatements(x.Body), &defaultTable)
}

// signature 参数列表与返回类型，after 为返回类型之后同一行的宽度
func (g *Generator) signature(b *Builder, params []*ast.Node, ret *ast.Node, after int) {
	g.withTail(g.returnWidth(ret)+after, func() { g.list(b, "(", params, ")") })
	g.returnType(b, ret)
}

// returnWidth ": Type" 的宽度
func (g *Generator) returnWidth(t *ast.Node) int {
	if t == nil {
		return 0
	}
	return len(": ") + g.render(t).FirstLen()
}

func (g *Generator) returnType(b *Builder, t *ast.Node) {
	if t != nil {
		b.Push(": ")
		g.expr(b, t)
	}
}

func emitParameter(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsParameter()
	if x.Type != nil {
		g.expr(b, x.Type)
		b.Push(" ")
	}
	if x.IsRef {
		b.Push("&")
	}
	if x.IsVariadic {
		b.Push("...")
	}
	b.Push("$" + x.Name)
	if x.Default != nil {
		b.Push(" = ")
		g.expr(b, x.Default)
	}
}

func emitConstructorParameter(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsConstructorParameter()
	mods := visibilities(x.Visibilities)
	if x.Modifier != ast.ModifierNone {
		mods = append(mods, x.Modifier.String())
	}
	if len(mods) > 0 {
		b.Push(strings.Join(mods, " ") + " ")
	}
	g.expr(b, x.Parameter)
}

func visibilities(list []ast.Visibility) []string {
	out := make([]string, 0, len(list)+1)
	for _, v := range list {
		if v != ast.VisibilityNone {
			out = append(out, v.String())
		}
	}
	return out
}

// ============================================================================
// 属性与类常量
// ============================================================================

func emitProperty(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsProperty()
	mods := visibilities(x.Visibilities)
	if x.Modifier != ast.ModifierNone {
		mods = append(mods, x.Modifier.String())
	}
	if x.IsVar {
		mods = append(mods, "var")
	}
	if len(mods) > 0 {
		b.Push(strings.Join(mods, " ") + " ")
	}
	if x.Type != nil {
		g.expr(b, x.Type)
		b.Push(" ")
	}
	g.bareList(b, x.Items)
	if len(x.Hooks) > 0 {
		b.Push(" ")
		g.braced(b, x.Hooks, &hookTable)
	}
}

// emitPropertyItem 类型已由所属属性输出
func emitPropertyItem(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsPropertyItem()
	b.Push("$" + x.Name)
	if x.Value != nil {
		b.Push(" = ")
		g.expr(b, x.Value)
	}
}

func emitPropertyHook(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsPropertyHook()
	if x.IsFinal {
		b.Push("final ")
	}
	if x.IsRef {
		b.Push("&")
	}
	if x.IsGet {
		b.Push("get")
	} else {
		b.Push("set")
	}
	if len(x.Parameters) > 0 {
		g.list(b, "(", x.Parameters, ")")
	}
	switch {
	case x.Body == nil:
		b.Push(";")
	case x.IsShort:
		b.Push(" => ")
		g.expr(b, x.Body)
		b.Push(";")
	default:
		b.Push(" ")
		g.braced(b, blockStatements(x.Body), &defaultTable)
	}
}

func emitConstProperty(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsConstProperty()
	var mods []string
	if x.IsFinal {
		mods = append(mods, "final")
	}
	mods = append(mods, visibilities(x.Visibilities)...)
	mods = append(mods, "const")
	b.Push(strings.Join(mods, " ") + " ")
	if x.Type != nil {
		g.expr(b, x.Type)
		b.Push(" ")
	}
	g.bareList(b, x.Items)
}

// ============================================================================
// 类型
// ============================================================================

func emitType(_ *Generator, b *Builder, n *ast.Node, _ Argument) {
	x := n.AsType()
	if x.IsNullable {
		b.Push("?")
	}
	b.Push(x.Name)
}

// emitUnionType A|B，交叉类型成员加括号 (A&B)|C
func emitUnionType(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	for i, t := range n.AsUnionType().Types {
		if i > 0 {
			b.Push("|")
		}
		if t.Kind == ast.KindIntersectionType {
			b.Push("(")
			g.expr(b, t)
			b.Push(")")
			continue
		}
		g.expr(b, t)
	}
}

func emitIntersectionType(g *Generator, b *Builder, n *ast.Node, _ Argument) {
	g.joined(b, n.AsIntersectionType().Types, "&")
}
