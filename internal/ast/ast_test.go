package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/ast/build"
	"github.com/tangzhangming/phpfmt/internal/token"
)

func sample() build.Program {
	return build.Program{Children: build.Stmts(
		build.Lead(
			build.Assignment{Left: build.Var("a"), Operator: "=", Right: build.Num("1")},
			build.CommentLine{Text: "// first"},
		),
		build.Array{IsShort: true, Items: build.Stmts(
			build.Item(build.Num("1")),
			build.Item(build.Num("2")),
			build.Item(build.Num("3")),
		)},
		build.Call{Callee: build.Ident("foo"), Arguments: build.Stmts(
			build.Arg(build.Var("x")),
			build.CallArgument{Name: "named", Value: build.Str("v")},
		)},
	)}
}

func TestArenaAlloc(t *testing.T) {
	a := ast.NewArena(2)

	x := ast.Alloc[ast.Number](a)
	y := ast.Alloc[ast.Number](a)
	z := ast.Alloc[ast.Number](a)
	x.Value, y.Value, z.Value = "1", "2", "3"

	assert.Equal(t, "1", x.Value)
	assert.Equal(t, "2", y.Value)
	assert.Equal(t, "3", z.Value)
	assert.Equal(t, 3, a.Stats().Objects)
	assert.Equal(t, 2, a.Stats().Chunks)

	s := a.Str("hello")
	assert.Equal(t, "hello", s)
	assert.Equal(t, "", a.Str(""))
	assert.Equal(t, 5, a.Stats().StringBytes)
}

func TestArenaLists(t *testing.T) {
	a := ast.NewArena(0)
	list := a.NewList(2)
	require.Len(t, list, 0)

	nodes := []*ast.Node{a.NewNumber("1"), a.NewNumber("2"), a.NewNumber("3")}
	for _, n := range nodes {
		list = a.Append(list, n)
	}
	assert.Equal(t, nodes, list)

	// 相邻分配的序列互不覆盖
	other := a.NewList(1)
	other = a.Append(other, a.NewNumber("9"))
	assert.Equal(t, "1", list[0].AsNumber().Value)
	assert.Equal(t, "9", other[0].AsNumber().Value)
}

func TestNilArenaFallsBackToHeap(t *testing.T) {
	n := ast.Make(nil, ast.Identifier{Name: "x"})
	require.NotNil(t, n)
	assert.Equal(t, ast.KindIdentifier, n.Kind)
	assert.Equal(t, "x", n.AsIdentifier().Name)
}

func TestAccessors(t *testing.T) {
	a := ast.NewArena(0)
	n := a.NewVariable("x")

	assert.NotNil(t, n.AsVariable())
	assert.Nil(t, n.AsNumber())

	var missing *ast.Node
	assert.Nil(t, missing.AsVariable())
	assert.Equal(t, "Variable", n.Kind.String())

	k, ok := ast.LookupKind("Variable")
	assert.True(t, ok)
	assert.Equal(t, ast.KindVariable, k)
}

func TestTrivia(t *testing.T) {
	a := ast.NewArena(0)
	n := a.NewNumber("1")
	assert.Nil(t, n.Leading)
	assert.False(t, n.HasTrivia())

	c1 := ast.Make(a, ast.CommentLine{Text: "// one"})
	c2 := ast.Make(a, ast.CommentLine{Text: "// two"})
	c3 := ast.Make(a, ast.CommentBlock{Text: "/* zero */"})

	n.AddLeading(a, c1, c2)
	n.PrependLeading(a, c3)
	require.True(t, n.HasTrivia())
	assert.Equal(t, []*ast.Node{c3, c1, c2}, n.LeadingNodes())
	assert.Nil(t, n.TrailingNodes())
}

func TestEndsStatement(t *testing.T) {
	a := ast.NewArena(0)
	tests := []struct {
		node *ast.Node
		want bool
	}{
		{ast.Make(a, ast.Function{Name: "f"}), true},
		{ast.Make(a, ast.If{}), true},
		{ast.Make(a, ast.Case{}), true},
		{ast.Make(a, ast.Assignment{Operator: "="}), false},
		{ast.Make(a, ast.Echo{}), false},
		{ast.Make(a, ast.Property{}), false},
		{ast.Make(a, ast.Property{Hooks: []*ast.Node{ast.Make(a, ast.PropertyHook{IsGet: true})}}), true},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ast.EndsStatement(tt.node), ast.Sprint(tt.node))
	}
}

func TestBuildMaterialises(t *testing.T) {
	a := ast.NewArena(0)
	root := sample().Build(a)

	prog := root.AsProgram()
	require.NotNil(t, prog)
	require.Len(t, prog.Children, 3)

	assign := prog.Children[0]
	require.Equal(t, ast.KindAssignment, assign.Kind)
	require.Len(t, assign.LeadingNodes(), 1)
	assert.Equal(t, "// first", assign.LeadingNodes()[0].AsCommentLine().Text)
	assert.Equal(t, "a", assign.AsAssignment().Left.AsVariable().Name.AsIdentifier().Name)

	assert.Equal(t,
		`Array(isShort=true, items=[ArrayItem(value=Number(value="1")), ArrayItem(value=Number(value="2")), ArrayItem(value=Number(value="3"))])`,
		ast.Sprint(prog.Children[1]))
}

func TestCloneInto(t *testing.T) {
	src := ast.NewArena(0)
	root := sample().Build(src)
	root.Range = src.Span(token.Position{Line: 1}, token.Position{Line: 3, Offset: 40})

	dst := ast.NewArena(0)
	clone := ast.CloneInto(root, dst)

	assert.True(t, ast.Equal(root, clone), ast.Diff(root, clone))
	assert.NotSame(t, root, clone)
	assert.NotSame(t, root.Range, clone.Range)
	assert.Equal(t, *root.Range, *clone.Range)

	// 修改源树不影响克隆
	root.AsProgram().Children[0].AsAssignment().Operator = "+="
	assert.False(t, ast.Equal(root, clone))
	assert.Equal(t, "=", clone.AsProgram().Children[0].AsAssignment().Operator)
}

func TestEqualIgnoresRanges(t *testing.T) {
	a := ast.NewArena(0)
	x := sample().Build(a)
	y := sample().Build(a)
	x.Range = a.Span(token.Position{Line: 1}, token.Position{Line: 9})

	assert.True(t, ast.Equal(x, y))
	assert.Empty(t, ast.Diff(x, y))

	y.AsProgram().Children[2].AsCall().Arguments[1].AsCallArgument().Name = "other"
	assert.False(t, ast.Equal(x, y))
	assert.Contains(t, ast.Diff(x, y), "CallArgument.Name")
}

func TestEqualNilAndEmptyLists(t *testing.T) {
	a := ast.NewArena(0)
	x := ast.Make(a, ast.Array{IsShort: true})
	y := ast.Make(a, ast.Array{IsShort: true, Items: []*ast.Node{}})
	assert.True(t, ast.Equal(x, y))
}

func TestEqualComparesTrivia(t *testing.T) {
	a := ast.NewArena(0)
	x := a.NewNumber("1")
	y := a.NewNumber("1")
	y.AddTrailing(a, ast.Make(a, ast.CommentLine{Text: "// t"}))
	assert.False(t, ast.Equal(x, y))
	assert.Contains(t, ast.Diff(x, y), "trailing")
}
