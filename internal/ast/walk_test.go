package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/ast/build"
)

func TestWalkerPreorder(t *testing.T) {
	a := ast.NewArena(0)
	root := build.Program{Children: build.Stmts(
		build.Assignment{Left: build.Var("a"), Operator: "=", Right: build.Num("1")},
		build.Echo{Values: build.Stmts(build.Var("a"))},
	)}.Build(a)

	var kinds []string
	w := ast.NewWalker(root)
	for w.Next() {
		kinds = append(kinds, w.Node().Kind.String())
	}

	assert.Equal(t, []string{
		"Program",
		"Assignment", "Variable", "Identifier", "Number",
		"Echo", "Variable", "Identifier",
	}, kinds)
}

func TestWalkerContext(t *testing.T) {
	a := ast.NewArena(0)
	root := build.Program{Children: build.Stmts(
		build.Array{IsShort: true, Items: build.Stmts(
			build.Item(build.Num("1")),
			build.Item(build.Num("2")),
			build.Item(build.Num("3")),
		)},
	)}.Build(a)

	items := root.AsProgram().Children[0].AsArray().Items

	found := false
	for ctx, n := range ast.Walk(root) {
		if n != items[1] {
			continue
		}
		found = true

		assert.True(t, ctx.InList())
		assert.Equal(t, 1, ctx.Index())
		assert.Equal(t, []*ast.Node{items[0]}, ctx.PrevSiblings())
		assert.Equal(t, []*ast.Node{items[2]}, ctx.NextSiblings())
		assert.Equal(t, []*ast.Node{items[0], items[2]}, ctx.Siblings())

		anc := ctx.Ancestors()
		require.Len(t, anc, 2)
		assert.Equal(t, ast.KindArray, anc[0].Kind)
		assert.Equal(t, ast.KindProgram, anc[1].Kind)
		assert.Same(t, anc[0], ctx.Parent())
	}
	assert.True(t, found)
}

// 保存下来的上下文在遍历继续之后仍然指向原来的位置
func TestWalkerContextOutlivesIteration(t *testing.T) {
	a := ast.NewArena(0)
	root := build.Program{Children: build.Stmts(
		build.Array{IsShort: true, Items: build.Stmts(
			build.Item(build.Num("1")),
			build.Item(build.Num("2")),
		)},
		build.Return{Value: build.Var("x")},
	)}.Build(a)

	arr := root.AsProgram().Children[0]
	items := arr.AsArray().Items

	saved := map[*ast.Node]ast.Context{}
	for ctx, n := range ast.Walk(root) {
		saved[n] = ctx
	}

	ctx := saved[items[0]]
	assert.Same(t, arr, ctx.Parent())
	assert.Equal(t, 0, ctx.Index())
	assert.Equal(t, []*ast.Node{items[1]}, ctx.NextSiblings())
	require.Len(t, ctx.Ancestors(), 2)
	assert.Equal(t, ast.KindProgram, ctx.Ancestors()[1].Kind)

	rootCtx := saved[root]
	assert.Nil(t, rootCtx.Parent())
	assert.Empty(t, rootCtx.Ancestors())
}

func TestWalkerFieldChildHasNoSiblings(t *testing.T) {
	a := ast.NewArena(0)
	root := build.Return{Value: build.Var("x")}.Build(a)

	w := ast.NewWalker(root)
	require.True(t, w.Next())
	assert.Nil(t, w.Context().Parent())
	assert.Equal(t, 0, w.Depth())

	require.True(t, w.Next())
	ctx := w.Context()
	assert.False(t, ctx.InList())
	assert.Equal(t, -1, ctx.Index())
	assert.Nil(t, ctx.Siblings())
	assert.Nil(t, ctx.PrevSiblings())
}

func TestWalkerSkipChildren(t *testing.T) {
	a := ast.NewArena(0)
	root := build.Program{Children: build.Stmts(
		build.Return{Value: build.Var("x")},
		build.Num("2"),
	)}.Build(a)

	var kinds []ast.Kind
	w := ast.NewWalker(root)
	for w.Next() {
		kinds = append(kinds, w.Node().Kind)
		if w.Node().Kind == ast.KindReturn {
			w.SkipChildren()
		}
	}
	assert.Equal(t, []ast.Kind{ast.KindProgram, ast.KindReturn, ast.KindNumber}, kinds)
}

func TestWalkerSkipsMirroredPropertyType(t *testing.T) {
	a := ast.NewArena(0)
	typ := build.Type{Name: "int"}
	root := build.Property{
		Visibilities: []ast.Visibility{ast.VisibilityPublic},
		Type:         typ,
		Items:        build.Stmts(build.PropertyItem{Type: typ, Name: "x"}),
	}.Build(a)

	count := 0
	for _, n := range ast.Walk(root) {
		if n.Kind == ast.KindType {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestWalkEmpty(t *testing.T) {
	w := ast.NewWalker(nil)
	assert.False(t, w.Next())
}
