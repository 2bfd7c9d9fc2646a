// Package build 提供不依赖 arena 的蓝图 DSL，用于测试与程序化构造语法树。
//
// 蓝图是普通的 Go 值，字段与 ast 中同名载荷一一对应，子节点换成 Blueprint。
// Build 把整棵蓝图一次性物化到 arena：字符串复制进 arena，序列从 arena
// 分配，子节点递归物化。
//
//	a := ast.NewArena(0)
//	n := build.Assignment{Left: build.Var("a"), Operator: "=", Right: build.Num("1")}.Build(a)
package build

import "github.com/tangzhangming/phpfmt/internal/ast"

// Blueprint 可以物化为节点的蓝图
type Blueprint interface {
	Build(a *ast.Arena) *ast.Node
}

func buildNode(a *ast.Arena, b Blueprint) *ast.Node {
	if b == nil {
		return nil
	}
	return b.Build(a)
}

func buildList(a *ast.Arena, list []Blueprint) []*ast.Node {
	if len(list) == 0 {
		return nil
	}
	out := a.NewList(len(list))
	for _, b := range list {
		out = append(out, buildNode(a, b))
	}
	return out
}

// BuildAll 物化一组蓝图
func BuildAll(a *ast.Arena, list ...Blueprint) []*ast.Node {
	return buildList(a, list)
}

// ============================================================================
// 附注
// ============================================================================

// WithTrivia 给蓝图挂上前置与后置附注
type WithTrivia struct {
	Node     Blueprint
	Leading  []Blueprint
	Trailing []Blueprint
}

// Build 物化为 arena 中的节点
func (b WithTrivia) Build(a *ast.Arena) *ast.Node {
	n := buildNode(a, b.Node)
	if n == nil {
		return nil
	}
	n.AddLeading(a, buildList(a, b.Leading)...)
	n.AddTrailing(a, buildList(a, b.Trailing)...)
	return n
}

// Lead 给 n 加前置附注
func Lead(n Blueprint, trivia ...Blueprint) WithTrivia {
	return WithTrivia{Node: n, Leading: trivia}
}

// Trail 给 n 加后置附注
func Trail(n Blueprint, trivia ...Blueprint) WithTrivia {
	return WithTrivia{Node: n, Trailing: trivia}
}

// ============================================================================
// 简写
// ============================================================================

// Var $name
func Var(name string) Variable {
	return Variable{Name: Identifier{Name: name}}
}

// Num 数字字面量
func Num(lit string) Number {
	return Number{Value: lit}
}

// Ident 标识符
func Ident(name string) Identifier {
	return Identifier{Name: name}
}

// Str 单引号字符串，value 为引号内原文
func Str(value string) String {
	return String{Quote: "'", Value: value}
}

// Item 无键数组元素
func Item(value Blueprint) ArrayItem {
	return ArrayItem{Value: value}
}

// Arg 位置参数
func Arg(value Blueprint) CallArgument {
	return CallArgument{Value: value}
}

// Stmts 把若干蓝图组成序列
func Stmts(list ...Blueprint) []Blueprint {
	return list
}
