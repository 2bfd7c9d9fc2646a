package ast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ============================================================================
// 结构比较与调试输出
// ============================================================================

var (
	nodeType = reflect.TypeFor[*Node]()
	listType = reflect.TypeFor[[]*Node]()
)

// Equal 比较两棵树的结构
//
// 忽略源码范围；附注参与比较；nil 序列与空序列视为相等。
func Equal(a, b *Node) bool {
	return Diff(a, b) == ""
}

// EqualList 比较两个节点序列
func EqualList(a, b []*Node) bool {
	return diffList("", a, b) == ""
}

// Diff 返回第一处结构差异的路径与说明，相等时返回空串
func Diff(a, b *Node) string {
	return diffNode("", a, b)
}

func diffNode(path string, a, b *Node) string {
	if a == nil || b == nil {
		if a == b {
			return ""
		}
		return fmt.Sprintf("%s: %s != %s", pathOr(path), Sprint(a), Sprint(b))
	}
	if a.Kind != b.Kind {
		return fmt.Sprintf("%s: kind %s != %s", pathOr(path), a.Kind, b.Kind)
	}
	if d := diffList(path+".leading", a.LeadingNodes(), b.LeadingNodes()); d != "" {
		return d
	}
	if d := diffList(path+".trailing", a.TrailingNodes(), b.TrailingNodes()); d != "" {
		return d
	}

	va := reflect.ValueOf(a.Data).Elem()
	vb := reflect.ValueOf(b.Data).Elem()
	t := va.Type()
	for i := 0; i < t.NumField(); i++ {
		p := path + "." + a.Kind.String() + "." + t.Field(i).Name
		if d := diffValue(p, va.Field(i), vb.Field(i)); d != "" {
			return d
		}
	}
	return ""
}

func diffList(path string, a, b []*Node) string {
	if len(a) != len(b) {
		return fmt.Sprintf("%s: length %d != %d", pathOr(path), len(a), len(b))
	}
	for i := range a {
		if d := diffNode(path+"["+strconv.Itoa(i)+"]", a[i], b[i]); d != "" {
			return d
		}
	}
	return ""
}

func diffValue(path string, a, b reflect.Value) string {
	switch a.Type() {
	case nodeType:
		return diffNode(path, a.Interface().(*Node), b.Interface().(*Node))
	case listType:
		return diffList(path, a.Interface().([]*Node), b.Interface().([]*Node))
	}
	if a.Kind() == reflect.Slice {
		if a.Len() != b.Len() {
			return fmt.Sprintf("%s: length %d != %d", path, a.Len(), b.Len())
		}
		for i := 0; i < a.Len(); i++ {
			if d := diffValue(path+"["+strconv.Itoa(i)+"]", a.Index(i), b.Index(i)); d != "" {
				return d
			}
		}
		return ""
	}
	if !a.Equal(b) {
		return fmt.Sprintf("%s: %#v != %#v", path, a.Interface(), b.Interface())
	}
	return ""
}

func pathOr(p string) string {
	if p == "" {
		return "root"
	}
	return p
}

// Sprint 紧凑的单行调试表示
//
//	Assignment(left=Variable(name=Identifier(name="a")), operator="=", right=Number(value="1"))
//
// 零值字段省略，附注不输出。
func Sprint(n *Node) string {
	var b strings.Builder
	sprintNode(&b, n)
	return b.String()
}

// SprintList 序列的调试表示
func SprintList(list []*Node) string {
	var b strings.Builder
	sprintList(&b, list)
	return b.String()
}

func sprintNode(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	b.WriteString(n.Kind.String())
	v := reflect.ValueOf(n.Data).Elem()
	t := v.Type()
	if t.NumField() == 0 {
		return
	}
	b.WriteByte('(')
	first := true
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		if f.IsZero() {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(lowerFirst(t.Field(i).Name))
		b.WriteByte('=')
		sprintValue(b, f)
	}
	b.WriteByte(')')
}

func sprintList(b *strings.Builder, list []*Node) {
	b.WriteByte('[')
	for i, n := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		sprintNode(b, n)
	}
	b.WriteByte(']')
}

func sprintValue(b *strings.Builder, v reflect.Value) {
	switch v.Type() {
	case nodeType:
		sprintNode(b, v.Interface().(*Node))
		return
	case listType:
		sprintList(b, v.Interface().([]*Node))
		return
	}
	switch v.Kind() {
	case reflect.String:
		b.WriteString(strconv.Quote(v.String()))
	case reflect.Slice:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			sprintValue(b, v.Index(i))
		}
		b.WriteByte(']')
	default:
		fmt.Fprint(b, v.Interface())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
