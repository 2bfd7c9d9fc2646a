// Package ast 定义语法树：带类型标签的节点、各变体载荷、arena 分配、
// 跨 arena 克隆以及带上下文的遍历。
package ast

import (
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 节点
// ============================================================================
//
// 每个节点由四部分组成：
//   - Kind：变体标签，分派表用它做 O(1) 查找
//   - Data：变体载荷，AsX 访问器做类型收窄
//   - Range：可选的源码范围
//   - Leading / Trailing：可选的前置 / 后置附注（注释与属性）
//
// 节点之间是严格的树形所有权，没有共享子节点，也没有父指针；遍历时
// 由 Walker 重建祖先与兄弟信息。
//
// ============================================================================

// Node 语法树节点
type Node struct {
	Kind     Kind
	Data     Data
	Range    *token.Span
	Leading  *Trivia
	Trailing *Trivia
}

// Data 节点载荷
//
// 只有本包内的载荷类型实现该接口。
type Data interface {
	Kind() Kind
	each(fn visitFunc)
	clone(a *Arena) Data
}

// visitFunc 子节点回调。list 非 nil 时子节点位于该序列的 index 处
type visitFunc func(child *Node, list []*Node, index int)

func visitNode(fn visitFunc, n *Node) {
	if n != nil {
		fn(n, nil, 0)
	}
}

func visitList(fn visitFunc, list []*Node) {
	for i, n := range list {
		if n != nil {
			fn(n, list, i)
		}
	}
}

// Children 按源码顺序返回节点的直接子节点（不含附注）
func (n *Node) Children() []*Node {
	var out []*Node
	n.Data.each(func(child *Node, _ []*Node, _ int) {
		out = append(out, child)
	})
	return out
}

// Start 返回起始位置，没有范围时返回零值
func (n *Node) Start() token.Position {
	if n.Range == nil {
		return token.Position{}
	}
	return n.Range.Start
}

// End 返回结束位置，没有范围时返回零值
func (n *Node) End() token.Position {
	if n.Range == nil {
		return token.Position{}
	}
	return n.Range.End
}

// HasTrivia 判断是否带有附注
func (n *Node) HasTrivia() bool {
	return (n.Leading != nil && len(n.Leading.Nodes) > 0) ||
		(n.Trailing != nil && len(n.Trailing.Nodes) > 0)
}

// ============================================================================
// 附注
// ============================================================================

// Trivia 附注列表，元素为注释或属性节点
type Trivia struct {
	Nodes []*Node
}

// PushBack 追加到末尾
func (t *Trivia) PushBack(a *Arena, n *Node) {
	t.Nodes = a.Append(t.Nodes, n)
}

// PushFront 插入到开头
func (t *Trivia) PushFront(a *Arena, n *Node) {
	list := a.NewList(len(t.Nodes) + 1)
	list = append(list, n)
	t.Nodes = append(list, t.Nodes...)
}

// AddLeading 在前置附注末尾追加
func (n *Node) AddLeading(a *Arena, c ...*Node) {
	if len(c) == 0 {
		return
	}
	if n.Leading == nil {
		n.Leading = Alloc[Trivia](a)
	}
	for _, x := range c {
		n.Leading.PushBack(a, x)
	}
}

// PrependLeading 在前置附注开头插入，保持 c 的原有顺序
func (n *Node) PrependLeading(a *Arena, c ...*Node) {
	if len(c) == 0 {
		return
	}
	if n.Leading == nil {
		n.Leading = Alloc[Trivia](a)
	}
	for i := len(c) - 1; i >= 0; i-- {
		n.Leading.PushFront(a, c[i])
	}
}

// AddTrailing 在后置附注末尾追加
func (n *Node) AddTrailing(a *Arena, c ...*Node) {
	if len(c) == 0 {
		return
	}
	if n.Trailing == nil {
		n.Trailing = Alloc[Trivia](a)
	}
	for _, x := range c {
		n.Trailing.PushBack(a, x)
	}
}

// LeadingNodes 返回前置附注（可能为 nil）
func (n *Node) LeadingNodes() []*Node {
	if n.Leading == nil {
		return nil
	}
	return n.Leading.Nodes
}

// TrailingNodes 返回后置附注（可能为 nil）
func (n *Node) TrailingNodes() []*Node {
	if n.Trailing == nil {
		return nil
	}
	return n.Trailing.Nodes
}

// IsTrivia 判断节点能否作为附注
func (k Kind) IsTrivia() bool {
	switch k {
	case KindCommentLine, KindCommentBlock, KindCommentDoc, KindAttribute:
		return true
	}
	return false
}

// IsComment 判断是否为注释
func (k Kind) IsComment() bool {
	return k == KindCommentLine || k == KindCommentBlock || k == KindCommentDoc
}

// ============================================================================
// 语句终止
// ============================================================================

// selfTerminating 自带终止符的变体：语法分析在它们之后结束当前语句，
// 代码生成也不再追加分号。
var selfTerminating = [KindCount]bool{
	KindFunction:     true,
	KindClass:        true,
	KindInterface:    true,
	KindTrait:        true,
	KindEnum:         true,
	KindMethod:       true,
	KindIf:           true,
	KindSwitch:       true,
	KindForeach:      true,
	KindFor:          true,
	KindWhile:        true,
	KindDoWhile:      true,
	KindTry:          true,
	KindLabel:        true,
	KindNamespace:    true,
	KindDeclare:      true,
	KindCommentBlock: true,
	KindCommentDoc:   true,
	KindCommentLine:  true,
	KindInline:       true,
	KindPropertyHook: true,
	KindProgram:      true,
	KindTraitUse:     true,
	KindCase:         true,
	KindBlock:        true,
	KindUse:          false,
}

// EndsStatement 判断节点是否自行结束语句
//
// 带钩子的属性以 } 结束，同样不需要分号。
func EndsStatement(n *Node) bool {
	if n == nil {
		return false
	}
	if selfTerminating[n.Kind] {
		return true
	}
	if p := n.AsProperty(); p != nil && len(p.Hooks) > 0 {
		return true
	}
	return false
}

// ============================================================================
// 修饰符枚举
// ============================================================================

// Visibility 可见性（含非对称形式）
type Visibility uint8

const (
	VisibilityNone Visibility = iota
	VisibilityPublic
	VisibilityProtected
	VisibilityPrivate
	VisibilityPublicGet
	VisibilityPublicSet
	VisibilityProtectedGet
	VisibilityProtectedSet
	VisibilityPrivateGet
	VisibilityPrivateSet
)

var visibilityNames = [...]string{
	VisibilityNone:         "",
	VisibilityPublic:       "public",
	VisibilityProtected:    "protected",
	VisibilityPrivate:      "private",
	VisibilityPublicGet:    "public(get)",
	VisibilityPublicSet:    "public(set)",
	VisibilityProtectedGet: "protected(get)",
	VisibilityProtectedSet: "protected(set)",
	VisibilityPrivateGet:   "private(get)",
	VisibilityPrivateSet:   "private(set)",
}

func (v Visibility) String() string {
	if int(v) < len(visibilityNames) {
		return visibilityNames[v]
	}
	return ""
}

// IsGet 是否为 (get) 形式
func (v Visibility) IsGet() bool {
	return v == VisibilityPublicGet || v == VisibilityProtectedGet || v == VisibilityPrivateGet
}

// IsSet 是否为 (set) 形式
func (v Visibility) IsSet() bool {
	return v == VisibilityPublicSet || v == VisibilityProtectedSet || v == VisibilityPrivateSet
}

// VisibilityFromToken 由可见性 token 得到枚举值
func VisibilityFromToken(t token.TokenType) Visibility {
	switch t {
	case token.PUBLIC:
		return VisibilityPublic
	case token.PROTECTED:
		return VisibilityProtected
	case token.PRIVATE:
		return VisibilityPrivate
	case token.PUBLIC_GET:
		return VisibilityPublicGet
	case token.PUBLIC_SET:
		return VisibilityPublicSet
	case token.PROTECTED_GET:
		return VisibilityProtectedGet
	case token.PROTECTED_SET:
		return VisibilityProtectedSet
	case token.PRIVATE_GET:
		return VisibilityPrivateGet
	case token.PRIVATE_SET:
		return VisibilityPrivateSet
	}
	return VisibilityNone
}

func cloneVisibilities(v []Visibility) []Visibility {
	if len(v) == 0 {
		return nil
	}
	return append([]Visibility(nil), v...)
}

// Inheritance 继承修饰
type Inheritance uint8

const (
	InheritanceNone Inheritance = iota
	InheritanceAbstract
	InheritanceFinal
)

func (i Inheritance) String() string {
	switch i {
	case InheritanceAbstract:
		return "abstract"
	case InheritanceFinal:
		return "final"
	}
	return ""
}

// Modifier 属性与提升参数的修饰
type Modifier uint8

const (
	ModifierNone Modifier = iota
	ModifierStatic
	ModifierReadonly
)

func (m Modifier) String() string {
	switch m {
	case ModifierStatic:
		return "static"
	case ModifierReadonly:
		return "readonly"
	}
	return ""
}

// UseModifier use 导入的种类
type UseModifier uint8

const (
	UseNone UseModifier = iota
	UseFunction
	UseConst
)

func (m UseModifier) String() string {
	switch m {
	case UseFunction:
		return "function"
	case UseConst:
		return "const"
	}
	return ""
}

// BodyType 循环与 declare 的主体形式
type BodyType uint8

const (
	// BodyBasic 花括号块或单条语句
	BodyBasic BodyType = iota
	// BodyShort : ... endX; 形式
	BodyShort
	// BodyEmpty 只有分号
	BodyEmpty
)

func (b BodyType) String() string {
	switch b {
	case BodyShort:
		return "short"
	case BodyEmpty:
		return "empty"
	}
	return "basic"
}
