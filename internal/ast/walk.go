package ast

import "iter"

// ============================================================================
// Walker - 带上下文的前序遍历
// ============================================================================
//
// 节点不保存父指针，遍历时用游标栈重建结构信息：栈中每一帧是一个祖先
// 以及它的子节点列表和当前位置。
//
//	w := ast.NewWalker(root)
//	for w.Next() {
//	    ctx, n := w.Context(), w.Node()
//	    ...
//	}
//
// 遍历是深度优先、先根、第一个子节点优先，与源码顺序一致。附注不参与
// 遍历。遍历过程中不能修改树。
//
// ============================================================================

// entry 一个子节点以及它在父节点中的位置
type entry struct {
	node  *Node
	list  []*Node // 所在序列，单个字段时为 nil
	index int
}

type frame struct {
	entry
	children []entry
	next     int
}

// Walker 前序遍历迭代器
type Walker struct {
	root    *Node
	started bool
	stack   []frame
}

// NewWalker 创建从 root 开始的遍历器
func NewWalker(root *Node) *Walker {
	return &Walker{root: root, stack: make([]frame, 0, 16)}
}

// Next 前进到下一个节点，遍历结束时返回 false
func (w *Walker) Next() bool {
	if !w.started {
		w.started = true
		if w.root == nil {
			return false
		}
		w.push(entry{node: w.root})
		return true
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.children) {
			e := top.children[top.next]
			top.next++
			w.push(e)
			return true
		}
		w.stack = w.stack[:len(w.stack)-1]
	}
	return false
}

func (w *Walker) push(e entry) {
	var children []entry
	e.node.Data.each(func(child *Node, list []*Node, index int) {
		children = append(children, entry{node: child, list: list, index: index})
	})
	w.stack = append(w.stack, frame{entry: e, children: children})
}

// Node 当前节点
func (w *Walker) Node() *Node {
	if len(w.stack) == 0 {
		return nil
	}
	return w.stack[len(w.stack)-1].node
}

// Depth 当前节点深度，根为 0
func (w *Walker) Depth() int {
	return len(w.stack) - 1
}

// Context 当前节点的结构上下文，是路径的快照，遍历继续后仍然有效
func (w *Walker) Context() Context {
	path := make([]entry, len(w.stack))
	for i := range w.stack {
		path[i] = w.stack[i].entry
	}
	return Context{path: path}
}

// SkipChildren 跳过当前节点的子树
func (w *Walker) SkipChildren() {
	if len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		top.next = len(top.children)
	}
}

// Walk 以 range-over-func 的形式遍历
func Walk(root *Node) iter.Seq2[Context, *Node] {
	return func(yield func(Context, *Node) bool) {
		w := NewWalker(root)
		for w.Next() {
			if !yield(w.Context(), w.Node()) {
				return
			}
		}
	}
}

// ============================================================================
// Context
// ============================================================================

// Context 遍历时节点的祖先与兄弟信息，path 从根到节点自身
type Context struct {
	path []entry
}

func (c Context) self() entry {
	if len(c.path) == 0 {
		return entry{}
	}
	return c.path[len(c.path)-1]
}

// Parent 直接父节点，根节点返回 nil
func (c Context) Parent() *Node {
	if len(c.path) < 2 {
		return nil
	}
	return c.path[len(c.path)-2].node
}

// Ancestors 从父节点到根依次返回祖先
func (c Context) Ancestors() []*Node {
	if len(c.path) < 2 {
		return []*Node{}
	}
	out := make([]*Node, 0, len(c.path)-1)
	for i := len(c.path) - 2; i >= 0; i-- {
		out = append(out, c.path[i].node)
	}
	return out
}

// InList 节点是否位于父节点的某个序列中
func (c Context) InList() bool {
	return c.self().list != nil
}

// Index 节点在所在序列中的下标，不在序列中时返回 -1
func (c Context) Index() int {
	e := c.self()
	if e.list == nil {
		return -1
	}
	return e.index
}

// PrevSiblings 从近到远返回前面的兄弟节点
func (c Context) PrevSiblings() []*Node {
	e := c.self()
	if e.list == nil {
		return nil
	}
	out := make([]*Node, 0, e.index)
	for i := e.index - 1; i >= 0; i-- {
		if e.list[i] != nil {
			out = append(out, e.list[i])
		}
	}
	return out
}

// NextSiblings 按顺序返回后面的兄弟节点
func (c Context) NextSiblings() []*Node {
	e := c.self()
	if e.list == nil {
		return nil
	}
	out := make([]*Node, 0, len(e.list)-e.index-1)
	for _, n := range e.list[e.index+1:] {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Siblings 返回所在序列中除自身外的全部兄弟节点
func (c Context) Siblings() []*Node {
	e := c.self()
	if e.list == nil {
		return nil
	}
	out := make([]*Node, 0, len(e.list)-1)
	for i, n := range e.list {
		if i != e.index && n != nil {
			out = append(out, n)
		}
	}
	return out
}
