package ast

// ============================================================================
// 跨 Arena 克隆
// ============================================================================
//
// CloneInto 把一棵树的每个字段重新构造到目标 Arena：节点、载荷、
// 字符串、序列、范围与附注都会复制，结果不含任何指向源 Arena 的指针，
// 源 Arena 随后可以丢弃。
//
// ============================================================================

// CloneInto 把 n 及其子树克隆到 a
func CloneInto(n *Node, a *Arena) *Node {
	return a.cloneNode(n)
}

// CloneListInto 克隆一个节点序列
func CloneListInto(list []*Node, a *Arena) []*Node {
	return a.cloneList(list)
}

func (a *Arena) cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := Alloc[Node](a)
	c.Kind = n.Kind
	c.Data = n.Data.clone(a)
	if n.Range != nil {
		c.Range = a.Span(n.Range.Start, n.Range.End)
	}
	c.Leading = a.cloneTrivia(n.Leading)
	c.Trailing = a.cloneTrivia(n.Trailing)
	return c
}

func (a *Arena) cloneList(list []*Node) []*Node {
	if list == nil {
		return nil
	}
	out := a.NewList(len(list))
	for _, n := range list {
		out = append(out, a.cloneNode(n))
	}
	return out
}

func (a *Arena) cloneTrivia(t *Trivia) *Trivia {
	if t == nil {
		return nil
	}
	c := Alloc[Trivia](a)
	c.Nodes = a.cloneList(t.Nodes)
	return c
}
