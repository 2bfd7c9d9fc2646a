package ast

// ============================================================================
// 注释与属性
// ============================================================================

// CommentLine 单行注释（含 // 或 #）
type CommentLine struct {
	Text string
}

func (*CommentLine) Kind() Kind { return KindCommentLine }

func (*CommentLine) each(visitFunc) {}

func (x *CommentLine) clone(a *Arena) Data {
	c := Alloc[CommentLine](a)
	c.Text = a.Str(x.Text)
	return c
}

// CommentBlock 块注释（含 /* */）
type CommentBlock struct {
	Text string
}

func (*CommentBlock) Kind() Kind { return KindCommentBlock }

func (*CommentBlock) each(visitFunc) {}

func (x *CommentBlock) clone(a *Arena) Data {
	c := Alloc[CommentBlock](a)
	c.Text = a.Str(x.Text)
	return c
}

// CommentDoc 文档注释（含 /** */）
type CommentDoc struct {
	Text string
}

func (*CommentDoc) Kind() Kind { return KindCommentDoc }

func (*CommentDoc) each(visitFunc) {}

func (x *CommentDoc) clone(a *Arena) Data {
	c := Alloc[CommentDoc](a)
	c.Text = a.Str(x.Text)
	return c
}

// Attribute 属性 #[...]
type Attribute struct {
	Items []*Node
}

func (*Attribute) Kind() Kind { return KindAttribute }

func (x *Attribute) each(fn visitFunc) {
	visitList(fn, x.Items)
}

func (x *Attribute) clone(a *Arena) Data {
	c := Alloc[Attribute](a)
	c.Items = a.cloneList(x.Items)
	return c
}

// AttributeItem 属性项
type AttributeItem struct {
	Name      string
	Arguments []*Node
}

func (*AttributeItem) Kind() Kind { return KindAttributeItem }

func (x *AttributeItem) each(fn visitFunc) {
	visitList(fn, x.Arguments)
}

func (x *AttributeItem) clone(a *Arena) Data {
	c := Alloc[AttributeItem](a)
	c.Name = a.Str(x.Name)
	c.Arguments = a.cloneList(x.Arguments)
	return c
}
