package ast

// ============================================================================
// 字面量与类型
// ============================================================================

// String 字符串，Value 为引号内原文；插值字符串中的片段 Quote 为空
type String struct {
	Quote string
	Value string
}

func (*String) Kind() Kind { return KindString }

func (*String) each(visitFunc) {}

func (x *String) clone(a *Arena) Data {
	c := Alloc[String](a)
	c.Quote = a.Str(x.Quote)
	c.Value = a.Str(x.Value)
	return c
}

// NowDoc nowdoc 字符串，Indent 为结束标签前的空白，Value 保留原始缩进
type NowDoc struct {
	Label  string
	Indent string
	Value  string
}

func (*NowDoc) Kind() Kind { return KindNowDoc }

func (*NowDoc) each(visitFunc) {}

func (x *NowDoc) clone(a *Arena) Data {
	c := Alloc[NowDoc](a)
	c.Label = a.Str(x.Label)
	c.Indent = a.Str(x.Indent)
	c.Value = a.Str(x.Value)
	return c
}

// Encapsed 插值字符串
type Encapsed struct {
	Quote  string
	Values []*Node
}

func (*Encapsed) Kind() Kind { return KindEncapsed }

func (x *Encapsed) each(fn visitFunc) {
	visitList(fn, x.Values)
}

func (x *Encapsed) clone(a *Arena) Data {
	c := Alloc[Encapsed](a)
	c.Quote = a.Str(x.Quote)
	c.Values = a.cloneList(x.Values)
	return c
}

// EncapsedPart 插值字符串的组成部分，IsAdvanced 表示 {$...} 形式
type EncapsedPart struct {
	IsAdvanced bool
	Value      *Node
}

func (*EncapsedPart) Kind() Kind { return KindEncapsedPart }

func (x *EncapsedPart) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *EncapsedPart) clone(a *Arena) Data {
	c := Alloc[EncapsedPart](a)
	c.IsAdvanced = x.IsAdvanced
	c.Value = a.cloneNode(x.Value)
	return c
}

// HereDoc heredoc 字符串
type HereDoc struct {
	Label  string
	Indent string
	Values []*Node
}

func (*HereDoc) Kind() Kind { return KindHereDoc }

func (x *HereDoc) each(fn visitFunc) {
	visitList(fn, x.Values)
}

func (x *HereDoc) clone(a *Arena) Data {
	c := Alloc[HereDoc](a)
	c.Label = a.Str(x.Label)
	c.Indent = a.Str(x.Indent)
	c.Values = a.cloneList(x.Values)
	return c
}

// Number 数字字面量（原文）
type Number struct {
	Value string
}

func (*Number) Kind() Kind { return KindNumber }

func (*Number) each(visitFunc) {}

func (x *Number) clone(a *Arena) Data {
	c := Alloc[Number](a)
	c.Value = a.Str(x.Value)
	return c
}

// Identifier 标识符或限定名
type Identifier struct {
	Name string
}

func (*Identifier) Kind() Kind { return KindIdentifier }

func (*Identifier) each(visitFunc) {}

func (x *Identifier) clone(a *Arena) Data {
	c := Alloc[Identifier](a)
	c.Name = a.Str(x.Name)
	return c
}

// Variable 变量。Name 为 Identifier 表示 $name，为其他表达式表示 $$x 或 ${expr}
type Variable struct {
	Name     *Node
	IsBraced bool
}

func (*Variable) Kind() Kind { return KindVariable }

func (x *Variable) each(fn visitFunc) {
	visitNode(fn, x.Name)
}

func (x *Variable) clone(a *Arena) Data {
	c := Alloc[Variable](a)
	c.Name = a.cloneNode(x.Name)
	c.IsBraced = x.IsBraced
	return c
}

// Magic 魔术常量 __CLASS__ 等（保存规范大写形式）
type Magic struct {
	Name string
}

func (*Magic) Kind() Kind { return KindMagic }

func (*Magic) each(visitFunc) {}

func (x *Magic) clone(a *Arena) Data {
	c := Alloc[Magic](a)
	c.Name = a.Str(x.Name)
	return c
}

// Boolean true/false
type Boolean struct {
	Value bool
}

func (*Boolean) Kind() Kind { return KindBoolean }

func (*Boolean) each(visitFunc) {}

func (x *Boolean) clone(a *Arena) Data {
	c := Alloc[Boolean](a)
	c.Value = x.Value
	return c
}

// Null null
type Null struct{}

func (*Null) Kind() Kind { return KindNull }

func (*Null) each(visitFunc) {}

func (*Null) clone(a *Arena) Data { return Alloc[Null](a) }

// This $this
type This struct{}

func (*This) Kind() Kind { return KindThis }

func (*This) each(visitFunc) {}

func (*This) clone(a *Arena) Data { return Alloc[This](a) }

// Self self
type Self struct{}

func (*Self) Kind() Kind { return KindSelf }

func (*Self) each(visitFunc) {}

func (*Self) clone(a *Arena) Data { return Alloc[Self](a) }

// Parent parent
type Parent struct{}

func (*Parent) Kind() Kind { return KindParent }

func (*Parent) each(visitFunc) {}

func (*Parent) clone(a *Arena) Data { return Alloc[Parent](a) }

// StaticKeyword static（late static binding）
type StaticKeyword struct{}

func (*StaticKeyword) Kind() Kind { return KindStaticKeyword }

func (*StaticKeyword) each(visitFunc) {}

func (*StaticKeyword) clone(a *Arena) Data { return Alloc[StaticKeyword](a) }

// Type 单一类型，IsNullable 表示 ?T
type Type struct {
	Name       string
	IsNullable bool
}

func (*Type) Kind() Kind { return KindType }

func (*Type) each(visitFunc) {}

func (x *Type) clone(a *Arena) Data {
	c := Alloc[Type](a)
	c.Name = a.Str(x.Name)
	c.IsNullable = x.IsNullable
	return c
}

// UnionType 联合类型 A|B，成员不含 UnionType
type UnionType struct {
	Types []*Node
}

func (*UnionType) Kind() Kind { return KindUnionType }

func (x *UnionType) each(fn visitFunc) {
	visitList(fn, x.Types)
}

func (x *UnionType) clone(a *Arena) Data {
	c := Alloc[UnionType](a)
	c.Types = a.cloneList(x.Types)
	return c
}

// IntersectionType 交叉类型 A&B，成员不含 IntersectionType
type IntersectionType struct {
	Types []*Node
}

func (*IntersectionType) Kind() Kind { return KindIntersectionType }

func (x *IntersectionType) each(fn visitFunc) {
	visitList(fn, x.Types)
}

func (x *IntersectionType) clone(a *Arena) Data {
	c := Alloc[IntersectionType](a)
	c.Types = a.cloneList(x.Types)
	return c
}
