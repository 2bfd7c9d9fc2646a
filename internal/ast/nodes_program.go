package ast

// ============================================================================
// 程序结构
// ============================================================================

// Program 程序根节点。Opener 为首个开标签（规范化后），源码以内联文本或代码片段开始时为空
type Program struct {
	Opener   string
	Children []*Node
}

func (*Program) Kind() Kind { return KindProgram }

func (x *Program) each(fn visitFunc) {
	visitList(fn, x.Children)
}

func (x *Program) clone(a *Arena) Data {
	c := Alloc[Program](a)
	c.Opener = a.Str(x.Opener)
	c.Children = a.cloneList(x.Children)
	return c
}

// Block 花括号语句块，短形式控制结构的语句序列也用 Block 表示
type Block struct {
	Statements []*Node
}

func (*Block) Kind() Kind { return KindBlock }

func (x *Block) each(fn visitFunc) {
	visitList(fn, x.Statements)
}

func (x *Block) clone(a *Arena) Data {
	c := Alloc[Block](a)
	c.Statements = a.cloneList(x.Statements)
	return c
}

// Namespace 命名空间声明。IsBracket 表示 namespace Foo { } 形式
type Namespace struct {
	Name      string
	Body      *Node
	IsBracket bool
}

func (*Namespace) Kind() Kind { return KindNamespace }

func (x *Namespace) each(fn visitFunc) {
	visitNode(fn, x.Body)
}

func (x *Namespace) clone(a *Arena) Data {
	c := Alloc[Namespace](a)
	c.Name = a.Str(x.Name)
	c.Body = a.cloneNode(x.Body)
	c.IsBracket = x.IsBracket
	return c
}

// Use use 导入语句。Prefix 非空时为分组形式 use Foo\{A, B}
type Use struct {
	Prefix   string
	Modifier UseModifier
	Items    []*Node
}

func (*Use) Kind() Kind { return KindUse }

func (x *Use) each(fn visitFunc) {
	visitList(fn, x.Items)
}

func (x *Use) clone(a *Arena) Data {
	c := Alloc[Use](a)
	c.Prefix = a.Str(x.Prefix)
	c.Modifier = x.Modifier
	c.Items = a.cloneList(x.Items)
	return c
}

// UseItem use 导入项
type UseItem struct {
	Modifier UseModifier
	Name     string
	Alias    string
}

func (*UseItem) Kind() Kind { return KindUseItem }

func (*UseItem) each(visitFunc) {}

func (x *UseItem) clone(a *Arena) Data {
	c := Alloc[UseItem](a)
	c.Modifier = x.Modifier
	c.Name = a.Str(x.Name)
	c.Alias = a.Str(x.Alias)
	return c
}

// Const 顶层常量声明 const A = 1, B = 2
type Const struct {
	Items []*Node
}

func (*Const) Kind() Kind { return KindConst }

func (x *Const) each(fn visitFunc) {
	visitList(fn, x.Items)
}

func (x *Const) clone(a *Arena) Data {
	c := Alloc[Const](a)
	c.Items = a.cloneList(x.Items)
	return c
}

// ConstItem 常量项
type ConstItem struct {
	Name  string
	Value *Node
}

func (*ConstItem) Kind() Kind { return KindConstItem }

func (x *ConstItem) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *ConstItem) clone(a *Arena) Data {
	c := Alloc[ConstItem](a)
	c.Name = a.Str(x.Name)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Declare declare 语句
type Declare struct {
	Arguments []*Node
	Body      *Node
	BodyType  BodyType
}

func (*Declare) Kind() Kind { return KindDeclare }

func (x *Declare) each(fn visitFunc) {
	visitList(fn, x.Arguments)
	visitNode(fn, x.Body)
}

func (x *Declare) clone(a *Arena) Data {
	c := Alloc[Declare](a)
	c.Arguments = a.cloneList(x.Arguments)
	c.Body = a.cloneNode(x.Body)
	c.BodyType = x.BodyType
	return c
}

// DeclareArgument declare 参数 name=value
type DeclareArgument struct {
	Name  string
	Value *Node
}

func (*DeclareArgument) Kind() Kind { return KindDeclareArgument }

func (x *DeclareArgument) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *DeclareArgument) clone(a *Arena) Data {
	c := Alloc[DeclareArgument](a)
	c.Name = a.Str(x.Name)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Inline 标签之外的原始文本。Closer 为之前的闭标签，Opener 为之后的开标签
type Inline struct {
	Closer string
	Text   string
	Opener string
}

func (*Inline) Kind() Kind { return KindInline }

func (*Inline) each(visitFunc) {}

func (x *Inline) clone(a *Arena) Data {
	c := Alloc[Inline](a)
	c.Closer = a.Str(x.Closer)
	c.Text = a.Str(x.Text)
	c.Opener = a.Str(x.Opener)
	return c
}

// Label goto 标签 name:
type Label struct {
	Name string
}

func (*Label) Kind() Kind { return KindLabel }

func (*Label) each(visitFunc) {}

func (x *Label) clone(a *Arena) Data {
	c := Alloc[Label](a)
	c.Name = a.Str(x.Name)
	return c
}

// Goto goto 语句
type Goto struct {
	Label string
}

func (*Goto) Kind() Kind { return KindGoto }

func (*Goto) each(visitFunc) {}

func (x *Goto) clone(a *Arena) Data {
	c := Alloc[Goto](a)
	c.Label = a.Str(x.Label)
	return c
}
