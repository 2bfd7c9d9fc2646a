package ast

// ============================================================================
// 声明：类、函数、属性
// ============================================================================

// Class 类声明
type Class struct {
	IsReadonly  bool
	Inheritance Inheritance
	Name        string
	Extends     *Node
	Implements  []*Node
	Body        []*Node
}

func (*Class) Kind() Kind { return KindClass }

func (x *Class) each(fn visitFunc) {
	visitNode(fn, x.Extends)
	visitList(fn, x.Implements)
	visitList(fn, x.Body)
}

func (x *Class) clone(a *Arena) Data {
	c := Alloc[Class](a)
	c.IsReadonly = x.IsReadonly
	c.Inheritance = x.Inheritance
	c.Name = a.Str(x.Name)
	c.Extends = a.cloneNode(x.Extends)
	c.Implements = a.cloneList(x.Implements)
	c.Body = a.cloneList(x.Body)
	return c
}

// AnonymousClass 匿名类 new class(...) extends A implements B { }
type AnonymousClass struct {
	IsReadonly bool
	Arguments  []*Node
	Extends    *Node
	Implements []*Node
	Body       []*Node
}

func (*AnonymousClass) Kind() Kind { return KindAnonymousClass }

func (x *AnonymousClass) each(fn visitFunc) {
	visitList(fn, x.Arguments)
	visitNode(fn, x.Extends)
	visitList(fn, x.Implements)
	visitList(fn, x.Body)
}

func (x *AnonymousClass) clone(a *Arena) Data {
	c := Alloc[AnonymousClass](a)
	c.IsReadonly = x.IsReadonly
	c.Arguments = a.cloneList(x.Arguments)
	c.Extends = a.cloneNode(x.Extends)
	c.Implements = a.cloneList(x.Implements)
	c.Body = a.cloneList(x.Body)
	return c
}

// Interface 接口声明
type Interface struct {
	Name    string
	Extends []*Node
	Body    []*Node
}

func (*Interface) Kind() Kind { return KindInterface }

func (x *Interface) each(fn visitFunc) {
	visitList(fn, x.Extends)
	visitList(fn, x.Body)
}

func (x *Interface) clone(a *Arena) Data {
	c := Alloc[Interface](a)
	c.Name = a.Str(x.Name)
	c.Extends = a.cloneList(x.Extends)
	c.Body = a.cloneList(x.Body)
	return c
}

// Trait trait 声明
type Trait struct {
	Name string
	Body []*Node
}

func (*Trait) Kind() Kind { return KindTrait }

func (x *Trait) each(fn visitFunc) {
	visitList(fn, x.Body)
}

func (x *Trait) clone(a *Arena) Data {
	c := Alloc[Trait](a)
	c.Name = a.Str(x.Name)
	c.Body = a.cloneList(x.Body)
	return c
}

// Enum 枚举声明，BackedType 为 enum Foo: string 中的类型
type Enum struct {
	Name       string
	BackedType *Node
	Implements []*Node
	Body       []*Node
}

func (*Enum) Kind() Kind { return KindEnum }

func (x *Enum) each(fn visitFunc) {
	visitNode(fn, x.BackedType)
	visitList(fn, x.Implements)
	visitList(fn, x.Body)
}

func (x *Enum) clone(a *Arena) Data {
	c := Alloc[Enum](a)
	c.Name = a.Str(x.Name)
	c.BackedType = a.cloneNode(x.BackedType)
	c.Implements = a.cloneList(x.Implements)
	c.Body = a.cloneList(x.Body)
	return c
}

// EnumItem 枚举成员 case Foo = 1
type EnumItem struct {
	Name  string
	Value *Node
}

func (*EnumItem) Kind() Kind { return KindEnumItem }

func (x *EnumItem) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *EnumItem) clone(a *Arena) Data {
	c := Alloc[EnumItem](a)
	c.Name = a.Str(x.Name)
	c.Value = a.cloneNode(x.Value)
	return c
}

// TraitUse 类体内的 use A, B { ... }
type TraitUse struct {
	Traits      []*Node
	Adaptations []*Node
}

func (*TraitUse) Kind() Kind { return KindTraitUse }

func (x *TraitUse) each(fn visitFunc) {
	visitList(fn, x.Traits)
	visitList(fn, x.Adaptations)
}

func (x *TraitUse) clone(a *Arena) Data {
	c := Alloc[TraitUse](a)
	c.Traits = a.cloneList(x.Traits)
	c.Adaptations = a.cloneList(x.Adaptations)
	return c
}

// TraitUseRule trait 冲突规则：A::foo insteadof B 或 foo as protected bar
type TraitUseRule struct {
	Trait      *Node
	Method     string
	InsteadOf  []*Node
	Visibility Visibility
	Alias      string
}

func (*TraitUseRule) Kind() Kind { return KindTraitUseRule }

func (x *TraitUseRule) each(fn visitFunc) {
	visitNode(fn, x.Trait)
	visitList(fn, x.InsteadOf)
}

func (x *TraitUseRule) clone(a *Arena) Data {
	c := Alloc[TraitUseRule](a)
	c.Trait = a.cloneNode(x.Trait)
	c.Method = a.Str(x.Method)
	c.InsteadOf = a.cloneList(x.InsteadOf)
	c.Visibility = x.Visibility
	c.Alias = a.Str(x.Alias)
	return c
}

// Function 具名函数声明
type Function struct {
	IsRef      bool
	Name       string
	Parameters []*Node
	ReturnType *Node
	Body       *Node
}

func (*Function) Kind() Kind { return KindFunction }

func (x *Function) each(fn visitFunc) {
	visitList(fn, x.Parameters)
	visitNode(fn, x.ReturnType)
	visitNode(fn, x.Body)
}

func (x *Function) clone(a *Arena) Data {
	c := Alloc[Function](a)
	c.IsRef = x.IsRef
	c.Name = a.Str(x.Name)
	c.Parameters = a.cloneList(x.Parameters)
	c.ReturnType = a.cloneNode(x.ReturnType)
	c.Body = a.cloneNode(x.Body)
	return c
}

// AnonymousFunction 闭包 function () use ($x) { }
type AnonymousFunction struct {
	IsStatic   bool
	IsRef      bool
	Parameters []*Node
	Uses       []*Node
	ReturnType *Node
	Body       *Node
}

func (*AnonymousFunction) Kind() Kind { return KindAnonymousFunction }

func (x *AnonymousFunction) each(fn visitFunc) {
	visitList(fn, x.Parameters)
	visitList(fn, x.Uses)
	visitNode(fn, x.ReturnType)
	visitNode(fn, x.Body)
}

func (x *AnonymousFunction) clone(a *Arena) Data {
	c := Alloc[AnonymousFunction](a)
	c.IsStatic = x.IsStatic
	c.IsRef = x.IsRef
	c.Parameters = a.cloneList(x.Parameters)
	c.Uses = a.cloneList(x.Uses)
	c.ReturnType = a.cloneNode(x.ReturnType)
	c.Body = a.cloneNode(x.Body)
	return c
}

// ArrowFunction 箭头函数 fn () => expr
type ArrowFunction struct {
	IsStatic   bool
	IsRef      bool
	Parameters []*Node
	ReturnType *Node
	Body       *Node
}

func (*ArrowFunction) Kind() Kind { return KindArrowFunction }

func (x *ArrowFunction) each(fn visitFunc) {
	visitList(fn, x.Parameters)
	visitNode(fn, x.ReturnType)
	visitNode(fn, x.Body)
}

func (x *ArrowFunction) clone(a *Arena) Data {
	c := Alloc[ArrowFunction](a)
	c.IsStatic = x.IsStatic
	c.IsRef = x.IsRef
	c.Parameters = a.cloneList(x.Parameters)
	c.ReturnType = a.cloneNode(x.ReturnType)
	c.Body = a.cloneNode(x.Body)
	return c
}

// Method 方法声明，Body 为 nil 表示抽象方法或接口方法
type Method struct {
	Inheritance Inheritance
	Visibility  Visibility
	IsStatic    bool
	IsRef       bool
	Name        string
	Parameters  []*Node
	ReturnType  *Node
	Body        *Node
}

func (*Method) Kind() Kind { return KindMethod }

func (x *Method) each(fn visitFunc) {
	visitList(fn, x.Parameters)
	visitNode(fn, x.ReturnType)
	visitNode(fn, x.Body)
}

func (x *Method) clone(a *Arena) Data {
	c := Alloc[Method](a)
	c.Inheritance = x.Inheritance
	c.Visibility = x.Visibility
	c.IsStatic = x.IsStatic
	c.IsRef = x.IsRef
	c.Name = a.Str(x.Name)
	c.Parameters = a.cloneList(x.Parameters)
	c.ReturnType = a.cloneNode(x.ReturnType)
	c.Body = a.cloneNode(x.Body)
	return c
}

// Parameter 函数参数
type Parameter struct {
	Type       *Node
	IsRef      bool
	IsVariadic bool
	Name       string
	Default    *Node
}

func (*Parameter) Kind() Kind { return KindParameter }

func (x *Parameter) each(fn visitFunc) {
	visitNode(fn, x.Type)
	visitNode(fn, x.Default)
}

func (x *Parameter) clone(a *Arena) Data {
	c := Alloc[Parameter](a)
	c.Type = a.cloneNode(x.Type)
	c.IsRef = x.IsRef
	c.IsVariadic = x.IsVariadic
	c.Name = a.Str(x.Name)
	c.Default = a.cloneNode(x.Default)
	return c
}

// ConstructorParameter 构造函数提升参数
type ConstructorParameter struct {
	Visibilities []Visibility
	Modifier     Modifier
	Parameter    *Node
}

func (*ConstructorParameter) Kind() Kind { return KindConstructorParameter }

func (x *ConstructorParameter) each(fn visitFunc) {
	visitNode(fn, x.Parameter)
}

func (x *ConstructorParameter) clone(a *Arena) Data {
	c := Alloc[ConstructorParameter](a)
	c.Visibilities = cloneVisibilities(x.Visibilities)
	c.Modifier = x.Modifier
	c.Parameter = a.cloneNode(x.Parameter)
	return c
}

// Property 属性声明
type Property struct {
	Visibilities []Visibility
	Modifier     Modifier
	IsVar        bool
	Type         *Node
	Items        []*Node
	Hooks        []*Node
}

func (*Property) Kind() Kind { return KindProperty }

func (x *Property) each(fn visitFunc) {
	visitNode(fn, x.Type)
	visitList(fn, x.Items)
	visitList(fn, x.Hooks)
}

func (x *Property) clone(a *Arena) Data {
	c := Alloc[Property](a)
	c.Visibilities = cloneVisibilities(x.Visibilities)
	c.Modifier = x.Modifier
	c.IsVar = x.IsVar
	c.Type = a.cloneNode(x.Type)
	c.Items = a.cloneList(x.Items)
	c.Hooks = a.cloneList(x.Hooks)
	return c
}

// PropertyItem 属性项。Type 与所属 Property 的类型一致，只做镜像，不参与遍历
type PropertyItem struct {
	Type  *Node
	Name  string
	Value *Node
}

func (*PropertyItem) Kind() Kind { return KindPropertyItem }

func (x *PropertyItem) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *PropertyItem) clone(a *Arena) Data {
	c := Alloc[PropertyItem](a)
	c.Type = a.cloneNode(x.Type)
	c.Name = a.Str(x.Name)
	c.Value = a.cloneNode(x.Value)
	return c
}

// PropertyHook 属性钩子 get/set。IsShort 表示 => 表达式形式，Body 为 nil 表示抽象钩子
type PropertyHook struct {
	IsFinal    bool
	IsRef      bool
	IsGet      bool
	Parameters []*Node
	Body       *Node
	IsShort    bool
}

func (*PropertyHook) Kind() Kind { return KindPropertyHook }

func (x *PropertyHook) each(fn visitFunc) {
	visitList(fn, x.Parameters)
	visitNode(fn, x.Body)
}

func (x *PropertyHook) clone(a *Arena) Data {
	c := Alloc[PropertyHook](a)
	c.IsFinal = x.IsFinal
	c.IsRef = x.IsRef
	c.IsGet = x.IsGet
	c.Parameters = a.cloneList(x.Parameters)
	c.Body = a.cloneNode(x.Body)
	c.IsShort = x.IsShort
	return c
}

// ConstProperty 类常量声明
type ConstProperty struct {
	IsFinal      bool
	Visibilities []Visibility
	Type         *Node
	Items        []*Node
}

func (*ConstProperty) Kind() Kind { return KindConstProperty }

func (x *ConstProperty) each(fn visitFunc) {
	visitNode(fn, x.Type)
	visitList(fn, x.Items)
}

func (x *ConstProperty) clone(a *Arena) Data {
	c := Alloc[ConstProperty](a)
	c.IsFinal = x.IsFinal
	c.Visibilities = cloneVisibilities(x.Visibilities)
	c.Type = a.cloneNode(x.Type)
	c.Items = a.cloneList(x.Items)
	return c
}
