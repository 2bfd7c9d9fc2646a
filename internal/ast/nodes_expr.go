package ast

// ============================================================================
// 表达式
// ============================================================================

// Assignment 赋值（含复合赋值）
type Assignment struct {
	Left     *Node
	Operator string
	Right    *Node
}

func (*Assignment) Kind() Kind { return KindAssignment }

func (x *Assignment) each(fn visitFunc) {
	visitNode(fn, x.Left)
	visitNode(fn, x.Right)
}

func (x *Assignment) clone(a *Arena) Data {
	c := Alloc[Assignment](a)
	c.Left = a.cloneNode(x.Left)
	c.Operator = a.Str(x.Operator)
	c.Right = a.cloneNode(x.Right)
	return c
}

// Bin 二元运算
type Bin struct {
	Left     *Node
	Operator string
	Right    *Node
}

func (*Bin) Kind() Kind { return KindBin }

func (x *Bin) each(fn visitFunc) {
	visitNode(fn, x.Left)
	visitNode(fn, x.Right)
}

func (x *Bin) clone(a *Arena) Data {
	c := Alloc[Bin](a)
	c.Left = a.cloneNode(x.Left)
	c.Operator = a.Str(x.Operator)
	c.Right = a.cloneNode(x.Right)
	return c
}

// Ternary 三元运算，Valid 为 nil 表示 ?: 简写
type Ternary struct {
	Condition *Node
	Valid     *Node
	Invalid   *Node
}

func (*Ternary) Kind() Kind { return KindTernary }

func (x *Ternary) each(fn visitFunc) {
	visitNode(fn, x.Condition)
	visitNode(fn, x.Valid)
	visitNode(fn, x.Invalid)
}

func (x *Ternary) clone(a *Arena) Data {
	c := Alloc[Ternary](a)
	c.Condition = a.cloneNode(x.Condition)
	c.Valid = a.cloneNode(x.Valid)
	c.Invalid = a.cloneNode(x.Invalid)
	return c
}

// Pre 前置自增/自减
type Pre struct {
	Operator string
	Variable *Node
}

func (*Pre) Kind() Kind { return KindPre }

func (x *Pre) each(fn visitFunc) {
	visitNode(fn, x.Variable)
}

func (x *Pre) clone(a *Arena) Data {
	c := Alloc[Pre](a)
	c.Operator = a.Str(x.Operator)
	c.Variable = a.cloneNode(x.Variable)
	return c
}

// Post 后置自增/自减
type Post struct {
	Variable *Node
	Operator string
}

func (*Post) Kind() Kind { return KindPost }

func (x *Post) each(fn visitFunc) {
	visitNode(fn, x.Variable)
}

func (x *Post) clone(a *Arena) Data {
	c := Alloc[Post](a)
	c.Variable = a.cloneNode(x.Variable)
	c.Operator = a.Str(x.Operator)
	return c
}

// Negate 逻辑非 !
type Negate struct {
	Value *Node
}

func (*Negate) Kind() Kind { return KindNegate }

func (x *Negate) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Negate) clone(a *Arena) Data {
	c := Alloc[Negate](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Unary 一元 - + ~
type Unary struct {
	Operator string
	Value    *Node
}

func (*Unary) Kind() Kind { return KindUnary }

func (x *Unary) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Unary) clone(a *Arena) Data {
	c := Alloc[Unary](a)
	c.Operator = a.Str(x.Operator)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Silent 错误抑制 @
type Silent struct {
	Value *Node
}

func (*Silent) Kind() Kind { return KindSilent }

func (x *Silent) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Silent) clone(a *Arena) Data {
	c := Alloc[Silent](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Reference 引用 &
type Reference struct {
	Value *Node
}

func (*Reference) Kind() Kind { return KindReference }

func (x *Reference) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Reference) clone(a *Arena) Data {
	c := Alloc[Reference](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Variadic 展开 ...，Value 为 nil 表示一等可调用语法 foo(...)
type Variadic struct {
	Value *Node
}

func (*Variadic) Kind() Kind { return KindVariadic }

func (x *Variadic) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Variadic) clone(a *Arena) Data {
	c := Alloc[Variadic](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Clone clone 表达式
type Clone struct {
	Value *Node
}

func (*Clone) Kind() Kind { return KindClone }

func (x *Clone) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Clone) clone(a *Arena) Data {
	c := Alloc[Clone](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// New new 表达式
type New struct {
	Value *Node
}

func (*New) Kind() Kind { return KindNew }

func (x *New) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *New) clone(a *Arena) Data {
	c := Alloc[New](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Print print 表达式
type Print struct {
	Value *Node
}

func (*Print) Kind() Kind { return KindPrint }

func (x *Print) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Print) clone(a *Arena) Data {
	c := Alloc[Print](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Throw throw 表达式
type Throw struct {
	Value *Node
}

func (*Throw) Kind() Kind { return KindThrow }

func (x *Throw) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Throw) clone(a *Arena) Data {
	c := Alloc[Throw](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Break break 语句
type Break struct {
	Level *Node
}

func (*Break) Kind() Kind { return KindBreak }

func (x *Break) each(fn visitFunc) {
	visitNode(fn, x.Level)
}

func (x *Break) clone(a *Arena) Data {
	c := Alloc[Break](a)
	c.Level = a.cloneNode(x.Level)
	return c
}

// Continue continue 语句
type Continue struct {
	Level *Node
}

func (*Continue) Kind() Kind { return KindContinue }

func (x *Continue) each(fn visitFunc) {
	visitNode(fn, x.Level)
}

func (x *Continue) clone(a *Arena) Data {
	c := Alloc[Continue](a)
	c.Level = a.cloneNode(x.Level)
	return c
}

// Return return 语句
type Return struct {
	Value *Node
}

func (*Return) Kind() Kind { return KindReturn }

func (x *Return) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Return) clone(a *Arena) Data {
	c := Alloc[Return](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Yield yield 表达式
type Yield struct {
	Key   *Node
	Value *Node
}

func (*Yield) Kind() Kind { return KindYield }

func (x *Yield) each(fn visitFunc) {
	visitNode(fn, x.Key)
	visitNode(fn, x.Value)
}

func (x *Yield) clone(a *Arena) Data {
	c := Alloc[Yield](a)
	c.Key = a.cloneNode(x.Key)
	c.Value = a.cloneNode(x.Value)
	return c
}

// YieldFrom yield from 表达式
type YieldFrom struct {
	Value *Node
}

func (*YieldFrom) Kind() Kind { return KindYieldFrom }

func (x *YieldFrom) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *YieldFrom) clone(a *Arena) Data {
	c := Alloc[YieldFrom](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Cast 类型转换，Type 为规范名称（int、bool、float、string、array、object、unset）
type Cast struct {
	Type  string
	Value *Node
}

func (*Cast) Kind() Kind { return KindCast }

func (x *Cast) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Cast) clone(a *Arena) Data {
	c := Alloc[Cast](a)
	c.Type = a.Str(x.Type)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Include include/include_once/require/require_once
type Include struct {
	Keyword string
	Value   *Node
}

func (*Include) Kind() Kind { return KindInclude }

func (x *Include) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Include) clone(a *Arena) Data {
	c := Alloc[Include](a)
	c.Keyword = a.Str(x.Keyword)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Echo echo 语句，IsTag 表示由 <?= 引出
type Echo struct {
	IsTag  bool
	Values []*Node
}

func (*Echo) Kind() Kind { return KindEcho }

func (x *Echo) each(fn visitFunc) {
	visitList(fn, x.Values)
}

func (x *Echo) clone(a *Arena) Data {
	c := Alloc[Echo](a)
	c.IsTag = x.IsTag
	c.Values = a.cloneList(x.Values)
	return c
}

// Global global 语句
type Global struct {
	Variables []*Node
}

func (*Global) Kind() Kind { return KindGlobal }

func (x *Global) each(fn visitFunc) {
	visitList(fn, x.Variables)
}

func (x *Global) clone(a *Arena) Data {
	c := Alloc[Global](a)
	c.Variables = a.cloneList(x.Variables)
	return c
}

// StaticVariables 函数内 static 变量声明
type StaticVariables struct {
	Items []*Node
}

func (*StaticVariables) Kind() Kind { return KindStaticVariables }

func (x *StaticVariables) each(fn visitFunc) {
	visitList(fn, x.Items)
}

func (x *StaticVariables) clone(a *Arena) Data {
	c := Alloc[StaticVariables](a)
	c.Items = a.cloneList(x.Items)
	return c
}

// Call 函数调用
type Call struct {
	Callee    *Node
	Arguments []*Node
}

func (*Call) Kind() Kind { return KindCall }

func (x *Call) each(fn visitFunc) {
	visitNode(fn, x.Callee)
	visitList(fn, x.Arguments)
}

func (x *Call) clone(a *Arena) Data {
	c := Alloc[Call](a)
	c.Callee = a.cloneNode(x.Callee)
	c.Arguments = a.cloneList(x.Arguments)
	return c
}

// CallArgument 调用参数，Name 非空时为命名参数
type CallArgument struct {
	Name  string
	Value *Node
}

func (*CallArgument) Kind() Kind { return KindCallArgument }

func (x *CallArgument) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *CallArgument) clone(a *Arena) Data {
	c := Alloc[CallArgument](a)
	c.Name = a.Str(x.Name)
	c.Value = a.cloneNode(x.Value)
	return c
}

// ArrayLookup 数组下标，Right 为 nil 表示 $a[]
type ArrayLookup struct {
	Left  *Node
	Right *Node
}

func (*ArrayLookup) Kind() Kind { return KindArrayLookup }

func (x *ArrayLookup) each(fn visitFunc) {
	visitNode(fn, x.Left)
	visitNode(fn, x.Right)
}

func (x *ArrayLookup) clone(a *Arena) Data {
	c := Alloc[ArrayLookup](a)
	c.Left = a.cloneNode(x.Left)
	c.Right = a.cloneNode(x.Right)
	return c
}

// StaticLookup 静态访问 A::b，UseBracket 表示 A::{expr}
type StaticLookup struct {
	Left       *Node
	Right      *Node
	UseBracket bool
}

func (*StaticLookup) Kind() Kind { return KindStaticLookup }

func (x *StaticLookup) each(fn visitFunc) {
	visitNode(fn, x.Left)
	visitNode(fn, x.Right)
}

func (x *StaticLookup) clone(a *Arena) Data {
	c := Alloc[StaticLookup](a)
	c.Left = a.cloneNode(x.Left)
	c.Right = a.cloneNode(x.Right)
	c.UseBracket = x.UseBracket
	return c
}

// ObjectAccess 成员访问 $a->b 或 $a?->b
type ObjectAccess struct {
	Left       *Node
	Right      *Node
	UseBracket bool
	IsNullsafe bool
}

func (*ObjectAccess) Kind() Kind { return KindObjectAccess }

func (x *ObjectAccess) each(fn visitFunc) {
	visitNode(fn, x.Left)
	visitNode(fn, x.Right)
}

func (x *ObjectAccess) clone(a *Arena) Data {
	c := Alloc[ObjectAccess](a)
	c.Left = a.cloneNode(x.Left)
	c.Right = a.cloneNode(x.Right)
	c.UseBracket = x.UseBracket
	c.IsNullsafe = x.IsNullsafe
	return c
}

// Array 数组字面量，IsShort 表示 [] 形式
type Array struct {
	IsShort bool
	Items   []*Node
}

func (*Array) Kind() Kind { return KindArray }

func (x *Array) each(fn visitFunc) {
	visitList(fn, x.Items)
}

func (x *Array) clone(a *Arena) Data {
	c := Alloc[Array](a)
	c.IsShort = x.IsShort
	c.Items = a.cloneList(x.Items)
	return c
}

// ArrayItem 数组项，Value 为 nil 表示解构中跳过的位置
type ArrayItem struct {
	Key   *Node
	Value *Node
}

func (*ArrayItem) Kind() Kind { return KindArrayItem }

func (x *ArrayItem) each(fn visitFunc) {
	visitNode(fn, x.Key)
	visitNode(fn, x.Value)
}

func (x *ArrayItem) clone(a *Arena) Data {
	c := Alloc[ArrayItem](a)
	c.Key = a.cloneNode(x.Key)
	c.Value = a.cloneNode(x.Value)
	return c
}

// List list() 解构
type List struct {
	Items []*Node
}

func (*List) Kind() Kind { return KindList }

func (x *List) each(fn visitFunc) {
	visitList(fn, x.Items)
}

func (x *List) clone(a *Arena) Data {
	c := Alloc[List](a)
	c.Items = a.cloneList(x.Items)
	return c
}

// Parenthesis 括号表达式
type Parenthesis struct {
	Value *Node
}

func (*Parenthesis) Kind() Kind { return KindParenthesis }

func (x *Parenthesis) each(fn visitFunc) {
	visitNode(fn, x.Value)
}

func (x *Parenthesis) clone(a *Arena) Data {
	c := Alloc[Parenthesis](a)
	c.Value = a.cloneNode(x.Value)
	return c
}

// Match match 表达式
type Match struct {
	Condition *Node
	Arms      []*Node
}

func (*Match) Kind() Kind { return KindMatch }

func (x *Match) each(fn visitFunc) {
	visitNode(fn, x.Condition)
	visitList(fn, x.Arms)
}

func (x *Match) clone(a *Arena) Data {
	c := Alloc[Match](a)
	c.Condition = a.cloneNode(x.Condition)
	c.Arms = a.cloneList(x.Arms)
	return c
}

// MatchArm match 分支，Conditions 为空表示 default
type MatchArm struct {
	Conditions []*Node
	Expression *Node
}

func (*MatchArm) Kind() Kind { return KindMatchArm }

func (x *MatchArm) each(fn visitFunc) {
	visitList(fn, x.Conditions)
	visitNode(fn, x.Expression)
}

func (x *MatchArm) clone(a *Arena) Data {
	c := Alloc[MatchArm](a)
	c.Conditions = a.cloneList(x.Conditions)
	c.Expression = a.cloneNode(x.Expression)
	return c
}
