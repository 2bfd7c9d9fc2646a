package ast

// ============================================================================
// 控制结构
// ============================================================================

// If if 语句。Invalid 为 Else 或表示 elseif 的 If
type If struct {
	Condition *Node
	Valid     *Node
	Invalid   *Node
	IsShort   bool
}

func (*If) Kind() Kind { return KindIf }

func (x *If) each(fn visitFunc) {
	visitNode(fn, x.Condition)
	visitNode(fn, x.Valid)
	visitNode(fn, x.Invalid)
}

func (x *If) clone(a *Arena) Data {
	c := Alloc[If](a)
	c.Condition = a.cloneNode(x.Condition)
	c.Valid = a.cloneNode(x.Valid)
	c.Invalid = a.cloneNode(x.Invalid)
	c.IsShort = x.IsShort
	return c
}

// Else else 分支
type Else struct {
	Body    *Node
	IsShort bool
}

func (*Else) Kind() Kind { return KindElse }

func (x *Else) each(fn visitFunc) {
	visitNode(fn, x.Body)
}

func (x *Else) clone(a *Arena) Data {
	c := Alloc[Else](a)
	c.Body = a.cloneNode(x.Body)
	c.IsShort = x.IsShort
	return c
}

// Switch switch 语句
type Switch struct {
	Condition *Node
	Cases     []*Node
	IsShort   bool
}

func (*Switch) Kind() Kind { return KindSwitch }

func (x *Switch) each(fn visitFunc) {
	visitNode(fn, x.Condition)
	visitList(fn, x.Cases)
}

func (x *Switch) clone(a *Arena) Data {
	c := Alloc[Switch](a)
	c.Condition = a.cloneNode(x.Condition)
	c.Cases = a.cloneList(x.Cases)
	c.IsShort = x.IsShort
	return c
}

// Case case 分支，Condition 为 nil 表示 default
type Case struct {
	Condition *Node
	Body      []*Node
}

func (*Case) Kind() Kind { return KindCase }

func (x *Case) each(fn visitFunc) {
	visitNode(fn, x.Condition)
	visitList(fn, x.Body)
}

func (x *Case) clone(a *Arena) Data {
	c := Alloc[Case](a)
	c.Condition = a.cloneNode(x.Condition)
	c.Body = a.cloneList(x.Body)
	return c
}

// For for 循环
type For struct {
	Inits      []*Node
	Conditions []*Node
	Steps      []*Node
	Body       *Node
	BodyType   BodyType
}

func (*For) Kind() Kind { return KindFor }

func (x *For) each(fn visitFunc) {
	visitList(fn, x.Inits)
	visitList(fn, x.Conditions)
	visitList(fn, x.Steps)
	visitNode(fn, x.Body)
}

func (x *For) clone(a *Arena) Data {
	c := Alloc[For](a)
	c.Inits = a.cloneList(x.Inits)
	c.Conditions = a.cloneList(x.Conditions)
	c.Steps = a.cloneList(x.Steps)
	c.Body = a.cloneNode(x.Body)
	c.BodyType = x.BodyType
	return c
}

// Foreach foreach 循环
type Foreach struct {
	Source   *Node
	Key      *Node
	Value    *Node
	Body     *Node
	BodyType BodyType
}

func (*Foreach) Kind() Kind { return KindForeach }

func (x *Foreach) each(fn visitFunc) {
	visitNode(fn, x.Source)
	visitNode(fn, x.Key)
	visitNode(fn, x.Value)
	visitNode(fn, x.Body)
}

func (x *Foreach) clone(a *Arena) Data {
	c := Alloc[Foreach](a)
	c.Source = a.cloneNode(x.Source)
	c.Key = a.cloneNode(x.Key)
	c.Value = a.cloneNode(x.Value)
	c.Body = a.cloneNode(x.Body)
	c.BodyType = x.BodyType
	return c
}

// While while 循环
type While struct {
	Condition *Node
	Body      *Node
	BodyType  BodyType
}

func (*While) Kind() Kind { return KindWhile }

func (x *While) each(fn visitFunc) {
	visitNode(fn, x.Condition)
	visitNode(fn, x.Body)
}

func (x *While) clone(a *Arena) Data {
	c := Alloc[While](a)
	c.Condition = a.cloneNode(x.Condition)
	c.Body = a.cloneNode(x.Body)
	c.BodyType = x.BodyType
	return c
}

// DoWhile do-while 循环
type DoWhile struct {
	Body      *Node
	Condition *Node
}

func (*DoWhile) Kind() Kind { return KindDoWhile }

func (x *DoWhile) each(fn visitFunc) {
	visitNode(fn, x.Body)
	visitNode(fn, x.Condition)
}

func (x *DoWhile) clone(a *Arena) Data {
	c := Alloc[DoWhile](a)
	c.Body = a.cloneNode(x.Body)
	c.Condition = a.cloneNode(x.Condition)
	return c
}

// DoWhileCondition do-while 的 while (...) 部分
type DoWhileCondition struct {
	Condition *Node
}

func (*DoWhileCondition) Kind() Kind { return KindDoWhileCondition }

func (x *DoWhileCondition) each(fn visitFunc) {
	visitNode(fn, x.Condition)
}

func (x *DoWhileCondition) clone(a *Arena) Data {
	c := Alloc[DoWhileCondition](a)
	c.Condition = a.cloneNode(x.Condition)
	return c
}

// Try try 语句
type Try struct {
	Body    *Node
	Catches []*Node
	Finally *Node
}

func (*Try) Kind() Kind { return KindTry }

func (x *Try) each(fn visitFunc) {
	visitNode(fn, x.Body)
	visitList(fn, x.Catches)
	visitNode(fn, x.Finally)
}

func (x *Try) clone(a *Arena) Data {
	c := Alloc[Try](a)
	c.Body = a.cloneNode(x.Body)
	c.Catches = a.cloneList(x.Catches)
	c.Finally = a.cloneNode(x.Finally)
	return c
}

// Catch catch 分支，Variable 可省略
type Catch struct {
	Types    []*Node
	Variable *Node
	Body     *Node
}

func (*Catch) Kind() Kind { return KindCatch }

func (x *Catch) each(fn visitFunc) {
	visitList(fn, x.Types)
	visitNode(fn, x.Variable)
	visitNode(fn, x.Body)
}

func (x *Catch) clone(a *Arena) Data {
	c := Alloc[Catch](a)
	c.Types = a.cloneList(x.Types)
	c.Variable = a.cloneNode(x.Variable)
	c.Body = a.cloneNode(x.Body)
	return c
}

// Finally finally 分支
type Finally struct {
	Body *Node
}

func (*Finally) Kind() Kind { return KindFinally }

func (x *Finally) each(fn visitFunc) {
	visitNode(fn, x.Body)
}

func (x *Finally) clone(a *Arena) Data {
	c := Alloc[Finally](a)
	c.Body = a.cloneNode(x.Body)
	return c
}
