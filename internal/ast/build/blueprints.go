package build

import "github.com/tangzhangming/phpfmt/internal/ast"

// ============================================================================
// 蓝图类型
// ============================================================================
//
// 每个蓝图与同名节点载荷字段一一对应，子节点换成 Blueprint。
//
// ============================================================================

// Program 对应 ast.Program
type Program struct {
	Opener   string
	Children []Blueprint
}

// Build 物化为 arena 中的节点
func (b Program) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Program{
		Opener:   a.Str(b.Opener),
		Children: buildList(a, b.Children),
	})
}

// Block 对应 ast.Block
type Block struct {
	Statements []Blueprint
}

// Build 物化为 arena 中的节点
func (b Block) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Block{
		Statements: buildList(a, b.Statements),
	})
}

// Namespace 对应 ast.Namespace
type Namespace struct {
	Name      string
	Body      Blueprint
	IsBracket bool
}

// Build 物化为 arena 中的节点
func (b Namespace) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Namespace{
		Name:      a.Str(b.Name),
		Body:      buildNode(a, b.Body),
		IsBracket: b.IsBracket,
	})
}

// Use 对应 ast.Use
type Use struct {
	Prefix   string
	Modifier ast.UseModifier
	Items    []Blueprint
}

// Build 物化为 arena 中的节点
func (b Use) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Use{
		Prefix:   a.Str(b.Prefix),
		Modifier: b.Modifier,
		Items:    buildList(a, b.Items),
	})
}

// UseItem 对应 ast.UseItem
type UseItem struct {
	Modifier ast.UseModifier
	Name     string
	Alias    string
}

// Build 物化为 arena 中的节点
func (b UseItem) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.UseItem{
		Modifier: b.Modifier,
		Name:     a.Str(b.Name),
		Alias:    a.Str(b.Alias),
	})
}

// Const 对应 ast.Const
type Const struct {
	Items []Blueprint
}

// Build 物化为 arena 中的节点
func (b Const) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Const{
		Items: buildList(a, b.Items),
	})
}

// ConstItem 对应 ast.ConstItem
type ConstItem struct {
	Name  string
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b ConstItem) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.ConstItem{
		Name:  a.Str(b.Name),
		Value: buildNode(a, b.Value),
	})
}

// Declare 对应 ast.Declare
type Declare struct {
	Arguments []Blueprint
	Body      Blueprint
	BodyType  ast.BodyType
}

// Build 物化为 arena 中的节点
func (b Declare) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Declare{
		Arguments: buildList(a, b.Arguments),
		Body:      buildNode(a, b.Body),
		BodyType:  b.BodyType,
	})
}

// DeclareArgument 对应 ast.DeclareArgument
type DeclareArgument struct {
	Name  string
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b DeclareArgument) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.DeclareArgument{
		Name:  a.Str(b.Name),
		Value: buildNode(a, b.Value),
	})
}

// Inline 对应 ast.Inline
type Inline struct {
	Closer string
	Text   string
	Opener string
}

// Build 物化为 arena 中的节点
func (b Inline) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Inline{
		Closer: a.Str(b.Closer),
		Text:   a.Str(b.Text),
		Opener: a.Str(b.Opener),
	})
}

// Label 对应 ast.Label
type Label struct {
	Name string
}

// Build 物化为 arena 中的节点
func (b Label) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Label{
		Name: a.Str(b.Name),
	})
}

// Goto 对应 ast.Goto
type Goto struct {
	Label string
}

// Build 物化为 arena 中的节点
func (b Goto) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Goto{
		Label: a.Str(b.Label),
	})
}

// Class 对应 ast.Class
type Class struct {
	IsReadonly  bool
	Inheritance ast.Inheritance
	Name        string
	Extends     Blueprint
	Implements  []Blueprint
	Body        []Blueprint
}

// Build 物化为 arena 中的节点
func (b Class) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Class{
		IsReadonly:  b.IsReadonly,
		Inheritance: b.Inheritance,
		Name:        a.Str(b.Name),
		Extends:     buildNode(a, b.Extends),
		Implements:  buildList(a, b.Implements),
		Body:        buildList(a, b.Body),
	})
}

// AnonymousClass 对应 ast.AnonymousClass
type AnonymousClass struct {
	IsReadonly bool
	Arguments  []Blueprint
	Extends    Blueprint
	Implements []Blueprint
	Body       []Blueprint
}

// Build 物化为 arena 中的节点
func (b AnonymousClass) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.AnonymousClass{
		IsReadonly: b.IsReadonly,
		Arguments:  buildList(a, b.Arguments),
		Extends:    buildNode(a, b.Extends),
		Implements: buildList(a, b.Implements),
		Body:       buildList(a, b.Body),
	})
}

// Interface 对应 ast.Interface
type Interface struct {
	Name    string
	Extends []Blueprint
	Body    []Blueprint
}

// Build 物化为 arena 中的节点
func (b Interface) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Interface{
		Name:    a.Str(b.Name),
		Extends: buildList(a, b.Extends),
		Body:    buildList(a, b.Body),
	})
}

// Trait 对应 ast.Trait
type Trait struct {
	Name string
	Body []Blueprint
}

// Build 物化为 arena 中的节点
func (b Trait) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Trait{
		Name: a.Str(b.Name),
		Body: buildList(a, b.Body),
	})
}

// Enum 对应 ast.Enum
type Enum struct {
	Name       string
	BackedType Blueprint
	Implements []Blueprint
	Body       []Blueprint
}

// Build 物化为 arena 中的节点
func (b Enum) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Enum{
		Name:       a.Str(b.Name),
		BackedType: buildNode(a, b.BackedType),
		Implements: buildList(a, b.Implements),
		Body:       buildList(a, b.Body),
	})
}

// EnumItem 对应 ast.EnumItem
type EnumItem struct {
	Name  string
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b EnumItem) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.EnumItem{
		Name:  a.Str(b.Name),
		Value: buildNode(a, b.Value),
	})
}

// TraitUse 对应 ast.TraitUse
type TraitUse struct {
	Traits      []Blueprint
	Adaptations []Blueprint
}

// Build 物化为 arena 中的节点
func (b TraitUse) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.TraitUse{
		Traits:      buildList(a, b.Traits),
		Adaptations: buildList(a, b.Adaptations),
	})
}

// TraitUseRule 对应 ast.TraitUseRule
type TraitUseRule struct {
	Trait      Blueprint
	Method     string
	InsteadOf  []Blueprint
	Visibility ast.Visibility
	Alias      string
}

// Build 物化为 arena 中的节点
func (b TraitUseRule) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.TraitUseRule{
		Trait:      buildNode(a, b.Trait),
		Method:     a.Str(b.Method),
		InsteadOf:  buildList(a, b.InsteadOf),
		Visibility: b.Visibility,
		Alias:      a.Str(b.Alias),
	})
}

// Function 对应 ast.Function
type Function struct {
	IsRef      bool
	Name       string
	Parameters []Blueprint
	ReturnType Blueprint
	Body       Blueprint
}

// Build 物化为 arena 中的节点
func (b Function) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Function{
		IsRef:      b.IsRef,
		Name:       a.Str(b.Name),
		Parameters: buildList(a, b.Parameters),
		ReturnType: buildNode(a, b.ReturnType),
		Body:       buildNode(a, b.Body),
	})
}

// AnonymousFunction 对应 ast.AnonymousFunction
type AnonymousFunction struct {
	IsStatic   bool
	IsRef      bool
	Parameters []Blueprint
	Uses       []Blueprint
	ReturnType Blueprint
	Body       Blueprint
}

// Build 物化为 arena 中的节点
func (b AnonymousFunction) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.AnonymousFunction{
		IsStatic:   b.IsStatic,
		IsRef:      b.IsRef,
		Parameters: buildList(a, b.Parameters),
		Uses:       buildList(a, b.Uses),
		ReturnType: buildNode(a, b.ReturnType),
		Body:       buildNode(a, b.Body),
	})
}

// ArrowFunction 对应 ast.ArrowFunction
type ArrowFunction struct {
	IsStatic   bool
	IsRef      bool
	Parameters []Blueprint
	ReturnType Blueprint
	Body       Blueprint
}

// Build 物化为 arena 中的节点
func (b ArrowFunction) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.ArrowFunction{
		IsStatic:   b.IsStatic,
		IsRef:      b.IsRef,
		Parameters: buildList(a, b.Parameters),
		ReturnType: buildNode(a, b.ReturnType),
		Body:       buildNode(a, b.Body),
	})
}

// Method 对应 ast.Method
type Method struct {
	Inheritance ast.Inheritance
	Visibility  ast.Visibility
	IsStatic    bool
	IsRef       bool
	Name        string
	Parameters  []Blueprint
	ReturnType  Blueprint
	Body        Blueprint
}

// Build 物化为 arena 中的节点
func (b Method) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Method{
		Inheritance: b.Inheritance,
		Visibility:  b.Visibility,
		IsStatic:    b.IsStatic,
		IsRef:       b.IsRef,
		Name:        a.Str(b.Name),
		Parameters:  buildList(a, b.Parameters),
		ReturnType:  buildNode(a, b.ReturnType),
		Body:        buildNode(a, b.Body),
	})
}

// Parameter 对应 ast.Parameter
type Parameter struct {
	Type       Blueprint
	IsRef      bool
	IsVariadic bool
	Name       string
	Default    Blueprint
}

// Build 物化为 arena 中的节点
func (b Parameter) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Parameter{
		Type:       buildNode(a, b.Type),
		IsRef:      b.IsRef,
		IsVariadic: b.IsVariadic,
		Name:       a.Str(b.Name),
		Default:    buildNode(a, b.Default),
	})
}

// ConstructorParameter 对应 ast.ConstructorParameter
type ConstructorParameter struct {
	Visibilities []ast.Visibility
	Modifier     ast.Modifier
	Parameter    Blueprint
}

// Build 物化为 arena 中的节点
func (b ConstructorParameter) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.ConstructorParameter{
		Visibilities: append([]ast.Visibility(nil), b.Visibilities...),
		Modifier:     b.Modifier,
		Parameter:    buildNode(a, b.Parameter),
	})
}

// Property 对应 ast.Property
type Property struct {
	Visibilities []ast.Visibility
	Modifier     ast.Modifier
	IsVar        bool
	Type         Blueprint
	Items        []Blueprint
	Hooks        []Blueprint
}

// Build 物化为 arena 中的节点
func (b Property) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Property{
		Visibilities: append([]ast.Visibility(nil), b.Visibilities...),
		Modifier:     b.Modifier,
		IsVar:        b.IsVar,
		Type:         buildNode(a, b.Type),
		Items:        buildList(a, b.Items),
		Hooks:        buildList(a, b.Hooks),
	})
}

// PropertyItem 对应 ast.PropertyItem
type PropertyItem struct {
	Type  Blueprint
	Name  string
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b PropertyItem) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.PropertyItem{
		Type:  buildNode(a, b.Type),
		Name:  a.Str(b.Name),
		Value: buildNode(a, b.Value),
	})
}

// PropertyHook 对应 ast.PropertyHook
type PropertyHook struct {
	IsFinal    bool
	IsRef      bool
	IsGet      bool
	Parameters []Blueprint
	Body       Blueprint
	IsShort    bool
}

// Build 物化为 arena 中的节点
func (b PropertyHook) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.PropertyHook{
		IsFinal:    b.IsFinal,
		IsRef:      b.IsRef,
		IsGet:      b.IsGet,
		Parameters: buildList(a, b.Parameters),
		Body:       buildNode(a, b.Body),
		IsShort:    b.IsShort,
	})
}

// ConstProperty 对应 ast.ConstProperty
type ConstProperty struct {
	IsFinal      bool
	Visibilities []ast.Visibility
	Type         Blueprint
	Items        []Blueprint
}

// Build 物化为 arena 中的节点
func (b ConstProperty) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.ConstProperty{
		IsFinal:      b.IsFinal,
		Visibilities: append([]ast.Visibility(nil), b.Visibilities...),
		Type:         buildNode(a, b.Type),
		Items:        buildList(a, b.Items),
	})
}

// Assignment 对应 ast.Assignment
type Assignment struct {
	Left     Blueprint
	Operator string
	Right    Blueprint
}

// Build 物化为 arena 中的节点
func (b Assignment) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Assignment{
		Left:     buildNode(a, b.Left),
		Operator: a.Str(b.Operator),
		Right:    buildNode(a, b.Right),
	})
}

// Bin 对应 ast.Bin
type Bin struct {
	Left     Blueprint
	Operator string
	Right    Blueprint
}

// Build 物化为 arena 中的节点
func (b Bin) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Bin{
		Left:     buildNode(a, b.Left),
		Operator: a.Str(b.Operator),
		Right:    buildNode(a, b.Right),
	})
}

// Ternary 对应 ast.Ternary
type Ternary struct {
	Condition Blueprint
	Valid     Blueprint
	Invalid   Blueprint
}

// Build 物化为 arena 中的节点
func (b Ternary) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Ternary{
		Condition: buildNode(a, b.Condition),
		Valid:     buildNode(a, b.Valid),
		Invalid:   buildNode(a, b.Invalid),
	})
}

// Pre 对应 ast.Pre
type Pre struct {
	Operator string
	Variable Blueprint
}

// Build 物化为 arena 中的节点
func (b Pre) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Pre{
		Operator: a.Str(b.Operator),
		Variable: buildNode(a, b.Variable),
	})
}

// Post 对应 ast.Post
type Post struct {
	Variable Blueprint
	Operator string
}

// Build 物化为 arena 中的节点
func (b Post) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Post{
		Variable: buildNode(a, b.Variable),
		Operator: a.Str(b.Operator),
	})
}

// Negate 对应 ast.Negate
type Negate struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Negate) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Negate{
		Value: buildNode(a, b.Value),
	})
}

// Unary 对应 ast.Unary
type Unary struct {
	Operator string
	Value    Blueprint
}

// Build 物化为 arena 中的节点
func (b Unary) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Unary{
		Operator: a.Str(b.Operator),
		Value:    buildNode(a, b.Value),
	})
}

// Silent 对应 ast.Silent
type Silent struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Silent) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Silent{
		Value: buildNode(a, b.Value),
	})
}

// Reference 对应 ast.Reference
type Reference struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Reference) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Reference{
		Value: buildNode(a, b.Value),
	})
}

// Variadic 对应 ast.Variadic
type Variadic struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Variadic) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Variadic{
		Value: buildNode(a, b.Value),
	})
}

// Clone 对应 ast.Clone
type Clone struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Clone) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Clone{
		Value: buildNode(a, b.Value),
	})
}

// New 对应 ast.New
type New struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b New) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.New{
		Value: buildNode(a, b.Value),
	})
}

// Print 对应 ast.Print
type Print struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Print) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Print{
		Value: buildNode(a, b.Value),
	})
}

// Throw 对应 ast.Throw
type Throw struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Throw) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Throw{
		Value: buildNode(a, b.Value),
	})
}

// Break 对应 ast.Break
type Break struct {
	Level Blueprint
}

// Build 物化为 arena 中的节点
func (b Break) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Break{
		Level: buildNode(a, b.Level),
	})
}

// Continue 对应 ast.Continue
type Continue struct {
	Level Blueprint
}

// Build 物化为 arena 中的节点
func (b Continue) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Continue{
		Level: buildNode(a, b.Level),
	})
}

// Return 对应 ast.Return
type Return struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Return) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Return{
		Value: buildNode(a, b.Value),
	})
}

// Yield 对应 ast.Yield
type Yield struct {
	Key   Blueprint
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Yield) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Yield{
		Key:   buildNode(a, b.Key),
		Value: buildNode(a, b.Value),
	})
}

// YieldFrom 对应 ast.YieldFrom
type YieldFrom struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b YieldFrom) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.YieldFrom{
		Value: buildNode(a, b.Value),
	})
}

// Cast 对应 ast.Cast
type Cast struct {
	Type  string
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Cast) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Cast{
		Type:  a.Str(b.Type),
		Value: buildNode(a, b.Value),
	})
}

// Include 对应 ast.Include
type Include struct {
	Keyword string
	Value   Blueprint
}

// Build 物化为 arena 中的节点
func (b Include) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Include{
		Keyword: a.Str(b.Keyword),
		Value:   buildNode(a, b.Value),
	})
}

// Echo 对应 ast.Echo
type Echo struct {
	IsTag  bool
	Values []Blueprint
}

// Build 物化为 arena 中的节点
func (b Echo) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Echo{
		IsTag:  b.IsTag,
		Values: buildList(a, b.Values),
	})
}

// Global 对应 ast.Global
type Global struct {
	Variables []Blueprint
}

// Build 物化为 arena 中的节点
func (b Global) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Global{
		Variables: buildList(a, b.Variables),
	})
}

// StaticVariables 对应 ast.StaticVariables
type StaticVariables struct {
	Items []Blueprint
}

// Build 物化为 arena 中的节点
func (b StaticVariables) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.StaticVariables{
		Items: buildList(a, b.Items),
	})
}

// Call 对应 ast.Call
type Call struct {
	Callee    Blueprint
	Arguments []Blueprint
}

// Build 物化为 arena 中的节点
func (b Call) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Call{
		Callee:    buildNode(a, b.Callee),
		Arguments: buildList(a, b.Arguments),
	})
}

// CallArgument 对应 ast.CallArgument
type CallArgument struct {
	Name  string
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b CallArgument) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.CallArgument{
		Name:  a.Str(b.Name),
		Value: buildNode(a, b.Value),
	})
}

// ArrayLookup 对应 ast.ArrayLookup
type ArrayLookup struct {
	Left  Blueprint
	Right Blueprint
}

// Build 物化为 arena 中的节点
func (b ArrayLookup) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.ArrayLookup{
		Left:  buildNode(a, b.Left),
		Right: buildNode(a, b.Right),
	})
}

// StaticLookup 对应 ast.StaticLookup
type StaticLookup struct {
	Left       Blueprint
	Right      Blueprint
	UseBracket bool
}

// Build 物化为 arena 中的节点
func (b StaticLookup) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.StaticLookup{
		Left:       buildNode(a, b.Left),
		Right:      buildNode(a, b.Right),
		UseBracket: b.UseBracket,
	})
}

// ObjectAccess 对应 ast.ObjectAccess
type ObjectAccess struct {
	Left       Blueprint
	Right      Blueprint
	UseBracket bool
	IsNullsafe bool
}

// Build 物化为 arena 中的节点
func (b ObjectAccess) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.ObjectAccess{
		Left:       buildNode(a, b.Left),
		Right:      buildNode(a, b.Right),
		UseBracket: b.UseBracket,
		IsNullsafe: b.IsNullsafe,
	})
}

// Array 对应 ast.Array
type Array struct {
	IsShort bool
	Items   []Blueprint
}

// Build 物化为 arena 中的节点
func (b Array) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Array{
		IsShort: b.IsShort,
		Items:   buildList(a, b.Items),
	})
}

// ArrayItem 对应 ast.ArrayItem
type ArrayItem struct {
	Key   Blueprint
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b ArrayItem) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.ArrayItem{
		Key:   buildNode(a, b.Key),
		Value: buildNode(a, b.Value),
	})
}

// List 对应 ast.List
type List struct {
	Items []Blueprint
}

// Build 物化为 arena 中的节点
func (b List) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.List{
		Items: buildList(a, b.Items),
	})
}

// Parenthesis 对应 ast.Parenthesis
type Parenthesis struct {
	Value Blueprint
}

// Build 物化为 arena 中的节点
func (b Parenthesis) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Parenthesis{
		Value: buildNode(a, b.Value),
	})
}

// Match 对应 ast.Match
type Match struct {
	Condition Blueprint
	Arms      []Blueprint
}

// Build 物化为 arena 中的节点
func (b Match) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Match{
		Condition: buildNode(a, b.Condition),
		Arms:      buildList(a, b.Arms),
	})
}

// MatchArm 对应 ast.MatchArm
type MatchArm struct {
	Conditions []Blueprint
	Expression Blueprint
}

// Build 物化为 arena 中的节点
func (b MatchArm) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.MatchArm{
		Conditions: buildList(a, b.Conditions),
		Expression: buildNode(a, b.Expression),
	})
}

// String 对应 ast.String
type String struct {
	Quote string
	Value string
}

// Build 物化为 arena 中的节点
func (b String) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.String{
		Quote: a.Str(b.Quote),
		Value: a.Str(b.Value),
	})
}

// NowDoc 对应 ast.NowDoc
type NowDoc struct {
	Label  string
	Indent string
	Value  string
}

// Build 物化为 arena 中的节点
func (b NowDoc) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.NowDoc{
		Label:  a.Str(b.Label),
		Indent: a.Str(b.Indent),
		Value:  a.Str(b.Value),
	})
}

// Encapsed 对应 ast.Encapsed
type Encapsed struct {
	Quote  string
	Values []Blueprint
}

// Build 物化为 arena 中的节点
func (b Encapsed) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Encapsed{
		Quote:  a.Str(b.Quote),
		Values: buildList(a, b.Values),
	})
}

// EncapsedPart 对应 ast.EncapsedPart
type EncapsedPart struct {
	IsAdvanced bool
	Value      Blueprint
}

// Build 物化为 arena 中的节点
func (b EncapsedPart) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.EncapsedPart{
		IsAdvanced: b.IsAdvanced,
		Value:      buildNode(a, b.Value),
	})
}

// HereDoc 对应 ast.HereDoc
type HereDoc struct {
	Label  string
	Indent string
	Values []Blueprint
}

// Build 物化为 arena 中的节点
func (b HereDoc) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.HereDoc{
		Label:  a.Str(b.Label),
		Indent: a.Str(b.Indent),
		Values: buildList(a, b.Values),
	})
}

// Number 对应 ast.Number
type Number struct {
	Value string
}

// Build 物化为 arena 中的节点
func (b Number) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Number{
		Value: a.Str(b.Value),
	})
}

// Identifier 对应 ast.Identifier
type Identifier struct {
	Name string
}

// Build 物化为 arena 中的节点
func (b Identifier) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Identifier{
		Name: a.Str(b.Name),
	})
}

// Variable 对应 ast.Variable
type Variable struct {
	Name     Blueprint
	IsBraced bool
}

// Build 物化为 arena 中的节点
func (b Variable) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Variable{
		Name:     buildNode(a, b.Name),
		IsBraced: b.IsBraced,
	})
}

// Magic 对应 ast.Magic
type Magic struct {
	Name string
}

// Build 物化为 arena 中的节点
func (b Magic) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Magic{
		Name: a.Str(b.Name),
	})
}

// Boolean 对应 ast.Boolean
type Boolean struct {
	Value bool
}

// Build 物化为 arena 中的节点
func (b Boolean) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Boolean{
		Value: b.Value,
	})
}

// Null 对应 ast.Null
type Null struct{}

// Build 物化为 arena 中的节点
func (b Null) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Null{})
}

// This 对应 ast.This
type This struct{}

// Build 物化为 arena 中的节点
func (b This) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.This{})
}

// Self 对应 ast.Self
type Self struct{}

// Build 物化为 arena 中的节点
func (b Self) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Self{})
}

// Parent 对应 ast.Parent
type Parent struct{}

// Build 物化为 arena 中的节点
func (b Parent) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Parent{})
}

// StaticKeyword 对应 ast.StaticKeyword
type StaticKeyword struct{}

// Build 物化为 arena 中的节点
func (b StaticKeyword) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.StaticKeyword{})
}

// Type 对应 ast.Type
type Type struct {
	Name       string
	IsNullable bool
}

// Build 物化为 arena 中的节点
func (b Type) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Type{
		Name:       a.Str(b.Name),
		IsNullable: b.IsNullable,
	})
}

// UnionType 对应 ast.UnionType
type UnionType struct {
	Types []Blueprint
}

// Build 物化为 arena 中的节点
func (b UnionType) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.UnionType{
		Types: buildList(a, b.Types),
	})
}

// IntersectionType 对应 ast.IntersectionType
type IntersectionType struct {
	Types []Blueprint
}

// Build 物化为 arena 中的节点
func (b IntersectionType) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.IntersectionType{
		Types: buildList(a, b.Types),
	})
}

// If 对应 ast.If
type If struct {
	Condition Blueprint
	Valid     Blueprint
	Invalid   Blueprint
	IsShort   bool
}

// Build 物化为 arena 中的节点
func (b If) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.If{
		Condition: buildNode(a, b.Condition),
		Valid:     buildNode(a, b.Valid),
		Invalid:   buildNode(a, b.Invalid),
		IsShort:   b.IsShort,
	})
}

// Else 对应 ast.Else
type Else struct {
	Body    Blueprint
	IsShort bool
}

// Build 物化为 arena 中的节点
func (b Else) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Else{
		Body:    buildNode(a, b.Body),
		IsShort: b.IsShort,
	})
}

// Switch 对应 ast.Switch
type Switch struct {
	Condition Blueprint
	Cases     []Blueprint
	IsShort   bool
}

// Build 物化为 arena 中的节点
func (b Switch) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Switch{
		Condition: buildNode(a, b.Condition),
		Cases:     buildList(a, b.Cases),
		IsShort:   b.IsShort,
	})
}

// Case 对应 ast.Case
type Case struct {
	Condition Blueprint
	Body      []Blueprint
}

// Build 物化为 arena 中的节点
func (b Case) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Case{
		Condition: buildNode(a, b.Condition),
		Body:      buildList(a, b.Body),
	})
}

// For 对应 ast.For
type For struct {
	Inits      []Blueprint
	Conditions []Blueprint
	Steps      []Blueprint
	Body       Blueprint
	BodyType   ast.BodyType
}

// Build 物化为 arena 中的节点
func (b For) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.For{
		Inits:      buildList(a, b.Inits),
		Conditions: buildList(a, b.Conditions),
		Steps:      buildList(a, b.Steps),
		Body:       buildNode(a, b.Body),
		BodyType:   b.BodyType,
	})
}

// Foreach 对应 ast.Foreach
type Foreach struct {
	Source   Blueprint
	Key      Blueprint
	Value    Blueprint
	Body     Blueprint
	BodyType ast.BodyType
}

// Build 物化为 arena 中的节点
func (b Foreach) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Foreach{
		Source:   buildNode(a, b.Source),
		Key:      buildNode(a, b.Key),
		Value:    buildNode(a, b.Value),
		Body:     buildNode(a, b.Body),
		BodyType: b.BodyType,
	})
}

// While 对应 ast.While
type While struct {
	Condition Blueprint
	Body      Blueprint
	BodyType  ast.BodyType
}

// Build 物化为 arena 中的节点
func (b While) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.While{
		Condition: buildNode(a, b.Condition),
		Body:      buildNode(a, b.Body),
		BodyType:  b.BodyType,
	})
}

// DoWhile 对应 ast.DoWhile
type DoWhile struct {
	Body      Blueprint
	Condition Blueprint
}

// Build 物化为 arena 中的节点
func (b DoWhile) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.DoWhile{
		Body:      buildNode(a, b.Body),
		Condition: buildNode(a, b.Condition),
	})
}

// DoWhileCondition 对应 ast.DoWhileCondition
type DoWhileCondition struct {
	Condition Blueprint
}

// Build 物化为 arena 中的节点
func (b DoWhileCondition) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.DoWhileCondition{
		Condition: buildNode(a, b.Condition),
	})
}

// Try 对应 ast.Try
type Try struct {
	Body    Blueprint
	Catches []Blueprint
	Finally Blueprint
}

// Build 物化为 arena 中的节点
func (b Try) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Try{
		Body:    buildNode(a, b.Body),
		Catches: buildList(a, b.Catches),
		Finally: buildNode(a, b.Finally),
	})
}

// Catch 对应 ast.Catch
type Catch struct {
	Types    []Blueprint
	Variable Blueprint
	Body     Blueprint
}

// Build 物化为 arena 中的节点
func (b Catch) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Catch{
		Types:    buildList(a, b.Types),
		Variable: buildNode(a, b.Variable),
		Body:     buildNode(a, b.Body),
	})
}

// Finally 对应 ast.Finally
type Finally struct {
	Body Blueprint
}

// Build 物化为 arena 中的节点
func (b Finally) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Finally{
		Body: buildNode(a, b.Body),
	})
}

// CommentLine 对应 ast.CommentLine
type CommentLine struct {
	Text string
}

// Build 物化为 arena 中的节点
func (b CommentLine) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.CommentLine{
		Text: a.Str(b.Text),
	})
}

// CommentBlock 对应 ast.CommentBlock
type CommentBlock struct {
	Text string
}

// Build 物化为 arena 中的节点
func (b CommentBlock) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.CommentBlock{
		Text: a.Str(b.Text),
	})
}

// CommentDoc 对应 ast.CommentDoc
type CommentDoc struct {
	Text string
}

// Build 物化为 arena 中的节点
func (b CommentDoc) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.CommentDoc{
		Text: a.Str(b.Text),
	})
}

// Attribute 对应 ast.Attribute
type Attribute struct {
	Items []Blueprint
}

// Build 物化为 arena 中的节点
func (b Attribute) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.Attribute{
		Items: buildList(a, b.Items),
	})
}

// AttributeItem 对应 ast.AttributeItem
type AttributeItem struct {
	Name      string
	Arguments []Blueprint
}

// Build 物化为 arena 中的节点
func (b AttributeItem) Build(a *ast.Arena) *ast.Node {
	return ast.Make(a, ast.AttributeItem{
		Name:      a.Str(b.Name),
		Arguments: buildList(a, b.Arguments),
	})
}
