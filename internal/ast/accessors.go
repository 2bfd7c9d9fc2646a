package ast

// ============================================================================
// 载荷访问器
// ============================================================================
//
// AsX 在节点载荷为 X 时返回它，否则返回 nil。对 nil 节点调用也返回 nil。
//
// ============================================================================

// AsProgram 返回 Program 载荷
func (n *Node) AsProgram() *Program {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Program)
	return d
}

// AsBlock 返回 Block 载荷
func (n *Node) AsBlock() *Block {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Block)
	return d
}

// AsNamespace 返回 Namespace 载荷
func (n *Node) AsNamespace() *Namespace {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Namespace)
	return d
}

// AsUse 返回 Use 载荷
func (n *Node) AsUse() *Use {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Use)
	return d
}

// AsUseItem 返回 UseItem 载荷
func (n *Node) AsUseItem() *UseItem {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*UseItem)
	return d
}

// AsConst 返回 Const 载荷
func (n *Node) AsConst() *Const {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Const)
	return d
}

// AsConstItem 返回 ConstItem 载荷
func (n *Node) AsConstItem() *ConstItem {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*ConstItem)
	return d
}

// AsDeclare 返回 Declare 载荷
func (n *Node) AsDeclare() *Declare {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Declare)
	return d
}

// AsDeclareArgument 返回 DeclareArgument 载荷
func (n *Node) AsDeclareArgument() *DeclareArgument {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*DeclareArgument)
	return d
}

// AsInline 返回 Inline 载荷
func (n *Node) AsInline() *Inline {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Inline)
	return d
}

// AsLabel 返回 Label 载荷
func (n *Node) AsLabel() *Label {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Label)
	return d
}

// AsGoto 返回 Goto 载荷
func (n *Node) AsGoto() *Goto {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Goto)
	return d
}

// AsClass 返回 Class 载荷
func (n *Node) AsClass() *Class {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Class)
	return d
}

// AsAnonymousClass 返回 AnonymousClass 载荷
func (n *Node) AsAnonymousClass() *AnonymousClass {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*AnonymousClass)
	return d
}

// AsInterface 返回 Interface 载荷
func (n *Node) AsInterface() *Interface {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Interface)
	return d
}

// AsTrait 返回 Trait 载荷
func (n *Node) AsTrait() *Trait {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Trait)
	return d
}

// AsEnum 返回 Enum 载荷
func (n *Node) AsEnum() *Enum {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Enum)
	return d
}

// AsEnumItem 返回 EnumItem 载荷
func (n *Node) AsEnumItem() *EnumItem {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*EnumItem)
	return d
}

// AsTraitUse 返回 TraitUse 载荷
func (n *Node) AsTraitUse() *TraitUse {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*TraitUse)
	return d
}

// AsTraitUseRule 返回 TraitUseRule 载荷
func (n *Node) AsTraitUseRule() *TraitUseRule {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*TraitUseRule)
	return d
}

// AsFunction 返回 Function 载荷
func (n *Node) AsFunction() *Function {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Function)
	return d
}

// AsAnonymousFunction 返回 AnonymousFunction 载荷
func (n *Node) AsAnonymousFunction() *AnonymousFunction {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*AnonymousFunction)
	return d
}

// AsArrowFunction 返回 ArrowFunction 载荷
func (n *Node) AsArrowFunction() *ArrowFunction {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*ArrowFunction)
	return d
}

// AsMethod 返回 Method 载荷
func (n *Node) AsMethod() *Method {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Method)
	return d
}

// AsParameter 返回 Parameter 载荷
func (n *Node) AsParameter() *Parameter {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Parameter)
	return d
}

// AsConstructorParameter 返回 ConstructorParameter 载荷
func (n *Node) AsConstructorParameter() *ConstructorParameter {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*ConstructorParameter)
	return d
}

// AsProperty 返回 Property 载荷
func (n *Node) AsProperty() *Property {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Property)
	return d
}

// AsPropertyItem 返回 PropertyItem 载荷
func (n *Node) AsPropertyItem() *PropertyItem {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*PropertyItem)
	return d
}

// AsPropertyHook 返回 PropertyHook 载荷
func (n *Node) AsPropertyHook() *PropertyHook {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*PropertyHook)
	return d
}

// AsConstProperty 返回 ConstProperty 载荷
func (n *Node) AsConstProperty() *ConstProperty {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*ConstProperty)
	return d
}

// AsAssignment 返回 Assignment 载荷
func (n *Node) AsAssignment() *Assignment {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Assignment)
	return d
}

// AsBin 返回 Bin 载荷
func (n *Node) AsBin() *Bin {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Bin)
	return d
}

// AsTernary 返回 Ternary 载荷
func (n *Node) AsTernary() *Ternary {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Ternary)
	return d
}

// AsPre 返回 Pre 载荷
func (n *Node) AsPre() *Pre {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Pre)
	return d
}

// AsPost 返回 Post 载荷
func (n *Node) AsPost() *Post {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Post)
	return d
}

// AsNegate 返回 Negate 载荷
func (n *Node) AsNegate() *Negate {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Negate)
	return d
}

// AsUnary 返回 Unary 载荷
func (n *Node) AsUnary() *Unary {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Unary)
	return d
}

// AsSilent 返回 Silent 载荷
func (n *Node) AsSilent() *Silent {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Silent)
	return d
}

// AsReference 返回 Reference 载荷
func (n *Node) AsReference() *Reference {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Reference)
	return d
}

// AsVariadic 返回 Variadic 载荷
func (n *Node) AsVariadic() *Variadic {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Variadic)
	return d
}

// AsClone 返回 Clone 载荷
func (n *Node) AsClone() *Clone {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Clone)
	return d
}

// AsNew 返回 New 载荷
func (n *Node) AsNew() *New {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*New)
	return d
}

// AsPrint 返回 Print 载荷
func (n *Node) AsPrint() *Print {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Print)
	return d
}

// AsThrow 返回 Throw 载荷
func (n *Node) AsThrow() *Throw {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Throw)
	return d
}

// AsBreak 返回 Break 载荷
func (n *Node) AsBreak() *Break {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Break)
	return d
}

// AsContinue 返回 Continue 载荷
func (n *Node) AsContinue() *Continue {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Continue)
	return d
}

// AsReturn 返回 Return 载荷
func (n *Node) AsReturn() *Return {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Return)
	return d
}

// AsYield 返回 Yield 载荷
func (n *Node) AsYield() *Yield {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Yield)
	return d
}

// AsYieldFrom 返回 YieldFrom 载荷
func (n *Node) AsYieldFrom() *YieldFrom {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*YieldFrom)
	return d
}

// AsCast 返回 Cast 载荷
func (n *Node) AsCast() *Cast {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Cast)
	return d
}

// AsInclude 返回 Include 载荷
func (n *Node) AsInclude() *Include {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Include)
	return d
}

// AsEcho 返回 Echo 载荷
func (n *Node) AsEcho() *Echo {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Echo)
	return d
}

// AsGlobal 返回 Global 载荷
func (n *Node) AsGlobal() *Global {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Global)
	return d
}

// AsStaticVariables 返回 StaticVariables 载荷
func (n *Node) AsStaticVariables() *StaticVariables {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*StaticVariables)
	return d
}

// AsCall 返回 Call 载荷
func (n *Node) AsCall() *Call {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Call)
	return d
}

// AsCallArgument 返回 CallArgument 载荷
func (n *Node) AsCallArgument() *CallArgument {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*CallArgument)
	return d
}

// AsArrayLookup 返回 ArrayLookup 载荷
func (n *Node) AsArrayLookup() *ArrayLookup {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*ArrayLookup)
	return d
}

// AsStaticLookup 返回 StaticLookup 载荷
func (n *Node) AsStaticLookup() *StaticLookup {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*StaticLookup)
	return d
}

// AsObjectAccess 返回 ObjectAccess 载荷
func (n *Node) AsObjectAccess() *ObjectAccess {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*ObjectAccess)
	return d
}

// AsArray 返回 Array 载荷
func (n *Node) AsArray() *Array {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Array)
	return d
}

// AsArrayItem 返回 ArrayItem 载荷
func (n *Node) AsArrayItem() *ArrayItem {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*ArrayItem)
	return d
}

// AsList 返回 List 载荷
func (n *Node) AsList() *List {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*List)
	return d
}

// AsParenthesis 返回 Parenthesis 载荷
func (n *Node) AsParenthesis() *Parenthesis {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Parenthesis)
	return d
}

// AsMatch 返回 Match 载荷
func (n *Node) AsMatch() *Match {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Match)
	return d
}

// AsMatchArm 返回 MatchArm 载荷
func (n *Node) AsMatchArm() *MatchArm {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*MatchArm)
	return d
}

// AsString 返回 String 载荷
func (n *Node) AsString() *String {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*String)
	return d
}

// AsNowDoc 返回 NowDoc 载荷
func (n *Node) AsNowDoc() *NowDoc {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*NowDoc)
	return d
}

// AsEncapsed 返回 Encapsed 载荷
func (n *Node) AsEncapsed() *Encapsed {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Encapsed)
	return d
}

// AsEncapsedPart 返回 EncapsedPart 载荷
func (n *Node) AsEncapsedPart() *EncapsedPart {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*EncapsedPart)
	return d
}

// AsHereDoc 返回 HereDoc 载荷
func (n *Node) AsHereDoc() *HereDoc {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*HereDoc)
	return d
}

// AsNumber 返回 Number 载荷
func (n *Node) AsNumber() *Number {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Number)
	return d
}

// AsIdentifier 返回 Identifier 载荷
func (n *Node) AsIdentifier() *Identifier {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Identifier)
	return d
}

// AsVariable 返回 Variable 载荷
func (n *Node) AsVariable() *Variable {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Variable)
	return d
}

// AsMagic 返回 Magic 载荷
func (n *Node) AsMagic() *Magic {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Magic)
	return d
}

// AsBoolean 返回 Boolean 载荷
func (n *Node) AsBoolean() *Boolean {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Boolean)
	return d
}

// AsNull 返回 Null 载荷
func (n *Node) AsNull() *Null {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Null)
	return d
}

// AsThis 返回 This 载荷
func (n *Node) AsThis() *This {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*This)
	return d
}

// AsSelf 返回 Self 载荷
func (n *Node) AsSelf() *Self {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Self)
	return d
}

// AsParent 返回 Parent 载荷
func (n *Node) AsParent() *Parent {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Parent)
	return d
}

// AsStaticKeyword 返回 StaticKeyword 载荷
func (n *Node) AsStaticKeyword() *StaticKeyword {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*StaticKeyword)
	return d
}

// AsType 返回 Type 载荷
func (n *Node) AsType() *Type {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Type)
	return d
}

// AsUnionType 返回 UnionType 载荷
func (n *Node) AsUnionType() *UnionType {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*UnionType)
	return d
}

// AsIntersectionType 返回 IntersectionType 载荷
func (n *Node) AsIntersectionType() *IntersectionType {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*IntersectionType)
	return d
}

// AsIf 返回 If 载荷
func (n *Node) AsIf() *If {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*If)
	return d
}

// AsElse 返回 Else 载荷
func (n *Node) AsElse() *Else {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Else)
	return d
}

// AsSwitch 返回 Switch 载荷
func (n *Node) AsSwitch() *Switch {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Switch)
	return d
}

// AsCase 返回 Case 载荷
func (n *Node) AsCase() *Case {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Case)
	return d
}

// AsFor 返回 For 载荷
func (n *Node) AsFor() *For {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*For)
	return d
}

// AsForeach 返回 Foreach 载荷
func (n *Node) AsForeach() *Foreach {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Foreach)
	return d
}

// AsWhile 返回 While 载荷
func (n *Node) AsWhile() *While {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*While)
	return d
}

// AsDoWhile 返回 DoWhile 载荷
func (n *Node) AsDoWhile() *DoWhile {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*DoWhile)
	return d
}

// AsDoWhileCondition 返回 DoWhileCondition 载荷
func (n *Node) AsDoWhileCondition() *DoWhileCondition {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*DoWhileCondition)
	return d
}

// AsTry 返回 Try 载荷
func (n *Node) AsTry() *Try {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Try)
	return d
}

// AsCatch 返回 Catch 载荷
func (n *Node) AsCatch() *Catch {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Catch)
	return d
}

// AsFinally 返回 Finally 载荷
func (n *Node) AsFinally() *Finally {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Finally)
	return d
}

// AsCommentLine 返回 CommentLine 载荷
func (n *Node) AsCommentLine() *CommentLine {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*CommentLine)
	return d
}

// AsCommentBlock 返回 CommentBlock 载荷
func (n *Node) AsCommentBlock() *CommentBlock {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*CommentBlock)
	return d
}

// AsCommentDoc 返回 CommentDoc 载荷
func (n *Node) AsCommentDoc() *CommentDoc {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*CommentDoc)
	return d
}

// AsAttribute 返回 Attribute 载荷
func (n *Node) AsAttribute() *Attribute {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*Attribute)
	return d
}

// AsAttributeItem 返回 AttributeItem 载荷
func (n *Node) AsAttributeItem() *AttributeItem {
	if n == nil {
		return nil
	}
	d, _ := n.Data.(*AttributeItem)
	return d
}

// newData 按类型分配空载荷，供反序列化使用
var newData = [KindCount]func(a *Arena) Data{
	KindProgram:             func(a *Arena) Data { return Alloc[Program](a) },
	KindBlock:               func(a *Arena) Data { return Alloc[Block](a) },
	KindNamespace:           func(a *Arena) Data { return Alloc[Namespace](a) },
	KindUse:                 func(a *Arena) Data { return Alloc[Use](a) },
	KindUseItem:             func(a *Arena) Data { return Alloc[UseItem](a) },
	KindConst:               func(a *Arena) Data { return Alloc[Const](a) },
	KindConstItem:           func(a *Arena) Data { return Alloc[ConstItem](a) },
	KindDeclare:             func(a *Arena) Data { return Alloc[Declare](a) },
	KindDeclareArgument:     func(a *Arena) Data { return Alloc[DeclareArgument](a) },
	KindInline:              func(a *Arena) Data { return Alloc[Inline](a) },
	KindLabel:               func(a *Arena) Data { return Alloc[Label](a) },
	KindGoto:                func(a *Arena) Data { return Alloc[Goto](a) },
	KindClass:               func(a *Arena) Data { return Alloc[Class](a) },
	KindAnonymousClass:      func(a *Arena) Data { return Alloc[AnonymousClass](a) },
	KindInterface:           func(a *Arena) Data { return Alloc[Interface](a) },
	KindTrait:               func(a *Arena) Data { return Alloc[Trait](a) },
	KindEnum:                func(a *Arena) Data { return Alloc[Enum](a) },
	KindEnumItem:            func(a *Arena) Data { return Alloc[EnumItem](a) },
	KindTraitUse:            func(a *Arena) Data { return Alloc[TraitUse](a) },
	KindTraitUseRule:        func(a *Arena) Data { return Alloc[TraitUseRule](a) },
	KindFunction:            func(a *Arena) Data { return Alloc[Function](a) },
	KindAnonymousFunction:   func(a *Arena) Data { return Alloc[AnonymousFunction](a) },
	KindArrowFunction:       func(a *Arena) Data { return Alloc[ArrowFunction](a) },
	KindMethod:              func(a *Arena) Data { return Alloc[Method](a) },
	KindParameter:           func(a *Arena) Data { return Alloc[Parameter](a) },
	KindConstructorParameter: func(a *Arena) Data { return Alloc[ConstructorParameter](a) },
	KindProperty:            func(a *Arena) Data { return Alloc[Property](a) },
	KindPropertyItem:        func(a *Arena) Data { return Alloc[PropertyItem](a) },
	KindPropertyHook:        func(a *Arena) Data { return Alloc[PropertyHook](a) },
	KindConstProperty:       func(a *Arena) Data { return Alloc[ConstProperty](a) },
	KindAssignment:          func(a *Arena) Data { return Alloc[Assignment](a) },
	KindBin:                 func(a *Arena) Data { return Alloc[Bin](a) },
	KindTernary:             func(a *Arena) Data { return Alloc[Ternary](a) },
	KindPre:                 func(a *Arena) Data { return Alloc[Pre](a) },
	KindPost:                func(a *Arena) Data { return Alloc[Post](a) },
	KindNegate:              func(a *Arena) Data { return Alloc[Negate](a) },
	KindUnary:               func(a *Arena) Data { return Alloc[Unary](a) },
	KindSilent:              func(a *Arena) Data { return Alloc[Silent](a) },
	KindReference:           func(a *Arena) Data { return Alloc[Reference](a) },
	KindVariadic:            func(a *Arena) Data { return Alloc[Variadic](a) },
	KindClone:               func(a *Arena) Data { return Alloc[Clone](a) },
	KindNew:                 func(a *Arena) Data { return Alloc[New](a) },
	KindPrint:               func(a *Arena) Data { return Alloc[Print](a) },
	KindThrow:               func(a *Arena) Data { return Alloc[Throw](a) },
	KindBreak:               func(a *Arena) Data { return Alloc[Break](a) },
	KindContinue:            func(a *Arena) Data { return Alloc[Continue](a) },
	KindReturn:              func(a *Arena) Data { return Alloc[Return](a) },
	KindYield:               func(a *Arena) Data { return Alloc[Yield](a) },
	KindYieldFrom:           func(a *Arena) Data { return Alloc[YieldFrom](a) },
	KindCast:                func(a *Arena) Data { return Alloc[Cast](a) },
	KindInclude:             func(a *Arena) Data { return Alloc[Include](a) },
	KindEcho:                func(a *Arena) Data { return Alloc[Echo](a) },
	KindGlobal:              func(a *Arena) Data { return Alloc[Global](a) },
	KindStaticVariables:     func(a *Arena) Data { return Alloc[StaticVariables](a) },
	KindCall:                func(a *Arena) Data { return Alloc[Call](a) },
	KindCallArgument:        func(a *Arena) Data { return Alloc[CallArgument](a) },
	KindArrayLookup:         func(a *Arena) Data { return Alloc[ArrayLookup](a) },
	KindStaticLookup:        func(a *Arena) Data { return Alloc[StaticLookup](a) },
	KindObjectAccess:        func(a *Arena) Data { return Alloc[ObjectAccess](a) },
	KindArray:               func(a *Arena) Data { return Alloc[Array](a) },
	KindArrayItem:           func(a *Arena) Data { return Alloc[ArrayItem](a) },
	KindList:                func(a *Arena) Data { return Alloc[List](a) },
	KindParenthesis:         func(a *Arena) Data { return Alloc[Parenthesis](a) },
	KindMatch:               func(a *Arena) Data { return Alloc[Match](a) },
	KindMatchArm:            func(a *Arena) Data { return Alloc[MatchArm](a) },
	KindString:              func(a *Arena) Data { return Alloc[String](a) },
	KindNowDoc:              func(a *Arena) Data { return Alloc[NowDoc](a) },
	KindEncapsed:            func(a *Arena) Data { return Alloc[Encapsed](a) },
	KindEncapsedPart:        func(a *Arena) Data { return Alloc[EncapsedPart](a) },
	KindHereDoc:             func(a *Arena) Data { return Alloc[HereDoc](a) },
	KindNumber:              func(a *Arena) Data { return Alloc[Number](a) },
	KindIdentifier:          func(a *Arena) Data { return Alloc[Identifier](a) },
	KindVariable:            func(a *Arena) Data { return Alloc[Variable](a) },
	KindMagic:               func(a *Arena) Data { return Alloc[Magic](a) },
	KindBoolean:             func(a *Arena) Data { return Alloc[Boolean](a) },
	KindNull:                func(a *Arena) Data { return Alloc[Null](a) },
	KindThis:                func(a *Arena) Data { return Alloc[This](a) },
	KindSelf:                func(a *Arena) Data { return Alloc[Self](a) },
	KindParent:              func(a *Arena) Data { return Alloc[Parent](a) },
	KindStaticKeyword:       func(a *Arena) Data { return Alloc[StaticKeyword](a) },
	KindType:                func(a *Arena) Data { return Alloc[Type](a) },
	KindUnionType:           func(a *Arena) Data { return Alloc[UnionType](a) },
	KindIntersectionType:    func(a *Arena) Data { return Alloc[IntersectionType](a) },
	KindIf:                  func(a *Arena) Data { return Alloc[If](a) },
	KindElse:                func(a *Arena) Data { return Alloc[Else](a) },
	KindSwitch:              func(a *Arena) Data { return Alloc[Switch](a) },
	KindCase:                func(a *Arena) Data { return Alloc[Case](a) },
	KindFor:                 func(a *Arena) Data { return Alloc[For](a) },
	KindForeach:             func(a *Arena) Data { return Alloc[Foreach](a) },
	KindWhile:               func(a *Arena) Data { return Alloc[While](a) },
	KindDoWhile:             func(a *Arena) Data { return Alloc[DoWhile](a) },
	KindDoWhileCondition:    func(a *Arena) Data { return Alloc[DoWhileCondition](a) },
	KindTry:                 func(a *Arena) Data { return Alloc[Try](a) },
	KindCatch:               func(a *Arena) Data { return Alloc[Catch](a) },
	KindFinally:             func(a *Arena) Data { return Alloc[Finally](a) },
	KindCommentLine:         func(a *Arena) Data { return Alloc[CommentLine](a) },
	KindCommentBlock:        func(a *Arena) Data { return Alloc[CommentBlock](a) },
	KindCommentDoc:          func(a *Arena) Data { return Alloc[CommentDoc](a) },
	KindAttribute:           func(a *Arena) Data { return Alloc[Attribute](a) },
	KindAttributeItem:       func(a *Arena) Data { return Alloc[AttributeItem](a) },
}

// NewData 在 arena 中分配指定类型的空载荷
func NewData(a *Arena, k Kind) Data {
	if k >= KindCount {
		return nil
	}
	return newData[k](a)
}
