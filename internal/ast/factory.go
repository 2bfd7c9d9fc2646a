package ast

// ============================================================================
// 节点工厂
// ============================================================================

// Make 把载荷复制进 Arena 并包装成节点
//
//	n := ast.Make(a, ast.Variable{Name: id})
func Make[T any, P interface {
	*T
	Data
}](a *Arena, v T) *Node {
	p := P(Alloc[T](a))
	*p = v
	return a.Node(p)
}

// Node 用已分配的载荷创建节点
func (a *Arena) Node(d Data) *Node {
	n := Alloc[Node](a)
	n.Kind = d.Kind()
	n.Data = d
	return n
}

// ============================================================================
// 常用叶子节点
// ============================================================================

// NewIdentifier 创建标识符节点
func (a *Arena) NewIdentifier(name string) *Node {
	return Make(a, Identifier{Name: a.Str(name)})
}

// NewVariable 创建 $name 变量节点
func (a *Arena) NewVariable(name string) *Node {
	return Make(a, Variable{Name: a.NewIdentifier(name)})
}

// NewNumber 创建数字节点
func (a *Arena) NewNumber(lit string) *Node {
	return Make(a, Number{Value: a.Str(lit)})
}

// NewString 创建字符串节点，value 不含引号
func (a *Arena) NewString(quote, value string) *Node {
	return Make(a, String{Quote: a.Str(quote), Value: a.Str(value)})
}

// NewData 按类型标签在 Arena 中分配零值载荷，未知标签返回 nil
//
// 反序列化时先得到标签再填字段，因此需要按标签而不是按类型分配。
func (a *Arena) NewData(k Kind) Data {
	switch k {
	case KindProgram:
		return Alloc[Program](a)
	case KindBlock:
		return Alloc[Block](a)
	case KindNamespace:
		return Alloc[Namespace](a)
	case KindUse:
		return Alloc[Use](a)
	case KindUseItem:
		return Alloc[UseItem](a)
	case KindConst:
		return Alloc[Const](a)
	case KindConstItem:
		return Alloc[ConstItem](a)
	case KindDeclare:
		return Alloc[Declare](a)
	case KindDeclareArgument:
		return Alloc[DeclareArgument](a)
	case KindInline:
		return Alloc[Inline](a)
	case KindLabel:
		return Alloc[Label](a)
	case KindGoto:
		return Alloc[Goto](a)
	case KindClass:
		return Alloc[Class](a)
	case KindAnonymousClass:
		return Alloc[AnonymousClass](a)
	case KindInterface:
		return Alloc[Interface](a)
	case KindTrait:
		return Alloc[Trait](a)
	case KindEnum:
		return Alloc[Enum](a)
	case KindEnumItem:
		return Alloc[EnumItem](a)
	case KindTraitUse:
		return Alloc[TraitUse](a)
	case KindTraitUseRule:
		return Alloc[TraitUseRule](a)
	case KindFunction:
		return Alloc[Function](a)
	case KindAnonymousFunction:
		return Alloc[AnonymousFunction](a)
	case KindArrowFunction:
		return Alloc[ArrowFunction](a)
	case KindMethod:
		return Alloc[Method](a)
	case KindParameter:
		return Alloc[Parameter](a)
	case KindConstructorParameter:
		return Alloc[ConstructorParameter](a)
	case KindProperty:
		return Alloc[Property](a)
	case KindPropertyItem:
		return Alloc[PropertyItem](a)
	case KindPropertyHook:
		return Alloc[PropertyHook](a)
	case KindConstProperty:
		return Alloc[ConstProperty](a)
	case KindAssignment:
		return Alloc[Assignment](a)
	case KindBin:
		return Alloc[Bin](a)
	case KindTernary:
		return Alloc[Ternary](a)
	case KindPre:
		return Alloc[Pre](a)
	case KindPost:
		return Alloc[Post](a)
	case KindNegate:
		return Alloc[Negate](a)
	case KindUnary:
		return Alloc[Unary](a)
	case KindSilent:
		return Alloc[Silent](a)
	case KindReference:
		return Alloc[Reference](a)
	case KindVariadic:
		return Alloc[Variadic](a)
	case KindClone:
		return Alloc[Clone](a)
	case KindNew:
		return Alloc[New](a)
	case KindPrint:
		return Alloc[Print](a)
	case KindThrow:
		return Alloc[Throw](a)
	case KindBreak:
		return Alloc[Break](a)
	case KindContinue:
		return Alloc[Continue](a)
	case KindReturn:
		return Alloc[Return](a)
	case KindYield:
		return Alloc[Yield](a)
	case KindYieldFrom:
		return Alloc[YieldFrom](a)
	case KindCast:
		return Alloc[Cast](a)
	case KindInclude:
		return Alloc[Include](a)
	case KindEcho:
		return Alloc[Echo](a)
	case KindGlobal:
		return Alloc[Global](a)
	case KindStaticVariables:
		return Alloc[StaticVariables](a)
	case KindCall:
		return Alloc[Call](a)
	case KindCallArgument:
		return Alloc[CallArgument](a)
	case KindArrayLookup:
		return Alloc[ArrayLookup](a)
	case KindStaticLookup:
		return Alloc[StaticLookup](a)
	case KindObjectAccess:
		return Alloc[ObjectAccess](a)
	case KindArray:
		return Alloc[Array](a)
	case KindArrayItem:
		return Alloc[ArrayItem](a)
	case KindList:
		return Alloc[List](a)
	case KindParenthesis:
		return Alloc[Parenthesis](a)
	case KindMatch:
		return Alloc[Match](a)
	case KindMatchArm:
		return Alloc[MatchArm](a)
	case KindString:
		return Alloc[String](a)
	case KindNowDoc:
		return Alloc[NowDoc](a)
	case KindEncapsed:
		return Alloc[Encapsed](a)
	case KindEncapsedPart:
		return Alloc[EncapsedPart](a)
	case KindHereDoc:
		return Alloc[HereDoc](a)
	case KindNumber:
		return Alloc[Number](a)
	case KindIdentifier:
		return Alloc[Identifier](a)
	case KindVariable:
		return Alloc[Variable](a)
	case KindMagic:
		return Alloc[Magic](a)
	case KindBoolean:
		return Alloc[Boolean](a)
	case KindNull:
		return Alloc[Null](a)
	case KindThis:
		return Alloc[This](a)
	case KindSelf:
		return Alloc[Self](a)
	case KindParent:
		return Alloc[Parent](a)
	case KindStaticKeyword:
		return Alloc[StaticKeyword](a)
	case KindType:
		return Alloc[Type](a)
	case KindUnionType:
		return Alloc[UnionType](a)
	case KindIntersectionType:
		return Alloc[IntersectionType](a)
	case KindIf:
		return Alloc[If](a)
	case KindElse:
		return Alloc[Else](a)
	case KindSwitch:
		return Alloc[Switch](a)
	case KindCase:
		return Alloc[Case](a)
	case KindFor:
		return Alloc[For](a)
	case KindForeach:
		return Alloc[Foreach](a)
	case KindWhile:
		return Alloc[While](a)
	case KindDoWhile:
		return Alloc[DoWhile](a)
	case KindDoWhileCondition:
		return Alloc[DoWhileCondition](a)
	case KindTry:
		return Alloc[Try](a)
	case KindCatch:
		return Alloc[Catch](a)
	case KindFinally:
		return Alloc[Finally](a)
	case KindCommentLine:
		return Alloc[CommentLine](a)
	case KindCommentBlock:
		return Alloc[CommentBlock](a)
	case KindCommentDoc:
		return Alloc[CommentDoc](a)
	case KindAttribute:
		return Alloc[Attribute](a)
	case KindAttributeItem:
		return Alloc[AttributeItem](a)
	}
	return nil
}
