package ast

import "fmt"

// ============================================================================
// Kind - 节点类型标签
// ============================================================================
//
// Kind 与载荷类型一一对应。载荷本身已经能区分变体，保留 Kind 是为了
// 让分派表可以用数组下标直接查找。
//
// ============================================================================

// Kind 节点类型
type Kind uint8

const (
	KindProgram Kind = iota
	KindBlock
	KindNamespace
	KindUse
	KindUseItem
	KindConst
	KindConstItem
	KindDeclare
	KindDeclareArgument
	KindInline
	KindLabel
	KindGoto
	KindClass
	KindAnonymousClass
	KindInterface
	KindTrait
	KindEnum
	KindEnumItem
	KindTraitUse
	KindTraitUseRule
	KindFunction
	KindAnonymousFunction
	KindArrowFunction
	KindMethod
	KindParameter
	KindConstructorParameter
	KindProperty
	KindPropertyItem
	KindPropertyHook
	KindConstProperty
	KindAssignment
	KindBin
	KindTernary
	KindPre
	KindPost
	KindNegate
	KindUnary
	KindSilent
	KindReference
	KindVariadic
	KindClone
	KindNew
	KindPrint
	KindThrow
	KindBreak
	KindContinue
	KindReturn
	KindYield
	KindYieldFrom
	KindCast
	KindInclude
	KindEcho
	KindGlobal
	KindStaticVariables
	KindCall
	KindCallArgument
	KindArrayLookup
	KindStaticLookup
	KindObjectAccess
	KindArray
	KindArrayItem
	KindList
	KindParenthesis
	KindMatch
	KindMatchArm
	KindString
	KindNowDoc
	KindEncapsed
	KindEncapsedPart
	KindHereDoc
	KindNumber
	KindIdentifier
	KindVariable
	KindMagic
	KindBoolean
	KindNull
	KindThis
	KindSelf
	KindParent
	KindStaticKeyword
	KindType
	KindUnionType
	KindIntersectionType
	KindIf
	KindElse
	KindSwitch
	KindCase
	KindFor
	KindForeach
	KindWhile
	KindDoWhile
	KindDoWhileCondition
	KindTry
	KindCatch
	KindFinally
	KindCommentLine
	KindCommentBlock
	KindCommentDoc
	KindAttribute
	KindAttributeItem

	// KindCount 节点类型总数
	KindCount
)

var kindNames = [KindCount]string{
	KindProgram:             "Program",
	KindBlock:               "Block",
	KindNamespace:           "Namespace",
	KindUse:                 "Use",
	KindUseItem:             "UseItem",
	KindConst:               "Const",
	KindConstItem:           "ConstItem",
	KindDeclare:             "Declare",
	KindDeclareArgument:     "DeclareArgument",
	KindInline:              "Inline",
	KindLabel:               "Label",
	KindGoto:                "Goto",
	KindClass:               "Class",
	KindAnonymousClass:      "AnonymousClass",
	KindInterface:           "Interface",
	KindTrait:               "Trait",
	KindEnum:                "Enum",
	KindEnumItem:            "EnumItem",
	KindTraitUse:            "TraitUse",
	KindTraitUseRule:        "TraitUseRule",
	KindFunction:            "Function",
	KindAnonymousFunction:   "AnonymousFunction",
	KindArrowFunction:       "ArrowFunction",
	KindMethod:              "Method",
	KindParameter:           "Parameter",
	KindConstructorParameter: "ConstructorParameter",
	KindProperty:            "Property",
	KindPropertyItem:        "PropertyItem",
	KindPropertyHook:        "PropertyHook",
	KindConstProperty:       "ConstProperty",
	KindAssignment:          "Assignment",
	KindBin:                 "Bin",
	KindTernary:             "Ternary",
	KindPre:                 "Pre",
	KindPost:                "Post",
	KindNegate:              "Negate",
	KindUnary:               "Unary",
	KindSilent:              "Silent",
	KindReference:           "Reference",
	KindVariadic:            "Variadic",
	KindClone:               "Clone",
	KindNew:                 "New",
	KindPrint:               "Print",
	KindThrow:               "Throw",
	KindBreak:               "Break",
	KindContinue:            "Continue",
	KindReturn:              "Return",
	KindYield:               "Yield",
	KindYieldFrom:           "YieldFrom",
	KindCast:                "Cast",
	KindInclude:             "Include",
	KindEcho:                "Echo",
	KindGlobal:              "Global",
	KindStaticVariables:     "StaticVariables",
	KindCall:                "Call",
	KindCallArgument:        "CallArgument",
	KindArrayLookup:         "ArrayLookup",
	KindStaticLookup:        "StaticLookup",
	KindObjectAccess:        "ObjectAccess",
	KindArray:               "Array",
	KindArrayItem:           "ArrayItem",
	KindList:                "List",
	KindParenthesis:         "Parenthesis",
	KindMatch:               "Match",
	KindMatchArm:            "MatchArm",
	KindString:              "String",
	KindNowDoc:              "NowDoc",
	KindEncapsed:            "Encapsed",
	KindEncapsedPart:        "EncapsedPart",
	KindHereDoc:             "HereDoc",
	KindNumber:              "Number",
	KindIdentifier:          "Identifier",
	KindVariable:            "Variable",
	KindMagic:               "Magic",
	KindBoolean:             "Boolean",
	KindNull:                "Null",
	KindThis:                "This",
	KindSelf:                "Self",
	KindParent:              "Parent",
	KindStaticKeyword:       "StaticKeyword",
	KindType:                "Type",
	KindUnionType:           "UnionType",
	KindIntersectionType:    "IntersectionType",
	KindIf:                  "If",
	KindElse:                "Else",
	KindSwitch:              "Switch",
	KindCase:                "Case",
	KindFor:                 "For",
	KindForeach:             "Foreach",
	KindWhile:               "While",
	KindDoWhile:             "DoWhile",
	KindDoWhileCondition:    "DoWhileCondition",
	KindTry:                 "Try",
	KindCatch:               "Catch",
	KindFinally:             "Finally",
	KindCommentLine:         "CommentLine",
	KindCommentBlock:        "CommentBlock",
	KindCommentDoc:          "CommentDoc",
	KindAttribute:           "Attribute",
	KindAttributeItem:       "AttributeItem",
}

// String 返回节点类型名称
func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// LookupKind 按名称查找节点类型
func LookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
