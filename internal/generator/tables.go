package generator

import (
	"github.com/tangzhangming/phpfmt/internal/ast"
)

// ============================================================================
// 分派表
// ============================================================================
//
// defaultTable 覆盖所有种类；其余表限定特定上下文中合法的种类，
// 例如类体内只接受成员声明与注释。
//
// ============================================================================

var (
	defaultTable Table
	memberTable  Table
	enumTable    Table
	ruleTable    Table
	hookTable    Table
	caseTable    Table
	elseTable    Table
	doTable      Table
	tryTable     Table
	triviaTable  Table
)

func init() {
	defaultTable = Table{
		ast.KindProgram:   emitProgram,
		ast.KindBlock:     emitBlock,
		ast.KindNamespace: emitNamespace,
		ast.KindUse:       emitUse,
		ast.KindUseItem:   emitUseItem,
		ast.KindConst:     emitConst,
		ast.KindConstItem: emitConstItem,
		ast.KindDeclare:   emitDeclare,

		ast.KindDeclareArgument: emitDeclareArgument,
		ast.KindInline:          emitInline,
		ast.KindLabel:           emitLabel,
		ast.KindGoto:            emitGoto,

		ast.KindClass:          emitClass,
		ast.KindAnonymousClass: emitAnonymousClass,
		ast.KindInterface:      emitInterface,
		ast.KindTrait:          emitTrait,
		ast.KindEnum:           emitEnum,
		ast.KindEnumItem:       emitEnumItem,
		ast.KindTraitUse:       emitTraitUse,
		ast.KindTraitUseRule:   emitTraitUseRule,

		ast.KindFunction:             emitFunction,
		ast.KindAnonymousFunction:    emitAnonymousFunction,
		ast.KindArrowFunction:        emitArrowFunction,
		ast.KindMethod:               emitMethod,
		ast.KindParameter:            emitParameter,
		ast.KindConstructorParameter: emitConstructorParameter,
		ast.KindProperty:             emitProperty,
		ast.KindPropertyItem:         emitPropertyItem,
		ast.KindPropertyHook:         emitPropertyHook,
		ast.KindConstProperty:        emitConstProperty,

		ast.KindAssignment:      emitAssignment,
		ast.KindBin:             emitBin,
		ast.KindTernary:         emitTernary,
		ast.KindPre:             emitPre,
		ast.KindPost:            emitPost,
		ast.KindNegate:          emitNegate,
		ast.KindUnary:           emitUnary,
		ast.KindSilent:          emitSilent,
		ast.KindReference:       emitReference,
		ast.KindVariadic:        emitVariadic,
		ast.KindClone:           emitClone,
		ast.KindNew:             emitNew,
		ast.KindPrint:           emitPrint,
		ast.KindThrow:           emitThrow,
		ast.KindBreak:           emitBreak,
		ast.KindContinue:        emitContinue,
		ast.KindReturn:          emitReturn,
		ast.KindYield:           emitYield,
		ast.KindYieldFrom:       emitYieldFrom,
		ast.KindCast:            emitCast,
		ast.KindInclude:         emitInclude,
		ast.KindEcho:            emitEcho,
		ast.KindGlobal:          emitGlobal,
		ast.KindStaticVariables: emitStaticVariables,

		ast.KindCall:         emitCall,
		ast.KindCallArgument: emitCallArgument,
		ast.KindArrayLookup:  emitArrayLookup,
		ast.KindStaticLookup: emitStaticLookup,
		ast.KindObjectAccess: emitObjectAccess,
		ast.KindArray:        emitArray,
		ast.KindArrayItem:    emitArrayItem,
		ast.KindList:         emitList,
		ast.KindParenthesis:  emitParenthesis,
		ast.KindMatch:        emitMatch,
		ast.KindMatchArm:     emitMatchArm,

		ast.KindIf:               emitIf,
		ast.KindElse:             emitElse,
		ast.KindSwitch:           emitSwitch,
		ast.KindCase:             emitCase,
		ast.KindFor:              emitFor,
		ast.KindForeach:          emitForeach,
		ast.KindWhile:            emitWhile,
		ast.KindDoWhile:          emitDoWhile,
		ast.KindDoWhileCondition: emitDoWhileCondition,
		ast.KindTry:              emitTry,
		ast.KindCatch:            emitCatch,
		ast.KindFinally:          emitFinally,

		ast.KindString:        emitString,
		ast.KindNowDoc:        emitNowDoc,
		ast.KindEncapsed:      emitEncapsed,
		ast.KindEncapsedPart:  emitEncapsedPart,
		ast.KindHereDoc:       emitHereDoc,
		ast.KindNumber:        emitNumber,
		ast.KindIdentifier:    emitIdentifier,
		ast.KindVariable:      emitVariable,
		ast.KindMagic:         emitMagic,
		ast.KindBoolean:       emitBoolean,
		ast.KindNull:          emitNull,
		ast.KindThis:          emitThis,
		ast.KindSelf:          emitSelf,
		ast.KindParent:        emitParent,
		ast.KindStaticKeyword: emitStaticKeyword,

		ast.KindType:             emitType,
		ast.KindUnionType:        emitUnionType,
		ast.KindIntersectionType: emitIntersectionType,

		ast.KindCommentLine:   emitCommentLine,
		ast.KindCommentBlock:  emitCommentBlock,
		ast.KindCommentDoc:    emitCommentDoc,
		ast.KindAttribute:     emitAttribute,
		ast.KindAttributeItem: emitAttributeItem,
	}

	triviaTable = subset(ast.KindCommentLine, ast.KindCommentBlock, ast.KindCommentDoc, ast.KindAttribute)
	memberTable = subset(ast.KindMethod, ast.KindProperty, ast.KindConstProperty, ast.KindTraitUse, ast.KindInline,
		ast.KindCommentLine, ast.KindCommentBlock, ast.KindCommentDoc, ast.KindAttribute)
	enumTable = memberTable
	enumTable[ast.KindEnumItem] = emitEnumItem
	ruleTable = subset(ast.KindTraitUseRule, ast.KindCommentLine, ast.KindCommentBlock, ast.KindCommentDoc)
	hookTable = subset(ast.KindPropertyHook, ast.KindCommentLine, ast.KindCommentBlock, ast.KindCommentDoc, ast.KindAttribute)
	caseTable = subset(ast.KindCase, ast.KindCommentLine, ast.KindCommentBlock, ast.KindCommentDoc)
	doTable = subset(ast.KindDoWhileCondition)
	tryTable = subset(ast.KindCatch, ast.KindFinally)

	elseTable = Table{
		ast.KindIf:   emitElseIf,
		ast.KindElse: emitElse,
	}
}

// subset 从 defaultTable 复制指定种类
func subset(kinds ...ast.Kind) Table {
	var t Table
	for _, k := range kinds {
		t[k] = defaultTable[k]
	}
	return t
}
