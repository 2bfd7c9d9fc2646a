package parser

import (
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// 注册表
// ============================================================================
//
// 同一注册表内按顺序尝试，先注册的模块优先。语句注册表包含全部表达式
// 模块（排在语句模块之后）；类体、枚举体各自只接受成员声明。
//
// ============================================================================

var (
	statementRegistry  *Registry
	expressionRegistry *Registry
	classRegistry      *Registry
	enumRegistry       *Registry
)

func init() {
	expressionRegistry = &Registry{Name: "expression", Modules: expressionModules}

	stmts := make([]*Module, 0, len(statementModules)+len(expressionModules))
	stmts = append(stmts, statementModules...)
	stmts = append(stmts, expressionModules...)
	statementRegistry = &Registry{Name: "statement", Modules: stmts}

	classRegistry = &Registry{Name: "class", Modules: memberModules}

	enum := make([]*Module, 0, len(memberModules)+1)
	enum = append(enum, enumItemModule)
	enum = append(enum, memberModules...)
	enumRegistry = &Registry{Name: "enum", Modules: enum}
}

// pattern 匹配并消费整个模式
func pattern(ls ...Lookup) func(*Parser, *LoopArgument) (Match, bool) {
	return func(p *Parser, _ *LoopArgument) (Match, bool) {
		return p.lookup(ls...)
	}
}

// prefix 匹配整个模式，只消费前 n 位，其余留给 parse
func prefix(n int, ls ...Lookup) func(*Parser, *LoopArgument) (Match, bool) {
	return func(p *Parser, _ *LoopArgument) (Match, bool) {
		m, ok := p.lookup(ls...)
		if !ok {
			return m, false
		}
		m.Size = 0
		for i := 0; i < n && i < len(m.Slots); i++ {
			m.Size += m.Slots[i].Size()
		}
		return m, true
	}
}

// ============================================================================
// 语句模块
// ============================================================================

var statementModules = []*Module{
	{Name: "Namespace", Class: Prefix,
		Test:  prefix(2, Equal(token.NAMESPACE), Optional(token.IDENTIFIER, token.NAME), Equal(token.SEMICOLON, token.LEFT_BRACE)),
		Parse: (*Parser).parseNamespace},
	{Name: "Use", Class: Prefix, Test: pattern(Equal(token.USE)), Parse: (*Parser).parseUse},
	{Name: "Const", Class: Prefix, Test: pattern(Equal(token.CONST)), Parse: (*Parser).parseConst},
	{Name: "Declare", Class: Prefix, Test: pattern(Equal(token.DECLARE), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseDeclare},
	{Name: "Class", Class: Prefix,
		Test:  pattern(Modifiers(OneOf(token.READONLY), OneOf(token.ABSTRACT, token.FINAL)), Equal(token.CLASS), EqualSet(identLike)),
		Parse: (*Parser).parseClass},
	{Name: "Interface", Class: Prefix, Test: pattern(Equal(token.INTERFACE), EqualSet(identLike)), Parse: (*Parser).parseInterface},
	{Name: "Trait", Class: Prefix, Test: pattern(Equal(token.TRAIT), EqualSet(identLike)), Parse: (*Parser).parseTrait},
	{Name: "Enum", Class: Prefix, Test: pattern(Equal(token.ENUM), EqualSet(identLike)), Parse: (*Parser).parseEnum},
	{Name: "Function", Class: Prefix,
		Test:  pattern(Equal(token.FUNCTION), Optional(token.BIT_AND), EqualSet(identLike), Equal(token.LEFT_PAREN)),
		Parse: (*Parser).parseFunction},
	{Name: "If", Class: Prefix, Test: pattern(Equal(token.IF), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseIf},
	{Name: "While", Class: Prefix, Test: pattern(Equal(token.WHILE), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseWhile},
	{Name: "DoWhile", Class: Prefix, Test: pattern(Equal(token.DO)), Parse: (*Parser).parseDoWhile},
	{Name: "For", Class: Prefix, Test: pattern(Equal(token.FOR), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseFor},
	{Name: "Foreach", Class: Prefix, Test: pattern(Equal(token.FOREACH), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseForeach},
	{Name: "Switch", Class: Prefix, Test: pattern(Equal(token.SWITCH), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseSwitch},
	{Name: "Try", Class: Prefix, Test: pattern(Equal(token.TRY)), Parse: (*Parser).parseTry},
	{Name: "Return", Class: Prefix, Test: pattern(Equal(token.RETURN)), Parse: (*Parser).parseReturn},
	{Name: "Break", Class: Prefix, Test: pattern(Equal(token.BREAK)), Parse: (*Parser).parseBreak},
	{Name: "Continue", Class: Prefix, Test: pattern(Equal(token.CONTINUE)), Parse: (*Parser).parseContinue},
	{Name: "Goto", Class: Prefix, Test: pattern(Equal(token.GOTO), Equal(token.IDENTIFIER)), Parse: (*Parser).parseGoto},
	{Name: "Label", Class: Prefix, Test: pattern(Equal(token.IDENTIFIER), Equal(token.COLON)), Parse: (*Parser).parseLabel},
	{Name: "Echo", Class: Prefix, Test: pattern(Equal(token.ECHO, token.OPEN_TAG_ECHO)), Parse: (*Parser).parseEcho},
	{Name: "Global", Class: Prefix, Test: pattern(Equal(token.GLOBAL)), Parse: (*Parser).parseGlobal},
	{Name: "StaticVariables", Class: Prefix,
		Test:  prefix(1, Equal(token.STATIC), Equal(token.VARIABLE)),
		Parse: (*Parser).parseStaticVariables},
	{Name: "Block", Class: Prefix, Test: prefix(0, Equal(token.LEFT_BRACE)), Parse: (*Parser).parseBlock},
}

// ============================================================================
// 表达式模块
// ============================================================================

var expressionModules = []*Module{
	// 前缀
	{Name: "AnonymousFunction", Class: Prefix,
		Test:  pattern(Optional(token.STATIC), Equal(token.FUNCTION), Optional(token.BIT_AND), Equal(token.LEFT_PAREN)),
		Parse: (*Parser).parseAnonymousFunction},
	{Name: "ArrowFunction", Class: Prefix,
		Test:  pattern(Optional(token.STATIC), Equal(token.FN), Optional(token.BIT_AND), Equal(token.LEFT_PAREN)),
		Parse: (*Parser).parseArrowFunction},
	{Name: "Variable", Class: Prefix, Test: pattern(Equal(token.VARIABLE)), Parse: (*Parser).parseVariable},
	{Name: "Dollar", Class: Prefix, Test: pattern(Equal(token.DOLLAR)), Parse: (*Parser).parseDollar},
	{Name: "Number", Class: Prefix, Test: pattern(Equal(token.NUMBER)), Parse: (*Parser).parseNumber},
	{Name: "String", Class: Prefix, Test: pattern(Equal(token.STRING)), Parse: (*Parser).parseString},
	{Name: "Encapsed", Class: Prefix, Test: pattern(Equal(token.ENCAPSED_STRING_OPEN)), Parse: (*Parser).parseEncapsed},
	{Name: "HereDoc", Class: Prefix, Test: pattern(Equal(token.HEREDOC_OPEN)), Parse: (*Parser).parseHereDoc},
	{Name: "NowDoc", Class: Prefix, Test: pattern(Equal(token.NOWDOC_OPEN)), Parse: (*Parser).parseNowDoc},
	{Name: "Magic", Class: Prefix, Test: pattern(Equal(token.MAGIC)), Parse: (*Parser).parseMagic},
	{Name: "Boolean", Class: Prefix, Test: pattern(Equal(token.TRUE, token.FALSE)), Parse: (*Parser).parseBoolean},
	{Name: "Null", Class: Prefix, Test: pattern(Equal(token.NULL)), Parse: (*Parser).parseNull},
	{Name: "Self", Class: Prefix, Test: pattern(Equal(token.SELF)), Parse: (*Parser).parseSelf},
	{Name: "Parent", Class: Prefix, Test: pattern(Equal(token.PARENT)), Parse: (*Parser).parseParent},
	{Name: "Static", Class: Prefix, Test: pattern(Equal(token.STATIC)), Parse: (*Parser).parseStaticKeyword},
	{Name: "LongArray", Class: Prefix, Test: pattern(Equal(token.ARRAY), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseLongArray},
	{Name: "ShortArray", Class: Prefix, Test: pattern(Equal(token.LEFT_BRACKET)), Parse: (*Parser).parseShortArray},
	{Name: "List", Class: Prefix, Test: pattern(Equal(token.LIST), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseList},
	{Name: "Match", Class: Prefix, Test: pattern(Equal(token.MATCH), Equal(token.LEFT_PAREN)), Parse: (*Parser).parseMatch},
	{Name: "Identifier", Class: Prefix, Test: pattern(Equal(token.IDENTIFIER, token.NAME, token.TYPE)), Parse: (*Parser).parseIdentifier},
	{Name: "Parenthesis", Class: Prefix, Test: pattern(Equal(token.LEFT_PAREN)), Parse: (*Parser).parseParenthesis},
	{Name: "New", Class: Prefix, Test: pattern(Equal(token.NEW)), Parse: (*Parser).parseNew},
	{Name: "Clone", Class: Prefix, Test: pattern(Equal(token.CLONE)), Parse: (*Parser).parseClone},
	{Name: "Print", Class: Prefix, Test: pattern(Equal(token.PRINT)), Parse: (*Parser).parsePrint},
	{Name: "Throw", Class: Prefix, Test: pattern(Equal(token.THROW)), Parse: (*Parser).parseThrow},
	{Name: "YieldFrom", Class: Prefix, Test: pattern(Equal(token.YIELD_FROM)), Parse: (*Parser).parseYieldFrom},
	{Name: "Yield", Class: Prefix, Test: pattern(Equal(token.YIELD)), Parse: (*Parser).parseYield},
	{Name: "Include", Class: Prefix,
		Test:  pattern(Equal(token.INCLUDE, token.INCLUDE_ONCE, token.REQUIRE, token.REQUIRE_ONCE)),
		Parse: (*Parser).parseInclude},
	{Name: "Cast", Class: Prefix, Test: pattern(Equal(token.CAST)), Parse: (*Parser).parseCast},
	{Name: "Negate", Class: Prefix, Test: pattern(Equal(token.NOT)), Parse: (*Parser).parseNegate},
	{Name: "Unary", Class: Prefix, Test: pattern(Equal(token.MINUS, token.PLUS, token.BIT_NOT)), Parse: (*Parser).parseUnary},
	{Name: "Silent", Class: Prefix, Test: pattern(Equal(token.AT)), Parse: (*Parser).parseSilent},
	{Name: "Reference", Class: Prefix, Test: pattern(Equal(token.BIT_AND)), Parse: (*Parser).parseReference},
	{Name: "Pre", Class: Prefix, Test: pattern(Equal(token.PRE_INC, token.PRE_DEC)), Parse: (*Parser).parsePre},
	{Name: "Variadic", Class: Prefix, Test: pattern(Equal(token.ELLIPSIS)), Parse: (*Parser).parseVariadic},

	// 后缀
	{Name: "Call", Class: Postfix, Test: pattern(Equal(token.LEFT_PAREN)), Parse: (*Parser).parseCall},
	{Name: "ArrayLookup", Class: Postfix, Test: pattern(Equal(token.LEFT_BRACKET)), Parse: (*Parser).parseArrayLookup},
	{Name: "ObjectAccess", Class: Postfix, Test: pattern(Equal(token.ARROW, token.NULLSAFE_ARROW)), Parse: (*Parser).parseObjectAccess},
	{Name: "StaticLookup", Class: Postfix, Test: pattern(Equal(token.DOUBLE_COLON)), Parse: (*Parser).parseStaticLookup},
	{Name: "Post", Class: Postfix, Test: pattern(Equal(token.POST_INC, token.POST_DEC)), Parse: (*Parser).parsePost},

	// 中缀
	{Name: "Assignment", Class: Infix, Test: pattern(EqualSet(assignOperators)), Parse: (*Parser).parseAssignment},
	{Name: "Bin", Class: Infix, Test: pattern(EqualSet(binaryOperators)), Parse: (*Parser).parseBin},
	{Name: "Ternary", Class: Infix, Test: pattern(Equal(token.QUESTION)), Parse: (*Parser).parseTernary},
}

// ============================================================================
// 类成员模块
// ============================================================================

var memberModules = []*Module{
	{Name: "TraitUse", Class: Prefix, Test: pattern(Equal(token.USE)), Parse: (*Parser).parseTraitUse},
	{Name: "ConstProperty", Class: Prefix,
		Test:  pattern(Modifiers(VisibilityRule(), OneOf(token.FINAL)), Equal(token.CONST)),
		Parse: (*Parser).parseConstProperty},
	{Name: "Method", Class: Prefix,
		Test: pattern(
			Modifiers(VisibilityRule(), OneOf(token.ABSTRACT, token.FINAL), OneOf(token.STATIC)),
			Equal(token.FUNCTION), Optional(token.BIT_AND), EqualSet(identLike), Equal(token.LEFT_PAREN),
		),
		Parse: (*Parser).parseMethod},
	{Name: "Property", Class: Prefix,
		Test: prefix(2,
			Modifiers(VisibilityRule(), OneOf(token.STATIC), OneOf(token.READONLY), OneOf(token.VAR)),
			OptionalType(), Equal(token.VARIABLE),
		),
		Parse: (*Parser).parseProperty},
}

var enumItemModule = &Module{
	Name:  "EnumItem",
	Class: Prefix,
	Test:  pattern(Equal(token.CASE), EqualSet(identLike)),
	Parse: (*Parser).parseEnumItem,
}
