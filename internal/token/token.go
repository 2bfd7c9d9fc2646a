package token

import (
	"fmt"
	"strings"
)

// ============================================================================
// Token 类型定义
// ============================================================================
//
// TokenType 使用 iota 自动编号，按类别分组：
// 1. 特殊标记（ILLEGAL, EOF）与标签（<?php, ?>, 内联文本）
// 2. 注释与属性
// 3. 字面量（标识符、变量、数字、字符串、类型名、魔术常量）
// 4. 字符串子标记（插值、heredoc、nowdoc）
// 5. 分隔符与运算符
// 6. 关键字（含非对称可见性）
//
// ============================================================================

// TokenType 表示 Token 的类型
type TokenType int

const (
	// ----------------------------------------------------------
	// 特殊标记
	// ----------------------------------------------------------
	ILLEGAL TokenType = iota // 非法字符
	EOF                      // 文件结束

	// ----------------------------------------------------------
	// 标签与内联文本
	// ----------------------------------------------------------
	OPEN_TAG      // <?php
	OPEN_TAG_ECHO // <?=
	OPEN_TAG_ASP  // <%
	CLOSE_TAG     // ?> 或 %>
	INLINE        // 标签之外的原始文本

	// ----------------------------------------------------------
	// 注释与属性
	// ----------------------------------------------------------
	COMMENT_LINE   // // 或 #
	COMMENT_BLOCK  // /* */
	COMMENT_DOC    // /** */
	ATTRIBUTE_OPEN // #[

	// ----------------------------------------------------------
	// 字面量
	// ----------------------------------------------------------
	VARIABLE   // $name（Literal 不含 $）
	IDENTIFIER // 标识符
	NAME       // 限定名 Foo\Bar、\Foo、namespace\Foo
	NUMBER     // 数字字面量（保留原文）
	STRING     // 无插值字符串（Literal 含引号）
	MAGIC      // __CLASS__ 等魔术常量
	TYPE       // int、string 等类型名
	CAST       // (int) 等类型转换

	// ----------------------------------------------------------
	// 字符串子标记
	// ----------------------------------------------------------
	ENCAPSED_STRING_OPEN        // " 或 `
	ENCAPSED_STRING             // 插值字符串中的字面片段
	ENCAPSED_STRING_CLOSE       // " 或 `
	ADVANCE_INTERPOLATION_OPEN  // {$ 或 ${
	ADVANCE_INTERPOLATION_CLOSE // }
	HEREDOC_OPEN                // <<<LABEL
	HEREDOC_CLOSE               // 前导空白 + LABEL
	NOWDOC_OPEN                 // <<<'LABEL'
	NOWDOC_CLOSE                // 前导空白 + LABEL

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	SEMICOLON      // ;
	COMMA          // ,
	LEFT_PAREN     // (
	RIGHT_PAREN    // )
	LEFT_BRACKET   // [
	RIGHT_BRACKET  // ]
	LEFT_BRACE     // {
	RIGHT_BRACE    // }
	COLON          // :
	DOUBLE_COLON   // ::
	QUESTION       // ?
	AT             // @
	ELLIPSIS       // ...
	ARROW          // ->
	NULLSAFE_ARROW // ?->
	DOUBLE_ARROW   // =>
	DOLLAR         // $

	// ----------------------------------------------------------
	// 赋值运算符
	// ----------------------------------------------------------
	ASSIGN          // =
	PLUS_ASSIGN     // +=
	MINUS_ASSIGN    // -=
	MUL_ASSIGN      // *=
	DIV_ASSIGN      // /=
	MOD_ASSIGN      // %=
	POW_ASSIGN      // **=
	CONCAT_ASSIGN   // .=
	AND_ASSIGN      // &=
	OR_ASSIGN       // |=
	XOR_ASSIGN      // ^=
	SHL_ASSIGN      // <<=
	SHR_ASSIGN      // >>=
	COALESCE_ASSIGN // ??=

	// ----------------------------------------------------------
	// 比较运算符
	// ----------------------------------------------------------
	EQ            // ==
	NE            // !=
	NE_ALT        // <>
	IDENTICAL     // ===
	NOT_IDENTICAL // !==
	LT            // <
	LE            // <=
	GT            // >
	GE            // >=
	SPACESHIP     // <=>

	// ----------------------------------------------------------
	// 逻辑与位运算符
	// ----------------------------------------------------------
	AND     // &&
	OR      // ||
	NOT     // !
	BIT_AND // &
	BIT_OR  // |
	BIT_XOR // ^
	BIT_NOT // ~
	SHL     // <<
	SHR     // >>

	// ----------------------------------------------------------
	// 算术运算符
	// ----------------------------------------------------------
	PLUS     // +
	MINUS    // -
	MUL      // *
	DIV      // /
	MOD      // %
	POW      // **
	CONCAT   // .
	COALESCE // ??
	PRE_INC  // ++$a
	POST_INC // $a++
	PRE_DEC  // --$a
	POST_DEC // $a--

	// ----------------------------------------------------------
	// 关键字
	// ----------------------------------------------------------
	keyword_beg
	ABSTRACT
	ARRAY
	AS
	BREAK
	CASE
	CATCH
	CLASS
	CLONE
	CONST
	CONTINUE
	DECLARE
	DEFAULT
	DO
	ECHO
	ELSE
	ELSEIF
	ENDDECLARE
	ENDFOR
	ENDFOREACH
	ENDIF
	ENDSWITCH
	ENDWHILE
	ENUM
	EXTENDS
	FINAL
	FINALLY
	FN
	FOR
	FOREACH
	FUNCTION
	GLOBAL
	GOTO
	IF
	IMPLEMENTS
	INCLUDE
	INCLUDE_ONCE
	INSTANCEOF
	INSTEADOF
	INTERFACE
	LIST
	LOGICAL_AND // and
	LOGICAL_OR  // or
	LOGICAL_XOR // xor
	MATCH
	NAMESPACE
	NEW
	PRINT
	PRIVATE
	PROTECTED
	PUBLIC
	PRIVATE_GET   // private(get)
	PRIVATE_SET   // private(set)
	PROTECTED_GET // protected(get)
	PROTECTED_SET // protected(set)
	PUBLIC_GET    // public(get)
	PUBLIC_SET    // public(set)
	READONLY
	REQUIRE
	REQUIRE_ONCE
	RETURN
	STATIC
	SWITCH
	THROW
	TRAIT
	TRY
	USE
	VAR
	WHILE
	YIELD
	YIELD_FROM // yield from
	TRUE
	FALSE
	NULL
	SELF
	PARENT
	keyword_end
)

// ============================================================================
// Token 类型名称映射
// ============================================================================

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	OPEN_TAG:      "<?php",
	OPEN_TAG_ECHO: "<?=",
	OPEN_TAG_ASP:  "<%",
	CLOSE_TAG:     "?>",
	INLINE:        "INLINE",

	COMMENT_LINE:   "COMMENT_LINE",
	COMMENT_BLOCK:  "COMMENT_BLOCK",
	COMMENT_DOC:    "COMMENT_DOC",
	ATTRIBUTE_OPEN: "#[",

	VARIABLE:   "VARIABLE",
	IDENTIFIER: "IDENTIFIER",
	NAME:       "NAME",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	MAGIC:      "MAGIC",
	TYPE:       "TYPE",
	CAST:       "CAST",

	ENCAPSED_STRING_OPEN:        "ENCAPSED_STRING_OPEN",
	ENCAPSED_STRING:             "ENCAPSED_STRING",
	ENCAPSED_STRING_CLOSE:       "ENCAPSED_STRING_CLOSE",
	ADVANCE_INTERPOLATION_OPEN:  "ADVANCE_INTERPOLATION_OPEN",
	ADVANCE_INTERPOLATION_CLOSE: "ADVANCE_INTERPOLATION_CLOSE",
	HEREDOC_OPEN:                "HEREDOC_OPEN",
	HEREDOC_CLOSE:               "HEREDOC_CLOSE",
	NOWDOC_OPEN:                 "NOWDOC_OPEN",
	NOWDOC_CLOSE:                "NOWDOC_CLOSE",

	SEMICOLON:      ";",
	COMMA:          ",",
	LEFT_PAREN:     "(",
	RIGHT_PAREN:    ")",
	LEFT_BRACKET:   "[",
	RIGHT_BRACKET:  "]",
	LEFT_BRACE:     "{",
	RIGHT_BRACE:    "}",
	COLON:          ":",
	DOUBLE_COLON:   "::",
	QUESTION:       "?",
	AT:             "@",
	ELLIPSIS:       "...",
	ARROW:          "->",
	NULLSAFE_ARROW: "?->",
	DOUBLE_ARROW:   "=>",
	DOLLAR:         "$",

	ASSIGN:          "=",
	PLUS_ASSIGN:     "+=",
	MINUS_ASSIGN:    "-=",
	MUL_ASSIGN:      "*=",
	DIV_ASSIGN:      "/=",
	MOD_ASSIGN:      "%=",
	POW_ASSIGN:      "**=",
	CONCAT_ASSIGN:   ".=",
	AND_ASSIGN:      "&=",
	OR_ASSIGN:       "|=",
	XOR_ASSIGN:      "^=",
	SHL_ASSIGN:      "<<=",
	SHR_ASSIGN:      ">>=",
	COALESCE_ASSIGN: "??=",

	EQ:            "==",
	NE:            "!=",
	NE_ALT:        "<>",
	IDENTICAL:     "===",
	NOT_IDENTICAL: "!==",
	LT:            "<",
	LE:            "<=",
	GT:            ">",
	GE:            ">=",
	SPACESHIP:     "<=>",

	AND:     "&&",
	OR:      "||",
	NOT:     "!",
	BIT_AND: "&",
	BIT_OR:  "|",
	BIT_XOR: "^",
	BIT_NOT: "~",
	SHL:     "<<",
	SHR:     ">>",

	PLUS:     "+",
	MINUS:    "-",
	MUL:      "*",
	DIV:      "/",
	MOD:      "%",
	POW:      "**",
	CONCAT:   ".",
	COALESCE: "??",
	PRE_INC:  "++",
	POST_INC: "++",
	PRE_DEC:  "--",
	POST_DEC: "--",

	ABSTRACT:      "abstract",
	ARRAY:         "array",
	AS:            "as",
	BREAK:         "break",
	CASE:          "case",
	CATCH:         "catch",
	CLASS:         "class",
	CLONE:         "clone",
	CONST:         "const",
	CONTINUE:      "continue",
	DECLARE:       "declare",
	DEFAULT:       "default",
	DO:            "do",
	ECHO:          "echo",
	ELSE:          "else",
	ELSEIF:        "elseif",
	ENDDECLARE:    "enddeclare",
	ENDFOR:        "endfor",
	ENDFOREACH:    "endforeach",
	ENDIF:         "endif",
	ENDSWITCH:     "endswitch",
	ENDWHILE:      "endwhile",
	ENUM:          "enum",
	EXTENDS:       "extends",
	FINAL:         "final",
	FINALLY:       "finally",
	FN:            "fn",
	FOR:           "for",
	FOREACH:       "foreach",
	FUNCTION:      "function",
	GLOBAL:        "global",
	GOTO:          "goto",
	IF:            "if",
	IMPLEMENTS:    "implements",
	INCLUDE:       "include",
	INCLUDE_ONCE:  "include_once",
	INSTANCEOF:    "instanceof",
	INSTEADOF:     "insteadof",
	INTERFACE:     "interface",
	LIST:          "list",
	LOGICAL_AND:   "and",
	LOGICAL_OR:    "or",
	LOGICAL_XOR:   "xor",
	MATCH:         "match",
	NAMESPACE:     "namespace",
	NEW:           "new",
	PRINT:         "print",
	PRIVATE:       "private",
	PROTECTED:     "protected",
	PUBLIC:        "public",
	PRIVATE_GET:   "private(get)",
	PRIVATE_SET:   "private(set)",
	PROTECTED_GET: "protected(get)",
	PROTECTED_SET: "protected(set)",
	PUBLIC_GET:    "public(get)",
	PUBLIC_SET:    "public(set)",
	READONLY:      "readonly",
	REQUIRE:       "require",
	REQUIRE_ONCE:  "require_once",
	RETURN:        "return",
	STATIC:        "static",
	SWITCH:        "switch",
	THROW:         "throw",
	TRAIT:         "trait",
	TRY:           "try",
	USE:           "use",
	VAR:           "var",
	WHILE:         "while",
	YIELD:         "yield",
	YIELD_FROM:    "yield from",
	TRUE:          "true",
	FALSE:         "false",
	NULL:          "null",
	SELF:          "self",
	PARENT:        "parent",
}

// ============================================================================
// 关键字查找表
// ============================================================================
//
// keywords 将小写关键字映射到对应的 TokenType。关键字大小写不敏感，
// 查找前统一转为小写。非对称可见性与 yield from 由词法器组合生成，
// 不在此表中。
//
// ============================================================================

var keywords = map[string]TokenType{}

// magics 魔术常量（大小写不敏感）
var magics = map[string]bool{
	"__class__":     true,
	"__dir__":       true,
	"__file__":      true,
	"__function__":  true,
	"__line__":      true,
	"__method__":    true,
	"__namespace__": true,
	"__trait__":     true,
}

// typeNames 产生 TYPE 标记的类型名
var typeNames = map[string]bool{
	"bool":     true,
	"int":      true,
	"float":    true,
	"string":   true,
	"object":   true,
	"mixed":    true,
	"callable": true,
	"iterable": true,
	"void":     true,
	"never":    true,
}

// castTypes 合法的类型转换名称
var castTypes = map[string]string{
	"int":     "int",
	"integer": "int",
	"bool":    "bool",
	"boolean": "bool",
	"float":   "float",
	"double":  "float",
	"real":    "float",
	"string":  "string",
	"binary":  "string",
	"array":   "array",
	"object":  "object",
	"unset":   "unset",
}

func init() {
	for t := keyword_beg + 1; t < keyword_end; t++ {
		switch t {
		case PRIVATE_GET, PRIVATE_SET, PROTECTED_GET, PROTECTED_SET, PUBLIC_GET, PUBLIC_SET, YIELD_FROM:
			continue
		}
		keywords[tokenNames[t]] = t
	}
}

// ============================================================================
// 关键字查找函数
// ============================================================================

// LookupIdent 查找标识符对应的标记类型
//
// 依次检查关键字、魔术常量和类型名，都不匹配时返回 IDENTIFIER。
func LookupIdent(ident string) TokenType {
	lower := strings.ToLower(ident)
	if tok, ok := keywords[lower]; ok {
		return tok
	}
	if len(lower) > 4 && lower[0] == '_' && magics[lower] {
		return MAGIC
	}
	if typeNames[lower] {
		return TYPE
	}
	return IDENTIFIER
}

// LookupCast 返回类型转换的规范名称，不是合法转换时返回 false
func LookupCast(name string) (string, bool) {
	canonical, ok := castTypes[strings.ToLower(name)]
	return canonical, ok
}

// IsKeyword 判断 TokenType 是否为关键字
func IsKeyword(t TokenType) bool {
	return t > keyword_beg && t < keyword_end
}

// IsIdentifierLike 判断标记能否出现在成员名位置
//
// ->、::、方法名、命名参数等位置允许使用保留字。
func IsIdentifierLike(t TokenType) bool {
	return t == IDENTIFIER || t == TYPE || t == MAGIC || IsKeyword(t)
}

// IsVisibility 判断是否为可见性关键字（含非对称形式）
func IsVisibility(t TokenType) bool {
	switch t {
	case PUBLIC, PROTECTED, PRIVATE,
		PUBLIC_GET, PUBLIC_SET, PROTECTED_GET, PROTECTED_SET, PRIVATE_GET, PRIVATE_SET:
		return true
	}
	return false
}

// IsComment 判断是否为注释标记
func IsComment(t TokenType) bool {
	return t == COMMENT_LINE || t == COMMENT_BLOCK || t == COMMENT_DOC
}

// IsAssign 判断是否为赋值运算符
func IsAssign(t TokenType) bool {
	return t >= ASSIGN && t <= COALESCE_ASSIGN
}

// String 返回 TokenType 的字符串表示
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// ============================================================================
// Position - 源代码位置
// ============================================================================

// Position 表示源代码中的位置
type Position struct {
	Line   int // 行号 (从1开始)
	Column int // 列号 (从0开始)
	Offset int // 字节偏移量 (从0开始)
}

// String 返回位置的字符串表示，格式为 "line:column"（列号按 1 起显示）
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column+1)
}

// IsValid 检查位置是否有效
func (p Position) IsValid() bool {
	return p.Line > 0
}

// ============================================================================
// Span - 源代码范围
// ============================================================================

// Span 表示源代码中的一个范围（开始到结束）
type Span struct {
	Start Position // 开始位置
	End   Position // 结束位置
}

// NewSpan 创建新的 Span
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// String 返回 Span 的字符串表示
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column+1, s.End.Column+1)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column+1, s.End.Line, s.End.Column+1)
}

// ============================================================================
// Token - 词法单元
// ============================================================================

// Token 表示一个词法单元
type Token struct {
	Type    TokenType // 类型
	Literal string    // 文本值
	Pos     Position  // 起始位置
	End     Position  // 结束位置（不含）
}

// New 创建新的 Token
func New(t TokenType, literal string, pos Position) Token {
	return Token{Type: t, Literal: literal, Pos: pos}
}

// Span 返回 Token 覆盖的范围
func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End}
}

// String 返回 Token 的字符串表示，用于调试
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Literal, t.Pos)
}
