package parser

import (
	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// TypeSet - token 类型集合
// ============================================================================

// TypeSet token 类型位集
type TypeSet [4]uint64

// Set 构造集合
func Set(types ...token.TokenType) TypeSet {
	var s TypeSet
	for _, t := range types {
		s[t>>6] |= 1 << (t & 63)
	}
	return s
}

// Has 判断是否包含 t
func (s TypeSet) Has(t token.TokenType) bool {
	if t < 0 || int(t) >= len(s)*64 {
		return false
	}
	return s[t>>6]&(1<<(t&63)) != 0
}

// Union 并集
func (s TypeSet) Union(o TypeSet) TypeSet {
	for i := range s {
		s[i] |= o[i]
	}
	return s
}

// With 加入若干类型
func (s TypeSet) With(types ...token.TokenType) TypeSet {
	return s.Union(Set(types...))
}

// identLike 可以出现在名字位置的 token：标识符、类型名与全部关键字
var identLike = func() TypeSet {
	s := Set(token.IDENTIFIER, token.TYPE, token.MAGIC)
	for t := token.TokenType(0); int(t) < len(s)*64; t++ {
		if token.IsKeyword(t) && t != token.YIELD_FROM {
			s = s.With(t)
		}
	}
	return s
}()

// typeAtoms 类型表达式中的原子
var typeAtoms = Set(
	token.IDENTIFIER, token.NAME, token.TYPE, token.ARRAY, token.STATIC,
	token.SELF, token.PARENT, token.TRUE, token.FALSE, token.NULL,
)

// visibilities 全部可见性关键字
var visibilities = Set(
	token.PUBLIC, token.PROTECTED, token.PRIVATE,
	token.PUBLIC_GET, token.PUBLIC_SET,
	token.PROTECTED_GET, token.PROTECTED_SET,
	token.PRIVATE_GET, token.PRIVATE_SET,
)

// ============================================================================
// Lookup - 定长前缀模式
// ============================================================================
//
// 每个解析模块的 test 用一串 Lookup 描述它接受的前缀：
//
//   Equal(kinds)      恰好一个属于 kinds 的 token
//   Optional(kinds)   下一个 token 属于 kinds 时占一位，否则占零位
//   Any()             任意一个 token
//   OptionalType()    一个完整的类型表达式，或者什么都没有
//   Modifiers(rules)  任意顺序的修饰符序列，每条规则至多出现一次
//
// 匹配成功时得到 Match：每个 Lookup 对应一个 Slot，记录它匹配到的 token。
//
// ============================================================================

type lookupKind uint8

const (
	lookupEqual lookupKind = iota
	lookupOptional
	lookupAny
	lookupOptionalType
	lookupModifiers
)

// Lookup 模式中的一位
type Lookup struct {
	kind  lookupKind
	set   TypeSet
	rules []ModifierRule
}

// Equal 恰好一个属于 types 的 token
func Equal(types ...token.TokenType) Lookup {
	return Lookup{kind: lookupEqual, set: Set(types...)}
}

// EqualSet 恰好一个属于 s 的 token
func EqualSet(s TypeSet) Lookup {
	return Lookup{kind: lookupEqual, set: s}
}

// Optional 可选的一个 token
func Optional(types ...token.TokenType) Lookup {
	return Lookup{kind: lookupOptional, set: Set(types...)}
}

// Any 任意一个 token
func Any() Lookup {
	return Lookup{kind: lookupAny}
}

// OptionalType 可选的类型表达式
func OptionalType() Lookup {
	return Lookup{kind: lookupOptionalType}
}

// Modifiers 修饰符序列
func Modifiers(rules ...ModifierRule) Lookup {
	return Lookup{kind: lookupModifiers, rules: rules}
}

// ModifierRule 修饰符规则
type ModifierRule struct {
	visibility bool
	set        TypeSet
}

// VisibilityRule 可见性：至多一个基础可见性、一个 (get) 与一个 (set)
func VisibilityRule() ModifierRule {
	return ModifierRule{visibility: true, set: visibilities}
}

// OneOf 以下类型之一
func OneOf(types ...token.TokenType) ModifierRule {
	return ModifierRule{set: Set(types...)}
}

// Slot 一位模式匹配到的 token
type Slot struct {
	Tokens []token.Token
}

// Size 该位消费的 token 数
func (s Slot) Size() int {
	return len(s.Tokens)
}

// Matched 该位是否匹配到 token
func (s Slot) Matched() bool {
	return len(s.Tokens) > 0
}

// First 第一个 token，没有时返回零值
func (s Slot) First() token.Token {
	if len(s.Tokens) == 0 {
		return token.Token{}
	}
	return s.Tokens[0]
}

// Has 是否包含类型 t 的 token
func (s Slot) Has(t token.TokenType) bool {
	for _, tok := range s.Tokens {
		if tok.Type == t {
			return true
		}
	}
	return false
}

// Match 一次成功的模式匹配
type Match struct {
	Slots []Slot
	Size  int
	Start token.Position
}

// Slot 返回第 i 位
func (m Match) Slot(i int) Slot {
	if i < 0 || i >= len(m.Slots) {
		return Slot{}
	}
	return m.Slots[i]
}

// lookup 从当前位置开始尝试匹配模式，不消费 token
func (p *Parser) lookup(patterns ...Lookup) (Match, bool) {
	var buf [8]int
	sizes := buf[:0]
	off := 0
	for _, l := range patterns {
		n, ok := p.lookupOne(l, off)
		if !ok {
			return Match{}, false
		}
		sizes = append(sizes, n)
		off += n
	}

	m := Match{Slots: make([]Slot, len(patterns)), Size: off, Start: p.position()}
	off = 0
	for i, n := range sizes {
		if n > 0 {
			toks := make([]token.Token, n)
			for j := range toks {
				toks[j] = p.peekAt(off + j)
			}
			m.Slots[i].Tokens = toks
		}
		off += n
	}
	return m, true
}

func (p *Parser) lookupOne(l Lookup, off int) (int, bool) {
	t := p.peekAt(off)
	switch l.kind {
	case lookupEqual:
		if t.Type != token.EOF && l.set.Has(t.Type) {
			return 1, true
		}
		return 0, false
	case lookupOptional:
		if t.Type != token.EOF && l.set.Has(t.Type) {
			return 1, true
		}
		return 0, true
	case lookupAny:
		if t.Type == token.EOF {
			return 0, false
		}
		return 1, true
	case lookupOptionalType:
		return p.typeLen(off), true
	case lookupModifiers:
		return p.modifiersLen(l.rules, off), true
	}
	return 0, false
}

// modifiersLen 修饰符序列的长度
func (p *Parser) modifiersLen(rules []ModifierRule, off int) int {
	used := make([]bool, len(rules))
	var base, get, set bool
	n := 0
	for {
		t := p.peekAt(off + n).Type
		matched := false
		for i, r := range rules {
			if !r.set.Has(t) {
				continue
			}
			if r.visibility {
				switch {
				case t == token.PUBLIC || t == token.PROTECTED || t == token.PRIVATE:
					if base {
						return n
					}
					base = true
				case t == token.PUBLIC_GET || t == token.PROTECTED_GET || t == token.PRIVATE_GET:
					if get {
						return n
					}
					get = true
				default:
					if set {
						return n
					}
					set = true
				}
			} else {
				if used[i] {
					return n
				}
				used[i] = true
			}
			matched = true
			break
		}
		if !matched {
			return n
		}
		n++
	}
}

// ============================================================================
// 类型表达式
// ============================================================================
//
//   type  := '?' primary
//          | '(' type ')' ( ('|' type)+ | ('&' type)+ )?
//          | atom ( ('|' atom)+ | ('&' atom)+ )?
//
// 标识符后紧跟 = 时不作为类型（无类型的常量或属性项带默认值）。
//
// ============================================================================

// typeLen 返回从 off 开始的类型表达式长度，不是类型时返回 0
func (p *Parser) typeLen(off int) int {
	n := p.typeExpr(off)
	if n == 0 {
		return 0
	}
	// 单个标识符后面紧跟 = 时它是名字而不是类型
	if n == 1 && p.peekAt(off+1).Type == token.ASSIGN {
		return 0
	}
	return n
}

func (p *Parser) typeExpr(off int) int {
	t := p.peekAt(off)
	switch {
	case t.Type == token.QUESTION:
		if n := p.typeAtom(off + 1); n > 0 {
			return n + 1
		}
		return 0

	case t.Type == token.LEFT_PAREN:
		n := p.typeGroup(off)
		if n == 0 {
			return 0
		}
		return n + p.typeTail(off+n, 0)

	default:
		n := p.typeAtom(off)
		if n == 0 {
			return 0
		}
		return n + p.typeTail(off+n, 0)
	}
}

// typeGroup ( type )
func (p *Parser) typeGroup(off int) int {
	if p.peekAt(off).Type != token.LEFT_PAREN {
		return 0
	}
	inner := p.typeExpr(off + 1)
	if inner == 0 || p.peekAt(off+1+inner).Type != token.RIGHT_PAREN {
		return 0
	}
	return inner + 2
}

// typeTail 读取 |x|y 或 &x&y 的尾部，op 为 0 表示尚未确定运算符
func (p *Parser) typeTail(off int, op token.TokenType) int {
	n := 0
	for {
		t := p.peekAt(off + n).Type
		if t != token.BIT_OR && t != token.BIT_AND {
			return n
		}
		if op != 0 && t != op {
			return n
		}
		next := p.peekAt(off + n + 1)
		var m int
		if next.Type == token.LEFT_PAREN {
			m = p.typeGroup(off + n + 1)
		} else {
			m = p.typeAtom(off + n + 1)
		}
		// & 后不是类型时是引用参数
		if m == 0 {
			return n
		}
		op = t
		n += 1 + m
	}
}

func (p *Parser) typeAtom(off int) int {
	if typeAtoms.Has(p.peekAt(off).Type) {
		return 1
	}
	return 0
}
