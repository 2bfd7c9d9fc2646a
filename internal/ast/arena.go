package ast

import (
	"reflect"
	"unsafe"

	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// Arena 内存分配器
// ============================================================================
//
// 一棵语法树的全部节点、载荷、字符串与子节点序列都从同一个 Arena 分配，
// 生命周期相同；树不再使用时整体丢弃 Arena 即可。
//
// 分配策略：
//   - 载荷与节点：按类型分槽（slab），每个槽是一段 []T，满了换新段
//   - 字符串：复制进字节块，用 unsafe.String 引用，不再单独分配
//   - 子节点序列：从 []*Node 块中切出固定容量的片段
//
// Arena 不是并发安全的，一个 Arena 只能由一个调用方使用。
//
// 使用方式：
//   a := ast.NewArena(0)
//   n := ast.Make(a, ast.Number{Value: a.Str("1")})
//
// ============================================================================

// 默认每个槽段的元素个数
const defaultSlabSize = 256

// 字符串块与序列块的大小
const (
	stringChunkSize = 16 * 1024
	listChunkSize   = 1024
)

// Arena 分配器
type Arena struct {
	slabs    map[reflect.Type]any
	slabSize int

	strs  []byte  // 当前字符串块
	lists []*Node // 当前序列块

	stats Stats
}

// Stats 分配统计
type Stats struct {
	Objects     int // 分配的对象数（节点与载荷）
	StringBytes int // 复制的字符串字节数
	ListSlots   int // 分配的序列槽位数
	Chunks      int // 申请的内存块数
}

type slab[T any] struct {
	items []T
}

// NewArena 创建 Arena
//
// slabSize 为每个类型槽段的元素个数，<= 0 时使用默认值。
func NewArena(slabSize int) *Arena {
	if slabSize <= 0 {
		slabSize = defaultSlabSize
	}
	return &Arena{
		slabs:    make(map[reflect.Type]any, 32),
		slabSize: slabSize,
	}
}

// Alloc 从 Arena 分配一个零值 T
//
// a 为 nil 时退化为普通堆分配。
func Alloc[T any](a *Arena) *T {
	if a == nil {
		return new(T)
	}
	key := reflect.TypeFor[T]()
	s, _ := a.slabs[key].(*slab[T])
	if s == nil {
		s = &slab[T]{}
		a.slabs[key] = s
	}
	if len(s.items) == cap(s.items) {
		s.items = make([]T, 0, a.slabSize)
		a.stats.Chunks++
	}
	var zero T
	s.items = append(s.items, zero)
	a.stats.Objects++
	return &s.items[len(s.items)-1]
}

// Str 把字符串复制进 Arena
func (a *Arena) Str(s string) string {
	if a == nil || s == "" {
		return s
	}
	n := len(s)
	if n > stringChunkSize/4 {
		// 大字符串单独成块，避免浪费当前块的剩余空间
		buf := make([]byte, n)
		copy(buf, s)
		a.stats.Chunks++
		a.stats.StringBytes += n
		return unsafe.String(&buf[0], n)
	}
	if cap(a.strs)-len(a.strs) < n {
		a.strs = make([]byte, 0, stringChunkSize)
		a.stats.Chunks++
	}
	off := len(a.strs)
	a.strs = append(a.strs, s...)
	a.stats.StringBytes += n
	return unsafe.String(&a.strs[off], n)
}

// NewList 分配一个长度为 0、容量为 capacity 的子节点序列
//
// 追加超出容量时由 Append 在 Arena 内扩容。
func (a *Arena) NewList(capacity int) []*Node {
	if capacity <= 0 {
		capacity = 1
	}
	if a == nil {
		return make([]*Node, 0, capacity)
	}
	if capacity > listChunkSize/4 {
		a.stats.Chunks++
		a.stats.ListSlots += capacity
		return make([]*Node, 0, capacity)
	}
	if cap(a.lists)-len(a.lists) < capacity {
		a.lists = make([]*Node, 0, listChunkSize)
		a.stats.Chunks++
	}
	off := len(a.lists)
	a.lists = a.lists[:off+capacity]
	a.stats.ListSlots += capacity
	return a.lists[off:off:off+capacity]
}

// Append 向序列追加节点，容量不足时在 Arena 内按两倍扩容
func (a *Arena) Append(list []*Node, n ...*Node) []*Node {
	if len(list)+len(n) <= cap(list) {
		return append(list, n...)
	}
	size := 2 * cap(list)
	if size < len(list)+len(n) {
		size = len(list) + len(n)
	}
	grown := a.NewList(size)
	grown = append(grown, list...)
	return append(grown, n...)
}

// Span 在 Arena 中分配一个源码范围
func (a *Arena) Span(start, end token.Position) *token.Span {
	s := Alloc[token.Span](a)
	s.Start = start
	s.End = end
	return s
}

// Stats 返回分配统计
func (a *Arena) Stats() Stats {
	return a.stats
}
