package lexer

import (
	"strings"

	"github.com/tangzhangming/phpfmt/internal/token"
)

// ============================================================================
// Control - 读取游标
// ============================================================================
//
// Control 持有源码缓冲、读取游标以及行列计数。行号从 1 开始，列号从 0
// 开始并按字符（而不是字节）计数。每次 Next 都会在前进之前记录一份快照，
// 词法器据此为 token 标注起止位置。
//
// ============================================================================

// Control 源码读取游标
type Control struct {
	src    string
	offset int
	line   int
	column int
	last   token.Position
}

// NewControl 创建读取游标
func NewControl(src string) *Control {
	return &Control{src: src, line: 1}
}

// Position 返回当前位置
func (c *Control) Position() token.Position {
	return token.Position{Line: c.line, Column: c.column, Offset: c.offset}
}

// Last 返回最近一次 Next 之前的位置
func (c *Control) Last() token.Position {
	return c.last
}

// EOF 判断是否已读完
func (c *Control) EOF() bool {
	return c.offset >= len(c.src)
}

// Peek 读取当前字符但不前进
func (c *Control) Peek() (byte, bool) {
	return c.PeekAt(0)
}

// PeekAt 读取当前位置之后第 n 个字节
func (c *Control) PeekAt(n int) (byte, bool) {
	if c.offset+n >= len(c.src) {
		return 0, false
	}
	return c.src[c.offset+n], true
}

// Next 前进一个字节并更新行列
func (c *Control) Next() (byte, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	c.last = c.Position()
	ch := c.src[c.offset]
	c.offset++
	switch {
	case ch == '\n':
		c.line++
		c.column = 0
	case ch&0xC0 != 0x80:
		// UTF-8 后续字节不计列
		c.column++
	}
	return ch, true
}

// Skip 前进 n 个字节
func (c *Control) Skip(n int) {
	for i := 0; i < n; i++ {
		if _, ok := c.Next(); !ok {
			return
		}
	}
}

// NextUntil 持续读取，直到 stop 返回 true（该字符不被消费），返回读取的文本
func (c *Control) NextUntil(stop func(ch byte) bool) string {
	start := c.offset
	for !c.EOF() {
		if stop(c.src[c.offset]) {
			break
		}
		c.Next()
	}
	return c.src[start:c.offset]
}

// HasPrefix 判断剩余输入是否以 s 开头
func (c *Control) HasPrefix(s string) bool {
	return strings.HasPrefix(c.src[c.offset:], s)
}

// HasPrefixFold 与 HasPrefix 相同，但忽略 ASCII 大小写
func (c *Control) HasPrefixFold(s string) bool {
	rest := c.src[c.offset:]
	return len(rest) >= len(s) && strings.EqualFold(rest[:len(s)], s)
}

// Slice 返回 [from, 当前偏移) 的源码
func (c *Control) Slice(from int) string {
	return c.src[from:c.offset]
}

// Offset 返回当前字节偏移
func (c *Control) Offset() int {
	return c.offset
}

// Rest 返回尚未读取的源码
func (c *Control) Rest() string {
	return c.src[c.offset:]
}
