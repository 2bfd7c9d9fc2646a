package generator

import (
	"strings"
	"unicode/utf8"
)

// ============================================================================
// 行构建器
// ============================================================================
//
// Builder 是一组带相对缩进的行。每个节点先输出到自己的 Builder，
// 再由父节点决定是拼到当前行末尾还是整体缩进后追加。
//
// 多行原子（heredoc 正文、块注释、内联文本）作为一个整体写进同一行，
// 行内的换行原样保留，缩进前缀只加在行首。
//
// ============================================================================

// Line 一行输出
type Line struct {
	Indent int
	buf    strings.Builder
	blank  bool
}

// String 返回行内容（不含缩进）
func (l *Line) String() string {
	return l.buf.String()
}

// Len 行内容的字符数
func (l *Line) Len() int {
	return utf8.RuneCountInString(l.buf.String())
}

// head 第一个内嵌换行之前的字符数
func (l *Line) head() int {
	s := l.buf.String()
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return utf8.RuneCountInString(s)
}

// tail 最后一个内嵌换行之后的字符数
func (l *Line) tail() int {
	s := l.buf.String()
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return utf8.RuneCountInString(s)
}

// Empty 行是否为空（显式空行不算）
func (l *Line) Empty() bool {
	return l.buf.Len() == 0 && !l.blank
}

// Builder 行构建器
type Builder struct {
	lines []*Line
}

// NewBuilder 创建只含一个空行的构建器
func NewBuilder() *Builder {
	return &Builder{lines: []*Line{{}}}
}

func (b *Builder) last() *Line {
	return b.lines[len(b.lines)-1]
}

// Push 在当前行末尾追加文本
func (b *Builder) Push(s string) {
	if b.last().blank {
		b.lines = append(b.lines, &Line{})
	}
	b.last().buf.WriteString(s)
}

// Blank 追加一个显式空行
func (b *Builder) Blank() {
	b.lines = append(b.lines, &Line{blank: true})
}

// NewLine 开始新的一行
//
// 当前行为空时复用它并把缩进归零，不会产生连续的空行。
func (b *Builder) NewLine() {
	if l := b.last(); l.Empty() {
		l.Indent = 0
		return
	}
	b.lines = append(b.lines, &Line{})
}

// Indent 所有行缩进加一级
func (b *Builder) Indent() {
	for _, l := range b.lines {
		l.Indent++
	}
}

// Extend 把 other 的所有行追加到末尾
func (b *Builder) Extend(other *Builder) {
	if b.last().Empty() && len(b.lines) > 1 {
		b.lines = b.lines[:len(b.lines)-1]
	}
	b.lines = append(b.lines, other.lines...)
}

// Nest 把 other 的所有行追加到末尾，缩进比当前行深一级
func (b *Builder) Nest(other *Builder) {
	base := b.last().Indent + 1
	for _, l := range other.lines {
		l.Indent += base
	}
	b.Extend(other)
}

// LineAt 开始缩进为 indent 的新行
func (b *Builder) LineAt(indent int) {
	b.NewLine()
	b.last().Indent = indent
}

// ExtendFirstLine 把 other 的第一行拼到当前行，其余行追加并继承当前行的缩进
func (b *Builder) ExtendFirstLine(other *Builder) {
	if b.last().blank {
		b.lines = append(b.lines, &Line{})
	}
	cur := b.last()
	cur.buf.WriteString(other.lines[0].String())
	for _, l := range other.lines[1:] {
		l.Indent += cur.Indent
		b.lines = append(b.lines, l)
	}
}

// TrimRight 去掉当前行末尾的空格
func (b *Builder) TrimRight() {
	l := b.last()
	s := l.buf.String()
	if t := strings.TrimRight(s, " "); len(t) != len(s) {
		l.buf.Reset()
		l.buf.WriteString(t)
	}
}

// FirstText 第一个非空行的内容
func (b *Builder) FirstText() string {
	for _, l := range b.lines {
		if !l.Empty() {
			return l.String()
		}
	}
	return ""
}

// CurrentEmpty 当前行是否为空
func (b *Builder) CurrentEmpty() bool {
	return b.last().Empty()
}

// LineCount 非空行数
func (b *Builder) LineCount() int {
	n := 0
	for _, l := range b.lines {
		if !l.Empty() {
			n++
		}
	}
	return n
}

// Multiline 是否占多行（含内嵌换行的原子）
func (b *Builder) Multiline() bool {
	if b.LineCount() > 1 {
		return true
	}
	for _, l := range b.lines {
		if strings.Contains(l.String(), "\n") {
			return true
		}
	}
	return false
}

// LastLen 当前行长度，多行原子只计最后一段
func (b *Builder) LastLen() int {
	return b.last().tail()
}

// LastIndent 当前行的相对缩进
func (b *Builder) LastIndent() int {
	return b.last().Indent
}

// FirstLen 第一行长度，多行原子只计第一段
func (b *Builder) FirstLen() int {
	return b.lines[0].head()
}

// TotalLen 所有行长度之和
func (b *Builder) TotalLen() int {
	n := 0
	for _, l := range b.lines {
		n += l.Len()
	}
	return n
}

// TotalLenWithSeparator 所有行拼接成一行时的长度
func (b *Builder) TotalLenWithSeparator(sep string) int {
	return b.TotalLen() + utf8.RuneCountInString(sep)*len(b.lines)
}

// Print 渲染为文本：跳过空行，每级缩进 indentSize 个空格
func (b *Builder) Print(sep string, indentSize int) string {
	var sb strings.Builder
	first := true
	for _, l := range b.lines {
		if l.Empty() {
			continue
		}
		if !first {
			sb.WriteString(sep)
		}
		first = false
		if l.blank {
			continue
		}
		if l.Indent > 0 {
			sb.WriteString(strings.Repeat(" ", l.Indent*indentSize))
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}
