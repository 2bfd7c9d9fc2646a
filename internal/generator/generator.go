// Package generator 把语法树重新输出为 PHP 源码。
//
// 输出保证重新解析后得到结构相同的树（附注位置一并保留）；在此前提下
// 按宽度预算选择单行或多行布局。
package generator

import (
	"unicode/utf8"

	"github.com/tangzhangming/phpfmt/internal/ast"
)

// ============================================================================
// 选项
// ============================================================================

// Options 生成选项
type Options struct {
	// MaxLength 单行最大宽度（含缩进）
	MaxLength int
	// IndentSize 每级缩进的空格数
	IndentSize int
}

// DefaultOptions 返回默认选项
func DefaultOptions() Options {
	return Options{
		MaxLength:  100,
		IndentSize: 2,
	}
}

func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.MaxLength <= 0 {
		o.MaxLength = d.MaxLength
	}
	if o.IndentSize <= 0 {
		o.IndentSize = d.IndentSize
	}
	return o
}

// ============================================================================
// 分派
// ============================================================================

// EndMode 节点之后追加的终止符
type EndMode uint8

const (
	// EndNone 不追加
	EndNone EndMode = iota
	// EndCommaWithoutEnd 除最后一项外追加逗号
	EndCommaWithoutEnd
	// EndSemicolonDynamic 节点不自行结束语句时追加分号
	EndSemicolonDynamic
)

// Argument 父节点传给子节点的上下文
type Argument struct {
	Table  *Table
	End    EndMode
	IsLast bool
}

type emitFunc func(g *Generator, b *Builder, n *ast.Node, arg Argument)

// Table 按节点种类索引的输出函数表，未登记的种类静默跳过
type Table [ast.KindCount]emitFunc

func (t *Table) lookup(k ast.Kind) emitFunc {
	if t == nil || int(k) >= len(t) {
		return nil
	}
	return t[k]
}

// Generator 代码生成器
type Generator struct {
	opts  Options
	depth int
	// flat 大于零时不换行，用于字符串插值内部
	flat int
	// tail 列表之后在同一行还要输出的宽度，如 ": Type {"
	tail int
}

// New 创建生成器
func New(opts Options) *Generator {
	return &Generator{opts: opts.normalize()}
}

// Generate 按语句语义输出一组节点
func Generate(nodes []*ast.Node, opts Options) string {
	return New(opts).Statements(nodes)
}

// Statements 输出语句序列，每条语句占新行
func (g *Generator) Statements(nodes []*ast.Node) string {
	b := NewBuilder()
	for _, n := range nodes {
		b.NewLine()
		g.node(b, n, g.statementArg())
	}
	return b.Print("\n", g.opts.IndentSize)
}

// Expression 输出单个表达式，不追加终止符
func (g *Generator) Expression(n *ast.Node) string {
	b := NewBuilder()
	g.expr(b, n)
	return b.Print("\n", g.opts.IndentSize)
}

func (g *Generator) statementArg() Argument {
	return Argument{Table: &defaultTable, End: EndSemicolonDynamic}
}

// ============================================================================
// 节点与附注
// ============================================================================

// node 输出一个节点：前置附注、节点本身、终止符、后置附注
func (g *Generator) node(b *Builder, n *ast.Node, arg Argument) {
	if n == nil {
		return
	}
	emit := arg.Table.lookup(n.Kind)
	if emit == nil {
		return
	}
	if !n.HasTrivia() {
		emit(g, b, n, arg)
		g.terminate(b, n, arg)
		return
	}

	sub := NewBuilder()
	for _, c := range n.LeadingNodes() {
		g.trivia(sub, c)
		sub.NewLine()
	}
	emit(g, sub, n, arg)
	g.terminate(sub, n, arg)
	for _, c := range n.TrailingNodes() {
		if !sub.CurrentEmpty() {
			sub.Push(" ")
		}
		g.trivia(sub, c)
	}
	g.place(b, sub, n)
}

// continuation 接续前一结构的节点，带前置附注时另起一行但不缩进
var continuation = [ast.KindCount]bool{
	ast.KindElse:             true,
	ast.KindIf:               true,
	ast.KindDoWhileCondition: true,
	ast.KindCatch:            true,
	ast.KindFinally:          true,
}

// place 把带附注的子构建器接到 b 上
func (g *Generator) place(b *Builder, sub *Builder, n *ast.Node) {
	switch {
	case b.CurrentEmpty() || len(n.LeadingNodes()) == 0:
		b.ExtendFirstLine(sub)
	case continuation[n.Kind]:
		b.TrimRight()
		b.LineAt(b.LastIndent())
		b.ExtendFirstLine(sub)
	default:
		b.TrimRight()
		b.Nest(sub)
	}
}

func (g *Generator) trivia(b *Builder, n *ast.Node) {
	if emit := triviaTable.lookup(n.Kind); emit != nil {
		emit(g, b, n, Argument{Table: &triviaTable})
	}
}

func (g *Generator) terminate(b *Builder, n *ast.Node, arg Argument) {
	switch arg.End {
	case EndCommaWithoutEnd:
		if !arg.IsLast || isEmptySlot(n) {
			b.Push(",")
		}
	case EndSemicolonDynamic:
		if !ast.EndsStatement(n) && n.Kind != ast.KindAttribute {
			b.Push(";")
		}
	}
}

// isEmptySlot 解构中跳过的位置 [, $b]
func isEmptySlot(n *ast.Node) bool {
	item := n.AsArrayItem()
	return item != nil && item.Key == nil && item.Value == nil
}

// ============================================================================
// 常用组合
// ============================================================================

// width 当前行的绝对宽度
func (g *Generator) width(b *Builder) int {
	return (g.depth+b.LastIndent())*g.opts.IndentSize + b.LastLen()
}

func (g *Generator) fits(w int) bool {
	return w <= g.opts.MaxLength
}

// expr 输出子表达式
func (g *Generator) expr(b *Builder, n *ast.Node) {
	g.node(b, n, Argument{Table: &defaultTable})
}

// render 把子表达式输出到独立的构建器
func (g *Generator) render(n *ast.Node) *Builder {
	sub := NewBuilder()
	g.expr(sub, n)
	return sub
}

// statements 每条语句另起一行，声明前后空一行
//
// <?= 之前的内联文本与随后的 echo 必须在同一行，否则换行会并入文本。
func (g *Generator) statements(b *Builder, list []*ast.Node, table *Table) {
	tail := g.tail
	g.tail = 0
	defer func() { g.tail = tail }()

	var prev *ast.Node
	for _, n := range list {
		switch {
		case prev == nil:
			b.NewLine()
		case echoTag(prev):
		default:
			if separated(prev, n) {
				b.Blank()
			}
			b.NewLine()
		}
		g.node(b, n, Argument{Table: table, End: EndSemicolonDynamic})
		prev = n
	}
}

func echoTag(n *ast.Node) bool {
	in := n.AsInline()
	return in != nil && in.Opener == "<?="
}

// declaration 前后需要空行的种类
var declaration = [ast.KindCount]bool{
	ast.KindFunction:  true,
	ast.KindClass:     true,
	ast.KindInterface: true,
	ast.KindTrait:     true,
	ast.KindEnum:      true,
	ast.KindMethod:    true,
	ast.KindNamespace: true,
}

func separated(prev, n *ast.Node) bool {
	if prev.Kind == ast.KindInline || n.Kind == ast.KindInline {
		return false
	}
	if declaration[prev.Kind] || declaration[n.Kind] {
		return true
	}
	return (prev.Kind == ast.KindUse) != (n.Kind == ast.KindUse)
}

// bareList 无括号的逗号列表，逗号紧跟在项之后、后置附注之前
func (g *Generator) bareList(b *Builder, list []*ast.Node) {
	for i, n := range list {
		if i > 0 && !b.CurrentEmpty() {
			b.Push(" ")
		}
		g.node(b, n, Argument{Table: &defaultTable, End: EndCommaWithoutEnd, IsLast: i == len(list)-1})
	}
}

// indented 把语句序列缩进一级追加到 b
func (g *Generator) indented(b *Builder, list []*ast.Node, table *Table) {
	if len(list) == 0 {
		return
	}
	inner := NewBuilder()
	g.depth++
	g.statements(inner, list, table)
	g.depth--
	b.Nest(inner)
}

// braced 输出 { 语句 }，空主体输出 {}
func (g *Generator) braced(b *Builder, list []*ast.Node, table *Table) {
	b.Push("{")
	if len(list) == 0 {
		b.Push("}")
		return
	}
	base := b.LastIndent()
	g.indented(b, list, table)
	b.LineAt(base)
	b.Push("}")
}

// body 输出控制结构的主体：块接在当前行，单条语句另起一行缩进
func (g *Generator) body(b *Builder, n *ast.Node) {
	if n == nil {
		b.Push(";")
		return
	}
	if n.Kind == ast.KindBlock && !n.HasTrivia() {
		b.Push(" ")
		g.braced(b, n.AsBlock().Statements, &defaultTable)
		return
	}
	g.indented(b, []*ast.Node{n}, &defaultTable)
}

// shortBody 输出 : 语句 endX; 形式的主体
func (g *Generator) shortBody(b *Builder, n *ast.Node, end string) {
	base := b.LastIndent()
	b.Push(":")
	g.indented(b, blockStatements(n), &defaultTable)
	b.LineAt(base)
	b.Push(end + ";")
}

// blockStatements 块内的语句，非块节点返回 nil
func blockStatements(n *ast.Node) []*ast.Node {
	if blk := n.AsBlock(); blk != nil {
		return blk.Statements
	}
	return nil
}

// loopBody 按 BodyType 输出循环与 declare 的主体
func (g *Generator) loopBody(b *Builder, n *ast.Node, bt ast.BodyType, end string) {
	switch bt {
	case ast.BodyEmpty:
		b.Push(";")
	case ast.BodyShort:
		g.shortBody(b, n, end)
	default:
		g.body(b, n)
	}
}

// bodyWidth 主体接在头部同一行的宽度：" {}"、" {"、":" 或 ";"
func bodyWidth(n *ast.Node, bt ast.BodyType) int {
	switch {
	case bt == ast.BodyEmpty || bt == ast.BodyShort || n == nil:
		return 1
	case isBlock(n):
		return bracedWidth(blockStatements(n))
	}
	return 0
}

func bracedWidth(list []*ast.Node) int {
	if len(list) == 0 {
		return 3
	}
	return 2
}

// withTail 在 fn 输出的列表之后同一行还有 n 个字符
func (g *Generator) withTail(n int, fn func()) {
	saved := g.tail
	g.tail = n
	fn()
	g.tail = saved
}

// joined 单行拼接，供不换行的短列表使用
func (g *Generator) joined(b *Builder, list []*ast.Node, sep string) {
	for i, n := range list {
		if i > 0 {
			b.Push(sep)
		}
		g.expr(b, n)
	}
}

// ============================================================================
// 列表布局
// ============================================================================

// list 输出 open 项, 项 close
//
// 能放进一行时单行输出；最后一项是闭包、数组等可展开结构时紧贴括号；
// 否则每项一行缩进，close 独占一行。任一项带附注时总是多行。
// 单行宽度计入 g.tail。
func (g *Generator) list(b *Builder, open string, items []*ast.Node, close string) {
	b.Push(open)
	if len(items) == 0 {
		b.Push(close)
		return
	}

	prefix := g.width(b)
	tail := g.tail
	g.tail = 0
	defer func() { g.tail = tail }()

	g.depth++
	parts := make([]*Builder, len(items))
	vertical := false
	for i, it := range items {
		pb := NewBuilder()
		g.node(pb, it, Argument{Table: &defaultTable, End: EndCommaWithoutEnd, IsLast: i == len(items)-1})
		parts[i] = pb
		if it.HasTrivia() {
			vertical = true
		}
	}
	g.depth--

	if g.flat > 0 {
		for i, pb := range parts {
			if i > 0 {
				b.Push(" ")
			}
			b.ExtendFirstLine(pb)
		}
		b.Push(close)
		return
	}
	if !vertical && g.inline(b, parts, items, prefix, close, tail) {
		return
	}

	base := b.LastIndent()
	inner := NewBuilder()
	for i, pb := range parts {
		if i > 0 {
			inner.NewLine()
		}
		inner.ExtendFirstLine(pb)
	}
	b.Nest(inner)
	b.LineAt(base)
	b.Push(close)
}

func (g *Generator) inline(b *Builder, parts []*Builder, items []*ast.Node, prefix int, close string, suffix int) bool {
	last := len(parts) - 1
	after := max(suffix, 1)
	w := prefix + utf8.RuneCountInString(close) + after
	for i, pb := range parts {
		if i > 0 {
			w++
		}
		if i < last {
			if pb.Multiline() {
				return false
			}
			w += pb.FirstLen()
		}
	}

	if tail := parts[last]; tail.Multiline() {
		if !huggable(items[last]) || !g.fits(w+tail.FirstLen()-utf8.RuneCountInString(close)-after) {
			return false
		}
	} else if !g.fits(w + tail.FirstLen()) {
		return false
	}

	for i, pb := range parts {
		if i > 0 {
			b.Push(" ")
		}
		b.ExtendFirstLine(pb)
	}
	b.Push(close)
	return true
}

// huggable 可以紧贴括号展开的最后一项
func huggable(n *ast.Node) bool {
	switch {
	case n.AsCallArgument() != nil:
		n = n.AsCallArgument().Value
	case n.AsArrayItem() != nil:
		n = n.AsArrayItem().Value
	}
	if n == nil {
		return false
	}
	switch n.Kind {
	case ast.KindAnonymousFunction, ast.KindArrowFunction, ast.KindArray, ast.KindMatch,
		ast.KindHereDoc, ast.KindNowDoc:
		return true
	case ast.KindNew:
		v := n.AsNew().Value
		return v != nil && v.Kind == ast.KindAnonymousClass
	}
	return false
}
