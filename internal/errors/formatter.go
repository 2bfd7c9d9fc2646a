package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ============================================================================
// 颜色
// ============================================================================

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	noteStyle    = color.New(color.FgCyan, color.Bold)
	helpStyle    = color.New(color.FgGreen, color.Bold)
	fileStyle    = color.New(color.FgCyan)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	caretStyle   = color.New(color.FgRed, color.Bold)
)

func levelStyle(level Level) *color.Color {
	switch level {
	case LevelWarning:
		return warningStyle
	case LevelNote:
		return noteStyle
	case LevelHelp:
		return helpStyle
	}
	return errorStyle
}

// ============================================================================
// 格式化器
// ============================================================================

// Formatter 诊断格式化器
type Formatter struct {
	Colors     bool // 是否使用颜色
	ShowSource bool // 是否显示源代码
	ShowHints  bool // 是否显示修复建议
	TabWidth   int  // Tab 宽度
}

// NewFormatter 创建默认格式化器，终端不支持颜色时自动关闭
func NewFormatter() *Formatter {
	return &Formatter{
		Colors:     !color.NoColor,
		ShowSource: true,
		ShowHints:  true,
		TabWidth:   4,
	}
}

// Format 渲染一条诊断
//
//	error[E0101]: unexpected token: }
//	 --> a.php:3:5
//	  |
//	3 | if (}
//	  |     ^
//	 = help: ...
func (f *Formatter) Format(d *Diagnostic, sourceLines []string) string {
	var sb strings.Builder

	style := levelStyle(d.Level)
	sb.WriteString(f.colorize(fmt.Sprintf("%s[%s]", d.Level, d.Code), style))
	sb.WriteString(": " + d.Message + "\n")

	sb.WriteString(" " + f.colorize("-->", lineStyle) + " ")
	sb.WriteString(f.colorize(fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column), fileStyle) + "\n")

	if f.ShowSource && d.Line > 0 && d.Line <= len(sourceLines) {
		sb.WriteString(f.snippet(sourceLines[d.Line-1], d.Line, d.Column, d.Length))
	}

	if f.ShowHints {
		for _, hint := range d.Hints {
			sb.WriteString(" " + f.colorize("= help:", helpStyle) + " " + hint + "\n")
		}
	}
	return sb.String()
}

// snippet 源码行加下方的 ^ 标注
func (f *Formatter) snippet(line string, lineNum, col, length int) string {
	var sb strings.Builder
	width := len(fmt.Sprintf("%d", lineNum))
	gutter := strings.Repeat(" ", width)

	sb.WriteString(f.colorize(gutter+" |", lineStyle) + "\n")
	sb.WriteString(f.colorize(fmt.Sprintf("%d |", lineNum), lineStyle))
	sb.WriteString(" " + f.expandTabs(strings.TrimRight(line, "\r")) + "\n")

	if length < 1 {
		length = 1
	}
	sb.WriteString(f.colorize(gutter+" |", lineStyle))
	sb.WriteString(" " + strings.Repeat(" ", f.actualColumn(line, col)))
	sb.WriteString(f.colorize(strings.Repeat("^", length), caretStyle) + "\n")
	return sb.String()
}

// expandTabs 展开 Tab 为空格
func (f *Formatter) expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", f.TabWidth))
}

// actualColumn 1 起列号对应的显示偏移（Tab 按 TabWidth 计）
func (f *Formatter) actualColumn(line string, col int) int {
	actual := 0
	i := 0
	for _, r := range line {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			actual += f.TabWidth
		} else {
			actual++
		}
		i += len(string(r))
	}
	return actual
}

func (f *Formatter) colorize(s string, c *color.Color) string {
	if !f.Colors {
		return s
	}
	return c.Sprint(s)
}
