// Package formatter 是格式化流水线的入口：词法分析、语法分析、代码生成。
package formatter

import (
	"path/filepath"
	"strings"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/generator"
	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/parser"
)

// ModeFor 按文件扩展名选择词法起始模式
//
// .php、.phtml、.inc 是完整源文件，从内联模式开始；其他名字（包括空名）
// 按内容自动判断。
func ModeFor(filename string) lexer.Mode {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".php", ".phtml", ".inc":
		return lexer.ModeInline
	}
	return lexer.ModeAuto
}

// Parse 按文件名对应的模式解析源代码
func Parse(source, filename string, options *Options) (*ast.Arena, *ast.Node, error) {
	return parseMode(source, ModeFor(filename), options)
}

func parseMode(source string, mode lexer.Mode, options *Options) (*ast.Arena, *ast.Node, error) {
	cfg := lexer.Config{Mode: mode}
	if options != nil {
		cfg.ASPTags = options.ASPTags
	}
	return parser.Parse(source, parser.Config{Lexer: cfg})
}

// Format 格式化源代码
func Format(source, filename string, options *Options) (string, error) {
	if options == nil {
		options = DefaultOptions()
	}
	_, root, err := Parse(source, filename, options)
	if err != nil {
		return "", err
	}
	return render(root, options), nil
}

// FormatWithDefaultOptions 使用默认选项格式化
func FormatWithDefaultOptions(source, filename string) (string, error) {
	return Format(source, filename, DefaultOptions())
}

// Check 判断源代码是否已经是格式化后的形式
func Check(source, filename string, options *Options) (bool, error) {
	formatted, err := Format(source, filename, options)
	if err != nil {
		return false, err
	}
	return formatted == source, nil
}

func render(root *ast.Node, options *Options) string {
	result := generator.Generate([]*ast.Node{root}, options.generatorOptions())
	if result == "" {
		return result
	}

	// 以内联文本结尾时原样保留，否则确保文件末尾有换行符
	if options.EnsureNewlineAtEOF && !endsInline(root) && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

func endsInline(root *ast.Node) bool {
	p := root.AsProgram()
	if p == nil || len(p.Children) == 0 {
		return false
	}
	return p.Children[len(p.Children)-1].Kind == ast.KindInline
}

// FormatPartial 格式化一段代码片段（不含开标签）
//
// baseIndent 是结果每个非空行前补的空格数。片段不能单独解析时（例如
// 只有 return 语句）包装进函数体后再试。
func FormatPartial(source string, options *Options, baseIndent int) (string, error) {
	if options == nil {
		options = DefaultOptions()
	}

	// 首先尝试直接格式化
	_, root, err := parseMode(source, lexer.ModeCode, options)
	if err == nil {
		return reindent(render(root, options), baseIndent), nil
	}

	// 如果直接格式化失败，尝试包装代码后格式化
	_, root, werr := parseMode(wrapPartialCode(source), lexer.ModeCode, options)
	if werr != nil {
		// 如果仍然失败，返回原始错误
		return "", err
	}
	formatted := render(root, options)
	return reindent(extractFormattedPart(formatted, options), baseIndent), nil
}

// wrapPartialCode 包装部分代码以便解析
func wrapPartialCode(source string) string {
	return "function __wrapper__() {\n" + source + "\n}"
}

// extractFormattedPart 从包装的格式化代码中提取原始部分
func extractFormattedPart(formatted string, options *Options) string {
	lines := strings.Split(strings.TrimSuffix(formatted, "\n"), "\n")
	if len(lines) < 3 {
		return ""
	}

	// 跳过第一行（function __wrapper__() {）和最后一行（}）
	resultLines := lines[1 : len(lines)-1]

	// 移除包装函数添加的一级缩进
	indentStr := options.IndentString()
	for i, line := range resultLines {
		resultLines[i] = strings.TrimPrefix(line, indentStr)
	}
	return strings.Join(resultLines, "\n") + "\n"
}

func reindent(s string, baseIndent int) string {
	if baseIndent <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", baseIndent)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
