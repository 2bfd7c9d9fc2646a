package formatter

import (
	"strings"

	"github.com/tangzhangming/phpfmt/internal/generator"
)

// Options 格式化选项
type Options struct {
	// 缩进设置
	IndentSize int // 每级缩进的空格数

	// 代码风格
	MaxLineLength int // 最大行长度

	// 词法
	ASPTags bool // 识别 <% %> 标签

	// 其他
	EnsureNewlineAtEOF bool // 以 PHP 代码结尾时确保文件末尾有换行符
}

// DefaultOptions 返回默认格式化选项（2 空格缩进，100 列）
func DefaultOptions() *Options {
	d := generator.DefaultOptions()
	return &Options{
		IndentSize:         d.IndentSize,
		MaxLineLength:      d.MaxLength,
		ASPTags:            false,
		EnsureNewlineAtEOF: true,
	}
}

// IndentString 返回一级缩进
func (o *Options) IndentString() string {
	return strings.Repeat(" ", o.generatorOptions().IndentSize)
}

func (o *Options) generatorOptions() generator.Options {
	if o == nil {
		return generator.DefaultOptions()
	}
	return generator.Options{
		MaxLength:  o.MaxLineLength,
		IndentSize: o.IndentSize,
	}
}
