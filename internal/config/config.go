// Package config 读取项目的 .phpfmt.toml 配置
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tangzhangming/phpfmt/internal/formatter"
)

// 常量定义
const (
	ConfigFileName = ".phpfmt.toml" // 配置文件名
)

// Config 项目配置
type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`
}

// FormatConfig 格式化选项
type FormatConfig struct {
	// MaxLength 单行最大宽度
	MaxLength int `toml:"max_length"`

	// IndentSize 每级缩进的空格数
	IndentSize int `toml:"indent_size"`

	// ASPTags 是否识别 <% %> 标签
	ASPTags bool `toml:"asp_tags"`
}

// FilesConfig 目录遍历时选择文件的规则，路径相对于配置文件所在目录
type FilesConfig struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// Default 返回默认配置
func Default() *Config {
	opts := formatter.DefaultOptions()
	return &Config{
		Format: FormatConfig{
			MaxLength:  opts.MaxLineLength,
			IndentSize: opts.IndentSize,
			ASPTags:    opts.ASPTags,
		},
		Files: FilesConfig{
			Include: []string{"**/*.php"},
			Exclude: []string{"vendor/**"},
		},
	}
}

// LoadFile 从文件加载配置，未出现的键保持默认值
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Load 从 dir 向上查找配置文件并加载
//
// 返回配置与配置文件路径；找不到时返回默认配置和空路径。
func Load(dir string) (*Config, string, error) {
	path := FindConfigFile(dir)
	if path == "" {
		return Default(), "", nil
	}
	config, err := LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	if c.Format.MaxLength < 20 {
		return fmt.Errorf("format.max_length must be at least 20, got %d", c.Format.MaxLength)
	}
	if c.Format.IndentSize < 1 || c.Format.IndentSize > 8 {
		return fmt.Errorf("format.indent_size must be between 1 and 8, got %d", c.Format.IndentSize)
	}
	for _, p := range append(append([]string(nil), c.Files.Include...), c.Files.Exclude...) {
		if _, err := filepath.Match(strings.ReplaceAll(p, "**", "*"), ""); err != nil {
			return fmt.Errorf("bad file pattern %q: %w", p, err)
		}
	}
	return nil
}

// FormatterOptions 转换为格式化选项
func (c *Config) FormatterOptions() *formatter.Options {
	opts := formatter.DefaultOptions()
	opts.MaxLineLength = c.Format.MaxLength
	opts.IndentSize = c.Format.IndentSize
	opts.ASPTags = c.Format.ASPTags
	return opts
}

// Save 保存配置到文件
func (c *Config) Save(path string) error {
	if err := os.WriteFile(path, []byte(generateConfigWithComments(c)), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// generateConfigWithComments 生成带注释的配置文件内容
func generateConfigWithComments(c *Config) string {
	var sb strings.Builder

	sb.WriteString("[format]\n")
	sb.WriteString("# 单行最大宽度\n")
	sb.WriteString(fmt.Sprintf("max_length = %d\n", c.Format.MaxLength))
	sb.WriteString("# 每级缩进的空格数\n")
	sb.WriteString(fmt.Sprintf("indent_size = %d\n", c.Format.IndentSize))
	sb.WriteString("# 识别 <% %> 标签\n")
	sb.WriteString(fmt.Sprintf("asp_tags = %t\n\n", c.Format.ASPTags))

	sb.WriteString("[files]\n")
	sb.WriteString("# 目录遍历时的文件规则，** 匹配任意层目录\n")
	sb.WriteString("include = " + quoteList(c.Files.Include) + "\n")
	sb.WriteString("exclude = " + quoteList(c.Files.Exclude) + "\n")

	return sb.String()
}

func quoteList(list []string) string {
	quoted := make([]string, len(list))
	for i, s := range list {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// FindConfigFile 从指定路径向上查找配置文件
// 返回配置文件的完整路径，如果找不到则返回空字符串
func FindConfigFile(startPath string) string {
	// 如果是文件，从其所在目录开始
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	dir := startPath
	if !info.IsDir() {
		dir = filepath.Dir(startPath)
	}

	// 转换为绝对路径
	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	// 向上查找
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到达根目录
			return ""
		}
		dir = parent
	}
}
