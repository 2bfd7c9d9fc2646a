package config

import (
	"path/filepath"
	"strings"
)

// Selects 判断相对路径是否被 include 选中且没有被 exclude 排除
func (c *Config) Selects(rel string) bool {
	rel = filepath.ToSlash(rel)
	if matchAny(c.Files.Exclude, rel) {
		return false
	}
	return len(c.Files.Include) == 0 || matchAny(c.Files.Include, rel)
}

// Excludes 判断目录是否整体被排除，遍历时据此跳过子树
func (c *Config) Excludes(relDir string) bool {
	relDir = filepath.ToSlash(relDir)
	return matchAny(c.Files.Exclude, relDir) || matchAny(c.Files.Exclude, relDir+"/")
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if Match(p, rel) {
			return true
		}
	}
	return false
}

// Match 按 / 分段匹配路径，** 匹配零个或多个目录段，其余段使用 filepath.Match
//
//	Match("**/*.php", "src/a.php")   // true
//	Match("vendor/**", "vendor/x/y") // true
func Match(pattern, path string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			rest := pat[1:]
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(segs); i++ {
				if matchSegments(rest, segs[i:]) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		if ok, _ := filepath.Match(pat[0], segs[0]); !ok {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}
