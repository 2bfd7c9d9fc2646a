// Package i18n 提供词法、语法错误和命令行输出的多语言消息。
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	current Language = LangEnglish
	mu      sync.RWMutex
)

var catalogs = map[Language]map[string]string{
	LangEnglish: messagesEN,
	LangChinese: messagesZH,
}

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := catalogs[lang]; ok {
		current = lang
	}
}

// Parse 把 "zh_CN.UTF-8"、"zh-cn"、"en" 之类的写法解析为语言
func Parse(s string) Language {
	s = strings.ToLower(s)
	if strings.HasPrefix(s, "zh") || s == "chinese" {
		return LangChinese
	}
	return LangEnglish
}

// FromEnv 按 PHPFMT_LANG、LC_ALL、LANG 的顺序选择语言
func FromEnv() Language {
	for _, key := range []string{"PHPFMT_LANG", "LC_ALL", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return Parse(v)
		}
	}
	return LangEnglish
}

// Current 返回当前语言
func Current() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// T 翻译消息，找不到时回退到英文，再找不到返回消息 ID
func T(msgID string, args ...interface{}) string {
	msg, ok := catalogs[Current()][msgID]
	if !ok {
		if msg, ok = messagesEN[msgID]; !ok {
			return msgID
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
