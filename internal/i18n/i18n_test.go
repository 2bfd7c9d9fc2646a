package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogsComplete(t *testing.T) {
	t.Parallel()
	for id := range messagesEN {
		_, ok := messagesZH[id]
		assert.True(t, ok, "zh catalog missing %s", id)
	}
	for id := range messagesZH {
		_, ok := messagesEN[id]
		assert.True(t, ok, "en catalog has no %s", id)
	}
}

func TestPlaceholdersMatch(t *testing.T) {
	t.Parallel()
	for id, en := range messagesEN {
		zh := messagesZH[id]
		assert.Equal(t, strings.Count(en, "%"), strings.Count(zh, "%"), id)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]Language{
		"zh_CN.UTF-8": LangChinese,
		"zh-cn":       LangChinese,
		"Chinese":     LangChinese,
		"en_US.UTF-8": LangEnglish,
		"C":           LangEnglish,
		"":            LangEnglish,
	}
	for in, want := range tests {
		assert.Equal(t, want, Parse(in), in)
	}
}

func TestT(t *testing.T) {
	SetLanguage(LangEnglish)
	assert.Equal(t, "unexpected token: ;", T(ErrUnexpectedToken, ";"))
	assert.Equal(t, "unexpected end of input", T(ErrUnexpectedEOF))
	assert.Equal(t, "no.such.message", T("no.such.message"))

	SetLanguage(LangChinese)
	defer SetLanguage(LangEnglish)
	assert.Equal(t, LangChinese, Current())
	assert.Equal(t, messagesZH[MsgNoInput], T(MsgNoInput))

	// 不支持的语言不改变当前设置
	SetLanguage("fr")
	assert.Equal(t, LangChinese, Current())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PHPFMT_LANG", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "zh_CN.UTF-8")
	assert.Equal(t, LangChinese, FromEnv())

	t.Setenv("PHPFMT_LANG", "en")
	assert.Equal(t, LangEnglish, FromEnv())
}
