package lsp

import (
	"strings"

	"go.lsp.dev/uri"
)

// utf16Len 字符串的 UTF-16 码元数，LSP 的列号以此计
func utf16Len(s string) uint32 {
	var n uint32
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// utf16Column 行内字节偏移转换为 UTF-16 列号
func utf16Column(line string, byteCol int) uint32 {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	if byteCol < 0 {
		byteCol = 0
	}
	return utf16Len(line[:byteCol])
}

// leadingSpaces 行首空白宽度，Tab 按 tabWidth 计
func leadingSpaces(line string, tabWidth int) int {
	n := 0
	for _, c := range line {
		switch c {
		case ' ':
			n++
		case '\t':
			n += tabWidth
		default:
			return n
		}
	}
	return 0
}

// uriToPath 把 file:// URI 转为本地路径，其他 scheme 原样返回
func uriToPath(docURI string) string {
	if !strings.HasPrefix(docURI, "file://") {
		return docURI
	}
	u, err := uri.Parse(docURI)
	if err != nil {
		return strings.TrimPrefix(docURI, "file://")
	}
	return u.Filename()
}
