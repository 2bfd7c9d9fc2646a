package lexer

import "strings"

// seriesSize 序列检查器的窗口大小，需不小于最长模式
const seriesSize = 8

// SeriesChecker 检查最近推入的字符是否以某个模式结尾
//
// 内部是一个定长环形缓冲。开启转义检查时，被奇数个反斜杠转义的字符
// 不会参与匹配。空白字符会清空当前序列。
type SeriesChecker struct {
	patterns    []string
	escapes     bool
	buf         [seriesSize]byte
	head        int
	size        int
	backslashes int
}

// NewSeriesChecker 创建序列检查器
func NewSeriesChecker(patterns []string, escapes bool) *SeriesChecker {
	for _, p := range patterns {
		if len(p) > seriesSize {
			panic("lexer: series pattern too long: " + p)
		}
	}
	return &SeriesChecker{patterns: patterns, escapes: escapes}
}

// Push 推入一个字符，返回此时匹配到的模式
func (s *SeriesChecker) Push(ch byte) (string, bool) {
	escaped := s.escapes && s.backslashes%2 == 1
	if ch == '\\' {
		s.backslashes++
	} else {
		s.backslashes = 0
	}

	if isSpace(ch) || escaped {
		s.Reset()
		return "", false
	}

	s.buf[s.head] = ch
	s.head = (s.head + 1) % seriesSize
	if s.size < seriesSize {
		s.size++
	}

	for _, p := range s.patterns {
		if s.endsWith(p) {
			return p, true
		}
	}
	return "", false
}

// Reset 清空当前序列（保留反斜杠计数）
func (s *SeriesChecker) Reset() {
	s.head = 0
	s.size = 0
}

// endsWith 判断窗口是否以 p 结尾（忽略 ASCII 大小写）
func (s *SeriesChecker) endsWith(p string) bool {
	if len(p) > s.size {
		return false
	}
	var tail [seriesSize]byte
	for i := 0; i < len(p); i++ {
		idx := (s.head - len(p) + i + seriesSize) % seriesSize
		tail[i] = s.buf[idx]
	}
	return strings.EqualFold(string(tail[:len(p)]), p)
}
