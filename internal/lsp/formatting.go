package lsp

import (
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/tangzhangming/phpfmt/internal/formatter"
)

// formattingOptions 在服务端默认选项上叠加编辑器传来的缩进设置
func (s *Server) formattingOptions(o protocol.FormattingOptions) *formatter.Options {
	options := *s.options()
	if o.InsertSpaces && o.TabSize > 0 && o.TabSize <= 8 {
		options.IndentSize = int(o.TabSize)
	}
	return &options
}

// formatDocument 整篇格式化，没有变化或出错时返回空编辑
func (s *Server) formatDocument(doc *Document, o protocol.FormattingOptions) []protocol.TextEdit {
	formatted, err := formatter.Format(doc.Content, uriToPath(doc.URI), s.formattingOptions(o))
	if err != nil {
		s.logger.Debug("format failed", zap.String("uri", doc.URI), zap.Error(err))
		return []protocol.TextEdit{}
	}
	if formatted == doc.Content {
		return []protocol.TextEdit{}
	}

	// 替换范围覆盖整个文档
	lastLine := len(doc.Lines) - 1
	if lastLine < 0 {
		lastLine = 0
	}
	edit := protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End: protocol.Position{
				Line:      uint32(lastLine),
				Character: utf16Len(doc.GetLine(lastLine)),
			},
		},
		NewText: formatted,
	}
	return []protocol.TextEdit{edit}
}

// formatRange 格式化选区覆盖的整行
//
// 选区按首行的缩进作为基准缩进，片段无法独立解析时返回空编辑。
func (s *Server) formatRange(doc *Document, r protocol.Range, o protocol.FormattingOptions) []protocol.TextEdit {
	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)
	// 选区结束于下一行行首时不包含该行
	if endLine > startLine && r.End.Character == 0 {
		endLine--
	}
	if startLine >= len(doc.Lines) {
		return []protocol.TextEdit{}
	}
	if endLine >= len(doc.Lines) {
		endLine = len(doc.Lines) - 1
	}

	selected := strings.Join(doc.Lines[startLine:endLine+1], "\n")
	if strings.TrimSpace(selected) == "" {
		return []protocol.TextEdit{}
	}

	options := s.formattingOptions(o)
	base := leadingSpaces(doc.Lines[startLine], options.IndentSize)
	formatted, err := formatter.FormatPartial(selected, options, base)
	if err != nil {
		s.logger.Debug("range format failed", zap.String("uri", doc.URI), zap.Error(err))
		return []protocol.TextEdit{}
	}

	var end protocol.Position
	if endLine+1 < len(doc.Lines) {
		end = protocol.Position{Line: uint32(endLine + 1), Character: 0}
		selected += "\n"
	} else {
		// 最后一行后面没有换行
		formatted = strings.TrimSuffix(formatted, "\n")
		end = protocol.Position{Line: uint32(endLine), Character: utf16Len(doc.Lines[endLine])}
	}
	if formatted == selected {
		return []protocol.TextEdit{}
	}

	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(startLine), Character: 0},
			End:   end,
		},
		NewText: formatted,
	}}
}
