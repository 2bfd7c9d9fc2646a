package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/tangzhangming/phpfmt/internal/errors"
)

const diagnosticSource = "phpfmt"

// convertDiagnostics 把文档的解析错误转换为 LSP 诊断
func convertDiagnostics(doc *Document) []protocol.Diagnostic {
	if doc.ParseErr == nil {
		return []protocol.Diagnostic{}
	}

	d, ok := errors.FromError(uriToPath(doc.URI), doc.ParseErr)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: protocol.DiagnosticSeverityError,
			Source:   diagnosticSource,
			Message:  doc.ParseErr.Error(),
		}}
	}

	// Diagnostic 的行列从 1 开始，LSP 从 0 开始
	line := d.Line - 1
	if line < 0 {
		line = 0
	}
	text := doc.GetLine(line)
	startByte := d.Column - 1
	length := d.Length
	if length < 1 {
		length = 1
	}
	start := utf16Column(text, startByte)
	end := utf16Column(text, startByte+length)
	if end <= start {
		end = start + 1
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: start},
			End:   protocol.Position{Line: uint32(line), Character: end},
		},
		Severity: protocol.DiagnosticSeverityError,
		Code:     d.Code,
		Source:   diagnosticSource,
		Message:  d.Message,
	}}
}

// publishDiagnostics 发布文档诊断
func (s *Server) publishDiagnostics(ctx context.Context, doc *Document) {
	s.notify(ctx, methodPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.URI),
		Diagnostics: convertDiagnostics(doc),
	})
}

// clearDiagnostics 文档关闭后清空诊断
func (s *Server) clearDiagnostics(ctx context.Context, docURI string) {
	s.notify(ctx, methodPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Diagnostics: []protocol.Diagnostic{},
	})
}

func (s *Server) notify(ctx context.Context, method string, params interface{}) {
	if s.conn == nil {
		return
	}
	if err := s.conn.Notify(ctx, method, params); err != nil {
		s.logger.Warn("notify failed", zap.String("method", method), zap.Error(err))
	}
}
