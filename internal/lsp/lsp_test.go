package lsp

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// testClient 通过内存管道和服务器对话
type testClient struct {
	t     *testing.T
	conn  jsonrpc2.Conn
	diags chan protocol.PublishDiagnosticsParams
	done  chan error
}

func startServer(t *testing.T) *testClient {
	t.Helper()
	serverSide, clientSide := net.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	c := &testClient{
		t:     t,
		diags: make(chan protocol.PublishDiagnosticsParams, 16),
		done:  make(chan error, 1),
	}
	srv := NewServer(nil, nil)
	go func() { c.done <- srv.Serve(ctx, serverSide) }()

	c.conn = jsonrpc2.NewConn(jsonrpc2.NewStream(clientSide))
	c.conn.Go(ctx, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if req.Method() == methodPublishDiagnostics {
			var p protocol.PublishDiagnosticsParams
			if err := json.Unmarshal(req.Params(), &p); err == nil {
				c.diags <- p
			}
		}
		return reply(ctx, nil, nil)
	})
	t.Cleanup(func() { c.conn.Close() })
	return c
}

func (c *testClient) call(method string, params, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := c.conn.Call(ctx, method, params, result)
	return err
}

func (c *testClient) notify(method string, params interface{}) {
	require.NoError(c.t, c.conn.Notify(context.Background(), method, params))
}

func (c *testClient) nextDiagnostics() protocol.PublishDiagnosticsParams {
	select {
	case p := <-c.diags:
		return p
	case <-time.After(5 * time.Second):
		c.t.Fatal("no diagnostics published")
	}
	return protocol.PublishDiagnosticsParams{}
}

func docURI(t *testing.T) protocol.DocumentURI {
	return uri.File(filepath.Join(t.TempDir(), "a.php"))
}

func TestServerSession(t *testing.T) {
	c := startServer(t)
	u := docURI(t)

	var init map[string]interface{}
	require.NoError(t, c.call(methodInitialize, &protocol.InitializeParams{}, &init))
	caps, ok := init["capabilities"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, caps["documentFormattingProvider"])
	assert.Equal(t, true, caps["documentRangeFormattingProvider"])
	c.notify(methodInitialized, struct{}{})

	// 语法错误产生诊断
	c.notify(methodDidOpen, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: u, LanguageID: "php", Version: 1, Text: "<?php $a = );"},
	})
	diags := c.nextDiagnostics()
	assert.Equal(t, u, diags.URI)
	require.Len(t, diags.Diagnostics, 1)
	d := diags.Diagnostics[0]
	assert.Equal(t, "E0101", d.Code)
	assert.Equal(t, protocol.DiagnosticSeverityError, d.Severity)
	assert.Equal(t, uint32(0), d.Range.Start.Line)
	assert.Equal(t, uint32(11), d.Range.Start.Character)
	assert.Equal(t, uint32(12), d.Range.End.Character)

	// 语法错误时格式化不产生编辑
	var edits []protocol.TextEdit
	require.NoError(t, c.call(methodFormatting, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: u},
	}, &edits))
	assert.Empty(t, edits)

	// 修正后诊断清空
	c.notify(methodDidChange, &protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{Version: 2, TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: u}},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "<?php\n$a=1;\n"}},
	})
	assert.Empty(t, c.nextDiagnostics().Diagnostics)

	require.NoError(t, c.call(methodFormatting, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: u},
		Options:      protocol.FormattingOptions{TabSize: 2, InsertSpaces: true},
	}, &edits))
	require.Len(t, edits, 1)
	assert.Equal(t, "<?php\n$a = 1;\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, edits[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 0}, edits[0].Range.End)

	// 已格式化的文档
	c.notify(methodDidChange, &protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{Version: 3, TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: u}},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "<?php\nfunction f() {\n    $x=1;\n}\n"}},
	})
	c.nextDiagnostics()

	require.NoError(t, c.call(methodRangeFormatting, &protocol.DocumentRangeFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: u},
		Range: protocol.Range{
			Start: protocol.Position{Line: 2, Character: 0},
			End:   protocol.Position{Line: 2, Character: 9},
		},
		Options: protocol.FormattingOptions{TabSize: 4, InsertSpaces: true},
	}, &edits))
	require.Len(t, edits, 1)
	assert.Equal(t, "    $x = 1;\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 2, Character: 0}, edits[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 3, Character: 0}, edits[0].Range.End)

	// 未实现的方法
	err := c.call("textDocument/hover", struct{}{}, nil)
	assert.Error(t, err)

	c.notify(methodDidClose, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: u},
	})
	assert.Empty(t, c.nextDiagnostics().Diagnostics)

	require.NoError(t, c.call(methodShutdown, nil, nil))
	c.notify(methodExit, nil)

	select {
	case err := <-c.done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not exit")
	}
}

func TestServerRejectsAfterShutdown(t *testing.T) {
	c := startServer(t)
	require.NoError(t, c.call(methodShutdown, nil, nil))

	var edits []protocol.TextEdit
	err := c.call(methodFormatting, &protocol.DocumentFormattingParams{}, &edits)
	assert.Error(t, err)
}

func TestFormatDocumentUnchanged(t *testing.T) {
	t.Parallel()
	s := NewServer(nil, nil)
	doc := s.documents.Open("file:///x/a.php", "<?php\n$a = 1;\n", 1, s.options())
	assert.Empty(t, s.formatDocument(doc, protocol.FormattingOptions{}))
	assert.Nil(t, doc.ParseErr)
}

func TestFormatRange(t *testing.T) {
	t.Parallel()
	s := NewServer(nil, nil)
	doc := s.documents.Open("file:///x/a.php", "<?php\nif ($a) {\n  echo  1;\n  echo 2;\n}", 1, s.options())

	tests := []struct {
		name  string
		r     protocol.Range
		edits int
		text  string
	}{
		{
			name:  "dirty line",
			r:     protocol.Range{Start: protocol.Position{Line: 2}, End: protocol.Position{Line: 3}},
			edits: 1,
			text:  "  echo 1;\n",
		},
		{
			name: "clean line",
			r:    protocol.Range{Start: protocol.Position{Line: 3}, End: protocol.Position{Line: 3, Character: 9}},
		},
		{
			name: "past end",
			r:    protocol.Range{Start: protocol.Position{Line: 10}, End: protocol.Position{Line: 12}},
		},
		{
			name: "not parseable",
			r:    protocol.Range{Start: protocol.Position{Line: 1}, End: protocol.Position{Line: 1, Character: 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits := s.formatRange(doc, tt.r, protocol.FormattingOptions{})
			require.Len(t, edits, tt.edits)
			if tt.edits > 0 {
				assert.Equal(t, tt.text, edits[0].NewText)
			}
		})
	}
}

func TestConvertDiagnosticsUTF16(t *testing.T) {
	t.Parallel()
	s := NewServer(nil, nil)
	// "é" 占两个字节，"😀" 占四个字节和两个 UTF-16 码元
	doc := s.documents.Open("file:///x/a.php", "<?php $é😀 = );", 1, s.options())
	diags := convertDiagnostics(doc)
	require.Len(t, diags, 1)
	// ")" 前有 "<?php $é😀 = "：13 个码元
	assert.Equal(t, uint32(13), diags[0].Range.Start.Character)
	assert.Equal(t, uint32(14), diags[0].Range.End.Character)
}

func TestUTF16Len(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint32(0), utf16Len(""))
	assert.Equal(t, uint32(3), utf16Len("abc"))
	assert.Equal(t, uint32(2), utf16Len("中文"))
	assert.Equal(t, uint32(2), utf16Len("😀"))
	assert.Equal(t, uint32(1), utf16Column("é!", 2))
	assert.Equal(t, uint32(2), utf16Column("é!", 10))
}

func TestURIToPath(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "b.php")
	assert.Equal(t, p, uriToPath(string(uri.File(p))))
	assert.Equal(t, "untitled:1", uriToPath("untitled:1"))
}

func TestLeadingSpaces(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, leadingSpaces("    x", 2))
	assert.Equal(t, 3, leadingSpaces("\t x", 2))
	assert.Equal(t, 0, leadingSpaces("   ", 2))
}
