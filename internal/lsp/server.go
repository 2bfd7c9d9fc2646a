package lsp

import (
	"context"
	stderrors "errors"
	"io"
	"sync"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/tangzhangming/phpfmt/internal/config"
	"github.com/tangzhangming/phpfmt/internal/formatter"
)

// LSP 方法名
const (
	methodInitialize         = "initialize"
	methodInitialized        = "initialized"
	methodShutdown           = "shutdown"
	methodExit               = "exit"
	methodDidOpen            = "textDocument/didOpen"
	methodDidChange          = "textDocument/didChange"
	methodDidClose           = "textDocument/didClose"
	methodDidSave            = "textDocument/didSave"
	methodFormatting         = "textDocument/formatting"
	methodRangeFormatting    = "textDocument/rangeFormatting"
	methodPublishDiagnostics = "textDocument/publishDiagnostics"
	methodCancelRequest      = "$/cancelRequest"
	methodSetTrace           = "$/setTrace"
)

// Server 格式化语言服务器
//
// 只提供诊断、整篇格式化和选区格式化。日志只写到 logger，标准输出
// 留给协议本身。
type Server struct {
	// Version 在 initialize 响应的 serverInfo 中返回
	Version string

	logger    *zap.Logger
	documents *DocumentManager
	conn      jsonrpc2.Conn

	mu   sync.RWMutex
	opts *formatter.Options

	initialized atomic.Bool
	shutdown    atomic.Bool
	exitOnce    sync.Once
	exited      chan struct{}
}

// NewServer 创建服务器，opts 为 nil 时使用默认格式化选项
func NewServer(logger *zap.Logger, opts *formatter.Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts == nil {
		opts = formatter.DefaultOptions()
	}
	return &Server{
		Version:   "dev",
		logger:    logger,
		documents: NewDocumentManager(),
		opts:      opts,
		exited:    make(chan struct{}),
	}
}

// Serve 在 rwc 上运行服务器，直到收到 exit、连接关闭或 ctx 取消
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	s.conn = conn
	s.logger.Info("language server started")

	conn.Go(ctx, s.handle)

	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	case <-s.exited:
		conn.Close()
		<-conn.Done()
		s.logger.Info("language server exited")
		return nil
	case <-conn.Done():
		if err := conn.Err(); err != nil && !stderrors.Is(err, io.EOF) && !s.shutdown.Load() {
			s.logger.Error("connection failed", zap.Error(err))
			return err
		}
		return nil
	}
}

func (s *Server) options() *formatter.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// handle 分发请求。返回错误会断开连接，所以处理失败都通过 reply 回给客户端。
func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.logger.Debug("received", zap.String("method", req.Method()))

	if s.shutdown.Load() && req.Method() != methodExit {
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidRequest, "server is shutting down"))
	}

	switch req.Method() {
	case methodInitialize:
		return s.handleInitialize(ctx, reply, req)
	case methodInitialized:
		s.initialized.Store(true)
		return reply(ctx, nil, nil)
	case methodShutdown:
		s.shutdown.Store(true)
		return reply(ctx, nil, nil)
	case methodExit:
		s.exitOnce.Do(func() { close(s.exited) })
		return reply(ctx, nil, nil)
	case methodDidOpen:
		return s.handleDidOpen(ctx, reply, req)
	case methodDidChange:
		return s.handleDidChange(ctx, reply, req)
	case methodDidClose:
		return s.handleDidClose(ctx, reply, req)
	case methodDidSave, methodCancelRequest, methodSetTrace:
		return reply(ctx, nil, nil)
	case methodFormatting:
		return s.handleFormatting(ctx, reply, req)
	case methodRangeFormatting:
		return s.handleRangeFormatting(ctx, reply, req)
	}
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

// decode 解析请求参数，失败时回复 InvalidParams
func decode(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, v interface{}) (bool, error) {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return false, reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error()))
	}
	return true, nil
}

// ============================================================================
// 生命周期
// ============================================================================

func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var p protocol.InitializeParams
	if ok, err := decode(ctx, reply, req, &p); !ok {
		return err
	}

	// 工作区有配置文件时以它为准
	if root := string(p.RootURI); root != "" {
		cfg, path, err := config.Load(uriToPath(root))
		switch {
		case err != nil:
			s.logger.Warn("ignoring config", zap.String("path", path), zap.Error(err))
		case path != "":
			s.mu.Lock()
			s.opts = cfg.FormatterOptions()
			s.mu.Unlock()
			s.logger.Info("loaded config", zap.String("path", path))
		}
	}

	result := map[string]interface{}{
		"capabilities": map[string]interface{}{
			"textDocumentSync": map[string]interface{}{
				"openClose": true,
				"change":    protocol.TextDocumentSyncKindFull,
				"save":      false,
			},
			"documentFormattingProvider":      true,
			"documentRangeFormattingProvider": true,
		},
		"serverInfo": map[string]interface{}{
			"name":    "phpfmt",
			"version": s.Version,
		},
	}
	return reply(ctx, result, nil)
}

// ============================================================================
// 文档同步
// ============================================================================

func (s *Server) handleDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var p protocol.DidOpenTextDocumentParams
	if ok, err := decode(ctx, reply, req, &p); !ok {
		return err
	}
	doc := s.documents.Open(string(p.TextDocument.URI), p.TextDocument.Text, int(p.TextDocument.Version), s.options())
	s.publishDiagnostics(ctx, doc)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var p protocol.DidChangeTextDocumentParams
	if ok, err := decode(ctx, reply, req, &p); !ok {
		return err
	}
	if len(p.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}

	// 全量同步，最后一次变更即为完整内容
	text := p.ContentChanges[len(p.ContentChanges)-1].Text
	docURI := string(p.TextDocument.URI)
	doc := s.documents.Replace(docURI, text, int(p.TextDocument.Version), s.options())
	if doc == nil {
		doc = s.documents.Open(docURI, text, int(p.TextDocument.Version), s.options())
	}
	s.publishDiagnostics(ctx, doc)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var p protocol.DidCloseTextDocumentParams
	if ok, err := decode(ctx, reply, req, &p); !ok {
		return err
	}
	docURI := string(p.TextDocument.URI)
	s.documents.Close(docURI)
	s.clearDiagnostics(ctx, docURI)
	return reply(ctx, nil, nil)
}

// ============================================================================
// 格式化
// ============================================================================

func (s *Server) handleFormatting(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var p protocol.DocumentFormattingParams
	if ok, err := decode(ctx, reply, req, &p); !ok {
		return err
	}
	doc := s.documents.Get(string(p.TextDocument.URI))
	if doc == nil {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}
	return reply(ctx, s.formatDocument(doc, p.Options), nil)
}

func (s *Server) handleRangeFormatting(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var p protocol.DocumentRangeFormattingParams
	if ok, err := decode(ctx, reply, req, &p); !ok {
		return err
	}
	doc := s.documents.Get(string(p.TextDocument.URI))
	if doc == nil {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}
	return reply(ctx, s.formatRange(doc, p.Range, p.Options), nil)
}
