package lsp

import (
	"strings"
	"sync"

	"github.com/tangzhangming/phpfmt/internal/formatter"
)

// Document 表示一个打开的文档
type Document struct {
	URI     string
	Content string
	Version int
	Lines   []string // 按行分割的内容

	// 最近一次解析的错误，nil 表示语法正确
	ParseErr error

	dirty bool
}

// DocumentManager 文档管理器
type DocumentManager struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewDocumentManager 创建文档管理器
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*Document),
	}
}

// Open 打开文档
func (dm *DocumentManager) Open(uri, content string, version int, opts *formatter.Options) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := &Document{
		URI:     uri,
		Content: content,
		Version: version,
		Lines:   splitLines(content),
		dirty:   true,
	}
	doc.parse(opts)
	dm.documents[uri] = doc
	return doc
}

// Close 关闭文档
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.documents, uri)
}

// Get 获取文档
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.documents[uri]
}

// Replace 用全量文本替换文档内容，返回更新后的文档
func (dm *DocumentManager) Replace(uri, content string, version int, opts *formatter.Options) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.documents[uri]
	if !ok {
		return nil
	}
	doc.Content = content
	doc.Lines = splitLines(content)
	doc.Version = version
	doc.dirty = true
	doc.parse(opts)
	return doc
}

// Len 打开的文档数
func (dm *DocumentManager) Len() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.documents)
}

// maxDocumentSize 文档大小限制（2MB），超出后不再解析
const maxDocumentSize = 2 * 1024 * 1024

// errTooLarge 超出大小限制时记录的错误
type errTooLarge struct{}

func (errTooLarge) Error() string { return "document too large to parse" }

// parse 解析文档，只保留错误
func (doc *Document) parse(opts *formatter.Options) {
	if !doc.dirty {
		return
	}
	doc.dirty = false

	if len(doc.Content) > maxDocumentSize {
		doc.ParseErr = errTooLarge{}
		return
	}
	_, _, doc.ParseErr = formatter.Parse(doc.Content, uriToPath(doc.URI), opts)
}

// GetLine 获取指定行（0 起）
func (doc *Document) GetLine(line int) string {
	if line < 0 || line >= len(doc.Lines) {
		return ""
	}
	return doc.Lines[line]
}

// splitLines 分割行，保留 \r 以外的内容
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
