package errors

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tangzhangming/phpfmt/internal/i18n"
)

// ============================================================================
// 错误报告器
// ============================================================================

// Reporter 收集诊断并写出报告，可被多个 goroutine 同时使用
type Reporter struct {
	mu          sync.Mutex
	w           io.Writer
	formatter   *Formatter
	sourceCache map[string][]string
	diagnostics []*Diagnostic
}

// NewReporter 创建写到 w 的报告器
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:           w,
		formatter:   NewFormatter(),
		sourceCache: make(map[string][]string),
	}
}

// SetFormatter 设置格式化器
func (r *Reporter) SetFormatter(f *Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatter = f
}

// SetSource 登记源代码，报告时用来显示出错行
func (r *Reporter) SetSource(filename, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sourceCache[filename] = strings.Split(content, "\n")
}

// Report 写出一条诊断
func (r *Reporter) Report(d *Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
	fmt.Fprint(r.w, r.formatter.Format(d, r.sourceCache[d.File]))
}

// ReportError 报告一个词法或语法错误，source 为该文件内容
//
// 无法转换成诊断的错误按普通文本写出。返回是否写出了内容。
func (r *Reporter) ReportError(file, source string, err error) bool {
	if err == nil {
		return false
	}
	d, ok := FromError(file, err)
	if !ok {
		r.mu.Lock()
		defer r.mu.Unlock()
		fmt.Fprintf(r.w, "%s: %s: %v\n", r.formatter.colorize(LevelError.String(), errorStyle), file, err)
		return true
	}
	r.SetSource(file, source)
	r.Report(d)
	return true
}

// Diagnostics 返回已报告的诊断
func (r *Reporter) Diagnostics() []*Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Diagnostic(nil), r.diagnostics...)
}

// Summary 写出错误计数，没有错误时不输出
func (r *Reporter) Summary() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.diagnostics) == 0 {
		return
	}
	msg := i18n.T(i18n.MsgErrorCount, len(r.diagnostics))
	fmt.Fprintln(r.w, r.formatter.colorize(msg, errorStyle))
}
