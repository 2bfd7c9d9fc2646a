// Package astjson 是语法树唯一的外部表示：JSON 编码与解码。
//
// 每个节点是一个对象：
//
//	{"kind": "Assignment", "range": {...}, "leading": [...], "trailing": [...], "left": {...}, "operator": "=", ...}
//
// 载荷字段名为 snake_case；零值字段省略；修饰枚举以其关键字文本表示。
// 解码直接在目标 Arena 中分配节点、载荷与字符串。
package astjson

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/segmentio/encoding/json"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/token"
)

var (
	nodeType       = reflect.TypeFor[*ast.Node]()
	listType       = reflect.TypeFor[[]*ast.Node]()
	visibilityList = reflect.TypeFor[[]ast.Visibility]()
	stringerType   = reflect.TypeFor[fmt.Stringer]()
)

// 节点对象中的保留键
const (
	keyKind     = "kind"
	keyRange    = "range"
	keyLeading  = "leading"
	keyTrailing = "trailing"
)

type position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

type span struct {
	Start position `json:"start"`
	End   position `json:"end"`
}

// ============================================================================
// 编码
// ============================================================================

// Marshal 把节点编码为 JSON
func Marshal(n *ast.Node) ([]byte, error) {
	e := &encoder{}
	e.node(n)
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

// MarshalIndent 与 Marshal 相同，输出带缩进
func MarshalIndent(n *ast.Node, prefix, indent string) ([]byte, error) {
	raw, err := Marshal(n)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
	err error
}

func (e *encoder) node(n *ast.Node) {
	if n == nil {
		e.buf.WriteString("null")
		return
	}
	e.buf.WriteByte('{')
	e.key(keyKind, true)
	e.value(n.Kind.String())

	if n.Range != nil {
		e.key(keyRange, false)
		e.value(span{
			Start: position(n.Range.Start),
			End:   position(n.Range.End),
		})
	}
	if list := n.LeadingNodes(); len(list) > 0 {
		e.key(keyLeading, false)
		e.list(list)
	}
	if list := n.TrailingNodes(); len(list) > 0 {
		e.key(keyTrailing, false)
		e.list(list)
	}

	v := reflect.ValueOf(n.Data).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		if f.IsZero() || (f.Kind() == reflect.Slice && f.Len() == 0) {
			continue
		}
		e.key(snake(t.Field(i).Name), false)
		e.field(f)
	}
	e.buf.WriteByte('}')
}

func (e *encoder) list(list []*ast.Node) {
	e.buf.WriteByte('[')
	for i, n := range list {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.node(n)
	}
	e.buf.WriteByte(']')
}

func (e *encoder) field(f reflect.Value) {
	switch f.Type() {
	case nodeType:
		e.node(f.Interface().(*ast.Node))
		return
	case listType:
		e.list(f.Interface().([]*ast.Node))
		return
	case visibilityList:
		names := make([]string, f.Len())
		for i := range names {
			names[i] = f.Index(i).Interface().(ast.Visibility).String()
		}
		e.value(names)
		return
	}
	if f.Type().Implements(stringerType) && f.Kind() == reflect.Uint8 {
		e.value(f.Interface().(fmt.Stringer).String())
		return
	}
	e.value(f.Interface())
}

func (e *encoder) key(name string, first bool) {
	if !first {
		e.buf.WriteByte(',')
	}
	e.value(name)
	e.buf.WriteByte(':')
}

func (e *encoder) value(v any) {
	if e.err != nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		e.err = err
		return
	}
	e.buf.Write(raw)
}

// snake IsNullsafe -> is_nullsafe
func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ============================================================================
// 解码
// ============================================================================

// Unmarshal 把 JSON 解码为 a 中的一棵树
//
// 未知的 kind、未知字段或类型不符都会返回错误。
func Unmarshal(data []byte, a *ast.Arena) (*ast.Node, error) {
	d := &decoder{arena: a}
	return d.node(json.RawMessage(data), "$")
}

type decoder struct {
	arena *ast.Arena
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

func (d *decoder) node(raw json.RawMessage, path string) (*ast.Node, error) {
	if isNull(raw) {
		return nil, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("astjson: %s: %w", path, err)
	}

	var name string
	if err := json.Unmarshal(obj[keyKind], &name); err != nil {
		return nil, fmt.Errorf("astjson: %s: missing kind", path)
	}
	kind, ok := ast.LookupKind(name)
	if !ok {
		return nil, fmt.Errorf("astjson: %s: unknown kind %q", path, name)
	}
	data := d.arena.NewData(kind)
	n := d.arena.Node(data)
	path += "." + name

	if r, ok := obj[keyRange]; ok && !isNull(r) {
		var s span
		if err := json.Unmarshal(r, &s); err != nil {
			return nil, fmt.Errorf("astjson: %s.range: %w", path, err)
		}
		n.Range = d.arena.Span(token.Position(s.Start), token.Position(s.End))
	}
	if r, ok := obj[keyLeading]; ok {
		list, err := d.list(r, path+".leading")
		if err != nil {
			return nil, err
		}
		n.AddLeading(d.arena, list...)
	}
	if r, ok := obj[keyTrailing]; ok {
		list, err := d.list(r, path+".trailing")
		if err != nil {
			return nil, err
		}
		n.AddTrailing(d.arena, list...)
	}

	v := reflect.ValueOf(data).Elem()
	t := v.Type()
	known := map[string]bool{keyKind: true, keyRange: true, keyLeading: true, keyTrailing: true}
	for i := 0; i < t.NumField(); i++ {
		key := snake(t.Field(i).Name)
		known[key] = true
		r, ok := obj[key]
		if !ok {
			continue
		}
		if err := d.field(v.Field(i), r, path+"."+key); err != nil {
			return nil, err
		}
	}
	for key := range obj {
		if !known[key] {
			return nil, fmt.Errorf("astjson: %s: unknown field %q", path, key)
		}
	}
	return n, nil
}

func (d *decoder) list(raw json.RawMessage, path string) ([]*ast.Node, error) {
	if isNull(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("astjson: %s: %w", path, err)
	}
	out := d.arena.NewList(len(items))
	for i, item := range items {
		n, err := d.node(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (d *decoder) field(f reflect.Value, raw json.RawMessage, path string) error {
	switch f.Type() {
	case nodeType:
		n, err := d.node(raw, path)
		if err != nil {
			return err
		}
		f.Set(reflect.ValueOf(n))
		return nil
	case listType:
		list, err := d.list(raw, path)
		if err != nil {
			return err
		}
		f.Set(reflect.ValueOf(list))
		return nil
	case visibilityList:
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			return fmt.Errorf("astjson: %s: %w", path, err)
		}
		out := make([]ast.Visibility, 0, len(names))
		for _, name := range names {
			v := reflect.New(reflect.TypeFor[ast.Visibility]()).Elem()
			if err := enumValue(v, name, path); err != nil {
				return err
			}
			out = append(out, v.Interface().(ast.Visibility))
		}
		f.Set(reflect.ValueOf(out))
		return nil
	}

	switch f.Kind() {
	case reflect.String:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("astjson: %s: %w", path, err)
		}
		f.SetString(d.arena.Str(s))
	case reflect.Bool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("astjson: %s: %w", path, err)
		}
		f.SetBool(b)
	case reflect.Uint8:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("astjson: %s: %w", path, err)
		}
		return enumValue(f, s, path)
	default:
		return fmt.Errorf("astjson: %s: unsupported field type %s", path, f.Type())
	}
	return nil
}

// enumValue 按关键字文本反查修饰枚举的取值
func enumValue(f reflect.Value, name, path string) error {
	probe := reflect.New(f.Type()).Elem()
	for i := uint64(0); i < 32; i++ {
		probe.SetUint(i)
		if probe.Interface().(fmt.Stringer).String() == name {
			f.SetUint(i)
			return nil
		}
	}
	return fmt.Errorf("astjson: %s: unknown %s %q", path, f.Type().Name(), name)
}
