package astjson_test

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/ast/astjson"
	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/parser"
)

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	_, root, err := parser.Parse(src, parser.Config{Lexer: lexer.Config{Mode: lexer.ModeCode}})
	require.NoError(t, err)
	return root
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	sources := []string{
		"$a = 1 + 2 * 3;",
		"// lead\nfunction &f(int ...$xs): ?array { return $xs; } // trail",
		"final class A extends B implements C { public function __construct(private readonly int $x) {} }",
		"class P { public string $name { get => $this->name; } }",
		"use function Foo\\bar as baz;",
		"for (;;): break; endfor;",
		"$s = \"a {$b->c} $d[0]\";",
		"#[Attr(1)]\nenum E: string { case A = 'a'; }",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			root := parse(t, src)
			data, err := astjson.Marshal(root)
			require.NoError(t, err)

			back, err := astjson.Unmarshal(data, ast.NewArena(0))
			require.NoError(t, err)
			assert.Empty(t, ast.Diff(root, back))
			assert.Equal(t, root.Range, back.Range)
		})
	}
}

func TestShape(t *testing.T) {
	t.Parallel()
	a := ast.NewArena(0)
	n := ast.Make(a, ast.Assignment{
		Left:     a.NewVariable("a"),
		Operator: "=",
		Right:    a.NewNumber("1"),
	})
	n.AddTrailing(a, ast.Make(a, ast.CommentLine{Text: "// c"}))

	data, err := astjson.Marshal(n)
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Equal(t, "Assignment", obj["kind"])
	assert.Equal(t, "=", obj["operator"])
	assert.NotContains(t, obj, "range")
	assert.NotContains(t, obj, "leading")
	assert.Len(t, obj["trailing"], 1)

	left := obj["left"].(map[string]any)
	assert.Equal(t, "Variable", left["kind"])
	assert.NotContains(t, left, "is_braced")
}

func TestEnumsAsText(t *testing.T) {
	t.Parallel()
	root := parse(t, "abstract class A { protected static function f() {} }")
	data, err := astjson.Marshal(root)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"inheritance":"abstract"`)
	assert.Contains(t, s, `"visibility":"protected"`)
	assert.Contains(t, s, `"is_static":true`)
}

func TestMarshalIndent(t *testing.T) {
	t.Parallel()
	a := ast.NewArena(0)
	data, err := astjson.MarshalIndent(a.NewIdentifier("x"), "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"kind\": \"Identifier\",\n  \"name\": \"x\"\n}", string(data))
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not json", `{`, "astjson: $"},
		{"missing kind", `{"name":"x"}`, "missing kind"},
		{"unknown kind", `{"kind":"Goose"}`, `unknown kind "Goose"`},
		{"unknown field", `{"kind":"Identifier","nom":"x"}`, `unknown field "nom"`},
		{"wrong type", `{"kind":"Identifier","name":1}`, "$.Identifier.name"},
		{"unknown enum", `{"kind":"Method","visibility":"secret"}`, `unknown Visibility "secret"`},
		{"bad child", `{"kind":"Return","value":{"kind":"Nope"}}`, "$.Return.value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := astjson.Unmarshal([]byte(tt.data), ast.NewArena(0))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUnmarshalNull(t *testing.T) {
	t.Parallel()
	n, err := astjson.Unmarshal([]byte("null"), ast.NewArena(0))
	require.NoError(t, err)
	assert.Nil(t, n)
}
