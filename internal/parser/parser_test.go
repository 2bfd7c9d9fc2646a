package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/ast/build"
	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/parser"
	"github.com/tangzhangming/phpfmt/internal/token"
)

// parse 解析源码，失败时终止测试
func parse(t *testing.T, src string) (*ast.Arena, *ast.Node) {
	t.Helper()
	a, root, err := parser.Parse(src, parser.Config{})
	require.NoError(t, err, "source: %q", src)
	require.NotNil(t, root)
	return a, root
}

// assertProgram 比较解析结果与期望的蓝图，忽略范围
func assertProgram(t *testing.T, src string, want build.Program) {
	t.Helper()
	a, root := parse(t, src)
	expected := want.Build(a)
	if diff := ast.Diff(expected, root); diff != "" {
		t.Errorf("source %q\n%s\ngot: %s", src, diff, ast.Sprint(root))
	}
}

func lexTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := lexer.Lex(src, lexer.Config{Mode: lexer.ModeCode})
	require.NoError(t, err)
	return tokens
}

func code(children ...build.Blueprint) build.Program {
	return build.Program{Children: children}
}

func TestParseBasics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want build.Program
	}{
		{
			name: "assignment",
			src:  "$a = 1;",
			want: code(build.Assignment{Left: build.Var("a"), Operator: "=", Right: build.Num("1")}),
		},
		{
			name: "short array",
			src:  "[1, 2, 3];",
			want: code(build.Array{IsShort: true, Items: build.Stmts(
				build.Item(build.Num("1")), build.Item(build.Num("2")), build.Item(build.Num("3")),
			)}),
		},
		{
			name: "long array with keys",
			src:  "array('a' => 1, 2);",
			want: code(build.Array{Items: build.Stmts(
				build.ArrayItem{Key: build.Str("a"), Value: build.Num("1")},
				build.Item(build.Num("2")),
			)}),
		},
		{
			name: "call",
			src:  "foo($first, $second, $third);",
			want: code(build.Call{Callee: build.Ident("foo"), Arguments: build.Stmts(
				build.Arg(build.Var("first")), build.Arg(build.Var("second")), build.Arg(build.Var("third")),
			)}),
		},
		{
			name: "named argument",
			src:  "foo(1, name: 'x');",
			want: code(build.Call{Callee: build.Ident("foo"), Arguments: build.Stmts(
				build.Arg(build.Num("1")),
				build.CallArgument{Name: "name", Value: build.Str("x")},
			)}),
		},
		{
			name: "first class callable",
			src:  "Foo::bar(...);",
			want: code(build.Call{
				Callee:    build.StaticLookup{Left: build.Ident("Foo"), Right: build.Ident("bar")},
				Arguments: build.Stmts(build.Arg(build.Variadic{})),
			}),
		},
		{
			name: "member chain",
			src:  "$a->b()?->c;",
			want: code(build.ObjectAccess{
				Left:       build.Call{Callee: build.ObjectAccess{Left: build.Var("a"), Right: build.Ident("b")}},
				Right:      build.Ident("c"),
				IsNullsafe: true,
			}),
		},
		{
			name: "this",
			src:  "$this->x[0];",
			want: code(build.ArrayLookup{
				Left:  build.ObjectAccess{Left: build.This{}, Right: build.Ident("x")},
				Right: build.Num("0"),
			}),
		},
		{
			name: "new",
			src:  "new Foo($x);",
			want: code(build.New{Value: build.Call{
				Callee:    build.Ident("Foo"),
				Arguments: build.Stmts(build.Arg(build.Var("x"))),
			}}),
		},
		{
			name: "cast and silence",
			src:  "$a = (int) @$b;",
			want: code(build.Assignment{
				Left: build.Var("a"), Operator: "=",
				Right: build.Cast{Type: "int", Value: build.Silent{Value: build.Var("b")}},
			}),
		},
		{
			name: "post increment",
			src:  "$i++;",
			want: code(build.Post{Variable: build.Var("i"), Operator: "++"}),
		},
		{
			name: "return",
			src:  "return $x;",
			want: code(build.Return{Value: build.Var("x")}),
		},
		{
			name: "echo list",
			src:  "echo $a, 'b';",
			want: code(build.Echo{Values: build.Stmts(build.Var("a"), build.Str("b"))}),
		},
		{
			name: "match",
			src:  "match ($a) { 1, 2 => 'x', default => 'y' };",
			want: code(build.Match{Condition: build.Var("a"), Arms: build.Stmts(
				build.MatchArm{Conditions: build.Stmts(build.Num("1"), build.Num("2")), Expression: build.Str("x")},
				build.MatchArm{Expression: build.Str("y")},
			)}),
		},
		{
			name: "closure",
			src:  "$f = function ($x) use ($y) { return $x; };",
			want: code(build.Assignment{Left: build.Var("f"), Operator: "=", Right: build.AnonymousFunction{
				Parameters: build.Stmts(build.Parameter{Name: "x"}),
				Uses:       build.Stmts(build.Var("y")),
				Body:       build.Block{Statements: build.Stmts(build.Return{Value: build.Var("x")})},
			}}),
		},
		{
			name: "arrow function",
			src:  "fn($x) => $x + 1;",
			want: code(build.ArrowFunction{
				Parameters: build.Stmts(build.Parameter{Name: "x"}),
				Body:       build.Bin{Left: build.Var("x"), Operator: "+", Right: build.Num("1")},
			}),
		},
		{
			name: "double quoted interpolation",
			src:  `"a {$b} ${c}";`,
			want: code(build.Encapsed{Quote: `"`, Values: build.Stmts(
				build.EncapsedPart{Value: build.String{Value: "a "}},
				build.EncapsedPart{IsAdvanced: true, Value: build.Var("b")},
				build.EncapsedPart{Value: build.String{Value: " "}},
				build.EncapsedPart{Value: build.Variable{Name: build.Ident("c"), IsBraced: true}},
			)}),
		},
		{
			name: "plain double quoted",
			src:  `"abc";`,
			want: code(build.String{Quote: `"`, Value: "abc"}),
		},
		{
			name: "heredoc",
			src:  "<<<LBL\nhello $name\nLBL;\n",
			want: code(build.HereDoc{Label: "LBL", Values: build.Stmts(
				build.EncapsedPart{Value: build.String{Value: "hello "}},
				build.EncapsedPart{Value: build.Var("name")},
			)}),
		},
		{
			name: "heredoc with indented closer",
			src:  "<<<LBL\n    a $x\n    LBL;\n",
			want: code(build.HereDoc{Label: "LBL", Indent: "    ", Values: build.Stmts(
				build.EncapsedPart{Value: build.String{Value: "    a "}},
				build.EncapsedPart{Value: build.Var("x")},
			)}),
		},
		{
			name: "nowdoc with tab indented closer",
			src:  "<<<'EOT'\n\traw\n\tEOT;\n",
			want: code(build.NowDoc{Label: "EOT", Indent: "\t", Value: "\traw"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertProgram(t, tt.src, tt.want)
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	bin := func(l build.Blueprint, op string, r build.Blueprint) build.Bin {
		return build.Bin{Left: l, Operator: op, Right: r}
	}
	a, b, c := build.Var("a"), build.Var("b"), build.Var("c")

	tests := []struct {
		src  string
		want build.Blueprint
	}{
		{"1 + 2 * 3", bin(build.Num("1"), "+", bin(build.Num("2"), "*", build.Num("3")))},
		{"1 * 2 + 3", bin(bin(build.Num("1"), "*", build.Num("2")), "+", build.Num("3"))},
		{"1 - 2 - 3", bin(bin(build.Num("1"), "-", build.Num("2")), "-", build.Num("3"))},
		{"2 ** 3 ** 4", bin(build.Num("2"), "**", bin(build.Num("3"), "**", build.Num("4")))},
		{"$a ?? $b ?? $c", bin(a, "??", bin(b, "??", c))},
		{"$a || $b && $c", bin(a, "||", bin(b, "&&", c))},
		{"$a . $b + $c", bin(a, ".", bin(b, "+", c))},
		{"$a . $b . $c", bin(bin(a, ".", b), ".", c)},
		{"!$a && $b", bin(build.Negate{Value: a}, "&&", b)},
		{"!$a instanceof Foo", build.Negate{Value: bin(a, "instanceof", build.Ident("Foo"))}},
		{"$a && !$b instanceof Foo", bin(a, "&&", build.Negate{Value: bin(b, "instanceof", build.Ident("Foo"))})},
		{"-$a instanceof Foo", bin(build.Unary{Operator: "-", Value: a}, "instanceof", build.Ident("Foo"))},
		{"-$a ** 2", build.Unary{Operator: "-", Value: bin(a, "**", build.Num("2"))}},
		{"@$a ** 2", build.Silent{Value: bin(a, "**", build.Num("2"))}},
		{"-$a * 2", bin(build.Unary{Operator: "-", Value: a}, "*", build.Num("2"))},
		{"$a instanceof Foo", bin(a, "instanceof", build.Ident("Foo"))},
		{"$a ? $b : $c", build.Ternary{Condition: a, Valid: b, Invalid: c}},
		{"$a ?: $c", build.Ternary{Condition: a, Invalid: c}},
		{"($a + $b) * $c", bin(build.Parenthesis{Value: bin(a, "+", b)}, "*", c)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assertProgram(t, "$r = "+tt.src+";", code(build.Assignment{
				Left: build.Var("r"), Operator: "=", Right: tt.want,
			}))
		})
	}
}

// and、or、xor 的优先级低于赋值
func TestParseLooseLogical(t *testing.T) {
	a, b, c, d := build.Var("a"), build.Var("b"), build.Var("c"), build.Var("d")
	assign := build.Assignment{Left: a, Operator: "=", Right: b}

	tests := []struct {
		src  string
		want build.Blueprint
	}{
		{"$a = $b and $c;", build.Bin{Left: assign, Operator: "and", Right: c}},
		{"$a = $b AND $c or $d;", build.Bin{
			Left:     build.Bin{Left: assign, Operator: "and", Right: c},
			Operator: "or",
			Right:    d,
		}},
		{"$a = $b xor $c;", build.Bin{Left: assign, Operator: "xor", Right: c}},
		{"$a = ($b or $c);", build.Assignment{Left: a, Operator: "=", Right: build.Parenthesis{
			Value: build.Bin{Left: b, Operator: "or", Right: c},
		}}},
		{"$a = $b || $c;", build.Assignment{Left: a, Operator: "=", Right: build.Bin{Left: b, Operator: "||", Right: c}}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assertProgram(t, tt.src, code(tt.want))
		})
	}
}

func TestParseAssignmentChain(t *testing.T) {
	assertProgram(t, "$a = $b += 2;", code(build.Assignment{
		Left: build.Var("a"), Operator: "=",
		Right: build.Assignment{Left: build.Var("b"), Operator: "+=", Right: build.Num("2")},
	}))
}

func TestParseControlFlow(t *testing.T) {
	echo := func(v string) build.Echo {
		return build.Echo{Values: build.Stmts(build.Num(v))}
	}

	tests := []struct {
		name string
		src  string
		want build.Program
	}{
		{
			name: "short if",
			src:  "if ($x):\n  echo 1;\nendif;",
			want: code(build.If{
				Condition: build.Var("x"),
				Valid:     build.Block{Statements: build.Stmts(echo("1"))},
				IsShort:   true,
			}),
		},
		{
			name: "if elseif else",
			src:  "if ($a) { echo 1; } elseif ($b) { echo 2; } else { echo 3; }",
			want: code(build.If{
				Condition: build.Var("a"),
				Valid:     build.Block{Statements: build.Stmts(echo("1"))},
				Invalid: build.If{
					Condition: build.Var("b"),
					Valid:     build.Block{Statements: build.Stmts(echo("2"))},
					Invalid:   build.Else{Body: build.Block{Statements: build.Stmts(echo("3"))}},
				},
			}),
		},
		{
			name: "while",
			src:  "while ($i) { $i--; }",
			want: code(build.While{
				Condition: build.Var("i"),
				Body:      build.Block{Statements: build.Stmts(build.Post{Variable: build.Var("i"), Operator: "--"})},
			}),
		},
		{
			name: "empty for",
			src:  "for ($i = 0; $i < 3; $i++);",
			want: code(build.For{
				Inits:      build.Stmts(build.Assignment{Left: build.Var("i"), Operator: "=", Right: build.Num("0")}),
				Conditions: build.Stmts(build.Bin{Left: build.Var("i"), Operator: "<", Right: build.Num("3")}),
				Steps:      build.Stmts(build.Post{Variable: build.Var("i"), Operator: "++"}),
				BodyType:   ast.BodyEmpty,
			}),
		},
		{
			name: "foreach",
			src:  "foreach ($a as $k => $v) {}",
			want: code(build.Foreach{
				Source: build.Var("a"),
				Key:    build.Var("k"),
				Value:  build.Var("v"),
				Body:   build.Block{},
			}),
		},
		{
			name: "switch",
			src:  "switch ($a) { case 1: echo 1; break; default: echo 2; }",
			want: code(build.Switch{Condition: build.Var("a"), Cases: build.Stmts(
				build.Case{Condition: build.Num("1"), Body: build.Stmts(echo("1"), build.Break{})},
				build.Case{Body: build.Stmts(echo("2"))},
			)}),
		},
		{
			name: "try catch finally",
			src:  "try { foo(); } catch (A | B $e) { } finally { }",
			want: code(build.Try{
				Body: build.Block{Statements: build.Stmts(build.Call{Callee: build.Ident("foo")})},
				Catches: build.Stmts(build.Catch{
					Types:    build.Stmts(build.Ident("A"), build.Ident("B")),
					Variable: build.Var("e"),
					Body:     build.Block{},
				}),
				Finally: build.Finally{Body: build.Block{}},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertProgram(t, tt.src, tt.want)
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want build.Program
	}{
		{
			name: "promoted constructor parameter",
			src:  "class A { function __construct(public int $x = 0) {} }",
			want: code(build.Class{Name: "A", Body: build.Stmts(build.Method{
				Name: "__construct",
				Parameters: build.Stmts(build.ConstructorParameter{
					Visibilities: []ast.Visibility{ast.VisibilityPublic},
					Parameter:    build.Parameter{Type: build.Type{Name: "int"}, Name: "x", Default: build.Num("0")},
				}),
				Body: build.Block{},
			})}),
		},
		{
			name: "function",
			src:  "function &foo(?string $s, ...$rest): int|false { }",
			want: code(build.Function{
				IsRef: true,
				Name:  "foo",
				Parameters: build.Stmts(
					build.Parameter{Type: build.Type{Name: "string", IsNullable: true}, Name: "s"},
					build.Parameter{IsVariadic: true, Name: "rest"},
				),
				ReturnType: build.UnionType{Types: build.Stmts(build.Type{Name: "int"}, build.Type{Name: "false"})},
				Body:       build.Block{},
			}),
		},
		{
			name: "class members",
			src:  "final class A extends B implements C, D { use T; const X = 1; public static function f() {} abstract protected function g(); }",
			want: code(build.Class{
				Inheritance: ast.InheritanceFinal,
				Name:        "A",
				Extends:     build.Ident("B"),
				Implements:  build.Stmts(build.Ident("C"), build.Ident("D")),
				Body: build.Stmts(
					build.TraitUse{Traits: build.Stmts(build.Ident("T"))},
					build.ConstProperty{Items: build.Stmts(build.ConstItem{Name: "X", Value: build.Num("1")})},
					build.Method{Visibility: ast.VisibilityPublic, IsStatic: true, Name: "f", Body: build.Block{}},
					build.Method{Inheritance: ast.InheritanceAbstract, Visibility: ast.VisibilityProtected, Name: "g"},
				),
			}),
		},
		{
			name: "interface signatures",
			src:  "interface I { function f(): void; public function g(): static; function h(int $x): int; }",
			want: code(build.Interface{Name: "I", Body: build.Stmts(
				build.Method{Name: "f", ReturnType: build.Type{Name: "void"}},
				build.Method{Visibility: ast.VisibilityPublic, Name: "g", ReturnType: build.Type{Name: "static"}},
				build.Method{
					Name:       "h",
					Parameters: build.Stmts(build.Parameter{Type: build.Type{Name: "int"}, Name: "x"}),
					ReturnType: build.Type{Name: "int"},
				},
			)}),
		},
		{
			name: "abstract signatures",
			src:  "abstract class A { abstract function f(): array; abstract protected function g(): B; }",
			want: code(build.Class{
				Inheritance: ast.InheritanceAbstract,
				Name:        "A",
				Body: build.Stmts(
					build.Method{Inheritance: ast.InheritanceAbstract, Name: "f", ReturnType: build.Type{Name: "array"}},
					build.Method{
						Inheritance: ast.InheritanceAbstract,
						Visibility:  ast.VisibilityProtected,
						Name:        "g",
						ReturnType:  build.Type{Name: "B"},
					},
				),
			}),
		},
		{
			name: "typed class constant",
			src:  "class A { const int X = 1, Y = 2; }",
			want: code(build.Class{Name: "A", Body: build.Stmts(build.ConstProperty{
				Type: build.Type{Name: "int"},
				Items: build.Stmts(
					build.ConstItem{Name: "X", Value: build.Num("1")},
					build.ConstItem{Name: "Y", Value: build.Num("2")},
				),
			})}),
		},
		{
			name: "untyped property",
			src:  "class A { private $x = 1, $y; }",
			want: code(build.Class{Name: "A", Body: build.Stmts(build.Property{
				Visibilities: []ast.Visibility{ast.VisibilityPrivate},
				Items: build.Stmts(
					build.PropertyItem{Name: "x", Value: build.Num("1")},
					build.PropertyItem{Name: "y"},
				),
			})}),
		},
		{
			name: "typed property",
			src:  "class A { public readonly int $x; }",
			want: code(build.Class{Name: "A", Body: build.Stmts(build.Property{
				Visibilities: []ast.Visibility{ast.VisibilityPublic},
				Modifier:     ast.ModifierReadonly,
				Type:         build.Type{Name: "int"},
				Items:        build.Stmts(build.PropertyItem{Type: build.Type{Name: "int"}, Name: "x"}),
			})}),
		},
		{
			name: "enum",
			src:  "enum Suit: string { case Hearts = 'H'; }",
			want: code(build.Enum{
				Name:       "Suit",
				BackedType: build.Type{Name: "string"},
				Body:       build.Stmts(build.EnumItem{Name: "Hearts", Value: build.Str("H")}),
			}),
		},
		{
			name: "grouped use",
			src:  `use Foo\{Bar, Baz as Q};`,
			want: code(build.Use{Prefix: "Foo", Items: build.Stmts(
				build.UseItem{Name: "Bar"},
				build.UseItem{Name: "Baz", Alias: "Q"},
			)}),
		},
		{
			name: "namespace",
			src:  "namespace App;\n$a = 1;",
			want: code(build.Namespace{Name: "App", Body: build.Block{Statements: build.Stmts(
				build.Assignment{Left: build.Var("a"), Operator: "=", Right: build.Num("1")},
			)}}),
		},
		{
			name: "declare",
			src:  "declare(strict_types=1);",
			want: code(build.Declare{
				Arguments: build.Stmts(build.DeclareArgument{Name: "strict_types", Value: build.Num("1")}),
				BodyType:  ast.BodyEmpty,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertProgram(t, tt.src, tt.want)
		})
	}
}

func TestParseTrivia(t *testing.T) {
	assign := build.Assignment{Left: build.Var("a"), Operator: "=", Right: build.Num("1")}

	t.Run("leading and trailing comments", func(t *testing.T) {
		assertProgram(t, "// lead\n$a = 1; // trail\n", code(
			build.WithTrivia{
				Node:     assign,
				Leading:  build.Stmts(build.CommentLine{Text: "// lead"}),
				Trailing: build.Stmts(build.CommentLine{Text: "// trail"}),
			},
		))
	})

	t.Run("doc comment before function", func(t *testing.T) {
		assertProgram(t, "/** doc */\nfunction f() {}", code(
			build.Lead(build.Function{Name: "f", Body: build.Block{}}, build.CommentDoc{Text: "/** doc */"}),
		))
	})

	t.Run("attribute before class", func(t *testing.T) {
		attr := build.Attribute{Items: build.Stmts(build.AttributeItem{
			Name:      "Route",
			Arguments: build.Stmts(build.Arg(build.Str("/"))),
		})}
		assertProgram(t, "#[Route('/')]\nclass A {}", code(
			build.Lead(build.Class{Name: "A"}, attr),
		))
	})

	t.Run("comment at end of block", func(t *testing.T) {
		assertProgram(t, "function f() {\n  // only\n}", code(
			build.Function{Name: "f", Body: build.Block{Statements: build.Stmts(build.CommentLine{Text: "// only"})}},
		))
	})
}

func TestParseInline(t *testing.T) {
	_, root := parse(t, "<?php echo 1; ?>\n<p>hi</p>\n<?php echo 2;")

	prog := root.AsProgram()
	require.NotNil(t, prog)
	assert.Equal(t, "<?php", prog.Opener)
	require.Len(t, prog.Children, 3)

	assert.Equal(t, ast.KindEcho, prog.Children[0].Kind)
	inline := prog.Children[1].AsInline()
	require.NotNil(t, inline)
	assert.Equal(t, "?>", inline.Closer)
	assert.Contains(t, inline.Text, "<p>hi</p>")
	assert.Equal(t, "<?php", inline.Opener)
	assert.Equal(t, ast.KindEcho, prog.Children[2].Kind)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind parser.ErrorKind
	}{
		{"missing operand", "$a = ;", parser.ErrUnexpectedToken},
		{"unclosed call", "foo(", parser.ErrEOF},
		{"unclosed block", "function f() {", parser.ErrEOF},
		{"class without name", "class {}", parser.ErrUnexpectedToken},
		{"missing semicolon", "$a = 1 $b = 2;", parser.ErrUnexpectedToken},
		{"try without catch", "try {} echo 1;", parser.ErrUnexpectedToken},
		{"too deep", strings.Repeat("(", 400) + "1" + strings.Repeat(")", 400) + ";", parser.ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parser.Parse(tt.src, parser.Config{})
			require.Error(t, err)

			var perr *parser.Error
			require.True(t, errors.As(err, &perr), "error %v is not *parser.Error", err)
			assert.Equal(t, tt.kind, perr.Kind, perr.Message)
			assert.NotEmpty(t, perr.Error())
		})
	}
}

func TestParseExpressionFragment(t *testing.T) {
	a := ast.NewArena(0)
	tokens := lexTokens(t, "$a + 1")
	n, err := parser.New(tokens, a).ParseExpression()
	require.NoError(t, err)

	want := build.Bin{Left: build.Var("a"), Operator: "+", Right: build.Num("1")}.Build(a)
	assert.True(t, ast.Equal(want, n), ast.Diff(want, n))
}

// 前序遍历的节点顺序与源码起始位置一致
func TestParsePreorderMatchesSource(t *testing.T) {
	sources := []string{
		"$a = 1 + 2 * 3;",
		"foo($a, bar($b), [1, 'x' => $c]);",
		"if ($a) { echo 1; } elseif ($b) { echo 2; } else { echo 3; }",
		"class A extends B { public function f(int $x): void { return $x->y()[0]; } }",
		"foreach ($list as $k => $v) { $sum += $v ?? 0; }",
		"$f = fn($x) => match ($x) { 1 => 'a', default => 'b' };",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			_, root := parse(t, src)
			last := -1
			for _, n := range ast.Walk(root) {
				if n.Range == nil {
					continue
				}
				offset := n.Range.Start.Offset
				assert.GreaterOrEqual(t, offset, last, "node %s starts before its predecessor", n.Kind)
				last = offset
			}
		})
	}
}
