package generator_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/generator"
	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/parser"
	"github.com/tangzhangming/phpfmt/internal/token"
)

func parseCode(t *testing.T, src string, mode lexer.Mode) *ast.Node {
	t.Helper()
	_, root, err := parser.Parse(src, parser.Config{Lexer: lexer.Config{Mode: mode}})
	require.NoError(t, err, "source: %q", src)
	return root
}

func generate(root *ast.Node, opts generator.Options) string {
	return generator.Generate([]*ast.Node{root}, opts)
}

// assertRoundTrip 生成的代码重新解析后结构不变，且再次生成结果相同
func assertRoundTrip(t *testing.T, src string, mode lexer.Mode, opts generator.Options) string {
	t.Helper()
	first := parseCode(t, src, mode)
	out := generate(first, opts)

	_, second, err := parser.Parse(out, parser.Config{Lexer: lexer.Config{Mode: mode}})
	require.NoError(t, err, "generated:\n%s", out)
	assert.Empty(t, ast.Diff(first, second), "source %q\ngenerated:\n%s", src, out)
	assert.Equal(t, out, generate(second, opts), "not idempotent for %q", src)
	return out
}

func TestGenerateSeeds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		max  int
		want string
	}{
		{"assignment", "$a = 1;", 0, "$a = 1;"},
		{"short array", "[1, 2, 3];", 0, "[1, 2, 3];"},
		{"short if", "if ($x):\n  echo 1;\nendif;", 0, "if ($x):\n  echo 1;\nendif;"},
		{"heredoc", "$s = <<<EOT\nhello $name\nEOT;", 0, "$s = <<<EOT\nhello $name\nEOT;"},
		{
			"promoted parameter",
			"class A { function __construct(public int $x = 0) {} }",
			0,
			"class A {\n  function __construct(public int $x = 0) {}\n}",
		},
		{
			"long call",
			"$veryLongFunctionName($argumentOne, $argumentTwo, $argumentThree, $argumentFour);",
			60,
			"$veryLongFunctionName(\n  $argumentOne,\n  $argumentTwo,\n  $argumentThree,\n  $argumentFour\n);",
		},
		{
			"if else",
			"if ($a) { echo 1; } else { echo 2; }",
			0,
			"if ($a) {\n  echo 1;\n} else {\n  echo 2;\n}",
		},
		{
			"elseif chain",
			"if ($a) { echo 1; } elseif ($b) { echo 2; }",
			0,
			"if ($a) {\n  echo 1;\n} elseif ($b) {\n  echo 2;\n}",
		},
		{
			"comments",
			"// lead\n$a = 1; // trail\n$b = 2;",
			0,
			"// lead\n$a = 1; // trail\n$b = 2;",
		},
		{
			"declarations are spaced",
			"function f() {} function g() {}",
			0,
			"function f() {}\n\nfunction g() {}",
		},
		{
			"closure argument hugs",
			"foo(function () { return 1; });",
			0,
			"foo(function () {\n  return 1;\n});",
		},
		{
			"match arms",
			"$r = match ($a) { 1, 2 => 'x', default => 'y' };",
			0,
			"$r = match ($a) {\n  1, 2 => 'x',\n  default => 'y'\n};",
		},
		{
			"negative of negative",
			"$a = -(-1); $b = - -$c;",
			0,
			"$a = -(-1);\n$b = - -$c;",
		},
		{
			"for loop",
			"for ($i = 0, $j = 1; $i < 3; $i++) {}",
			0,
			"for ($i = 0, $j = 1; $i < 3; $i++) {}",
		},
		{"infinite for", "for (;;);", 0, "for (;;);"},
		{
			"do while",
			"do { $i++; } while ($i < 3);",
			0,
			"do {\n  $i++;\n} while ($i < 3);",
		},
		{
			"try",
			"try { foo(); } catch (A|B $e) {} finally {}",
			0,
			"try {\n  foo();\n} catch (A|B $e) {} finally {}",
		},
		{"grouped use", `use Foo\{Bar, Baz as Q};`, 0, `use Foo\{Bar, Baz as Q};`},
		{"skipped list slot", "[, $b] = $pair;", 0, "[, $b] = $pair;"},
		{"indented heredoc closer", "$s = <<<EOT\n    a $x\n    EOT;", 0, "$s = <<<EOT\n    a $x\n    EOT;"},
		{"indented nowdoc closer", "$s = <<<'EOT'\n    a\n    EOT;", 0, "$s = <<<'EOT'\n    a\n    EOT;"},
		{
			"heredoc closer keeps indent in body",
			"function f() {\n$s = <<<EOT\n      a\n      EOT;\n}",
			0,
			"function f() {\n  $s = <<<EOT\n      a\n      EOT;\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := generator.DefaultOptions()
			if tt.max > 0 {
				opts.MaxLength = tt.max
			}
			got := assertRoundTrip(t, tt.src, lexer.ModeCode, opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateInline(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"trailing html", "<?php echo 1; ?>\n<p>hi</p>\n", "<?php\necho 1;\n?>\n<p>hi</p>\n"},
		{"echo tag", "<p><?= $a ?></p>", "<p><?= $a;\n?></p>"},
		{"bare opener", "<?php", "<?php"},
		{"html around code", "<ul><?php foreach ($xs as $x) { ?><li><?php } ?></ul>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assertRoundTrip(t, tt.src, lexer.ModeInline, generator.DefaultOptions())
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

var roundTripCorpus = []string{
	"$a = $b ?: $c;",
	"$a = $b ? $c : ($d ?? $e);",
	"$x = $a . $b . $c;",
	"$x = !$a && -$b || ~$c;",
	"$x = $a instanceof Foo;",
	"$a = $b and $c or $d; $x = !$y instanceof Foo; $z = -2 ** 2;",
	"$a += 1; $b ??= []; $c .= 'x';",
	"$a = &$b;",
	"list($a, list($b, $c)) = $x;",
	"[$a, [, $c]] = $x;",
	"['k' => $v, 'w' => &$w] = $x;",
	"$x = array(1, 'a' => array());",
	"$x = [...$a, ...$b];",
	"$f = static fn&($x): int => $x * 2;",
	"$f = function &() use (&$y, $z): ?int { return null; };",
	"$o = new class(1, 2) extends Base implements I { public function f() {} };",
	"$o = new static;",
	"$o = new ($factory);",
	"$v = $a::$b; $w = $a::LIMIT; $c = Foo::class;",
	"$v = $a->{$name}; $w = $a?->b?->c();",
	"$v = $$name; $w = ${'x'};",
	"$s = \"a $b c {$d->e} ${f} $g[0] $h[k] $i->j\";",
	"$s = 'it\\'s';",
	"$s = <<<'EOT'\nraw $text\nEOT;",
	"$s = <<<EOT\n  indented {$a['k']}\n\nEOT;",
	"$s = <<<EOT\nEOT;",
	"echo __CLASS__, __LINE__;",
	"print 'x';",
	"throw new Exception('boom');",
	"include 'a.php'; require_once __DIR__ . '/b.php';",
	"clone $a;",
	"$x = (string) $y; $z = (bool) $y;",
	"$x = @file('f');",
	"$a++; --$b;",
	"function gen() { yield; yield 1; yield $k => $v; yield from other(); }",
	"global $a, $b;",
	"function f() { static $n = 0, $m; }",
	"goto end; end: echo 1;",
	"while (true): $i++; endwhile;",
	"foreach ($xs as $x): echo $x; endforeach;",
	"for ($i = 0; $i < 3; $i++): echo $i; endfor;",
	"switch ($a): case 1: echo 1; break; endswitch;",
	"switch ($a) { case 1; case 2: echo 2; break 1; default: continue 2; }",
	"if ($a): echo 1; elseif ($b): echo 2; else: echo 3; endif;",
	"if ($a) echo 1; else echo 2;",
	"if ($a) { } else if ($b) { }",
	"declare(ticks=1) { echo 1; }",
	"declare(ticks=1): echo 1; enddeclare;",
	"namespace A\\B { function f() {} }",
	"namespace { $a = 1; }",
	"namespace App;\nuse A\\B as C, D;\nuse function E\\f;\nuse const F\\G;\nconst X = 1, Y = 2;",
	"abstract class A { abstract public function f(int ...$xs): array; final protected const X = 1; private static ?A $inst = null; var $legacy; }",
	"interface I extends J, K { public function f(); const Y = 2; }",
	"interface I { function f(): void; public static function make(): static; function g(): A; function h(): int; }",
	"trait T { use A, B { A::f insteadof B; B::f as protected g; h as i; } }",
	"enum E: int implements I { case A = 1; case B = 2; public function label(): string { return 'x'; } }",
	"final readonly class P { public function __construct(private readonly string $name, protected ?int $age = null) {} }",
	"function f(int|string $a, ?Foo $b, mixed $d = PHP_EOL) {}",
	"#[Attr] function f(#[Sensitive] $secret) {}",
	"#[A(1), B(name: 'x')]\nclass C { #[Inject] private $dep; }",
	"/** doc */\nfunction f() {}",
	"$a = [\n  1, // one\n  2, // two\n];",
	"foo(/* first */ $a, $b /* last */);",
	"$a = 1; /* between */ $b = 2;",
	"function f() {\n  $a = 1;\n  // trailing in body\n}",
	"if ($a) {\n} // after if\nelse {\n}",
	"$x = match (true) { $a > 1 => foo(), default => throw new E() };",
	"$longVariableName = $anotherLongVariableName . $yetAnotherLongVariableName . $oneMoreLongVariableName . $andTheLastOne;",
	"$config = ['database' => ['host' => 'localhost', 'port' => 3306, 'name' => 'application'], 'cache' => ['driver' => 'redis']];",
	"$result = $this->repository->findAllByCriteria($criteria, $orderBy, $limit, $offset, $withRelations);",
	"array_map(fn($x) => $x * 2, array_filter($items, function ($item) { return $item !== null && $item->isActive(); }));",
}

func TestGenerateRoundTrip(t *testing.T) {
	for _, src := range roundTripCorpus {
		t.Run(src, func(t *testing.T) {
			assertRoundTrip(t, src, lexer.ModeCode, generator.DefaultOptions())
		})
	}
}

func TestGenerateNarrowRoundTrip(t *testing.T) {
	opts := generator.Options{MaxLength: 20, IndentSize: 4}
	for _, src := range roundTripCorpus {
		t.Run(src, func(t *testing.T) {
			assertRoundTrip(t, src, lexer.ModeCode, opts)
		})
	}
}

func TestGenerateWidth(t *testing.T) {
	sources := []string{
		"$result = $this->repository->findAllByCriteria($criteria, $orderBy, $limit, $offset, $withRelations);",
		"$config = ['database' => ['host' => 'localhost', 'port' => 3306, 'name' => 'application'], 'cache' => ['driver' => 'redis']];",
		"$message = $greeting . ' ' . $firstName . ' ' . $lastName . ', welcome back to ' . $siteName . '!';",
		"function handle(Request $request, Response $response, callable $next, array $options = []): Response { return $next($request, $response); }",
	}
	opts := generator.Options{MaxLength: 60, IndentSize: 2}
	for _, src := range sources {
		assertWidth(t, assertRoundTrip(t, src, lexer.ModeCode, opts), opts.MaxLength)
	}
}

// 列表之后同一行的返回类型、as 子句和花括号也计入宽度
func TestGenerateWidthAfterList(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "return type",
			src:  "function someFunctionNameHere(int $parameterOne, string $parameterTwo): \\Some\\Very\\Long\\Namespace\\ReturnTypeName {}",
			want: "function someFunctionNameHere(\n  int $parameterOne,\n  string $parameterTwo\n): \\Some\\Very\\Long\\Namespace\\ReturnTypeName {}",
		},
		{
			name: "foreach as clause",
			src:  "foreach ($this->inventoryRepository->getItemsForProcessing($argumentOne, $argumentTwo) as $key => $value) {}",
		},
		{
			name: "abstract method",
			src:  "abstract class A { abstract protected function resolveDependencies(ContainerInterface $container, array $parameters): ?DependencyGraph; }",
		},
		{
			name: "if condition",
			src:  "if ($this->authorizationService->isAllowedToPerformAction($currentUser, $requestedAction, $target)) { deny(); }",
		},
	}
	opts := generator.DefaultOptions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := assertRoundTrip(t, tt.src, lexer.ModeCode, opts)
			assertWidth(t, out, opts.MaxLength)
			if tt.want != "" {
				assert.Equal(t, tt.want, out)
			}
		})
	}
}

func assertWidth(t *testing.T, out string, max int) {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), max, "line %q in\n%s", line, out)
	}
}

func TestGenerateExpression(t *testing.T) {
	p := parser.New(mustLex(t, "$a + $b * 2"), ast.NewArena(0))
	n, err := p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "$a + $b * 2", generator.New(generator.DefaultOptions()).Expression(n))
}

func mustLex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(src, lexer.Config{Mode: lexer.ModeCode})
	require.NoError(t, err)
	return toks
}
