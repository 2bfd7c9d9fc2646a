package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/token"
)

// tok 期望的 token：类型与原文
type tok struct {
	typ token.TokenType
	lit string
}

func lexCode(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := Lex(input, Config{Mode: ModeCode})
	require.NoError(t, err, "input: %q", input)
	return tokens
}

// assertTokens 比较类型与原文，忽略末尾的 EOF
func assertTokens(t *testing.T, tokens []token.Token, want []tok) {
	t.Helper()
	require.NotEmpty(t, tokens)
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Type)

	got := make([]tok, 0, len(tokens)-1)
	for _, tk := range tokens[:len(tokens)-1] {
		got = append(got, tok{tk.Type, tk.Literal})
	}
	assert.Equal(t, want, got)
}

func TestLexerOperators(t *testing.T) {
	input := `<=> **= ... ?-> ?? ??= -> => :: === !== <> . .= @ $`

	expected := []token.TokenType{
		token.SPACESHIP, token.POW_ASSIGN, token.ELLIPSIS, token.NULLSAFE_ARROW,
		token.COALESCE, token.COALESCE_ASSIGN, token.ARROW, token.DOUBLE_ARROW,
		token.DOUBLE_COLON, token.IDENTICAL, token.NOT_IDENTICAL, token.NE_ALT,
		token.CONCAT, token.CONCAT_ASSIGN, token.AT, token.DOLLAR,
		token.EOF,
	}

	tokens := lexCode(t, input)
	require.Len(t, tokens, len(expected))
	for i, tk := range tokens {
		assert.Equal(t, expected[i], tk.Type, "token %d (%q)", i, tk.Literal)
	}
}

func TestLexerWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "variables",
			input: "$a $this $_x1",
			want:  []tok{{token.VARIABLE, "a"}, {token.VARIABLE, "this"}, {token.VARIABLE, "_x1"}},
		},
		{
			name:  "keywords are case insensitive",
			input: "class CLASS Function",
			want:  []tok{{token.CLASS, "class"}, {token.CLASS, "CLASS"}, {token.FUNCTION, "Function"}},
		},
		{
			name:  "types and magic constants",
			input: "int String __CLASS__ __dir__",
			want:  []tok{{token.TYPE, "int"}, {token.TYPE, "String"}, {token.MAGIC, "__CLASS__"}, {token.MAGIC, "__dir__"}},
		},
		{
			name:  "qualified names",
			input: `Foo\Bar \Baz namespace\Qux`,
			want:  []tok{{token.NAME, `Foo\Bar`}, {token.NAME, `\Baz`}, {token.NAME, `namespace\Qux`}},
		},
		{
			name:  "group use prefix",
			input: `Foo\{`,
			want:  []tok{{token.NAME, `Foo\`}, {token.LEFT_BRACE, "{"}},
		},
		{
			name:  "enum demoted without a name",
			input: "enum Suit enum(",
			want:  []tok{{token.ENUM, "enum"}, {token.IDENTIFIER, "Suit"}, {token.IDENTIFIER, "enum"}, {token.LEFT_PAREN, "("}},
		},
		{
			name:  "yield from",
			input: "yield from $x; yield $y",
			want: []tok{
				{token.YIELD_FROM, "yield from"}, {token.VARIABLE, "x"}, {token.SEMICOLON, ";"},
				{token.YIELD, "yield"}, {token.VARIABLE, "y"},
			},
		},
		{
			name:  "asymmetric visibility",
			input: "public(set) private(get) protected",
			want:  []tok{{token.PUBLIC_SET, "public(set)"}, {token.PRIVATE_GET, "private(get)"}, {token.PROTECTED, "protected"}},
		},
		{
			name:  "numbers keep source text",
			input: "0x1F 1_000 1.5e-3 .5 0b101",
			want: []tok{
				{token.NUMBER, "0x1F"}, {token.NUMBER, "1_000"}, {token.NUMBER, "1.5e-3"},
				{token.NUMBER, ".5"}, {token.NUMBER, "0b101"},
			},
		},
		{
			name:  "casts",
			input: "(int) ( string )$x (foo)",
			want: []tok{
				{token.CAST, "(int)"}, {token.CAST, "( string )"}, {token.VARIABLE, "x"},
				{token.LEFT_PAREN, "("}, {token.IDENTIFIER, "foo"}, {token.RIGHT_PAREN, ")"},
			},
		},
		{
			name:  "increment direction",
			input: "$a++ + ++$b; $c--",
			want: []tok{
				{token.VARIABLE, "a"}, {token.POST_INC, "++"}, {token.PLUS, "+"}, {token.PRE_INC, "++"},
				{token.VARIABLE, "b"}, {token.SEMICOLON, ";"}, {token.VARIABLE, "c"}, {token.POST_DEC, "--"},
			},
		},
		{
			name:  "comments and attributes",
			input: "// a\n# b\n/* c */ /** d */ #[X]",
			want: []tok{
				{token.COMMENT_LINE, "// a"}, {token.COMMENT_LINE, "# b"},
				{token.COMMENT_BLOCK, "/* c */"}, {token.COMMENT_DOC, "/** d */"},
				{token.ATTRIBUTE_OPEN, "#["}, {token.IDENTIFIER, "X"}, {token.RIGHT_BRACKET, "]"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, lexCode(t, tt.input), tt.want)
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "single quoted keeps escapes",
			input: `'a\'b'`,
			want:  []tok{{token.STRING, `'a\'b'`}},
		},
		{
			name:  "double quoted without interpolation",
			input: `"abc"`,
			want:  []tok{{token.STRING, `"abc"`}},
		},
		{
			name:  "simple interpolation",
			input: `"a $b c"`,
			want: []tok{
				{token.ENCAPSED_STRING_OPEN, `"`}, {token.ENCAPSED_STRING, "a "}, {token.VARIABLE, "b"},
				{token.ENCAPSED_STRING, " c"}, {token.ENCAPSED_STRING_CLOSE, `"`},
			},
		},
		{
			name:  "offsets and properties",
			input: `"$a[0]$a[k]$a[$i]$a->b"`,
			want: []tok{
				{token.ENCAPSED_STRING_OPEN, `"`},
				{token.VARIABLE, "a"}, {token.LEFT_BRACKET, "["}, {token.NUMBER, "0"}, {token.RIGHT_BRACKET, "]"},
				{token.VARIABLE, "a"}, {token.LEFT_BRACKET, "["}, {token.IDENTIFIER, "k"}, {token.RIGHT_BRACKET, "]"},
				{token.VARIABLE, "a"}, {token.LEFT_BRACKET, "["}, {token.VARIABLE, "i"}, {token.RIGHT_BRACKET, "]"},
				{token.VARIABLE, "a"}, {token.ARROW, "->"}, {token.IDENTIFIER, "b"},
				{token.ENCAPSED_STRING_CLOSE, `"`},
			},
		},
		{
			name:  "advanced interpolation",
			input: `"{$a->b()} ${c}"`,
			want: []tok{
				{token.ENCAPSED_STRING_OPEN, `"`},
				{token.ADVANCE_INTERPOLATION_OPEN, "{"}, {token.VARIABLE, "a"}, {token.ARROW, "->"},
				{token.IDENTIFIER, "b"}, {token.LEFT_PAREN, "("}, {token.RIGHT_PAREN, ")"},
				{token.ADVANCE_INTERPOLATION_CLOSE, "}"},
				{token.ENCAPSED_STRING, " "},
				{token.ADVANCE_INTERPOLATION_OPEN, "${"}, {token.IDENTIFIER, "c"}, {token.ADVANCE_INTERPOLATION_CLOSE, "}"},
				{token.ENCAPSED_STRING_CLOSE, `"`},
			},
		},
		{
			name:  "heredoc drops the final newline",
			input: "<<<LBL\nhello $name\nLBL",
			want: []tok{
				{token.HEREDOC_OPEN, "LBL"}, {token.ENCAPSED_STRING, "hello "}, {token.VARIABLE, "name"},
				{token.HEREDOC_CLOSE, "LBL"},
			},
		},
		{
			name:  "nowdoc is raw",
			input: "<<<'EOT'\nraw $x\n  EOT;",
			want: []tok{
				{token.NOWDOC_OPEN, "EOT"}, {token.ENCAPSED_STRING, "raw $x"}, {token.NOWDOC_CLOSE, "  EOT"},
				{token.SEMICOLON, ";"},
			},
		},
		{
			name:  "heredoc closer keeps its indentation",
			input: "<<<LBL\n    a\n    LBL;",
			want: []tok{
				{token.HEREDOC_OPEN, "LBL"}, {token.ENCAPSED_STRING, "    a"},
				{token.HEREDOC_CLOSE, "    LBL"}, {token.SEMICOLON, ";"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, lexCode(t, tt.input), tt.want)
		})
	}
}

func TestLexerInlineMode(t *testing.T) {
	tokens, err := Lex("<p>\n<?php echo 1; ?>\nx", Config{Mode: ModeInline})
	require.NoError(t, err)

	assertTokens(t, tokens, []tok{
		{token.INLINE, "<p>\n"}, {token.OPEN_TAG, "<?php"}, {token.ECHO, "echo"}, {token.NUMBER, "1"},
		{token.SEMICOLON, ";"}, {token.CLOSE_TAG, "?>"}, {token.INLINE, "\nx"},
	})
}

func TestLexerAutoMode(t *testing.T) {
	tokens, err := Lex("  <?php $a;", Config{})
	require.NoError(t, err)
	assert.Equal(t, token.OPEN_TAG, tokens[0].Type)

	tokens, err = Lex("$a;", Config{})
	require.NoError(t, err)
	assert.Equal(t, token.VARIABLE, tokens[0].Type)
}

func TestLexerTags(t *testing.T) {
	tokens, err := Lex("<?= $a ?>", Config{Mode: ModeInline})
	require.NoError(t, err)
	assertTokens(t, tokens, []tok{{token.OPEN_TAG_ECHO, "<?="}, {token.VARIABLE, "a"}, {token.CLOSE_TAG, "?>"}})

	tokens, err = Lex("<% echo 1; %>", Config{Mode: ModeInline, ASPTags: true})
	require.NoError(t, err)
	assertTokens(t, tokens, []tok{
		{token.OPEN_TAG_ASP, "<%"}, {token.ECHO, "echo"}, {token.NUMBER, "1"},
		{token.SEMICOLON, ";"}, {token.CLOSE_TAG, "%>"},
	})

	// 没有开启 ASP 标签时 <% 是普通文本
	tokens, err = Lex("<% x", Config{Mode: ModeInline})
	require.NoError(t, err)
	assertTokens(t, tokens, []tok{{token.INLINE, "<% x"}})
}

func TestLexerPositions(t *testing.T) {
	tokens := lexCode(t, "$a\n  $bc")
	require.Len(t, tokens, 3)

	assert.Equal(t, token.Position{Line: 1, Column: 0, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 1, Column: 2, Offset: 2}, tokens[0].End)
	assert.Equal(t, token.Position{Line: 2, Column: 2, Offset: 5}, tokens[1].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 5, Offset: 8}, tokens[1].End)
}

// token 序列严格按源码字节顺序排列
func TestLexerLinearOrder(t *testing.T) {
	src := "<?php\nnamespace A;\n/** doc */\nfunction f(int $x = 1): ?string {\n  return \"v{$x}\" . <<<E\n  y $x\n  E;\n}\n?>\ntail"
	tokens, err := Lex(src, Config{})
	require.NoError(t, err)

	last := -1
	for _, tk := range tokens {
		assert.GreaterOrEqual(t, tk.Pos.Offset, last, "token %s", tk)
		assert.GreaterOrEqual(t, tk.End.Offset, tk.Pos.Offset, "token %s", tk)
		last = tk.End.Offset
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"unterminated single quote", `'abc`, ErrEOF},
		{"unterminated double quote", `"abc $x`, ErrEOF},
		{"unterminated block comment", "/* abc", ErrEOF},
		{"unterminated heredoc", "<<<EOT\nabc\n", ErrEOF},
		{"invalid heredoc label", "<<<1\n", ErrUnrecognised},
		{"unknown character", "$a = \x01;", ErrUnrecognised},
		{"lone backslash", `\ `, ErrUnrecognised},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex(tt.input, Config{Mode: ModeCode})
			require.Error(t, err)

			var lerr *Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.kind, lerr.Kind)
			assert.NotEmpty(t, lerr.Message)
		})
	}
}

func TestSeriesChecker(t *testing.T) {
	c := NewSeriesChecker([]string{"<?php", "<?="}, false)

	var matched []string
	for _, ch := range []byte("a <?PHP b <?= c") {
		if p, ok := c.Push(ch); ok {
			matched = append(matched, p)
		}
	}
	assert.Equal(t, []string{"<?php", "<?="}, matched)

	// 转义的引号不结束字符串
	q := NewSeriesChecker([]string{"'"}, true)
	var hits int
	for _, ch := range []byte(`a\'b\\'`) {
		if _, ok := q.Push(ch); ok {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
}
