package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/parser"
)

func TestModeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		filename string
		want     lexer.Mode
	}{
		{"index.php", lexer.ModeInline},
		{"view.PHTML", lexer.ModeInline},
		{"lib/config.inc", lexer.ModeInline},
		{"snippet.txt", lexer.ModeAuto},
		{"", lexer.ModeAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ModeFor(tt.filename), tt.filename)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		source   string
		filename string
		want     string
	}{
		{"file", "<?php\n$a=1;", "a.php", "<?php\n$a = 1;\n"},
		{"snippet", "$a=1;", "", "$a = 1;\n"},
		{"auto with open tag", "<?php echo  1;", "", "<?php\necho 1;\n"},
		{"ends with html", "<?php echo 1; ?>\n<p>hi</p>\n", "a.php", "<?php\necho 1;\n?>\n<p>hi</p>\n"},
		{"empty", "", "a.php", ""},
		{
			"function",
			"<?php function  add($a,$b){return $a+$b;}",
			"a.php",
			"<?php\nfunction add($a, $b) {\n  return $a + $b;\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Format(tt.source, tt.filename, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := Format(got, tt.filename, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, got, again, "not idempotent")
		})
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()
	opts.IndentSize = 4
	opts.MaxLineLength = 30
	got, err := Format("<?php if ($a) { foo($first, $second, $third); }", "a.php", opts)
	require.NoError(t, err)
	assert.Equal(t, "<?php\nif ($a) {\n    foo(\n        $first,\n        $second,\n        $third\n    );\n}\n", got)

	opts = DefaultOptions()
	opts.EnsureNewlineAtEOF = false
	got, err = Format("$a=1;", "", opts)
	require.NoError(t, err)
	assert.Equal(t, "$a = 1;", got)
}

func TestFormatError(t *testing.T) {
	t.Parallel()
	_, err := Format("<?php $a = );", "a.php", nil)
	require.Error(t, err)

	var perr *parser.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.ErrUnexpectedToken, perr.Kind)

	_, err = Format("<?php $a = 'open", "a.php", nil)
	var lerr *lexer.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, lexer.ErrEOF, lerr.Kind)
}

func TestCheck(t *testing.T) {
	t.Parallel()
	ok, err := Check("<?php\n$a = 1;\n", "a.php", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Check("<?php\n$a  =  1;\n", "a.php", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Check("<?php (", "a.php", nil)
	assert.Error(t, err)
}

func TestFormatPartial(t *testing.T) {
	t.Parallel()
	got, err := FormatPartial("$a=1;\n$b=2;", nil, 4)
	require.NoError(t, err)
	assert.Equal(t, "    $a = 1;\n    $b = 2;\n", got)

	_, err = FormatPartial("$a = );", nil, 0)
	assert.Error(t, err)
}

func TestExtractFormattedPart(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()
	formatted := "function __wrapper__() {\n  return 1;\n  if ($a) {\n    echo 2;\n  }\n}\n"
	assert.Equal(t, "return 1;\nif ($a) {\n  echo 2;\n}\n", extractFormattedPart(formatted, opts))
	assert.Equal(t, "", extractFormattedPart("function __wrapper__() {}\n", opts))
}

func TestReindent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "  a\n\n  b\n", reindent("a\n\nb\n", 2))
	assert.Equal(t, "a\n", reindent("a\n", 0))
}

func BenchmarkFormat(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("<?php\n")
	for i := 0; i < 200; i++ {
		sb.WriteString("function f(array $items, ?string $name = null): array {\n")
		sb.WriteString("  // collect\n  $out = [];\n")
		sb.WriteString("  foreach ($items as $k => $v) { if ($v !== null && $k !== $name) { $out[] = strtoupper($v) . ' ' . $k; } }\n")
		sb.WriteString("  return array_map(fn($x) => trim($x), $out);\n}\n")
	}
	src := sb.String()
	opts := DefaultOptions()

	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Format(src, "bench.php", opts); err != nil {
			b.Fatal(err)
		}
	}
}
