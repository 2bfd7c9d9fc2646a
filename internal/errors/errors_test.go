package errors_test

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/phpfmt/internal/errors"
	"github.com/tangzhangming/phpfmt/internal/lexer"
	"github.com/tangzhangming/phpfmt/internal/parser"
)

func parseErr(t *testing.T, src string) error {
	t.Helper()
	_, _, err := parser.Parse(src, parser.Config{Lexer: lexer.Config{Mode: lexer.ModeCode}})
	require.Error(t, err)
	return err
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
		line int
	}{
		{"unterminated string", "$a = 'abc", errors.E0003, 1},
		{"unterminated comment", "$a = 1;\n/* open", errors.E0003, 2},
		{"unexpected token", "$a = 1;\n$b = );", errors.E0101, 2},
		{"unexpected eof", "function f() {", errors.E0102, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := errors.FromError("a.php", parseErr(t, tt.src))
			require.True(t, ok)
			assert.Equal(t, tt.code, d.Code)
			assert.Equal(t, tt.line, d.Line)
			assert.Equal(t, "a.php", d.File)
			assert.GreaterOrEqual(t, d.Column, 1)
			assert.NotEmpty(t, d.Hints)
		})
	}
}

func TestFromErrorWrapped(t *testing.T) {
	err := fmt.Errorf("format a.php: %w", parseErr(t, "$a = );"))
	d, ok := errors.FromError("a.php", err)
	require.True(t, ok)
	assert.Equal(t, errors.E0101, d.Code)

	_, ok = errors.FromError("a.php", stderrors.New("disk full"))
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	f := errors.NewFormatter()
	f.Colors = false
	d := &errors.Diagnostic{
		Code:    errors.E0101,
		Level:   errors.LevelError,
		Message: "unexpected token: )",
		File:    "a.php",
		Line:    2,
		Column:  6,
		Length:  1,
		Hints:   []string{"check the bracket"},
	}
	got := f.Format(d, []string{"<?php", "$b = );"})
	want := "error[E0101]: unexpected token: )\n" +
		" --> a.php:2:6\n" +
		"  |\n" +
		"2 | $b = );\n" +
		"  |      ^\n" +
		" = help: check the bracket\n"
	assert.Equal(t, want, got)
}

func TestFormatTabs(t *testing.T) {
	f := errors.NewFormatter()
	f.Colors = false
	f.ShowHints = false
	d := &errors.Diagnostic{Code: errors.E0002, Message: "x", File: "f", Line: 1, Column: 2, Length: 2}
	got := f.Format(d, []string{"\t@@"})
	assert.Contains(t, got, "1 |     @@\n")
	assert.Contains(t, got, "  |     ^^\n")
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := errors.NewReporter(&buf)
	f := errors.NewFormatter()
	f.Colors = false
	r.SetFormatter(f)

	assert.False(t, r.ReportError("a.php", "", nil))
	assert.True(t, r.ReportError("a.php", "$a = );", parseErr(t, "$a = );")))
	assert.True(t, r.ReportError("b.php", "", stderrors.New("permission denied")))
	r.Summary()

	out := buf.String()
	assert.Contains(t, out, "error[E0101]")
	assert.Contains(t, out, "1 | $a = );")
	assert.Contains(t, out, "error: b.php: permission denied")
	assert.Len(t, r.Diagnostics(), 1)
}
