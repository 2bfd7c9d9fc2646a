package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, path, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 100, cfg.Format.MaxLength)
	assert.Equal(t, 2, cfg.Format.IndentSize)
}

func TestLoadWalksUp(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), "[format]\nmax_length = 80\nasp_tags = true\n")
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeFile(t, filepath.Join(nested, "a.php"), "<?php\n")

	for _, start := range []string{nested, filepath.Join(nested, "a.php")} {
		cfg, path, err := Load(start)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ConfigFileName), path)
		assert.Equal(t, 80, cfg.Format.MaxLength)
		assert.True(t, cfg.Format.ASPTags)
		// 未出现的键保持默认值
		assert.Equal(t, 2, cfg.Format.IndentSize)
		assert.Equal(t, []string{"vendor/**"}, cfg.Files.Exclude)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[format\n", "failed to parse config file"},
		{"unknown key", "[format]\ntab_width = 4\n", "failed to parse config file"},
		{"wrong type", "[format]\nmax_length = \"wide\"\n", "failed to parse config file"},
		{"too narrow", "[format]\nmax_length = 5\n", "max_length must be at least 20"},
		{"indent", "[format]\nindent_size = 0\n", "indent_size must be between 1 and 8"},
		{"pattern", "[files]\ninclude = [\"[\"]\n", "bad file pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, ConfigFileName), tt.content)
			_, path, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotEmpty(t, path)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Format.MaxLength = 120
	cfg.Format.IndentSize = 4
	cfg.Files.Exclude = []string{"vendor/**", "storage/**"}

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFormatterOptions(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Format.MaxLength = 80
	cfg.Format.IndentSize = 4
	cfg.Format.ASPTags = true

	opts := cfg.FormatterOptions()
	assert.Equal(t, 80, opts.MaxLineLength)
	assert.Equal(t, 4, opts.IndentSize)
	assert.True(t, opts.ASPTags)
	assert.True(t, opts.EnsureNewlineAtEOF)
}

func TestMatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.php", "a.php", true},
		{"**/*.php", "src/app/a.php", true},
		{"**/*.php", "src/a.phtml", false},
		{"vendor/**", "vendor", true},
		{"vendor/**", "vendor/pkg/a.php", true},
		{"vendor/**", "src/vendor/a.php", false},
		{"src/*.php", "src/a.php", true},
		{"src/*.php", "src/x/a.php", false},
		{"**/tests/**", "a/b/tests/c.php", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.pattern, tt.path), "%s ~ %s", tt.pattern, tt.path)
	}
}

func TestSelects(t *testing.T) {
	t.Parallel()
	cfg := Default()
	assert.True(t, cfg.Selects("src/a.php"))
	assert.True(t, cfg.Selects(filepath.Join("src", "b.php")))
	assert.False(t, cfg.Selects("vendor/x/a.php"))
	assert.False(t, cfg.Selects("README.md"))
	assert.True(t, cfg.Excludes("vendor"))
	assert.False(t, cfg.Excludes("src"))

	cfg.Files.Include = nil
	assert.True(t, cfg.Selects("README.md"))
}
