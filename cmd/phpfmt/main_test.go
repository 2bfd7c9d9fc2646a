package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tangzhangming/phpfmt/internal/config"
)

// run 在内存中执行命令，返回标准输出和标准错误
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := newApp(strings.NewReader(stdin), &out, &errOut)
	cmd := newRootCmd(a)
	cmd.SetArgs(append([]string{"--lang", "en", "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// project 建一个带配置文件的临时目录，返回目录和配置文件路径
func project(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, config.Default().Save(cfgPath))
	for name, content := range files {
		writeFile(t, filepath.Join(dir, name), content)
	}
	return dir, cfgPath
}

func TestFmtPrints(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"b.php": "<?php $b=2;",
		"a.php": "<?php $a=1;",
	})
	out, _, err := run(t, "", "--config", cfg, "fmt", filepath.Join(dir, "b.php"), filepath.Join(dir, "a.php"))
	require.NoError(t, err)
	// 按路径排序输出
	assert.Equal(t, "<?php\n$a = 1;\n<?php\n$b = 2;\n", out)
	// 不带 -w 不改写文件
	assert.Equal(t, "<?php $a=1;", readFile(t, filepath.Join(dir, "a.php")))
}

func TestFmtWrite(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"src/a.php":    "<?php function f(){return 1;}",
		"src/ok.php":   "<?php\n$a = 1;\n",
		"vendor/x.php": "<?php $x=1;",
	})
	out, errOut, err := run(t, "", "--config", cfg, "fmt", "-w", dir)
	require.NoError(t, err)

	a := filepath.Join(dir, "src", "a.php")
	assert.Equal(t, "<?php\nfunction f() {\n  return 1;\n}\n", readFile(t, a))
	assert.Equal(t, "formatted "+a+"\n", out)
	assert.Contains(t, errOut, "2 files, 1 changed, 0 failed")
	// vendor 被配置排除
	assert.Equal(t, "<?php $x=1;", readFile(t, filepath.Join(dir, "vendor", "x.php")))
}

func TestFmtFlagsOverrideConfig(t *testing.T) {
	dir, cfg := project(t, map[string]string{"a.php": "<?php if ($a) { $b=1; }"})
	out, _, err := run(t, "", "--config", cfg, "fmt", "--indent-size", "4", filepath.Join(dir, "a.php"))
	require.NoError(t, err)
	assert.Equal(t, "<?php\nif ($a) {\n    $b = 1;\n}\n", out)

	_, _, err = run(t, "", "--config", cfg, "fmt", "--max-length", "5", filepath.Join(dir, "a.php"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_length")
}

func TestFmtStdin(t *testing.T) {
	_, cfg := project(t, nil)
	out, _, err := run(t, "$a=1;", "--config", cfg, "fmt")
	require.NoError(t, err)
	assert.Equal(t, "$a = 1;\n", out)

	out, _, err = run(t, "<?php echo  1;", "--config", cfg, "fmt", "--stdin-filename", "v.phtml", "-")
	require.NoError(t, err)
	assert.Equal(t, "<?php\necho 1;\n", out)
}

func TestFmtSyntaxError(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"bad.php":  "<?php\n$a = );\n",
		"good.php": "<?php $b=1;",
	})
	_, errOut, err := run(t, "", "--config", cfg, "fmt", "-w", dir)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "error[E0101]")
	assert.Contains(t, errOut, "2 | $a = );")
	assert.Contains(t, errOut, "2 files, 1 changed, 1 failed")
	// 其他文件照常处理
	assert.Equal(t, "<?php\n$b = 1;\n", readFile(t, filepath.Join(dir, "good.php")))
}

func TestCheck(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"ok.php":  "<?php\n$a = 1;\n",
		"bad.php": "<?php $a=1;",
	})

	_, _, err := run(t, "", "--config", cfg, "check", filepath.Join(dir, "ok.php"))
	require.NoError(t, err)

	out, _, err := run(t, "", "--config", cfg, "check", dir)
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, filepath.Join(dir, "bad.php")+" is not formatted\n", out)

	_, _, err = run(t, "$a = 1;\n", "--config", cfg, "check")
	require.NoError(t, err)
}

func TestAST(t *testing.T) {
	dir, cfg := project(t, map[string]string{"a.php": "<?php $a = 1;"})
	file := filepath.Join(dir, "a.php")

	out, _, err := run(t, "", "--config", cfg, "ast", file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Program("), out)

	out, _, err = run(t, "", "--config", cfg, "ast", "--json", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "Program"`)
	assert.Contains(t, out, `"kind": "Assignment"`)

	_, errOut, err := run(t, "$a = );", "--config", cfg, "ast", "-")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "<stdin>")
}

func TestTokens(t *testing.T) {
	_, cfg := project(t, nil)
	out, _, err := run(t, "$a;", "--config", cfg, "tokens", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `VARIABLE("a")`)

	_, _, err = run(t, "", "--config", cfg, "tokens", filepath.Join(t.TempDir(), "missing.php"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "", "init", "--max-length", "120", dir)
	require.NoError(t, err)
	path := filepath.Join(dir, config.ConfigFileName)
	assert.Equal(t, "created "+path+"\n", out)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Format.MaxLength)

	_, _, err = run(t, "", "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "phpfmt "+Version+"\n", out)
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"src/a.php", "src/b.php", "src/notes.txt", "vendor/lib/c.php"} {
		writeFile(t, filepath.Join(dir, name), "<?php\n")
	}
	cfg := config.Default()

	files, err := collectFiles([]string{dir}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "src", "a.php"),
		filepath.Join(dir, "src", "b.php"),
	}, files)

	// 显式给出的文件不过滤，重复的去掉
	explicit := filepath.Join(dir, "vendor", "lib", "c.php")
	files, err = collectFiles([]string{explicit, explicit}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{explicit}, files)

	_, err = collectFiles([]string{filepath.Join(dir, "nope")}, cfg)
	assert.Error(t, err)
}

func TestProcessFilesCollectsErrors(t *testing.T) {
	t.Parallel()
	files := []string{"a", "b", "c", "d"}
	var st stats
	err := processFiles(context.Background(), zap.NewNop(), files, func(ctx context.Context, file string) error {
		st.files.Inc()
		if file == "b" || file == "d" {
			return assert.AnError
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, int64(4), st.files.Load())
	assert.Contains(t, err.Error(), "b: ")
	assert.Contains(t, err.Error(), "d: ")
}
