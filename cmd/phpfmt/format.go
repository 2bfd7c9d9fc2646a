package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangzhangming/phpfmt/internal/errors"
	"github.com/tangzhangming/phpfmt/internal/formatter"
	"github.com/tangzhangming/phpfmt/internal/i18n"
)

const stdinName = "<stdin>"

func newFmtCmd(a *app) *cobra.Command {
	var (
		write     bool
		stdinFile string
	)
	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format PHP files, or standard input when no path is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			if isStdin(args) {
				return a.formatStdin(stdinFile)
			}
			return a.formatFiles(cmd.Context(), args, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the source files")
	cmd.Flags().StringVar(&stdinFile, "stdin-filename", "", "File name used to pick the lexer mode for standard input")
	a.addFormatFlags(cmd)
	return cmd
}

func isStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

func (a *app) newReporter() *errors.Reporter {
	r := errors.NewReporter(a.stderr)
	f := errors.NewFormatter()
	if a.flags.noColor {
		f.Colors = false
	}
	r.SetFormatter(f)
	return r
}

// formatStdin 格式化标准输入并写到标准输出
func (a *app) formatStdin(filename string) error {
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return err
	}
	src := string(data)
	formatted, err := formatter.Format(src, filename, a.formatterOptions())
	if err != nil {
		r := a.newReporter()
		r.ReportError(displayName(filename), src, err)
		return errReported
	}
	_, err = io.WriteString(a.stdout, formatted)
	return err
}

func displayName(filename string) string {
	if filename == "" {
		return stdinName
	}
	return filename
}

// formatFiles 并发格式化文件
//
// 不带 -w 时按文件顺序输出结果；带 -w 时只改写有变化的文件并列出它们。
func (a *app) formatFiles(ctx context.Context, paths []string, write bool) error {
	start := time.Now()
	files, err := collectFiles(paths, a.cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(a.stderr, i18n.T(i18n.MsgNoInput))
		return nil
	}

	opts := a.formatterOptions()
	reporter := a.newReporter()
	index := make(map[string]int, len(files))
	for i, f := range files {
		index[f] = i
	}
	outputs := make([]string, len(files))
	var st stats

	err = processFiles(ctx, a.logger, files, func(ctx context.Context, file string) error {
		st.files.Inc()
		info, err := os.Stat(file)
		if err != nil {
			st.failed.Inc()
			reporter.ReportError(file, "", err)
			return err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			st.failed.Inc()
			reporter.ReportError(file, "", err)
			return err
		}
		src := string(data)

		formatted, err := formatter.Format(src, file, opts)
		if err != nil {
			st.failed.Inc()
			reporter.ReportError(file, src, err)
			return err
		}

		if !write {
			outputs[index[file]] = formatted
			if formatted != src {
				st.changed.Inc()
			}
			return nil
		}
		if formatted == src {
			a.logger.Debug("unchanged", zap.String("file", file))
			return nil
		}
		if err := os.WriteFile(file, []byte(formatted), info.Mode().Perm()); err != nil {
			st.failed.Inc()
			reporter.ReportError(file, "", err)
			return err
		}
		st.changed.Inc()
		outputs[index[file]] = i18n.T(i18n.MsgFormatted, file) + "\n"
		return nil
	})

	for _, out := range outputs {
		io.WriteString(a.stdout, out)
	}
	if write {
		fmt.Fprintln(a.stderr, i18n.T(i18n.MsgSummary, st.files.Load(), st.changed.Load(), st.failed.Load()))
	}
	reporter.Summary()
	a.logger.Info("format finished",
		zap.Int64("files", st.files.Load()),
		zap.Int64("changed", st.changed.Load()),
		zap.Int64("failed", st.failed.Load()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if st.failed.Load() > 0 {
		return errReported
	}
	return err
}
