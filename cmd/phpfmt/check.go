package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/phpfmt/internal/formatter"
	"github.com/tangzhangming/phpfmt/internal/i18n"
)

func newCheckCmd(a *app) *cobra.Command {
	var stdinFile string
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Exit with status 1 when any file is not formatted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			if isStdin(args) {
				return a.checkStdin(stdinFile)
			}
			return a.checkFiles(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&stdinFile, "stdin-filename", "", "File name used to pick the lexer mode for standard input")
	a.addFormatFlags(cmd)
	return cmd
}

func (a *app) checkStdin(filename string) error {
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return err
	}
	src := string(data)
	ok, err := formatter.Check(src, filename, a.formatterOptions())
	if err != nil {
		a.newReporter().ReportError(displayName(filename), src, err)
		return errReported
	}
	if !ok {
		fmt.Fprintln(a.stdout, i18n.T(i18n.MsgNotFormatted, displayName(filename)))
		return errReported
	}
	return nil
}

// checkFiles 列出未格式化的文件
func (a *app) checkFiles(ctx context.Context, paths []string) error {
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
	var (
		st          stats
		mu          sync.Mutex
		unformatted = make(map[string]bool)
	)

	err = processFiles(ctx, a.logger, files, func(ctx context.Context, file string) error {
		st.files.Inc()
		data, err := os.ReadFile(file)
		if err != nil {
			st.failed.Inc()
			reporter.ReportError(file, "", err)
			return err
		}
		src := string(data)
		ok, err := formatter.Check(src, file, opts)
		if err != nil {
			st.failed.Inc()
			reporter.ReportError(file, src, err)
			return err
		}
		if !ok {
			st.changed.Inc()
			mu.Lock()
			unformatted[file] = true
			mu.Unlock()
		}
		return nil
	})

	for _, file := range files {
		if unformatted[file] {
			fmt.Fprintln(a.stdout, i18n.T(i18n.MsgNotFormatted, file))
		}
	}
	reporter.Summary()

	if st.failed.Load() > 0 || st.changed.Load() > 0 {
		return errReported
	}
	return err
}
