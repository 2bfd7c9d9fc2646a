package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/phpfmt/internal/ast"
	"github.com/tangzhangming/phpfmt/internal/ast/astjson"
	"github.com/tangzhangming/phpfmt/internal/formatter"
	"github.com/tangzhangming/phpfmt/internal/i18n"
	"github.com/tangzhangming/phpfmt/internal/lexer"
)

// readSource 读取文件，"-" 表示标准输入
func (a *app) readSource(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(a.stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("%s", i18n.T(i18n.MsgReadFailed, name, err))
	}
	return string(data), nil
}

// sourceName 标准输入没有文件名，按代码片段处理
func sourceName(name string) string {
	if name == "-" {
		return ""
	}
	return name
}

func newASTCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ast [--json] file",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			src, err := a.readSource(args[0])
			if err != nil {
				return err
			}
			_, root, err := formatter.Parse(src, sourceName(args[0]), a.formatterOptions())
			if err != nil {
				a.newReporter().ReportError(displayName(sourceName(args[0])), src, err)
				return errReported
			}

			if !asJSON {
				fmt.Fprintln(a.stdout, ast.Sprint(root))
				return nil
			}
			data, err := astjson.MarshalIndent(root, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tree as JSON")
	a.addFormatFlags(cmd)
	return cmd
}

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens file",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			src, err := a.readSource(args[0])
			if err != nil {
				return err
			}
			name := sourceName(args[0])
			tokens, err := lexer.Lex(src, lexer.Config{
				Mode:    formatter.ModeFor(name),
				ASPTags: a.formatterOptions().ASPTags,
			})
			if err != nil {
				a.newReporter().ReportError(displayName(name), src, err)
				return errReported
			}
			for _, tok := range tokens {
				fmt.Fprintln(a.stdout, tok.String())
			}
			return nil
		},
	}
	a.addFormatFlags(cmd)
	return cmd
}
