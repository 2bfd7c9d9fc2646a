package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/phpfmt/internal/lsp"
)

// stdio 把标准输入输出组合成协议流
type stdio struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func (s stdio) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s stdio) Write(p []byte) (int, error) { return s.out.Write(p) }

func (s stdio) Close() error {
	err := s.in.Close()
	if werr := s.out.Close(); err == nil {
		err = werr
	}
	return err
}

func newLSPCmd(a *app) *cobra.Command {
	var useStdio bool
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the formatting language server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			server := lsp.NewServer(a.logger, a.formatterOptions())
			server.Version = Version
			return server.Serve(cmd.Context(), stdio{in: os.Stdin, out: os.Stdout})
		},
	}
	// 编辑器通常会传 --stdio，本来就只支持 stdio
	cmd.Flags().BoolVar(&useStdio, "stdio", true, "Communicate over stdin/stdout")
	a.addFormatFlags(cmd)
	return cmd
}
