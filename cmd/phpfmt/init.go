package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/phpfmt/internal/config"
	"github.com/tangzhangming/phpfmt/internal/i18n"
)

func newInitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a " + config.ConfigFileName + " with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.ConfigFileName)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s", i18n.T(i18n.MsgConfigExists, path))
			}

			cfg := config.Default()
			f := cmd.Flags()
			if f.Changed("max-length") {
				cfg.Format.MaxLength = a.flags.maxLength
			}
			if f.Changed("indent-size") {
				cfg.Format.IndentSize = a.flags.indentSize
			}
			if f.Changed("asp-tags") {
				cfg.Format.ASPTags = a.flags.aspTags
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("%s", i18n.T(i18n.MsgWriteFailed, path, err))
			}
			fmt.Fprintln(a.stdout, i18n.T(i18n.MsgConfigCreated, path))
			return nil
		},
	}
	a.addFormatFlags(cmd)
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.stdout, i18n.T(i18n.MsgVersion, Version))
		},
	}
}
