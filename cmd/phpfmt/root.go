package main

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangzhangming/phpfmt/internal/config"
	"github.com/tangzhangming/phpfmt/internal/formatter"
	"github.com/tangzhangming/phpfmt/internal/i18n"
)

// Version 发布时通过 -ldflags "-X main.Version=..." 注入
var Version = "dev"

// errReported 诊断已经输出，只需要以非零状态退出
var errReported = stderrors.New("phpfmt: errors reported")

type globalFlags struct {
	verbose    bool
	noColor    bool
	lang       string
	configPath string
	logFile    string

	// 覆盖配置文件的格式化选项
	maxLength  int
	indentSize int
	aspTags    bool
}

// app 命令行共享的状态
type app struct {
	flags  globalFlags
	logger *zap.Logger
	cfg    *config.Config

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		logger: zap.NewNop(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute 运行根命令
func Execute(ctx context.Context) error {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	return newRootCmd(a).ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "phpfmt",
		Short:         "phpfmt - an opinionated PHP code formatter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "Disable coloured diagnostics")
	pf.StringVar(&a.flags.lang, "lang", "", "Message language (en, zh); defaults to $PHPFMT_LANG or $LANG")
	pf.StringVar(&a.flags.configPath, "config", "", "Path to "+config.ConfigFileName+" (default: search upward from the working directory)")
	pf.StringVar(&a.flags.logFile, "log", "", "Write logs to this file instead of stderr")

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		newFmtCmd(a),
		newCheckCmd(a),
		newASTCmd(a),
		newTokensCmd(a),
		newLSPCmd(a),
		newInitCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup 初始化语言、颜色和日志
func (a *app) setup() error {
	if a.flags.lang != "" {
		i18n.SetLanguage(i18n.Parse(a.flags.lang))
	} else {
		i18n.SetLanguage(i18n.FromEnv())
	}
	if a.flags.noColor {
		color.NoColor = true
	}

	logger, err := newLogger(a.flags.verbose, a.flags.logFile)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// newLogger 默认只输出警告以上，--verbose 切换到开发配置
func newLogger(verbose bool, logFile string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}
	return cfg.Build()
}

// addFormatFlags 注册覆盖配置文件的格式化参数
func (a *app) addFormatFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&a.flags.maxLength, "max-length", 100, "Maximum line length")
	f.IntVar(&a.flags.indentSize, "indent-size", 2, "Spaces per indentation level")
	f.BoolVar(&a.flags.aspTags, "asp-tags", false, "Recognise <% %> tags")
}

// loadConfig 加载配置文件，再叠加命令行显式给出的参数
func (a *app) loadConfig(cmd *cobra.Command) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.flags.configPath != "" {
		path = a.flags.configPath
		cfg, err = config.LoadFile(path)
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			return werr
		}
		cfg, path, err = config.Load(wd)
	}
	if err != nil {
		return err
	}
	if path != "" {
		a.logger.Debug("loaded config", zap.String("path", path))
	}

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
	a.cfg = cfg
	return nil
}

func (a *app) formatterOptions() *formatter.Options {
	if a.cfg == nil {
		return formatter.DefaultOptions()
	}
	return a.cfg.FormatterOptions()
}
