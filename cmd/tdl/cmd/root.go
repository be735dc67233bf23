package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/tdl/foundation/core/config"
	mdwerror "github.com/msto63/tdl/foundation/core/error"
	mdwlog "github.com/msto63/tdl/foundation/core/log"
	"github.com/msto63/tdl/foundation/tdl"
	"github.com/msto63/tdl/internal/diagnostic"
	"github.com/msto63/tdl/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	noColor   bool
)

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("compilation failed")

// app holds the state shared by all commands, set up before each run
var app struct {
	settings mdwconfig.Settings
	logger   *mdwlog.Logger
	compiler *tdl.Compiler
	renderer *diagnostic.Renderer
}

var rootCmd = &cobra.Command{
	Use:   "tdl",
	Short: "TDL - Task Definition Language toolchain",
	Long: `tdl checks, prints and indexes Task Definition Language files.

A TDL file declares tasks with a priority and a deadline:

  task controlLoop {
      priority = 5;
      deadline = 100;
  }

Commands:
  check   - validate files
  parse   - print a validated program as text, JSON, YAML or TOML
  tokens  - print the token stream of a file
  watch   - keep a directory of files compiled while they change
  index   - store validated tasks in a SQLite index
  query   - list tasks from the index`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// IsReported reports whether err was already printed as a diagnostic
func IsReported(err error) bool {
	return errors.Is(err, errReported)
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsReported(err) {
		return 1
	}
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return code.ExitCode()
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tdl.toml or the user config directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console or logfmt")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads settings and builds the logger and compiler
func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		found, err := mdwconfig.FindConfigFile(mdwconfig.DefaultDiscoveryOptions())
		if err == nil {
			path = found
		}
	}

	settings, err := mdwconfig.LoadSettings(path)
	if err != nil {
		return err
	}
	if verbose {
		settings.Log.Level = "debug"
	}
	if logFormat != "" {
		settings.Log.Format = logFormat
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := logging.FromSettings("tdl", &settings, cmd.ErrOrStderr())
	mdwlog.SetDefault(logger)

	compiler, err := tdl.New(tdl.Options{
		Logger:         logger,
		MaxInputLength: settings.Parser.MaxInputLength,
		MaxPriority:    settings.Validation.MaxPriority,
		MaxDeadline:    settings.Validation.MaxDeadline,
	})
	if err != nil {
		return err
	}

	app.settings = settings
	app.logger = logger
	app.compiler = compiler
	app.renderer = diagnostic.NewRenderer(!noColor && isTerminal(cmd.ErrOrStderr()))

	if settings.Source != "" {
		logger.Debug("Configuration loaded", mdwlog.Field("file", settings.Source))
	}
	return nil
}

// readSource reads a file, or standard input for "-"
func readSource(cmd *cobra.Command, path string) (name, source string, err error) {
	var data []byte
	if path == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = path
		data, err = os.ReadFile(path)
	}
	if err != nil {
		code := mdwerror.CodeInternal
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return name, "", mdwerror.Wrap(err, fmt.Sprintf("failed to read %s", name)).
			WithCode(code).
			WithOperation("cmd.readSource")
	}
	return name, string(data), nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
