package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/textcore/core/config"
	tcerror "github.com/msto63/textcore/core/error"
	"github.com/msto63/textcore/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *log.Logger
	runID  string
)

var rootCmd = &cobra.Command{
	Use:   "textcore",
	Short: "textcore - text substrate toolbox",
	Long: `textcore exercises the textcore string substrate from the
command line: string views, growable buffers, scratch formatting,
and UTF-8 case folding.

Commands:
  upper    - uppercase text (UTF-8 aware)
  trim     - strip leading/trailing characters
  split    - split text on a delimiter or into chunks
  replace  - replace every occurrence of a pattern
  hash     - FNV-1a 32-bit hash of each argument
  inspect  - length, capacity, and split statistics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command and reports the failure, if any, on
// stderr in the structured form the logger would use.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("command failed", err)
	}
	return err
}

// ExitCode maps an Execute error to a process exit code via the
// structured error code, defaulting to 1 for plain errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return tcerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, or console")
}

// setup loads the configuration and builds the run logger. Every run
// carries a fresh correlation id so log lines from one invocation can
// be grouped.
func setup() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			EnvPrefix: "TEXTCORE",
			Defaults: map[string]interface{}{
				"logging": map[string]interface{}{
					"level":  "info",
					"format": "console",
				},
			},
		})
		if err != nil {
			return err
		}
	} else {
		cfg = config.NewEmpty()
	}

	level := log.DefaultLevel()
	if verbose {
		level = log.LevelDebug
	} else if name := cfg.GetString("logging.level"); name != "" {
		if parsed, perr := log.ParseLevel(name); perr == nil {
			level = parsed
		}
	}

	formatName := logFormat
	if formatName == "" {
		formatName = cfg.GetString("logging.format", "console")
	}
	format, perr := log.ParseFormat(formatName)
	if perr != nil {
		return tcerror.Wrap(perr, "unknown log format").
			WithCode(tcerror.CodeInvalidInput).
			WithOperation("cmd.setup").
			WithDetail("format", formatName)
	}

	runID = uuid.NewString()
	logger = log.New().
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr).
		WithName("textcore").
		WithCorrelationID(runID)
	log.SetDefault(logger)

	if cfgFile != "" {
		logger.Debug("configuration loaded", log.String("file", cfg.FilePath()))
	}
	return nil
}

// readInput resolves the text a command operates on: joined arguments,
// or stdin when no arguments are given or the single argument is "-".
func readInput(args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", tcerror.Wrap(err, "reading stdin").
			WithCode(tcerror.CodeInternal).
			WithOperation("cmd.readInput")
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
