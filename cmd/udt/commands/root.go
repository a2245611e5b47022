// Package commands implements the CLI commands for udt.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udtoolkit/udt/internal/config"
	"github.com/udtoolkit/udt/internal/errors"
	"github.com/udtoolkit/udt/internal/guard"
	"github.com/udtoolkit/udt/internal/logging"
	"github.com/udtoolkit/udt/internal/paths"
)

// version is set at build time via ldflags.
const version = "0.1.0"

// Persistent flag storage.
var (
	dirFlag   string
	rulesFlag string
	verbosity int
	quiet     bool
	logFormat string
	logFile   string
)

// loadedConfig holds the configuration read during initialization.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "",
		"toolkit bundle directory (default: config value or current directory)")
	rootCmd.PersistentFlags().StringVar(&rulesFlag, "rules", "",
		"path guard rules file (.yaml, .yml or .toml; default: built-in policy)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("udt version {{.Version}}\n")

	// Error output is handled in main so exit codes survive.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "udt",
	Short: "Manage a developer toolkit bundle for AI coding assistants",
	Long: `udt manages a toolkit bundle for AI coding assistants: markdown
skills encoding framework knowledge, slash-command prompts, and the
path guard hook that protects sensitive files from automated edits.

The path guard evaluates every file-modification attempt against an
ordered list of protected patterns and blocks matches with a
human-readable reason, so lockfiles, secrets and VCS internals stay
out of reach of automated tooling.`,
	Example: `  # Check whether the guard would allow an edit
  udt guard check backend/.env

  # Show the active protection rules
  udt guard rules

  # Run as a pre-tool-use hook (payload on stdin)
  udt hook pre-tool-use

  # Inventory the bundle
  udt skill list
  udt command list`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.UserError(configLoadErr, "check config.yaml syntax")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setupLogging configures the default logger from the persistent flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.UserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("UDT_DEBUG"); ok && (val == "1" || val == "true") {
				v = 2
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	if logging.Format(logFormat) == logging.FormatJSON {
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primary}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.UserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

// resolveGuard builds the active guard: the --rules flag wins, then the
// configured rules file, then the built-in policy.
func resolveGuard() (*guard.Guard, error) {
	rulesPath := rulesFlag
	if rulesPath == "" && loadedConfig != nil {
		rulesPath = loadedConfig.Guard.RulesFile
	}
	if rulesPath == "" {
		return guard.Default(), nil
	}
	g, err := guard.LoadFile(rulesPath)
	if err != nil {
		return nil, errors.UserError(err, "check the rules file path and syntax")
	}
	return g, nil
}

// resolveBundleDir resolves the bundle root from the --dir flag or config.
func resolveBundleDir() (string, error) {
	explicit := dirFlag
	if explicit == "" && loadedConfig != nil {
		explicit = loadedConfig.Dir
	}
	dir, err := paths.BundleDir(explicit)
	if err != nil {
		return "", errors.UserError(err, "pass --dir to point at the toolkit bundle")
	}
	return dir, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
