package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shabbyrobe/go-bignum/internal/logging"
)

const (
	// logLevelEnvironmentVariable supplies the default for --log-level.
	logLevelEnvironmentVariable = "BIGCALC_LOG_LEVEL"
	// inputEnvironmentVariable supplies the default input file for report.
	inputEnvironmentVariable = "BIGCALC_INPUT"
	// defaultInputFile is used when no file is given and the environment
	// variable is unset.
	defaultInputFile = "test.txt"
)

var rootCommand = &cobra.Command{
	Use:               "bigcalc",
	Short:             "Exercise arbitrary-precision decimal integers",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: rootPreRun,
}

var rootConfiguration struct {
	// logLevel is the name of the log level.
	logLevel string
}

// logger is the root logger, set up before any subcommand runs.
var logger *logging.Logger

func rootPreRun(command *cobra.Command, arguments []string) error {
	name := rootConfiguration.logLevel
	if !command.Flags().Changed("log-level") {
		if env := os.Getenv(logLevelEnvironmentVariable); env != "" {
			name = env
		}
	}
	level, ok := logging.NameToLevel(name)
	if !ok {
		return errors.Errorf("invalid log level: %s", name)
	}
	logger = logging.NewLogger(level, os.Stderr)
	return nil
}

// loadEnvironment applies variables from a .env file in the working
// directory, if there is one. Variables already set take precedence.
func loadEnvironment() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to load .env file")
	}
	return nil
}

// registerLogLevelFlag adds the --log-level flag to flags.
func registerLogLevelFlag(flags *pflag.FlagSet) {
	flags.StringVarP(&rootConfiguration.logLevel, "log-level", "l", "warn",
		"Log level (disabled|error|warn|info|debug|trace)")
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.SortFlags = false
	registerLogLevelFlag(flags)

	rootCommand.AddCommand(
		reportCommand,
		generateCommand,
		evalCommand,
		versionCommand,
	)
}

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	if err := loadEnvironment(); err != nil {
		Fatal(err)
	}

	if err := rootCommand.Execute(); err != nil {
		Fatal(err)
	}
}
