package main

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-bignum/internal/report"
)

// inputPath resolves the input file from the arguments, the environment and
// finally the default.
func inputPath(arguments []string) string {
	if len(arguments) > 0 {
		return arguments[0]
	}
	if env := os.Getenv(inputEnvironmentVariable); env != "" {
		return env
	}
	return defaultInputFile
}

func reportMain(command *cobra.Command, arguments []string) error {
	path := inputPath(arguments)

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return errors.Errorf("%s does not exist, create one with 'bigcalc generate %s'", path, path)
	} else if err != nil {
		return errors.Wrap(err, "unable to open input")
	}
	defer file.Close()

	log := logger.Sublogger("report")
	values, skipped, err := report.Load(file, log.Sublogger("load"))
	if err != nil {
		return errors.Wrapf(err, "unable to load %s", path)
	}
	if skipped > 0 {
		log.Infof("skipped %d invalid lines in %s", skipped, path)
	}

	out := bufio.NewWriter(os.Stdout)
	summary, err := report.Write(out, values)
	if err != nil {
		return errors.Wrap(err, "unable to write report")
	}
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "unable to write report")
	}
	log.Infof("%s", summary)

	return nil
}

var reportCommand = &cobra.Command{
	Use:   "report [<file>]",
	Short: "Compare and combine each integer in a file with its neighbours",
	Args:  cobra.MaximumNArgs(1),
	Run:   Mainify(reportMain),
}
