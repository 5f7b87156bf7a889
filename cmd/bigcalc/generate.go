package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-bignum/internal/gen"
)

func generateMain(command *cobra.Command, arguments []string) (err error) {
	path := defaultInputFile
	if len(arguments) > 0 {
		path = arguments[0]
	}

	seed := generateConfiguration.seed
	if !command.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create output")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "unable to close output")
		}
	}()

	lines, err := gen.Write(file, gen.Options{
		Count:     generateConfiguration.count,
		MaxDigits: generateConfiguration.maxDigits,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	logger.Sublogger("generate").Infof("wrote %d lines to %s (seed %d)", lines, path, seed)
	return nil
}

var generateCommand = &cobra.Command{
	Use:   "generate [<file>]",
	Short: "Write a test file of boundary and random integers",
	Args:  cobra.MaximumNArgs(1),
	Run:   Mainify(generateMain),
}

var generateConfiguration struct {
	// count is the number of random lines.
	count int
	// maxDigits is the longest random line.
	maxDigits int
	// seed seeds the generator. The current time is used if unset.
	seed int64
}

func init() {
	flags := generateCommand.Flags()
	flags.SortFlags = false
	flags.IntVarP(&generateConfiguration.count, "count", "n", 10, "Number of random integers")
	flags.IntVar(&generateConfiguration.maxDigits, "max-digits", gen.DefaultMaxDigits, "Maximum digits in a random integer")
	flags.Int64Var(&generateConfiguration.seed, "seed", 0, "Random seed (defaults to the current time)")
}
