package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the bigcalc version.
const Version = "0.1.0"

func versionMain(command *cobra.Command, arguments []string) error {
	fmt.Println(Version)
	return nil
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run:   Mainify(versionMain),
}
