// Package cmd provides the command-line interface of tsvcost.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsvcost",
	Short: "tsvcost estimates the cost of TSV paths in stacked memory arrays.",
	Long: `tsvcost estimates the area, read latency, and energy of the ` +
		`through-silicon-via path that connects stacked dies. Results can be ` +
		`recorded into a SQLite database and served over HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	rootCmd.SetOut(os.Stdout)
}
