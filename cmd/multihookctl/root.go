package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	jsonOut bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multihookctl",
		Short: "Encode, decode and validate multi-hook pool registers",
		Long: `multihookctl works with the packed registers that describe which hooks a
pool runs at each lifecycle event and in what order.

The activation register is a 200-bit word shared by the pool; each hook has a
40-bit queue register. Values may be given in decimal, 0x hex or 0b binary.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			stdout = cmd.OutOrStdout()
			stderr = cmd.ErrOrStderr()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	cmd.AddCommand(newDecodeCmd(), newActivateCmd(), newDemoCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
