package main

import (
	multihook "github.com/branched-services/go-multihook"
	"github.com/spf13/cobra"
)

var decodeHookID int

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a packed register",
	}

	activation := &cobra.Command{
		Use:   "activation <value>",
		Short: "Show which hooks are active at each hook point",
		Long: `Decode a 200-bit activation register into its per-hook-point
active count and flags, and check that every count matches its flags.

Example:
  multihookctl decode activation 0x1800018000180000000000000
  multihookctl decode activation 118842357108300181652857946112 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecodeActivation(args)
		},
	}

	queue := &cobra.Command{
		Use:   "queue <value>",
		Short: "Show a hook's queue position at each hook point",
		Long: `Decode a 40-bit queue register into the hook's execution position at
each hook point.

Example:
  multihookctl decode queue 0x1200 --hook 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecodeQueue(args)
		},
	}
	queue.Flags().IntVar(&decodeHookID, "hook", 0, "Hook id shown in the report")

	cmd.AddCommand(activation, queue)
	return cmd
}

func runDecodeActivation(args []string) error {
	r, err := multihook.ParseActivationRegister(args[0])
	if err != nil {
		return err
	}

	printVerbose("Decoding activation register %s\n", r.Hex())

	if err := r.Verify(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(multihook.SummarizeActivation(r))
	}

	v := r.Value()
	printInfo("Decimal: %s\n", v.Decimal)
	printInfo("Hex:     %s\n", v.Hex)
	printVerbose("Binary:  %s\n", v.Binary)
	printInfo("\n%s", multihook.FormatActivation(r))
	return nil
}

func runDecodeQueue(args []string) error {
	q, err := multihook.ParseQueueRegister(args[0])
	if err != nil {
		return err
	}

	id, err := parseHookID(decodeHookID)
	if err != nil {
		return err
	}

	printVerbose("Decoding queue register %s\n", q.Hex())

	if jsonOut {
		return printJSON(multihook.SummarizeQueue(id, q))
	}

	printInfo("%s", multihook.FormatQueue(id, q))
	printVerbose("Binary: %s\n", q.Binary())
	return nil
}

// parseHookID checks a hook id flag value.
func parseHookID(v int) (multihook.HookID, error) {
	if v < 0 || v >= multihook.MaxHooks {
		return 0, &multihook.HookIDError{ID: v, Limit: multihook.MaxHooks}
	}
	return multihook.HookID(v), nil
}
