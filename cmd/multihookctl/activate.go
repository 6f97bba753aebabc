package main

import (
	"encoding/json"
	"errors"
	"fmt"

	multihook "github.com/branched-services/go-multihook"
	"github.com/spf13/cobra"
)

var (
	activateRegister string
	activateHookID   int
	activatePoints   []string
	activateConfig   string
)

func newActivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Fold a hook's participation into an activation register",
		Long: `The activate command sets the hook's flag at every listed hook point and
clears it everywhere else, recomputing each active count. Other hooks are not
affected.

The participation is given either with --points or with --config, a JSON map
that must name all ten hook points.

Example:
  multihookctl activate --hook 0 --points afterRemoveLiquidity,beforeSwap,afterSwap
  multihookctl activate --register 0x18000 --hook 1 --points afterDonate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActivate()
		},
	}
	cmd.Flags().StringVar(&activateRegister, "register", "0", "Current activation register")
	cmd.Flags().IntVar(&activateHookID, "hook", 0, "Hook id to activate (0-15)")
	cmd.Flags().StringSliceVar(&activatePoints, "points", nil, "Hook points the hook participates in")
	cmd.Flags().StringVar(&activateConfig, "config", "", `JSON map of every hook point to true/false, e.g. {"afterSwap":true,...}`)
	return cmd
}

func runActivate() error {
	r, err := multihook.ParseActivationRegister(activateRegister)
	if err != nil {
		return fmt.Errorf("--register: %w", err)
	}
	id, err := parseHookID(activateHookID)
	if err != nil {
		return err
	}
	cfg, err := activationConfig()
	if err != nil {
		return err
	}

	printVerbose("Activating hook %d at %s\n", id, cfg)

	next, err := r.Activate(cfg, id)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(multihook.SummarizeActivation(next))
	}

	printInfo("%s\n", next.Hex())
	printVerbose("\n%s", multihook.FormatActivation(next))
	return nil
}

func activationConfig() (multihook.HookConfig, error) {
	if activateConfig != "" && len(activatePoints) > 0 {
		return multihook.HookConfig{}, errors.New("--points and --config are mutually exclusive")
	}

	if activateConfig != "" {
		var m map[string]bool
		if err := json.Unmarshal([]byte(activateConfig), &m); err != nil {
			return multihook.HookConfig{}, fmt.Errorf("--config: %w", err)
		}
		return multihook.HookConfigFromMap(m)
	}

	points := make([]multihook.HookPoint, 0, len(activatePoints))
	for _, name := range activatePoints {
		p, err := multihook.ParseHookPoint(name)
		if err != nil {
			return multihook.HookConfig{}, err
		}
		points = append(points, p)
	}
	return multihook.NewHookConfig(points...), nil
}
