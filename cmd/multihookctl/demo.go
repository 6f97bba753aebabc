package main

import (
	"fmt"

	multihook "github.com/branched-services/go-multihook"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

type demoHook struct {
	address   common.Address
	points    []multihook.HookPoint
	positions []int
}

// demoHooks is the three-hook reference pool: each hook claims positions
// 0..2 across its own hook points.
var demoHooks = []demoHook{
	{
		address:   common.HexToAddress("0x12ec0547a9943b3dd6ac5e7c4d2f669ea04d00f6"),
		points:    []multihook.HookPoint{multihook.AfterRemoveLiquidity, multihook.BeforeSwap, multihook.AfterSwap},
		positions: []int{0, 1, 2},
	},
	{
		address:   common.HexToAddress("0x34bead769df4f6eac4eac4eac769df7c76e7a7f5"),
		points:    []multihook.HookPoint{multihook.BeforeInitialize, multihook.AfterSwap, multihook.AfterDonate},
		positions: []int{0, 1, 2},
	},
	{
		address:   common.HexToAddress("0x3d9e68c69bc4d07a1d1d32f3e5e2e62f2b26e456"),
		points:    []multihook.HookPoint{multihook.BeforeAddLiquidity, multihook.AfterAddLiquidity, multihook.BeforeDonate},
		positions: []int{0, 1, 2},
	},
}

type demoReport struct {
	Activation multihook.ActivationSummary `json:"activation"`
	Queues     []multihook.QueueSummary    `json:"queues"`
	Hooks      []common.Address            `json:"hooks"`
	Calldata   string                      `json:"calldata"`
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build, validate and print a three-hook example pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	pool := multihook.NewPool(multihook.WithTotalHooks(len(demoHooks)))

	for _, h := range demoHooks {
		id, err := pool.Register(h.address, multihook.NewHookConfig(h.points...))
		if err != nil {
			return fmt.Errorf("register %s: %w", h.address.Hex(), err)
		}
		printVerbose("Registered %s as hook %d\n", h.address.Hex(), id)

		for i, point := range h.points {
			if err := pool.SetPosition(id, point, h.positions[i]); err != nil {
				return fmt.Errorf("hook %d: %w", id, err)
			}
		}
	}

	if err := pool.Validate(); err != nil {
		return err
	}

	calldata, err := multihook.EncodeHookConfigCall(pool.Activation(), pool.Hooks(), queueList(pool))
	if err != nil {
		return err
	}

	if jsonOut {
		report := demoReport{
			Activation: multihook.SummarizeActivation(pool.Activation()),
			Hooks:      pool.Hooks(),
			Calldata:   hexutil.Encode(calldata),
		}
		for id, q := range queueList(pool) {
			report.Queues = append(report.Queues, multihook.SummarizeQueue(multihook.HookID(id), q))
		}
		return printJSON(report)
	}

	printInfo("=== %d hooks, queue positions 0..%d ===\n", pool.Len(), pool.TotalHooks()-1)
	for id, q := range queueList(pool) {
		printInfo("\n%s", multihook.FormatQueue(multihook.HookID(id), q))
	}

	printInfo("\nQueue validation passed: no collisions among active hooks.\n")

	act := pool.Activation()
	printInfo("\n=== Activation register ===\n")
	printInfo("Decimal: %s\n", act.Dec())
	printInfo("Hex:     %s\n", act.Hex())
	printInfo("\n%s", multihook.FormatActivation(act))
	printVerbose("\nCalldata: %s\n", hexutil.Encode(calldata))
	return nil
}

func queueList(pool *multihook.Pool) []multihook.QueueRegister {
	queues := pool.Queues()
	out := make([]multihook.QueueRegister, pool.Len())
	for id, q := range queues {
		out[id] = q
	}
	return out
}
