// Package multihook encodes the hook configuration of a pool that runs
// several hook contracts at the same lifecycle events.
//
// A pool can attach up to 16 hooks to 10 fixed hook points (beforeInitialize
// through afterDonate). Two kinds of packed registers describe the setup:
//
//   - ActivationRegister: one 200-bit word shared by the pool. Each hook point
//     owns a 20-bit slice holding a 4-bit count of active hooks and 16 flag
//     bits, one per hook id (hook 0 in the highest flag bit).
//
//   - QueueRegister: one 40-bit word per hook. Each hook point owns a 4-bit
//     slice holding the hook's execution position at that point.
//
// # Basic Usage
//
//	var act multihook.ActivationRegister
//	act, err := act.Activate(multihook.NewHookConfig(multihook.BeforeSwap, multihook.AfterSwap), 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var q0 multihook.QueueRegister
//	q0, err = q0.SetPosition(multihook.AfterSwap, 0, totalHooks)
//
//	if err := multihook.Validate(act, map[multihook.HookID]multihook.QueueRegister{0: q0}); err != nil {
//	    log.Fatal(err)
//	}
//
// Pool wraps the same steps for a set of hook addresses and tracks whether
// the configuration has been validated since it last changed.
//
// # Bit Layout
//
//	hook point             activation   queue
//	beforeInitialize       [199:180]    [39:36]
//	afterInitialize        [179:160]    [35:32]
//	beforeAddLiquidity     [159:140]    [31:28]
//	afterAddLiquidity      [139:120]    [27:24]
//	beforeRemoveLiquidity  [119:100]    [23:20]
//	afterRemoveLiquidity   [99:80]      [19:16]
//	beforeSwap             [79:60]      [15:12]
//	afterSwap              [59:40]      [11:8]
//	beforeDonate           [39:20]      [7:4]
//	afterDonate            [19:0]       [3:0]
//
// Registers are immutable values. Every operation returns a new register;
// callers that share one across goroutines must serialize updates.
package multihook
