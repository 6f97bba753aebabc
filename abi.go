package multihook

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// hookConfigABIJSON describes the pool contract entry point that stores a
// pool's hook configuration.
const hookConfigABIJSON = `[
	{
		"name": "setHooksConfig",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "activatedHooks", "type": "uint256"},
			{"name": "hooks", "type": "address[]"},
			{"name": "hookQueues", "type": "uint96[]"}
		],
		"outputs": []
	}
]`

// SetHooksConfigMethod is the name of the configuration method in HookConfigABI.
const SetHooksConfigMethod = "setHooksConfig"

// HookConfigABI is the parsed ABI of the pool configuration entry point.
var HookConfigABI = MustParseABI(hookConfigABIJSON)

// HookConfigData is a decoded pool configuration.
type HookConfigData struct {
	Activation ActivationRegister
	Hooks      []common.Address
	Queues     []QueueRegister
}

// QueueMap returns the queues keyed by hook id, as Validate expects.
func (d *HookConfigData) QueueMap() map[HookID]QueueRegister {
	out := make(map[HookID]QueueRegister, len(d.Queues))
	for i, q := range d.Queues {
		out[HookID(i)] = q
	}
	return out
}

// EncodeHookConfig ABI-encodes (uint256 activatedHooks, address[] hooks,
// uint96[] hookQueues). hooks[i] and queues[i] belong to hook id i.
func EncodeHookConfig(r ActivationRegister, hooks []common.Address, queues []QueueRegister) ([]byte, error) {
	args, err := hookConfigArgs(r, hooks, queues)
	if err != nil {
		return nil, err
	}
	return HookConfigABI.Methods[SetHooksConfigMethod].Inputs.Pack(args...)
}

// EncodeHookConfigCall is like EncodeHookConfig but prefixes the 4-byte
// method selector, producing transaction calldata.
func EncodeHookConfigCall(r ActivationRegister, hooks []common.Address, queues []QueueRegister) ([]byte, error) {
	args, err := hookConfigArgs(r, hooks, queues)
	if err != nil {
		return nil, err
	}
	return HookConfigABI.Pack(SetHooksConfigMethod, args...)
}

// DecodeHookConfig reverses EncodeHookConfig and checks that the decoded
// registers respect their layouts and that every active hook is listed.
func DecodeHookConfig(data []byte) (*HookConfigData, error) {
	values, err := HookConfigABI.Methods[SetHooksConfigMethod].Inputs.Unpack(data)
	if err != nil {
		return nil, err
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("%w: expected 3 values, got %d", ErrInvalidRegister, len(values))
	}

	word, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: activatedHooks has type %T", ErrInvalidRegister, values[0])
	}
	hooks, ok := values[1].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("%w: hooks has type %T", ErrInvalidRegister, values[1])
	}
	rawQueues, ok := values[2].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: hookQueues has type %T", ErrInvalidRegister, values[2])
	}
	if len(hooks) != len(rawQueues) {
		return nil, fmt.Errorf("%w: %d hooks, %d queues", ErrLengthMismatch, len(hooks), len(rawQueues))
	}
	if len(hooks) > MaxHooks {
		return nil, &HookIDError{ID: len(hooks) - 1, Limit: MaxHooks}
	}

	activation, err := ActivationRegisterFromBig(word)
	if err != nil {
		return nil, err
	}
	if err := activation.Verify(); err != nil {
		return nil, err
	}
	if err := checkActiveListed(activation, len(hooks)); err != nil {
		return nil, err
	}

	queues := make([]QueueRegister, len(rawQueues))
	for i, raw := range rawQueues {
		q, err := QueueRegisterFromBig(raw)
		if err != nil {
			return nil, fmt.Errorf("hook %d: %w", i, err)
		}
		queues[i] = q
	}

	return &HookConfigData{
		Activation: activation,
		Hooks:      hooks,
		Queues:     queues,
	}, nil
}

// checkActiveListed rejects flags for hook ids with no entry in the hook list.
func checkActiveListed(r ActivationRegister, n int) error {
	for _, p := range HookPoints() {
		for _, id := range r.ActiveHooks(p) {
			if int(id) >= n {
				return &SliceError{
					Point: p,
					Err:   fmt.Errorf("%w: hook %d active, %d hooks listed", ErrHookNotRegistered, id, n),
				}
			}
		}
	}
	return nil
}

func hookConfigArgs(r ActivationRegister, hooks []common.Address, queues []QueueRegister) ([]any, error) {
	if len(hooks) != len(queues) {
		return nil, fmt.Errorf("%w: %d hooks, %d queues", ErrLengthMismatch, len(hooks), len(queues))
	}
	if len(hooks) > MaxHooks {
		return nil, &HookIDError{ID: len(hooks) - 1, Limit: MaxHooks}
	}

	rawQueues := make([]*big.Int, len(queues))
	for i, q := range queues {
		if !q.Valid() {
			return nil, fmt.Errorf("hook %d: %w", i, ErrRegisterOverflow)
		}
		rawQueues[i] = q.Big()
	}

	addrs := make([]common.Address, len(hooks))
	copy(addrs, hooks)

	return []any{r.Big(), addrs, rawQueues}, nil
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
