package multihook

import "fmt"

// HookPoint identifies one of the pool lifecycle events a hook can attach to.
// The numeric order is the canonical order used by every register layout.
type HookPoint uint8

const (
	BeforeInitialize HookPoint = iota
	AfterInitialize
	BeforeAddLiquidity
	AfterAddLiquidity
	BeforeRemoveLiquidity
	AfterRemoveLiquidity
	BeforeSwap
	AfterSwap
	BeforeDonate
	AfterDonate
)

// NumHookPoints is the number of lifecycle events.
const NumHookPoints = 10

var hookPointNames = [NumHookPoints]string{
	"beforeInitialize",
	"afterInitialize",
	"beforeAddLiquidity",
	"afterAddLiquidity",
	"beforeRemoveLiquidity",
	"afterRemoveLiquidity",
	"beforeSwap",
	"afterSwap",
	"beforeDonate",
	"afterDonate",
}

var hookPointsByName = func() map[string]HookPoint {
	m := make(map[string]HookPoint, NumHookPoints)
	for i, name := range hookPointNames {
		m[name] = HookPoint(i)
	}
	return m
}()

// HookPoints returns all hook points in canonical order, from the most
// significant register slice to the least significant.
func HookPoints() []HookPoint {
	points := make([]HookPoint, NumHookPoints)
	for i := range points {
		points[i] = HookPoint(i)
	}
	return points
}

// ParseHookPoint resolves a camelCase hook point name such as "afterSwap".
func ParseHookPoint(name string) (HookPoint, error) {
	p, ok := hookPointsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHookPoint, name)
	}
	return p, nil
}

// Valid reports whether p is one of the defined hook points.
func (p HookPoint) Valid() bool {
	return p < NumHookPoints
}

func (p HookPoint) String() string {
	if !p.Valid() {
		return fmt.Sprintf("HookPoint(%d)", uint8(p))
	}
	return hookPointNames[p]
}

// ActivationShift returns the bit offset of p's slice in an ActivationRegister.
func (p HookPoint) ActivationShift() uint {
	return uint(NumHookPoints-1-int(p)) * SliceBits
}

// QueueShift returns the bit offset of p's slice in a QueueRegister.
func (p HookPoint) QueueShift() uint {
	return uint(NumHookPoints-1-int(p)) * PositionBits
}

// MarshalText implements encoding.TextMarshaler.
func (p HookPoint) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHookPoint, uint8(p))
	}
	return []byte(hookPointNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *HookPoint) UnmarshalText(text []byte) error {
	parsed, err := ParseHookPoint(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// HookID identifies a hook within a pool's hook set.
type HookID uint8

// MaxHooks is the number of distinct hook ids, bounded by the flag field width.
const MaxHooks = FlagBits

// Validate returns a *HookIDError if id is outside [0, MaxHooks-1].
func (id HookID) Validate() error {
	if int(id) >= MaxHooks {
		return &HookIDError{ID: int(id), Limit: MaxHooks}
	}
	return nil
}

// flagBit is the bit of id inside a 16-bit flag field. Hook 0 occupies the
// highest bit.
func (id HookID) flagBit() uint16 {
	return 1 << (FlagBits - 1 - uint(id))
}
