package multihook

import (
	"fmt"
	"math/big"
	"strconv"
)

// Queue register layout constants.
const (
	// PositionBits is the width of one hook point's queue slice.
	PositionBits = 4

	// QueueBits is the number of bits used in a QueueRegister.
	QueueBits = NumHookPoints * PositionBits

	positionMask = 1<<PositionBits - 1
	queueMask    = 1<<QueueBits - 1
)

// QueueRegister holds one hook's execution position at each hook point in
// 4-bit slices, beforeInitialize in the most significant slice. A position
// is only meaningful where the hook is active in the pool's
// ActivationRegister; elsewhere it is ignored.
type QueueRegister uint64

// ParseQueueRegister parses a register written in decimal, 0x-prefixed hex
// or 0b-prefixed binary.
func ParseQueueRegister(s string) (QueueRegister, error) {
	v, err := parseRegisterText(s)
	if err != nil {
		return 0, err
	}
	return QueueRegisterFromBig(v)
}

// QueueRegisterFromBig converts v, rejecting values wider than 40 bits.
func QueueRegisterFromBig(v *big.Int) (QueueRegister, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil value", ErrInvalidRegister)
	}
	if v.Sign() < 0 {
		return 0, fmt.Errorf("%w: negative value", ErrInvalidRegister)
	}
	if v.BitLen() > QueueBits {
		return 0, fmt.Errorf("%w: %d bits, max %d", ErrRegisterOverflow, v.BitLen(), QueueBits)
	}
	return QueueRegister(v.Uint64()), nil
}

// SetPosition returns a copy of q with p's slice set to position. position
// must lie in [0, totalHooks-1]; totalHooks is the pool's hook count and
// must lie in [1, MaxHooks]. All other slices are left unchanged.
func (q QueueRegister) SetPosition(p HookPoint, position, totalHooks int) (QueueRegister, error) {
	if !p.Valid() {
		return q, fmt.Errorf("%w: %d", ErrUnknownHookPoint, uint8(p))
	}
	if totalHooks < 1 || totalHooks > MaxHooks {
		return q, fmt.Errorf("%w: %d", ErrTotalHooksOutOfRange, totalHooks)
	}
	if position < 0 || position >= totalHooks {
		return q, &PositionError{Point: p, Position: position, TotalHooks: totalHooks}
	}

	shift := p.QueueShift()
	next := q &^ (positionMask << shift)
	next |= QueueRegister(position) << shift
	return next, nil
}

// MustSetPosition is like SetPosition but panics on error.
func (q QueueRegister) MustSetPosition(p HookPoint, position, totalHooks int) QueueRegister {
	next, err := q.SetPosition(p, position, totalHooks)
	if err != nil {
		panic(err)
	}
	return next
}

// Position returns p's slice. Whether the value means anything depends on
// the hook being active at p.
func (q QueueRegister) Position(p HookPoint) int {
	if !p.Valid() {
		return 0
	}
	return int(q>>p.QueueShift()) & positionMask
}

// Positions returns every slice in canonical hook point order.
func (q QueueRegister) Positions() [NumHookPoints]int {
	var out [NumHookPoints]int
	for _, p := range HookPoints() {
		out[p] = q.Position(p)
	}
	return out
}

// Valid reports whether q fits the 40-bit layout.
func (q QueueRegister) Valid() bool {
	return q&^queueMask == 0
}

// Big returns q as a big.Int.
func (q QueueRegister) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(q))
}

// Hex returns q as 0x-prefixed hex without leading zeros.
func (q QueueRegister) Hex() string {
	return "0x" + strconv.FormatUint(uint64(q), 16)
}

// Dec returns q in decimal.
func (q QueueRegister) Dec() string {
	return strconv.FormatUint(uint64(q), 10)
}

// Binary returns q in binary, zero-padded to the full layout width.
func (q QueueRegister) Binary() string {
	return fmt.Sprintf("%0*b", QueueBits, uint64(q))
}

func (q QueueRegister) String() string {
	return q.Hex()
}
