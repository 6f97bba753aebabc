package multihook

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Activation register layout constants.
const (
	// CountBits is the width of the active-count field of a slice.
	CountBits = 4

	// FlagBits is the width of the active-flags field of a slice.
	FlagBits = 16

	// SliceBits is the width of one hook point's slice.
	SliceBits = CountBits + FlagBits

	// ActivationBits is the number of bits used in an ActivationRegister.
	ActivationBits = NumHookPoints * SliceBits

	// MaxActiveHooks is the largest count the 4-bit count field can hold.
	MaxActiveHooks = 1<<CountBits - 1

	sliceMask = 1<<SliceBits - 1
	flagsMask = 1<<FlagBits - 1
	countMask = 1<<CountBits - 1
)

// ActivationRegister is the pool-wide record of which hooks are active at
// which hook points. Each hook point owns a 20-bit slice laid out as
// [count:4][flags:16], with beforeInitialize in the most significant slice.
//
// ActivationRegister is a value type: every mutating operation returns a new
// register and leaves the receiver unchanged. The zero value has no hooks
// active anywhere.
type ActivationRegister struct {
	word uint256.Int
}

// ActivationRegisterFromUint256 wraps a 256-bit word, rejecting values with
// bits set above the 200-bit layout.
func ActivationRegisterFromUint256(v *uint256.Int) (ActivationRegister, error) {
	var r ActivationRegister
	if v == nil {
		return r, fmt.Errorf("%w: nil value", ErrInvalidRegister)
	}
	if v.BitLen() > ActivationBits {
		return r, fmt.Errorf("%w: %d bits, max %d", ErrRegisterOverflow, v.BitLen(), ActivationBits)
	}
	r.word.Set(v)
	return r, nil
}

// ActivationRegisterFromBig is like ActivationRegisterFromUint256 for big.Int input.
func ActivationRegisterFromBig(v *big.Int) (ActivationRegister, error) {
	if v == nil {
		return ActivationRegister{}, fmt.Errorf("%w: nil value", ErrInvalidRegister)
	}
	if v.Sign() < 0 {
		return ActivationRegister{}, fmt.Errorf("%w: negative value", ErrInvalidRegister)
	}
	word, overflow := uint256.FromBig(v)
	if overflow {
		return ActivationRegister{}, fmt.Errorf("%w: %d bits, max %d", ErrRegisterOverflow, v.BitLen(), ActivationBits)
	}
	return ActivationRegisterFromUint256(word)
}

// ParseActivationRegister parses a register written in decimal, 0x-prefixed
// hex or 0b-prefixed binary.
func ParseActivationRegister(s string) (ActivationRegister, error) {
	v, err := parseRegisterText(s)
	if err != nil {
		return ActivationRegister{}, err
	}
	return ActivationRegisterFromBig(v)
}

// MustParseActivationRegister is like ParseActivationRegister but panics on error.
func MustParseActivationRegister(s string) ActivationRegister {
	r, err := ParseActivationRegister(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Activate folds a hook's participation into the register: for every hook
// point the flag bit of id is set or cleared according to cfg and the count
// field is recomputed from the flags. All ten slices are rewritten.
//
// Activating with the same cfg and id twice yields the same register. An
// error leaves no partial update; the receiver is never modified.
func (r ActivationRegister) Activate(cfg HookConfig, id HookID) (ActivationRegister, error) {
	if err := id.Validate(); err != nil {
		return r, err
	}

	next := r
	bit := id.flagBit()
	for _, p := range HookPoints() {
		flags := next.Flags(p)
		if cfg[p] {
			flags |= bit
		} else {
			flags &^= bit
		}

		count := bits.OnesCount16(flags)
		if count > MaxActiveHooks {
			return r, &SliceError{Point: p, Err: ErrTooManyActiveHooks}
		}

		next.setSlice(p, uint64(count)<<FlagBits|uint64(flags))
	}
	return next, nil
}

// MustActivate is like Activate but panics on error.
func (r ActivationRegister) MustActivate(cfg HookConfig, id HookID) ActivationRegister {
	next, err := r.Activate(cfg, id)
	if err != nil {
		panic(err)
	}
	return next
}

// Deactivate clears id from every hook point.
func (r ActivationRegister) Deactivate(id HookID) (ActivationRegister, error) {
	return r.Activate(HookConfig{}, id)
}

// IsActive reports whether id is active at p.
func (r ActivationRegister) IsActive(id HookID, p HookPoint) bool {
	if id.Validate() != nil || !p.Valid() {
		return false
	}
	return r.Flags(p)&id.flagBit() != 0
}

// CountActive returns the count field of p's slice. The value is read from
// the register as stored, not recomputed from the flags.
func (r ActivationRegister) CountActive(p HookPoint) int {
	return int(r.Slice(p)>>FlagBits) & countMask
}

// Flags returns the 16-bit active-flags field of p's slice.
func (r ActivationRegister) Flags(p HookPoint) uint16 {
	return uint16(r.Slice(p) & flagsMask)
}

// Slice returns p's raw 20-bit slice.
func (r ActivationRegister) Slice(p HookPoint) uint32 {
	if !p.Valid() {
		return 0
	}
	var v uint256.Int
	v.Rsh(&r.word, p.ActivationShift())
	return uint32(v.Uint64() & sliceMask)
}

// ActiveHooks returns the hooks active at p in ascending id order.
func (r ActivationRegister) ActiveHooks(p HookPoint) []HookID {
	flags := r.Flags(p)
	ids := make([]HookID, 0, bits.OnesCount16(flags))
	for id := HookID(0); id < MaxHooks; id++ {
		if flags&id.flagBit() != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// Config returns the hook points at which id is active.
func (r ActivationRegister) Config(id HookID) HookConfig {
	var cfg HookConfig
	for _, p := range HookPoints() {
		cfg[p] = r.IsActive(id, p)
	}
	return cfg
}

// Verify checks that every slice's count field equals the number of set
// flags. Registers produced by Activate always pass; registers read from
// external storage may not.
func (r ActivationRegister) Verify() error {
	for _, p := range HookPoints() {
		want := bits.OnesCount16(r.Flags(p))
		if got := r.CountActive(p); got != want {
			return &SliceError{
				Point: p,
				Err:   fmt.Errorf("%w: count %d, flags hold %d", ErrCountMismatch, got, want),
			}
		}
	}
	return nil
}

// IsZero reports whether no hook is active anywhere.
func (r ActivationRegister) IsZero() bool {
	return r.word.IsZero()
}

// Equal reports whether two registers hold the same value.
func (r ActivationRegister) Equal(o ActivationRegister) bool {
	return r.word.Eq(&o.word)
}

// Uint256 returns a copy of the underlying word.
func (r ActivationRegister) Uint256() *uint256.Int {
	return r.word.Clone()
}

// Big returns the register as a big.Int.
func (r ActivationRegister) Big() *big.Int {
	return r.word.ToBig()
}

// Hash returns the register as a 32-byte big-endian storage word.
func (r ActivationRegister) Hash() common.Hash {
	return common.Hash(r.word.Bytes32())
}

// Hex returns the register as 0x-prefixed hex without leading zeros.
func (r ActivationRegister) Hex() string {
	return r.word.Hex()
}

// Dec returns the register in decimal.
func (r ActivationRegister) Dec() string {
	return r.word.Dec()
}

// Binary returns the register in binary, zero-padded to the full layout width.
func (r ActivationRegister) Binary() string {
	s := r.word.ToBig().Text(2)
	if len(s) < ActivationBits {
		s = strings.Repeat("0", ActivationBits-len(s)) + s
	}
	return s
}

func (r ActivationRegister) String() string {
	return r.Hex()
}

// setSlice overwrites p's 20-bit slice in place.
func (r *ActivationRegister) setSlice(p HookPoint, slice uint64) {
	shift := p.ActivationShift()

	var mask uint256.Int
	mask.Lsh(uint256.NewInt(sliceMask), shift)
	mask.Not(&mask)
	r.word.And(&r.word, &mask)

	var v uint256.Int
	v.Lsh(uint256.NewInt(slice&sliceMask), shift)
	r.word.Or(&r.word, &v)
}

// parseRegisterText accepts decimal, 0x hex and 0b binary text.
func parseRegisterText(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidRegister)
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("%w: negative value %q", ErrInvalidRegister, s)
	}

	v := new(big.Int)
	lower := strings.ToLower(s)
	var ok bool
	switch {
	case strings.HasPrefix(lower, "0x"):
		_, ok = v.SetString(lower[2:], 16)
	case strings.HasPrefix(lower, "0b"):
		_, ok = v.SetString(lower[2:], 2)
	default:
		_, ok = v.SetString(s, 10)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegister, s)
	}
	return v, nil
}
