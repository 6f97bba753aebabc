package multihook

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrHookIDOutOfRange indicates a hook id outside [0, 15] or beyond the
	// pool's configured hook count.
	ErrHookIDOutOfRange = errors.New("multihook: hook id out of range")

	// ErrPositionOutOfRange indicates a queue position outside [0, totalHooks-1].
	ErrPositionOutOfRange = errors.New("multihook: queue position out of range")

	// ErrIncompleteConfig indicates an activation map that omits hook points.
	ErrIncompleteConfig = errors.New("multihook: incomplete activation config")

	// ErrOrdinalCollision indicates two active hooks share a queue position.
	ErrOrdinalCollision = errors.New("multihook: queue position collision")

	// ErrUnknownHookPoint indicates a hook point name or value that is not defined.
	ErrUnknownHookPoint = errors.New("multihook: unknown hook point")

	// ErrTooManyActiveHooks indicates a slice would hold more active hooks
	// than its 4-bit count field can represent.
	ErrTooManyActiveHooks = errors.New("multihook: too many active hooks at hook point")

	// ErrRegisterOverflow indicates a value wider than the register layout.
	ErrRegisterOverflow = errors.New("multihook: value exceeds register width")

	// ErrCountMismatch indicates a slice whose count field disagrees with its flags.
	ErrCountMismatch = errors.New("multihook: active count does not match flags")

	// ErrInvalidRegister indicates register text that cannot be parsed.
	ErrInvalidRegister = errors.New("multihook: invalid register value")

	// ErrTotalHooksOutOfRange indicates a hook count outside [1, 16].
	ErrTotalHooksOutOfRange = errors.New("multihook: total hooks out of range (1-16)")

	// ErrDuplicateHook indicates a hook address registered twice in a pool.
	ErrDuplicateHook = errors.New("multihook: hook already registered")

	// ErrHookNotRegistered indicates a hook id with no registered hook.
	ErrHookNotRegistered = errors.New("multihook: hook not registered")

	// ErrLengthMismatch indicates hook and queue lists of different lengths.
	ErrLengthMismatch = errors.New("multihook: hook and queue counts differ")

	// ErrPoolFull indicates the pool already holds its configured number of hooks.
	ErrPoolFull = errors.New("multihook: pool hook limit reached")
)

// HookIDError indicates a hook id outside the permitted range.
type HookIDError struct {
	ID    int
	Limit int
}

func (e *HookIDError) Error() string {
	return fmt.Sprintf("multihook: hook id %d out of range [0, %d]", e.ID, e.Limit-1)
}

func (e *HookIDError) Unwrap() error {
	return ErrHookIDOutOfRange
}

// PositionError indicates a queue position outside [0, TotalHooks-1].
type PositionError struct {
	Point      HookPoint
	Position   int
	TotalHooks int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("multihook: queue position %d for %s out of range [0, %d]",
		e.Position, e.Point, e.TotalHooks-1)
}

func (e *PositionError) Unwrap() error {
	return ErrPositionOutOfRange
}

// MissingHookPointsError lists the hook points absent from an activation map.
type MissingHookPointsError struct {
	Points []HookPoint
}

func (e *MissingHookPointsError) Error() string {
	names := make([]string, len(e.Points))
	for i, p := range e.Points {
		names[i] = p.String()
	}
	return fmt.Sprintf("multihook: incomplete activation config: missing %s", strings.Join(names, ", "))
}

func (e *MissingHookPointsError) Unwrap() error {
	return ErrIncompleteConfig
}

// CollisionError identifies two active hooks claiming the same queue
// position at a hook point. First is always the lower hook id.
type CollisionError struct {
	Point    HookPoint
	First    HookID
	Second   HookID
	Position int
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("multihook: queue collision at %s: hooks %d and %d both claim position %d",
		e.Point, e.First, e.Second, e.Position)
}

func (e *CollisionError) Unwrap() error {
	return ErrOrdinalCollision
}

// SliceError attaches the offending hook point to a register error.
type SliceError struct {
	Point HookPoint
	Err   error
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("multihook: %s: %v", e.Point, e.Err)
}

func (e *SliceError) Unwrap() error {
	return e.Err
}
