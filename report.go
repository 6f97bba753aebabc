package multihook

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SliceReport is the decoded view of one activation slice. SliceBinary is
// the raw [count:4][flags:16] slice.
type SliceReport struct {
	Point       HookPoint `json:"point"`
	Count       int       `json:"count"`
	Flags       uint16    `json:"flags"`
	FlagsBinary string    `json:"flagsBinary"`
	SliceBinary string    `json:"sliceBinary"`
	Hooks       []int     `json:"hooks"`
}

// PositionReport is the decoded view of one queue slice.
type PositionReport struct {
	Point    HookPoint `json:"point"`
	Position int       `json:"position"`
}

// RegisterValue renders a register in the bases used for display.
type RegisterValue struct {
	Binary  string       `json:"binary"`
	Decimal string       `json:"decimal"`
	Hex     string       `json:"hex"`
	Word    *hexutil.Big `json:"word"`
}

// ActivationSummary is the full decoded view of an ActivationRegister.
type ActivationSummary struct {
	Value  RegisterValue `json:"value"`
	Slices []SliceReport `json:"slices"`
}

// QueueSummary is the full decoded view of one hook's QueueRegister.
type QueueSummary struct {
	Hook      HookID           `json:"hook"`
	Value     RegisterValue    `json:"value"`
	Positions []PositionReport `json:"positions"`
}

// Value returns r in binary, decimal and hex.
func (r ActivationRegister) Value() RegisterValue {
	return RegisterValue{
		Binary:  r.Binary(),
		Decimal: r.Dec(),
		Hex:     r.Hex(),
		Word:    (*hexutil.Big)(r.Big()),
	}
}

// Value returns q in binary, decimal and hex.
func (q QueueRegister) Value() RegisterValue {
	return RegisterValue{
		Binary:  q.Binary(),
		Decimal: q.Dec(),
		Hex:     q.Hex(),
		Word:    (*hexutil.Big)(q.Big()),
	}
}

// ActivationReport decodes every slice of r in canonical order.
func ActivationReport(r ActivationRegister) []SliceReport {
	out := make([]SliceReport, 0, NumHookPoints)
	for _, p := range HookPoints() {
		flags := r.Flags(p)
		active := r.ActiveHooks(p)
		hooks := make([]int, len(active))
		for i, id := range active {
			hooks[i] = int(id)
		}
		out = append(out, SliceReport{
			Point:       p,
			Count:       r.CountActive(p),
			Flags:       flags,
			FlagsBinary: fmt.Sprintf("%016b", flags),
			SliceBinary: fmt.Sprintf("%020b", r.Slice(p)),
			Hooks:       hooks,
		})
	}
	return out
}

// QueueReport decodes every slice of q in canonical order.
func QueueReport(q QueueRegister) []PositionReport {
	out := make([]PositionReport, 0, NumHookPoints)
	for _, p := range HookPoints() {
		out = append(out, PositionReport{Point: p, Position: q.Position(p)})
	}
	return out
}

// SummarizeActivation returns the decoded view of r.
func SummarizeActivation(r ActivationRegister) ActivationSummary {
	return ActivationSummary{Value: r.Value(), Slices: ActivationReport(r)}
}

// SummarizeQueue returns the decoded view of hook id's queue register.
func SummarizeQueue(id HookID, q QueueRegister) QueueSummary {
	return QueueSummary{Hook: id, Value: q.Value(), Positions: QueueReport(q)}
}

// FormatActivation renders one line per hook point:
//
//	afterSwap: 2 hook(s), flags=0b1100000000000000
//	afterDonate: none
func FormatActivation(r ActivationRegister) string {
	var b strings.Builder
	for _, s := range ActivationReport(r) {
		if s.Count == 0 {
			fmt.Fprintf(&b, "%s: none\n", s.Point)
			continue
		}
		fmt.Fprintf(&b, "%s: %d hook(s), flags=0b%s\n", s.Point, s.Count, s.FlagsBinary)
	}
	return b.String()
}

// FormatQueue renders a hook's queue register followed by one line per
// hook point.
func FormatQueue(id HookID, q QueueRegister) string {
	var b strings.Builder
	fmt.Fprintf(&b, "HookId=%d => hookQueue=%s (dec=%s)\n", id, q.Hex(), q.Dec())
	for _, s := range QueueReport(q) {
		fmt.Fprintf(&b, "   %s: queuePos=%d\n", s.Point, s.Position)
	}
	return b.String()
}
