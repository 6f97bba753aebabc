package multihook

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestHookPointOrder(t *testing.T) {
	want := []string{
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

	points := HookPoints()
	if len(points) != NumHookPoints {
		t.Fatalf("Expected %d hook points, got %d", NumHookPoints, len(points))
	}
	for i, p := range points {
		if p.String() != want[i] {
			t.Errorf("Point %d: expected %s, got %s", i, want[i], p.String())
		}
	}
}

func TestHookPointShifts(t *testing.T) {
	tests := []struct {
		point      HookPoint
		activation uint
		queue      uint
	}{
		{BeforeInitialize, 180, 36},
		{AfterInitialize, 160, 32},
		{BeforeAddLiquidity, 140, 28},
		{AfterAddLiquidity, 120, 24},
		{BeforeRemoveLiquidity, 100, 20},
		{AfterRemoveLiquidity, 80, 16},
		{BeforeSwap, 60, 12},
		{AfterSwap, 40, 8},
		{BeforeDonate, 20, 4},
		{AfterDonate, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.point.String(), func(t *testing.T) {
			if got := tt.point.ActivationShift(); got != tt.activation {
				t.Errorf("Expected activation shift %d, got %d", tt.activation, got)
			}
			if got := tt.point.QueueShift(); got != tt.queue {
				t.Errorf("Expected queue shift %d, got %d", tt.queue, got)
			}
		})
	}
}

func TestParseHookPoint(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for _, p := range HookPoints() {
			got, err := ParseHookPoint(p.String())
			if err != nil {
				t.Fatalf("ParseHookPoint(%q) failed: %v", p.String(), err)
			}
			if got != p {
				t.Errorf("Expected %v, got %v", p, got)
			}
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseHookPoint("beforeFlash")
		if !errors.Is(err, ErrUnknownHookPoint) {
			t.Errorf("Expected ErrUnknownHookPoint, got %v", err)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if _, err := ParseHookPoint("AfterSwap"); err == nil {
			t.Error("Expected error for wrong case")
		}
	})
}

func TestHookPointInvalid(t *testing.T) {
	p := HookPoint(NumHookPoints)
	if p.Valid() {
		t.Error("Expected out-of-range hook point to be invalid")
	}
	if p.String() != "HookPoint(10)" {
		t.Errorf("Expected HookPoint(10), got %s", p.String())
	}
	if _, err := p.MarshalText(); !errors.Is(err, ErrUnknownHookPoint) {
		t.Errorf("Expected ErrUnknownHookPoint, got %v", err)
	}
}

func TestHookPointJSON(t *testing.T) {
	data, err := json.Marshal(map[string]HookPoint{"p": BeforeDonate})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"p":"beforeDonate"}` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	var decoded map[string]HookPoint
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["p"] != BeforeDonate {
		t.Errorf("Expected beforeDonate, got %v", decoded["p"])
	}
}

func TestHookIDValidate(t *testing.T) {
	for id := 0; id < MaxHooks; id++ {
		if err := HookID(id).Validate(); err != nil {
			t.Errorf("Hook %d: unexpected error %v", id, err)
		}
	}

	err := HookID(16).Validate()
	if !errors.Is(err, ErrHookIDOutOfRange) {
		t.Fatalf("Expected ErrHookIDOutOfRange, got %v", err)
	}
	var idErr *HookIDError
	if !errors.As(err, &idErr) {
		t.Fatal("Expected *HookIDError")
	}
	if idErr.ID != 16 {
		t.Errorf("Expected ID 16, got %d", idErr.ID)
	}
}

func TestHookIDFlagBitMirrorsID(t *testing.T) {
	if HookID(0).flagBit() != 0x8000 {
		t.Errorf("Expected hook 0 at bit 15, got %#x", HookID(0).flagBit())
	}
	if HookID(15).flagBit() != 0x0001 {
		t.Errorf("Expected hook 15 at bit 0, got %#x", HookID(15).flagBit())
	}
}
