package multihook

import (
	"errors"
	"testing"
)

func fullConfigMap(enabled ...string) map[string]bool {
	m := make(map[string]bool, NumHookPoints)
	for _, p := range HookPoints() {
		m[p.String()] = false
	}
	for _, name := range enabled {
		m[name] = true
	}
	return m
}

func TestNewHookConfig(t *testing.T) {
	cfg := NewHookConfig(BeforeSwap, AfterSwap, HookPoint(42))

	if !cfg.Enabled(BeforeSwap) || !cfg.Enabled(AfterSwap) {
		t.Error("Expected beforeSwap and afterSwap enabled")
	}
	if cfg.Enabled(AfterDonate) {
		t.Error("Expected afterDonate disabled")
	}
	if cfg.Enabled(HookPoint(42)) {
		t.Error("Invalid hook point should never be enabled")
	}

	points := cfg.Points()
	if len(points) != 2 || points[0] != BeforeSwap || points[1] != AfterSwap {
		t.Errorf("Expected [beforeSwap afterSwap], got %v", points)
	}
	if cfg.String() != "{beforeSwap, afterSwap}" {
		t.Errorf("Unexpected String(): %s", cfg.String())
	}
}

func TestHookConfigWith(t *testing.T) {
	base := NewHookConfig(AfterSwap)
	next := base.With(AfterSwap, false).With(BeforeDonate, true)

	if !base.Enabled(AfterSwap) {
		t.Error("With must not modify the receiver")
	}
	if next.Enabled(AfterSwap) || !next.Enabled(BeforeDonate) {
		t.Errorf("Unexpected config %v", next)
	}
}

func TestHookConfigFromMap(t *testing.T) {
	t.Run("complete map", func(t *testing.T) {
		cfg, err := HookConfigFromMap(fullConfigMap("afterRemoveLiquidity", "beforeSwap", "afterSwap"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg != NewHookConfig(AfterRemoveLiquidity, BeforeSwap, AfterSwap) {
			t.Errorf("Unexpected config %v", cfg)
		}
	})

	t.Run("missing hook points", func(t *testing.T) {
		m := fullConfigMap("afterSwap")
		delete(m, "beforeDonate")
		delete(m, "beforeInitialize")

		_, err := HookConfigFromMap(m)
		if !errors.Is(err, ErrIncompleteConfig) {
			t.Fatalf("Expected ErrIncompleteConfig, got %v", err)
		}
		var missing *MissingHookPointsError
		if !errors.As(err, &missing) {
			t.Fatal("Expected *MissingHookPointsError")
		}
		if len(missing.Points) != 2 || missing.Points[0] != BeforeInitialize || missing.Points[1] != BeforeDonate {
			t.Errorf("Expected [beforeInitialize beforeDonate], got %v", missing.Points)
		}
	})

	t.Run("empty map", func(t *testing.T) {
		_, err := HookConfigFromMap(nil)
		var missing *MissingHookPointsError
		if !errors.As(err, &missing) {
			t.Fatalf("Expected *MissingHookPointsError, got %v", err)
		}
		if len(missing.Points) != NumHookPoints {
			t.Errorf("Expected %d missing points, got %d", NumHookPoints, len(missing.Points))
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		m := fullConfigMap()
		m["beforeFlash"] = true
		if _, err := HookConfigFromMap(m); !errors.Is(err, ErrUnknownHookPoint) {
			t.Errorf("Expected ErrUnknownHookPoint, got %v", err)
		}
	})
}

func TestHookConfigMapRoundTrip(t *testing.T) {
	cfg := NewHookConfig(BeforeInitialize, AfterDonate)
	m := cfg.Map()
	if len(m) != NumHookPoints {
		t.Fatalf("Expected %d entries, got %d", NumHookPoints, len(m))
	}
	back, err := HookConfigFromMap(m)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if back != cfg {
		t.Errorf("Expected %v, got %v", cfg, back)
	}
}
