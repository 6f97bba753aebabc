package multihook

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

var (
	hookAddr0 = common.HexToAddress("0x12ec0547a9943b3dd6ac5e7c4d2f669ea04d00f6")
	hookAddr1 = common.HexToAddress("0x34bead769df4f6eac4eac4eac769df7c76e7a7f5")
	hookAddr2 = common.HexToAddress("0x3d9e68c69bc4d07a1d1d32f3e5e2e62f2b26e456")
)

func newThreeHookPool(t *testing.T) *Pool {
	t.Helper()

	p := NewPool(WithTotalHooks(3))
	steps := []struct {
		addr      common.Address
		cfg       HookConfig
		positions map[HookPoint]int
	}{
		{hookAddr0, NewHookConfig(AfterRemoveLiquidity, BeforeSwap, AfterSwap),
			map[HookPoint]int{AfterRemoveLiquidity: 0, BeforeSwap: 1, AfterSwap: 2}},
		{hookAddr1, NewHookConfig(BeforeInitialize, AfterSwap, AfterDonate),
			map[HookPoint]int{BeforeInitialize: 0, AfterSwap: 1, AfterDonate: 2}},
		{hookAddr2, NewHookConfig(BeforeAddLiquidity, AfterAddLiquidity, BeforeDonate),
			map[HookPoint]int{BeforeAddLiquidity: 0, AfterAddLiquidity: 1, BeforeDonate: 2}},
	}

	for i, step := range steps {
		id, err := p.Register(step.addr, step.cfg)
		if err != nil {
			t.Fatalf("Register hook %d failed: %v", i, err)
		}
		if id != HookID(i) {
			t.Fatalf("Expected id %d, got %d", i, id)
		}
		for point, pos := range step.positions {
			if err := p.SetPosition(id, point, pos); err != nil {
				t.Fatalf("SetPosition(%d, %s, %d) failed: %v", id, point, pos, err)
			}
		}
	}
	return p
}

func TestPoolRegisterAndValidate(t *testing.T) {
	p := newThreeHookPool(t)

	if p.Len() != 3 {
		t.Errorf("Expected 3 hooks, got %d", p.Len())
	}
	if p.Consistent() {
		t.Error("Pool must not be consistent before Validate")
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !p.Consistent() {
		t.Error("Pool should be consistent after Validate")
	}
	if p.Activation().Hex() != "0x140000000012000120000000018000180002c0001200014000" {
		t.Errorf("Unexpected activation register %s", p.Activation().Hex())
	}

	q, err := p.Queue(0)
	if err != nil {
		t.Fatalf("Queue failed: %v", err)
	}
	if q != 0x1200 {
		t.Errorf("Expected hook 0 queue 0x1200, got %s", q.Hex())
	}
}

func TestPoolMutationClearsConsistency(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Pool) error
	}{
		{"configure", func(p *Pool) error { return p.Configure(2, NewHookConfig(AfterSwap)) }},
		{"deactivate", func(p *Pool) error { return p.Deactivate(0) }},
		{"set position", func(p *Pool) error { return p.SetPosition(1, AfterSwap, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newThreeHookPool(t)
			if err := p.Validate(); err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if err := tt.mutate(p); err != nil {
				t.Fatalf("Mutation failed: %v", err)
			}
			if p.Consistent() {
				t.Error("Mutation must clear consistency")
			}
		})
	}
}

func TestPoolValidateCollision(t *testing.T) {
	p := newThreeHookPool(t)
	if err := p.SetPosition(0, AfterSwap, 1); err != nil {
		t.Fatalf("SetPosition failed: %v", err)
	}

	var collision *CollisionError
	if err := p.Validate(); !errors.As(err, &collision) {
		t.Fatalf("Expected collision, got %v", err)
	}
	if collision.Point != AfterSwap || collision.Position != 1 {
		t.Errorf("Unexpected collision %+v", collision)
	}
	if p.Consistent() {
		t.Error("Pool must not be consistent after a failed Validate")
	}

	// Hook 2 joining afterSwap at position 0 is fine once hook 0 moves back.
	if err := p.SetPosition(0, AfterSwap, 2); err != nil {
		t.Fatalf("SetPosition failed: %v", err)
	}
	if err := p.Configure(2, NewHookConfig(BeforeAddLiquidity, AfterAddLiquidity, AfterSwap, BeforeDonate)); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Expected valid pool, got %v", err)
	}
}

func TestPoolRegisterErrors(t *testing.T) {
	t.Run("duplicate address", func(t *testing.T) {
		p := NewPool()
		if _, err := p.Register(hookAddr0, NewHookConfig(AfterSwap)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := p.Register(hookAddr0, NewHookConfig(BeforeSwap)); !errors.Is(err, ErrDuplicateHook) {
			t.Errorf("Expected ErrDuplicateHook, got %v", err)
		}
		if p.Len() != 1 {
			t.Errorf("Expected 1 hook, got %d", p.Len())
		}
	})

	t.Run("pool full", func(t *testing.T) {
		p := NewPool(WithTotalHooks(2))
		p.Register(hookAddr0, HookConfig{})
		p.Register(hookAddr1, HookConfig{})
		if _, err := p.Register(hookAddr2, HookConfig{}); !errors.Is(err, ErrPoolFull) {
			t.Errorf("Expected ErrPoolFull, got %v", err)
		}
	})

	t.Run("active limit", func(t *testing.T) {
		p := NewPool(WithMaxActiveHooks(2))
		p.Register(hookAddr0, NewHookConfig(AfterSwap))
		p.Register(hookAddr1, NewHookConfig(AfterSwap))
		before := p.Activation()

		_, err := p.Register(hookAddr2, NewHookConfig(BeforeSwap, AfterSwap))
		if !errors.Is(err, ErrTooManyActiveHooks) {
			t.Fatalf("Expected ErrTooManyActiveHooks, got %v", err)
		}
		if !p.Activation().Equal(before) {
			t.Error("Rejected registration must not change the register")
		}
		if _, ok := p.HookID(hookAddr2); ok {
			t.Error("Rejected hook must not be registered")
		}
	})
}

func TestPoolHookLookups(t *testing.T) {
	p := newThreeHookPool(t)

	id, ok := p.HookID(hookAddr1)
	if !ok || id != 1 {
		t.Errorf("Expected id 1, got %d (%v)", id, ok)
	}
	if _, ok := p.HookID(common.Address{}); ok {
		t.Error("Unknown address must not resolve")
	}

	hooks := p.Hooks()
	hooks[0] = common.Address{}
	if p.Hooks()[0] != hookAddr0 {
		t.Error("Hooks must return a copy")
	}

	queues := p.Queues()
	queues[0] = 0
	if q, _ := p.Queue(0); q == 0 {
		t.Error("Queues must return a copy")
	}
}

func TestPoolUnknownHook(t *testing.T) {
	p := newThreeHookPool(t)

	tests := []struct {
		name    string
		id      HookID
		wantErr error
	}{
		{"beyond total hooks", 3, ErrHookIDOutOfRange},
		{"beyond field", 16, ErrHookIDOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.SetPosition(tt.id, AfterSwap, 0); !errors.Is(err, tt.wantErr) {
				t.Errorf("SetPosition: expected %v, got %v", tt.wantErr, err)
			}
			if err := p.Configure(tt.id, HookConfig{}); !errors.Is(err, tt.wantErr) {
				t.Errorf("Configure: expected %v, got %v", tt.wantErr, err)
			}
			if _, err := p.Queue(tt.id); !errors.Is(err, tt.wantErr) {
				t.Errorf("Queue: expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("not yet registered", func(t *testing.T) {
		p := NewPool()
		if err := p.SetPosition(0, AfterSwap, 0); !errors.Is(err, ErrHookNotRegistered) {
			t.Errorf("Expected ErrHookNotRegistered, got %v", err)
		}
	})
}

func TestPoolPositionBoundedByTotalHooks(t *testing.T) {
	p := newThreeHookPool(t)
	before, _ := p.Queue(1)

	if err := p.SetPosition(1, AfterSwap, 3); !errors.Is(err, ErrPositionOutOfRange) {
		t.Fatalf("Expected ErrPositionOutOfRange, got %v", err)
	}
	if after, _ := p.Queue(1); after != before {
		t.Error("Rejected position must not change the queue")
	}
}
