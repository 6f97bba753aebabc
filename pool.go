package multihook

import (
	"github.com/ethereum/go-ethereum/common"
)

// Pool is the hook configuration of a single pool: one shared
// ActivationRegister plus one QueueRegister per registered hook.
//
// Hooks receive ids in registration order. The pool is consistent only after
// a successful Validate; any later mutation clears that state until the next
// Validate. Pool is not safe for concurrent use; callers that share one must
// serialize access.
type Pool struct {
	config     *poolConfig
	activation ActivationRegister
	hooks      []common.Address
	queues     []QueueRegister
	ids        map[common.Address]HookID
	consistent bool
}

// NewPool creates an empty pool with the given options.
func NewPool(opts ...PoolOption) *Pool {
	config := defaultPoolConfig()
	for _, opt := range opts {
		opt(config)
	}
	return &Pool{
		config: config,
		hooks:  make([]common.Address, 0, config.totalHooks),
		queues: make([]QueueRegister, 0, config.totalHooks),
		ids:    make(map[common.Address]HookID),
	}
}

// Register adds the hook at addr with the given participation and returns
// its id. The hook's queue register starts at zero.
func (p *Pool) Register(addr common.Address, cfg HookConfig) (HookID, error) {
	if _, exists := p.ids[addr]; exists {
		return 0, ErrDuplicateHook
	}
	if len(p.hooks) >= p.config.totalHooks {
		return 0, ErrPoolFull
	}

	id := HookID(len(p.hooks))
	next, err := p.activate(cfg, id)
	if err != nil {
		return 0, err
	}

	p.activation = next
	p.hooks = append(p.hooks, addr)
	p.queues = append(p.queues, 0)
	p.ids[addr] = id
	p.consistent = false
	return id, nil
}

// Configure replaces the participation of an already registered hook.
func (p *Pool) Configure(id HookID, cfg HookConfig) error {
	if err := p.checkRegistered(id); err != nil {
		return err
	}
	next, err := p.activate(cfg, id)
	if err != nil {
		return err
	}
	p.activation = next
	p.consistent = false
	return nil
}

// Deactivate removes a registered hook from every hook point. Its queue
// register is kept.
func (p *Pool) Deactivate(id HookID) error {
	return p.Configure(id, HookConfig{})
}

// SetPosition sets the queue position of hook id at point.
func (p *Pool) SetPosition(id HookID, point HookPoint, position int) error {
	if err := p.checkRegistered(id); err != nil {
		return err
	}
	next, err := p.queues[id].SetPosition(point, position, p.config.totalHooks)
	if err != nil {
		return err
	}
	p.queues[id] = next
	p.consistent = false
	return nil
}

// Validate checks the pool for queue collisions and, on success, marks it
// consistent.
func (p *Pool) Validate() error {
	if err := Validate(p.activation, p.Queues()); err != nil {
		p.consistent = false
		return err
	}
	p.consistent = true
	return nil
}

// Consistent reports whether the pool has passed Validate since its last change.
func (p *Pool) Consistent() bool {
	return p.consistent
}

// Activation returns the pool's activation register.
func (p *Pool) Activation() ActivationRegister {
	return p.activation
}

// Queue returns the queue register of hook id.
func (p *Pool) Queue(id HookID) (QueueRegister, error) {
	if err := p.checkRegistered(id); err != nil {
		return 0, err
	}
	return p.queues[id], nil
}

// Queues returns a copy of every registered hook's queue register.
func (p *Pool) Queues() map[HookID]QueueRegister {
	out := make(map[HookID]QueueRegister, len(p.queues))
	for i, q := range p.queues {
		out[HookID(i)] = q
	}
	return out
}

// Hooks returns the registered hook addresses indexed by id.
func (p *Pool) Hooks() []common.Address {
	out := make([]common.Address, len(p.hooks))
	copy(out, p.hooks)
	return out
}

// HookID returns the id assigned to addr.
func (p *Pool) HookID(addr common.Address) (HookID, bool) {
	id, ok := p.ids[addr]
	return id, ok
}

// Len returns the number of registered hooks.
func (p *Pool) Len() int {
	return len(p.hooks)
}

// TotalHooks returns the configured hook count bounding ids and positions.
func (p *Pool) TotalHooks() int {
	return p.config.totalHooks
}

// Encode ABI-encodes the pool's registers, see EncodeHookConfig.
func (p *Pool) Encode() ([]byte, error) {
	return EncodeHookConfig(p.activation, p.hooks, p.queues)
}

// activate applies cfg for id and enforces the pool's active-hook limit.
func (p *Pool) activate(cfg HookConfig, id HookID) (ActivationRegister, error) {
	next, err := p.activation.Activate(cfg, id)
	if err != nil {
		return p.activation, err
	}
	for _, point := range cfg.Points() {
		if next.CountActive(point) > p.config.maxActiveHooks {
			return p.activation, &SliceError{Point: point, Err: ErrTooManyActiveHooks}
		}
	}
	return next, nil
}

func (p *Pool) checkRegistered(id HookID) error {
	if int(id) >= p.config.totalHooks {
		return &HookIDError{ID: int(id), Limit: p.config.totalHooks}
	}
	if int(id) >= len(p.hooks) {
		return ErrHookNotRegistered
	}
	return nil
}
