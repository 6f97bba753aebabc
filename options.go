package multihook

// PoolOption configures a Pool.
type PoolOption func(*poolConfig)

// poolConfig holds configuration for a Pool.
type poolConfig struct {
	totalHooks     int
	maxActiveHooks int
}

// defaultPoolConfig returns the default pool configuration.
func defaultPoolConfig() *poolConfig {
	return &poolConfig{
		totalHooks:     MaxHooks,
		maxActiveHooks: MaxActiveHooks,
	}
}

// WithTotalHooks sets the number of hooks the pool holds. Queue positions
// are limited to [0, n-1]. Default is 16 (MaxHooks); values are clamped to
// [1, MaxHooks].
func WithTotalHooks(n int) PoolOption {
	return func(c *poolConfig) {
		if n < 1 {
			n = 1
		}
		if n > MaxHooks {
			n = MaxHooks
		}
		c.totalHooks = n
	}
}

// WithMaxActiveHooks limits how many hooks may be active at a single hook
// point. Default is 15 (MaxActiveHooks); values are clamped to
// [1, MaxActiveHooks].
func WithMaxActiveHooks(n int) PoolOption {
	return func(c *poolConfig) {
		if n < 1 {
			n = 1
		}
		if n > MaxActiveHooks {
			n = MaxActiveHooks
		}
		c.maxActiveHooks = n
	}
}
