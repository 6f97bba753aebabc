package multihook

import (
	"fmt"
	"sort"
	"strings"
)

// HookConfig records, for every hook point, whether a hook participates in it.
// It is a total record: there is no way to leave a hook point unspecified.
type HookConfig [NumHookPoints]bool

// NewHookConfig returns a config with exactly the given points enabled.
func NewHookConfig(points ...HookPoint) HookConfig {
	var c HookConfig
	for _, p := range points {
		if p.Valid() {
			c[p] = true
		}
	}
	return c
}

// HookConfigFromMap converts a named participation map, as supplied by
// callers working with hook point names, into a HookConfig. Every hook point
// must be present.
func HookConfigFromMap(m map[string]bool) (HookConfig, error) {
	var c HookConfig

	unknown := make([]string, 0)
	for name := range m {
		if _, ok := hookPointsByName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return c, fmt.Errorf("%w: %s", ErrUnknownHookPoint, strings.Join(unknown, ", "))
	}

	var missing []HookPoint
	for i, name := range hookPointNames {
		enabled, ok := m[name]
		if !ok {
			missing = append(missing, HookPoint(i))
			continue
		}
		c[i] = enabled
	}
	if len(missing) > 0 {
		return c, &MissingHookPointsError{Points: missing}
	}

	return c, nil
}

// Enabled reports whether p is enabled.
func (c HookConfig) Enabled(p HookPoint) bool {
	return p.Valid() && c[p]
}

// With returns a copy of c with p set to enabled.
func (c HookConfig) With(p HookPoint, enabled bool) HookConfig {
	if p.Valid() {
		c[p] = enabled
	}
	return c
}

// Points returns the enabled hook points in canonical order.
func (c HookConfig) Points() []HookPoint {
	points := make([]HookPoint, 0, NumHookPoints)
	for i, enabled := range c {
		if enabled {
			points = append(points, HookPoint(i))
		}
	}
	return points
}

// Map returns the config as a name -> enabled map covering every hook point.
func (c HookConfig) Map() map[string]bool {
	m := make(map[string]bool, NumHookPoints)
	for i, enabled := range c {
		m[hookPointNames[i]] = enabled
	}
	return m
}

func (c HookConfig) String() string {
	points := c.Points()
	if len(points) == 0 {
		return "{}"
	}
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = p.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
