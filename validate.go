package multihook

// Validate checks that no two hooks active at the same hook point claim the
// same queue position. Hook points are checked in canonical order and hooks
// in ascending id order; the first duplicate found is returned as a
// *CollisionError naming the lower and higher hook id.
//
// Positions of inactive (hook, hook point) pairs are ignored. An active hook
// missing from queues is read as the zero QueueRegister, which is what
// unwritten storage holds. Neither input is modified.
func Validate(r ActivationRegister, queues map[HookID]QueueRegister) error {
	for _, p := range HookPoints() {
		if c := collisionsAt(r, queues, p, true); len(c) > 0 {
			return c[0]
		}
	}
	return nil
}

// Collisions returns every collision in r and queues, one per hook whose
// position was already claimed at the same hook point. The result is empty
// iff Validate succeeds.
func Collisions(r ActivationRegister, queues map[HookID]QueueRegister) []*CollisionError {
	var out []*CollisionError
	for _, p := range HookPoints() {
		out = append(out, collisionsAt(r, queues, p, false)...)
	}
	return out
}

func collisionsAt(r ActivationRegister, queues map[HookID]QueueRegister, p HookPoint, first bool) []*CollisionError {
	var (
		out     []*CollisionError
		claimed [1 << PositionBits]int
	)
	for i := range claimed {
		claimed[i] = -1
	}

	for _, id := range r.ActiveHooks(p) {
		pos := queues[id].Position(p)
		if owner := claimed[pos]; owner >= 0 {
			out = append(out, &CollisionError{
				Point:    p,
				First:    HookID(owner),
				Second:   id,
				Position: pos,
			})
			if first {
				return out
			}
			continue
		}
		claimed[pos] = int(id)
	}
	return out
}
