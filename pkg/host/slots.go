package host

// Slots is the set of callback slots owned by one builder or widget.
//
// Role slots are keyed by the property they were written to ("onShow",
// "onApprove"). Replacing a role keeps the previous slot alive: a host may
// already have captured its handle, so superseded slots are released
// together with the rest when the owner goes away.
type Slots struct {
	roles      map[string]*Slot
	superseded []*Slot
	actions    []*Slot
}

// Set makes slot the current callback for role.
func (s *Slots) Set(role string, slot *Slot) {
	if s.roles == nil {
		s.roles = make(map[string]*Slot)
	}
	if old, ok := s.roles[role]; ok && old != slot {
		s.superseded = append(s.superseded, old)
	}
	s.roles[role] = slot
}

// Role returns the current slot for role, or nil.
func (s *Slots) Role(role string) *Slot {
	return s.roles[role]
}

// Take removes and returns the current slot for role. Superseded slots
// stay in the set.
func (s *Slots) Take(role string) *Slot {
	slot := s.roles[role]
	delete(s.roles, role)
	return slot
}

// AppendActions adds per-action slots in order.
func (s *Slots) AppendActions(slots ...*Slot) {
	s.actions = append(s.actions, slots...)
}

// Actions returns the per-action slots in attachment order.
func (s *Slots) Actions() []*Slot {
	out := make([]*Slot, len(s.actions))
	copy(out, s.actions)
	return out
}

// Adopt moves every slot owned by other into s. other is left empty.
func (s *Slots) Adopt(other *Slots) {
	if other == nil || other == s {
		return
	}
	s.superseded = append(s.superseded, other.superseded...)
	for role, slot := range other.roles {
		s.Set(role, slot)
	}
	s.actions = append(s.actions, other.actions...)
	*other = Slots{}
}

// Len returns the number of owned slots, superseded ones included.
func (s *Slots) Len() int {
	return len(s.roles) + len(s.superseded) + len(s.actions)
}

// Release releases every owned slot exactly once and empties the set.
// It returns the number of slots released.
func (s *Slots) Release() int {
	n := 0
	release := func(slot *Slot) {
		if slot != nil && !slot.Released() {
			slot.Release()
			n++
		}
	}
	for _, slot := range s.roles {
		release(slot)
	}
	for _, slot := range s.superseded {
		release(slot)
	}
	for _, slot := range s.actions {
		release(slot)
	}
	*s = Slots{}
	return n
}
