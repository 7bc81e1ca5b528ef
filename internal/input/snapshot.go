package input

// Snapshot is an immutable key state for one frame.
type Snapshot struct {
	Pressed [ActionCount]bool
	Fresh   [ActionCount]bool
}

// Held returns a snapshot with the given actions held down but not freshly pressed.
func Held(actions ...Action) Snapshot {
	var s Snapshot
	for _, a := range actions {
		if a >= 0 && a < ActionCount {
			s.Pressed[a] = true
		}
	}
	return s
}

// Pressed returns a snapshot where the given actions went down this frame.
func Pressed(actions ...Action) Snapshot {
	s := Held(actions...)
	for _, a := range actions {
		if a >= 0 && a < ActionCount {
			s.Fresh[a] = true
		}
	}
	return s
}

func (s Snapshot) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return s.Pressed[action]
}

func (s Snapshot) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return s.Fresh[action]
}

// With merges another snapshot into s.
func (s Snapshot) With(o Snapshot) Snapshot {
	for i := range ActionCount {
		s.Pressed[i] = s.Pressed[i] || o.Pressed[i]
		s.Fresh[i] = s.Fresh[i] || o.Fresh[i]
	}
	return s
}
