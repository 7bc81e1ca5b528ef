package input

import (
	"sync"
)

// Action represents a logical game action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveForward
	ActionMoveBackward
	ActionJump
	ActionPause
	ActionToggleHUD
	ActionToggleProfiling
	ActionReset
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Key is a host-defined physical key code (glfw.Key, a terminal rune, ...)
type Key int

// State is the per-frame key query consumed by the simulation
type State interface {
	IsActive(action Action) bool
	JustPressed(action Action) bool
}

// InputManager maps physical keys to logical actions and tracks press edges
// between frames. Hosts feed it key events and call PostUpdate once per frame.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[Key][]Action

	// physical keys currently down, and how many of them drive each action
	down    map[Key]bool
	holders [ActionCount]int

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Previous frame state (for edge detection)
	prevState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with no bindings
func NewInputManager() *InputManager {
	return &InputManager{
		keyToActions: make(map[Key][]Action),
		down:         make(map[Key]bool),
	}
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key. A key that is down
// releases its actions first.
func (im *InputManager) UnbindKey(key Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.down[key] {
		im.setKey(key, false)
	}
	delete(im.keyToActions, key)
}

// HandleKey records a press or release of a physical key
func (im *InputManager) HandleKey(key Key, pressed bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	// repeats and stray releases carry no new information
	if im.down[key] == pressed {
		return
	}
	im.setKey(key, pressed)
}

// setKey updates action state for a key transition. An action stays active
// while any key bound to it is down.
func (im *InputManager) setKey(key Key, pressed bool) {
	if pressed {
		im.down[key] = true
	} else {
		delete(im.down, key)
	}
	for _, act := range im.keyToActions[key] {
		if pressed {
			im.holders[act]++
		} else if im.holders[act] > 0 {
			im.holders[act]--
		}
		active := im.holders[act] > 0

		// Detect edges immediately when event arrives
		if active && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !active && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = active
	}
}

// PostUpdate must be called at the end of each frame to update edge detection states
// This should be called after all input checks are done
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	// Reset edge flags and update prev state
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
		im.prevState[i] = im.currentState[i]
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// Snapshot copies the current frame's state
func (im *InputManager) Snapshot() Snapshot {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return Snapshot{Pressed: im.currentState, Fresh: im.justPressed}
}
