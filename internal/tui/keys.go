package tui

import (
	"time"
	"unicode"

	"mini-platformer/internal/input"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow bridges the gap between a key's first press and the
// terminal's auto-repeat.
const DefaultHoldWindow = 300 * time.Millisecond

// special keys live above the rune range
const specialBase = 1 << 21

// KeyOf maps a terminal key event to an input.Key. Letters are case-folded.
func KeyOf(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		return input.Key(unicode.ToLower(ev.Rune()))
	}
	return special(ev.Key())
}

func special(k tcell.Key) input.Key {
	return input.Key(specialBase + int(k))
}

// Bind installs the terminal key layout.
func Bind(im *input.InputManager) {
	bindings := map[input.Key][]input.Action{
		input.Key('a'):         {input.ActionMoveLeft},
		input.Key('h'):         {input.ActionMoveLeft},
		special(tcell.KeyLeft): {input.ActionMoveLeft},

		input.Key('d'):          {input.ActionMoveRight},
		input.Key('l'):          {input.ActionMoveRight},
		special(tcell.KeyRight): {input.ActionMoveRight},

		input.Key('w'):       {input.ActionMoveForward},
		input.Key('k'):       {input.ActionMoveForward},
		special(tcell.KeyUp): {input.ActionMoveForward},

		input.Key('s'):         {input.ActionMoveBackward},
		input.Key('j'):         {input.ActionMoveBackward},
		special(tcell.KeyDown): {input.ActionMoveBackward},

		input.Key(' '): {input.ActionJump},
		input.Key('p'): {input.ActionPause},
		input.Key('r'): {input.ActionReset},
		input.Key('q'): {input.ActionQuit},

		special(tcell.KeyTab):    {input.ActionToggleHUD},
		special(tcell.KeyF3):     {input.ActionToggleProfiling},
		special(tcell.KeyEscape): {input.ActionQuit},
		special(tcell.KeyCtrlC):  {input.ActionQuit},
	}
	for k, actions := range bindings {
		for _, a := range actions {
			im.BindKey(k, a)
		}
	}
}

// Holder turns terminal key presses, which never report a release, into
// press and release pairs: a key counts as held until window passes without
// another press of it.
type Holder struct {
	im     *input.InputManager
	window time.Duration
	until  map[input.Key]time.Time
}

func NewHolder(im *input.InputManager, window time.Duration) *Holder {
	return &Holder{im: im, window: window, until: make(map[input.Key]time.Time)}
}

// Press records a key event at now.
func (h *Holder) Press(k input.Key, now time.Time) {
	if _, held := h.until[k]; !held {
		h.im.HandleKey(k, true)
	}
	h.until[k] = now.Add(h.window)
}

// Expire releases every key whose window has passed.
func (h *Holder) Expire(now time.Time) {
	for k, deadline := range h.until {
		if !now.Before(deadline) {
			h.im.HandleKey(k, false)
			delete(h.until, k)
		}
	}
}

// Held reports how many keys are currently held.
func (h *Holder) Held() int {
	return len(h.until)
}
