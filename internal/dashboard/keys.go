package dashboard

// KeyEvent is a single key press. Key holds the key as a string, e.g. "q"
// for a printable character or "ctrl+c" for a control sequence.
type KeyEvent struct {
	Key string
}

// Key bindings. Matching is exact and case-sensitive.
const (
	KeyQuit    = "q"
	KeyTrigger = "t"
	KeyReset   = "r"
)

// Action is what a key press asks the dashboard to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTrigger
	ActionReset
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionTrigger:
		return "trigger"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// ActionFor maps a key event to its action. Unbound keys map to ActionNone.
func ActionFor(ev KeyEvent) Action {
	switch ev.Key {
	case KeyQuit:
		return ActionQuit
	case KeyTrigger:
		return ActionTrigger
	case KeyReset:
		return ActionReset
	default:
		return ActionNone
	}
}

// Binding describes a key for help text.
type Binding struct {
	Key  string
	Desc string
}

// Bindings lists the recognized keys in display order.
var Bindings = []Binding{
	{Key: KeyQuit, Desc: "Quit"},
	{Key: KeyReset, Desc: "Reset the alarms"},
	{Key: KeyTrigger, Desc: "Trigger the alarm"},
}
