package prompt

import "context"

// Key is one recognised keypress.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyToggle
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyToggle:
		return "toggle"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// KeyReader blocks until exactly one key event is available.
type KeyReader interface {
	ReadKey(ctx context.Context) (Key, error)
}

// ParseKey maps the bytes of one terminal read to a Key.
// Arrow keys arrive as ESC [ A/B, or ESC O A/B in application cursor mode.
func ParseKey(b []byte) Key {
	if len(b) == 0 {
		return KeyUnknown
	}
	if b[0] == 0x1b {
		if len(b) == 1 {
			return KeyQuit // bare Esc
		}
		if len(b) >= 3 && (b[1] == '[' || b[1] == 'O') {
			switch b[2] {
			case 'A':
				return KeyUp
			case 'B':
				return KeyDown
			}
		}
		return KeyUnknown
	}
	if len(b) != 1 {
		return KeyUnknown
	}
	switch b[0] {
	case '\r', '\n':
		return KeyEnter
	case ' ':
		return KeyToggle
	case 'q', 'Q', 3: // 3 = Ctrl+C
		return KeyQuit
	case 'k':
		return KeyUp
	case 'j':
		return KeyDown
	}
	return KeyUnknown
}
