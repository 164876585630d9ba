// Package typewriter animates a rotating list of phrases one character at a time.
package typewriter

// Mode is the phase of the typewriter state machine.
type Mode int

const (
	Typing Mode = iota
	PausedAfterType
	Deleting
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case PausedAfterType:
		return "paused"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// State is the mutable part of a running cycler. The displayed text is the
// first Length runes of the phrase at Index.
type State struct {
	Index  int
	Length int
	Mode   Mode
}

// Initial is the state every run begins in.
func Initial() State {
	return State{Index: 0, Length: 0, Mode: Typing}
}

// Step advances s by one tick over phrases. phrases must be non-empty and
// contain no empty phrase; Rotation guarantees both.
func Step(s State, phrases [][]rune) State {
	phrase := phrases[s.Index]

	switch s.Mode {
	case Typing:
		if s.Length < len(phrase) {
			s.Length++
		}
		if s.Length == len(phrase) {
			s.Mode = PausedAfterType
		}
	case PausedAfterType:
		s.Mode = Deleting
	case Deleting:
		if s.Length > 0 {
			s.Length--
		}
		if s.Length == 0 {
			s.Index = (s.Index + 1) % len(phrases)
			s.Mode = Typing
		}
	}
	return s
}
