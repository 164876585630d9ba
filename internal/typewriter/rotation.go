package typewriter

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// ErrInvalidArgument is returned when a phrase list or Config cannot drive a cycler.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	DefaultTypeDelay   = 100 * time.Millisecond
	DefaultDeleteDelay = 60 * time.Millisecond
	DefaultPauseDelay  = 1000 * time.Millisecond
)

// Config holds the three tunable delays of the effect.
type Config struct {
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	PauseDelay  time.Duration
}

// DefaultConfig types slower than it deletes and dwells for a second.
func DefaultConfig() Config {
	return Config{
		TypeDelay:   DefaultTypeDelay,
		DeleteDelay: DefaultDeleteDelay,
		PauseDelay:  DefaultPauseDelay,
	}
}

// Validate reports whether cfg can drive a cycler. Character delays must be
// positive; a zero pause deletes right after the phrase completes.
func (cfg Config) Validate() error {
	if cfg.TypeDelay <= 0 {
		return fmt.Errorf("%w: type delay must be positive, got %v", ErrInvalidArgument, cfg.TypeDelay)
	}
	if cfg.DeleteDelay <= 0 {
		return fmt.Errorf("%w: delete delay must be positive, got %v", ErrInvalidArgument, cfg.DeleteDelay)
	}
	if cfg.PauseDelay < 0 {
		return fmt.Errorf("%w: pause delay must not be negative, got %v", ErrInvalidArgument, cfg.PauseDelay)
	}
	return nil
}

// Rotation is a validated, immutable phrase list paired with its timing.
type Rotation struct {
	phrases [][]rune
	cfg     Config
}

// NewRotation copies phrases and validates them together with cfg.
func NewRotation(phrases []string, cfg Config) (*Rotation, error) {
	if len(phrases) == 0 {
		return nil, fmt.Errorf("%w: phrase list is empty", ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runes := make([][]rune, len(phrases))
	for i, p := range phrases {
		if p == "" {
			return nil, fmt.Errorf("%w: phrase %d is empty", ErrInvalidArgument, i)
		}
		runes[i] = []rune(p)
	}
	return &Rotation{phrases: runes, cfg: cfg}, nil
}

func (r *Rotation) Len() int {
	return len(r.phrases)
}

func (r *Rotation) Config() Config {
	return r.cfg
}

// Phrase returns the i-th phrase.
func (r *Rotation) Phrase(i int) string {
	return string(r.phrases[i])
}

// Phrases returns a copy of the phrase list.
func (r *Rotation) Phrases() []string {
	out := make([]string, len(r.phrases))
	for i, p := range r.phrases {
		out[i] = string(p)
	}
	return out
}

// Step advances s by one tick.
func (r *Rotation) Step(s State) State {
	return Step(s, r.phrases)
}

// Text renders the displayed text of s.
func (r *Rotation) Text(s State) string {
	return string(r.phrases[s.Index][:s.Length])
}

// Delay is how long the machine waits in s before its next tick.
func (r *Rotation) Delay(s State) time.Duration {
	switch s.Mode {
	case PausedAfterType:
		return r.cfg.PauseDelay
	case Deleting:
		return r.cfg.DeleteDelay
	default:
		return r.cfg.TypeDelay
	}
}

// Frame is one snapshot of the display string at a tick boundary. Delay is the
// time that elapsed since the previous frame.
type Frame struct {
	Index int
	Text  string
	Mode  Mode
	Delay time.Duration
}

// Frames yields the infinite tick-by-tick sequence starting from the initial
// state. Each call starts over, so two ranges produce identical frames.
func (r *Rotation) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		s := Initial()
		for {
			d := r.Delay(s)
			s = r.Step(s)
			if !yield(Frame{Index: s.Index, Text: r.Text(s), Mode: s.Mode, Delay: d}) {
				return
			}
		}
	}
}
