package typewriter

import "sync"

// Snapshot is a consistent read of a cycler's state.
type Snapshot struct {
	Index int
	Text  string
	Mode  Mode
}

// Option configures a Cycler.
type Option func(*Cycler)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Cycler) {
		c.sched = s
	}
}

// WithObserver registers fn to be called after every tick with the new
// state. fn runs on the timer goroutine outside the cycler's lock.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Cycler) {
		c.observer = fn
	}
}

// Cycler drives a Rotation on a scheduler, typing, pausing on and deleting
// each phrase in turn forever. At most one tick is pending at any time.
type Cycler struct {
	sched    Scheduler
	observer func(Snapshot)

	mu       sync.Mutex
	rotation *Rotation
	state    State
	text     string
	timer    Timer
	running  bool

	// gen invalidates callbacks of a previous run that lost the race with Stop.
	gen uint64
}

func New(opts ...Option) *Cycler {
	c := &Cycler{sched: RealScheduler{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start validates phrases and cfg and begins the cycle from the initial
// state. On error nothing changes. Starting a running cycler restarts it.
func (c *Cycler) Start(phrases []string, cfg Config) error {
	r, err := NewRotation(phrases, cfg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.rotation = r
	c.state = Initial()
	c.text = ""
	c.running = true
	c.armLocked()
	return nil
}

// CurrentText returns the displayed text.
func (c *Cycler) CurrentText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func (c *Cycler) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Index: c.state.Index, Text: c.text, Mode: c.state.Mode}
}

func (c *Cycler) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Stop cancels the pending tick. Once Stop returns the state no longer
// changes. Calling it again has no effect.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Cycler) stopLocked() {
	if !c.running {
		return
	}
	c.running = false
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Cycler) armLocked() {
	gen := c.gen
	c.timer = c.sched.AfterFunc(c.rotation.Delay(c.state), func() {
		c.tick(gen)
	})
}

func (c *Cycler) tick(gen uint64) {
	c.mu.Lock()
	if !c.running || c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.state = c.rotation.Step(c.state)
	c.text = c.rotation.Text(c.state)
	snap := Snapshot{Index: c.state.Index, Text: c.text, Mode: c.state.Mode}
	c.timer = nil
	c.mu.Unlock()

	if c.observer != nil {
		c.observer(snap)
	}

	// Re-arm only after the observer returns so notifications never overlap.
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running && c.gen == gen {
		c.armLocked()
	}
}
