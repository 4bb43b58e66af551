// Package wheel drives the spin-or-idle state machine of the wheel: it picks
// a result when a spin starts, schedules the completion and interpolates the
// visible rotation while the wheel turns.
package wheel

import (
	"time"

	"luckywheel/internal/selector"
	"luckywheel/internal/util"
)

const (
	DefaultDuration    = 5 * time.Second
	DefaultRevolutions = 5
)

type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	}
	return "unknown"
}

// Scheduler arranges for Animator.Complete(id) to be invoked once d has
// elapsed. Implementations must not block.
type Scheduler interface {
	Schedule(d time.Duration, id uint64)
}

// Spin describes one in-flight spin.
type Spin struct {
	ID        uint64
	Result    selector.Result
	From      float64
	Delta     float64
	StartedAt time.Time
	Duration  time.Duration
}

// Target is the cumulative rotation the spin comes to rest at.
func (s Spin) Target() float64 {
	return s.From + s.Delta
}

type Animator struct {
	sites       []string
	sel         *selector.Selector
	sched       Scheduler
	duration    time.Duration
	revolutions int
	now         func() time.Time

	state    State
	rotation float64
	current  *Spin
	nextID   uint64
}

type Option func(*Animator)

func WithDuration(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.duration = d
		}
	}
}

func WithRevolutions(k int) Option {
	return func(a *Animator) {
		if k >= 0 {
			a.revolutions = k
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Animator) { a.now = now }
}

// New returns an idle Animator over sites. The site list is not copied and
// must not change while the Animator is in use.
func New(sites []string, sel *selector.Selector, sched Scheduler, opts ...Option) *Animator {
	a := &Animator{
		sites:       sites,
		sel:         sel,
		sched:       sched,
		duration:    DefaultDuration,
		revolutions: DefaultRevolutions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animator) State() State {
	return a.state
}

func (a *Animator) Duration() time.Duration {
	return a.duration
}

// Len is the number of entries on the wheel.
func (a *Animator) Len() int {
	return len(a.sites)
}

// CanSpin reports whether a spin request would be accepted.
func (a *Animator) CanSpin() bool {
	return a.state == Idle && len(a.sites) > 0
}

// Current returns the in-flight spin, if any.
func (a *Animator) Current() (Spin, bool) {
	if a.current == nil {
		return Spin{}, false
	}
	return *a.current, true
}

// Spin starts a spin. Requests while already spinning, or on an empty wheel,
// are dropped and return false.
func (a *Animator) Spin() (Spin, bool) {
	if !a.CanSpin() {
		return Spin{}, false
	}

	res, err := a.sel.Pick(a.sites)
	if err != nil {
		return Spin{}, false
	}

	n := len(a.sites)
	from := a.rotation
	delta := selector.TargetDelta(from, res.Index, n, a.revolutions, a.sel.Offset(n))

	a.nextID++
	spin := Spin{
		ID:        a.nextID,
		Result:    res,
		From:      from,
		Delta:     delta,
		StartedAt: a.now(),
		Duration:  a.duration,
	}
	a.current = &spin
	a.rotation = spin.Target()
	a.state = Spinning

	a.sched.Schedule(a.duration, spin.ID)
	return spin, true
}

// Complete finishes the spin with the given id and returns the result picked
// when it started. Unknown or stale ids are ignored.
func (a *Animator) Complete(id uint64) (selector.Result, bool) {
	if a.state != Spinning || a.current == nil || a.current.ID != id {
		return selector.Result{}, false
	}
	res := a.current.Result
	a.rotation = a.current.Target()
	a.current = nil
	a.state = Idle
	return res, true
}

// Progress returns the elapsed fraction of the current spin in [0, 1]. An
// idle wheel reports 1.
func (a *Animator) Progress(t time.Time) float64 {
	if a.current == nil {
		return 1
	}
	if a.current.Duration <= 0 {
		return 1
	}
	p := float64(t.Sub(a.current.StartedAt)) / float64(a.current.Duration)
	return util.Clamp(p, 0, 1)
}

// RotationAt returns the visible cumulative rotation at t. While spinning it
// eases out from the spin's start towards its target and never moves
// backwards; when idle it is the resting rotation.
func (a *Animator) RotationAt(t time.Time) float64 {
	if a.current == nil {
		return a.rotation
	}
	return a.current.From + a.current.Delta*EaseOutCubic(a.Progress(t))
}

// Rotation is RotationAt for the current time.
func (a *Animator) Rotation() float64 {
	return a.RotationAt(a.now())
}
