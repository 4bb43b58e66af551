// Package session holds the explicit state the view layer renders: the list
// load status, the wheel animator and the result presenter.
package session

import (
	"luckywheel/internal/present"
	"luckywheel/internal/selector"
	"luckywheel/internal/wheel"
)

type LoadStatus int

const (
	Loading LoadStatus = iota
	Failed
	Empty
	Ready
)

func (s LoadStatus) String() string {
	switch s {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Empty:
		return "empty"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// Session is not safe for concurrent use; the UI event loop owns it.
type Session struct {
	sel      *selector.Selector
	sched    wheel.Scheduler
	wheelOpt []wheel.Option

	status  LoadStatus
	loadErr string
	sites   []string

	anim *wheel.Animator
	pres *present.Presenter
}

// New returns a session in the Loading state.
func New(sel *selector.Selector, sched wheel.Scheduler, fav present.FaviconConfig, opts ...wheel.Option) *Session {
	s := &Session{
		sel:      sel,
		sched:    sched,
		wheelOpt: opts,
		pres:     present.NewPresenter(fav),
	}
	s.anim = wheel.New(nil, sel, sched, opts...)
	return s
}

// Loaded installs the site list. The list is loaded once per session: only
// the first outcome, success or failure, is accepted.
func (s *Session) Loaded(sites []string) bool {
	if s.status != Loading {
		return false
	}
	s.sites = sites
	s.anim = wheel.New(sites, s.sel, s.sched, s.wheelOpt...)
	if len(sites) == 0 {
		s.status = Empty
	} else {
		s.status = Ready
	}
	return true
}

// LoadFailed records err. Failed is terminal: spinning stays disabled for
// the rest of the session. The message is kept verbatim.
func (s *Session) LoadFailed(err error) bool {
	if s.status != Loading {
		return false
	}
	s.status = Failed
	if err != nil {
		s.loadErr = err.Error()
	}
	return true
}

func (s *Session) Status() LoadStatus {
	return s.status
}

// LoadError is the message of the last failed load.
func (s *Session) LoadError() string {
	return s.loadErr
}

func (s *Session) Sites() []string {
	return s.sites
}

func (s *Session) Animator() *wheel.Animator {
	return s.anim
}

func (s *Session) Presenter() *present.Presenter {
	return s.pres
}

func (s *Session) Spinning() bool {
	return s.anim.State() == wheel.Spinning
}

// ShowingResult reports whether the result dialog is open.
func (s *Session) ShowingResult() bool {
	_, ok := s.pres.Current()
	return ok
}

// CanSpin reports whether Spin would start a new spin.
func (s *Session) CanSpin() bool {
	return s.status == Ready && !s.ShowingResult() && s.anim.CanSpin()
}

// Spin starts a spin when the list is ready, no result is shown and the
// wheel is idle. Every other request is dropped.
func (s *Session) Spin() (wheel.Spin, bool) {
	if !s.CanSpin() {
		return wheel.Spin{}, false
	}
	return s.anim.Spin()
}

// Complete finishes spin id and presents the result captured when it
// started.
func (s *Session) Complete(id uint64) (present.DisplayRecord, bool) {
	res, ok := s.anim.Complete(id)
	if !ok {
		return present.DisplayRecord{}, false
	}
	return s.pres.Present(res.Raw), true
}

// Dismiss closes the result dialog so the wheel can spin again.
func (s *Session) Dismiss() {
	s.pres.Dismiss()
}
