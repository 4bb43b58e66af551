// Package tui is the terminal front end: it renders the wheel, drives the
// spin animation from the bubbletea event loop and shows the result dialog.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"luckywheel/internal/favicon"
	"luckywheel/internal/filter"
	"luckywheel/internal/label"
	"luckywheel/internal/logger"
	"luckywheel/internal/present"
	"luckywheel/internal/selector"
	"luckywheel/internal/session"
	"luckywheel/internal/sitelist"
	"luckywheel/internal/wheel"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const frameInterval = 33 * time.Millisecond

// FaviconFetcher downloads a favicon. *favicon.Fetcher implements it.
type FaviconFetcher interface {
	Fetch(ctx context.Context, url string) (*favicon.Icon, error)
}

// URLOpener opens a URL outside the terminal. *browser.Opener implements it.
type URLOpener interface {
	Open(url string) error
}

type Options struct {
	Provider sitelist.Provider
	Filter   *filter.Filter
	Selector *selector.Selector

	// Favicons may be nil, which disables favicon lookups.
	Favicons      FaviconFetcher
	FaviconConfig present.FaviconConfig

	// Opener may be nil, in which case "go to website" reports an error.
	Opener URLOpener

	Duration    time.Duration
	Revolutions int
	Palette     []string

	Clock   func() time.Time
	Context context.Context
}

type Model struct {
	opts  Options
	ctx   context.Context
	now   func() time.Time
	sess  *session.Session
	sched *tickScheduler

	labels  []string
	palette []lipgloss.Color

	spinner LoadingSpinner
	help    help.Model
	keys    keyMap

	width  int
	height int
	layout Layout

	icon      string
	status    string
	statusErr bool
}

type sitesLoadedMsg struct {
	sites []string
	err   error
}

type spinDoneMsg struct {
	id uint64
}

type frameMsg struct{}

type spinnerTickMsg struct{}

type faviconMsg struct {
	gen  uint64
	icon *favicon.Icon
	err  error
}

type openedMsg struct {
	url string
	err error
}

// tickScheduler turns Animator completions into tea.Tick commands. The
// commands are collected during Update and returned from it.
type tickScheduler struct {
	pending []tea.Cmd
}

func (s *tickScheduler) Schedule(d time.Duration, id uint64) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return spinDoneMsg{id: id}
	}))
}

func (s *tickScheduler) drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func New(opts Options) Model {
	if opts.Selector == nil {
		opts.Selector = selector.New(selector.DefaultSource())
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Favicons == nil {
		opts.FaviconConfig.Enabled = false
	}

	sched := &tickScheduler{}
	wheelOpts := []wheel.Option{wheel.WithClock(opts.Clock)}
	if opts.Duration > 0 {
		wheelOpts = append(wheelOpts, wheel.WithDuration(opts.Duration))
	}
	if opts.Revolutions > 0 {
		wheelOpts = append(wheelOpts, wheel.WithRevolutions(opts.Revolutions))
	}
	sess := session.New(opts.Selector, sched, opts.FaviconConfig, wheelOpts...)

	// Init issues the first tick of this chain.
	spinner, _ := LoadingSpinner{}.Start()

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(cyan)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(cyan)

	return Model{
		opts:    opts,
		ctx:     opts.Context,
		now:     opts.Clock,
		sess:    sess,
		sched:   sched,
		palette: toColors(opts.Palette),
		spinner: spinner,
		help:    h,
		keys:    keys,
	}
}

func toColors(palette []string) []lipgloss.Color {
	if len(palette) == 0 {
		return []lipgloss.Color{red, yellow, green, cyan}
	}
	out := make([]lipgloss.Color, len(palette))
	for i, c := range palette {
		out[i] = lipgloss.Color(c)
	}
	return out
}

// Session exposes the state container, for the CLI and tests.
func (m Model) Session() *session.Session {
	return m.sess
}

// Init starts the one list load of the session and the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSites(), m.spinner.Tick())
}

func (m Model) loadSites() tea.Cmd {
	provider, flt, ctx := m.opts.Provider, m.opts.Filter, m.ctx
	return func() tea.Msg {
		if provider == nil {
			return sitesLoadedMsg{err: errors.New("no site list configured")}
		}
		list, err := provider.Load(ctx)
		if err != nil {
			return sitesLoadedMsg{err: err}
		}
		kept, err := flt.Apply(list)
		if err != nil {
			return sitesLoadedMsg{err: err}
		}
		return sitesLoadedMsg{sites: kept}
	}
}

func fetchFavicon(ctx context.Context, f FaviconFetcher, gen uint64, url string) tea.Cmd {
	return func() tea.Msg {
		icon, err := f.Fetch(ctx, url)
		return faviconMsg{gen: gen, icon: icon, err: err}
	}
}

func openURL(o URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if o == nil {
			return openedMsg{url: url, err: fmt.Errorf("no browser available")}
		}
		return openedMsg{url: url, err: o.Open(url)}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m Model) needsSpinner() bool {
	return m.sess.Status() == session.Loading ||
		m.sess.Presenter().FaviconState() == present.FaviconLoading
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.contentDimensions()
		m.layout = NewLayout(w, h)
		m.help.Width = w
		return m, nil

	case sitesLoadedMsg:
		if msg.err != nil {
			if m.sess.LoadFailed(msg.err) {
				logger.L().Warn("sites.load_failed", "error", msg.err)
			}
			return m, nil
		}
		if m.sess.Loaded(msg.sites) {
			m.labels = make([]string, len(msg.sites))
			for i, raw := range msg.sites {
				m.labels[i] = label.Segment(raw)
			}
			logger.L().Info("sites.loaded", "count", len(msg.sites))
		}
		return m, nil

	case spinnerTickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Advance(m.needsSpinner())
		return m, cmd

	case frameMsg:
		if m.sess.Spinning() {
			return m, frameTick()
		}
		return m, nil

	case spinDoneMsg:
		rec, ok := m.sess.Complete(msg.id)
		if !ok {
			return m, nil
		}
		logger.L().Info("spin.completed", "raw", rec.Raw, "url", rec.CanonicalURL)
		m.icon = ""
		m.status = ""
		if !rec.HasFavicon() || m.opts.Favicons == nil {
			return m, nil
		}
		gen := m.sess.Presenter().Generation()
		var tick tea.Cmd
		m.spinner, tick = m.spinner.Start()
		return m, tea.Batch(fetchFavicon(m.ctx, m.opts.Favicons, gen, rec.FaviconURL), tick)

	case faviconMsg:
		p := m.sess.Presenter()
		if msg.err != nil || msg.icon == nil {
			if p.FaviconFailed(msg.gen) {
				logger.L().Debug("favicon.failed", "error", msg.err)
			}
			return m, nil
		}
		if p.FaviconLoaded(msg.gen) {
			m.icon = msg.icon.Render(IconCells)
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			logger.L().Warn("browser.open_failed", "url", msg.url, "error", msg.err)
			m.status = "Could not open browser: " + msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.status = "Opened " + msg.url
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if rec, ok := m.sess.Presenter().Current(); ok {
		switch {
		case key.Matches(msg, m.keys.Open):
			return m, openURL(m.opts.Opener, rec.CanonicalURL)
		case key.Matches(msg, m.keys.Dismiss):
			m.sess.Dismiss()
			m.icon = ""
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Spin):
		spin, ok := m.sess.Spin()
		if !ok {
			return m, nil
		}
		logger.L().Debug("spin.started", "id", spin.ID, "index", spin.Result.Index, "delta", spin.Delta)
		return m, tea.Batch(m.sched.drain(), frameTick())
	}

	return m, nil
}

func (m Model) contentDimensions() (width, height int) {
	width = max(m.width-4, 10)
	height = max(m.height-2, 3)
	return width, height
}

func (m Model) View() string {
	var content string
	if m.layout.IsTwoColumn() {
		content = m.renderTwoColumn()
	} else {
		content = m.renderStacked()
	}

	if m.width > 0 && m.height > 0 {
		return appContainerStyle.Render(content)
	}
	return content
}

func (m Model) renderTwoColumn() string {
	left := lipgloss.NewStyle().Width(m.layout.WheelWidth).Render(m.renderWheelColumn(m.layout.WheelWidth))
	if !m.sess.ShowingResult() {
		return left + "\n" + m.renderHelp()
	}
	right := m.renderResult(m.layout.DialogWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + m.renderHelp()
}

func (m Model) renderStacked() string {
	width := m.layout.WheelWidth
	if width <= 0 {
		width = 40
	}

	var s strings.Builder
	s.WriteString(m.renderWheelColumn(width))
	if m.sess.ShowingResult() {
		s.WriteString("\n")
		s.WriteString(m.renderResult(width))
	}
	s.WriteString("\n")
	s.WriteString(m.renderHelp())
	return s.String()
}

func (m Model) renderWheelColumn(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("I'M FEELING LUCKY"))
	s.WriteString("\n")
	s.WriteString(subtitleStyle.Render("Spin the wheel to discover a random website"))
	s.WriteString("\n\n")

	switch m.sess.Status() {
	case session.Loading:
		s.WriteString(m.spinner.View() + " Loading websites...")

	case session.Failed:
		s.WriteString(RenderLoadError(m.sess.LoadError(), width))

	case session.Empty:
		s.WriteString(emptyStyle.Render("No Websites"))
		s.WriteString("\n")
		s.WriteString(statusStyle.Render("The list is empty or every entry was filtered out."))

	case session.Ready:
		now := m.now()
		anim := m.sess.Animator()
		rotation := anim.RotationAt(now)
		discWidth := m.layout.DiscWidth()

		s.WriteString(RenderPointer(discWidth))
		s.WriteString("\n")
		s.WriteString(RenderDisc(Disc{
			Labels:   m.labels,
			Palette:  m.palette,
			Rotation: rotation,
			Width:    discWidth,
		}))
		s.WriteString("\n")
		s.WriteString(RenderTicker(m.labels, rotation, discWidth))
		s.WriteString("\n")

		if spin, ok := anim.Current(); ok {
			remaining := spin.StartedAt.Add(spin.Duration).Sub(now)
			s.WriteString("\n")
			s.WriteString(RenderSpinProgress(anim.Progress(now), remaining, width))
		} else {
			s.WriteString(footerStyle.Render(fmt.Sprintf("%d awesome websites ready to explore!", anim.Len())))
		}
	}

	return s.String()
}

func (m Model) renderResult(width int) string {
	rec, _ := m.sess.Presenter().Current()
	return RenderResult(ResultView{
		Record:  rec,
		Favicon: m.sess.Presenter().FaviconState(),
		Icon:    m.icon,
		Spinner: m.spinner.View(),
		Status:  m.status,
		IsError: m.statusErr,
	}, width)
}

// helpKeys is the keymap with bindings enabled for what the session
// currently accepts, so help only lists keys that do something.
func (m Model) helpKeys() keyMap {
	k := m.keys
	showing := m.sess.ShowingResult()
	k.Spin.SetEnabled(m.sess.CanSpin())
	k.Open.SetEnabled(showing)
	k.Dismiss.SetEnabled(showing)
	return k
}

func (m Model) renderHelp() string {
	return helpStyle.Render(m.help.View(m.helpKeys()))
}
