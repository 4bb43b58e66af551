// Package present derives the result dialog's DisplayRecord from a chosen
// site entry and tracks the favicon sub-state for the current record.
package present

import (
	"net/url"
	"strconv"

	"luckywheel/internal/label"
)

const (
	DefaultFaviconService = "https://www.google.com/s2/favicons"
	DefaultFaviconSize    = 256
)

// FaviconConfig describes the external favicon lookup service.
type FaviconConfig struct {
	Enabled bool
	Service string
	Size    int
}

func DefaultFaviconConfig() FaviconConfig {
	return FaviconConfig{
		Enabled: true,
		Service: DefaultFaviconService,
		Size:    DefaultFaviconSize,
	}
}

// URL returns the lookup URL for host.
func (c FaviconConfig) URL(host string) string {
	q := url.Values{}
	q.Set("domain", host)
	q.Set("sz", strconv.Itoa(c.Size))
	return c.Service + "?" + q.Encode()
}

// DisplayRecord is the user-facing summary of a chosen entry. FaviconURL is
// empty when no favicon can be requested.
type DisplayRecord struct {
	Title        string
	CanonicalURL string
	FaviconURL   string
	Raw          string
}

func (r DisplayRecord) HasFavicon() bool {
	return r.FaviconURL != ""
}

// Derive builds the DisplayRecord for raw. It never fails: unparsable entries
// get their raw text as title and no favicon.
func Derive(raw string, fav FaviconConfig) DisplayRecord {
	rec := DisplayRecord{
		Title:        label.Title(raw),
		CanonicalURL: label.Canonical(raw),
		Raw:          raw,
	}
	if host, ok := label.Host(raw); ok && fav.Enabled {
		rec.FaviconURL = fav.URL(host)
	}
	return rec
}

type FaviconState int

const (
	FaviconNotRequested FaviconState = iota
	FaviconLoading
	FaviconLoaded
	FaviconFailed
)

func (s FaviconState) String() string {
	switch s {
	case FaviconNotRequested:
		return "not-requested"
	case FaviconLoading:
		return "loading"
	case FaviconLoaded:
		return "loaded"
	case FaviconFailed:
		return "failed"
	}
	return "unknown"
}

// ShowsPlaceholder reports whether the generic icon should be drawn.
func (s FaviconState) ShowsPlaceholder() bool {
	return s == FaviconNotRequested || s == FaviconFailed
}

// Presenter owns the current DisplayRecord and its favicon state. Each new
// record bumps a generation number; favicon signals carry the generation
// they were issued for so late signals from an earlier record are dropped.
type Presenter struct {
	fav     FaviconConfig
	record  *DisplayRecord
	favicon FaviconState
	gen     uint64
}

func NewPresenter(fav FaviconConfig) *Presenter {
	return &Presenter{fav: fav}
}

// Present replaces the current record with one derived from raw and resets
// the favicon state to Loading, or NotRequested when there is no favicon URL.
func (p *Presenter) Present(raw string) DisplayRecord {
	rec := Derive(raw, p.fav)
	p.record = &rec
	p.gen++
	if rec.HasFavicon() {
		p.favicon = FaviconLoading
	} else {
		p.favicon = FaviconNotRequested
	}
	return rec
}

// Current returns the record being shown, if any.
func (p *Presenter) Current() (DisplayRecord, bool) {
	if p.record == nil {
		return DisplayRecord{}, false
	}
	return *p.record, true
}

func (p *Presenter) Generation() uint64 {
	return p.gen
}

func (p *Presenter) FaviconState() FaviconState {
	return p.favicon
}

// FaviconLoaded records a successful image load for generation gen.
func (p *Presenter) FaviconLoaded(gen uint64) bool {
	return p.settle(gen, FaviconLoaded)
}

// FaviconFailed records a failed image load for generation gen.
func (p *Presenter) FaviconFailed(gen uint64) bool {
	return p.settle(gen, FaviconFailed)
}

func (p *Presenter) settle(gen uint64, to FaviconState) bool {
	if p.record == nil || gen != p.gen || p.favicon != FaviconLoading {
		return false
	}
	p.favicon = to
	return true
}

// Dismiss clears the current record.
func (p *Presenter) Dismiss() {
	p.record = nil
	p.favicon = FaviconNotRequested
}
