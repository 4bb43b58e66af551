package filter

import (
	"strings"

	"luckywheel/internal/label"

	"golang.org/x/net/publicsuffix"
)

// Site holds the fields a filter expression can read for one list entry.
type Site struct {
	Raw     string `expr:"raw"`
	Host    string `expr:"host"`    // lower-cased hostname without a leading "www."
	Name    string `expr:"name"`    // display title
	Segment string `expr:"segment"` // wheel-segment label
	TLD     string `expr:"tld"`     // public suffix, e.g. "co.uk"
	Domain  string `expr:"domain"`  // registrable domain (eTLD+1)
	Index   int    `expr:"index"`   // position in the loaded list
}

// NewSite derives the filter environment for the entry at index.
func NewSite(raw string, index int) Site {
	s := Site{
		Raw:     raw,
		Name:    label.Title(raw),
		Segment: label.Segment(raw),
		Index:   index,
	}
	host, ok := label.Host(raw)
	if !ok {
		return s
	}
	s.Host = strings.TrimPrefix(host, "www.")
	s.TLD, _ = publicsuffix.PublicSuffix(s.Host)
	if d, err := publicsuffix.EffectiveTLDPlusOne(s.Host); err == nil {
		s.Domain = d
	} else {
		s.Domain = s.Host
	}
	return s
}
