// Package label turns raw site entries (bare domains or URLs) into the
// strings shown to the user: a display title, a canonical URL and a short
// wheel-segment label. Every function here is pure and never fails.
package label

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxSegmentRunes is the longest segment label shown on the wheel.
	MaxSegmentRunes = 15
	truncatedRunes  = 12
	ellipsis        = "..."
)

// matchKind selects which string an override is tested against.
type matchKind int

const (
	hostContains matchKind = iota
	hostEquals
	rawEquals
	rawContains
)

type override struct {
	kind   matchKind
	marker string
	title  string
}

// overrides is checked in order; the first match wins.
var overrides = []override{
	{hostContains, "google", "Google"},
	{hostContains, "wikipedia", "Wikipedia"},
	{hostContains, "youtube", "YouTube"},
	{hostContains, "facebook", "Facebook"},
	{hostContains, "twitter", "Twitter/X"},
	{hostEquals, "x.com", "Twitter/X"},
	{rawEquals, "x.com", "Twitter/X"},
	{hostContains, "instagram", "Instagram"},
	{hostContains, "amazon", "Amazon"},
	{hostContains, "github", "GitHub"},
	{hostContains, "linkedin", "LinkedIn"},
	{hostContains, "netflix", "Netflix"},
	{hostContains, "reddit", "Reddit"},
	{rawEquals, "marcelschreiber.de", "Marcel Schreiber"},
	{rawContains, "palettelab", "Palette Lab"},
	{rawContains, "imageconvert", "ImageConvert"},
	{rawContains, "videocompress", "VideoCompress"},
}

func (o override) matches(host, raw string) bool {
	switch o.kind {
	case hostContains:
		return strings.Contains(host, o.marker)
	case hostEquals:
		return host == o.marker
	case rawEquals:
		return raw == o.marker
	case rawContains:
		return strings.Contains(raw, o.marker)
	}
	return false
}

// Canonical returns raw with an https:// prefix unless it already carries an
// http or https scheme.
func Canonical(raw string) string {
	if hasScheme(raw) {
		return raw
	}
	return "https://" + raw
}

func hasScheme(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
}

// Host parses the canonical form of raw and returns its lower-cased hostname.
// ok is false when parsing fails or yields an empty or malformed hostname.
func Host(raw string) (host string, ok bool) {
	u, err := url.Parse(Canonical(raw))
	if err != nil {
		return "", false
	}
	host = strings.ToLower(u.Hostname())
	if host == "" || strings.IndexFunc(host, unicode.IsSpace) >= 0 {
		return "", false
	}
	return host, true
}

// Title derives the human display title for raw. Unparsable entries are
// returned unchanged.
func Title(raw string) string {
	host, ok := Host(raw)
	if !ok {
		return raw
	}
	host = strings.TrimPrefix(host, "www.")

	for _, o := range overrides {
		if o.matches(host, raw) {
			return o.title
		}
	}

	parts := strings.Split(firstLabel(host), "-")
	for i, p := range parts {
		parts[i] = upperFirst(p)
	}
	title := strings.Join(parts, " ")
	if strings.TrimSpace(title) == "" {
		return raw
	}
	return title
}

// Segment returns the short label drawn on a wheel segment: the first label
// of the hostname, or raw itself when it does not parse, truncated with
// Truncate.
func Segment(raw string) string {
	host, ok := Host(raw)
	if !ok {
		return Truncate(raw)
	}
	name := firstLabel(strings.TrimPrefix(host, "www."))
	if name == "" {
		return Truncate(raw)
	}
	return Truncate(name)
}

// Truncate shortens s to its first 12 runes plus "..." when it is longer than
// MaxSegmentRunes runes. The result is then exactly MaxSegmentRunes long.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxSegmentRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:truncatedRunes]) + ellipsis
}

func firstLabel(host string) string {
	name, _, _ := strings.Cut(host, ".")
	return name
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
