package tui

import (
	"context"
	"sync"
	"testing"

	"luckywheel/internal/favicon"
	"luckywheel/internal/sitelist"

	"github.com/stretchr/testify/assert"
)

type staticProvider struct {
	list sitelist.List
	err  error
}

func (p staticProvider) Load(context.Context) (sitelist.List, error) {
	return p.list, p.err
}

func (p staticProvider) Source() string { return "test" }

type fixedSource struct {
	index int
}

func (f fixedSource) IntN(n int) int   { return f.index % n }
func (f fixedSource) Float64() float64 { return 0.5 }

type fakeFetcher struct {
	icon *favicon.Icon
	err  error
}

func (f fakeFetcher) Fetch(context.Context, string) (*favicon.Icon, error) {
	return f.icon, f.err
}

type fakeOpener struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (o *fakeOpener) Open(url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	return o.err
}

func (o *fakeOpener) Opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.urls...)
}

func AssertShowsTitle(t *testing.T, view string) {
	t.Helper()
	assert.Contains(t, view, "I'M FEELING LUCKY", "View should contain title")
}

func AssertShowsResult(t *testing.T, view, title, url string) {
	t.Helper()
	assert.Contains(t, view, "You got", "View should show the result dialog")
	assert.Contains(t, view, title, "Result dialog should show title: %s", title)
	assert.Contains(t, view, url, "Result dialog should show URL: %s", url)
}

func AssertNoResult(t *testing.T, view string) {
	t.Helper()
	assert.NotContains(t, view, "You got", "View should not show the result dialog")
}
