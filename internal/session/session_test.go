package session

import (
	"errors"
	"testing"
	"time"

	"luckywheel/internal/present"
	"luckywheel/internal/selector"
	"luckywheel/internal/sitelist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	index int
	picks int
}

func (f *fixedSource) IntN(n int) int {
	f.picks++
	return f.index % n
}

func (f *fixedSource) Float64() float64 { return 0.25 }

type recordingScheduler struct {
	ids []uint64
}

func (r *recordingScheduler) Schedule(_ time.Duration, id uint64) {
	r.ids = append(r.ids, id)
}

func newTestSession(index int) (*Session, *fixedSource, *recordingScheduler) {
	src := &fixedSource{index: index}
	sched := &recordingScheduler{}
	s := New(selector.New(src), sched, present.DefaultFaviconConfig())
	return s, src, sched
}

func TestSession_StartsLoading(t *testing.T) {
	s, _, _ := newTestSession(0)

	assert.Equal(t, Loading, s.Status())
	assert.False(t, s.CanSpin())
	_, ok := s.Spin()
	assert.False(t, ok)
}

func TestSession_EndToEnd(t *testing.T) {
	s, src, sched := newTestSession(1)

	require.True(t, s.Loaded([]string{"a.com", "b.com", "c.com"}))
	require.Equal(t, Ready, s.Status())

	spin, ok := s.Spin()
	require.True(t, ok)
	assert.True(t, s.Spinning())

	// spin requests during the animation are dropped
	_, ok = s.Spin()
	assert.False(t, ok)
	assert.Equal(t, 1, src.picks)
	require.Len(t, sched.ids, 1)

	rec, ok := s.Complete(sched.ids[0])
	require.True(t, ok)
	assert.Equal(t, spin.ID, sched.ids[0])
	assert.Equal(t, present.DisplayRecord{
		Title:        "B",
		CanonicalURL: "https://b.com",
		FaviconURL:   "https://www.google.com/s2/favicons?domain=b.com&sz=256",
		Raw:          "b.com",
	}, rec)
	assert.Equal(t, present.FaviconLoading, s.Presenter().FaviconState())
	assert.Equal(t, 1, selector.SegmentUnderPointer(s.Animator().Rotation(), 3))

	// the favicon fails and stays failed
	favGen := s.Presenter().Generation()
	require.True(t, s.Presenter().FaviconFailed(favGen))
	assert.False(t, s.Presenter().FaviconLoaded(favGen))
	assert.Equal(t, present.FaviconFailed, s.Presenter().FaviconState())

	// the dialog blocks spinning until dismissed
	assert.False(t, s.CanSpin())
	s.Dismiss()
	assert.True(t, s.CanSpin())
}

func TestSession_EmptyList(t *testing.T) {
	s, src, sched := newTestSession(0)

	require.True(t, s.Loaded(nil))

	assert.Equal(t, Empty, s.Status())
	_, ok := s.Spin()
	assert.False(t, ok)
	assert.Zero(t, src.picks)
	assert.Empty(t, sched.ids)
}

func TestSession_LoadFailedKeepsMessage(t *testing.T) {
	s, _, _ := newTestSession(0)

	err := &sitelist.LoadError{Source: "https://example.com/list.txt", Err: errors.New("connection refused")}
	require.True(t, s.LoadFailed(err))

	assert.Equal(t, Failed, s.Status())
	assert.Equal(t, err.Error(), s.LoadError())
	assert.False(t, s.CanSpin())
}

func TestSession_LoadFailureIsTerminal(t *testing.T) {
	s, src, sched := newTestSession(0)
	require.True(t, s.LoadFailed(errors.New("boom")))

	assert.False(t, s.Loaded([]string{"a.com", "b.com"}))
	assert.False(t, s.LoadFailed(errors.New("again")))

	assert.Equal(t, Failed, s.Status())
	assert.Equal(t, "boom", s.LoadError())
	assert.Nil(t, s.Sites())
	_, ok := s.Spin()
	assert.False(t, ok)
	assert.Zero(t, src.picks)
	assert.Empty(t, sched.ids)
}

func TestSession_ListLoadedOnce(t *testing.T) {
	s, _, _ := newTestSession(0)
	require.True(t, s.Loaded([]string{"a.com", "b.com"}))

	spin, ok := s.Spin()
	require.True(t, ok)
	_, ok = s.Complete(spin.ID)
	require.True(t, ok)
	s.Dismiss()
	rotation := s.Animator().Rotation()
	require.Greater(t, rotation, 0.0)

	assert.False(t, s.Loaded([]string{"other.com"}))
	assert.Equal(t, []string{"a.com", "b.com"}, s.Sites())
	assert.Equal(t, Ready, s.Status())
	assert.Equal(t, rotation, s.Animator().Rotation())
}

func TestSession_StaleCompletionIgnored(t *testing.T) {
	s, _, _ := newTestSession(0)
	require.True(t, s.Loaded([]string{"a.com"}))

	_, ok := s.Complete(42)
	assert.False(t, ok)
	assert.False(t, s.ShowingResult())
}

func TestLoadStatus_String(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "unknown", LoadStatus(9).String())
}
