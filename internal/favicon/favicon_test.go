package favicon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetcher_Fetch(t *testing.T) {
	body := encodePNG(t, solid(16, 16, color.NRGBA{R: 255, A: 255}))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "b.com", r.URL.Query().Get("domain"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	icon, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL+"?domain=b.com&sz=256")
	require.NoError(t, err)
	assert.Equal(t, "png", icon.Format)
	assert.Equal(t, 16, icon.Image.Bounds().Dx())
}

func TestFetcher_BadStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrBadStatus)
	assert.Equal(t, 1, calls, "no retry")
}

func TestFetcher_Undecodable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode favicon")
}

func TestFetcher_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFetcher(srv.Client()).Fetch(ctx, srv.URL)
	require.ErrorIs(t, err, context.Canceled)
}

func TestIcon_Render(t *testing.T) {
	tests := []struct {
		name       string
		icon       *Icon
		cells      int
		wantWidth  int
		wantHeight int
	}{
		{"square", &Icon{Image: solid(32, 32, color.White)}, 8, 8, 4},
		{"odd cells rounded up", &Icon{Image: solid(32, 32, color.White)}, 5, 6, 3},
		{"upscales tiny image", &Icon{Image: solid(1, 1, color.White)}, 4, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.icon.Render(tt.cells)
			assert.Equal(t, tt.wantWidth, lipgloss.Width(out))
			assert.Equal(t, tt.wantHeight, lipgloss.Height(out))
			assert.Contains(t, out, upperHalf)
		})
	}
}

func TestIcon_RenderTransparent(t *testing.T) {
	icon := &Icon{Image: solid(4, 4, color.NRGBA{})}
	out := icon.Render(4)
	assert.Equal(t, "    \n    ", out)
}

func TestIcon_RenderEmpty(t *testing.T) {
	var icon *Icon
	assert.Empty(t, icon.Render(8))
	assert.Empty(t, (&Icon{Image: solid(4, 4, color.White)}).Render(0))
	assert.False(t, strings.Contains((&Icon{}).Render(4), upperHalf))
}
