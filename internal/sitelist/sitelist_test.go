package sitelist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  List
	}{
		{
			name:  "header discarded",
			input: "# top sites\ngoogle.com\nyoutube.com\n",
			want:  List{"google.com", "youtube.com"},
		},
		{
			name:  "blank and whitespace-only lines dropped",
			input: "header\n\na.com\n   \n\tb.com\n\n",
			want:  List{"a.com", "b.com"},
		},
		{
			name:  "crlf line endings",
			input: "header\r\na.com\r\nb.com\r\n",
			want:  List{"a.com", "b.com"},
		},
		{
			name:  "first line dropped even if it looks like a site",
			input: "x.com\ny.com",
			want:  List{"y.com"},
		},
		{
			name:  "order preserved",
			input: "h\nc.com\na.com\nb.com",
			want:  List{"c.com", "a.com", "b.com"},
		},
		{
			name:  "header only",
			input: "# nothing here\n",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_LineTooLong(t *testing.T) {
	input := "header\n" + strings.Repeat("a", maxLineBytes+1) + "\n"

	_, err := Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read site list")
}

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &HTTPProvider{}, NewProvider("https://example.com/list.txt", nil))
	assert.IsType(t, &HTTPProvider{}, NewProvider("HTTP://example.com/list.txt", nil))
	assert.IsType(t, &FileProvider{}, NewProvider("./websites.txt", nil))
	assert.IsType(t, &FileProvider{}, NewProvider("~/lists/httpbin.txt", nil))
	assert.Equal(t, "./websites.txt", NewProvider("./websites.txt", nil).Source())
}

func TestFileProvider_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "websites.txt")
	require.NoError(t, os.WriteFile(path, []byte("# list\na.com\nb.com\n"), 0o644))

	list, err := (&FileProvider{Path: path}).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, List{"a.com", "b.com"}, list)
}

func TestFileProvider_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := (&FileProvider{Path: path}).Load(context.Background())

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Source)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "failed to load websites")
}

func TestFileProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&FileProvider{Path: "whatever.txt"}).Load(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTPProvider_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("// generated\nexample.com\n\nexample.org\n"))
	}))
	defer srv.Close()

	p := &HTTPProvider{URL: srv.URL, Client: srv.Client()}
	list, err := p.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, List{"example.com", "example.org"}, list)
}

func TestHTTPProvider_BadStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	p := &HTTPProvider{URL: srv.URL, Client: srv.Client()}
	_, err := p.Load(context.Background())

	require.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, 1, calls, "no retry")
}

func TestHTTPProvider_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := (&HTTPProvider{URL: url}).Load(context.Background())

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, url, le.Source)
}

func TestLoadError_Nil(t *testing.T) {
	var le *LoadError
	assert.Equal(t, "<nil>", le.Error())
	assert.NoError(t, le.Unwrap())
}
