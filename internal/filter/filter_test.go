package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSite(t *testing.T) {
	s := NewSite("https://www.bbc.co.uk/news", 3)

	assert.Equal(t, "https://www.bbc.co.uk/news", s.Raw)
	assert.Equal(t, "bbc.co.uk", s.Host)
	assert.Equal(t, "co.uk", s.TLD)
	assert.Equal(t, "bbc.co.uk", s.Domain)
	assert.Equal(t, "Bbc", s.Name)
	assert.Equal(t, 3, s.Index)
}

func TestNewSite_Unparseable(t *testing.T) {
	s := NewSite("not a url", 0)

	assert.Empty(t, s.Host)
	assert.Empty(t, s.TLD)
	assert.Equal(t, "not a url", s.Name)
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
		empty   bool
	}{
		{name: "empty", src: "", empty: true},
		{name: "whitespace", src: "   ", empty: true},
		{name: "simple", src: `tld == "org"`},
		{name: "wrapped", src: `${ tld == "org" }`},
		{name: "function", src: `hasSubstr(host, "news")`},
		{name: "unknown field", src: `color == "red"`, wantErr: true},
		{name: "non boolean", src: `host`, wantErr: true},
		{name: "syntax error", src: `host ==`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.empty, f.Empty())
		})
	}
}

func TestApply(t *testing.T) {
	list := []string{
		"https://example.org",
		"https://news.ycombinator.com",
		"https://www.github.com",
		"https://go.dev",
		"not a url",
	}

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "keeps everything when empty",
			src:  "",
			want: list,
		},
		{
			name: "by tld",
			src:  `oneOf(tld, ["org", "dev"])`,
			want: []string{"https://example.org", "https://go.dev"},
		},
		{
			name: "by substring ignoring case",
			src:  `hasSubstr(host, "NEWS")`,
			want: []string{"https://news.ycombinator.com"},
		},
		{
			name: "by name",
			src:  `name == "GitHub"`,
			want: []string{"https://www.github.com"},
		},
		{
			name: "by index",
			src:  `index < 2`,
			want: []string{"https://example.org", "https://news.ycombinator.com"},
		},
		{
			name: "drops unparseable",
			src:  `host != ""`,
			want: list[:4],
		},
		{
			name: "nothing matches",
			src:  `domain == "nowhere.test"`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.src)
			require.NoError(t, err)

			got, err := f.Apply(list)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNilFilter(t *testing.T) {
	var f *Filter
	got, err := f.Apply([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
	assert.Empty(t, f.String())
}

func TestFuncs_ArgumentErrors(t *testing.T) {
	_, err := hasSubstrFunc("a")
	assert.Error(t, err)
	_, err = hasSubstrFunc(1, "a")
	assert.Error(t, err)
	_, err = oneOfFunc("a", "b")
	assert.Error(t, err)

	ok, err := oneOfFunc("b", []any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, true, ok)
}
