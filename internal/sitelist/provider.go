package sitelist

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"luckywheel/internal/pathutil"
)

// DefaultSource is the published list the wheel uses when nothing else is
// configured.
const DefaultSource = "https://raw.githubusercontent.com/marcelytumy/ImFeelingLucky/refs/heads/main/public/data/websites.txt"

// Provider loads a site list.
type Provider interface {
	Load(ctx context.Context) (List, error)
	Source() string
}

// NewProvider returns an HTTPProvider for http(s) sources and a FileProvider
// for everything else.
func NewProvider(source string, client *http.Client) Provider {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return &HTTPProvider{URL: source, Client: client}
	}
	return &FileProvider{Path: source}
}

// FileProvider reads a list from the local filesystem.
type FileProvider struct {
	Path string
}

func (p *FileProvider) Source() string { return p.Path }

func (p *FileProvider) Load(ctx context.Context) (List, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: p.Path, Err: err}
	}
	f, err := os.Open(pathutil.Expand(p.Path))
	if err != nil {
		return nil, &LoadError{Source: p.Path, Err: err}
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, &LoadError{Source: p.Path, Err: err}
	}
	return list, nil
}

// HTTPProvider fetches a list with a single GET request. There is no retry.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

func (p *HTTPProvider) Source() string { return p.URL }

func (p *HTTPProvider) Load(ctx context.Context) (List, error) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, &LoadError{Source: p.URL, Err: err}
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: p.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: p.URL, Err: fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)}
	}

	list, err := Parse(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: p.URL, Err: err}
	}
	return list, nil
}
