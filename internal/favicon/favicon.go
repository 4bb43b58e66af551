// Package favicon fetches site icons and renders them as terminal art.
package favicon

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a favicon response is read.
const maxBodyBytes = 1 << 20

// ErrBadStatus is returned when the favicon service answers with a non-2xx
// status.
var ErrBadStatus = errors.New("unexpected status")

// Fetcher downloads favicons with a shared client. Each Fetch is a single
// attempt.
type Fetcher struct {
	Client *http.Client
}

// NewFetcher returns a Fetcher using client, or http.DefaultClient if nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{Client: client}
}

// Fetch downloads and decodes the image at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Icon, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch favicon: %w", err)
	}
	req.Header.Set("Accept", "image/png,image/gif,image/jpeg")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch favicon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch favicon: %w: %s", ErrBadStatus, resp.Status)
	}

	img, format, err := image.Decode(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("decode favicon: %w", err)
	}
	return &Icon{Image: img, Format: format}, nil
}
