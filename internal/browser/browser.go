// Package browser opens URLs in the system's default browser.
package browser

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"luckywheel/internal/cmdexec"
)

var (
	// ErrUnsupportedURL is returned for anything other than an http(s) URL.
	ErrUnsupportedURL = errors.New("only http and https URLs can be opened")

	// ErrNoHandler is returned when the platform's URL handler is not
	// installed.
	ErrNoHandler = errors.New("no URL handler found")
)

// Opener launches the platform's URL handler through a cmdexec.Runner.
type Opener struct {
	runner cmdexec.Runner
	goos   string
}

// New returns an Opener for the running platform.
func New(runner cmdexec.Runner) *Opener {
	return &Opener{runner: runner, goos: runtime.GOOS}
}

// NewForOS returns an Opener that behaves as on goos.
func NewForOS(runner cmdexec.Runner, goos string) *Opener {
	return &Opener{runner: runner, goos: goos}
}

// Command returns the program and arguments used to open url.
func (o *Opener) Command(url string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Open starts the handler for url and returns without waiting for the
// browser to exit.
func (o *Opener) Open(url string) error {
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "https://") && !strings.HasPrefix(lower, "http://") {
		return fmt.Errorf("open %q: %w", url, ErrUnsupportedURL)
	}
	name, args := o.Command(url)
	if _, err := o.runner.LookPath(name); err != nil {
		return fmt.Errorf("open %s: %w: %s", url, ErrNoHandler, name)
	}
	if err := o.runner.Start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
