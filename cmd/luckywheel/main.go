package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"luckywheel/internal/browser"
	"luckywheel/internal/cmdexec"
	"luckywheel/internal/config"
	"luckywheel/internal/extract"
	"luckywheel/internal/favicon"
	"luckywheel/internal/filter"
	"luckywheel/internal/httpclient"
	"luckywheel/internal/logger"
	"luckywheel/internal/pathutil"
	"luckywheel/internal/present"
	"luckywheel/internal/selector"
	"luckywheel/internal/sitelist"
	"luckywheel/internal/tui"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var errNoWebsites = errors.New("no websites to choose from")

type CLI struct {
	Config string `help:"Path to config file (default ~/.config/luckywheel/config.yaml)" type:"path"`
	Source string `help:"Site list file or http(s) URL; overrides the config"`
	Filter string `help:"Expression selecting which sites go on the wheel, e.g. 'tld == \"org\"'"`
	Debug  bool   `help:"Write debug logs"`

	Spin    SpinCmd    `cmd:"" default:"withargs" help:"Spin the wheel (default)"`
	Go      GoCmd      `cmd:"" help:"Pick a random website and open it without the wheel"`
	Extract ExtractCmd `cmd:"" help:"Extract site names from a ranked domain CSV"`
	Version VersionCmd `cmd:"" help:"Show version information"`

	stdout io.Writer `kong:"-"`
}

func (cli *CLI) out() io.Writer {
	if cli.stdout == nil {
		return os.Stdout
	}
	return cli.stdout
}

// loadConfig reads the config file and applies command-line overrides. An
// explicit --config must exist; the default location is optional.
func (cli *CLI) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cli.Config != "" {
		cfg, err = config.Load(cli.Config)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath())
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cli.Source != "" {
		cfg.Source = cli.Source
	}
	if cli.Filter != "" {
		cfg.Filter = cli.Filter
	}
	if cli.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// setupLogging opens the log file. Logging is best effort: when the state
// directory is unusable the program runs with logging discarded.
func setupLogging(debug bool) func() error {
	cleanup, err := logger.Setup(logger.Config{
		Dir:   pathutil.StateDir(config.AppName),
		Debug: debug,
	})
	if err != nil {
		logger.Discard()
		return func() error { return nil }
	}
	return cleanup
}

// app is what spin and go share once the config is resolved.
type app struct {
	cfg      *config.Config
	client   *http.Client
	provider sitelist.Provider
	filter   *filter.Filter
}

func newApp(cfg *config.Config) (*app, error) {
	flt, err := filter.Compile(cfg.Filter)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	hc := httpclient.DefaultConfig()
	hc.Timeout = cfg.HTTP.Timeout
	hc.UserAgent = config.AppName + "/" + Version
	client := httpclient.New(hc)

	return &app{
		cfg:      cfg,
		client:   client,
		provider: sitelist.NewProvider(cfg.Source, client),
		filter:   flt,
	}, nil
}

type SpinCmd struct{}

func (c *SpinCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	defer setupLogging(cfg.Debug)()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	logger.L().Info("spin.start", "source", cfg.Source, "filter", a.filter.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := tui.Options{
		Provider:      a.provider,
		Filter:        a.filter,
		Selector:      selector.New(selector.DefaultSource()),
		FaviconConfig: cfg.Favicon.Present(),
		Opener:        browser.New(cmdexec.DefaultRunner()),
		Duration:      cfg.Wheel.Duration,
		Revolutions:   cfg.Wheel.Revolutions,
		Palette:       cfg.Palette(),
		Context:       ctx,
	}
	if cfg.Favicon.Enabled {
		opts.Favicons = favicon.NewFetcher(a.client)
	}

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// GoCmd is "spin and go directly": it picks uniformly like the wheel does
// and opens the result without drawing anything.
type GoCmd struct {
	Confirm bool `help:"Ask before opening the chosen website"`
	DryRun  bool `help:"Print the chosen website without opening it"`

	opener   tui.URLOpener      `kong:"-"`
	selector *selector.Selector `kong:"-"`
}

func (c *GoCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	defer setupLogging(cfg.Debug)()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	list, err := a.provider.Load(context.Background())
	if err != nil {
		return err
	}
	sites, err := a.filter.Apply(list)
	if err != nil {
		return err
	}

	sel := c.selector
	if sel == nil {
		sel = selector.New(selector.DefaultSource())
	}
	res, err := sel.Pick(sites)
	if errors.Is(err, selector.ErrEmptyList) {
		return errNoWebsites
	}
	if err != nil {
		return err
	}

	rec := present.Derive(res.Raw, present.FaviconConfig{})
	logger.L().Info("go.picked", "raw", rec.Raw, "url", rec.CanonicalURL)
	fmt.Fprintf(cli.out(), "You got %s (%s)\n", rec.Title, rec.CanonicalURL)

	if c.DryRun {
		return nil
	}
	if c.Confirm {
		ok, err := tui.NewHuhPrompter().ConfirmVisit(rec)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	opener := c.opener
	if opener == nil {
		opener = browser.New(cmdexec.DefaultRunner())
	}
	return opener.Open(rec.CanonicalURL)
}

type ExtractCmd struct {
	Input  string `arg:"" help:"Ranked domain CSV (rank,\"domain\",score)" type:"path"`
	Output string `arg:"" help:"Site list to write, one site per line" type:"path"`
}

func (c *ExtractCmd) Run(cli *CLI) error {
	defer setupLogging(cli.Debug)()

	out := cli.out()
	e := &extract.Extractor{
		Progress: func(n int) {
			fmt.Fprintf(out, "Processed %d websites...\r", n)
		},
		Warn: func(w extract.Warning) {
			fmt.Fprintln(os.Stderr, w.String())
		},
	}

	stats, err := e.File(c.Input, c.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nExtracted %d websites to %s\n", stats.Extracted, c.Output)
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(cli *CLI) error {
	fmt.Fprintf(cli.out(), "luckywheel %s (commit: %s, built: %s)\n", Version, Commit, Date)
	return nil
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("luckywheel"),
		kong.Description("Spin a wheel of websites and go somewhere new"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
