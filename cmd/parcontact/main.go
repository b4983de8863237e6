package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/parcontact"
	"github.com/fwojciec/parcontact/crawl"
	"github.com/fwojciec/parcontact/goquery"
	pchttp "github.com/fwojciec/parcontact/http"
	"github.com/fwojciec/parcontact/lru"
	pcslog "github.com/fwojciec/parcontact/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// DefaultConfigFile is loaded from the working directory when present.
const DefaultConfigFile = "parcontact.yaml"

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files providing flag defaults.
	ConfigPaths []string

	// HTTPClient, if set, is used for every request.
	HTTPClient *http.Client

	// Extractor, if set, replaces the HTTP extraction pipeline.
	Extractor parcontact.ContactExtractor

	// Sleep, if set, replaces the batch politeness delays.
	Sleep func(ctx context.Context, d time.Duration) error

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{DefaultConfigFile},
		Now:         time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Sleep:  m.Sleep,
		Now:    m.Now,
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("parcontact"),
		kong.Description("Extract institution contact emails from Parcoursup listing pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAMLLoader, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'parcontact --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logCfg := pcslog.DefaultConfig()
	logCfg.Level = cli.LogLevel
	logCfg.FilePath = cli.LogFile
	logger, closeLog, err := pcslog.NewLogger(logCfg, stderr)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()
	deps.Logger = logger

	switch kongCtx.Selected().Name {
	case "run", "extract":
		deps.Extractor = m.Extractor
		if deps.Extractor == nil {
			deps.Extractor, err = m.newPipeline(cli, logger)
			if err != nil {
				return err
			}
		}
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the HTTP extraction pipeline from the global flags.
func (m *Main) newPipeline(cli *CLI, logger *slog.Logger) (*crawl.Pipeline, error) {
	listingOpts := []pchttp.Option{pchttp.WithTimeout(cli.Timeout)}
	siteOpts := []pchttp.Option{pchttp.WithTimeout(cli.SiteTimeout)}
	if m.HTTPClient != nil {
		listingOpts = append(listingOpts, pchttp.WithClient(m.HTTPClient))
		siteOpts = append(siteOpts, pchttp.WithClient(m.HTTPClient))
	}

	retry := crawl.NewRetryFetcher(pchttp.NewFetcher(listingOpts...), cli.Retries, crawl.DefaultRetryDelay)
	retry.Logger = func(format string, args ...any) {
		logger.Info(fmt.Sprintf(format, args...))
	}
	listing := pcslog.NewLoggingFetcher(retry, logger, "fetch listing")

	site, err := lru.NewCachingFetcher(
		pcslog.NewLoggingFetcher(pchttp.NewFetcher(siteOpts...), logger, "fetch site"),
		lru.DefaultSize,
	)
	if err != nil {
		return nil, err
	}

	return &crawl.Pipeline{
		Fetcher:     listing,
		SiteFetcher: site,
		Locator:     goquery.NewLocator(),
		Resolver:    goquery.NewResolver(),
		Renderer:    goquery.NewRenderer(),
		RateLimiter: crawl.NewDomainLimiter(cli.RPS),
		Now:         m.Now,
	}, nil
}
