package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/kamar"
	"github.com/fwojciec/kamar/analyze"
	"github.com/fwojciec/kamar/bing"
	"github.com/fwojciec/kamar/crawl"
	"github.com/fwojciec/kamar/google"
	"github.com/fwojciec/kamar/goquery"
	"github.com/fwojciec/kamar/htmltomarkdown"
	kamarhttp "github.com/fwojciec/kamar/http"
	"github.com/fwojciec/kamar/readability"
	"github.com/fwojciec/kamar/rod"
	kamarslog "github.com/fwojciec/kamar/slog"
	"github.com/fwojciec/kamar/sqlite"
	"github.com/fwojciec/kamar/trafilatura"
	"github.com/fwojciec/kamar/yaml"
)

// Timeouts for outbound requests.
const (
	searchTimeout = 15 * time.Second
	fetchTimeout  = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	stop()
}

// Main represents the program.
type Main struct {
	// Config file path used when --config is not given. A missing file
	// means defaults.
	ConfigPath string

	// Database path used when --cache is not given.
	DBPath string

	// Getenv looks up credentials. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database holding the page cache and history.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the
	// network-backed implementations.
	Searcher   kamar.Searcher
	PageReader kamar.PageReader

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: filepath.Join(xdg.ConfigHome, "kamar", "config.yaml"),
		DBPath:     defaultDBPath(),
		Getenv:     os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}
	m.closers = nil
	if m.DB != nil {
		errs = append(errs, m.DB.Close())
	}
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kamar"),
		kong.Description("Keyword research and content suggestions from web search results"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kamar --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "version" {
		return kongCtx.Run(deps)
	}

	dbPath := m.DBPath
	if cli.Cache != "" {
		dbPath = cli.Cache
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set KAMAR_DB or --cache to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	store := sqlite.NewAnalysisStore(m.DB)
	deps.History = store

	var flags *AnalyzerFlags
	switch cmd {
	case "analyze":
		flags = &cli.Analyze.AnalyzerFlags
	case "serve":
		flags = &cli.Serve.AnalyzerFlags
	}
	if flags != nil {
		cfg, err := m.loadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", kamar.ErrorMessage(err))
			return fmt.Errorf("failed to load config: %w", err)
		}

		var analyzer kamar.Analyzer
		analyzer, err = m.newAnalyzer(ctx, cfg, flags, deps.Logger, stderr)
		if err != nil {
			return err
		}
		if cmd == "serve" {
			analyzer = analyze.NewLatest(analyzer)
		}
		analyzer = analyze.NewRecorder(analyzer, store, deps.Logger)
		deps.Analyzer = kamarslog.NewLoggingAnalyzer(analyzer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the pipeline configuration. An explicit path must
// exist; the default path may be absent.
func (m *Main) loadConfig(path string) (kamar.Config, error) {
	if path != "" {
		return yaml.LoadConfig(path)
	}
	cfg, err := yaml.LoadConfig(m.ConfigPath)
	if kamar.ErrorCode(err) == kamar.ENOTFOUND {
		return kamar.DefaultConfig(), nil
	}
	return cfg, err
}

// newAnalyzer wires the search provider, page reader and pipeline into an
// analyzer.
func (m *Main) newAnalyzer(ctx context.Context, cfg kamar.Config, flags *AnalyzerFlags, logger *slog.Logger, stderr io.Writer) (kamar.Analyzer, error) {
	pipeline, err := kamar.NewPipeline(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	searcher, err := m.newSearcher(flags.Provider)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set KAMAR_GOOGLE_API_KEY and KAMAR_GOOGLE_CX, or use --provider bing")
		return nil, err
	}

	svc := analyze.NewService(kamarslog.NewLoggingSearcher(searcher, logger), pipeline, nil)
	svc.Logger = logger
	if flags.Pages > 0 {
		svc.PageLimit = flags.Pages
		svc.Pages = m.newPageReader(ctx, flags, logger, stderr)
	} else {
		svc.PageLimit = -1
	}

	return svc, nil
}

func (m *Main) newSearcher(provider string) (kamar.Searcher, error) {
	if m.Searcher != nil {
		return m.Searcher, nil
	}
	if provider == "bing" {
		return bing.NewSearcher(&http.Client{Timeout: searchTimeout}), nil
	}
	return google.NewSearcher(m.Getenv("KAMAR_GOOGLE_API_KEY"), m.Getenv("KAMAR_GOOGLE_CX"))
}

// newPageReader builds the page reading chain: cache, then fetch with
// retry and optional browser fallback, then extraction and conversion.
// Stale cache entries are purged on the way.
func (m *Main) newPageReader(ctx context.Context, flags *AnalyzerFlags, logger *slog.Logger, stderr io.Writer) kamar.PageReader {
	if m.PageReader != nil {
		return m.PageReader
	}

	reader := &crawl.Reader{
		Fetcher:     kamarslog.NewLoggingFetcher(kamarhttp.NewFetcher(kamarhttp.WithTimeout(fetchTimeout)), logger),
		Extractor:   trafilatura.NewExtractor(),
		Converter:   goquery.NewConverter(),
		RateLimiter: crawl.NewDomainLimiter(crawl.DefaultRequestsPerSecond),
		Logger: func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		},
	}
	if flags.Extractor == "readability" {
		reader.Extractor = readability.NewExtractor()
	}
	if flags.Converter == "markdown" {
		reader.Converter = htmltomarkdown.NewConverter()
	}
	if flags.Browser == "auto" {
		browser, err := rod.NewFetcher(rod.WithTimeout(fetchTimeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser auto")
			logger.Warn("browser fallback disabled", "err", err)
		} else {
			m.closers = append(m.closers, browser)
			reader.Fallback = kamarslog.NewLoggingFetcher(browser, logger)
		}
	}

	var pages kamar.PageReader = reader
	if !flags.NoCache {
		cache := sqlite.NewPageCache(m.DB, pages)
		cache.Logger = logger
		if n, err := cache.Purge(ctx); err != nil {
			logger.Warn("page cache purge failed", "err", err)
		} else {
			logger.Debug("page cache purged", "pages", n)
		}
		pages = cache
	}
	return kamarslog.NewLoggingPageReader(pages, logger)
}

func defaultDBPath() string {
	if path := os.Getenv("KAMAR_DB"); path != "" {
		return path
	}
	return filepath.Join(xdg.CacheHome, "kamar", "kamar.db")
}
