// Package analyze orchestrates a keyword analysis: it searches, reads the
// top result pages concurrently and runs the text pipeline on the outcome.
package analyze

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/kamar"
	"github.com/fwojciec/kamar/bloom"
	"golang.org/x/sync/errgroup"
)

// Defaults for a Service.
const (
	// DefaultPageLimit is the number of result pages read for the outline.
	DefaultPageLimit = 3

	// DefaultPageConcurrency bounds simultaneous page reads.
	DefaultPageConcurrency = 3
)

// DefaultSearchOptions targets Arabic results for Saudi Arabia.
var DefaultSearchOptions = kamar.SearchOptions{Num: 10, Language: "ar", Country: "sa"}

var _ kamar.Analyzer = (*Service)(nil)

// Service implements kamar.Analyzer.
type Service struct {
	Searcher kamar.Searcher
	Pipeline *kamar.Pipeline

	// Pages reads result pages for the extractive outline. Nil skips page
	// reading and the outline falls back to the template.
	Pages kamar.PageReader

	// Options are passed to every search. Zero means DefaultSearchOptions.
	Options kamar.SearchOptions

	// PageLimit is the number of distinct result pages read. Zero means
	// DefaultPageLimit; negative disables page reading.
	PageLimit int

	// Logger receives page read failures. Nil discards them.
	Logger *slog.Logger
}

// NewService creates a Service with default options.
func NewService(searcher kamar.Searcher, pipeline *kamar.Pipeline, pages kamar.PageReader) *Service {
	return &Service{Searcher: searcher, Pipeline: pipeline, Pages: pages}
}

// Analyze searches for keyword and derives suggestions from the results.
// An empty keyword is rejected before any search. A failing page read does
// not fail the analysis; the page is left out.
func (s *Service) Analyze(ctx context.Context, keyword string) (*kamar.AnalysisResult, error) {
	keyword = strings.Join(strings.Fields(keyword), " ")
	if keyword == "" {
		return nil, kamar.Errorf(kamar.EINVALID, "keyword required")
	}

	results, err := s.Searcher.Search(ctx, keyword, s.options())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if kamar.ErrorCode(err) == kamar.EINTERNAL {
			return nil, kamar.Errorf(kamar.EUNAVAILABLE, "search failed: %v", err)
		}
		return nil, err
	}
	if len(results) == 0 {
		return nil, kamar.Errorf(kamar.ENOTFOUND, "no results for this keyword")
	}

	pages, err := s.readPages(ctx, pageURLs(results, s.pageLimit()))
	if err != nil {
		return nil, err
	}

	return s.Pipeline.Run(keyword, results, pages), nil
}

// readPages reads urls concurrently. Pages are returned in url order with
// failed reads omitted. Only cancellation of ctx is returned as an error.
func (s *Service) readPages(ctx context.Context, urls []string) ([]*kamar.Page, error) {
	if s.Pages == nil || len(urls) == 0 {
		return nil, nil
	}

	pages := make([]*kamar.Page, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultPageConcurrency)
	for i, u := range urls {
		g.Go(func() error {
			page, err := s.Pages.ReadPage(gctx, u)
			if err != nil {
				s.logger().Warn("page skipped", "url", u, "err", err)
				return nil
			}
			pages[i] = page
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	read := pages[:0]
	for _, p := range pages {
		if p != nil {
			read = append(read, p)
		}
	}
	return read, nil
}

// pageURLs returns up to limit distinct result links in rank order.
func pageURLs(results []kamar.SearchResult, limit int) []string {
	if limit <= 0 {
		return nil
	}
	seen := bloom.NewFilter(uint(len(results)), 0.001)
	var urls []string
	for _, r := range results {
		if len(urls) == limit {
			break
		}
		if r.Link == "" || seen.Seen(r.Link) {
			continue
		}
		urls = append(urls, r.Link)
	}
	return urls
}

func (s *Service) options() kamar.SearchOptions {
	if s.Options == (kamar.SearchOptions{}) {
		return DefaultSearchOptions
	}
	return s.Options
}

func (s *Service) pageLimit() int {
	if s.PageLimit == 0 {
		return DefaultPageLimit
	}
	return s.PageLimit
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
