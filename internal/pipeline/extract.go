package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/srcweld/srcweld/internal/imports"
	"github.com/srcweld/srcweld/internal/model"
	"github.com/srcweld/srcweld/internal/source"
)

// DefaultConcurrency is the number of files extracted simultaneously when
// no limit is configured.
const DefaultConcurrency = 8

// Extractor processes one source file and returns its extraction result.
// Implementations must be safe for concurrent use; the batch extractor
// calls them from multiple goroutines.
type Extractor func(ctx context.Context, path string) (*model.FileResult, error)

// FileExtractor reads a source file and extracts its import directives.
// This is the production Extractor; tests substitute their own.
func FileExtractor(_ context.Context, path string) (*model.FileResult, error) {
	lines, err := source.ReadLines(path)
	if err != nil {
		return nil, err
	}

	namespaces, body := imports.Extract(lines)
	return &model.FileResult{
		Path:       path,
		Namespaces: namespaces,
		Body:       body,
	}, nil
}

// BatchExtractor fans extraction out over a bounded number of goroutines
// and collects results back into input order.
type BatchExtractor struct {
	extract     Extractor
	concurrency int
	logger      *slog.Logger
}

// Option configures a BatchExtractor.
type Option func(*BatchExtractor)

// WithConcurrency sets the maximum number of files extracted at once.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(b *BatchExtractor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for progress logging.
func WithLogger(logger *slog.Logger) Option {
	return func(b *BatchExtractor) {
		b.logger = logger
	}
}

// NewBatchExtractor creates a BatchExtractor using the given Extractor.
func NewBatchExtractor(extract Extractor, opts ...Option) *BatchExtractor {
	b := &BatchExtractor{
		extract:     extract,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// ExtractAll extracts every file in paths and returns the results in the
// same order as paths.
//
// The first extraction failure cancels the remaining work and is returned;
// an unreadable source file aborts the whole run, there is no partial mode.
// Each goroutine writes to a distinct index of the pre-sized results slice,
// so no further synchronization is needed beyond the errgroup's Wait.
func (b *BatchExtractor) ExtractAll(ctx context.Context, paths []string) ([]*model.FileResult, error) {
	b.logger.Debug("starting extraction",
		"files", len(paths),
		"concurrency", b.concurrency,
	)

	results := make([]*model.FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := b.extract(ctx, path)
			if err != nil {
				return err
			}

			results[i] = result

			b.logger.Debug("extracted file",
				"path", path,
				"namespaces", len(result.Namespaces),
				"bodyLines", len(result.Body),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
