// Package render dispatches literal rendering requests to the escape
// package and renders batches in parallel.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/clarkmcc/surrealdb/pkg/escape"
	"github.com/clarkmcc/surrealdb/pkg/literal"
	"github.com/clarkmcc/surrealdb/pkg/token"
	"golang.org/x/sync/errgroup"
)

// Config controls how a Service renders.
type Config struct {
	// Compat prefixes strands the legacy grammar would read as uuids,
	// datetimes or record ids.
	Compat bool
	// Workers bounds RenderBatch concurrency. Zero means GOMAXPROCS.
	Workers int
}

// Request is one value to render as the given kind.
type Request struct {
	Kind  token.Kind `json:"kind"`
	Input string     `json:"input"`
}

// Result is the rendered form of a Request.
type Result struct {
	Kind    token.Kind `json:"kind"`
	Input   string     `json:"input"`
	Output  string     `json:"output"`
	Changed bool       `json:"changed"`
}

// Service renders requests. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	oracle  escape.Oracle
	workers int
	logger  *slog.Logger
}

// New creates a Service. A nil logger discards log output.
func New(cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var oracle escape.Oracle = escape.NoopOracle{}
	if cfg.Compat {
		oracle = literal.Legacy{}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Service{
		oracle:  oracle,
		workers: workers,
		logger:  logger,
	}
}

// Oracle returns the oracle used for strands.
func (s *Service) Oracle() escape.Oracle {
	return s.oracle
}

// Render renders a single request.
func (s *Service) Render(req Request) (Result, error) {
	res := Result{Kind: req.Kind, Input: req.Input}

	switch req.Kind {
	case token.String:
		res.Output = escape.QuoteStr(req.Input)
		res.Changed = true
	case token.Plain:
		res.Output = escape.QuotePlainStr(req.Input, s.oracle)
		res.Changed = true
	default:
		p, ok := escape.PolicyFor(req.Kind)
		if !ok {
			return res, fmt.Errorf("%w: %s", token.ErrUnknownKind, req.Kind)
		}
		res.Output, res.Changed = p.Apply(req.Input)
	}

	s.logger.Debug("rendered literal",
		slog.String("kind", req.Kind.String()),
		slog.Bool("changed", res.Changed))
	return res, nil
}

// RenderBatch renders reqs in parallel. Results keep the order of reqs.
func (s *Service) RenderBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.Render(reqs[i])
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("rendered batch", slog.Int("count", len(reqs)), slog.Int("workers", s.workers))
	return results, nil
}
