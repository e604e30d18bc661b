package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quarterfetch/internal/domain"
	"quarterfetch/internal/logger"
	"quarterfetch/internal/repository"
	"quarterfetch/internal/service"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var ErrNoStatementSource = errors.New("no statement source answered")

type FetchHandler struct {
	// StatementRepositories are tried in order until one returns a
	// non-empty statement.
	StatementRepositories    []repository.StatementRepository
	TrailingSharesRepository repository.TrailingSharesRepository
	SnapshotRepository       repository.SnapshotRepository
	QuarterlyMetricService   service.QuarterlyMetricService
}

type RunInput struct {
	Tickers []string
	// Delay is the minimum spacing between tickers. Zero disables it.
	Delay        time.Duration
	WriteSummary bool
}

type RunOutput struct {
	RunID     uuid.UUID
	Processed []string
	Failed    map[string]error
}

// Run fetches, resolves and writes every ticker in order. A failing
// ticker is logged and left out of the index; only snapshot index or
// summary write failures and cancellation are returned as errors.
func (h FetchHandler) Run(ctx context.Context, in RunInput) (*RunOutput, error) {
	runID := uuid.New()
	log := logger.FromContext(ctx).With("runID", runID.String())
	ctx = logger.WithContext(ctx, log)

	limit := rate.Inf
	if in.Delay > 0 {
		limit = rate.Every(in.Delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	out := &RunOutput{
		RunID:     runID,
		Processed: []string{},
		Failed:    map[string]error{},
	}
	summary := map[string]domain.QuarterlyResults{}

	var runErr error
	for _, symbol := range in.Tickers {
		if err := limiter.Wait(ctx); err != nil {
			runErr = err
			break
		}

		log.Infof("fetching %s", symbol)
		results, err := h.processTicker(ctx, symbol)
		if err != nil {
			if ctx.Err() != nil {
				runErr = ctx.Err()
				break
			}
			log.Errorf("failed to process %s: %v", symbol, err)
			out.Failed[symbol] = err
			continue
		}
		out.Processed = append(out.Processed, symbol)
		summary[symbol] = results
	}

	if err := h.SnapshotRepository.WriteIndex(out.Processed); err != nil {
		return out, fmt.Errorf("failed to write index: %w", err)
	}
	if in.WriteSummary {
		if err := h.SnapshotRepository.WriteSummary(summary); err != nil {
			return out, fmt.Errorf("failed to write summary: %w", err)
		}
	}
	if runErr != nil {
		return out, runErr
	}

	log.Infof("done. processed %d/%d tickers", len(out.Processed), len(in.Tickers))
	return out, nil
}

func (h FetchHandler) processTicker(ctx context.Context, symbol string) (domain.QuarterlyResults, error) {
	log := logger.FromContext(ctx)

	statement, err := h.getStatement(ctx, symbol)
	if err != nil {
		return nil, err
	}

	var trailingShares *float64
	if !statement.Empty() {
		trailingShares, err = h.TrailingSharesRepository.Get(ctx, symbol)
		if err != nil {
			log.Warnf("continuing without trailing shares for %s: %v", symbol, err)
			trailingShares = nil
		}
	}

	results := h.QuarterlyMetricService.Resolve(statement, trailingShares)
	if err := h.SnapshotRepository.WriteTicker(symbol, results); err != nil {
		return nil, err
	}

	return results, nil
}

// getStatement returns the first non-empty statement. If at least one
// source answered but none had data, the result is nil with no error.
func (h FetchHandler) getStatement(ctx context.Context, symbol string) (*domain.Statement, error) {
	log := logger.FromContext(ctx)

	errs := []error{}
	answered := false
	for _, source := range h.StatementRepositories {
		statement, err := source.GetQuarterly(ctx, symbol)
		if err != nil {
			log.Warnf("%s statement failed for %s: %v", source.Name(), symbol, err)
			errs = append(errs, err)
			continue
		}
		answered = true
		if !statement.Empty() {
			return statement, nil
		}
		log.Debugf("%s has no quarterly statement for %s", source.Name(), symbol)
	}

	if !answered && len(errs) > 0 {
		return nil, fmt.Errorf("%w for %s: %w", ErrNoStatementSource, symbol, errors.Join(errs...))
	}
	return nil, nil
}
