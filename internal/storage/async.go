package storage

import (
	"context"

	"github.com/pageza/recipebook/internal/model"
	"golang.org/x/sync/semaphore"
)

// SaveOutcome is delivered by SaveAsync.
type SaveOutcome struct {
	Report *SaveReport
	Err    error
}

// AsyncGateway runs loads and saves of an underlying Gateway off the
// caller's goroutine, one at a time. It is itself a Gateway whose blocking
// calls queue behind any operation in flight.
type AsyncGateway struct {
	gateway Gateway
	sem     *semaphore.Weighted
}

// NewAsyncGateway wraps gateway.
func NewAsyncGateway(gateway Gateway) *AsyncGateway {
	return &AsyncGateway{
		gateway: gateway,
		sem:     semaphore.NewWeighted(1),
	}
}

// SaveAsync snapshots book and saves the snapshot in the background. The
// call waits only for a previous operation to finish; the book may be
// mutated as soon as it returns.
func (a *AsyncGateway) SaveAsync(ctx context.Context, location string, book *model.RecipeBook) <-chan SaveOutcome {
	out := make(chan SaveOutcome, 1)
	if err := a.sem.Acquire(ctx, 1); err != nil {
		out <- SaveOutcome{Err: ioError("write", location, err)}
		close(out)
		return out
	}

	snapshot := book.Clone()
	go func() {
		defer close(out)
		defer a.sem.Release(1)
		report, err := a.gateway.Save(ctx, location, snapshot)
		out <- SaveOutcome{Report: report, Err: err}
	}()
	return out
}

// LoadAsync loads location in the background.
func (a *AsyncGateway) LoadAsync(ctx context.Context, location string) <-chan *LoadResult {
	out := make(chan *LoadResult, 1)
	if err := a.sem.Acquire(ctx, 1); err != nil {
		out <- &LoadResult{Book: model.NewRecipeBook(), Err: ioError("read", location, err)}
		close(out)
		return out
	}

	go func() {
		defer close(out)
		defer a.sem.Release(1)
		out <- a.gateway.Load(ctx, location)
	}()
	return out
}

// Save blocks until the save completes.
func (a *AsyncGateway) Save(ctx context.Context, location string, book *model.RecipeBook) (*SaveReport, error) {
	outcome := <-a.SaveAsync(ctx, location, book)
	return outcome.Report, outcome.Err
}

// Load blocks until the load completes.
func (a *AsyncGateway) Load(ctx context.Context, location string) *LoadResult {
	return <-a.LoadAsync(ctx, location)
}
