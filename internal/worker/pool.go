// Package worker replays game records on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/shogi-core-go/internal/hashing"
	"github.com/lgbarn/shogi-core-go/internal/position"
)

// WorkItem is one record line to be replayed.
type WorkItem struct {
	Index  int    // Input order, used to restore ordering of results
	Line   string // USI position command
	Source string // File name and line number, for diagnostics
}

// ProcessResult is the outcome of replaying one WorkItem.
type ProcessResult struct {
	Index  int
	Source string
	Game   *position.Game
	// Signature is set when duplicate detection is enabled
	Signature   hashing.GameSignature
	Repetitions int
	Err         error
}

// ProcessFunc replays a single item. It runs concurrently on every worker.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to workers and collects their results.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc
	work    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool running process. Defaults: 1 worker, buffer 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, buffer: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers. Once ctx is done, queued items are drained
// without being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for item := range p.work {
				if ctx.Err() != nil {
					continue
				}
				p.results <- p.process(item)
			}
		}()
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// ctx.Err() if ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.work <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work, waits for the workers and then closes the
// result channel. It must be called exactly once, after the last Submit.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of processed results, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}
