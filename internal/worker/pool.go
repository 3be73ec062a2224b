// Package worker provides a worker pool for replaying move scripts in
// parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem represents a script to be replayed.
type WorkItem struct {
	Script *Script
	Index  int // Position of the script in the input
}

// ProcessResult represents the result of replaying a script.
type ProcessResult struct {
	Script  *Script
	Index   int
	Game    engine.Game // Game after the last accepted move
	Played  int         // Number of moves accepted
	Error   error       // First rejection, wrapped in a *errors.MoveError
	Skipped bool        // Never replayed because the pool stopped first
}

// Failed reports whether the script stopped on a rejected move.
func (r ProcessResult) Failed() bool {
	return r.Error != nil
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of
// goroutines. Results arrive in completion order.
type Pool struct {
	numWorkers    int
	bufferSize    int
	stopOnFailure bool
	workChan      chan WorkItem
	resultChan    chan ProcessResult
	processFunc   ProcessFunc
	wg            sync.WaitGroup
	stopFlag      int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the size of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnFailure makes the worker that produces the first failed
// result stop the pool.
func WithStopOnFailure() PoolOption {
	return func(p *Pool) {
		p.stopOnFailure = true
	}
}

// NewPoolWithOptions creates a pool for processFunc. Without options it
// runs one worker with a buffer of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items until the work channel is closed. Once the pool
// is stopped, items are drained without a result.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		r := p.processFunc(item)
		if p.stopOnFailure && r.Failed() {
			p.Stop()
		}
		p.resultChan <- r
	}
}

// Submit queues a work item. It blocks while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers drop every item they have not started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
