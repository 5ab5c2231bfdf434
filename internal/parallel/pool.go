package parallel

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// BlockFunc renders one block. It is called only from the worker that owns
// it, so it may hold per-worker state such as a private scene copy.
type BlockFunc func(b Block)

// workItem is either a block identifier or a terminal token.
type workItem struct {
	block    int
	terminal bool
}

// terminalToken tells the worker that pops it to exit.
var terminalToken = workItem{block: -1, terminal: true}

// WorkerStats describes what a single worker did during Run.
type WorkerStats struct {
	// ID is the worker index in [0, Workers()).
	ID int

	// Blocks is the number of blocks rendered by this worker.
	Blocks int

	// Busy is the time spent inside BlockFunc.
	Busy time.Duration

	// Terminated is set once the worker has consumed its terminal token.
	Terminated bool
}

// Stats summarizes a Run.
type Stats struct {
	// Blocks is the number of blocks dispatched.
	Blocks int

	// Tokens is the number of terminal tokens pushed.
	Tokens int

	// Workers holds one entry per worker, indexed by worker ID.
	Workers []WorkerStats

	// Elapsed is the wall time from the first push to the end of the join.
	Elapsed time.Duration
}

// WorkerPool is a fixed set of goroutines fed from one shared Queue.
//
// Blocks are statically partitioned: the first idle worker takes the next
// block id, there is no stealing and no rebalancing. Run spawns the workers,
// enqueues the work followed by one terminal token per worker, and joins.
//
// Thread safety: a WorkerPool runs one partition at a time. Run must not be
// called concurrently on the same pool.
type WorkerPool struct {
	// workers is the number of worker goroutines started by Run.
	workers int

	// queue carries block ids and terminal tokens.
	queue *Queue[workItem]

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running is true while Run is in progress.
	running atomic.Bool

	logger atomic.Pointer[slog.Logger]
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   NewQueue[workItem](),
	}
	p.logger.Store(slog.New(discardHandler{}))
	return p
}

// SetLogger sets the logger used for per-block diagnostics.
// Passing nil silences the pool.
func (p *WorkerPool) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	p.logger.Store(l)
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true while Run is dispatching or joining.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Run renders every block of part and returns once all workers have exited.
//
// newWorker is called once per worker, on the calling goroutine and before
// any worker starts, to build that worker's BlockFunc. Callers hand each
// worker an independent copy of any state the BlockFunc reads.
//
// A panic inside a BlockFunc is not recovered.
func (p *WorkerPool) Run(part Partition, newWorker func(id int) BlockFunc) Stats {
	p.running.Store(true)
	defer p.running.Store(false)

	log := p.logger.Load()
	stats := Stats{
		Blocks:  part.Count(),
		Workers: make([]WorkerStats, p.workers),
	}

	funcs := make([]BlockFunc, p.workers)
	for id := range p.workers {
		funcs[id] = newWorker(id)
	}

	start := time.Now()

	p.wg.Add(p.workers)
	for id := range p.workers {
		go p.worker(id, part, funcs[id], &stats.Workers[id])
	}

	for id := range part.Count() {
		p.queue.Push(workItem{block: id})
	}
	for range p.workers {
		p.queue.Push(terminalToken)
		stats.Tokens++
	}

	p.wg.Wait()
	stats.Elapsed = time.Since(start)

	log.Debug("parallel: run complete",
		"blocks", stats.Blocks,
		"workers", p.workers,
		"elapsed", stats.Elapsed)
	return stats
}

// worker is the main loop for each worker goroutine.
//
// Idle while blocked in Pop, Rendering while fn runs, Terminated after the
// terminal token. Termination only happens between blocks.
func (p *WorkerPool) worker(id int, part Partition, fn BlockFunc, ws *WorkerStats) {
	defer p.wg.Done()

	ws.ID = id
	log := p.logger.Load()

	for {
		item := p.queue.Pop()
		if item.terminal {
			ws.Terminated = true
			log.Debug("parallel: worker exit", "worker", id, "blocks", ws.Blocks)
			return
		}

		b := part.Block(item.block)
		t0 := time.Now()
		fn(b)
		d := time.Since(t0)

		ws.Blocks++
		ws.Busy += d
		log.Debug("parallel: block done", "worker", id, "block", b.ID, "duration", d)
	}
}

// discardHandler drops every record; Enabled returns false so callers skip
// formatting.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
