package sentiment

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrPoolClosed is returned for submissions after Shutdown.
var ErrPoolClosed = errors.New("sentiment pool is shut down")

// Scorer scores one ordered batch of review texts.
type Scorer interface {
	Analyze(ctx context.Context, texts []string) (*Batch, error)
}

type task struct {
	texts []string
	out   chan taskResult
}

type taskResult struct {
	batch *Batch
	err   error
}

// Pool bounds the number of classifier subprocesses running at once and
// coalesces concurrent requests for the same media item into a single
// invocation: N concurrent readers of one item cost one subprocess.
type Pool struct {
	scorer      Scorer
	workerCount int
	taskQueue   chan task
	group       singleflight.Group
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewPool creates a pool with the specified number of workers.
func NewPool(scorer Scorer, workerCount int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		scorer:      scorer,
		workerCount: workerCount,
		taskQueue:   make(chan task, workerCount*2), // Buffered channel
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	log.Printf("[SentimentPool] Started %d workers", p.workerCount)
}

// Analyze scores the texts for one media item. key identifies the media item;
// callers that arrive while an identical batch is in flight share its result.
func (p *Pool) Analyze(ctx context.Context, key string, texts []string) (*Batch, error) {
	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		out := make(chan taskResult, 1)

		select {
		case p.taskQueue <- task{texts: texts, out: out}:
		case <-p.ctx.Done():
			return nil, ErrPoolClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		select {
		case res := <-out:
			if res.err != nil {
				return nil, res.err
			}
			return res.batch, nil
		case <-p.ctx.Done():
			return nil, ErrPoolClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	if err != nil {
		return nil, err
	}
	return v.(*Batch), nil
}

// Shutdown cancels all workers and waits for completion. The task queue is
// never closed: pending and late submitters observe the cancelled context
// instead.
func (p *Pool) Shutdown() {
	log.Println("[SentimentPool] Shutting down...")
	p.cancel()
	p.wg.Wait()
	log.Println("[SentimentPool] All workers completed")
}

// worker processes tasks from the queue
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case t := <-p.taskQueue:
			batch, err := p.scorer.Analyze(p.ctx, t.texts)
			if err != nil {
				log.Printf("[SentimentWorker %d] batch error: %v", id, err)
			}
			t.out <- taskResult{batch: batch, err: err}
		}
	}
}
