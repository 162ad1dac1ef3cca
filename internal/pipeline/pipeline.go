// Package pipeline runs word processing across a fixed pool of workers and
// merges their results into a single grouping.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/wordnum/internal/aggregate"
	"github.com/standardbeagle/wordnum/internal/debug"
	"github.com/standardbeagle/wordnum/internal/subst"
)

const taskBuffer = 256

// Words is the minimal word stream a Pool consumes. Next returns the next
// word, false when the stream is exhausted, or an error when the underlying
// source fails. Sources are finite and restartable only by recreation.
type Words interface {
	Next() (word string, ok bool, err error)
}

// Task is one unit of work: a word tagged with its input position. The index
// is what lets the collector restore input order regardless of which worker
// finishes first.
type Task struct {
	Index int
	Word  string
}

// Result carries one word's pairs back to the collector.
type Result struct {
	Index int
	Pairs []subst.Pair
}

// Options configures a Pool.
type Options struct {
	Workers int        // 0 = runtime.NumCPU()
	Mode    subst.Mode
	MinLen  int
	MaxLen  int

	// Unordered merges results in finish order instead of input order. It is
	// faster on skewed inputs but leaves the per-key word order unspecified.
	Unordered bool
}

// Pool fans words out to workers running a shared Processor. Workers read
// only the immutable table and their own task; the collector goroutine is the
// sole writer of the grouping, so no locks are needed.
type Pool struct {
	proc *subst.Processor
	opts Options
}

// New creates a Pool over proc.
func New(proc *subst.Processor, opts Options) *Pool {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Pool{proc: proc, opts: opts}
}

// Run processes every word from words and returns the merged grouping. An
// input source error cancels the workers and aborts the run with no partial
// results. By default results merge in input order; see Options.Unordered.
func (p *Pool) Run(ctx context.Context, words Words) (aggregate.Grouping, error) {
	tasks := make(chan Task, taskBuffer)
	results := make(chan Result, taskBuffer)

	g, ctx := errgroup.WithContext(ctx)

	// Producer: stream words into the task channel tagged with their index.
	g.Go(func() error {
		defer close(tasks)
		for index := 0; ; index++ {
			word, ok, err := words.Next()
			if err != nil {
				return err
			}
			if !ok {
				debug.LogPipeline("producer done after %d words\n", index)
				return nil
			}
			select {
			case tasks <- Task{Index: index, Word: word}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	// Workers: pure per-word processing, no shared mutable state.
	var workers sync.WaitGroup
	for i := 0; i < p.opts.Workers; i++ {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			for task := range tasks {
				pairs := p.proc.Process(task.Word, p.opts.Mode, p.opts.MinLen, p.opts.MaxLen)
				select {
				case results <- Result{Index: task.Index, Pairs: pairs}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		workers.Wait()
		close(results)
	}()

	grouping := p.collect(results)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grouping, nil
}

// collect drains the result channel into a grouping. In ordered mode results
// are held in a reorder buffer keyed by input index and flushed contiguously,
// so the merge observes the exact input order even though workers finish in
// arbitrary order.
func (p *Pool) collect(results <-chan Result) aggregate.Grouping {
	grouping := aggregate.New()

	if p.opts.Unordered {
		for res := range results {
			grouping.Append(res.Pairs)
		}
		return grouping
	}

	pending := make(map[int][]subst.Pair)
	next := 0
	for res := range results {
		pending[res.Index] = res.Pairs
		for {
			pairs, ok := pending[next]
			if !ok {
				break
			}
			grouping.Append(pairs)
			delete(pending, next)
			next++
		}
	}
	return grouping
}
