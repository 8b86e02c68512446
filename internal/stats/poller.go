package stats

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rileyhilliard/statboard/internal/logger"
	"golang.org/x/sync/singleflight"
)

// Result is the outcome of one poll, tagged with the generation it was
// issued under.
type Result struct {
	Generation uint64
	Snapshot   *Snapshot
	Err        error
	FetchedAt  time.Time
	// Shared is true when this poll joined a request already in flight.
	Shared bool
}

// Poller serializes snapshot fetches. Overlapping calls to Poll share one
// in-flight request, and Accept only admits results newer than the last one
// applied, so a slow response issued before a faster one is discarded.
type Poller struct {
	fetcher Fetcher
	group   singleflight.Group
	issued  atomic.Uint64
	applied atomic.Uint64
	now     func() time.Time
	log     logger.Logger
}

// NewPoller creates a Poller around a Fetcher.
func NewPoller(f Fetcher, log logger.Logger) *Poller {
	if log == nil {
		log = logger.Noop()
	}
	return &Poller{
		fetcher: f,
		now:     time.Now,
		log:     log,
	}
}

// Poll issues a new generation and fetches a snapshot. It returns early with
// ctx.Err() if ctx is done before the shared request completes.
func (p *Poller) Poll(ctx context.Context) Result {
	gen := p.issued.Add(1)

	ch := p.group.DoChan("stats", func() (interface{}, error) {
		return p.fetcher.Fetch(ctx)
	})

	select {
	case res := <-ch:
		r := Result{Generation: gen, Err: res.Err, FetchedAt: p.now(), Shared: res.Shared}
		if res.Err == nil {
			r.Snapshot = res.Val.(*Snapshot)
		}
		if res.Shared {
			p.log.Debug("poll %d joined an in-flight request", gen)
		}
		return r
	case <-ctx.Done():
		return Result{Generation: gen, Err: ctx.Err(), FetchedAt: p.now()}
	}
}

// Accept records r as applied if it is newer than every result accepted so
// far. Callers must drop results for which Accept returns false.
func (p *Poller) Accept(r Result) bool {
	for {
		cur := p.applied.Load()
		if r.Generation <= cur {
			p.log.Debug("dropping stale poll %d (applied %d)", r.Generation, cur)
			return false
		}
		if p.applied.CompareAndSwap(cur, r.Generation) {
			return true
		}
	}
}

// Applied returns the generation of the newest accepted result.
func (p *Poller) Applied() uint64 {
	return p.applied.Load()
}
