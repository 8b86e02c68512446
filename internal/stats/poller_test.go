package stats

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rileyhilliard/statboard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingFetcher holds every Fetch until release is closed.
type blockingFetcher struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	snap    *Snapshot
	err     error
}

func newBlockingFetcher(snap *Snapshot, err error) *blockingFetcher {
	return &blockingFetcher{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
		snap:    snap,
		err:     err,
	}
}

func (f *blockingFetcher) Fetch(ctx context.Context) (*Snapshot, error) {
	f.calls.Add(1)
	f.started <- struct{}{}
	<-f.release
	return f.snap, f.err
}

type staticFetcher struct {
	snap *Snapshot
	err  error
}

func (f staticFetcher) Fetch(context.Context) (*Snapshot, error) { return f.snap, f.err }

func TestPoller_PollReturnsSnapshot(t *testing.T) {
	snap := &Snapshot{Updated: 1, Servers: []HostStatus{{Name: "a"}}}
	p := NewPoller(staticFetcher{snap: snap}, nil)

	r := p.Poll(context.Background())
	require.NoError(t, r.Err)
	assert.Equal(t, uint64(1), r.Generation)
	assert.Same(t, snap, r.Snapshot)
	assert.False(t, r.FetchedAt.IsZero())

	r2 := p.Poll(context.Background())
	assert.Equal(t, uint64(2), r2.Generation)
}

func TestPoller_PollError(t *testing.T) {
	p := NewPoller(staticFetcher{err: stderrors.New("down")}, nil)

	r := p.Poll(context.Background())
	assert.EqualError(t, r.Err, "down")
	assert.Nil(t, r.Snapshot)
}

func TestPoller_OverlappingPollsShareRequest(t *testing.T) {
	snap := &Snapshot{Updated: 7}
	f := newBlockingFetcher(snap, nil)
	log := logger.NewBufferLogger()
	p := NewPoller(f, log)

	results := make([]Result, 2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = p.Poll(context.Background())
	}()
	<-f.started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1] = p.Poll(context.Background())
	}()

	// Give the second poll time to join the in-flight request.
	require.Eventually(t, func() bool { return p.issued.Load() == 2 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.Equal(t, int32(1), f.calls.Load(), "second poll should not start another request")
	assert.Same(t, snap, results[0].Snapshot)
	assert.Same(t, snap, results[1].Snapshot)
	assert.NotEqual(t, results[0].Generation, results[1].Generation)
}

func TestPoller_PollCancelled(t *testing.T) {
	f := newBlockingFetcher(&Snapshot{}, nil)
	defer close(f.release)
	p := NewPoller(f, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Result, 1)
	go func() { done <- p.Poll(ctx) }()
	<-f.started
	cancel()

	select {
	case r := <-done:
		assert.ErrorIs(t, r.Err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Poll did not return after cancel")
	}
}

func TestPoller_AcceptDropsStaleResults(t *testing.T) {
	p := NewPoller(staticFetcher{}, logger.Noop())

	tests := []struct {
		name string
		gen  uint64
		want bool
	}{
		{"first result", 2, true},
		{"older result arriving late", 1, false},
		{"duplicate generation", 2, false},
		{"newer result", 5, true},
		{"stale again", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Accept(Result{Generation: tt.gen}))
		})
	}
	assert.Equal(t, uint64(5), p.Applied())
}
