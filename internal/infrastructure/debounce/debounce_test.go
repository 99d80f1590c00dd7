package debounce

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu      sync.Mutex
	results []Result[string]
	done    chan struct{}
}

func newCollector() *collector {
	return &collector{done: make(chan struct{}, 16)}
}

func (c *collector) deliver(r Result[string]) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
	c.done <- struct{}{}
}

func (c *collector) snapshot() []Result[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result[string](nil), c.results...)
}

func echo(calls *int32) func(ctx context.Context, in string) (string, error) {
	return func(ctx context.Context, in string) (string, error) {
		atomic.AddInt32(calls, 1)
		return "result:" + in, nil
	}
}

func TestDebouncer_CoalescesRapidInput(t *testing.T) {
	var calls int32
	c := newCollector()
	d := New(context.Background(), 100*time.Millisecond, echo(&calls), c.deliver)
	defer d.Stop()

	for _, q := range []string{"l", "lo", "lon", "lond"} {
		d.Submit(q)
		time.Sleep(5 * time.Millisecond)
	}
	last := d.Submit("london")

	select {
	case <-c.done:
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}
	time.Sleep(60 * time.Millisecond)

	results := c.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, "result:london", results[0].Value)
	assert.Equal(t, last, results[0].Generation)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_CancelsSupersededInFlightCall(t *testing.T) {
	c := newCollector()
	started := make(chan struct{})
	cancelled := make(chan struct{})

	fn := func(ctx context.Context, in string) (string, error) {
		if in == "slow" {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return "stale", ctx.Err()
		}
		return "fresh:" + in, nil
	}

	d := New(context.Background(), 10*time.Millisecond, fn, c.deliver)
	defer d.Stop()

	d.Submit("slow")
	<-started
	d.Submit("fast")

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("superseded call was not cancelled")
	}
	select {
	case <-c.done:
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}

	results := c.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, "fresh:fast", results[0].Value)
	assert.NoError(t, results[0].Err)
}

func TestDebouncer_SeparatedInputsEachDeliver(t *testing.T) {
	var calls int32
	c := newCollector()
	d := New(context.Background(), 10*time.Millisecond, echo(&calls), c.deliver)
	defer d.Stop()

	d.Submit("JFK")
	<-c.done
	d.Submit("LHR")
	<-c.done

	results := c.snapshot()
	require.Len(t, results, 2)
	assert.Equal(t, "result:JFK", results[0].Value)
	assert.Equal(t, "result:LHR", results[1].Value)
	assert.Less(t, results[0].Generation, results[1].Generation)
}

func TestDebouncer_StopPreventsDelivery(t *testing.T) {
	var calls int32
	c := newCollector()
	d := New(context.Background(), 20*time.Millisecond, echo(&calls), c.deliver)

	d.Submit("paris")
	d.Stop()
	assert.Equal(t, uint64(0), d.Submit("tokyo"))

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, c.snapshot())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncer_ParentCancellation(t *testing.T) {
	var calls int32
	c := newCollector()
	ctx, cancel := context.WithCancel(context.Background())
	d := New(ctx, 20*time.Millisecond, echo(&calls), c.deliver)
	defer d.Stop()

	d.Submit("dubai")
	cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, c.snapshot())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncer_Generation(t *testing.T) {
	d := New(context.Background(), time.Hour, func(ctx context.Context, in int) (int, error) { return in, nil }, func(Result[int]) {})
	defer d.Stop()

	assert.Equal(t, uint64(0), d.Generation())
	d.Submit(1)
	d.Submit(2)
	assert.Equal(t, uint64(2), d.Generation())
}
