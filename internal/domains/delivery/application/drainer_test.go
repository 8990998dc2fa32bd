package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/memory"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
)

type fakeCourier struct {
	mu        sync.Mutex
	delivered []domain.Batch
	failIDs   map[string]bool
	onDeliver func()
}

func (c *fakeCourier) Name() string { return "fake" }

func (c *fakeCourier) Deliver(_ context.Context, batch domain.Batch) error {
	if c.onDeliver != nil {
		c.onDeliver()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failIDs[batch.ID] {
		return errors.New("courier refused")
	}
	c.delivered = append(c.delivered, batch)
	return nil
}

func (c *fakeCourier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.delivered)
}

func batchOf(id string, n int) domain.Batch {
	shirts := make([]domain.Shirt, n)
	for i := range shirts {
		shirts[i] = domain.Shirt{StyleName: "style1", ImageRef: "style1Image"}
	}
	return domain.Batch{ID: id, OrderNum: "o-" + id, Shirts: shirts}
}

func TestDrain_EmptiesQueueAndRecordsLedger(t *testing.T) {
	queue := memory.NewDispatchQueue()
	queue.Enqueue(batchOf("a", 3))
	queue.Enqueue(batchOf("b", 2))
	courier := &fakeCourier{}
	ledger := memory.NewLedger()
	at := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	drainer := NewDrainer(queue, courier, WithDrainLedger(ledger), WithDrainClock(func() time.Time { return at }))

	report := drainer.Drain(context.Background())
	require.Equal(t, DrainReport{Batches: 2, Shirts: 5}, report)
	require.Zero(t, queue.Len())
	require.Equal(t, "a", courier.delivered[0].ID)
	require.Equal(t, "b", courier.delivered[1].ID)

	records, err := ledger.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "b", records[0].BatchID)
	require.Equal(t, "fake", records[0].Courier)
	require.Equal(t, at, records[0].DeliveredAt)
}

func TestDrain_EmptyQueueIsNoop(t *testing.T) {
	drainer := NewDrainer(memory.NewDispatchQueue(), &fakeCourier{})
	require.Equal(t, DrainReport{}, drainer.Drain(context.Background()))
}

func TestDrain_CourierFailureDoesNotStopDrain(t *testing.T) {
	queue := memory.NewDispatchQueue()
	queue.Enqueue(batchOf("a", 1))
	queue.Enqueue(batchOf("b", 1))
	courier := &fakeCourier{failIDs: map[string]bool{"a": true}}
	ledger := memory.NewLedger()
	drainer := NewDrainer(queue, courier, WithDrainLedger(ledger))

	report := drainer.Drain(context.Background())
	require.Equal(t, DrainReport{Batches: 1, Shirts: 1, Failed: 1}, report)
	require.Zero(t, queue.Len())

	records, err := ledger.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "b", records[0].BatchID)
}

func TestDrain_ConcurrentAppendsAreEachDeliveredOnce(t *testing.T) {
	queue := memory.NewDispatchQueue()
	courier := &fakeCourier{}
	drainer := NewDrainer(queue, courier)

	const producers = 40
	var g errgroup.Group
	for i := 0; i < producers; i++ {
		i := i
		g.Go(func() error {
			queue.Enqueue(batchOf(fmt.Sprintf("p-%d", i), 1))
			return nil
		})
		if i%10 == 0 {
			g.Go(func() error {
				drainer.Drain(context.Background())
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())
	drainer.Drain(context.Background())

	require.Zero(t, queue.Len())
	require.Equal(t, producers, courier.count())
	seen := map[string]bool{}
	for _, batch := range courier.delivered {
		require.False(t, seen[batch.ID], "batch %s delivered twice", batch.ID)
		seen[batch.ID] = true
	}
}

func TestDrain_PicksUpBatchesAppendedMidDrain(t *testing.T) {
	queue := memory.NewDispatchQueue()
	queue.Enqueue(batchOf("first", 1))
	var once sync.Once
	courier := &fakeCourier{}
	courier.onDeliver = func() {
		once.Do(func() { queue.Enqueue(batchOf("late", 1)) })
	}
	drainer := NewDrainer(queue, courier)

	report := drainer.Drain(context.Background())
	require.Equal(t, 2, report.Batches)
	require.Zero(t, queue.Len())
}

func TestRun_FinalDrainOnCancel(t *testing.T) {
	queue := memory.NewDispatchQueue()
	courier := &fakeCourier{}
	drainer := NewDrainer(queue, courier, WithInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- drainer.Run(ctx) }()

	queue.Enqueue(batchOf("a", 2))
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("drainer did not stop")
	}
	require.Equal(t, 1, courier.count())
	require.Zero(t, queue.Len())
}

func TestRun_DrainsOnTick(t *testing.T) {
	queue := memory.NewDispatchQueue()
	courier := &fakeCourier{}
	drainer := NewDrainer(queue, courier, WithInterval(10*time.Millisecond))
	queue.Enqueue(batchOf("a", 1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = drainer.Run(ctx) }()

	require.Eventually(t, func() bool { return courier.count() == 1 }, time.Second, 5*time.Millisecond)
}
