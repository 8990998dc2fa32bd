package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
)

func TestDispatchQueue_FIFO(t *testing.T) {
	q := NewDispatchQueue()
	_, ok := q.Poll()
	require.False(t, ok)

	q.Enqueue(domain.Batch{ID: "a"})
	q.Enqueue(domain.Batch{ID: "b"})
	require.Equal(t, 2, q.Len())

	first, ok := q.Poll()
	require.True(t, ok)
	require.Equal(t, "a", first.ID)
	second, ok := q.Poll()
	require.True(t, ok)
	require.Equal(t, "b", second.ID)

	_, ok = q.Poll()
	require.False(t, ok)
	require.Zero(t, q.Len())
}

func TestDispatchQueue_ConcurrentEnqueue(t *testing.T) {
	q := NewDispatchQueue()
	var g errgroup.Group
	for i := 0; i < 50; i++ {
		i := i
		g.Go(func() error {
			q.Enqueue(domain.Batch{ID: fmt.Sprintf("b-%d", i)})
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, 50, q.Len())

	seen := map[string]bool{}
	for {
		batch, ok := q.Poll()
		if !ok {
			break
		}
		require.False(t, seen[batch.ID], "batch %s polled twice", batch.ID)
		seen[batch.ID] = true
	}
	require.Len(t, seen, 50)
}
