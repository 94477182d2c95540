package streams

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIndex_StableAndInRange(t *testing.T) {
	t.Parallel()

	keys := []string{"mcutils/c0ffee", "ethtool/c0ffee", "mcutils/00ff00ff", ""}
	for _, key := range keys {
		idx := partitionIndex(key, defaultNumPartitions)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, defaultNumPartitions)
		assert.Equal(t, idx, partitionIndex(key, defaultNumPartitions))
	}
}

func TestPartitionedQueue_SameKeySamePartitionInOrder(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](4, 8)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Publish(ctx, "mcutils/c0ffee", i))
	}

	ch := queue.Partition(partitionIndex("mcutils/c0ffee", 4))
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, <-ch)
	}
}

func TestPartitionedQueue_PublishAfterClose(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](2, 1)
	queue.Close()
	queue.Close()

	err := queue.Publish(context.Background(), "k", 1)
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestPartitionedQueue_PublishFullPartitionHonorsContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := queue.Publish(ctx, "k", 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPartitionedQueue_CloseKeepsBufferedMessages(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[string](1, 2)
	require.NoError(t, queue.Publish(context.Background(), "k", "a"))
	queue.Close()

	msg, ok := <-queue.Partition(0)
	assert.True(t, ok)
	assert.Equal(t, "a", msg)
	_, ok = <-queue.Partition(0)
	assert.False(t, ok)
}
