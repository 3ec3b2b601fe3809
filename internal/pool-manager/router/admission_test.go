package router

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queueLen(a *admission) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queue.Len()
}

func TestAdmission_Unlimited(t *testing.T) {
	a := newAdmission(0, nil)
	for i := 0; i < 100; i++ {
		require.NoError(t, a.Acquire(context.Background(), model.RequestPriorityLow))
	}
	a.Release()
}

func TestAdmission_PriorityOrder(t *testing.T) {
	a := newAdmission(1, nil)
	require.NoError(t, a.Acquire(context.Background(), model.RequestPriorityNormal))

	var mu sync.Mutex
	var order []string
	var wg sync.WaitGroup
	enqueue := func(name string, p model.RequestPriority) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, a.Acquire(context.Background(), p))
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			a.Release()
		}()
	}

	enqueue("low", model.RequestPriorityLow)
	require.Eventually(t, func() bool { return queueLen(a) == 1 }, time.Second, time.Millisecond)
	enqueue("normal-1", model.RequestPriorityNormal)
	require.Eventually(t, func() bool { return queueLen(a) == 2 }, time.Second, time.Millisecond)
	enqueue("normal-2", model.RequestPriorityNormal)
	require.Eventually(t, func() bool { return queueLen(a) == 3 }, time.Second, time.Millisecond)
	enqueue("critical", model.RequestPriorityCritical)
	require.Eventually(t, func() bool { return queueLen(a) == 4 }, time.Second, time.Millisecond)

	a.Release()
	wg.Wait()

	assert.Equal(t, []string{"critical", "normal-1", "normal-2", "low"}, order)
	assert.Equal(t, 0, a.inFlight)
}

func TestAdmission_CancelledWaiterLeavesQueue(t *testing.T) {
	a := newAdmission(1, nil)
	require.NoError(t, a.Acquire(context.Background(), model.RequestPriorityNormal))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- a.Acquire(ctx, model.RequestPriorityHigh) }()
	require.Eventually(t, func() bool { return queueLen(a) == 1 }, time.Second, time.Millisecond)

	cancel()
	err := <-errCh
	assert.ErrorIs(t, err, apperrors.ErrAdmissionCancelled)
	assert.Equal(t, 0, queueLen(a))

	a.Release()
	require.NoError(t, a.Acquire(context.Background(), model.RequestPriorityLow))
}
