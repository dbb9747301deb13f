package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shippix/internal/adapters/out/memory"
	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newReview(t *testing.T) order.ReviewHandoff {
	t.Helper()
	draft, err := order.NewDraft(validation.Values{
		"customerName":     "John Doe",
		"emailAddress":     "john@example.com",
		"phoneNumber":      "01234567890",
		"streetAddress":    "12 Tahrir St.",
		"city":             "Cairo",
		"itemsDescription": "Two books",
		"packageValue":     "250",
		"totalWeight":      "5.5",
	})
	require.NoError(t, err)
	estimate, err := order.NewEstimate(5.5, 30, 41)
	require.NoError(t, err)
	review, err := order.NewReviewHandoff(draft, estimate)
	require.NoError(t, err)
	return review
}

func newStore() (*memory.HandoffStore, *clock) {
	c := &clock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	return memory.NewHandoffStore(30*time.Minute, c.Now), c
}

func TestHandoffStore_PutTake(t *testing.T) {
	t.Run("should return the stored handoff once", func(t *testing.T) {
		store, _ := newStore()
		review := newReview(t)

		token, err := store.Put(t.Context(), review)
		require.NoError(t, err)

		got, err := store.Take(t.Context(), token, order.Reviewing)
		require.NoError(t, err)
		assert.Equal(t, review, got)

		_, err = store.Take(t.Context(), token, order.Reviewing)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should issue a new token for every put", func(t *testing.T) {
		store, _ := newStore()
		review := newReview(t)

		first, err := store.Put(t.Context(), review)
		require.NoError(t, err)
		second, err := store.Put(t.Context(), review)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
		assert.Equal(t, 2, store.Len())
	})

	t.Run("should not return an expired handoff", func(t *testing.T) {
		store, c := newStore()
		token, err := store.Put(t.Context(), newReview(t))
		require.NoError(t, err)

		c.Advance(30 * time.Minute)

		_, err = store.Take(t.Context(), token, order.Reviewing)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should leave a handoff of another stage in place", func(t *testing.T) {
		store, _ := newStore()
		review := newReview(t)
		token, err := store.Put(t.Context(), review)
		require.NoError(t, err)

		_, err = store.Take(t.Context(), token, order.AwaitingPayment)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 1, store.Len())

		got, err := store.Take(t.Context(), token, order.Reviewing)
		require.NoError(t, err)
		assert.Equal(t, review, got)
	})

	t.Run("should report unknown tokens as not found", func(t *testing.T) {
		store, _ := newStore()

		_, err := store.Take(t.Context(), kernel.NewUUID(), order.Reviewing)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject invalid handoffs", func(t *testing.T) {
		store, _ := newStore()

		_, err := store.Put(t.Context(), order.ReviewHandoff{})
		assert.ErrorIs(t, err, order.ErrReviewHandoffIsNotConstructed)

		_, err = store.Put(t.Context(), nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should honour a cancelled context", func(t *testing.T) {
		store, _ := newStore()
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := store.Put(ctx, newReview(t))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHandoffStore_DeleteExpired(t *testing.T) {
	store, c := newStore()
	_, err := store.Put(t.Context(), newReview(t))
	require.NoError(t, err)

	c.Advance(20 * time.Minute)
	fresh, err := store.Put(t.Context(), newReview(t))
	require.NoError(t, err)

	c.Advance(15 * time.Minute)
	removed, err := store.DeleteExpired(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, err = store.Take(t.Context(), fresh, order.Reviewing)
	assert.NoError(t, err)
}

func TestHandoffStore_Concurrency(t *testing.T) {
	store, _ := newStore()
	token, err := store.Put(t.Context(), newReview(t))
	require.NoError(t, err)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Take(context.Background(), token, order.Reviewing); err == nil {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, taken)
}
