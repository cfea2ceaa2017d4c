package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/storage/memory"
)

func TestStore_WithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	order := newOrder(time.Now().UTC())
	require.NoError(t, store.Orders().Create(ctx, order))

	boom := errors.New("boom")
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		item := &domain.OrderItem{OrderID: order.ID, ProductID: 1, UnitPrice: decimal.NewFromInt(10), Quantity: 1}
		if err := store.Items().Create(ctx, item); err != nil {
			return err
		}
		if _, err := store.Outbox().Enqueue(ctx, domain.OutboxMessage{AggregateType: "order"}); err != nil {
			return err
		}
		stored, err := store.Orders().GetForUpdate(ctx, order.ID)
		if err != nil {
			return err
		}
		stored.Status = domain.OrderStatusFulfilled
		if err := store.Orders().Save(ctx, &stored); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := store.Orders().Get(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, stored.Status)
	require.Equal(t, int64(0), stored.Version)

	items, err := store.Items().ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Empty(t, items)
	require.Empty(t, store.Outbox().AllPending())
}

func TestStore_WithinTxCommits(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var created domain.Order
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		order := newOrder(time.Now().UTC())
		if err := store.Orders().Create(ctx, order); err != nil {
			return err
		}
		created = *order
		return store.WithinTx(ctx, func(ctx context.Context) error {
			return store.Timeline().Append(ctx, domain.TimelineEvent{OrderID: order.ID, Type: domain.TimelineOrderCreated, Occurred: time.Now().UTC()})
		})
	})
	require.NoError(t, err)

	_, err = store.Orders().Get(ctx, created.ID)
	require.NoError(t, err)
	events, err := store.Timeline().List(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestStore_WithinTxSerializesWriters(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	order := newOrder(time.Now().UTC())
	require.NoError(t, store.Orders().Create(ctx, order))

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithinTx(ctx, func(ctx context.Context) error {
				stored, err := store.Orders().GetForUpdate(ctx, order.ID)
				if err != nil {
					return err
				}
				if stored.Status.IsFinalized() {
					return domain.ErrInvalidState
				}
				stored.Status = domain.OrderStatusFulfilled
				return store.Orders().Save(ctx, &stored)
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
}

func TestStore_WithinTxRollsBackDeleteAndTimeline(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	placed := time.Now().UTC()
	order := newOrder(placed)
	require.NoError(t, store.Orders().Create(ctx, order))
	item := &domain.OrderItem{OrderID: order.ID, ProductID: 3, UnitPrice: decimal.RequireFromString("12.50"), Quantity: 4}
	require.NoError(t, store.Items().Create(ctx, item))
	require.NoError(t, store.Timeline().Append(ctx, domain.TimelineEvent{OrderID: order.ID, Type: domain.TimelineOrderCreated, Occurred: placed}))

	boom := errors.New("boom")
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, store.Timeline().Append(ctx, domain.TimelineEvent{OrderID: order.ID, Type: domain.TimelineOrderDeleted, Occurred: placed.Add(time.Second)}))
		require.NoError(t, store.Orders().Delete(ctx, order.ID))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.Orders().Get(ctx, order.ID)
	require.NoError(t, err)
	items, err := store.Items().ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.OrderItem{*item}, items)
	events, err := store.Timeline().List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, domain.TimelineOrderCreated, events[0].Type)
}

func TestStore_WithinTxRestoresCountersAndOutbox(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	order := newOrder(time.Now().UTC())
	require.NoError(t, store.Orders().Create(ctx, order))
	sent, err := store.Outbox().Enqueue(ctx, domain.OutboxMessage{AggregateType: "order", AggregateID: "1"})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.WithinTx(ctx, func(ctx context.Context) error {
		second := newOrder(time.Now().UTC())
		require.NoError(t, store.Orders().Create(ctx, second))
		require.NoError(t, store.Items().Create(ctx, &domain.OrderItem{OrderID: order.ID, ProductID: 1, UnitPrice: decimal.NewFromInt(1), Quantity: 1}))
		require.NoError(t, store.Outbox().MarkSent(ctx, sent.ID))
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.Len(t, store.Outbox().AllPending(), 1)

	next := newOrder(time.Now().UTC())
	require.NoError(t, store.Orders().Create(ctx, next))
	require.Equal(t, order.ID+1, next.ID)
	item := &domain.OrderItem{OrderID: order.ID, ProductID: 1, UnitPrice: decimal.NewFromInt(1), Quantity: 1}
	require.NoError(t, store.Items().Create(ctx, item))
	require.Equal(t, int64(1), item.ID)
}

func TestStore_WithinTxRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.Panics(t, func() {
		_ = store.WithinTx(ctx, func(ctx context.Context) error {
			if err := store.Orders().Create(ctx, newOrder(time.Now().UTC())); err != nil {
				return err
			}
			panic("boom")
		})
	})

	orders, err := store.Orders().List(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	require.Empty(t, orders)

	// Блокировка отпущена, журнал очищен: запись вне транзакции окончательна.
	require.NoError(t, store.Orders().Create(ctx, newOrder(time.Now().UTC())))
	orders, err = store.Orders().List(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := memory.NewStore()
	require.ErrorIs(t, store.Orders().Create(ctx, newOrder(time.Now().UTC())), context.Canceled)
	require.ErrorIs(t, store.WithinTx(ctx, func(context.Context) error { return nil }), context.Canceled)
}
