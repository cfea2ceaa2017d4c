package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

func sampleOrder(customerID int64, placedAt time.Time) *domain.Order {
	return &domain.Order{
		CustomerID:  customerID,
		Description: "gift",
		PlacedAt:    placedAt,
		Status:      domain.OrderStatusPending,
		UpdatedAt:   placedAt,
	}
}

func sampleItem(orderID int64, createdAt time.Time) *domain.OrderItem {
	return &domain.OrderItem{
		OrderID:     orderID,
		ProductID:   3,
		ProductName: "Silk scarf",
		UnitPrice:   decimal.RequireFromString("12.50"),
		Quantity:    4,
		CreatedAt:   createdAt,
	}
}

func TestOrderRepository_PostgresCreateGetListSaveDelete(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	orders := NewOrderRepository(store)
	items := NewItemRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	first := sampleOrder(1, now.Add(-2*time.Minute))
	second := sampleOrder(7, now.Add(-time.Minute))

	if err := orders.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := orders.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if first.ID == 0 || second.ID <= first.ID {
		t.Fatalf("unexpected generated ids: %d, %d", first.ID, second.ID)
	}

	got, err := orders.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get first: %v", err)
	}
	if got.CustomerID != 1 || got.Description != "gift" || !got.PlacedAt.Equal(first.PlacedAt) {
		t.Fatalf("unexpected order payload: %+v", got)
	}

	item := &domain.OrderItem{
		OrderID:     first.ID,
		ProductID:   3,
		ProductName: "Silk scarf",
		UnitPrice:   decimal.RequireFromString("12.50"),
		Quantity:    4,
		CreatedAt:   now,
	}
	if err := items.Create(ctx, item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	listedItems, err := items.ListByOrder(ctx, first.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(listedItems) != 1 || !listedItems[0].UnitPrice.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected items: %+v", listedItems)
	}

	paid := domain.OrderStatusPaid
	byStatus, err := orders.List(ctx, domain.OrderFilter{Status: &paid})
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(byStatus) != 0 {
		t.Fatalf("expected no paid orders, got %d", len(byStatus))
	}

	from := now.Add(-90 * time.Second)
	ranged, err := orders.List(ctx, domain.OrderFilter{From: &from, To: &now})
	if err != nil {
		t.Fatalf("list by range: %v", err)
	}
	if len(ranged) != 1 || ranged[0].ID != second.ID {
		t.Fatalf("unexpected range result: %+v", ranged)
	}

	all, err := orders.List(ctx, domain.OrderFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID {
		t.Fatalf("expected placed_at ordering, got %+v", all)
	}

	got.Status = domain.OrderStatusPaid
	if err := orders.Save(ctx, &got); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.Version != 1 {
		t.Fatalf("expected version 1 after save, got %d", got.Version)
	}

	stale := got
	stale.Version = 0
	if err := orders.Save(ctx, &stale); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}

	if err := orders.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := orders.Get(ctx, first.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	leftovers, err := items.ListByOrder(ctx, first.ID)
	if err != nil {
		t.Fatalf("list items after delete: %v", err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("expected cascade delete of items, got %d", len(leftovers))
	}
}

func TestOrderRepository_PostgresNotFound(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	orders := NewOrderRepository(store)
	items := NewItemRepository(store)
	ctx := context.Background()

	if _, err := orders.Get(ctx, 404); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	missing := sampleOrder(1, time.Now().UTC())
	missing.ID = 404
	if err := orders.Save(ctx, missing); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on save, got %v", err)
	}
	if err := orders.Delete(ctx, 404); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
	if err := items.Create(ctx, &domain.OrderItem{OrderID: 404, ProductID: 1, ProductName: "x", Quantity: 1}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for item of missing order, got %v", err)
	}
	if err := items.Delete(ctx, 404, 1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing item, got %v", err)
	}
}

func TestStore_PostgresWithinTxRollsBack(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	orders := NewOrderRepository(store)
	ctx := context.Background()

	boom := errors.New("boom")
	var createdID int64
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		order := sampleOrder(1, time.Now().UTC())
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		createdID = order.ID
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if _, err := orders.Get(ctx, createdID); !domain.IsNotFound(err) {
		t.Fatalf("expected rolled back order, got %v", err)
	}
}

func TestOrderRepository_PostgresGetForUpdateSerializesWriters(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	orders := NewOrderRepository(store)
	ctx := context.Background()

	order := sampleOrder(1, time.Now().UTC().Truncate(time.Microsecond))
	if err := orders.Create(ctx, order); err != nil {
		t.Fatalf("create: %v", err)
	}

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		fulfilled int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithinTx(ctx, func(ctx context.Context) error {
				current, err := orders.GetForUpdate(ctx, order.ID)
				if err != nil {
					return err
				}
				if current.Status == domain.OrderStatusFulfilled {
					return domain.ErrInvalidState
				}
				current.Status = domain.OrderStatusFulfilled
				return orders.Save(ctx, &current)
			})
			if err == nil {
				mu.Lock()
				fulfilled++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if fulfilled != 1 {
		t.Fatalf("expected exactly one writer to fulfil the order, got %d", fulfilled)
	}
}
