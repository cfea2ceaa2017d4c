package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

func TestOutboxRepository_PostgresFlow(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	first, err := repo.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   "1",
		EventType:     "order.created",
		Payload:       []byte(`{"orderId":1}`),
	})
	if err != nil {
		t.Fatalf("enqueue without id: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id for outbox message")
	}

	fixedID := uuid.NewString()
	second, err := repo.Enqueue(ctx, domain.OutboxMessage{
		ID:            fixedID,
		AggregateType: "order",
		AggregateID:   "1",
		EventType:     "order.item_added",
		Payload:       []byte(`{"orderId":1}`),
	})
	if err != nil {
		t.Fatalf("enqueue with id: %v", err)
	}
	if second.ID != fixedID {
		t.Fatalf("expected fixed id %q, got %q", fixedID, second.ID)
	}

	if _, err := repo.Enqueue(ctx, second); !errors.Is(err, domain.ErrOutboxPublish) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}

	pending, err := repo.PullPending(ctx, 0)
	if err != nil {
		t.Fatalf("pull pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != first.ID || pending[1].ID != second.ID {
		t.Fatalf("expected enqueue order, got %+v", pending)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PendingCount != 2 || stats.OldestPendingAt.IsZero() {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if err := repo.MarkSent(ctx, first.ID); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := repo.MarkFailed(ctx, second.ID); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := repo.MarkSent(ctx, uuid.NewString()); !errors.Is(err, domain.ErrOutboxPublish) {
		t.Fatalf("expected ErrOutboxPublish for missing message, got %v", err)
	}
	if err := repo.MarkSent(ctx, second.ID); !errors.Is(err, domain.ErrOutboxPublish) {
		t.Fatalf("failed message must not be settled again, got %v", err)
	}

	var rows []string
	dbRows, err := store.DB().QueryContext(ctx, `SELECT id::text || ':' || status FROM outbox_messages ORDER BY seq`)
	if err != nil {
		t.Fatalf("query outbox rows: %v", err)
	}
	defer dbRows.Close()
	for dbRows.Next() {
		var row string
		if err := dbRows.Scan(&row); err != nil {
			t.Fatalf("scan outbox row: %v", err)
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		t.Fatalf("iterate outbox rows: %v", err)
	}
	if len(rows) != 1 || rows[0] != second.ID+":failed" {
		t.Fatalf("sent message must be pruned and failed kept, got %v", rows)
	}

	stats, err = repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats after mark: %v", err)
	}
	if stats.PendingCount != 0 || !stats.OldestPendingAt.IsZero() {
		t.Fatalf("expected empty backlog, got %+v", stats)
	}
}
