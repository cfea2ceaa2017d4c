package postgres

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

func TestTimelineRepository_PostgresAppendAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewTimelineRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	events := []domain.TimelineEvent{
		{OrderID: 1, Type: domain.TimelineItemAdded, Reason: "product 3 x4", Occurred: now.Add(time.Second)},
		{OrderID: 1, Type: domain.TimelineOrderCreated, Occurred: now},
		{OrderID: 2, Type: domain.TimelineOrderCreated, Occurred: now},
	}
	for _, event := range events {
		if err := repo.Append(ctx, event); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	listed, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 events, got %d", len(listed))
	}
	if listed[0].Type != domain.TimelineOrderCreated || listed[1].Type != domain.TimelineItemAdded {
		t.Fatalf("expected chronological order, got %+v", listed)
	}

	empty, err := repo.List(ctx, 404)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no events, got %d", len(empty))
	}
}

func TestTimelineRepository_PostgresKeepsWriteOrderForSameInstant(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewTimelineRepository(store)
	ctx := context.Background()

	at := time.Date(2026, 4, 17, 12, 0, 0, 0, time.UTC)
	for _, eventType := range []string{domain.TimelineOrderCreated, domain.TimelineItemAdded, domain.TimelineItemRemoved} {
		if err := repo.Append(ctx, domain.TimelineEvent{OrderID: 7, Type: eventType, Occurred: at}); err != nil {
			t.Fatalf("append %s: %v", eventType, err)
		}
	}

	listed, err := repo.List(ctx, 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := make([]string, 0, len(listed))
	for _, event := range listed {
		got = append(got, event.Type)
		if !event.Occurred.Equal(at) || event.Occurred.Location() != time.UTC {
			t.Fatalf("unexpected occurred: %v", event.Occurred)
		}
	}
	want := []string{domain.TimelineOrderCreated, domain.TimelineItemAdded, domain.TimelineItemRemoved}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTimelineRepository_PostgresRejectsInvalidEvents(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewTimelineRepository(store)
	ctx := context.Background()

	for _, event := range []domain.TimelineEvent{
		{OrderID: 1, Type: "OrderShipped"},
		{OrderID: 0, Type: domain.TimelineOrderCreated},
	} {
		if err := repo.Append(ctx, event); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error for %+v, got %v", event, err)
		}
	}

	listed, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("invalid events must not be stored, got %+v", listed)
	}
}

func TestTimelineRepository_PostgresAppendRollsBackWithTx(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewTimelineRepository(store)
	ctx := context.Background()

	errAbort := errors.New("abort")
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		if err := repo.Append(ctx, domain.TimelineEvent{OrderID: 3, Type: domain.TimelineOrderDeleted}); err != nil {
			return err
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("expected abort error, got %v", err)
	}

	listed, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("rolled back event is visible: %+v", listed)
	}
}
