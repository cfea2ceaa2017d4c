package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

const (
	insertTimelineEventSQL = `
		INSERT INTO timeline_events (order_id, type, reason, occurred)
		VALUES ($1, $2, $3, $4)`

	// Порядок по id разрешает события с одинаковым occurred в порядке записи.
	selectOrderTimelineSQL = `
		SELECT order_id, type, reason, occurred
		FROM timeline_events
		WHERE order_id = $1
		ORDER BY occurred ASC, id ASC`
)

// timelineRepository хранит журнал заказа. Записи не ссылаются на orders:
// журнал удалённого заказа остаётся доступным.
type timelineRepository struct {
	store *Store
}

// NewTimelineRepository создаёт PostgreSQL-реализацию TimelineRepository.
func NewTimelineRepository(store *Store) domain.TimelineRepository {
	return &timelineRepository{store: store}
}

func (r *timelineRepository) Append(ctx context.Context, event domain.TimelineEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Occurred.IsZero() {
		event.Occurred = time.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.store.conn(ctx).ExecContext(ctx, insertTimelineEventSQL,
		event.OrderID, event.Type, event.Reason, event.Occurred.UTC())
	switch {
	case err == nil:
		return nil
	case isCheckViolation(err):
		return &domain.ValidationError{Field: "type", Reason: fmt.Sprintf("rejected by schema: %q", event.Type)}
	default:
		return fmt.Errorf("append %s event for order %d: %w", event.Type, event.OrderID, err)
	}
}

func (r *timelineRepository) List(ctx context.Context, orderID int64) ([]domain.TimelineEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.conn(ctx).QueryContext(ctx, selectOrderTimelineSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("list timeline of order %d: %w", orderID, err)
	}
	defer rows.Close()

	events, err := scanTimeline(rows)
	if err != nil {
		return nil, fmt.Errorf("read timeline of order %d: %w", orderID, err)
	}
	return events, nil
}

func scanTimeline(rows *sql.Rows) ([]domain.TimelineEvent, error) {
	events := make([]domain.TimelineEvent, 0)
	for rows.Next() {
		var event domain.TimelineEvent
		if err := rows.Scan(&event.OrderID, &event.Type, &event.Reason, &event.Occurred); err != nil {
			return nil, err
		}
		event.Occurred = event.Occurred.UTC()
		events = append(events, event)
	}
	return events, rows.Err()
}

var _ domain.TimelineRepository = (*timelineRepository)(nil)
