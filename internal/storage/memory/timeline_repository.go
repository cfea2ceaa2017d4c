package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// timelineRepository хранит события в памяти (для разработки/тестов).
type timelineRepository struct {
	store *Store
}

// Append добавляет событие в хранилище.
func (r *timelineRepository) Append(ctx context.Context, event domain.TimelineEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	return r.store.write(ctx, func(st *state) error {
		prev, ok := st.timeline[event.OrderID]
		// Вставка в новый срез: prev остаётся нетронутым для отката.
		pos := sort.Search(len(prev), func(i int) bool {
			return prev[i].Occurred.After(event.Occurred)
		})
		events := make([]domain.TimelineEvent, 0, len(prev)+1)
		events = append(events, prev[:pos]...)
		events = append(events, event)
		events = append(events, prev[pos:]...)
		st.timeline[event.OrderID] = events

		st.onRollback(func() {
			if ok {
				st.timeline[event.OrderID] = prev
			} else {
				delete(st.timeline, event.OrderID)
			}
		})
		return nil
	})
}

// List возвращает события заказа в хронологическом порядке.
func (r *timelineRepository) List(ctx context.Context, orderID int64) ([]domain.TimelineEvent, error) {
	var result []domain.TimelineEvent
	err := r.store.read(ctx, func(st *state) error {
		events := st.timeline[orderID]
		result = make([]domain.TimelineEvent, len(events))
		copy(result, events)
		return nil
	})
	return result, err
}

var _ domain.TimelineRepository = (*timelineRepository)(nil)
