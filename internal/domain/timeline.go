package domain

import (
	"fmt"
	"time"
)

// Типы событий timeline.
const (
	TimelineOrderCreated       = "OrderCreated"
	TimelineOrderStatusChanged = "OrderStatusChanged"
	TimelineOrderDeleted       = "OrderDeleted"
	TimelineItemAdded          = "ItemAdded"
	TimelineItemRemoved        = "ItemRemoved"
)

// TimelineEvent описывает событие в жизненном цикле заказа.
type TimelineEvent struct {
	OrderID  int64
	Type     string
	Reason   string
	Occurred time.Time
}

// Validate проверяет, что событие относится к заказу и имеет известный тип.
func (e TimelineEvent) Validate() error {
	if e.OrderID <= 0 {
		return &ValidationError{Field: "orderId", Reason: "must be positive"}
	}
	switch e.Type {
	case TimelineOrderCreated, TimelineOrderStatusChanged, TimelineOrderDeleted,
		TimelineItemAdded, TimelineItemRemoved:
		return nil
	}
	return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown timeline event type %q", e.Type)}
}
