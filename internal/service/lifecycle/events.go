package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/messaging/kafka"
)

const (
	eventCreated     = kafka.EventTypeOrderCreated
	eventUpdated     = kafka.EventTypeOrderUpdated
	eventDeleted     = kafka.EventTypeOrderDeleted
	eventFulfilled   = kafka.EventTypeOrderFulfilled
	eventItemAdded   = kafka.EventTypeOrderItemAdded
	eventItemRemoved = kafka.EventTypeOrderItemRemoved
)

// change описывает одну мутацию заказа для журнала и outbox.
type change struct {
	order     domain.Order
	items     []domain.OrderItem
	total     *decimal.Decimal
	item      *domain.OrderItem
	timeline  string
	reason    string
	eventType kafka.EventType
}

// record пишет событие в timeline и outbox в той же транзакции, что и сама мутация.
func (s *Service) record(ctx context.Context, c change) error {
	occurred := s.clock()

	if s.timeline != nil {
		event := domain.TimelineEvent{
			OrderID:  c.order.ID,
			Type:     c.timeline,
			Reason:   c.reason,
			Occurred: occurred,
		}
		if err := s.timeline.Append(ctx, event); err != nil {
			return fmt.Errorf("append timeline event: %w", err)
		}
	}

	if s.outbox == nil {
		return nil
	}

	total := domain.Total(c.items)
	if c.total != nil {
		total = *c.total
	}
	event := kafka.NewOrderEvent(c.eventType, c.order.ID, c.order.CustomerID, string(c.order.Status), domain.FormatMoney(total), occurred)
	if c.item != nil {
		event.WithItem(kafka.ItemEvent{
			ItemID:    c.item.ID,
			ProductID: c.item.ProductID,
			Quantity:  c.item.Quantity,
			UnitPrice: domain.FormatMoney(c.item.UnitPrice),
		})
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", c.eventType, err)
	}

	msg := domain.OutboxMessage{
		AggregateType: kafka.AggregateTypeOrder,
		AggregateID:   kafka.OrderKey(c.order.ID),
		EventType:     string(c.eventType),
		Payload:       payload,
	}
	if _, err := s.outbox.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("enqueue %s event: %w", c.eventType, err)
	}
	return nil
}
