package kafka

import "time"

// EventType определяет тип события
type EventType string

// События жизненного цикла заказа.
const (
	EventTypeOrderCreated     EventType = "order.created"
	EventTypeOrderUpdated     EventType = "order.updated"
	EventTypeOrderDeleted     EventType = "order.deleted"
	EventTypeOrderFulfilled   EventType = "order.fulfilled"
	EventTypeOrderItemAdded   EventType = "order.item_added"
	EventTypeOrderItemRemoved EventType = "order.item_removed"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "boutique.order.events"
	TopicDeadLetterQueue = "boutique.order.events.dlq"
)

// AggregateTypeOrder — значение AggregateType для событий заказа в outbox.
const AggregateTypeOrder = "order"

// OrderEvent — полезная нагрузка события заказа.
// Денежные суммы передаются строками с двумя знаками после запятой.
type OrderEvent struct {
	EventType  EventType  `json:"eventType"`
	OrderID    int64      `json:"orderId"`
	CustomerID int64      `json:"customerId"`
	Status     string     `json:"status"`
	Total      string     `json:"total"`
	Item       *ItemEvent `json:"item,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// ItemEvent описывает позицию для событий order.item_added / order.item_removed.
type ItemEvent struct {
	ItemID    int64  `json:"itemId"`
	ProductID int64  `json:"productId"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, customerID int64, status, total string, occurred time.Time) *OrderEvent {
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	return &OrderEvent{
		EventType:  eventType,
		OrderID:    orderID,
		CustomerID: customerID,
		Status:     status,
		Total:      total,
		Timestamp:  occurred,
	}
}

// WithItem прикрепляет к событию данные позиции.
func (e *OrderEvent) WithItem(item ItemEvent) *OrderEvent {
	e.Item = &item
	return e
}
