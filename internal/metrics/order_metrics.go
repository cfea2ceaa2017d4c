package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// Значения label action для позиций.
const (
	ItemActionAdded   = "added"
	ItemActionRemoved = "removed"
)

// OrderMetrics содержит метрики жизненного цикла заказов.
type OrderMetrics struct {
	ordersCreated     prometheus.Counter
	statusTransitions *prometheus.CounterVec
	itemChanges       *prometheus.CounterVec
	operationErrors   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewOrderMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer регистрирует метрики в переданном registerer.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "boutique_orders_created_total",
			Help: "Total number of orders created",
		}),
		statusTransitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "boutique_order_status_transitions_total",
			Help: "Total number of order status changes grouped by target status",
		}, []string{"status"}),
		itemChanges: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "boutique_order_items_total",
			Help: "Total number of order line item changes grouped by action",
		}, []string{"action"}),
		operationErrors: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "boutique_order_operation_errors_total",
			Help: "Total number of failed order operations grouped by operation and error kind",
		}, []string{"operation", "kind"}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "boutique_order_operation_duration_seconds",
			Help:    "Duration of order operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"}),
	}
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *OrderMetrics) RecordOrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// RecordStatusTransition учитывает переход заказа в статус status.
func (m *OrderMetrics) RecordStatusTransition(status domain.OrderStatus) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(string(status)).Inc()
}

// RecordItemChange учитывает добавление или удаление позиции.
func (m *OrderMetrics) RecordItemChange(action string) {
	if m == nil {
		return
	}
	m.itemChanges.WithLabelValues(action).Inc()
}

// ObserveOperation записывает длительность операции и, при ошибке, её вид.
func (m *OrderMetrics) ObserveOperation(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.operationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if err != nil {
		m.operationErrors.WithLabelValues(operation, ErrorKind(err)).Inc()
	}
}

// ErrorKind сводит ошибку к короткой метке для label kind.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrOrderVersionConflict):
		return "version_conflict"
	default:
		return "internal"
	}
}
