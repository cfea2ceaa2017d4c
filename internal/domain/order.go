package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength ограничивает длину описания заказа (в символах).
const MaxDescriptionLength = 100

// OrderStatus описывает жизненный цикл заказа бутика.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, позиции ещё можно добавлять и удалять.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPaid — оплата отмечена сотрудником, заказ ждёт выдачи.
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusFulfilled — заказ закрыт и выдан клиенту. Терминальный статус.
	OrderStatusFulfilled OrderStatus = "FULFILLED"
	// OrderStatusCancelled — заказ отменён. Терминальный статус.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses перечисляет все допустимые статусы в порядке жизненного цикла.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusFulfilled,
	OrderStatusCancelled,
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsFinalized сообщает, что заказ в терминальном статусе и больше не меняется.
func (s OrderStatus) IsFinalized() bool {
	switch s {
	case OrderStatusFulfilled, OrderStatusCancelled:
		return true
	case OrderStatusPending, OrderStatusPaid:
		return false
	default:
		return false
	}
}

// ParseOrderStatus разбирает статус без учёта регистра.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown order status %q", raw)}
	}
	return status, nil
}

// OrderItem представляет одну позицию заказа.
// Название и цена товара фиксируются в момент добавления, чтобы старые счета не менялись
// вслед за каталогом.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int32
	CreatedAt   time.Time
}

// Subtotal возвращает стоимость позиции: цена × количество, без округления.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt32(i.Quantity))
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID          int64
	CustomerID  int64
	Description string
	PlacedAt    time.Time
	Status      OrderStatus
	Items       []OrderItem
	Version     int64
	UpdatedAt   time.Time
}

// Total считает сумму заказа по текущим позициям. Сумма никогда не хранится отдельно.
func (o Order) Total() decimal.Decimal {
	return Total(o.Items)
}

// Total суммирует стоимость позиций. Для пустого набора возвращает ноль.
func Total(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ValidateDescription проверяет ограничение на длину описания.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Reason: "must be at most 100 characters"}
	}
	return nil
}

// FormatMoney округляет сумму до двух знаков (half-up) для отображения.
// Хранимые значения не округляются.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// Customer — клиент из внешнего каталога.
type Customer struct {
	ID   int64
	Name string
}

// Product — товар из внешнего каталога.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
