package domain

import (
	"context"
	"time"
)

// OrderFilter ограничивает выборку заказов. Пустые поля не фильтруют.
type OrderFilter struct {
	Status *OrderStatus
	// From и To включают границы.
	From *time.Time
	To   *time.Time
}

// Matches проверяет, что заказ попадает под фильтр.
func (f OrderFilter) Matches(order Order) bool {
	if f.Status != nil && order.Status != *f.Status {
		return false
	}
	if f.From != nil && order.PlacedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && order.PlacedAt.After(*f.To) {
		return false
	}
	return true
}

// OrderRepository описывает требования к хранилищу заказов.
// Позиции в Order.Items репозиторий заказов не сохраняет: ими владеет ItemRepository.
type OrderRepository interface {
	// Create сохраняет новый заказ и присваивает ему ID.
	Create(ctx context.Context, order *Order) error
	// Get возвращает заказ по идентификатору или NotFoundError.
	Get(ctx context.Context, id int64) (Order, error)
	// GetForUpdate читает заказ и блокирует его до конца транзакции.
	GetForUpdate(ctx context.Context, id int64) (Order, error)
	// List возвращает заказы под фильтр, упорядоченные по PlacedAt и ID.
	List(ctx context.Context, filter OrderFilter) ([]Order, error)
	// Save применяет обновления к заказу с учётом optimistic locking и увеличивает order.Version.
	Save(ctx context.Context, order *Order) error
	// Delete удаляет заказ вместе с его позициями.
	Delete(ctx context.Context, id int64) error
}

// ItemRepository хранит позиции заказов.
type ItemRepository interface {
	// Create сохраняет позицию и присваивает ей ID.
	Create(ctx context.Context, item *OrderItem) error
	// Delete удаляет позицию, если она принадлежит заказу; иначе NotFoundError.
	Delete(ctx context.Context, orderID, itemID int64) error
	// ListByOrder возвращает позиции заказа в порядке добавления.
	ListByOrder(ctx context.Context, orderID int64) ([]OrderItem, error)
}

// TxManager выполняет fn как одну атомарную единицу работы.
// Ошибка fn откатывает все изменения, сделанные через репозитории с тем же ctx.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	// WithinReadTx выполняет fn над согласованным снимком: заказ и его позиции
	// читаются без промежуточных записей других транзакций. Записи внутри fn запрещены.
	WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}
