package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// orderRepository — in-memory реализация OrderRepository для локальной разработки и тестов.
type orderRepository struct {
	store *Store
}

// Create присваивает заказу следующий ID и сохраняет его без позиций.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.store.write(ctx, func(st *state) error {
		prevID := st.nextOrderID
		st.nextOrderID++
		order.ID = st.nextOrderID
		order.Version = 0

		stored := *order
		stored.Items = nil
		st.orders[order.ID] = stored

		id := order.ID
		st.onRollback(func() {
			delete(st.orders, id)
			st.nextOrderID = prevID
		})
		return nil
	})
}

// Get возвращает заказ или NotFoundError, если его нет.
func (r *orderRepository) Get(ctx context.Context, id int64) (domain.Order, error) {
	var order domain.Order
	err := r.store.read(ctx, func(st *state) error {
		stored, ok := st.orders[id]
		if !ok {
			return domain.NewNotFound(domain.EntityOrder, id)
		}
		order = stored
		return nil
	})
	return order, err
}

// GetForUpdate внутри транзакции уже защищён эксклюзивной блокировкой Store.
func (r *orderRepository) GetForUpdate(ctx context.Context, id int64) (domain.Order, error) {
	return r.Get(ctx, id)
}

// List возвращает заказы под фильтр по возрастанию PlacedAt, затем ID.
func (r *orderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var result []domain.Order
	err := r.store.read(ctx, func(st *state) error {
		result = make([]domain.Order, 0, len(st.orders))
		for _, order := range st.orders {
			if filter.Matches(order) {
				result = append(result, order)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].PlacedAt.Equal(result[j].PlacedAt) {
			return result[i].PlacedAt.Before(result[j].PlacedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Save перезаписывает заказ, проверяя версию (optimistic locking).
func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	return r.store.write(ctx, func(st *state) error {
		current, ok := st.orders[order.ID]
		if !ok {
			return domain.NewNotFound(domain.EntityOrder, order.ID)
		}
		if current.Version != order.Version {
			return domain.ErrOrderVersionConflict
		}
		order.Version++

		stored := *order
		stored.Items = nil
		st.orders[order.ID] = stored
		st.onRollback(st.restoreOrder(order.ID, current, true))
		return nil
	})
}

// Delete удаляет заказ и все его позиции.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.store.write(ctx, func(st *state) error {
		current, ok := st.orders[id]
		if !ok {
			return domain.NewNotFound(domain.EntityOrder, id)
		}
		items, hadItems := st.items[id]
		delete(st.orders, id)
		delete(st.items, id)
		st.onRollback(func() {
			st.restoreOrder(id, current, true)()
			st.restoreItems(id, items, hadItems)()
		})
		return nil
	})
}

var _ domain.OrderRepository = (*orderRepository)(nil)
