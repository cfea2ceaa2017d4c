package memory

import (
	"context"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

type itemRepository struct {
	store *Store
}

// Create сохраняет позицию в существующем заказе.
func (r *itemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.orders[item.OrderID]; !ok {
			return domain.NewNotFound(domain.EntityOrder, item.OrderID)
		}
		prev, ok := st.items[item.OrderID]
		prevID := st.nextItemID
		st.nextItemID++
		item.ID = st.nextItemID
		st.items[item.OrderID] = append(prev, *item)

		restore := st.restoreItems(item.OrderID, prev, ok)
		st.onRollback(func() {
			restore()
			st.nextItemID = prevID
		})
		return nil
	})
}

// Delete удаляет позицию, только если она принадлежит orderID.
func (r *itemRepository) Delete(ctx context.Context, orderID, itemID int64) error {
	return r.store.write(ctx, func(st *state) error {
		items := st.items[orderID]
		for i, item := range items {
			if item.ID != itemID {
				continue
			}
			rest := make([]domain.OrderItem, 0, len(items)-1)
			rest = append(rest, items[:i]...)
			rest = append(rest, items[i+1:]...)
			st.items[orderID] = rest
			st.onRollback(st.restoreItems(orderID, items, true))
			return nil
		}
		return domain.NewNotFound(domain.EntityItem, itemID)
	})
}

// ListByOrder возвращает копию позиций заказа в порядке добавления.
func (r *itemRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	var result []domain.OrderItem
	err := r.store.read(ctx, func(st *state) error {
		items := st.items[orderID]
		result = make([]domain.OrderItem, len(items))
		copy(result, items)
		return nil
	})
	return result, err
}

var _ domain.ItemRepository = (*itemRepository)(nil)
