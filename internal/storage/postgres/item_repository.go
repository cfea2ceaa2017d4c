package postgres

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

type itemRepository struct {
	store *Store
}

// NewItemRepository создаёт PostgreSQL-реализацию ItemRepository.
func NewItemRepository(store *Store) domain.ItemRepository {
	return &itemRepository{store: store}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := r.store.conn(ctx).QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		item.OrderID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFound(domain.EntityOrder, item.OrderID)
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, orderID, itemID int64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.conn(ctx).ExecContext(ctx, `
		DELETE FROM order_items WHERE id = $1 AND order_id = $2
	`, itemID, orderID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFound(domain.EntityItem, itemID)
	}
	return nil
}

func (r *itemRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.conn(ctx).QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, unit_price, quantity, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.UnitPrice, &item.Quantity, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item.CreatedAt = item.CreatedAt.UTC()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

var _ domain.ItemRepository = (*itemRepository)(nil)
