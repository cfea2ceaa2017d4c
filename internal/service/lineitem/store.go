// Package lineitem управляет позициями заказа: добавление, удаление и выборка.
// Проверки статуса заказа выполняет вызывающий сервис жизненного цикла.
package lineitem

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// Store работает с позициями поверх репозиториев и каталога.
type Store struct {
	orders  domain.OrderRepository
	items   domain.ItemRepository
	catalog domain.CatalogGateway
	now     func() time.Time
}

// NewStore создаёт Store. now может быть nil, тогда используется time.Now.
func NewStore(orders domain.OrderRepository, items domain.ItemRepository, catalog domain.CatalogGateway, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{orders: orders, items: items, catalog: catalog, now: now}
}

// AddItem фиксирует название и цену товара на момент вызова и сохраняет новую позицию.
func (s *Store) AddItem(ctx context.Context, orderID, productID int64, quantity int32) (domain.OrderItem, error) {
	if quantity <= 0 {
		return domain.OrderItem{}, &domain.InvalidQuantityError{Quantity: quantity}
	}
	if _, err := s.orders.Get(ctx, orderID); err != nil {
		return domain.OrderItem{}, err
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return domain.OrderItem{}, err
	}

	item := domain.OrderItem{
		OrderID:     orderID,
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.items.Create(ctx, &item); err != nil {
		return domain.OrderItem{}, fmt.Errorf("create order item: %w", err)
	}
	return item, nil
}

// RemoveItem удаляет позицию, если она принадлежит заказу.
func (s *Store) RemoveItem(ctx context.Context, orderID, itemID int64) error {
	return s.items.Delete(ctx, orderID, itemID)
}

// ListItems возвращает позиции заказа в порядке добавления.
func (s *Store) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	return s.items.ListByOrder(ctx, orderID)
}

// Subtotal считает стоимость позиции без округления.
func Subtotal(item domain.OrderItem) decimal.Decimal {
	return item.Subtotal()
}
