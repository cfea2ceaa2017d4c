package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// ItemView — позиция заказа в представлении для клиентов API.
type ItemView struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int32
	Subtotal    decimal.Decimal
}

// OrderView — заказ вместе с позициями, именем клиента и вычисленной суммой.
type OrderView struct {
	OrderID      int64
	CustomerID   int64
	CustomerName string
	Description  string
	PlacedAt     time.Time
	Status       domain.OrderStatus
	OrderItems   []ItemView
	Total        decimal.Decimal
}

// ToView загружает позиции заказа и имя клиента и строит представление.
// Total всегда считается по тем же позициям, что попадают в OrderItems.
func (s *Service) ToView(ctx context.Context, order domain.Order) (OrderView, error) {
	items, err := s.lineItems.ListItems(ctx, order.ID)
	if err != nil {
		return OrderView{}, err
	}
	name, err := s.customerName(ctx, order.CustomerID, nil)
	if err != nil {
		return OrderView{}, err
	}
	return buildView(order, items, name), nil
}

func buildView(order domain.Order, items []domain.OrderItem, customerName string) OrderView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}

	return OrderView{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: customerName,
		Description:  order.Description,
		PlacedAt:     order.PlacedAt,
		Status:       order.Status,
		OrderItems:   views,
		Total:        domain.Total(items),
	}
}

// customerName резолвит имя клиента через каталог. cache может быть nil.
// Отсутствие клиента в каталоге не ломает чтение заказа: имя остаётся пустым.
func (s *Service) customerName(ctx context.Context, customerID int64, cache map[int64]string) (string, error) {
	if name, ok := cache[customerID]; ok {
		return name, nil
	}

	customer, err := s.catalog.Customer(ctx, customerID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		s.logger.WithField("customer_id", customerID).Warn("customer missing in catalog")
	default:
		return "", err
	}

	if cache != nil {
		cache[customerID] = customer.Name
	}
	return customer.Name, nil
}

func (s *Service) toViews(ctx context.Context, orders []domain.Order) ([]OrderView, error) {
	names := make(map[int64]string)
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		items, err := s.lineItems.ListItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		name, err := s.customerName(ctx, order.CustomerID, names)
		if err != nil {
			return nil, err
		}
		views = append(views, buildView(order, items, name))
	}
	return views, nil
}

// LastAdded возвращает позицию с наибольшим ID, то есть добавленную последней.
func (v OrderView) LastAdded() (ItemView, bool) {
	if len(v.OrderItems) == 0 {
		return ItemView{}, false
	}
	last := v.OrderItems[0]
	for _, item := range v.OrderItems[1:] {
		if item.ID > last.ID {
			last = item
		}
	}
	return last, true
}
