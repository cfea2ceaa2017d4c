// Package report строит отчёт о продажах за период поверх сервиса жизненного цикла.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/service/lifecycle"
)

// OrderLister выбирает заказы за период для отчёта.
type OrderLister interface {
	ListOrdersByDateRange(ctx context.Context, start, end time.Time) ([]lifecycle.OrderView, error)
}

// SalesOptions уточняет выборку. По умолчанию учитываются заказы во всех статусах.
type SalesOptions struct {
	ExcludeCancelled bool
}

// ProductSales — продажи одного товара за период.
type ProductSales struct {
	ProductID    int64
	ProductName  string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// SalesReport — агрегаты по заказам, размещённым в [Start, End].
type SalesReport struct {
	Start      time.Time
	End        time.Time
	OrderCount int
	Revenue    decimal.Decimal
	ItemsSold  int64
	Orders     []lifecycle.OrderView
	Products   []ProductSales
}

// Service считает отчёты о продажах.
type Service struct {
	orders OrderLister
}

// NewService создаёт сервис отчётов.
func NewService(orders OrderLister) *Service {
	return &Service{orders: orders}
}

// Sales агрегирует заказы за период включительно.
// Товары группируются по ProductID и сортируются по выручке по убыванию, затем по названию.
func (s *Service) Sales(ctx context.Context, start, end time.Time, opts SalesOptions) (SalesReport, error) {
	views, err := s.orders.ListOrdersByDateRange(ctx, start, end)
	if err != nil {
		return SalesReport{}, err
	}

	report := SalesReport{
		Start:   start,
		End:     end,
		Revenue: decimal.Zero,
		Orders:  make([]lifecycle.OrderView, 0, len(views)),
	}
	byProduct := make(map[int64]*ProductSales)

	for _, view := range views {
		if opts.ExcludeCancelled && view.Status == domain.OrderStatusCancelled {
			continue
		}
		report.Orders = append(report.Orders, view)
		report.OrderCount++
		report.Revenue = report.Revenue.Add(view.Total)

		for _, item := range view.OrderItems {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ProductSales{ProductID: item.ProductID, ProductName: item.ProductName, Revenue: decimal.Zero}
				byProduct[item.ProductID] = entry
			}
			entry.QuantitySold += int64(item.Quantity)
			entry.Revenue = entry.Revenue.Add(item.Subtotal)
			report.ItemsSold += int64(item.Quantity)
		}
	}

	report.Products = make([]ProductSales, 0, len(byProduct))
	for _, entry := range byProduct {
		report.Products = append(report.Products, *entry)
	}
	sort.Slice(report.Products, func(i, j int) bool {
		a, b := report.Products[i], report.Products[j]
		if cmp := a.Revenue.Cmp(b.Revenue); cmp != 0 {
			return cmp > 0
		}
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		return a.ProductID < b.ProductID
	})

	return report, nil
}
