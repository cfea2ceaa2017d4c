// Package apiview переводит представления заказов и отчётов в сообщения boutique.v1,
// общие для gRPC и REST.
package apiview

import (
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/boutique/internal/service/report"
	boutiquev1 "github.com/vladislavdragonenkov/boutique/proto/boutique/v1"
)

// Order конвертирует представление заказа. Суммы форматируются с двумя знаками.
func Order(view lifecycle.OrderView) *boutiquev1.Order {
	items := make([]*boutiquev1.OrderItem, 0, len(view.OrderItems))
	for _, item := range view.OrderItems {
		items = append(items, Item(item))
	}
	return &boutiquev1.Order{
		OrderId:      view.OrderID,
		CustomerId:   view.CustomerID,
		CustomerName: view.CustomerName,
		Description:  view.Description,
		PlacedAt:     FormatTime(view.PlacedAt),
		Status:       string(view.Status),
		OrderItems:   items,
		Total:        domain.FormatMoney(view.Total),
	}
}

// Orders конвертирует список заказов; пустой список остаётся непустым срезом.
func Orders(views []lifecycle.OrderView) []*boutiquev1.Order {
	result := make([]*boutiquev1.Order, 0, len(views))
	for _, view := range views {
		result = append(result, Order(view))
	}
	return result
}

// Item конвертирует позицию заказа.
func Item(item lifecycle.ItemView) *boutiquev1.OrderItem {
	return &boutiquev1.OrderItem{
		Id:          item.ID,
		OrderId:     item.OrderID,
		ProductId:   item.ProductID,
		ProductName: item.ProductName,
		UnitPrice:   domain.FormatMoney(item.UnitPrice),
		Quantity:    item.Quantity,
		Subtotal:    domain.FormatMoney(item.Subtotal),
	}
}

// SalesReport конвертирует отчёт о продажах.
func SalesReport(rep report.SalesReport) *boutiquev1.SalesReport {
	products := make([]*boutiquev1.ProductSales, 0, len(rep.Products))
	for _, p := range rep.Products {
		products = append(products, &boutiquev1.ProductSales{
			ProductId:    p.ProductID,
			ProductName:  p.ProductName,
			QuantitySold: p.QuantitySold,
			Revenue:      domain.FormatMoney(p.Revenue),
		})
	}
	return &boutiquev1.SalesReport{
		Start:      FormatTime(rep.Start),
		End:        FormatTime(rep.End),
		OrderCount: int64(rep.OrderCount),
		Revenue:    domain.FormatMoney(rep.Revenue),
		ItemsSold:  rep.ItemsSold,
		Orders:     Orders(rep.Orders),
		Products:   products,
	}
}

// FormatTime форматирует момент времени в RFC 3339 (UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime разбирает RFC 3339; ошибка формата возвращается как ValidationError.
func ParseTime(field, value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &domain.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be an RFC 3339 timestamp, got %q", value),
		}
	}
	return parsed.UTC(), nil
}

// ParseRange разбирает границы периода; обе обязательны.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := ParseTime("start", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseTime("end", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
