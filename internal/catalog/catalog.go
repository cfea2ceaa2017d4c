// Package catalog предоставляет read-only справочник клиентов и товаров для in-memory режима.
package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// Catalog хранит потокобезопасный справочник клиентов и товаров.
type Catalog struct {
	mu        sync.RWMutex
	customers map[int64]domain.Customer
	products  map[int64]domain.Product
}

// New создаёт пустой каталог.
func New() *Catalog {
	return &Catalog{
		customers: make(map[int64]domain.Customer),
		products:  make(map[int64]domain.Product),
	}
}

// PutCustomer добавляет или заменяет клиента.
func (c *Catalog) PutCustomer(customer domain.Customer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customers[customer.ID] = customer
}

// PutProduct добавляет или заменяет товар. Уже созданные позиции заказов не меняются.
func (c *Catalog) PutProduct(product domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[product.ID] = product
}

// Customer возвращает клиента или NotFoundError.
func (c *Catalog) Customer(ctx context.Context, id int64) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	customer, ok := c.customers[id]
	if !ok {
		return domain.Customer{}, domain.NewNotFound(domain.EntityCustomer, id)
	}
	return customer, nil
}

// Product возвращает товар или NotFoundError.
func (c *Catalog) Product(ctx context.Context, id int64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[id]
	if !ok {
		return domain.Product{}, domain.NewNotFound(domain.EntityProduct, id)
	}
	return product, nil
}

// Customers возвращает всех клиентов по возрастанию ID.
func (c *Catalog) Customers() []domain.Customer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Customer, 0, len(c.customers))
	for _, customer := range c.customers {
		result = append(result, customer)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Products возвращает все товары по возрастанию ID.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Product, 0, len(c.products))
	for _, product := range c.products {
		result = append(result, product)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

var _ domain.CatalogGateway = (*Catalog)(nil)
