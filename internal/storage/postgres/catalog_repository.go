package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

// CatalogRepository читает клиентов и товаров из таблиц customers и products.
type CatalogRepository struct {
	store *Store
}

// NewCatalogRepository создаёт CatalogGateway поверх PostgreSQL.
func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Customer возвращает клиента или NotFoundError.
func (r *CatalogRepository) Customer(ctx context.Context, id int64) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var customer domain.Customer
	err := r.store.conn(ctx).QueryRowContext(ctx, `
		SELECT id, name FROM customers WHERE id = $1
	`, id).Scan(&customer.ID, &customer.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.NewNotFound(domain.EntityCustomer, id)
		}
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}
	return customer, nil
}

// Product возвращает товар или NotFoundError.
func (r *CatalogRepository) Product(ctx context.Context, id int64) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var product domain.Product
	err := r.store.conn(ctx).QueryRowContext(ctx, `
		SELECT id, name, price FROM products WHERE id = $1
	`, id).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.NewNotFound(domain.EntityProduct, id)
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	return product, nil
}

// Upsert записывает справочник одной транзакцией; существующие записи перезаписываются.
func (r *CatalogRepository) Upsert(ctx context.Context, customers []domain.Customer, products []domain.Product) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		q := r.store.conn(ctx)
		for _, c := range customers {
			if _, err := q.ExecContext(ctx, `
				INSERT INTO customers (id, name) VALUES ($1, $2)
				ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
			`, c.ID, c.Name); err != nil {
				return fmt.Errorf("upsert customer %d: %w", c.ID, err)
			}
		}
		for _, p := range products {
			if _, err := q.ExecContext(ctx, `
				INSERT INTO products (id, name, price) VALUES ($1, $2, $3)
				ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price
			`, p.ID, p.Name, p.Price); err != nil {
				return fmt.Errorf("upsert product %d: %w", p.ID, err)
			}
		}
		return nil
	})
}

var _ domain.CatalogGateway = (*CatalogRepository)(nil)
