package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
)

const defaultSeedYAML = `# демо-каталог бутика
customers:
  - id: 1
    name: Anna Petrova
  - id: 7
    name: Maria Ivanova
  - id: 12
    name: Olga Smirnova

products:
  - id: 1
    name: Cashmere sweater
    price: "89.90"
  - id: 3
    name: Silk scarf
    price: "12.50"
  - id: 5
    name: Leather belt
    price: "34.00"
  - id: 9
    name: Hair clip
    price: "5.00"
`

// SeedCustomer описывает клиента в YAML-файле каталога.
type SeedCustomer struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// SeedProduct описывает товар в YAML-файле каталога. Цена задаётся строкой, чтобы не терять точность.
type SeedProduct struct {
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Seed описывает содержимое YAML-файла каталога.
type Seed struct {
	Customers []SeedCustomer `yaml:"customers"`
	Products  []SeedProduct  `yaml:"products"`
}

// ParseSeed разбирает и валидирует YAML.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse catalog seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// DefaultSeed возвращает встроенный демо-каталог.
func DefaultSeed() Seed {
	seed, err := ParseSeed([]byte(defaultSeedYAML))
	if err != nil {
		panic(err)
	}
	return seed
}

// LoadSeedFile читает YAML-файл каталога.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read catalog seed %s: %w", path, err)
	}
	return ParseSeed(data)
}

// Цена товара должна помещаться в столбец NUMERIC(12, 2) postgres-хранилища.
const priceScale = 2

var maxPrice = decimal.New(1, 10)

func (s Seed) validate() error {
	var errs []error

	seenCustomers := make(map[int64]struct{}, len(s.Customers))
	for i, c := range s.Customers {
		switch {
		case c.ID <= 0:
			errs = append(errs, fmt.Errorf("customers[%d]: id must be positive", i))
		case strings.TrimSpace(c.Name) == "":
			errs = append(errs, fmt.Errorf("customers[%d]: name is required", i))
		}
		if _, dup := seenCustomers[c.ID]; dup {
			errs = append(errs, fmt.Errorf("customers[%d]: duplicate id %d", i, c.ID))
		}
		seenCustomers[c.ID] = struct{}{}
	}

	seenProducts := make(map[int64]struct{}, len(s.Products))
	for i, p := range s.Products {
		switch {
		case p.ID <= 0:
			errs = append(errs, fmt.Errorf("products[%d]: id must be positive", i))
		case strings.TrimSpace(p.Name) == "":
			errs = append(errs, fmt.Errorf("products[%d]: name is required", i))
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			errs = append(errs, fmt.Errorf("products[%d]: invalid price %q: %w", i, p.Price, err))
		} else {
			switch {
			case price.IsNegative():
				errs = append(errs, fmt.Errorf("products[%d]: price must not be negative", i))
			case !price.Equal(price.Truncate(priceScale)):
				errs = append(errs, fmt.Errorf("products[%d]: price %s has more than %d decimal places", i, p.Price, priceScale))
			case price.GreaterThanOrEqual(maxPrice):
				errs = append(errs, fmt.Errorf("products[%d]: price %s does not fit NUMERIC(12, 2)", i, p.Price))
			}
		}
		if _, dup := seenProducts[p.ID]; dup {
			errs = append(errs, fmt.Errorf("products[%d]: duplicate id %d", i, p.ID))
		}
		seenProducts[p.ID] = struct{}{}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog seed: %w", errors.Join(errs...))
	}
	return nil
}

// DomainCustomers конвертирует клиентов в доменные типы.
func (s Seed) DomainCustomers() []domain.Customer {
	result := make([]domain.Customer, 0, len(s.Customers))
	for _, c := range s.Customers {
		result = append(result, domain.Customer{ID: c.ID, Name: c.Name})
	}
	return result
}

// DomainProducts конвертирует товары в доменные типы. Seed уже провалидирован.
func (s Seed) DomainProducts() []domain.Product {
	result := make([]domain.Product, 0, len(s.Products))
	for _, p := range s.Products {
		result = append(result, domain.Product{ID: p.ID, Name: p.Name, Price: decimal.RequireFromString(p.Price)})
	}
	return result
}

// FromSeed строит каталог из seed.
func FromSeed(seed Seed) *Catalog {
	c := New()
	for _, customer := range seed.DomainCustomers() {
		c.PutCustomer(customer)
	}
	for _, product := range seed.DomainProducts() {
		c.PutProduct(product)
	}
	return c
}
