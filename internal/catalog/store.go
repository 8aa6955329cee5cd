package catalog

import "github.com/shopspring/decimal"

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Stock    int64           `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// ProductFields is everything on a Product a caller may set. The identifier is
// never part of it: the store assigns it on Create and Update takes it separately.
type ProductFields struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Stock    int64           `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// Store reports "not found" through its return values; it has no error path.
type Store interface {
	List() []Product
	Create(f ProductFields) int64
	Update(id int64, f ProductFields) bool
	Delete(id int64) bool
	Get(id int64) (Product, bool)
	Len() int
}

func (f ProductFields) product(id int64) Product {
	return Product{
		ID:       id,
		Name:     f.Name,
		SKU:      f.SKU,
		Stock:    f.Stock,
		Price:    f.Price,
		Category: f.Category,
	}
}
