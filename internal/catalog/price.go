package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// formatPrice renders d the way it was written: the scale is kept, so "19.90"
// stays "19.90". Values whose plain form would need padding zeros (positive
// exponent, or more than six leading zeros after the point) use scientific
// notation instead, e.g. "1E+2" and "1E-7". Output length never depends on
// the size of the exponent.
func formatPrice(d decimal.Decimal) string {
	coef := d.Coefficient()
	sign := ""
	if coef.Sign() < 0 {
		sign = "-"
		coef.Neg(coef)
	}
	digits := coef.String()
	exp := int64(d.Exponent())
	adjusted := exp + int64(len(digits)) - 1

	if exp <= 0 && adjusted >= -6 {
		if exp == 0 {
			return sign + digits
		}
		point := int64(len(digits)) + exp
		if point > 0 {
			return sign + digits[:point] + "." + digits[point:]
		}
		return sign + "0." + strings.Repeat("0", int(-point)) + digits
	}

	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += "." + digits[1:]
	}
	e := strconv.FormatInt(adjusted, 10)
	if adjusted >= 0 {
		e = "+" + e
	}
	return sign + mantissa + "E" + e
}

type productJSON struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Stock    int64  `json:"stock"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

type fieldsJSON struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Stock    int64  `json:"stock"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:       p.ID,
		Name:     p.Name,
		SKU:      p.SKU,
		Stock:    p.Stock,
		Price:    formatPrice(p.Price),
		Category: p.Category,
	})
}

func (f ProductFields) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldsJSON{
		Name:     f.Name,
		SKU:      f.SKU,
		Stock:    f.Stock,
		Price:    formatPrice(f.Price),
		Category: f.Category,
	})
}
