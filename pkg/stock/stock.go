// Package stock holds the instrument value object traders quote
// against. It carries no matching behaviour; the price only seeds the
// orders traders place.
package stock

import "github.com/shopspring/decimal"

type Stock struct {
	Name  string
	Price decimal.Decimal
}

func New(name string, price decimal.Decimal) Stock {
	return Stock{Name: name, Price: price}
}
