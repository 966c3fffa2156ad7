package model

import "math"

// Product represents a purchasable item in the storefront catalogue.
// Products are immutable once loaded; derived values are computed on read.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Discount    float64 `json:"discount,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	Active      bool    `json:"active,omitempty"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// DiscountedPrice returns the effective unit price after applying the
// discount percentage.
func (p Product) DiscountedPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// RoundMoney rounds a monetary amount to two decimal places.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
