package model

// CartItem is a single cart line: a product plus the number of units.
// Entries are unique per product ID; adding an already-carted product
// increments the quantity of the existing entry.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the discounted price of the line across all units.
func (i CartItem) LineTotal() float64 {
	return i.Product.DiscountedPrice() * float64(i.Quantity)
}
