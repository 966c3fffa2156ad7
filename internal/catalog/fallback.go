package catalog

import "nexa-store/internal/model"

// Fallback returns the built-in product list used when the backend
// catalogue cannot be fetched.
func Fallback() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Title:       "Mens Casual Slim Fit T-Shirt",
			Price:       22.30,
			Category:    "men's clothing",
			Stock:       120,
			Active:      true,
			Image:       "https://cdn.nexastore.dev/img/mens-tshirt.jpg",
			Description: "Lightweight slim fit tee in breathable cotton.",
		},
		{
			ID:          2,
			Title:       "Womens Cotton Jacket",
			Price:       55.99,
			Category:    "women's clothing",
			Discount:    10,
			Stock:       45,
			Active:      true,
			Image:       "https://cdn.nexastore.dev/img/womens-jacket.jpg",
			Description: "All-season jacket with button closure.",
		},
		{
			ID:          3,
			Title:       "Fjallraven Foldsack Backpack",
			Price:       109.95,
			Category:    "accessories",
			Stock:       30,
			Active:      true,
			Image:       "https://cdn.nexastore.dev/img/backpack.jpg",
			Description: "Fits 15 inch laptops, everyday carry.",
		},
		{
			ID:          4,
			Title:       "Gold Plated Princess Ring",
			Price:       9.99,
			Category:    "jewelery",
			Stock:       200,
			Active:      true,
			Image:       "https://cdn.nexastore.dev/img/ring.jpg",
			Description: "Classic created-gemstone solitaire.",
		},
		{
			ID:          5,
			Title:       "SanDisk 1TB Portable SSD",
			Price:       109.00,
			Category:    "electronics",
			Discount:    15,
			Stock:       60,
			Active:      true,
			Image:       "https://cdn.nexastore.dev/img/ssd.jpg",
			Description: "USB-C external solid state drive.",
		},
		{
			ID:          6,
			Title:       "Royal Garam Masala 200g",
			Price:       6.50,
			Category:    "spices",
			Stock:       500,
			Active:      true,
			Image:       "https://cdn.nexastore.dev/img/garam-masala.jpg",
			Description: "Stone-ground blend of ten whole spices.",
		},
	}
}
