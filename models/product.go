package models

import "time"

type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Slug        string    `json:"slug" bson:"slug"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Brand       string    `json:"brand" bson:"brand"`
	PriceINR    int       `json:"price_inr" bson:"price_inr"`
	Currency    string    `json:"currency" bson:"currency"`
	Stock       int       `json:"stock" bson:"stock"`
	Images      []string  `json:"images" bson:"images"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

var Categories = []string{"Electronics", "Home & Kitchen", "Fashion", "Books", "Toys", "Sports"}

var Brands = []string{
	"Samsung", "Apple", "Sony", "LG", "Philips", "Prestige",
	"Nike", "Adidas", "Puma", "Levi's", "Penguin", "HarperCollins",
	"LEGO", "Hasbro", "Yonex", "Cosco",
}
