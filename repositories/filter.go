package repositories

import (
	"sort"
	"strings"

	"trendkart/models"
)

func matchesFilter(p models.Product, f ProductFilter) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.MinPrice > 0 && p.PriceINR < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.PriceINR > f.MaxPrice {
		return false
	}
	return true
}

func sortProducts(products []models.Product, sortKey string) {
	switch sortKey {
	case "price-asc", "price_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceINR < products[j].PriceINR })
	case "price-desc", "price_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceINR > products[j].PriceINR })
	case "name-asc", "name_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Title < products[j].Title })
	case "name-desc", "name_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Title > products[j].Title })
	default: // newest first
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}
