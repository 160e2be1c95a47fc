package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// productQuery translates a ProductFilter into a Mongo filter document.
// Kept as a pure function so its behavior can be checked against the
// in-memory reference implementation without a running server.
func productQuery(f ProductFilter) bson.M {
	query := bson.M{}

	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Brand != "" {
		query["brand"] = f.Brand
	}

	price := bson.M{}
	if f.MinPrice > 0 {
		price["$gte"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		price["$lte"] = f.MaxPrice
	}
	if len(price) > 0 {
		query["price_inr"] = price
	}

	return query
}

// productSort maps the catalog sort keys onto Mongo sort documents. The
// same keys drive sortProducts for the memory store; the two must stay
// behaviorally identical.
func productSort(sortKey string) bson.D {
	switch sortKey {
	case "price-asc", "price_asc":
		return bson.D{{Key: "price_inr", Value: 1}}
	case "price-desc", "price_desc":
		return bson.D{{Key: "price_inr", Value: -1}}
	case "name-asc", "name_asc":
		return bson.D{{Key: "title", Value: 1}}
	case "name-desc", "name_desc":
		return bson.D{{Key: "title", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
