package repositories

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestProductQuery(t *testing.T) {
	q := productQuery(ProductFilter{})
	if len(q) != 0 {
		t.Errorf("empty filter should produce an empty query, got %v", q)
	}

	q = productQuery(ProductFilter{Category: "Electronics", Brand: "Sony"})
	if q["category"] != "Electronics" || q["brand"] != "Sony" {
		t.Errorf("exact-match filters wrong: %v", q)
	}

	q = productQuery(ProductFilter{MinPrice: 500, MaxPrice: 2000})
	price, ok := q["price_inr"].(bson.M)
	if !ok || price["$gte"] != 500 || price["$lte"] != 2000 {
		t.Errorf("price range wrong: %v", q["price_inr"])
	}

	// Only the bound that is set appears.
	q = productQuery(ProductFilter{MaxPrice: 2000})
	price = q["price_inr"].(bson.M)
	if _, has := price["$gte"]; has {
		t.Errorf("unset min bound leaked into query: %v", price)
	}
}

func TestProductQuerySearchEscapesRegex(t *testing.T) {
	q := productQuery(ProductFilter{Search: "t-shirt (blue)"})
	or, ok := q["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("search should match title or description: %v", q)
	}
	title := or[0].(bson.M)["title"].(bson.M)
	if title["$regex"] != `t-shirt \(blue\)` {
		t.Errorf("regex metacharacters not escaped: %q", title["$regex"])
	}
	if title["$options"] != "i" {
		t.Errorf("search should be case-insensitive: %v", title)
	}
}

func TestProductSortMatchesMemoryOrdering(t *testing.T) {
	cases := map[string]bson.D{
		"price-asc":  {{Key: "price_inr", Value: 1}},
		"price_desc": {{Key: "price_inr", Value: -1}},
		"name-asc":   {{Key: "title", Value: 1}},
		"name-desc":  {{Key: "title", Value: -1}},
		"newest":     {{Key: "created_at", Value: -1}},
		"":           {{Key: "created_at", Value: -1}},
	}
	for key, want := range cases {
		got := productSort(key)
		if len(got) != 1 || got[0].Key != want[0].Key || got[0].Value != want[0].Value {
			t.Errorf("productSort(%q) = %v, want %v", key, got, want)
		}
	}
}
