// Package catalog holds the pure query logic over a product collection:
// filtering, sorting and search suggestions. Nothing here mutates its
// inputs; callers pass a snapshot of the collection and get a fresh slice
// back.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"storefront-catalog-service/internal/domain"
)

// Apply returns the products matching every active criterion of the filter
// state, in their original relative order. A product is included iff:
//
//  1. the lowercased search text (when non-empty) is a substring of its
//     lowercased name, category or subcategory;
//  2. its price lies within [MinPrice, MaxPrice], both ends inclusive,
//     with nil bounds treated as unbounded;
//  3. when the category selection is non-empty, its category is selected,
//     or its combined category:subcategory key is.
func Apply(products []domain.Product, f domain.FilterState) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if len(f.Categories) > 0 {
			_, catOK := f.Categories[p.Category]
			_, subOK := f.Categories[p.FilterKey()]
			if !catOK && !subOK {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// matchesSearch reports whether the lowercased search text occurs in the
// product's name, category or subcategory. search must already be lowercase.
func matchesSearch(p domain.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Category), search) ||
		(p.Subcategory != "" && strings.Contains(strings.ToLower(p.Subcategory), search))
}

// SortKey is a parsed field-direction sort selector.
type SortKey struct {
	Field string // "name", "category" or "price"
	Desc  bool
}

// DefaultSortKey sorts by name ascending.
var DefaultSortKey = SortKey{Field: "name"}

// ParseSortKey parses a "field-direction" string such as "price-desc".
// An empty string yields DefaultSortKey.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return DefaultSortKey, nil
	}
	field, dir, ok := strings.Cut(strings.ToLower(s), "-")
	if !ok {
		return SortKey{}, fmt.Errorf("catalog: malformed sort key %q", s)
	}
	switch field {
	case "name", "category", "price":
	default:
		return SortKey{}, fmt.Errorf("catalog: unknown sort field %q", field)
	}
	switch dir {
	case "asc":
		return SortKey{Field: field}, nil
	case "desc":
		return SortKey{Field: field, Desc: true}, nil
	default:
		return SortKey{}, fmt.Errorf("catalog: unknown sort direction %q", dir)
	}
}

// Sort returns a sorted copy of the products. String fields compare
// case-insensitively; price compares by value. The sort is stable, so
// equal-key products keep their original relative order.
func Sort(products []domain.Product, key SortKey) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	less := func(a, b domain.Product) bool {
		switch key.Field {
		case "price":
			return a.Price < b.Price
		case "category":
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if key.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
