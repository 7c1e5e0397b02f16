package domain

// Product represents a product in the session catalog.
// The json tags correspond to the fields expected in API responses/requests.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"` // empty string means no subcategory
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// FilterKey returns the combined category:subcategory selection key for the
// product, or just the category when it has no subcategory.
func (p Product) FilterKey() string {
	if p.Subcategory == "" {
		return p.Category
	}
	return p.Category + ":" + p.Subcategory
}

// CategoryNode is one entry of the derived category index: a category name,
// the distinct subcategory names observed under it, and the products that
// belong to it. The index is always rebuilt from the catalog by a full scan;
// it is never a source of truth.
type CategoryNode struct {
	Name          string    `json:"name"`
	Subcategories []string  `json:"subcategories"`
	Products      []Product `json:"products"`
}

// SubcategoryCount returns how many of the node's products carry the given
// subcategory.
func (n CategoryNode) SubcategoryCount(sub string) int {
	count := 0
	for _, p := range n.Products {
		if p.Subcategory == sub {
			count++
		}
	}
	return count
}

// FilterState holds the active query criteria. Pointer-valued price bounds
// distinguish "not set" from an explicit zero; nil bounds span [0, +inf).
// Category keys are either a bare category name (matching every subcategory
// under it) or a combined "category:subcategory" key.
type FilterState struct {
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Categories map[string]struct{}
}

// Row is one already-parsed CSV data row, ready for catalog admission.
// Price has already been converted; the remaining validation (non-empty
// name/category) happens in the store.
type Row struct {
	Name        string
	Category    string
	Subcategory string
	Price       float64
	Image       string
	Description string
}

// ImportResult holds the outcome counts of a bulk import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
