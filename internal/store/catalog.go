package store

import (
	"context"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"storefront-catalog-service/internal/domain"
)

// Catalog is the single authoritative owner of the product collection and
// its derived category index. It is constructor-injected wherever it is
// needed; there is no package-level instance.
//
// All mutations run under the write lock, so every operation sees the
// collection either before or after any other, never mid-mutation. The
// index is rebuilt by a full scan after each mutation rather than
// maintained incrementally; at session-catalog sizes the scan is cheap and
// the rebuild-from-scratch rule keeps the index trivially consistent.
type Catalog struct {
	mx       sync.RWMutex
	nextID   int64
	products []domain.Product
	index    []domain.CategoryNode
	log      Log
}

// NewCatalog creates a Catalog seeded with the given products. Seed IDs are
// preserved; the internal ID counter starts above the highest seed ID so
// fresh IDs never collide within the session.
func NewCatalog(log Log, seed []domain.Product) *Catalog {
	c := &Catalog{
		nextID:   1,
		products: make([]domain.Product, 0, len(seed)),
		log:      log,
	}
	for _, p := range seed {
		c.products = append(c.products, p)
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}
	c.rebuildIndex()
	return c
}

// Products returns a copy of the full product collection in insertion order.
func (c *Catalog) Products(_ context.Context) []domain.Product {
	c.mx.RLock()
	defer c.mx.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns a copy of the derived category index, ordered by first
// appearance of each category in the collection.
func (c *Catalog) Categories(_ context.Context) []domain.CategoryNode {
	c.mx.RLock()
	defer c.mx.RUnlock()

	out := make([]domain.CategoryNode, len(c.index))
	for i, node := range c.index {
		out[i] = domain.CategoryNode{
			Name:          node.Name,
			Subcategories: append([]string(nil), node.Subcategories...),
			Products:      append([]domain.Product(nil), node.Products...),
		}
	}
	return out
}

// AddProduct validates the fields, assigns a fresh unique ID and appends the
// product to the collection. Returns *ValidationError on bad input.
func (c *Catalog) AddProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	normalize(&p)
	if err := validate(p); err != nil {
		return nil, err
	}

	c.mx.Lock()
	defer c.mx.Unlock()

	p.ID = c.nextID
	c.nextID++
	c.products = append(c.products, p)
	c.rebuildIndex()

	c.log.Info("product added", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

// EditProduct overwrites all mutable fields of the product with the given ID
// in place. The same field validation as AddProduct applies. Returns
// ErrProductNotFound if no product has that ID.
func (c *Catalog) EditProduct(_ context.Context, id int64, p domain.Product) (*domain.Product, error) {
	normalize(&p)
	if err := validate(p); err != nil {
		return nil, err
	}

	c.mx.Lock()
	defer c.mx.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		p.ID = id
		c.products[i] = p
		c.rebuildIndex()
		c.log.Info("product updated", zap.Int64("id", id))
		return &p, nil
	}
	return nil, ErrProductNotFound
}

// DeleteProduct removes the product with the given ID. Returns
// ErrProductNotFound if no product has that ID.
func (c *Catalog) DeleteProduct(_ context.Context, id int64) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		c.products = append(c.products[:i], c.products[i+1:]...)
		c.rebuildIndex()
		c.log.Info("product deleted", zap.Int64("id", id))
		return nil
	}
	return ErrProductNotFound
}

// ImportRows appends every row that passes minimal validation (non-empty
// name and category; the parser has already guaranteed a numeric price),
// assigning each a fresh unique ID. Failing rows are dropped and counted,
// never fatal. The index is rebuilt once at the end, not per row.
func (c *Catalog) ImportRows(_ context.Context, rows []domain.Row) domain.ImportResult {
	c.mx.Lock()
	defer c.mx.Unlock()

	var result domain.ImportResult
	for _, row := range rows {
		p := domain.Product{
			Name:        strings.TrimSpace(row.Name),
			Category:    strings.ToLower(strings.TrimSpace(row.Category)),
			Subcategory: strings.ToLower(strings.TrimSpace(row.Subcategory)),
			Price:       row.Price,
			Image:       strings.TrimSpace(row.Image),
			Description: strings.TrimSpace(row.Description),
		}
		if p.Name == "" || p.Category == "" {
			c.log.Warn("import row skipped", zap.String("name", row.Name), zap.String("category", row.Category))
			result.Skipped++
			continue
		}
		p.ID = c.nextID
		c.nextID++
		c.products = append(c.products, p)
		result.Imported++
	}
	c.rebuildIndex()

	c.log.Info("import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result
}

// rebuildIndex recomputes the category index by a full scan of the product
// collection. Idempotent; caller must hold the write lock.
func (c *Catalog) rebuildIndex() {
	nodes := make([]domain.CategoryNode, 0, len(c.index))
	pos := make(map[string]int)

	for _, p := range c.products {
		i, ok := pos[p.Category]
		if !ok {
			i = len(nodes)
			pos[p.Category] = i
			nodes = append(nodes, domain.CategoryNode{Name: p.Category})
		}
		node := &nodes[i]
		if p.Subcategory != "" && !containsString(node.Subcategories, p.Subcategory) {
			node.Subcategories = append(node.Subcategories, p.Subcategory)
		}
		node.Products = append(node.Products, p)
	}
	c.index = nodes
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// normalize trims all string fields and lowercases category and subcategory,
// which define the grouping and selection key space.
func normalize(p *domain.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	p.Subcategory = strings.ToLower(strings.TrimSpace(p.Subcategory))
	p.Image = strings.TrimSpace(p.Image)
	p.Description = strings.TrimSpace(p.Description)
}

// validate enforces the manual add/edit rules: required fields non-empty and
// a finite, strictly positive price.
func validate(p domain.Product) error {
	switch {
	case p.Name == "":
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	case p.Category == "":
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	case p.Image == "":
		return &ValidationError{Field: "image", Reason: "must not be empty"}
	case p.Description == "":
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	case math.IsNaN(p.Price) || math.IsInf(p.Price, 0):
		return &ValidationError{Field: "price", Reason: "must be a finite number"}
	case p.Price <= 0:
		return &ValidationError{Field: "price", Reason: "must be greater than 0"}
	}
	return nil
}
