// Package catalog supplies product listings to the storefront, either from
// a statically embedded per-category list or from an upstream product API,
// and implements the pure filter/sort applied on top of them.
package catalog

import (
	"context"
	"errors"

	"swastik-storefront/models"
)

// ErrNotFound reports an unknown product id. Views render it as an explicit
// "not found" message, never as a crash.
var ErrNotFound = errors.New("product not found")

// Provider is the read-only catalog surface. Each load returns the full
// listing; ids are unique and stable across loads.
type Provider interface {
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id models.ProductID) (models.Product, error)
	Bestsellers(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, q string, limit int) ([]models.Product, error)
}

// Related returns products sharing a category with p, excluding p itself,
// capped at max entries in catalog order.
func Related(all []models.Product, p models.Product, max int) []models.Product {
	related := make([]models.Product, 0, max)
	for _, other := range all {
		if other.Category == p.Category && other.ID != p.ID {
			related = append(related, other)
			if len(related) == max {
				break
			}
		}
	}
	return related
}
