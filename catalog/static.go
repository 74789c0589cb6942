package catalog

import (
	"context"
	"strings"

	"swastik-storefront/models"
)

// Static is the embedded catalog variant: a fixed product list assembled at
// construction by concatenating the per-category lists below. It never does
// I/O and has no error path.
type Static struct {
	products []models.Product
}

// NewStatic assembles the embedded catalog. Category order matters: the tail
// of the combined list is what the latest-arrivals fallback shows.
func NewStatic() *Static {
	combined := make([]models.Product, 0,
		len(sofas)+len(beds)+len(tables)+len(chairs)+len(storageUnits)+len(tvPanels))
	for _, group := range [][]models.Product{sofas, beds, tables, chairs, storageUnits, tvPanels} {
		combined = append(combined, group...)
	}
	return &Static{products: combined}
}

func (s *Static) Products(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), s.products...), nil
}

func (s *Static) Product(ctx context.Context, id models.ProductID) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *Static) Bestsellers(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.Bestseller {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Static) Search(ctx context.Context, q string, limit int) ([]models.Product, error) {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return nil, nil
	}
	var out []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func unavailable() *bool {
	v := false
	return &v
}
