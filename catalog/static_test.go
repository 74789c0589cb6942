package catalog

import (
	"context"
	"testing"

	"swastik-storefront/models"
)

func TestStaticIDsUniqueAndStable(t *testing.T) {
	s := NewStatic()
	products, err := s.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("embedded catalog is empty")
	}

	seen := make(map[models.ProductID]bool)
	for _, p := range products {
		if p.ID == "" {
			t.Errorf("product %q has an empty id", p.Name)
		}
		if seen[p.ID] {
			t.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestStaticLookupByID(t *testing.T) {
	s := NewStatic()
	p, err := s.Product(context.Background(), "103")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "King Size Bed with Storage" {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestStaticLookupUnknownID(t *testing.T) {
	s := NewStatic()
	if _, err := s.Product(context.Background(), "999"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStaticBestsellersAreTagged(t *testing.T) {
	s := NewStatic()
	products, err := s.Bestsellers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected at least one bestseller in the embedded catalog")
	}
	for _, p := range products {
		if !p.Bestseller {
			t.Errorf("product %s is not tagged bestseller", p.ID)
		}
	}
}

func TestStaticSearchLimitsResults(t *testing.T) {
	s := NewStatic()
	all, err := s.Search(context.Background(), "table", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) < 2 {
		t.Fatalf("expected several matches for %q, got %d", "table", len(all))
	}

	limited, err := s.Search(context.Background(), "table", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected limit 1 to cap results, got %d", len(limited))
	}
}

func TestStaticSearchEmptyQuery(t *testing.T) {
	s := NewStatic()
	got, err := s.Search(context.Background(), "  ", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results for a blank query, got %d", len(got))
	}
}

func TestStaticCategoriesAssembledInOrder(t *testing.T) {
	s := NewStatic()
	products, _ := s.Products(context.Background())

	order := []string{"sofas", "beds", "tables", "chairs", "storage", "tv_panels"}
	rank := make(map[string]int, len(order))
	for i, c := range order {
		rank[c] = i
	}

	last := -1
	for _, p := range products {
		r, ok := rank[p.Category]
		if !ok {
			t.Fatalf("unexpected category %q", p.Category)
		}
		if r < last {
			t.Fatalf("category %q out of assembly order", p.Category)
		}
		last = r
	}
}
