package catalog

import (
	"testing"

	"swastik-storefront/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: "102", Name: "Wooden Dining Table (4 Seater)", Category: "tables", Price: "₹18,500", OriginalPrice: "₹22,000", Bestseller: true},
		{ID: "103", Name: "King Size Bed with Storage", Category: "beds", Price: "₹32,000"},
		{ID: "104", Name: "Ergonomic Study Chair", Category: "chairs", Price: "₹7,500"},
		{ID: "105", Name: "Bedside Table", Category: "tables", Price: "₹4,200", LatestArrival: true},
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Category: "beds"})
	if len(got) != 1 || got[0].ID != "103" {
		t.Fatalf("expected exactly the bed, got %+v", got)
	}
}

func TestApplySearchMatchesNameAndCategory(t *testing.T) {
	// "bed" appears in a name ("King Size Bed...", "Bedside Table") and a
	// category ("beds"); matching is case-insensitive.
	got := Apply(sampleCatalog(), Query{Search: "BED"})
	if len(got) != 3 {
		t.Fatalf("expected 3 matches for %q, got %d: %+v", "BED", len(got), got)
	}
}

func TestApplySearchBeatsCategory(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Search: "chair", Category: "beds"})
	if len(got) != 1 || got[0].ID != "104" {
		t.Fatalf("expected search text to take precedence, got %+v", got)
	}
}

func TestApplyBestsellers(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Type: TypeBestsellers})
	if len(got) != 1 || got[0].ID != "102" {
		t.Fatalf("expected the bestseller table, got %+v", got)
	}
}

func TestApplyLatestTagged(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Type: TypeLatest})
	if len(got) != 1 || got[0].ID != "105" {
		t.Fatalf("expected the tagged latest arrival, got %+v", got)
	}
}

func TestApplyLatestFallbackReversesTail(t *testing.T) {
	var products []models.Product
	for i := 0; i < 12; i++ {
		products = append(products, models.Product{
			ID:   models.ProductID(string(rune('a' + i))),
			Name: "P",
		})
	}

	got := Apply(products, Query{Type: TypeLatest})
	if len(got) != latestFallbackCount {
		t.Fatalf("expected %d fallback products, got %d", latestFallbackCount, len(got))
	}
	// Newest (last in catalog order) first.
	if got[0].ID != products[11].ID || got[len(got)-1].ID != products[2].ID {
		t.Errorf("expected reversed tail, got first=%s last=%s", got[0].ID, got[len(got)-1].ID)
	}
}

func TestApplySortPriceAsc(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "A", Price: "₹32,000"},
		{ID: "2", Name: "B", Price: "₹12,000"},
	}
	got := Apply(products, Query{Sort: SortPriceAsc})
	if got[0].ID != "2" {
		t.Errorf("expected the ₹12,000 item first, got %+v", got[0])
	}
}

func TestApplySortPriceDesc(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Sort: SortPriceDesc})
	if got[0].ID != "103" {
		t.Errorf("expected the most expensive first, got %+v", got[0])
	}
}

func TestApplySortNameAsc(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Sort: SortNameAsc})
	if got[0].ID != "105" {
		t.Errorf("expected 'Bedside Table' first, got %+v", got[0])
	}
}

func TestApplyUnknownSortKeepsFilterOrder(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Sort: "default"})
	if got[0].ID != "102" || got[3].ID != "105" {
		t.Errorf("expected catalog order preserved, got %+v", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()
	Apply(products, Query{Sort: SortPriceAsc})
	if products[0].ID != "102" {
		t.Error("Apply mutated its input slice")
	}
}

func TestRelatedExcludesSelf(t *testing.T) {
	products := sampleCatalog()
	related := Related(products, products[0], 15)
	if len(related) != 1 || related[0].ID != "105" {
		t.Fatalf("expected the other table only, got %+v", related)
	}
}
