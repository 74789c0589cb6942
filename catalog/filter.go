package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"swastik-storefront/models"
	"swastik-storefront/pricing"
)

// How many products the latest-arrivals view falls back to when nothing is
// tagged latest_arrival: the newest additions are the tail of the catalog,
// shown newest first.
const latestFallbackCount = 10

const (
	TypeBestsellers = "bestsellers"
	TypeLatest      = "latest"

	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
)

// Query is the deep-linkable view state of a listing page. All fields are
// optional; the zero Query selects every product in catalog order.
type Query struct {
	Category string
	Search   string
	Type     string
	Sort     string
}

// Apply filters and sorts a catalog. It is pure: the input slice is never
// mutated and the same catalog and query always produce the same sequence.
//
// Filter precedence: search text beats category beats type. Search matches
// name or category as a case-insensitive substring; category is an exact
// match; type selects the bestseller or latest-arrival tags, with the
// latest view falling back to the last products in catalog order, reversed,
// when nothing is tagged.
func Apply(products []models.Product, q Query) []models.Product {
	filtered := filter(products, q)
	sortProducts(filtered, q.Sort)
	return filtered
}

func filter(products []models.Product, q Query) []models.Product {
	switch {
	case q.Search != "":
		needle := strings.ToLower(strings.TrimSpace(q.Search))
		return lo.Filter(products, func(p models.Product, _ int) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Category), needle)
		})
	case q.Category != "":
		return lo.Filter(products, func(p models.Product, _ int) bool {
			return p.Category == q.Category
		})
	case q.Type == TypeBestsellers:
		return lo.Filter(products, func(p models.Product, _ int) bool {
			return p.Bestseller
		})
	case q.Type == TypeLatest:
		latest := lo.Filter(products, func(p models.Product, _ int) bool {
			return p.LatestArrival
		})
		if len(latest) > 0 {
			return latest
		}
		tail := lo.Reverse(append([]models.Product(nil), products...))
		if len(tail) > latestFallbackCount {
			tail = tail[:latestFallbackCount]
		}
		return tail
	default:
		return append([]models.Product(nil), products...)
	}
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return pricing.ParseAmount(products[i].Price) < pricing.ParseAmount(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return pricing.ParseAmount(products[i].Price) > pricing.ParseAmount(products[j].Price)
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
