package models

import (
	"encoding/json"
	"strings"
)

// ProductID is the canonical product identifier. Catalog sources are sloppy
// about the JSON type of "id" (some emit strings, some numbers), so it
// normalizes both to a string at decode time. All comparisons elsewhere are
// plain string equality.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*id = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = ProductID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())
	return nil
}

func (id ProductID) String() string { return string(id) }

// ParseProductID normalizes an identifier arriving outside of JSON
// (URL path segments, query params).
func ParseProductID(s string) ProductID {
	return ProductID(strings.TrimSpace(s))
}

type Product struct {
	ID            ProductID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Price         string    `json:"price"`
	OriginalPrice string    `json:"original_price,omitempty"`
	Image         string    `json:"image"`
	Images        []string  `json:"images,omitempty"`
	Description   string    `json:"description,omitempty"`
	Dimensions    string    `json:"dimensions,omitempty"`
	Material      string    `json:"material,omitempty"`
	Available     *bool     `json:"available,omitempty"`
	Bestseller    bool      `json:"bestseller,omitempty"`
	LatestArrival bool      `json:"latest_arrival,omitempty"`
}

// IsAvailable treats a missing "available" field as in stock.
func (p Product) IsAvailable() bool {
	return p.Available == nil || *p.Available
}

// Gallery returns the image list for the detail view, falling back to the
// single primary image when no gallery is set.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}
