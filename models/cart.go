package models

import (
	"github.com/google/uuid"
)

// CartLine is one product-and-quantity entry in the cart. LineID is the
// stable handle clients mutate through; positional indices are never exposed
// because any earlier mutation would invalidate them.
//
// Name, Price and Image are snapshots captured when the line was added. They
// are not re-synced if the catalog's product data later changes.
type CartLine struct {
	LineID    uuid.UUID `json:"line_id"`
	ProductID ProductID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Image     string    `json:"image"`
}

// CartSnapshot carries the denormalized display fields frozen into a line
// at add time.
type CartSnapshot struct {
	Name  string
	Price string
	Image string
}
