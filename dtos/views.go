// Package dtos holds the response shapes the storefront serves to its pages.
package dtos

import (
	"swastik-storefront/models"
	"swastik-storefront/pricing"
)

// ProductDetail is the product page payload: the listing itself plus the
// derived display blocks the page renders.
type ProductDetail struct {
	Product    models.Product   `json:"product"`
	Discount   pricing.Discount `json:"discount"`
	Gallery    []string         `json:"gallery"`
	InStock    bool             `json:"in_stock"`
	Related    []models.Product `json:"related"`
	InquiryURL string           `json:"inquiry_url"`
}

// ProductCard is a listing entry with its derived discount badge.
type ProductCard struct {
	Product  models.Product   `json:"product"`
	Discount pricing.Discount `json:"discount"`
	InStock  bool             `json:"in_stock"`
}

// Slide is one promotional carousel frame.
type Slide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Link     string `json:"link"`
}

// HomeView is the landing page payload: carousel state plus the bestseller
// strip.
type HomeView struct {
	Slides      []Slide          `json:"slides"`
	ActiveSlide int              `json:"active_slide"`
	Bestsellers []models.Product `json:"bestsellers"`
}

// CheckoutResponse carries the WhatsApp handoff link for a composed order.
type CheckoutResponse struct {
	URL string `json:"url"`
}
