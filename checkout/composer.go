// Package checkout composes WhatsApp order and inquiry messages and the
// wa.me deep links that carry them. Orders never touch a payment gateway;
// the handoff to the shop's WhatsApp number is the whole checkout.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"swastik-storefront/models"
	"swastik-storefront/pricing"
)

// DefaultPhone is the shop's WhatsApp number used when configuration leaves
// the phone unset.
const DefaultPhone = "919002066361"

const (
	orderGreeting    = "Hello, I would like to place an order for the following items:"
	orderConfirmLine = "Please confirm availability and delivery charges."
)

// OrderMessage renders the cart as a numbered order summary: one entry per
// line, a grand total with Indian digit grouping, and a fixed confirmation
// sentence. Missing display fields fall back to neutral defaults; composing
// never fails. Callers are expected not to compose for an empty cart
// (checkout is a no-op there), but an empty list still yields a well-formed
// message.
func OrderMessage(lines []models.CartLine) string {
	var b strings.Builder
	b.WriteString(orderGreeting)
	b.WriteString("\n\n")

	total := decimal.Zero
	for i, line := range lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		name := line.Name
		if name == "" {
			name = "Unknown Product"
		}
		price := line.Price
		if price == "" {
			price = "₹0"
		}
		amount := decimal.NewFromFloat(pricing.ParseAmount(line.Price))
		total = total.Add(amount.Mul(decimal.NewFromInt(int64(qty))))

		fmt.Fprintf(&b, "%d. %s\n   Qty: %d | Price: %s\n", i+1, name, qty, price)
	}

	grand, _ := total.Float64()
	fmt.Fprintf(&b, "\n*Total Estimate: %s*", pricing.FormatINR(grand))
	b.WriteString("\n\n")
	b.WriteString(orderConfirmLine)
	return b.String()
}

// ContactMessage renders the contact form handoff: the visitor's name, phone
// and free-text message as a labelled WhatsApp inquiry.
func ContactMessage(name, phone, message string) string {
	return fmt.Sprintf("*New Inquiry from Website*\n\n*Name:* %s\n*Phone:* %s\n*Message:* %s",
		name, phone, message)
}

// InquiryMessage renders the single-product "Inquire" text from the product
// cards and detail page.
func InquiryMessage(p models.Product) string {
	name := p.Name
	if name == "" {
		name = "Unknown Product"
	}
	price := p.Price
	if price == "" {
		price = "₹0"
	}
	return fmt.Sprintf("Hello, I'm interested in the %s (Price: %s). Is it available?", name, price)
}

// Link builds the wa.me deep link for a message. Everything but digits is
// stripped from the phone; an empty result falls back to the shop default.
func Link(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		digits = DefaultPhone
	}
	// QueryEscape emits '+' for spaces; wa.me expects percent-encoding
	// throughout, like encodeURIComponent.
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + escaped
}
