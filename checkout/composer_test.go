package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"swastik-storefront/models"
)

func TestOrderMessageSingleItem(t *testing.T) {
	msg := OrderMessage([]models.CartLine{
		{LineID: uuid.New(), ProductID: "103", Quantity: 1, Name: "Bed", Price: "₹32,000"},
	})

	for _, want := range []string{"Bed", "Qty: 1", "₹32,000", "*Total Estimate: ₹32,000*", "Please confirm availability and delivery charges."} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if !strings.HasPrefix(msg, "Hello, I would like to place an order") {
		t.Errorf("unexpected greeting:\n%s", msg)
	}
}

func TestOrderMessageNumbersLinesAndTotals(t *testing.T) {
	msg := OrderMessage([]models.CartLine{
		{Quantity: 2, Name: "Dining Table", Price: "₹12,000"},
		{Quantity: 1, Name: "Bed", Price: "₹17,000"},
	})

	if !strings.Contains(msg, "1. Dining Table") || !strings.Contains(msg, "2. Bed") {
		t.Errorf("lines not numbered:\n%s", msg)
	}
	if !strings.Contains(msg, "41,000") {
		t.Errorf("expected grand total 41,000:\n%s", msg)
	}
}

func TestOrderMessageNeutralDefaults(t *testing.T) {
	msg := OrderMessage([]models.CartLine{{Quantity: 0}})

	if !strings.Contains(msg, "Unknown Product") {
		t.Errorf("expected the unknown-product default:\n%s", msg)
	}
	if !strings.Contains(msg, "Price: ₹0") {
		t.Errorf("expected the zero-price default:\n%s", msg)
	}
	if !strings.Contains(msg, "Qty: 1") {
		t.Errorf("expected quantity clamped to 1:\n%s", msg)
	}
}

func TestInquiryMessage(t *testing.T) {
	msg := InquiryMessage(models.Product{Name: "King Size Bed with Storage", Price: "₹32,000"})
	want := "Hello, I'm interested in the King Size Bed with Storage (Price: ₹32,000). Is it available?"
	if msg != want {
		t.Errorf("got %q, want %q", msg, want)
	}
}

func TestContactMessage(t *testing.T) {
	msg := ContactMessage("Asha Rai", "+91 98765 43210", "Do you deliver to Gangtok?")
	want := "*New Inquiry from Website*\n\n" +
		"*Name:* Asha Rai\n" +
		"*Phone:* +91 98765 43210\n" +
		"*Message:* Do you deliver to Gangtok?"
	if msg != want {
		t.Errorf("got %q, want %q", msg, want)
	}
}

func TestLinkEncodesMessage(t *testing.T) {
	link := Link("+91 90020 66361", "Order: Bed ₹32,000\nThanks")

	if !strings.HasPrefix(link, "https://wa.me/919002066361?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, " ") || strings.Contains(link, "\n") || strings.Contains(link, "+") {
		t.Errorf("link not fully percent-encoded: %s", link)
	}

	// The encoded text must decode back to the original message.
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "Order: Bed ₹32,000\nThanks" {
		t.Errorf("decoded text mismatch: %q", got)
	}
}

func TestLinkFallsBackToDefaultPhone(t *testing.T) {
	link := Link("", "hello")
	if !strings.HasPrefix(link, "https://wa.me/"+DefaultPhone+"?") {
		t.Errorf("expected the default shop number, got %s", link)
	}
}

func TestCheckoutLinkRoundTrip(t *testing.T) {
	lines := []models.CartLine{
		{Quantity: 1, Name: "Bed", Price: "₹32,000"},
	}
	link := Link("919002066361", OrderMessage(lines))

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := u.Query().Get("text")
	for _, want := range []string{"Bed", "32,000", "Total Estimate"} {
		if !strings.Contains(text, want) {
			t.Errorf("decoded checkout message missing %q:\n%s", want, text)
		}
	}
}
