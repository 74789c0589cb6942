package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestSubmitContactComposesWhatsAppLink(t *testing.T) {
	router := setupStorefrontRouter(freshCart())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/contact", map[string]string{
		"name":    "Asha Rai",
		"phone":   "+91 98765 43210",
		"message": "Do you deliver to Gangtok?",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	link, _ := resp["url"].(string)
	if !strings.HasPrefix(link, "https://wa.me/919002066361?text=") {
		t.Fatalf("Unexpected contact link: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("Contact link does not parse: %v", err)
	}
	message := parsed.Query().Get("text")
	for _, want := range []string{
		"*New Inquiry from Website*",
		"*Name:* Asha Rai",
		"*Phone:* +91 98765 43210",
		"*Message:* Do you deliver to Gangtok?",
	} {
		if !strings.Contains(message, want) {
			t.Errorf("Expected message to contain %q, got:\n%s", want, message)
		}
	}
}

func TestSubmitContactRequiresAllFields(t *testing.T) {
	router := setupStorefrontRouter(freshCart())

	cases := []map[string]string{
		{"phone": "+91 98765 43210", "message": "hi"},
		{"name": "Asha Rai", "message": "hi"},
		{"name": "Asha Rai", "phone": "+91 98765 43210"},
		{},
	}

	for _, body := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("POST", "/api/contact", body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for %v, got %d", body, w.Code)
			continue
		}
		if resp := parseResponse(w); resp["error"] != "Please fill in all fields" {
			t.Errorf("Unexpected error message: %v", resp["error"])
		}
	}
}
