package handlers

import (
	"net/http"

	"swastik-storefront/cart"
	"swastik-storefront/checkout"
	"swastik-storefront/config"
	"swastik-storefront/dtos"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	Cart     *cart.Store
	Settings config.Settings
}

// Checkout composes the order summary for the current cart and hands back
// the WhatsApp deep link that carries it. Checkout over an empty cart is
// rejected; nothing is composed or sent.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	lines := h.Cart.Lines()
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	message := checkout.OrderMessage(lines)
	c.JSON(http.StatusOK, dtos.CheckoutResponse{
		URL: checkout.Link(h.Settings.Phone, message),
	})
}
