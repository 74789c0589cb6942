package handlers

import (
	"net/http"

	"swastik-storefront/checkout"
	"swastik-storefront/config"

	"github.com/gin-gonic/gin"
)

// Pre-filled text for the site-wide "chat with us" link in the footer.
const siteInquiry = "*New Inquiry from Website*\n\nMessage: Hello I Would Like To Inquire About Your Products!"

type SettingsHandler struct {
	Settings config.Settings
}

// GetSettings serves the shop chrome: name, contact details, opening hours
// and the generic WhatsApp contact link every page's footer shows.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"settings":    h.Settings,
		"contact_url": checkout.Link(h.Settings.Phone, siteInquiry),
	})
}
