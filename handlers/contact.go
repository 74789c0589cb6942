package handlers

import (
	"net/http"

	"swastik-storefront/checkout"
	"swastik-storefront/config"
	"swastik-storefront/dtos"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Settings config.Settings
}

// SubmitContact turns the contact form into a prefilled WhatsApp link. All
// three fields are required; nothing is stored server-side.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
		return
	}

	message := checkout.ContactMessage(req.Name, req.Phone, req.Message)
	c.JSON(http.StatusOK, dtos.CheckoutResponse{
		URL: checkout.Link(h.Settings.Phone, message),
	})
}
