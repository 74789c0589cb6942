package handlers

import (
	"net/http"

	"swastik-storefront/cart"
	"swastik-storefront/catalog"
	"swastik-storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	Cart    *cart.Store
	Catalog catalog.Provider
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"lines":  h.Cart.Lines(),
		"totals": h.Cart.Totals(),
	})
}

// AddToCart resolves the product against the catalog and folds it into the
// cart, snapshotting name, price and image at add time.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Catalog.Product(c.Request.Context(), models.ParseProductID(req.ProductID))
	if err == catalog.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error loading product"})
		return
	}
	if !product.IsAvailable() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
		return
	}

	line, err := h.Cart.Add(product.ID, models.CartSnapshot{
		Name:  product.Name,
		Price: product.Price,
		Image: product.Image,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, line)
}

// UpdateCartLine handles the +/- quantity buttons. A decrease at quantity 1
// removes the line; unknown line ids are no-ops so a stale page cannot
// corrupt the cart.
func (h *CartHandler) UpdateCartLine(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line id"})
		return
	}

	var req struct {
		Action string `json:"action" binding:"required,oneof=increase decrease"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Action == "increase" {
		err = h.Cart.Increase(lineID)
	} else {
		err = h.Cart.Decrease(lineID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lines":  h.Cart.Lines(),
		"totals": h.Cart.Totals(),
	})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line id"})
		return
	}

	if err := h.Cart.Remove(lineID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *CartHandler) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.Cart.Totals())
}
