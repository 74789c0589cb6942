package handlers

import (
	"net/http"
	"strconv"

	"swastik-storefront/catalog"
	"swastik-storefront/checkout"
	"swastik-storefront/config"
	"swastik-storefront/dtos"
	"swastik-storefront/models"
	"swastik-storefront/pricing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Related products shown under the detail view: same category, excluding the
// product itself.
const relatedLimit = 15

type ProductHandler struct {
	Catalog  catalog.Provider
	Settings config.Settings
}

// GetProducts serves the listing page. The query parameters mirror the
// deep-linkable view state: category, type (bestsellers|latest), sort and q
// all round-trip through the address bar.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error loading products"})
		return
	}

	result := catalog.Apply(products, catalog.Query{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Type:     c.Query("type"),
		Sort:     c.Query("sort"),
	})

	cards := lo.Map(result, func(p models.Product, _ int) dtos.ProductCard {
		return dtos.ProductCard{
			Product:  p,
			Discount: pricing.ComputeDiscount(p.Price, p.OriginalPrice),
			InStock:  p.IsAvailable(),
		}
	})
	c.JSON(http.StatusOK, cards)
}

// GetProduct serves the detail page: the product, its discount block, the
// image gallery, related products and the prefilled WhatsApp inquiry link.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := models.ParseProductID(c.Param("id"))

	product, err := h.Catalog.Product(c.Request.Context(), id)
	if err == catalog.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error loading product"})
		return
	}

	// A failed related lookup degrades to an empty strip; the product
	// itself already loaded.
	var related []models.Product
	if all, err := h.Catalog.Products(c.Request.Context()); err == nil {
		related = catalog.Related(all, product, relatedLimit)
	}

	c.JSON(http.StatusOK, dtos.ProductDetail{
		Product:    product,
		Discount:   pricing.ComputeDiscount(product.Price, product.OriginalPrice),
		Gallery:    product.Gallery(),
		InStock:    product.IsAvailable(),
		Related:    related,
		InquiryURL: checkout.Link(h.Settings.Phone, checkout.InquiryMessage(product)),
	})
}

func (h *ProductHandler) GetBestsellers(c *gin.Context) {
	products, err := h.Catalog.Bestsellers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error loading products"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts serves the search page and the navbar suggestion dropdown
// (the latter passes a small limit).
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []models.Product{})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	products, err := h.Catalog.Search(c.Request.Context(), q, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error loading results"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}
