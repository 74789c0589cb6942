package handlers

import (
	"log"
	"net/http"

	"swastik-storefront/catalog"
	"swastik-storefront/config"
	"swastik-storefront/dtos"
	"swastik-storefront/models"
	"swastik-storefront/utils"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the landing page: the promotional carousel and the
// bestseller strip. It owns the carousel rotator's lifecycle; main starts
// rotation after the routes are wired and stops it on shutdown.
type HomeHandler struct {
	Catalog catalog.Provider
	slides  []dtos.Slide
	rotator *utils.Rotator
}

func NewHomeHandler(provider catalog.Provider, settings config.Settings) *HomeHandler {
	slides := promoSlides(settings)
	return &HomeHandler{
		Catalog: provider,
		slides:  slides,
		rotator: utils.NewRotator(len(slides), settings.CarouselInterval),
	}
}

// StartRotation begins carousel auto-advance.
func (h *HomeHandler) StartRotation() { h.rotator.Start() }

// StopRotation tears the carousel timer down.
func (h *HomeHandler) StopRotation() { h.rotator.Stop() }

func (h *HomeHandler) GetHome(c *gin.Context) {
	// The bestseller strip degrades to empty on upstream failure; the
	// landing page itself always renders.
	bestsellers, err := h.Catalog.Bestsellers(c.Request.Context())
	if err != nil {
		log.Printf("home: bestsellers unavailable: %v", err)
		bestsellers = nil
	}
	if bestsellers == nil {
		bestsellers = []models.Product{}
	}

	c.JSON(http.StatusOK, dtos.HomeView{
		Slides:      h.slides,
		ActiveSlide: h.rotator.Index(),
		Bestsellers: bestsellers,
	})
}

// AdvanceSlide handles the carousel arrows; a manual step resets the
// auto-advance interval.
func (h *HomeHandler) AdvanceSlide(c *gin.Context) {
	var index int
	if c.Param("direction") == "prev" {
		index = h.rotator.Prev()
	} else {
		index = h.rotator.Next()
	}
	c.JSON(http.StatusOK, gin.H{"active_slide": index})
}

func promoSlides(settings config.Settings) []dtos.Slide {
	return []dtos.Slide{
		{
			Title:    "Crafted for Your Home",
			Subtitle: "Solid wood furniture, made in Siliguri",
			Image:    "https://images.unsplash.com/photo-1524758631624-e2822e304c36?q=80&w=2070",
			Link:     "/products.html",
		},
		{
			Title:    "Limited Time Deals",
			Subtitle: "Up to 30% off on beds and dining tables",
			Image:    "https://images.unsplash.com/photo-1538688525198-9b88f6f53126?q=80&w=2074",
			Link:     "/products.html?type=bestsellers",
		},
		{
			Title:    "New Arrivals",
			Subtitle: "Fresh designs in " + settings.ShopName + "'s showroom",
			Image:    "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?q=80&w=2070",
			Link:     "/products.html?type=latest",
		},
	}
}
