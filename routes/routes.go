package routes

import (
	"time"

	"swastik-storefront/cart"
	"swastik-storefront/catalog"
	"swastik-storefront/config"
	"swastik-storefront/handlers"
	"swastik-storefront/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the storefront API. It returns the home handler so the
// caller can manage the carousel rotator's lifecycle alongside the server's.
func SetupRoutes(r *gin.Engine, provider catalog.Provider, store *cart.Store, settings config.Settings) *handlers.HomeHandler {
	productHandler := &handlers.ProductHandler{Catalog: provider, Settings: settings}
	cartHandler := &handlers.CartHandler{Cart: store, Catalog: provider}
	checkoutHandler := &handlers.CheckoutHandler{Cart: store, Settings: settings}
	contactHandler := &handlers.ContactHandler{Settings: settings}
	settingsHandler := &handlers.SettingsHandler{Settings: settings}
	homeHandler := handlers.NewHomeHandler(provider, settings)

	// Suggestion dropdowns and the checkout/contact buttons are the endpoints
	// a page can fire in a tight loop.
	searchLimiter := middleware.NewRateLimiter(30, time.Minute)
	checkoutLimiter := middleware.NewRateLimiter(10, time.Minute)
	contactLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := r.Group("/api")
	{
		api.GET("/home", homeHandler.GetHome)
		api.POST("/home/carousel/:direction", homeHandler.AdvanceSlide)
		api.GET("/settings", settingsHandler.GetSettings)

		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/bestsellers", productHandler.GetBestsellers)
		api.GET("/search", searchLimiter.Middleware(), productHandler.SearchProducts)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart", cartHandler.AddToCart)
		api.PUT("/cart/:id", cartHandler.UpdateCartLine)
		api.DELETE("/cart/:id", cartHandler.RemoveFromCart)
		api.GET("/cart/totals", cartHandler.GetTotals)

		api.POST("/checkout", checkoutLimiter.Middleware(), checkoutHandler.Checkout)
		api.POST("/contact", contactLimiter.Middleware(), contactHandler.SubmitContact)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return homeHandler
}
