package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogModeStatic = "static"
	CatalogModeRemote = "remote"
)

func LoadEnv() error {
	// Try to load .env file if it exists (for local development).
	// On production the environment variables are set directly.
	if err := godotenv.Load(); err != nil {
		// .env file not found is not an error - it might be on production
		return nil
	}
	return nil
}

// ValidateEnv checks the catalog configuration and warns about unset
// optional variables. The remote variant cannot run without an API base.
func ValidateEnv() error {
	mode := GetEnv("CATALOG_MODE", CatalogModeStatic)
	if mode != CatalogModeStatic && mode != CatalogModeRemote {
		return fmt.Errorf("CATALOG_MODE must be %q or %q, got %q", CatalogModeStatic, CatalogModeRemote, mode)
	}
	if mode == CatalogModeRemote && os.Getenv("CATALOG_API_URL") == "" {
		return fmt.Errorf("CATALOG_API_URL must be set when CATALOG_MODE=remote")
	}

	if os.Getenv("SHOP_PHONE") == "" {
		log.Println("WARNING: SHOP_PHONE not set - checkout links will use the default shop number")
	}
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS may not work correctly")
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Settings is the shop configuration injected into handlers at startup.
// There is deliberately no package-level settings singleton; every component
// receives this value explicitly.
type Settings struct {
	ShopName         string        `json:"shop_name"`
	Phone            string        `json:"-"`
	DisplayPhone     string        `json:"display_phone"`
	Email            string        `json:"email"`
	Address          string        `json:"address"`
	AccessTime       string        `json:"access_time"`
	CopyrightYear    string        `json:"copyright_year"`
	CatalogMode      string        `json:"-"`
	CatalogAPIURL    string        `json:"-"`
	CarouselInterval time.Duration `json:"-"`
}

// LoadSettings reads the shop configuration from the environment, falling
// back to the Swastik Furnitures defaults.
func LoadSettings() Settings {
	interval := 5 * time.Second
	if raw := os.Getenv("CAROUSEL_INTERVAL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			interval = time.Duration(secs) * time.Second
		} else {
			log.Printf("WARNING: invalid CAROUSEL_INTERVAL_SECONDS %q, using default", raw)
		}
	}

	return Settings{
		ShopName:         GetEnv("SHOP_NAME", "Swastik Furnitures"),
		Phone:            GetEnv("SHOP_PHONE", ""),
		DisplayPhone:     GetEnv("SHOP_DISPLAY_PHONE", "+91 90020 66361"),
		Email:            GetEnv("SHOP_EMAIL", "sales@swastikfurnitures.in"),
		Address:          GetEnv("SHOP_ADDRESS", "Sevoke Road, Siliguri, West Bengal, 734001"),
		AccessTime:       GetEnv("SHOP_HOURS", "Mon - Sat: 10:00 AM - 8:00 PM"),
		CopyrightYear:    GetEnv("SHOP_COPYRIGHT_YEAR", strconv.Itoa(time.Now().Year())),
		CatalogMode:      GetEnv("CATALOG_MODE", CatalogModeStatic),
		CatalogAPIURL:    os.Getenv("CATALOG_API_URL"),
		CarouselInterval: interval,
	}
}
