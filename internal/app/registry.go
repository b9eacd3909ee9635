package app

import (
	"database/sql"
	"os"

	"github.com/louiscollinsjr/miere-app/internal/cart"
	"github.com/louiscollinsjr/miere-app/internal/events"
	"github.com/louiscollinsjr/miere-app/internal/i18n"
	"github.com/louiscollinsjr/miere-app/internal/middleware"
	"github.com/louiscollinsjr/miere-app/internal/payment"
	"github.com/louiscollinsjr/miere-app/internal/product"
	"github.com/louiscollinsjr/miere-app/internal/profile"
	"github.com/louiscollinsjr/miere-app/internal/sitemap"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const defaultSiteURL = "https://www.miere-app.ro"

type moduleDeps struct {
	db        *sql.DB
	redis     *redis.Client
	publisher events.Publisher
	processor payment.Processor
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	// --- Repositories ---
	productRepo := product.NewRepository(deps.db)
	profileRepo := profile.NewRepository(deps.db)

	// --- Services & stores ---
	productService := product.NewService(productRepo, os.Getenv("SUPABASE_URL"))
	profileService := profile.NewService(profileRepo)
	paymentService := payment.NewService(deps.processor)
	cartManager := cart.NewManager()
	localePrefs := i18n.NewRedisPreferences(deps.redis)

	// --- Handlers ---
	productHandler := product.NewHandler(productService)
	profileHandler := profile.NewHandler(profileService)
	paymentHandler := payment.NewHandler(paymentService, deps.publisher)
	cartHandler := cart.NewHandler(cartManager)
	localeHandler := i18n.NewHandler(localePrefs, profileService)

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = defaultSiteURL
	}
	sitemapHandler := sitemap.NewHandler(siteURL)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		product.RegisterRoutes(api, productHandler)
		profile.RegisterRoutes(api, profileHandler)
		cart.RegisterRoutes(api, cartHandler)
		i18n.RegisterRoutes(api, localeHandler)
	}

	payment.RegisterRoutes(router, paymentHandler)
	sitemap.RegisterRoutes(router, sitemapHandler)
}
