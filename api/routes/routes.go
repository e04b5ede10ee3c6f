package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openunited/commerce-backend/internal/config"
	"github.com/openunited/commerce-backend/internal/handlers"
	"github.com/openunited/commerce-backend/internal/middleware"
)

// HandlerDependencies holds the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	OrganisationHandler *handlers.OrganisationHandler
	AccountHandler      *handlers.AccountHandler
	CreditHandler       *handlers.CreditHandler
	CartHandler         *handlers.CartHandler
	PricingHandler      *handlers.PricingHandler
	GrantHandler        *handlers.GrantHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps *HandlerDependencies) *gin.Engine {
	// Create router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Organisation routes
		organisations := protected.Group("/organisations")
		{
			organisations.GET("", deps.OrganisationHandler.GetAllOrganisations)
			organisations.GET("/:id", deps.OrganisationHandler.GetOrganisationByID)
			organisations.POST("", deps.OrganisationHandler.CreateOrganisation)
			organisations.PUT("/:id", deps.OrganisationHandler.UpdateOrganisation)
			organisations.DELETE("/:id", deps.OrganisationHandler.DeleteOrganisation)
		}

		// Account routes
		accounts := protected.Group("/accounts")
		{
			accounts.GET("/:id", deps.AccountHandler.GetAccountByID)
			accounts.POST("", deps.AccountHandler.CreateAccount)
			accounts.PUT("/:id", deps.AccountHandler.UpdateAccount)
			accounts.DELETE("/:id", deps.AccountHandler.DeleteAccount)
			accounts.POST("/:id/recalculate", deps.AccountHandler.RecalculateBalances)
		}

		// Credit routes
		credits := protected.Group("/credits")
		{
			credits.GET("/account/:accountId", deps.CreditHandler.GetCreditsByAccount)
			credits.POST("", deps.CreditHandler.CreateCredit)
			credits.PUT("/:id", deps.CreditHandler.UpdateCredit)
			credits.DELETE("/:id", deps.CreditHandler.DeleteCredit)
		}

		// Cart routes
		carts := protected.Group("/carts")
		{
			carts.GET("/:id", deps.CartHandler.GetCartByID)
			carts.GET("/account/:accountId", deps.CartHandler.GetCartsByAccount)
			carts.POST("", deps.CartHandler.CreateCart)
			carts.POST("/price", deps.CartHandler.PriceCart)
			carts.DELETE("/:id", deps.CartHandler.DeleteCart)
		}

		// Pricing routes
		pricing := protected.Group("/pricing")
		{
			pricing.GET("", deps.PricingHandler.GetAllPrices)
			pricing.GET("/resolve", deps.PricingHandler.ResolvePrice)
			pricing.GET("/:id", deps.PricingHandler.GetPriceByID)
			pricing.POST("", deps.PricingHandler.CreatePrice)
		}

		// Sales order routes
		salesOrders := protected.Group("/sales-orders")
		{
			salesOrders.POST("", deps.GrantHandler.CreateSalesOrder)
			salesOrders.POST("/:id/grant", deps.GrantHandler.GrantForSalesOrder)
		}

		// Point grant routes
		pointGrants := protected.Group("/point-grants")
		{
			pointGrants.POST("", deps.GrantHandler.CreatePointGrant)
			pointGrants.POST("/:id/grant", deps.GrantHandler.GrantForPointGrant)
		}
	}

	return router
}
