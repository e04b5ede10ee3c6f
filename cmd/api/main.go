package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/openunited/commerce-backend/api/routes"
	"github.com/openunited/commerce-backend/internal/config"
	"github.com/openunited/commerce-backend/internal/handlers"
	"github.com/openunited/commerce-backend/internal/repositories"
	mongorepo "github.com/openunited/commerce-backend/internal/repositories/mongodb"
	"github.com/openunited/commerce-backend/internal/services"
	"github.com/openunited/commerce-backend/pkg/mongodb"
	"golang.org/x/exp/slog"
)

func main() {
	// Load .env if present; environment variables still take precedence
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	var organisationRepo repositories.OrganisationRepository = mongorepo.NewOrganisationRepository(db)
	var accountRepo repositories.AccountRepository = mongorepo.NewAccountRepository(db)
	var creditRepo repositories.CreditRepository = mongorepo.NewCreditRepository(db)
	var priceRepo repositories.PointPriceRepository = mongorepo.NewPointPriceRepository(db)
	var cartRepo repositories.CartRepository = mongorepo.NewCartRepository(db)
	var salesOrderRepo repositories.SalesOrderRepository = mongorepo.NewSalesOrderRepository(db)
	var pointGrantRepo repositories.PointGrantRepository = mongorepo.NewPointGrantRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminUserRepo, cfg)
	organisationService := services.NewOrganisationService(organisationRepo)
	accountService := services.NewAccountService(accountRepo, creditRepo, mongoClient)
	creditService := services.NewCreditService(creditRepo, accountService)
	pricingService := services.NewPricingService(priceRepo)
	cartService := services.NewCartService(cartRepo, pricingService)
	grantingService := services.NewGrantingService(accountService, salesOrderRepo, pointGrantRepo)

	// Initialize handlers
	handlerDeps := &routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService),
		OrganisationHandler: handlers.NewOrganisationHandler(organisationService),
		AccountHandler:      handlers.NewAccountHandler(accountService),
		CreditHandler:       handlers.NewCreditHandler(creditService),
		CartHandler:         handlers.NewCartHandler(cartService, accountService),
		PricingHandler:      handlers.NewPricingHandler(pricingService),
		GrantHandler:        handlers.NewGrantHandler(grantingService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("Server exiting")
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
