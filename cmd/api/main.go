// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/domain/cart"
	"github.com/your-org/jeevita-backend/internal/domain/catalog"
	"github.com/your-org/jeevita-backend/internal/domain/i18n"
	"github.com/your-org/jeevita-backend/internal/domain/mailbox"
	"github.com/your-org/jeevita-backend/internal/domain/navigation"
	"github.com/your-org/jeevita-backend/internal/domain/payment"
	"github.com/your-org/jeevita-backend/internal/domain/session"
	"github.com/your-org/jeevita-backend/internal/domain/workflow"
	"github.com/your-org/jeevita-backend/internal/infrastructure/keyvalue"
	"github.com/your-org/jeevita-backend/internal/interfaces/http"
	"github.com/your-org/jeevita-backend/internal/interfaces/http/handlers"
	"github.com/your-org/jeevita-backend/internal/interfaces/http/routes"
	"github.com/your-org/jeevita-backend/internal/pkg/logger"
	"github.com/your-org/jeevita-backend/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	appLogger := logger.New(cfg)

	// Connect to the key-value store backing the mailbox buckets
	kvClient, err := keyvalue.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to key-value store: %v", err)
	}
	defer kvClient.Close()

	if err := kvClient.Health(); err != nil {
		log.Fatalf("Key-value store health check failed: %v", err)
	}

	// Domain services
	provider := catalog.NewProvider()
	overlay := catalog.NewOverlay(provider)
	translator := i18n.NewTranslator(cfg.App.DefaultLanguage)
	router := navigation.NewRouter()
	cartStore := cart.NewStore()
	sessionService := session.NewService(cfg, appLogger)
	mailboxService := mailbox.NewService(kvClient, cfg, appLogger)
	engine := workflow.NewEngine(appLogger)
	paymentService := payment.NewService(cfg, engine, appLogger)
	pdfService := pdf.NewService(cfg)

	// HTTP handlers
	h := &routes.Handlers{
		Auth:         handlers.NewAuthHandler(sessionService, cfg),
		Catalog:      handlers.NewCatalogHandler(overlay, provider),
		Cart:         handlers.NewCartHandler(cartStore, cfg),
		Chat:         handlers.NewChatHandler(mailboxService),
		Prescription: handlers.NewPrescriptionHandler(mailboxService),
		Payment:      handlers.NewPaymentHandler(paymentService, engine, pdfService, cfg),
		Admin:        handlers.NewAdminHandler(engine, overlay),
		Navigation:   handlers.NewNavigationHandler(router),
		Language:     handlers.NewLanguageHandler(translator),
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, kvClient, h)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
