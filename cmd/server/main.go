package main

import (
	"fmt"
	"log"

	"gstbooks/internal/config"
	"gstbooks/internal/email/noop"
	"gstbooks/internal/email/ses"
	"gstbooks/internal/handler"
	"gstbooks/internal/port"
	"gstbooks/internal/repository/postgres"
	"gstbooks/internal/router"
	"gstbooks/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	customerSvc := service.NewCustomerService(customerRepo)
	documentSvc := service.NewDocumentService(documentRepo, customerRepo, emailSender, cfg.Seller)
	reportSvc := service.NewReportService(documentRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	documentH := handler.NewDocumentHandler(documentSvc)
	calculationH := handler.NewCalculationHandler(documentSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, customerH, documentH, calculationH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
