package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zamretail/smartinvoice/internal/application/auth"
	"github.com/zamretail/smartinvoice/internal/application/fiscal"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
	"github.com/zamretail/smartinvoice/internal/infrastructure/postgres"
	httpRouter "github.com/zamretail/smartinvoice/internal/interfaces/http"
	"github.com/zamretail/smartinvoice/pkg/config"
	"github.com/zamretail/smartinvoice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tpin", cfg.Company.TPIN).
		Str("bhfId", cfg.Company.BranchID).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	company := entity.Company{
		Name:     cfg.Company.Name,
		TPIN:     cfg.Company.TPIN,
		BranchID: cfg.Company.BranchID,
		SdcID:    cfg.Company.SdcID,
		Currency: cfg.Company.Currency,
	}

	gw := gateway.NewClient(cfg.Gateway, log)

	fiscalSvc := fiscal.NewService(fiscal.Deps{
		Invoices:    postgres.NewInvoiceRepository(pool),
		Items:       postgres.NewItemRepository(pool),
		Customers:   postgres.NewCustomerRepository(pool),
		Orders:      postgres.NewSalesOrderRepository(pool),
		Rates:       postgres.NewCurrencyRateRepository(pool),
		Stock:       postgres.NewStockRepository(pool),
		Scraps:      postgres.NewScrapRepository(pool),
		Sequences:   postgres.NewSequenceRepository(pool),
		Catalogs:    postgres.NewCatalogRepository(pool),
		Gateway:     gw,
		Company:     company,
		Logger:      log,
		StrictStock: cfg.Gateway.StrictStock,
	})

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 90,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Fiscal:    fiscalSvc,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("HTTP server")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
