package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rvilela/AgroCampo-api/internal/application/deposits"
	"github.com/rvilela/AgroCampo-api/internal/application/finance"
	"github.com/rvilela/AgroCampo-api/internal/application/ledger"
	"github.com/rvilela/AgroCampo-api/internal/application/orders"
	"github.com/rvilela/AgroCampo-api/internal/infrastructure/postgres"
	httpRouter "github.com/rvilela/AgroCampo-api/internal/interfaces/http"
	"github.com/rvilela/AgroCampo-api/pkg/config"
	"github.com/rvilela/AgroCampo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	// Repositórios de leitura atados ao pool; as escritas passam pelo TxRunner.
	txRunner := postgres.NewTxRunner(pool)
	reader := postgres.NewRepos(pool)
	orch := ledger.NewOrchestrator(txRunner, log)

	harvestUC := ledger.NewHarvestUseCase(orch, reader)
	purchaseUC := ledger.NewPurchaseUseCase(orch, reader)
	saleUC := ledger.NewSaleUseCase(orch, reader)
	transferUC := ledger.NewTransferUseCase(orch, reader)
	adjustmentUC := ledger.NewAdjustmentUseCase(orch, reader)
	beneficiationUC := ledger.NewBeneficiationUseCase(orch, reader)
	statementBuilder := ledger.NewStatementBuilder(reader)
	orderUC := orders.NewUseCase(txRunner, reader)
	financeUC := finance.NewUseCase(txRunner, reader)
	depositUC := deposits.NewUseCase(reader.Deposits)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgroCampo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		HarvestUC:       harvestUC,
		PurchaseUC:      purchaseUC,
		SaleUC:          saleUC,
		TransferUC:      transferUC,
		AdjustmentUC:    adjustmentUC,
		BeneficiationUC: beneficiationUC,
		Statement:       statementBuilder,
		OrderUC:         orderUC,
		FinanceUC:       financeUC,
		DepositUC:       depositUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
