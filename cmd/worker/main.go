package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/usecase/matching"
	queueUseCase "github.com/fintomate/receipt-matcher/internal/domain/usecase/queue"

	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/api/handler"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/api/routes"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/blob"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/database"
	intelAdapter "github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/intel"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/logger"
	mailAdapter "github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/mail"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/repository"
	timeProvider "github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/time"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.LevelFromString(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Database
	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	db, err := dbManager.Connect(context.Background())
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	documentRepo := repository.NewDocumentRepository(db, appLogger)
	connectionRepo := repository.NewConnectionRepository(db, appLogger)
	partnerRepo := repository.NewPartnerRepository(db, appLogger)
	mailboxRepo := repository.NewMailboxRepository(db, appLogger)
	queueItemRepo := repository.NewQueueItemRepository(db, tp, appLogger)
	attemptRepo := repository.NewSearchAttemptRepository(db, appLogger)
	uow := dbManager.CreateUnitOfWork()

	// External adapters
	blobStore, err := blob.NewFSStore(cfg.Blob.RootDir, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize blob store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	mailClient := mailAdapter.NewClient(cfg.Mail, tp, appLogger)
	intelClient := intelAdapter.NewClient(cfg.Intel, appLogger)

	// Matching engine
	matchCfg := matching.Config{
		AmountTolerancePercent:    cfg.Matching.AmountTolerancePercent,
		DateWindowDays:            cfg.Matching.DateWindowDays,
		BodyInvoiceConfidence:     cfg.Matching.BodyInvoiceConfidence,
		RunBudget:                 cfg.Matching.RunBudget,
		InterTransactionDelay:     cfg.Matching.InterTransactionDelay,
		PageSize:                  cfg.Matching.PageSize,
		MailSearchMaxResults:      cfg.Matching.MailSearchMaxResults,
		MaxQueries:                cfg.Matching.MaxQueries,
		MaxRetries:                cfg.Matching.MaxRetries,
		PatternStartingConfidence: cfg.Matching.PatternStartingConfidence,
	}

	connector := matching.NewConnector(uow, connectionRepo, partnerRepo, tp, appLogger, matchCfg)
	ingestor := matching.NewIngestor(documentRepo, blobStore, tp, appLogger)

	strategies := []matching.Strategy{
		matching.NewPartnerFilesStrategy(documentRepo, partnerRepo, connector, tp, appLogger, matchCfg),
		matching.NewAmountDateSweepStrategy(documentRepo, partnerRepo, connector, tp, appLogger, matchCfg),
		matching.NewMailAttachmentsStrategy(mailboxRepo, documentRepo, partnerRepo, mailClient, intelClient, ingestor, connector, tp, appLogger, matchCfg),
		matching.NewMailBodyStrategy(mailboxRepo, documentRepo, partnerRepo, mailClient, intelClient, intelClient, ingestor, connector, tp, appLogger, matchCfg),
	}

	controller := matching.NewController(queueItemRepo, transactionRepo, attemptRepo, strategies, tp, appLogger, matchCfg)
	queueService := queueUseCase.NewService(queueItemRepo, controller, tp, appLogger, cfg.Matching.MaxRetries)

	// Background sweep loop picks up scheduled and continued work
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	sweepDone := make(chan struct{})
	go runSweepLoop(sweepCtx, sweepDone, queueService, cfg.Matching.SweepInterval, appLogger)

	// HTTP surface
	matchRunHandler := handler.NewMatchRunHandler(queueService, appLogger)
	healthHandler := handler.NewHealthHandler(db)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, matchRunHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...", nil)

	stopSweep()
	select {
	case <-sweepDone:
	case <-time.After(cfg.Server.ShutdownTimeout):
		appLogger.Warn("Sweep loop did not stop in time", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited", nil)
}

// runSweepLoop claims and runs pending queue items on a fixed cadence
func runSweepLoop(
	ctx context.Context,
	done chan<- struct{},
	queueService *queueUseCase.Service,
	interval time.Duration,
	appLogger core.Logger,
) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := queueService.RunSweep(ctx); err != nil {
				appLogger.Error("Sweep run failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}
