package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "crm_pipeline/docs" // swagger spec
	"crm_pipeline/internal/adapter/http/handlers"
	"crm_pipeline/internal/adapter/persistence/repository"
	"crm_pipeline/internal/infrastructure/config"
	"crm_pipeline/internal/infrastructure/database"
	"crm_pipeline/internal/infrastructure/localcache"
	"crm_pipeline/internal/infrastructure/logging"
	"crm_pipeline/internal/infrastructure/metrics"
	"crm_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run wires the service from cfg and serves HTTP until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := metrics.NewRegistry()
	pipelineHandler, err := newPipelineHandler(ctx, cfg, logger, registry)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(logger, registry, pipelineHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newPipelineHandler(ctx context.Context, cfg *config.Config, logger *zap.Logger, registry *prometheus.Registry) (*handlers.PipelineHandler, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices)
	customerRepo := repository.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers)

	pipelineMetrics, err := metrics.NewPipelineMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline metrics: %w", err)
	}

	opts := []usecase.PipelineOption{
		usecase.WithViewCache(cache.New(cfg.Cache.ViewTTL, cfg.Cache.ViewCleanup)),
		usecase.WithMetrics(pipelineMetrics),
		usecase.WithLogger(logger),
	}
	if cfg.Cache.SnapshotDir != "" {
		opts = append(opts, usecase.WithSnapshotCache(localcache.NewSnapshotStore(cfg.Cache.SnapshotDir)))
		logger.Info("snapshot cache enabled", zap.String("dir", cfg.Cache.SnapshotDir))
	}

	pipelineUseCase := usecase.NewPipelineUseCase(quoteRepo, invoiceRepo, customerRepo, opts...)
	return handlers.NewPipelineHandler(pipelineUseCase, logger), nil
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(logger *zap.Logger, registry *prometheus.Registry, pipelineHandler *handlers.PipelineHandler) *gin.Engine {
	router := gin.New()
	router.Use(logging.Middleware(logger), logging.Recovery(logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, pipelineHandler)
	return router
}
