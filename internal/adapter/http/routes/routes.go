package routes

import (
	"context"
	"fmt"

	_ "bengkel_pos/docs"
	"bengkel_pos/internal/adapter/http/handlers"
	"bengkel_pos/internal/adapter/persistence/repository"
	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/infrastructure/config"
	"bengkel_pos/internal/infrastructure/logging"
	"bengkel_pos/internal/infrastructure/phone"
	"bengkel_pos/internal/infrastructure/render"
	"bengkel_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers is everything the router mounts.
type Handlers struct {
	Catalog   *handlers.CatalogHandler
	Quote     *handlers.QuoteHandler
	Estimates *handlers.DocumentHandler
	Invoices  *handlers.DocumentHandler
	History   *handlers.HistoryHandler
	Auth      *handlers.AuthHandler
	RPC       *handlers.RPCHandler
}

// Run opens the configured store and serves the API until the server stops.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	store, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	router := NewRouter(NewHandlers(cfg, store), log)
	log.Info("listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewHandlers wires use cases and handlers on top of store.
func NewHandlers(cfg config.Config, store *repository.Store) Handlers {
	assembler := document.NewAssembler(document.SystemClock{}, cfg.Location)
	renderer := render.NewRenderer(cfg.ShopName, cfg.PrintPageSize)

	catalogUseCase := usecase.NewCatalogUseCase(store.Catalog)
	quoteUseCase := usecase.NewQuoteUseCase(store.Catalog)
	documentUseCase := usecase.NewDocumentUseCase(store.Documents, store.Catalog, phone.NewNormalizer(cfg.PhoneRegion), assembler, cfg.HistoryPageSize)
	authUseCase := usecase.NewAuthUseCase(store.Users)

	return Handlers{
		Catalog:   handlers.NewCatalogHandler(catalogUseCase),
		Quote:     handlers.NewQuoteHandler(quoteUseCase),
		Estimates: handlers.NewDocumentHandler(entities.DocumentKindEstimate, documentUseCase, renderer),
		Invoices:  handlers.NewDocumentHandler(entities.DocumentKindInvoice, documentUseCase, renderer),
		History:   handlers.NewHistoryHandler(documentUseCase, renderer),
		Auth:      handlers.NewAuthHandler(authUseCase),
		RPC:       handlers.NewRPCHandler(catalogUseCase, documentUseCase, authUseCase, cfg.RPCSecret),
	}
}

// NewRouter builds the gin engine with logging and recovery middlewares.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logging.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Named("http").Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("request_id", logging.RequestID(c)))
		c.AbortWithStatus(500)
	}))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, h)
	return router
}
