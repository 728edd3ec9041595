package routes

import (
	"bengkel_pos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPrices    = "/prices"
	PathQuotes    = "/quotes"
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
	PathHistory   = "/history"
)

func addShopRoutes(rg *gin.RouterGroup, h Handlers) {
	prices := rg.Group(PathPrices)
	{
		prices.GET("", h.Catalog.GetPrices)
		prices.PUT("", h.Catalog.ReplacePrices)
		prices.POST("", h.Catalog.UpsertPrice)
		prices.DELETE("/:id", h.Catalog.DeletePrice)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.Quote.CreateQuote)
		quotes.POST("/reprice", h.Quote.Reprice)
	}

	addDocumentRoutes(rg.Group(PathEstimates), h.Estimates)
	addDocumentRoutes(rg.Group(PathInvoices), h.Invoices)

	history := rg.Group(PathHistory)
	{
		history.GET("", h.History.GetHistory)
		history.GET("/export", h.History.ExportHistory)
	}

	rg.POST("/login", h.Auth.Login)
	// Single action endpoint kept for the existing browser client.
	rg.POST("/rpc", h.RPC.Handle)
}

func addDocumentRoutes(rg *gin.RouterGroup, h *handlers.DocumentHandler) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/convert", h.Convert)
	rg.GET("/:id/print", h.Print)
	rg.GET("/:id/pdf", h.PDF)
}
