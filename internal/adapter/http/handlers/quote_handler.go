package handlers

import (
	"net/http"

	request "bengkel_pos/internal/adapter/http/dto/request"
	response "bengkel_pos/internal/adapter/http/dto/response"
	"bengkel_pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler prices drafts without saving them.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Price a draft
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.QuoteRequest true "Lines"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	q, err := h.usecase.Quote(c.Request.Context(), payload.Specs())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Reprice godoc
// @Summary      Reprice one item at another tier
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.RepriceRequest true "Item and tier"
// @Success      200  {object}  response.LineItemResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes/reprice [post]
func (h *QuoteHandler) Reprice(c *gin.Context) {
	var payload request.RepriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	item, err := h.usecase.Reprice(c.Request.Context(), payload.Item.ToItem(), payload.Tier())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(item))
}
