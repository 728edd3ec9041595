package handlers

import (
	"net/http"

	request "bengkel_pos/internal/adapter/http/dto/request"
	response "bengkel_pos/internal/adapter/http/dto/response"
	"bengkel_pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the three-tier price list.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetPrices godoc
// @Summary      Get price list
// @Tags         prices
// @Produce      json
// @Success      200  {object}  map[string]response.CatalogEntryResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /prices [get]
func (h *CatalogHandler) GetPrices(c *gin.Context) {
	catalog, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}

// ReplacePrices godoc
// @Summary      Replace the whole price list
// @Description  Default panels (ids 1-17) left out of the body keep their stored prices.
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        request body request.ReplaceCatalogRequest true "Price list keyed by id"
// @Success      200  {object}  map[string]response.CatalogEntryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /prices [put]
func (h *CatalogHandler) ReplacePrices(c *gin.Context) {
	var payload request.ReplaceCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	catalog := payload.ToCatalog()
	if err := h.usecase.ReplaceAll(c.Request.Context(), catalog); err != nil {
		abortWithError(c, err)
		return
	}
	h.GetPrices(c)
}

// UpsertPrice godoc
// @Summary      Add or update one price entry
// @Description  A blank id gets the next free numeric id.
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        request body request.CatalogEntryRequest true "Price entry"
// @Success      200  {object}  response.CatalogEntryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /prices [post]
func (h *CatalogHandler) UpsertPrice(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	entry, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntry())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

// DeletePrice godoc
// @Summary      Remove a price entry
// @Description  Entries 1 to 17 are the default panels and cannot be removed.
// @Tags         prices
// @Param        id   path  string  true  "Entry id"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /prices/{id} [delete]
func (h *CatalogHandler) DeletePrice(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
