package handlers

import (
	"net/http"
	"strconv"
	"strings"

	response "bengkel_pos/internal/adapter/http/dto/response"
	"bengkel_pos/internal/domain/document"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

const historyExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HistoryHandler struct {
	usecase  usecase.IDocumentUseCase
	renderer IDocumentRenderer
}

func NewHistoryHandler(uc usecase.IDocumentUseCase, renderer IDocumentRenderer) *HistoryHandler {
	return &HistoryHandler{usecase: uc, renderer: renderer}
}

// GetHistory godoc
// @Summary      Document history
// @Description  Without kind, returns both collections newest first, optionally filtered by q.
// @Description  With kind, returns one page of that collection.
// @Tags         history
// @Produce      json
// @Param        kind      query  string  false  "estimate or invoice"
// @Param        q         query  string  false  "Customer name, car or date"
// @Param        page      query  int     false  "1-based page"
// @Param        per_page  query  int     false  "Page size"
// @Success      200  {object}  response.HistoryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /history [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	kindParam := strings.TrimSpace(c.Query("kind"))

	if kindParam == "" {
		hist, err := h.usecase.GetHistory(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		if term != "" {
			hist.Estimates = document.Filter(hist.Estimates, term)
			hist.Invoices = document.Filter(hist.Invoices, term)
		}
		c.JSON(http.StatusOK, response.FromHistory(hist))
		return
	}

	kind := entities.DocumentKind(kindParam)
	if !kind.Valid() {
		abortWithError(c, errInvalidKind)
		return
	}
	page, ok := queryInt(c, "page")
	if !ok {
		return
	}
	perPage, ok := queryInt(c, "per_page")
	if !ok {
		return
	}
	res, err := h.usecase.SearchHistory(c.Request.Context(), kind, term, page, perPage)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPage(kind, res))
}

// ExportHistory godoc
// @Summary      Export history as a spreadsheet
// @Tags         history
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /history/export [get]
func (h *HistoryHandler) ExportHistory(c *gin.Context) {
	hist, err := h.usecase.GetHistory(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	b, err := h.renderer.HistoryXLSX(hist.Estimates, hist.Invoices)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="history.xlsx"`)
	c.Data(http.StatusOK, historyExportContentType, b)
}

// queryInt reads an optional integer query parameter. Missing means zero.
func queryInt(c *gin.Context, key string) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, errInvalidPayload)
		return 0, false
	}
	return n, true
}
