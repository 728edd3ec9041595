package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	request "bengkel_pos/internal/adapter/http/dto/request"
	response "bengkel_pos/internal/adapter/http/dto/response"
	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// IDocumentRenderer produces the printable forms of documents.
type IDocumentRenderer interface {
	HTML(doc entities.Document) (string, error)
	PDF(doc entities.Document) ([]byte, error)
	HistoryXLSX(estimates, invoices []entities.Document) ([]byte, error)
}

// DocumentHandler serves one document kind. Estimates and invoices each get
// their own instance mounted under their own path.
type DocumentHandler struct {
	kind     entities.DocumentKind
	usecase  usecase.IDocumentUseCase
	renderer IDocumentRenderer
}

func NewDocumentHandler(kind entities.DocumentKind, uc usecase.IDocumentUseCase, renderer IDocumentRenderer) *DocumentHandler {
	return &DocumentHandler{kind: kind, usecase: uc, renderer: renderer}
}

func parseDocumentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, errInvalidDocumentID)
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary      Create an estimate or invoice
// @Description  Lines referencing a panel are priced from the current price list.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request body request.DocumentRequest true "Customer and lines"
// @Success      201  {object}  response.DocumentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /estimates [post]
// @Router       /invoices [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var payload request.DocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	doc, err := h.usecase.Create(c.Request.Context(), h.kind, payload.Customer.ToEntity(), payload.Specs())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

// Update godoc
// @Summary      Rebuild a document in place
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id   path  int  true  "Document id"
// @Param        request body request.DocumentRequest true "Customer and lines"
// @Success      200  {object}  response.DocumentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [put]
// @Router       /invoices/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}
	var payload request.DocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	doc, err := h.usecase.Update(c.Request.Context(), h.kind, id, payload.Customer.ToEntity(), payload.Specs())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// Get godoc
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Param        id   path  int  true  "Document id"
// @Success      200  {object}  response.DocumentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
// @Router       /invoices/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}
	doc, err := h.usecase.GetByID(c.Request.Context(), h.kind, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// Delete godoc
// @Summary      Delete a document
// @Tags         documents
// @Param        id   path  int  true  "Document id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [delete]
// @Router       /invoices/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), h.kind, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Convert godoc
// @Summary      Convert an estimate to an invoice or back
// @Description  Returns a fresh draft of the other kind. With save=true the draft is stored.
// @Tags         documents
// @Produce      json
// @Param        id    path   int   true   "Document id"
// @Param        save  query  bool  false  "Persist the converted document"
// @Success      200  {object}  response.DocumentResponse
// @Success      201  {object}  response.DocumentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id}/convert [post]
// @Router       /invoices/{id}/convert [post]
func (h *DocumentHandler) Convert(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}
	target := h.kind.Other()
	ctx := c.Request.Context()
	draft, err := h.usecase.Convert(ctx, h.kind, id, target)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if save, _ := strconv.ParseBool(c.Query("save")); !save {
		c.JSON(http.StatusOK, response.FromDocument(draft))
		return
	}

	res, err := h.usecase.Save(ctx, target, draft)
	if err != nil {
		abortWithError(c, err)
		return
	}
	saved, err := h.usecase.GetByID(ctx, target, res.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(saved))
}

// Print godoc
// @Summary      Printable HTML page
// @Tags         documents
// @Produce      html
// @Param        id   path  int  true  "Document id"
// @Success      200  {string}  string
// @Router       /estimates/{id}/print [get]
// @Router       /invoices/{id}/print [get]
func (h *DocumentHandler) Print(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	page, err := h.renderer.HTML(doc)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// PDF godoc
// @Summary      Printable PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        id   path  int  true  "Document id"
// @Success      200  {file}  file
// @Router       /estimates/{id}/pdf [get]
// @Router       /invoices/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *gin.Context) {
	doc, ok := h.load(c)
	if !ok {
		return
	}
	b, err := h.renderer.PDF(doc)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, documentFileName(doc)))
	c.Data(http.StatusOK, "application/pdf", b)
}

func (h *DocumentHandler) load(c *gin.Context) (entities.Document, bool) {
	id, ok := parseDocumentID(c)
	if !ok {
		return entities.Document{}, false
	}
	doc, err := h.usecase.GetByID(c.Request.Context(), h.kind, id)
	if err != nil {
		abortWithError(c, err)
		return entities.Document{}, false
	}
	return doc, true
}

func documentFileName(doc entities.Document) string {
	if doc.Number != "" {
		return doc.Number
	}
	return fmt.Sprintf("%s-%d", doc.Kind, doc.ID)
}
