package handlers

import (
	"errors"
	"net/http"

	"bengkel_pos/internal/domain/domainerr"
	"bengkel_pos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidDocumentID = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_ID", "Document id must be a positive number", http.StatusBadRequest)
	errInvalidKind       = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_KIND", "Kind must be estimate or invoice", http.StatusBadRequest)
)

// mapDomainError turns a use-case error into the HTTP error for its class.
func mapDomainError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domainerr.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, domainerr.ErrProtectedEntry):
		return pkg.NewDomainError("PROTECTED_ENTRY", err.Error(), err, http.StatusForbidden)
	case errors.Is(err, domainerr.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, domainerr.ErrBackend):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "The data store could not be reached", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapDomainError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
