package handlers

import (
	"errors"
	"net/http"

	request "bengkel_pos/internal/adapter/http/dto/request"
	response "bengkel_pos/internal/adapter/http/dto/response"
	"bengkel_pos/internal/usecase"
	"bengkel_pos/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Check staff credentials
// @Description  No session is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body request.LoginRequest true "Credentials"
// @Success      200  {object}  response.UserResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	user, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		abortWithError(c, pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized))
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}
