package api

import (
	"errors"
	"net/http"

	reqdto "medverify/internal/handler/dto/request"
	resdto "medverify/internal/handler/dto/response"
	"medverify/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth usecase.AuthUseCase
}

func NewAuthHandler(auth usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// @Summary Issue bearer token
// @Description Exchange the manufacturer API key for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.IssueTokenRequest true "API key"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req reqdto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.auth.IssueToken(req.APIKey)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAPIKey):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid API key",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
