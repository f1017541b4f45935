package http

import (
	"errors"
	"net/http"

	authdomain "github.com/apetrenko/file-market/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

type authRequestBody struct {
	// Usernames become blob scope directories, so they must stay plain
	// identifiers with no path syntax.
	Username string `json:"username" binding:"required,alphanum,max=64"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	service authdomain.AuthService
}

func NewAuthHandler(service authdomain.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, err := h.service.Authenticate(c, body.Username, body.Password)
	if err != nil {
		if errors.Is(err, &authdomain.CredentialsMismatchError{}) {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
