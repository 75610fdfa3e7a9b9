package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/application"
)

type InstructorHandler struct {
	Svc    *application.InstructorService
	Logger *logrus.Logger
}

func NewInstructorHandler(svc *application.InstructorService, logger *logrus.Logger) *InstructorHandler {
	return &InstructorHandler{Svc: svc, Logger: logger}
}

func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("failed to list instructors")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, instructors)
}
