package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/application"
	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/pkg/validation"
)

type ClassHandler struct {
	Svc    *application.ClassService
	Logger *logrus.Logger
}

func NewClassHandler(svc *application.ClassService, logger *logrus.Logger) *ClassHandler {
	return &ClassHandler{Svc: svc, Logger: logger}
}

type createClassRequest struct {
	Name            string         `json:"name" binding:"required"`
	Image           string         `json:"image"`
	InstructorName  string         `json:"instructorName"`
	InstructorEmail string         `json:"instructorEmail"`
	Price           float64        `json:"price"`
	AvailableSeats  int            `json:"availableSeats"`
	Students        int            `json:"students"`
	Details         map[string]any `json:"details"`
}

// topClass echoes the popularity count alongside the record, a shape the
// frontend's landing page expects.
type topClass struct {
	entity.Class
	StudentCount int `json:"studentCount"`
}

func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list classes", err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) Top(c *gin.Context) {
	classes, err := h.Svc.Top(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list top classes", err)
		return
	}
	out := make([]topClass, 0, len(classes))
	for _, cl := range classes {
		out = append(out, topClass{Class: cl, StudentCount: cl.Students})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req createClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": validation.ToDetails(err)})
		return
	}
	cl := &entity.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		Students:        req.Students,
		Details:         req.Details,
	}
	id, err := h.Svc.Create(c.Request.Context(), cl)
	if err != nil {
		h.fail(c, "failed to create class", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

func (h *ClassHandler) Delete(c *gin.Context) {
	n, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "failed to delete class", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": n})
}

func (h *ClassHandler) fail(c *gin.Context, msg string, err error) {
	h.Logger.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
