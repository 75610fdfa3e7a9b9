package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/application"
	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/pkg/validation"
)

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addCartItemRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	ClassID   string  `json:"classId" binding:"required"`
	ClassName string  `json:"className"`
	Price     float64 `json:"price"`
}

// List returns the cart items owned by the email query parameter. The
// ownership gate has already matched that parameter against the assertion.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.Svc.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.fail(c, "failed to list cart items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": validation.ToDetails(err)})
		return
	}
	item := &entity.CartItem{
		Email:     req.Email,
		ClassID:   req.ClassID,
		ClassName: req.ClassName,
		Price:     req.Price,
	}
	id, err := h.Svc.Add(c.Request.Context(), item)
	if err != nil {
		h.fail(c, "failed to add cart item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

func (h *CartHandler) Delete(c *gin.Context) {
	n, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "failed to delete cart item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": n})
}

func (h *CartHandler) fail(c *gin.Context, msg string, err error) {
	h.Logger.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
