package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/application"
	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/errs"
	"github.com/rhythmicmansion/server/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Register creates a user record on first sign-in. A duplicate email is a
// 200 with a null insertedId so the frontend can treat repeat logins as a
// no-op.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": validation.ToDetails(err)})
		return
	}
	u := &entity.User{Email: req.Email, Name: req.Name, PhotoURL: req.PhotoURL}
	id, err := h.Svc.Register(c.Request.Context(), u)
	if errors.Is(err, errs.ErrAlreadyExists) {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if err != nil {
		h.fail(c, "failed to register user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// AdminProbe answers whether the asserted user holds the admin role. The
// route is gated by presence and ownership, so by the time this runs the
// email has already been matched against the claims.
func (h *UserHandler) AdminProbe(c *gin.Context) {
	role, err := h.Svc.Role(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, "failed to resolve role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": role == entity.RoleAdmin})
}

// InstructorProbe answers whether the asserted user holds the instructor role.
func (h *UserHandler) InstructorProbe(c *gin.Context) {
	role, err := h.Svc.Role(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, "failed to resolve role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instructor": role == entity.RoleInstructor})
}

func (h *UserHandler) GrantAdmin(c *gin.Context) {
	h.grant(c, entity.RoleAdmin)
}

func (h *UserHandler) GrantInstructor(c *gin.Context) {
	h.grant(c, entity.RoleInstructor)
}

func (h *UserHandler) grant(c *gin.Context, role entity.Role) {
	n, err := h.Svc.GrantRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		h.fail(c, "failed to grant role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "matchedCount": n, "modifiedCount": n})
}

func (h *UserHandler) Delete(c *gin.Context) {
	n, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "failed to delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": n})
}

func (h *UserHandler) fail(c *gin.Context, msg string, err error) {
	h.Logger.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
