package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rhythmicmansion/server/internal/container"
	handlers "github.com/rhythmicmansion/server/internal/interface/http"
	"github.com/rhythmicmansion/server/internal/interface/middleware"
	"github.com/rhythmicmansion/server/pkg/helpers"
)

// ClassModule wires class listing routes. Creation requires a valid
// assertion; deletion does not (inherited trust model).
type ClassModule struct {
	Handler *handlers.ClassHandler
	JWT     *helpers.JWTManager
}

func NewClassModule(h *handlers.ClassHandler, jwt *helpers.JWTManager) *ClassModule {
	return &ClassModule{Handler: h, JWT: jwt}
}

func (m *ClassModule) Register(rg *gin.RouterGroup) {
	rg.GET("/classes", m.Handler.List)
	rg.GET("/top-classes", m.Handler.Top)
	rg.POST("/class", middleware.RequireAuth(m.JWT, container.GetLogger()), m.Handler.Create)
	rg.DELETE("/class/:id", m.Handler.Delete)
}
