package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rhythmicmansion/server/internal/container"
	handlers "github.com/rhythmicmansion/server/internal/interface/http"
	"github.com/rhythmicmansion/server/internal/interface/middleware"
	"github.com/rhythmicmansion/server/pkg/helpers"
)

// CartModule wires cart routes. Listing is scoped to the caller's own email
// via the ownership gate on the email query parameter.
type CartModule struct {
	Handler *handlers.CartHandler
	JWT     *helpers.JWTManager
}

func NewCartModule(h *handlers.CartHandler, jwt *helpers.JWTManager) *CartModule {
	return &CartModule{Handler: h, JWT: jwt}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	requireAuth := middleware.RequireAuth(m.JWT, container.GetLogger())

	rg.GET("/carts", requireAuth, middleware.RequireOwnEmailQuery("email"), m.Handler.List)
	rg.POST("/carts", m.Handler.Add)
	rg.DELETE("/carts/:id", m.Handler.Delete)
}
