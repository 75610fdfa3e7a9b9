package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rhythmicmansion/server/internal/container"
	handlers "github.com/rhythmicmansion/server/internal/interface/http"
	"github.com/rhythmicmansion/server/internal/interface/middleware"
	"github.com/rhythmicmansion/server/pkg/helpers"
)

// UserModule wires user CRUD and role routes.
//
// The role-grant PATCH routes and DELETE are deliberately unguarded: the
// original deployment trusts any caller that can reach them. The ownership
// gate on the role probes is registered strictly after RequireAuth, which is
// what populates the context email the gate reads.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	requireAuth := middleware.RequireAuth(m.JWT, container.GetLogger())

	rg.GET("/users", requireAuth, m.Handler.List)
	rg.POST("/users", m.Handler.Register)

	rg.GET("/users/admin/:email", requireAuth, middleware.RequireOwnEmailParam("email"), m.Handler.AdminProbe)
	rg.PATCH("/users/admin/:id", m.Handler.GrantAdmin)

	rg.GET("/users/instructor/:email", requireAuth, middleware.RequireOwnEmailParam("email"), m.Handler.InstructorProbe)
	rg.PATCH("/users/instructor/:id", m.Handler.GrantInstructor)

	rg.DELETE("/users/:id", m.Handler.Delete)
}
