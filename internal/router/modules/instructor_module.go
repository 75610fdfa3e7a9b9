package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rhythmicmansion/server/internal/interface/http"
)

// InstructorModule wires the read-only instructor listing.
type InstructorModule struct {
	Handler *handlers.InstructorHandler
}

func NewInstructorModule(h *handlers.InstructorHandler) *InstructorModule {
	return &InstructorModule{Handler: h}
}

func (m *InstructorModule) Register(rg *gin.RouterGroup) {
	rg.GET("/instructors", m.Handler.List)
}
