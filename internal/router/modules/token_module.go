package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rhythmicmansion/server/internal/container"
	handlers "github.com/rhythmicmansion/server/internal/interface/http"
	"github.com/rhythmicmansion/server/internal/interface/middleware"
)

// TokenModule exposes assertion issuance.
// POST /jwt is public; it is the only route a client needs before it holds a
// token, so it carries the tightest per-IP rate limit.
type TokenModule struct {
	Handler *handlers.TokenHandler
}

func NewTokenModule(h *handlers.TokenHandler) *TokenModule {
	return &TokenModule{Handler: h}
}

func (m *TokenModule) Register(rg *gin.RouterGroup) {
	issueLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())
	rg.POST("/jwt", issueLimiter, m.Handler.Issue)
}
