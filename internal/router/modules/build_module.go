package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brickforge/brickforge-api/internal/container"
	handlers "github.com/brickforge/brickforge-api/internal/interface/http"
	"github.com/brickforge/brickforge-api/internal/interface/middleware"
)

// BuildModule wires the build persistence endpoints.
// Identity is the caller-held user id; there is no session middleware.
type BuildModule struct {
	Handler *handlers.BuildHandler
}

func NewBuildModule(h *handlers.BuildHandler) *BuildModule {
	return &BuildModule{Handler: h}
}

func (m *BuildModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/save", limiter, m.Handler.Save)
	rg.GET("/history/:userId", limiter, m.Handler.History)
	// Missing path param still reaches the handler so the response is the
	// documented missing-user-id error, not a bare router 404.
	rg.GET("/history", limiter, m.Handler.History)
	rg.GET("/load/:id", limiter, m.Handler.Load)
}
