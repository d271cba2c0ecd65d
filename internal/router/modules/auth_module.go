package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brickforge/brickforge-api/internal/container"
	handlers "github.com/brickforge/brickforge-api/internal/interface/http"
	"github.com/brickforge/brickforge-api/internal/interface/middleware"
)

// AuthModule wires the signup and login endpoints.
// Both are public; per-IP limits slow down credential stuffing and signup
// spam (bcrypt makes each attempt expensive for us too).
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
