package router

import (
	"github.com/brickforge/brickforge-api/internal/application"
	"github.com/brickforge/brickforge-api/internal/container"
	pginfra "github.com/brickforge/brickforge-api/internal/infrastructure/postgres"
	handlers "github.com/brickforge/brickforge-api/internal/interface/http"
	"github.com/brickforge/brickforge-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	events := container.GetRabbitPub()

	userRepo := pginfra.NewUserRepository(pool)
	buildRepo := pginfra.NewBuildRepository(pool)

	authSvc := application.NewAuthService(userRepo, events, logger)
	buildSvc := application.NewBuildService(buildRepo, events, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewBuildModule(handlers.NewBuildHandler(buildSvc, logger)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
