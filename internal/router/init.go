package router

import (
	"github.com/rhythmicmansion/server/internal/application"
	"github.com/rhythmicmansion/server/internal/container"
	pginfra "github.com/rhythmicmansion/server/internal/infrastructure/postgres"
	handlers "github.com/rhythmicmansion/server/internal/interface/http"
	"github.com/rhythmicmansion/server/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup, after infrastructure is up.
func InitModules(r *Registry) {
	db := container.GetDB()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userSvc := application.NewUserService(pginfra.NewUserRepository(db), logger)
	classSvc := application.NewClassService(pginfra.NewClassRepository(db), logger)
	instructorSvc := application.NewInstructorService(pginfra.NewInstructorRepository(db))
	cartSvc := application.NewCartService(pginfra.NewCartRepository(db), logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewTokenModule(handlers.NewTokenHandler(jwt, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	r.Add(modules.NewClassModule(handlers.NewClassHandler(classSvc, logger), jwt))
	r.Add(modules.NewInstructorModule(handlers.NewInstructorHandler(instructorSvc, logger)))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, logger), jwt))
}
