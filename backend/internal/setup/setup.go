package setup

import (
	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/backend/internal/utils"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *mw.Auth
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.Connect(cfg, utils.RandomIdSuffix)
	if err != nil {
		return nil, err
	}
	return NewDependencies(cfg, storage), nil
}

// NewDependencies wires services and handlers on top of an open storage.
func NewDependencies(cfg *config.Config, storage *pg.Storage) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	thread := service.NewThread(storage)
	comment := service.NewComment(storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        handler.New(thread, comment, storage, cfg),
		Jwt:            jwtService,
		AuthMiddleware: mw.NewAuth(jwtService),
		Config:         cfg,
	}
}
