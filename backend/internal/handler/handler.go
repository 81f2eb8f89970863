package handler

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/shared/config"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	health  HealthChecker
	cfg     *config.Config
}

func New(thread service.ThreadService, comment service.CommentService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		thread:  thread,
		comment: comment,
		health:  health,
		cfg:     cfg,
	}
}
