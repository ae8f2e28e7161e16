package handlers

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"stockboard/internal/config"
	"stockboard/internal/service"
	"stockboard/internal/util"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	ChatbotService service.ChatbotService
	TablesService  service.TablesService
	Health         HealthChecker
	Cfg            *config.Config
	Validate       *validator.Validate
	Logger         *slog.Logger
}

func NewHandlers(services *service.Service, health HealthChecker, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		PostService:    services.Post,
		ChatbotService: services.Chatbot,
		TablesService:  services.Tables,
		Health:         health,
		Cfg:            cfg,
		Validate:       validator.New(),
		Logger:         util.GetLogger(),
	}
}
