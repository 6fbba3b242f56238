package sessions

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"
)

// Module is the session bounded context implementing http.Module.
type Module struct {
	store   Store
	handler *Handler
}

// NewModule prefers the Redis store and falls back to process memory when
// Redis is not configured or unreachable at startup.
func NewModule(cfg config.SessionConfig, val *validator.Validator, log *logger.Logger) *Module {
	var store Store
	if cfg.GetRedisURL() != "" {
		redisStore, err := NewRedisStore(cfg)
		if err != nil {
			log.Warn("redis session store unavailable, using in-memory store", "error", err)
		} else {
			store = redisStore
		}
	}
	if store == nil {
		store = NewMemoryStore(cfg.GetSessionTTL())
	}

	return &Module{
		store:   store,
		handler: NewHandler(store, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "sessions"
}

// Store exposes the session store for the chat module and health checks.
func (m *Module) Store() Store {
	return m.store
}

// RegisterRoutes mounts the accessibility route.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/accessibility", m.handler.HandleAccessibility)
}

var _ apphttp.Module = (*Module)(nil)
