package chat

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/sessions"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"
)

// Module is the conversational bounded context implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(store sessions.Store, val *validator.Validator, log *logger.Logger) (*Module, error) {
	svc, err := NewService(store, nil, log)
	if err != nil {
		return nil, err
	}
	return &Module{handler: NewHandler(svc, val)}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "chat"
}

// RegisterRoutes mounts the chat routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/chat")
	group.POST("/intent", m.handler.HandleIntent)
}

var _ apphttp.Module = (*Module)(nil)
