package disputes

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"
)

// Module is the disputes bounded context implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(store *mockdata.Store, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(store, bus, log)
	return &Module{handler: NewHandler(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "disputes"
}

// RegisterRoutes mounts the dispute routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	dispute := ctx.API.Group("/dispute")
	dispute.POST("/raise", m.handler.HandleRaise)
	dispute.POST("/update-status", m.handler.HandleUpdateStatus)
}

var _ apphttp.Module = (*Module)(nil)
