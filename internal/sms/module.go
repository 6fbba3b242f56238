package sms

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"
)

// Module is the outbound SMS bounded context implementing http.Module.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(cfg config.SMSConfig, store *mockdata.Store, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	return &Module{
		service: svc,
		handler: NewHandler(svc, store, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "sms"
}

// Service exposes the sender for the notification subscribers and the
// background delivery worker.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts the SMS routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/sms")
	group.POST("/transaction-alert", m.handler.HandleTransactionAlert)
	group.POST("/send", m.handler.HandleSend)
	group.GET("/status", m.handler.HandleStatus)
}

var _ apphttp.Module = (*Module)(nil)
