// Package agents is the agent directory and escalation bounded context.
package agents

import (
	"bankwise_support_backend/internal/agents/directory"
	"bankwise_support_backend/internal/agents/handler"
	"bankwise_support_backend/internal/agents/service"
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"
)

// Module wires the directory, selector and handlers and implements
// http.Module.
type Module struct {
	handler *handler.Handler
	dir     *directory.Directory
}

// NewModule loads the agent snapshot (generating when missing) and builds
// the escalation selector on top of it.
func NewModule(cfg config.AgentConfig, bus events.Bus, val *validator.Validator, log *logger.Logger) (*Module, error) {
	dir := directory.Load(cfg.GetAgentsFile(), cfg.GetAgentCount(), log)
	svc, err := service.New(dir, bus, log)
	if err != nil {
		return nil, err
	}
	return &Module{handler: handler.New(svc, val), dir: dir}, nil
}

// Directory exposes the agent directory for other modules (dashboard).
func (m *Module) Directory() *directory.Directory {
	return m.dir
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "agents"
}

// RegisterRoutes mounts the escalation and agent routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/escalate", m.handler.HandleEscalate)

	agents := ctx.API.Group("/agents")
	agents.GET("/available", m.handler.HandleAvailable)
	agents.GET("/statistics", m.handler.HandleStatistics)
	agents.GET("/:id", m.handler.HandleAgentByID)
	agents.PUT("/:id/status", m.handler.HandleUpdateStatus)
}

var _ apphttp.Module = (*Module)(nil)
