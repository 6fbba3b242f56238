package complaints

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the complaints bounded context implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(pool *pgxpool.Pool, cfg config.DatabaseConfig, store *mockdata.Store, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := NewRepository(pool, cfg)
	svc := NewService(repo, store, bus, log)
	return &Module{handler: NewHandler(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "complaints"
}

// RegisterRoutes mounts the complaint routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	complaint := ctx.API.Group("/complaint")
	complaint.POST("/new", m.handler.HandleNew)
	complaint.POST("/status", m.handler.HandleStatus)
}

var _ apphttp.Module = (*Module)(nil)
