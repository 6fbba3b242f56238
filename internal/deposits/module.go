package deposits

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the deposits bounded context implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(pool *pgxpool.Pool, cfg config.DatabaseConfig, store *mockdata.Store, val *validator.Validator, log *logger.Logger) *Module {
	repo := NewRepository(pool, cfg)
	svc := NewService(repo, store, log)
	return &Module{handler: NewHandler(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "deposits"
}

// RegisterRoutes mounts the fixed deposit routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	fd := ctx.API.Group("/fd")
	fd.POST("/rates", m.handler.HandleRates)
}

var _ apphttp.Module = (*Module)(nil)
