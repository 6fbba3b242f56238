package locator

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the locator bounded context implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(pool *pgxpool.Pool, cfg config.DatabaseConfig, store *mockdata.Store, val *validator.Validator, log *logger.Logger) *Module {
	repo := NewRepository(pool, cfg)
	svc := NewService(repo, store, log, nil)
	return &Module{handler: NewHandler(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "locator"
}

// RegisterRoutes mounts the branch and ATM locator routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	branch := ctx.API.Group("/branch")
	branch.POST("/locate", m.handler.HandleLocateBranches)

	atm := ctx.API.Group("/atm")
	atm.POST("/locate", m.handler.HandleLocateATMs)
}

var _ apphttp.Module = (*Module)(nil)
