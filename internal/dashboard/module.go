package dashboard

import (
	"bankwise_support_backend/internal/agents/directory"
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the operations dashboard implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(pool *pgxpool.Pool, cfg config.DatabaseConfig, store *mockdata.Store, dir *directory.Directory, log *logger.Logger) *Module {
	repo := NewRepository(pool, cfg)
	svc := NewService(store, repo, dir, log)
	return &Module{handler: NewHandler(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "dashboard"
}

// RegisterRoutes mounts the dashboard routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Dashboard.GET("/api", m.handler.HandleData)
}

var _ apphttp.Module = (*Module)(nil)
