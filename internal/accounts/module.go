package accounts

import (
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the accounts bounded context implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule wires the account service over the database pool (nil in
// mock-only mode) and the generated dataset.
func NewModule(pool *pgxpool.Pool, cfg config.DatabaseConfig, store *mockdata.Store, val *validator.Validator, log *logger.Logger) *Module {
	repo := NewRepository(pool, cfg)
	svc := NewService(repo, store, log)
	return &Module{handler: NewHandler(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "accounts"
}

// RegisterRoutes mounts the account and KYC routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	account := ctx.API.Group("/account")
	account.POST("/balance", m.handler.HandleBalance)
	account.POST("/transactions", m.handler.HandleTransactions)

	kyc := ctx.API.Group("/kyc")
	kyc.POST("/status", m.handler.HandleKYCStatus)
}

var _ apphttp.Module = (*Module)(nil)
