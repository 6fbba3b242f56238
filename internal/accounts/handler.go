package accounts

import (
	"net/http"
	"time"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the account endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type AccountInfoRequest struct {
	AccountNumber string `json:"account_number" validate:"required,min=6,max=20,numeric"`
}

type TransactionHistoryRequest struct {
	AccountNumber string `json:"account_number" validate:"required,min=6,max=20,numeric"`
	Limit         int    `json:"limit" validate:"omitempty,min=1,max=20"`
}

type BalanceResponse struct {
	AccountNumber string         `json:"account_number"`
	Balance       float64        `json:"balance"`
	Currency      string         `json:"currency"`
	AsOf          string         `json:"as_of"`
	Status        banking.Status `json:"status"`
}

type TransactionHistoryResponse struct {
	AccountNumber string         `json:"account_number"`
	Transactions  []Transaction  `json:"transactions"`
	TotalCount    int            `json:"total_count"`
	Status        banking.Status `json:"status"`
}

type KYCStatusResponse struct {
	AccountNumber     string         `json:"account_number"`
	KYCStatus         string         `json:"kyc_status"`
	VerificationLevel string         `json:"verification_level"`
	LastUpdated       string         `json:"last_updated"`
	DocumentsRequired []string       `json:"documents_required"`
	Status            banking.Status `json:"status"`
}

// HandleBalance returns the masked balance view of an account.
func (h *Handler) HandleBalance(c *gin.Context) {
	var req AccountInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	account, err := h.svc.AccountByNumber(c.Request.Context(), req.AccountNumber)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, BalanceResponse{
		AccountNumber: banking.MaskAccountNumber(req.AccountNumber),
		Balance:       account.Balance,
		Currency:      account.Currency,
		AsOf:          time.Now().Format(time.RFC3339),
		Status:        banking.StatusSuccess,
	})
}

// HandleTransactions returns recent transaction history, newest first.
func (h *Handler) HandleTransactions(c *gin.Context) {
	var req TransactionHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = 5
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	transactions, err := h.svc.TransactionHistory(c.Request.Context(), req.AccountNumber, req.Limit)
	if httpkit.HandleError(c, err) {
		return
	}
	if transactions == nil {
		transactions = []Transaction{}
	}

	httpkit.OK(c, TransactionHistoryResponse{
		AccountNumber: banking.MaskAccountNumber(req.AccountNumber),
		Transactions:  transactions,
		TotalCount:    len(transactions),
		Status:        banking.StatusSuccess,
	})
}

// HandleKYCStatus returns the KYC verification state of an account.
func (h *Handler) HandleKYCStatus(c *gin.Context) {
	var req AccountInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	account, err := h.svc.AccountByNumber(c.Request.Context(), req.AccountNumber)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, KYCStatusResponse{
		AccountNumber:     banking.MaskAccountNumber(req.AccountNumber),
		KYCStatus:         account.KYCStatus,
		VerificationLevel: account.KYCLevel,
		LastUpdated:       account.LastUpdated,
		DocumentsRequired: []string{},
		Status:            banking.StatusSuccess,
	})
}
