package sms

import (
	"fmt"
	"net/http"

	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/sanitize"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the outbound SMS endpoints.
type Handler struct {
	svc   *Service
	store *mockdata.Store
	val   *validator.Validator
}

func NewHandler(svc *Service, store *mockdata.Store, val *validator.Validator) *Handler {
	return &Handler{svc: svc, store: store, val: val}
}

type TransactionAlertRequest struct {
	AccountNumber   string  `json:"account_number" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	TransactionType string  `json:"transaction_type" validate:"required"`
	Description     string  `json:"description"`
}

type GeneralSMSRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	Message       string `json:"message" validate:"required,max=1000"`
}

type SMSResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	SentTo        []string       `json:"sent_to"`
	FailedNumbers []string       `json:"failed_numbers"`
	Status        banking.Status `json:"status"`
}

// mobileNumbers resolves the account and rejects requests the channel
// cannot serve before any delivery is attempted.
func (h *Handler) mobileNumbers(c *gin.Context, accountNumber string) ([]string, string, bool) {
	account, ok := h.store.AccountByNumber(accountNumber)
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "Account not found", nil)
		return nil, "", false
	}
	if len(account.MobileNumbers) == 0 {
		httpkit.Error(c, http.StatusBadRequest, "No mobile numbers registered for this account", nil)
		return nil, "", false
	}
	if !h.svc.Enabled() {
		httpkit.Error(c, http.StatusServiceUnavailable, "SMS service not available", nil)
		return nil, "", false
	}
	return account.MobileNumbers, account.CustomerName, true
}

func smsResponse(result BulkResult, sentMessage, failedMessage string) SMSResponse {
	sentTo := make([]string, 0, len(result.SuccessfulSends))
	for _, send := range result.SuccessfulSends {
		sentTo = append(sentTo, send.PhoneNumber)
	}
	failed := make([]string, 0, len(result.FailedSends))
	for _, send := range result.FailedSends {
		failed = append(failed, send.PhoneNumber)
	}

	resp := SMSResponse{
		Success:       result.Success,
		SentTo:        sentTo,
		FailedNumbers: failed,
	}
	if result.Success {
		resp.Message = fmt.Sprintf(sentMessage, len(sentTo))
		resp.Status = banking.StatusSuccess
	} else {
		resp.Message = failedMessage
		resp.Status = banking.StatusFailed
	}
	return resp
}

// HandleTransactionAlert sends a transaction alert to every mobile number
// registered on the account.
func (h *Handler) HandleTransactionAlert(c *gin.Context) {
	var req TransactionAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	numbers, customerName, ok := h.mobileNumbers(c, req.AccountNumber)
	if !ok {
		return
	}

	message := TransactionAlert(customerName, req.Amount, req.TransactionType)
	if req.Description != "" {
		message += " Description: " + sanitize.Text(req.Description)
	}

	result := h.svc.SendBulk(c.Request.Context(), numbers, message)
	httpkit.OK(c, smsResponse(result,
		"Transaction alert sent to %d numbers",
		"Failed to send transaction alert"))
}

// HandleSend sends a free-form message to every mobile number registered on
// the account.
func (h *Handler) HandleSend(c *gin.Context) {
	var req GeneralSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	numbers, _, ok := h.mobileNumbers(c, req.AccountNumber)
	if !ok {
		return
	}

	result := h.svc.SendBulk(c.Request.Context(), numbers, sanitize.Text(req.Message))
	httpkit.OK(c, smsResponse(result,
		"SMS sent to %d numbers",
		"Failed to send SMS"))
}

// HandleStatus reports whether the real SMS channel is configured.
func (h *Handler) HandleStatus(c *gin.Context) {
	status := "inactive"
	if h.svc.Enabled() {
		status = "active"
	}
	httpkit.OK(c, gin.H{
		"enabled": h.svc.Enabled(),
		"service": "Twilio SMS",
		"status":  status,
	})
}
