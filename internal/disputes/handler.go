package disputes

import (
	"net/http"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the dispute endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type DisputeRequest struct {
	AccountNumber   string  `json:"account_number" validate:"required,min=6,max=20,numeric"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	TransactionDate string  `json:"transaction_date" validate:"required"`
	Reason          string  `json:"reason" validate:"required,min=3,max=500"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
}

type DisputeResponse struct {
	TicketID                string         `json:"ticket_id"`
	Content                 string         `json:"content"`
	Amount                  float64        `json:"amount"`
	EstimatedResolutionDays int            `json:"estimated_resolution_days"`
	Status                  banking.Status `json:"status"`
}

type UpdateStatusResponse struct {
	TicketID string `json:"ticket_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
	Success  bool   `json:"success"`
}

// HandleRaise opens a new dispute ticket.
func (h *Handler) HandleRaise(c *gin.Context) {
	var req DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	result, err := h.svc.Raise(c.Request.Context(), req.AccountNumber, req.Amount, req.TransactionDate, req.Reason, req.Description)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, DisputeResponse{
		TicketID:                result.TicketID,
		Content:                 "UNDER_REVIEW",
		Amount:                  result.Amount,
		EstimatedResolutionDays: result.EstimatedResolutionDays,
		Status:                  banking.StatusSuccess,
	})
}

// HandleUpdateStatus moves a ticket to a new status. Ticket and status come
// in as query parameters.
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	ticketID := c.Query("ticket_id")
	newStatus := c.Query("new_status")
	if ticketID == "" || newStatus == "" {
		httpkit.Error(c, http.StatusBadRequest, "ticket_id and new_status are required", nil)
		return
	}

	result, err := h.svc.UpdateStatus(c.Request.Context(), ticketID, newStatus)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, UpdateStatusResponse{
		TicketID: result.TicketID,
		Status:   result.Status,
		Message:  "Dispute status updated to " + result.Status,
		Success:  true,
	})
}
