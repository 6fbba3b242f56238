package complaints

import (
	"net/http"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the complaint endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type ComplaintRequest struct {
	AccountNumber string `json:"account_number" validate:"required,min=6,max=20,numeric"`
	Subject       string `json:"subject" validate:"required,min=3,max=200"`
	Description   string `json:"description" validate:"required,min=3,max=2000"`
	Category      string `json:"category" validate:"required,min=2,max=30"`
}

type ComplaintStatusRequest struct {
	TicketID string `json:"ticket_id" validate:"required,startswith=COMPLAINT"`
}

type ComplaintResponse struct {
	Complaint Complaint      `json:"complaint"`
	Status    banking.Status `json:"status"`
}

// HandleNew files a new complaint ticket.
func (h *Handler) HandleNew(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	complaint, err := h.svc.File(c.Request.Context(), req.AccountNumber, req.Subject, req.Description, req.Category)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, ComplaintResponse{Complaint: complaint, Status: banking.StatusSuccess})
}

// HandleStatus returns the current state of a ticket.
func (h *Handler) HandleStatus(c *gin.Context) {
	var req ComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	complaint, err := h.svc.StatusByTicket(c.Request.Context(), req.TicketID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, ComplaintResponse{Complaint: complaint, Status: banking.StatusSuccess})
}
