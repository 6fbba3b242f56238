package cards

import (
	"net/http"
	"time"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the card block endpoint.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type CardBlockRequest struct {
	Last4 string `json:"last4" validate:"required,len=4,numeric"`
}

type CardBlockResponse struct {
	CardNumber string         `json:"card_number"`
	Content    string         `json:"content"`
	BlockedAt  string         `json:"blocked_at"`
	TicketID   string         `json:"ticket_id"`
	Status     banking.Status `json:"status"`
}

// HandleBlock blocks every card ending in the given four digits.
func (h *Handler) HandleBlock(c *gin.Context) {
	var req CardBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	result, err := h.svc.Block(c.Request.Context(), req.Last4)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, CardBlockResponse{
		CardNumber: banking.MaskCard(result.Last4),
		Content:    "BLOCKED",
		BlockedAt:  result.BlockedAt.Format(time.RFC3339),
		TicketID:   result.TicketID,
		Status:     banking.StatusSuccess,
	})
}
