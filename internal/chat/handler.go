package chat

import (
	"net/http"

	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the intent detection endpoint.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type IntentRequest struct {
	Text      string `json:"text" validate:"required,max=1000"`
	SessionID string `json:"session_id"`
}

// HandleIntent classifies free text into a banking intent.
func (h *Handler) HandleIntent(c *gin.Context) {
	var req IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	resp, err := h.svc.Process(c.Request.Context(), req.Text, req.SessionID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
