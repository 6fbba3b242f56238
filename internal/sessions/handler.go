package sessions

import (
	"encoding/json"
	"net/http"

	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the accessibility endpoint backed by the session store.
type Handler struct {
	store Store
	val   *validator.Validator
}

func NewHandler(store Store, val *validator.Validator) *Handler {
	return &Handler{store: store, val: val}
}

const (
	ActionSlowerSpeech     = "slower_speech"
	ActionRepeatLastAnswer = "repeat_last_answer"
)

type AccessibilityRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Action    string `json:"action" validate:"required"`
}

type AccessibilityResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// HandleAccessibility serves speech pacing and repeat requests for one
// session.
func (h *Handler) HandleAccessibility(c *gin.Context) {
	var req AccessibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	switch req.Action {
	case ActionSlowerSpeech:
		// A voice channel would adjust TTS pacing here. The chat demo
		// acknowledges the request.
		httpkit.OK(c, AccessibilityResponse{
			Status:  "success",
			Message: "I will speak slower.",
			Data:    map[string]any{},
		})

	case ActionRepeatLastAnswer:
		session, err := h.store.Get(c.Request.Context(), req.SessionID)
		if httpkit.HandleError(c, err) {
			return
		}

		if len(session.LastResponse) == 0 {
			httpkit.OK(c, AccessibilityResponse{
				Status:  "success",
				Message: "There is no previous message to repeat.",
				Data:    map[string]any{},
			})
			return
		}

		var data map[string]any
		if err := json.Unmarshal(session.LastResponse, &data); err != nil {
			data = map[string]any{}
		}
		httpkit.OK(c, AccessibilityResponse{
			Status:  "success",
			Message: "Here is the last message again.",
			Data:    data,
		})

	default:
		httpkit.Error(c, http.StatusBadRequest, "Invalid accessibility action", nil)
	}
}
