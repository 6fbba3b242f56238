package deposits

import (
	"net/http"
	"time"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the fixed deposit endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type FDRateInfoRequest struct {
	Tenure int `json:"tenure" validate:"omitempty,min=1,max=3650"`
}

type FDRateInfoResponse struct {
	Rates       []Rate         `json:"rates"`
	Currency    string         `json:"currency"`
	LastUpdated string         `json:"last_updated"`
	Status      banking.Status `json:"status"`
}

// HandleRates returns FD rate slabs, filtered by tenure when given.
func (h *Handler) HandleRates(c *gin.Context) {
	var req FDRateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	rates, err := h.svc.Rates(c.Request.Context(), req.Tenure)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, FDRateInfoResponse{
		Rates:       rates,
		Currency:    "INR",
		LastUpdated: time.Now().Format(time.RFC3339),
		Status:      banking.StatusSuccess,
	})
}
