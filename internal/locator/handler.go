package locator

import (
	"net/http"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the branch and ATM locator endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type BranchLocatorRequest struct {
	BranchCity string `json:"branch_city" validate:"required,min=2,max=60"`
	Limit      int    `json:"limit" validate:"omitempty,min=1,max=10"`
}

type ATMLocatorRequest struct {
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
	Limit   int    `json:"limit" validate:"omitempty,min=1,max=10"`
}

type BranchLocatorResponse struct {
	Branches   []Branch       `json:"branches"`
	TotalCount int            `json:"total_count"`
	Status     banking.Status `json:"status"`
}

type ATMLocatorResponse struct {
	ATMs       []ATM          `json:"atms"`
	TotalCount int            `json:"total_count"`
	Status     banking.Status `json:"status"`
}

// HandleLocateBranches lists branches in a city.
func (h *Handler) HandleLocateBranches(c *gin.Context) {
	var req BranchLocatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = 3
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	branches, err := h.svc.Branches(c.Request.Context(), req.BranchCity, req.Limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, BranchLocatorResponse{
		Branches:   branches,
		TotalCount: len(branches),
		Status:     banking.StatusSuccess,
	})
}

// HandleLocateATMs lists ATMs in a pincode.
func (h *Handler) HandleLocateATMs(c *gin.Context) {
	var req ATMLocatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = 3
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	atms, err := h.svc.ATMs(c.Request.Context(), req.Pincode, req.Limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, ATMLocatorResponse{
		ATMs:       atms,
		TotalCount: len(atms),
		Status:     banking.StatusSuccess,
	})
}
