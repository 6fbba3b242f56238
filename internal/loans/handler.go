package loans

import (
	"net/http"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the loan endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type LoanStatusRequest struct {
	LoanID string `json:"loan_id" validate:"required,startswith=LN"`
}

type LoanStatusResponse struct {
	LoanInfo        Loan           `json:"loan_info"`
	NextPaymentDate string         `json:"next_payment_date"`
	Status          banking.Status `json:"status"`
}

// HandleStatus returns the repayment state of a loan.
func (h *Handler) HandleStatus(c *gin.Context) {
	var req LoanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	loan, err := h.svc.ByID(c.Request.Context(), req.LoanID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, LoanStatusResponse{
		LoanInfo:        loan,
		NextPaymentDate: loan.DueDate,
		Status:          banking.StatusSuccess,
	})
}
