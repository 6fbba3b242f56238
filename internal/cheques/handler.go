package cheques

import (
	"net/http"

	"bankwise_support_backend/internal/shared/banking"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the cheque endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

type ChequeStatusRequest struct {
	ChequeNumber string `json:"cheque_number" validate:"required,len=6,numeric"`
}

type ChequeTrackingRequest struct {
	ChequeNumber  string `json:"cheque_number" validate:"required,len=6,numeric"`
	AccountNumber string `json:"account_number" validate:"required,min=6,max=20,numeric"`
}

type ChequeStatusResponse struct {
	ChequeNumber string         `json:"cheque_number"`
	Content      string         `json:"content"`
	Amount       float64        `json:"amount"`
	Date         string         `json:"date"`
	ClearingDate *string        `json:"clearing_date"`
	Status       banking.Status `json:"status"`
}

type ChequeTrackingResponse struct {
	ChequeNumber         string          `json:"cheque_number"`
	Content              string          `json:"content"`
	Amount               float64         `json:"amount"`
	Date                 string          `json:"date"`
	ClearingDate         *string         `json:"clearing_date"`
	CurrentLocation      string          `json:"current_location"`
	ExpectedClearingDate string          `json:"expected_clearing_date"`
	Issuer               string          `json:"issuer"`
	Payee                string          `json:"payee"`
	TrackingEvents       []TrackingEvent `json:"tracking_events"`
	Status               banking.Status  `json:"status"`
}

// HandleStatus returns the clearing state of a cheque.
func (h *Handler) HandleStatus(c *gin.Context) {
	var req ChequeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	cheque, err := h.svc.ByNumber(c.Request.Context(), req.ChequeNumber)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, ChequeStatusResponse{
		ChequeNumber: cheque.ChequeNumber,
		Content:      cheque.Content,
		Amount:       cheque.Amount,
		Date:         cheque.IssueDate,
		ClearingDate: cheque.ClearingDate,
		Status:       banking.StatusSuccess,
	})
}

// HandleTrack returns the cheque's journey with synthesized events.
func (h *Handler) HandleTrack(c *gin.Context) {
	var req ChequeTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	cheque, events, err := h.svc.Track(c.Request.Context(), req.ChequeNumber, req.AccountNumber)
	if httpkit.HandleError(c, err) {
		return
	}

	currentLocation := "Unknown"
	if len(events) > 0 {
		currentLocation = events[0].Location
	}
	expectedClearing := "Not available"
	if cheque.ClearingDate != nil {
		expectedClearing = *cheque.ClearingDate
	}

	httpkit.OK(c, ChequeTrackingResponse{
		ChequeNumber:         cheque.ChequeNumber,
		Content:              cheque.Content,
		Amount:               cheque.Amount,
		Date:                 cheque.IssueDate,
		ClearingDate:         cheque.ClearingDate,
		CurrentLocation:      currentLocation,
		ExpectedClearingDate: expectedClearing,
		Issuer:               cheque.AccountNumber,
		Payee:                cheque.PayeeName,
		TrackingEvents:       events,
		Status:               banking.StatusSuccess,
	})
}
