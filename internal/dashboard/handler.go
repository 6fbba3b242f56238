package dashboard

import (
	"time"

	"bankwise_support_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the dashboard data endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleData serves one dataset for the operations dashboard.
func (h *Handler) HandleData(c *gin.Context) {
	source := c.DefaultQuery("source", "mock")
	dataType := c.DefaultQuery("data_type", "accounts")

	data, count := h.svc.Data(c.Request.Context(), source, dataType)
	httpkit.OK(c, gin.H{
		"data":      data,
		"data_type": dataType,
		"source":    source,
		"timestamp": time.Now().Format(time.RFC3339),
		"count":     count,
	})
}
