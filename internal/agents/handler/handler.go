// Package handler exposes the agent directory and escalation endpoints.
package handler

import (
	"net/http"
	"strconv"

	"bankwise_support_backend/internal/agents/service"
	"bankwise_support_backend/internal/agents/transport"
	"bankwise_support_backend/platform/httpkit"
	"bankwise_support_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler serves the agents module routes.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// HandleEscalate assigns a human agent for the request, or queues it on the
// soonest-available agent.
func (h *Handler) HandleEscalate(c *gin.Context) {
	var req transport.EscalationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	decision, err := h.svc.Escalate(c.Request.Context(), req.Reason, req.Urgency)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.FromDecision(decision))
}

// HandleAvailable lists available agents ranked best first.
func (h *Handler) HandleAvailable(c *gin.Context) {
	specialization := c.Query("specialization")
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 25 {
			httpkit.Error(c, http.StatusBadRequest, "limit must be an integer between 1 and 25", nil)
			return
		}
		limit = v
	}

	agents := h.svc.AvailableAgents(specialization, limit)
	httpkit.OK(c, transport.AgentListResponse{
		Agents:     transport.FromAgents(agents),
		TotalCount: len(agents),
		Status:     "success",
	})
}

// HandleAgentByID returns one agent.
func (h *Handler) HandleAgentByID(c *gin.Context) {
	agent, err := h.svc.AgentByID(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.FromAgent(agent))
}

// HandleUpdateStatus moves an agent to the status named in the query.
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		httpkit.Error(c, http.StatusBadRequest, "status query parameter is required", nil)
		return
	}

	if err := h.svc.UpdateStatus(c.Param("id"), status); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.StatusUpdateResponse{
		Message: "Agent status updated to " + status,
	})
}

// HandleStatistics returns the aggregate directory view.
func (h *Handler) HandleStatistics(c *gin.Context) {
	httpkit.OK(c, h.svc.Statistics())
}
