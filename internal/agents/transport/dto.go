// Package transport holds the wire shapes of the agents module.
package transport

import (
	"time"

	"bankwise_support_backend/internal/agents/directory"
	"bankwise_support_backend/internal/agents/service"
	"bankwise_support_backend/internal/shared/banking"
)

// EscalationRequest is the inbound escalation payload. Both fields are
// optional; urgency is informational only.
type EscalationRequest struct {
	Reason  string `json:"reason" validate:"omitempty,max=500"`
	Urgency string `json:"urgency" validate:"omitempty,oneof=low normal high critical"`
}

// AgentInfo is the public view of an agent.
type AgentInfo struct {
	AgentID                  string   `json:"agent_id"`
	FullName                 string   `json:"full_name"`
	Department               string   `json:"department"`
	Specialization           string   `json:"specialization"`
	LanguagesSpoken          []string `json:"languages_spoken"`
	YearsExperience          int      `json:"years_experience"`
	PerformanceRating        float64  `json:"performance_rating"`
	CustomerSatisfactionRate float64  `json:"customer_satisfaction_rate"`
	CurrentStatus            string   `json:"current_status"`
	IsAvailable              bool     `json:"is_available"`
	NextAvailableTime        *string  `json:"next_available_time"`
	AverageResponseTime      int      `json:"average_response_time"`
	ResolutionRate           float64  `json:"resolution_rate"`
	EscalationLevel          string   `json:"escalation_level"`
}

// EscalationResponse is the decision returned to the caller.
type EscalationResponse struct {
	EscalationID      string         `json:"escalation_id"`
	AgentInfo         *AgentInfo     `json:"agent_info"`
	EstimatedWaitTime int            `json:"estimated_wait_time"`
	QueuePosition     int            `json:"queue_position"`
	AlternativeAgents []AgentInfo    `json:"alternative_agents"`
	Status            banking.Status `json:"status"`
}

// StatusUpdateResponse acknowledges a status change.
type StatusUpdateResponse struct {
	Message string `json:"message"`
}

// AgentListResponse wraps an agent listing.
type AgentListResponse struct {
	Agents     []AgentInfo    `json:"agents"`
	TotalCount int            `json:"total_count"`
	Status     banking.Status `json:"status"`
}

// FromAgent converts a directory record to its public view.
func FromAgent(a directory.Agent) AgentInfo {
	var next *string
	if a.NextAvailableTime != nil {
		s := a.NextAvailableTime.Format(time.RFC3339)
		next = &s
	}
	return AgentInfo{
		AgentID:                  a.AgentID,
		FullName:                 a.FullName,
		Department:               a.Department,
		Specialization:           a.Specialization,
		LanguagesSpoken:          a.LanguagesSpoken,
		YearsExperience:          a.YearsExperience,
		PerformanceRating:        a.PerformanceRating,
		CustomerSatisfactionRate: a.CustomerSatisfactionRate,
		CurrentStatus:            string(a.CurrentStatus),
		IsAvailable:              a.IsAvailable,
		NextAvailableTime:        next,
		AverageResponseTime:      a.AverageResponseTime,
		ResolutionRate:           a.ResolutionRate,
		EscalationLevel:          a.EscalationLevel,
	}
}

// FromAgents converts a slice of directory records.
func FromAgents(agents []directory.Agent) []AgentInfo {
	out := make([]AgentInfo, 0, len(agents))
	for _, a := range agents {
		out = append(out, FromAgent(a))
	}
	return out
}

// FromDecision converts a selector decision to the wire shape.
func FromDecision(d service.Decision) EscalationResponse {
	resp := EscalationResponse{
		EscalationID:      d.EscalationID,
		EstimatedWaitTime: d.EstimatedWaitMins,
		QueuePosition:     d.QueuePosition,
		AlternativeAgents: FromAgents(d.Alternatives),
		Status:            banking.StatusSuccess,
	}
	if d.Agent != nil {
		info := FromAgent(*d.Agent)
		resp.AgentInfo = &info
	}
	if d.Status == service.DecisionQueued {
		resp.Status = banking.StatusPending
	}
	return resp
}
