// Package directory owns the authoritative in-memory set of support agents.
// The set is loaded from a JSON snapshot at start (or generated when the
// snapshot is missing or unreadable) and written back whole after every
// status mutation.
package directory

import (
	"time"

	"bankwise_support_backend/internal/agents/policy"
)

// Agent is a support-staff identity with its operational state. Identity
// and schedule fields are immutable after creation; only the status block
// changes at runtime.
type Agent struct {
	AgentID                  string        `json:"agent_id"`
	EmployeeID               string        `json:"employee_id"`
	FirstName                string        `json:"first_name"`
	LastName                 string        `json:"last_name"`
	FullName                 string        `json:"full_name"`
	Email                    string        `json:"email"`
	Phone                    string        `json:"phone"`
	Department               string        `json:"department"`
	Specialization           string        `json:"specialization"`
	LanguagesSpoken          []string      `json:"languages_spoken"`
	YearsExperience          int           `json:"years_experience"`
	PerformanceRating        float64       `json:"performance_rating"`
	CasesHandled             int           `json:"cases_handled"`
	CustomerSatisfactionRate float64       `json:"customer_satisfaction_rate"`
	ShiftStart               string        `json:"shift_start"`
	ShiftEnd                 string        `json:"shift_end"`
	WorkingDays              string        `json:"working_days"`
	BaseCity                 string        `json:"base_city"`
	WorkMode                 string        `json:"work_mode"`
	CurrentStatus            policy.Status `json:"current_status"`
	IsAvailable              bool          `json:"is_available"`
	Skills                   []string      `json:"skills"`
	Certifications           []string      `json:"certifications"`
	JoinDate                 string        `json:"join_date"`
	LastTrainingDate         string        `json:"last_training_date"`
	NextAvailableTime        *time.Time    `json:"next_available_time"`
	AverageResponseTime      int           `json:"average_response_time"`
	ResolutionRate           float64       `json:"resolution_rate"`
	EscalationLevel          string        `json:"escalation_level"`
	TeamLead                 *string       `json:"team_lead"`
}

// PerformanceScore implements policy.Scored.
func (a Agent) PerformanceScore() float64 { return a.PerformanceRating }

// SatisfactionScore implements policy.Scored.
func (a Agent) SatisfactionScore() float64 { return a.CustomerSatisfactionRate }
