package directory

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"bankwise_support_backend/internal/agents/policy"
)

var (
	agentFirstNames = []string{
		"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Anjali", "Rohit", "Kavita",
		"Suresh", "Meena", "Arun", "Pooja", "Vijay", "Neha", "Rajesh", "Swati",
		"Manish", "Divya", "Sanjay", "Rashmi", "Alok", "Kiran", "Deepak", "Shweta",
	}
	agentLastNames = []string{
		"Sharma", "Verma", "Gupta", "Agarwal", "Jain", "Joshi", "Patel", "Shah",
		"Singh", "Kumar", "Reddy", "Nair", "Menon", "Iyer", "Pillai", "Rao",
	}
	departments = []string{
		"Customer Service", "Card Services", "Loan Department",
		"Account Services", "Dispute Resolution", "Technical Support",
		"Priority Banking", "NRI Services", "Business Banking", "Wealth Management",
	}
	specializations = []string{
		"Account Queries", "Card Issues", "Loan Processing", "Transaction Disputes",
		"Technical Support", "KYC Verification", "Investment Services",
		"International Banking", "Business Accounts", "Premium Services",
	}
	languageSets = [][]string{
		{"English", "Hindi"}, {"English", "Hindi", "Bengali"},
		{"English", "Hindi", "Tamil"}, {"English", "Hindi", "Telugu"},
		{"English", "Hindi", "Marathi"}, {"English", "Hindi", "Gujarati"},
	}
	agentCities = []string{
		"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata",
		"Pune", "Ahmedabad", "Jaipur", "Lucknow",
	}
	skillsBySpecialization = map[string][]string{
		"Account Queries":      {"Account Management", "Statement Analysis", "Customer Communication"},
		"Card Issues":          {"Card Lifecycle", "Fraud Detection", "Limit Management"},
		"Loan Processing":      {"Credit Assessment", "EMI Restructuring", "Documentation"},
		"Transaction Disputes": {"Chargeback Handling", "Fraud Investigation", "Merchant Liaison"},
		"Technical Support":    {"Net Banking", "Mobile App Support", "Troubleshooting"},
	}
)

// Generate builds count agents with randomized profiles. Roughly the same
// proportions as the persisted snapshot the service ships with.
func Generate(count int, rng *rand.Rand, now time.Time) []Agent {
	agents := make([]Agent, 0, count)
	for i := 0; i < count; i++ {
		first := agentFirstNames[rng.Intn(len(agentFirstNames))]
		last := agentLastNames[rng.Intn(len(agentLastNames))]
		specialization := specializations[rng.Intn(len(specializations))]
		status := policy.AllStatuses[rng.Intn(len(policy.AllStatuses))]
		years := 1 + rng.Intn(15)
		shiftStart := []string{"06:00", "08:00", "10:00", "14:00", "16:00"}[rng.Intn(5)]

		skills, ok := skillsBySpecialization[specialization]
		if !ok {
			skills = []string{"General Banking", "Customer Communication"}
		}

		var teamLead *string
		if rng.Float64() > 0.7 {
			l := fmt.Sprintf("AGENT%d", 1000+rng.Intn(9000))
			teamLead = &l
		}

		agent := Agent{
			AgentID:                  fmt.Sprintf("AGENT%d", 1000+rng.Intn(9000)),
			EmployeeID:               fmt.Sprintf("EMP%d", 10000+rng.Intn(90000)),
			FirstName:                first,
			LastName:                 last,
			FullName:                 first + " " + last,
			Email:                    strings.ToLower(first) + "." + strings.ToLower(last) + "@bankwise.com",
			Phone:                    fmt.Sprintf("+91%d", 7000000000+rng.Int63n(3000000000)),
			Department:               departments[rng.Intn(len(departments))],
			Specialization:           specialization,
			LanguagesSpoken:          languageSets[rng.Intn(len(languageSets))],
			YearsExperience:          years,
			PerformanceRating:        roundTo1(3.5 + rng.Float64()*1.5),
			CasesHandled:             500 + rng.Intn(4500),
			CustomerSatisfactionRate: roundTo1(85 + rng.Float64()*13),
			ShiftStart:               shiftStart,
			ShiftEnd:                 shiftEnd(shiftStart),
			WorkingDays:              []string{"Mon-Fri", "Mon-Sat", "Tue-Sun", "Wed-Sun"}[rng.Intn(4)],
			BaseCity:                 agentCities[rng.Intn(len(agentCities))],
			WorkMode:                 []string{"Office", "Hybrid", "Remote"}[rng.Intn(3)],
			CurrentStatus:            status,
			IsAvailable:              policy.IsAvailable(status),
			Skills:                   skills,
			Certifications:           []string{"Banking Operations", "Customer Excellence"},
			JoinDate:                 now.AddDate(0, 0, -years*365).Format(time.RFC3339),
			LastTrainingDate:         now.AddDate(0, 0, -(1 + rng.Intn(90))).Format(time.RFC3339),
			AverageResponseTime:      30 + rng.Intn(91),
			ResolutionRate:           roundTo1(85 + rng.Float64()*14),
			EscalationLevel:          []string{"L1", "L2", "L3"}[rng.Intn(3)],
			TeamLead:                 teamLead,
		}
		if t, ok := policy.NextAvailableTime(status, now, policy.NewRandomSampler(rng.Int63())); ok {
			agent.NextAvailableTime = &t
		}
		agents = append(agents, agent)
	}
	return agents
}

// GenerateMinimal builds the deterministic 10-agent fallback set: the first
// five Available, the rest Busy.
func GenerateMinimal(rng *rand.Rand, now time.Time) []Agent {
	agents := make([]Agent, 0, 10)
	for i := 0; i < 10; i++ {
		status := policy.StatusBusy
		if i < 5 {
			status = policy.StatusAvailable
		}
		agent := Agent{
			AgentID:                  fmt.Sprintf("AGENT%d", 1000+i),
			EmployeeID:               fmt.Sprintf("EMP%d", 10000+i),
			FullName:                 "Agent " + strconv.Itoa(i+1),
			Department:               "Customer Service",
			Specialization:           "General Banking",
			LanguagesSpoken:          []string{"English", "Hindi"},
			YearsExperience:          1 + rng.Intn(10),
			PerformanceRating:        roundTo1(3.5 + rng.Float64()*1.5),
			CustomerSatisfactionRate: roundTo1(85 + rng.Float64()*13),
			CurrentStatus:            status,
			IsAvailable:              policy.IsAvailable(status),
			AverageResponseTime:      30 + rng.Intn(91),
			ResolutionRate:           roundTo1(85 + rng.Float64()*14),
			EscalationLevel:          "L1",
		}
		if t, ok := policy.NextAvailableTime(status, now, policy.NewRandomSampler(rng.Int63())); ok {
			agent.NextAvailableTime = &t
		}
		agents = append(agents, agent)
	}
	return agents
}

func shiftEnd(start string) string {
	h, err := strconv.Atoi(strings.SplitN(start, ":", 2)[0])
	if err != nil {
		return "17:00"
	}
	return fmt.Sprintf("%02d:00", (h+9)%24)
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
