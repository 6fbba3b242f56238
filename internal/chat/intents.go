// Package chat provides keyword based intent detection for the
// conversational channel. It stands in for a full NLU integration.
package chat

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Intent is a recognized conversational goal.
type Intent string

const (
	IntentAccountInfo     Intent = "account_info"
	IntentTxHistory       Intent = "tx_history"
	IntentCardBlock       Intent = "card_block"
	IntentRaiseDispute    Intent = "raise_dispute"
	IntentComplaintNew    Intent = "complaint_new"
	IntentComplaintStatus Intent = "complaint_status"
	IntentLocateBranch    Intent = "locate_branch"
	IntentLocateATM       Intent = "locate_atm"
	IntentKYCStatus       Intent = "kyc_status"
	IntentChequeStatus    Intent = "cheque_status"
	IntentFDRateInfo      Intent = "fd_rate_info"
	IntentLoanStatus      Intent = "loan_status"
	IntentSpeakToAgent    Intent = "speak_to_agent"
)

//go:embed intents.yaml
var intentTableYAML []byte

type intentRule struct {
	Intent   Intent   `yaml:"intent"`
	Keywords []string `yaml:"keywords"`
}

type intentTable struct {
	Rules   []intentRule `yaml:"rules"`
	Default Intent       `yaml:"default"`
}

func loadIntentTable() (intentTable, error) {
	var table intentTable
	if err := yaml.Unmarshal(intentTableYAML, &table); err != nil {
		return intentTable{}, fmt.Errorf("parse intent table: %w", err)
	}
	if len(table.Rules) == 0 || table.Default == "" {
		return intentTable{}, fmt.Errorf("intent table incomplete")
	}
	return table, nil
}

// detect returns the first rule whose keyword appears in the text, or the
// table default.
func (t intentTable) detect(text string) Intent {
	lowered := strings.ToLower(text)
	for _, rule := range t.Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Intent
			}
		}
	}
	return t.Default
}
