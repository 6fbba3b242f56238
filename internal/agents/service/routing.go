package service

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed specializations.yaml
var specializationRulesYAML []byte

type routingRule struct {
	Specialization string   `yaml:"specialization"`
	Keywords       []string `yaml:"keywords"`
}

type routingTable struct {
	Rules []routingRule `yaml:"rules"`
}

// loadRoutingTable parses the embedded keyword table.
func loadRoutingTable() (routingTable, error) {
	var table routingTable
	if err := yaml.Unmarshal(specializationRulesYAML, &table); err != nil {
		return routingTable{}, fmt.Errorf("parse specialization rules: %w", err)
	}
	return table, nil
}

// DeriveSpecialization maps a free-text reason to a specialization via the
// routing table. Keywords match whole words only, case-insensitively, first
// rule wins; no match or empty reason returns the empty string
// (unconstrained search).
func (t routingTable) DeriveSpecialization(reason string) string {
	words := reasonWords(reason)
	if len(words) == 0 {
		return ""
	}
	for _, rule := range t.Rules {
		for _, keyword := range rule.Keywords {
			if words[keyword] {
				return rule.Specialization
			}
		}
	}
	return ""
}

// reasonWords splits the reason into a lowercase word set, dropping
// punctuation so "card." still matches the "card" keyword.
func reasonWords(reason string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(reason), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}
