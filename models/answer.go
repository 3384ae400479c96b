package models

import (
	"encoding/json"
	"fmt"
)

// TrafficLight is the three-level risk indicator, ordered green < yellow < red.
type TrafficLight string

const (
	LightGreen  TrafficLight = "green"
	LightYellow TrafficLight = "yellow"
	LightRed    TrafficLight = "red"
)

// Severity returns the light's position in the green < yellow < red order,
// or -1 for an unknown value.
func (t TrafficLight) Severity() int {
	switch t {
	case LightGreen:
		return 0
	case LightYellow:
		return 1
	case LightRed:
		return 2
	}
	return -1
}

// Valid reports whether t is one of the three known lights.
func (t TrafficLight) Valid() bool {
	return t.Severity() >= 0
}

// SourceItem is one cited source shown alongside an answer.
type SourceItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	WhyRelevant string `json:"why_relevant"`
}

// Answer is the structured advisory reply every provider must produce.
type Answer struct {
	TrafficLight        TrafficLight `json:"traffic_light"`
	RiskScore           int          `json:"risk_score"`
	Summary             string       `json:"summary"`
	WhatToDoNow         []string     `json:"what_to_do_now"`
	WhatToPrepare       []string     `json:"what_to_prepare"`
	RelevantLaws        []string     `json:"relevant_laws"`
	ImportantDeadlines  []string     `json:"important_deadlines"`
	WhenToContactLawyer []string     `json:"when_to_contact_lawyer"`
	Notes               []string     `json:"notes"`
	Sources             []SourceItem `json:"sources"`
}

// Validate checks the schema constraints and normalizes nil lists to empty
// ones, so callers never see a partially-typed answer.
func (a *Answer) Validate() error {
	if !a.TrafficLight.Valid() {
		return fmt.Errorf("invalid traffic_light %q", a.TrafficLight)
	}
	if a.RiskScore < 0 || a.RiskScore > 100 {
		return fmt.Errorf("risk_score %d out of range [0,100]", a.RiskScore)
	}
	if a.WhatToDoNow == nil {
		a.WhatToDoNow = []string{}
	}
	if a.WhatToPrepare == nil {
		a.WhatToPrepare = []string{}
	}
	if a.RelevantLaws == nil {
		a.RelevantLaws = []string{}
	}
	if a.ImportantDeadlines == nil {
		a.ImportantDeadlines = []string{}
	}
	if a.WhenToContactLawyer == nil {
		a.WhenToContactLawyer = []string{}
	}
	if a.Notes == nil {
		a.Notes = []string{}
	}
	if a.Sources == nil {
		a.Sources = []SourceItem{}
	}
	return nil
}

// ParseAnswer unmarshals and validates a provider JSON payload.
func ParseAnswer(data []byte) (*Answer, error) {
	var a Answer
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse answer JSON: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}
