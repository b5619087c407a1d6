package models

import (
	"encoding/json"
)

// AdviceStatus represents the outcome of a classification request
type AdviceStatus string

const (
	AdviceStatusUnclear AdviceStatus = "unclear"
	AdviceStatusSuccess AdviceStatus = "success"
)

// Advice is the structured response to a description of a dispute.
// An unclear advice only carries Message and Suggestions; a resolved
// advice carries the remaining lists.
type Advice struct {
	Status AdviceStatus `json:"status"`

	// Unclear
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`

	// Resolved
	IssuesIdentified []string    `json:"issues_identified"`
	LegalSections    []Issue     `json:"legal_sections"`
	Precedents       []Precedent `json:"precedents"`
	Recommendations  []string    `json:"recommendations"`
	NextSteps        []string    `json:"next_steps"`
}

// IsUnclear reports whether no issue was identified
func (a Advice) IsUnclear() bool {
	return a.Status == AdviceStatusUnclear
}

type unclearAdvice struct {
	Status      AdviceStatus `json:"status"`
	Message     string       `json:"message"`
	Suggestions []string     `json:"suggestions"`
}

type resolvedAdvice struct {
	Status           AdviceStatus `json:"status"`
	IssuesIdentified []string     `json:"issues_identified"`
	LegalSections    []Issue      `json:"legal_sections"`
	Precedents       []Precedent  `json:"precedents"`
	Recommendations  []string     `json:"recommendations"`
	NextSteps        []string     `json:"next_steps"`
}

// MarshalJSON emits exactly one of the two advice shapes
func (a Advice) MarshalJSON() ([]byte, error) {
	if a.IsUnclear() {
		return json.Marshal(unclearAdvice{
			Status:      a.Status,
			Message:     a.Message,
			Suggestions: nonNil(a.Suggestions),
		})
	}

	precedents := a.Precedents
	if precedents == nil {
		precedents = []Precedent{}
	}
	sections := a.LegalSections
	if sections == nil {
		sections = []Issue{}
	}

	return json.Marshal(resolvedAdvice{
		Status:           a.Status,
		IssuesIdentified: nonNil(a.IssuesIdentified),
		LegalSections:    sections,
		Precedents:       precedents,
		Recommendations:  nonNil(a.Recommendations),
		NextSteps:        nonNil(a.NextSteps),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
