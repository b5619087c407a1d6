package advisor

import (
	"strings"

	"advocate-backend/models"
)

const unclearMessage = "I need more information to provide specific legal advice. Could you please describe your legal issue in more detail?"

var unclearSuggestions = []string{
	"Try rephrasing your question with more specific details",
	"Include information about what happened, when, and where",
	"Mention any relevant people or organizations involved",
	"Describe the impact or consequences you're facing",
}

var recommendations = []string{
	"Consult with a qualified lawyer for detailed legal advice",
	"Gather all relevant documents and evidence",
	"Document the incident with dates, times, and witnesses",
	"Consider alternative dispute resolution methods like mediation",
}

// nextStepBranch selects a step list when any matched issue contains one
// of its markers. Branches are evaluated in order; the first hit wins.
type nextStepBranch struct {
	name    string
	markers []string
	steps   []string
}

var nextStepBranches = []nextStepBranch{
	{
		name:    "theft",
		markers: []string{"theft", "robbery"},
		steps: []string{
			"File an FIR at the nearest police station immediately",
			"Preserve any evidence related to the incident",
			"Inform your insurance company if applicable",
			"Keep copies of all police reports and documents",
		},
	},
	{
		name:    "domestic",
		markers: []string{"domestic"},
		steps: []string{
			"Contact local women's helpline or domestic violence support",
			"Document all incidents with dates and details",
			"Consider filing a complaint under Protection of Women from Domestic Violence Act",
			"Seek immediate help if in danger",
		},
	},
	{
		name:    "cyber",
		markers: []string{"cyber", "online"},
		steps: []string{
			"Take screenshots of all relevant online content",
			"Report the incident to the cyber crime cell",
			"Change passwords and secure your accounts",
			"File a complaint with the platform where the incident occurred",
		},
	},
}

var genericNextSteps = []string{
	"Document all relevant facts and evidence",
	"Consider sending a legal notice if appropriate",
	"Explore mediation or negotiation options",
	"Prepare for potential legal proceedings",
}

// Composer assembles advice for a list of classified issues
type Composer struct {
	store *ReferenceStore
}

// NewComposer creates a composer backed by the reference store
func NewComposer(store *ReferenceStore) *Composer {
	return &Composer{store: store}
}

// Compose builds the advice for issues. An empty list yields the unclear
// response; identifiers missing from the store are skipped.
func (c *Composer) Compose(issues []string) models.Advice {
	if len(issues) == 0 {
		return models.Advice{
			Status:      models.AdviceStatusUnclear,
			Message:     unclearMessage,
			Suggestions: clone(unclearSuggestions),
		}
	}

	advice := models.Advice{
		Status:           models.AdviceStatusSuccess,
		IssuesIdentified: clone(issues),
		LegalSections:    []models.Issue{},
		Precedents:       []models.Precedent{},
		Recommendations:  clone(recommendations),
		NextSteps:        nextSteps(issues),
	}

	for _, id := range issues {
		if issue, ok := c.store.Issue(id); ok {
			advice.LegalSections = append(advice.LegalSections, issue)
		}
		advice.Precedents = append(advice.Precedents, c.store.Precedents(id)...)
	}

	return advice
}

func nextSteps(issues []string) []string {
	for _, branch := range nextStepBranches {
		if anyContains(issues, branch.markers) {
			return clone(branch.steps)
		}
	}
	return clone(genericNextSteps)
}

func anyContains(issues, markers []string) bool {
	for _, issue := range issues {
		for _, marker := range markers {
			if strings.Contains(issue, marker) {
				return true
			}
		}
	}
	return false
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
