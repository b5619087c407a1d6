package advisor

import (
	"testing"

	"advocate-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sections(advice models.Advice) []string {
	out := make([]string, 0, len(advice.LegalSections))
	for _, s := range advice.LegalSections {
		out = append(out, s.Section)
	}
	return out
}

func TestCompose_Unclear(t *testing.T) {
	a := newTestAdvisor(t)

	advice := a.Advise("hello there")

	assert.True(t, advice.IsUnclear())
	assert.Equal(t, unclearMessage, advice.Message)
	assert.Equal(t, unclearSuggestions, advice.Suggestions)
	assert.Empty(t, advice.IssuesIdentified)
	assert.Empty(t, advice.LegalSections)
}

func TestCompose_NeighborNoise(t *testing.T) {
	a := newTestAdvisor(t)

	advice := a.Advise("my neighbor plays loud music all night")

	assert.Equal(t, models.AdviceStatusSuccess, advice.Status)
	assert.Equal(t, []string{"nuisance", "trespass"}, advice.IssuesIdentified)
	assert.Equal(t, []string{"Section 268", "Section 441"}, sections(advice))
	assert.Empty(t, advice.Precedents)
	assert.Equal(t, genericNextSteps, advice.NextSteps)
	assert.Equal(t, recommendations, advice.Recommendations)
}

func TestCompose_TheftIncludesSection378AndPrecedents(t *testing.T) {
	a := newTestAdvisor(t)

	advice := a.Advise("someone stole my phone")

	assert.Equal(t, []string{"theft", "robbery"}, advice.IssuesIdentified)
	assert.Equal(t, []string{"Section 378", "Section 390"}, sections(advice))
	require.Len(t, advice.Precedents, 2)
	assert.Equal(t, "State of Maharashtra vs. Vishwanath", advice.Precedents[0].Case)
	assert.Equal(t, "K.N. Mehra vs. State of Rajasthan", advice.Precedents[1].Case)
	assert.Equal(t, nextStepBranches[0].steps, advice.NextSteps)
}

func TestCompose_PrecedentsFollowIssueOrder(t *testing.T) {
	a := newTestAdvisor(t)

	advice := a.Compose([]string{"cyber crime", "assault", "theft"})

	require.Len(t, advice.Precedents, 4)
	assert.Equal(t, "Shreya Singhal vs. Union of India", advice.Precedents[0].Case)
	assert.Equal(t, "Ramesh Kumar vs. State of UP", advice.Precedents[1].Case)
	assert.Equal(t, "State of Maharashtra vs. Vishwanath", advice.Precedents[2].Case)
	assert.Equal(t, "K.N. Mehra vs. State of Rajasthan", advice.Precedents[3].Case)
}

func TestCompose_TheftBeatsDomestic(t *testing.T) {
	a := newTestAdvisor(t)

	// domestic keyword appears first in the text, theft branch still wins
	advice := a.Advise("my husband stole my savings")

	assert.Contains(t, advice.IssuesIdentified, "domestic violence")
	assert.Equal(t, nextStepBranches[0].steps, advice.NextSteps)

	advice = a.Compose([]string{"domestic violence", "robbery"})
	assert.Equal(t, nextStepBranches[0].steps, advice.NextSteps)
}

func TestCompose_NextStepBranches(t *testing.T) {
	a := newTestAdvisor(t)

	tests := []struct {
		name   string
		issues []string
		want   []string
	}{
		{"wage theft counts as theft", []string{"wage theft"}, nextStepBranches[0].steps},
		{"domestic", []string{"assault", "domestic violence"}, nextStepBranches[1].steps},
		{"domestic over cyber", []string{"cyber crime", "domestic violence"}, nextStepBranches[1].steps},
		{"cyber", []string{"cyber crime"}, nextStepBranches[2].steps},
		{"online", []string{"fraud", "online fraud"}, nextStepBranches[2].steps},
		{"generic", []string{"defamation"}, genericNextSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Compose(tt.issues).NextSteps)
		})
	}
}

func TestCompose_SkipsUnknownIssue(t *testing.T) {
	a := newTestAdvisor(t)

	advice := a.Compose([]string{"jaywalking", "fraud"})

	assert.Equal(t, []string{"jaywalking", "fraud"}, advice.IssuesIdentified)
	assert.Equal(t, []string{"Section 420"}, sections(advice))
}

func TestCompose_ReturnedListsAreIndependent(t *testing.T) {
	a := newTestAdvisor(t)

	first := a.Compose([]string{"fraud"})
	first.Recommendations[0] = "changed"
	first.NextSteps[0] = "changed"

	second := a.Compose([]string{"fraud"})
	assert.Equal(t, recommendations[0], second.Recommendations[0])
	assert.Equal(t, genericNextSteps[0], second.NextSteps[0])
}
