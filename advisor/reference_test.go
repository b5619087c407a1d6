package advisor

import (
	"testing"

	"advocate-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreConsistent(t *testing.T) {
	a, err := NewDefault()
	require.NoError(t, err)

	assert.Equal(t, 17, a.Store().Len())
	assert.Equal(t, 39, a.Keywords().Len())
	assert.Equal(t, "theft", a.Store().IDs()[0])
	assert.Equal(t, "defamation", a.Store().IDs()[16])
}

func TestNewReferenceStore_Errors(t *testing.T) {
	tests := []struct {
		name       string
		issues     []models.Issue
		precedents map[string][]models.Precedent
		want       error
	}{
		{"empty id", []models.Issue{{ID: " "}}, nil, ErrInvalidReference},
		{"uppercase id", []models.Issue{{ID: "Theft"}}, nil, ErrInvalidReference},
		{"duplicate", []models.Issue{{ID: "theft"}, {ID: "theft"}}, nil, ErrDuplicateIssue},
		{
			"dangling precedent",
			[]models.Issue{{ID: "theft"}},
			map[string][]models.Precedent{"fraud": {{Case: "x"}}},
			ErrUnknownIssue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReferenceStore(tt.issues, tt.precedents)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewKeywordIndex_RejectsDanglingIssue(t *testing.T) {
	store, err := NewReferenceStore([]models.Issue{{ID: "theft"}}, nil)
	require.NoError(t, err)

	_, err = NewKeywordIndex([]models.KeywordRule{
		{Keyword: "stole", Issues: []string{"theft", "robbery"}},
	}, store)

	assert.ErrorIs(t, err, ErrUnknownIssue)
	assert.Contains(t, err.Error(), `"robbery"`)
}

func TestNewKeywordIndex_Errors(t *testing.T) {
	store, err := NewReferenceStore([]models.Issue{{ID: "theft"}}, nil)
	require.NoError(t, err)

	_, err = NewKeywordIndex([]models.KeywordRule{{Keyword: "", Issues: []string{"theft"}}}, store)
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = NewKeywordIndex([]models.KeywordRule{{Keyword: "stole"}}, store)
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = NewKeywordIndex([]models.KeywordRule{
		{Keyword: "stole", Issues: []string{"theft"}},
		{Keyword: "STOLE", Issues: []string{"theft"}},
	}, store)
	assert.ErrorIs(t, err, ErrDuplicateKeyword)

	_, err = NewKeywordIndex(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestNewKeywordIndex_LowercasesKeywords(t *testing.T) {
	a, err := New([]models.Issue{{ID: "theft"}}, nil, []models.KeywordRule{
		{Keyword: "Pickpocket", Issues: []string{"theft"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"theft"}, a.Classify("a PICKPOCKET took my wallet"))
}

func TestReferenceStore_CopiesAreIsolated(t *testing.T) {
	a := newTestAdvisor(t)

	cases := a.Store().Precedents("theft")
	cases[0].Case = "changed"
	assert.Equal(t, "State of Maharashtra vs. Vishwanath", a.Store().Precedents("theft")[0].Case)

	rules := a.Keywords().Rules()
	rules[0].Issues[0] = "changed"
	assert.Equal(t, "theft", a.Keywords().Rules()[0].Issues[0])

	assert.Nil(t, a.Store().Precedents("nuisance"))
	_, ok := a.Store().Issue("jaywalking")
	assert.False(t, ok)
}

func TestReferenceStore_Crimes(t *testing.T) {
	a := newTestAdvisor(t)

	crimes := a.Store().Crimes()
	require.Len(t, crimes, a.Store().Len())

	assert.Equal(t, "Theft", crimes[0].Name)
	assert.Equal(t, "Property Crime", crimes[0].Category)
	assert.Equal(t, "Section 378", crimes[0].Section)
	assert.Equal(t, "Criminal Breach Of Trust", crimes[2].Name)
	assert.Equal(t, "Hit And Run", crimes[15].Name)
}
