package advisor

import (
	"errors"
	"fmt"
	"strings"

	"advocate-backend/models"
)

var (
	ErrInvalidReference = errors.New("invalid reference data")
	ErrDuplicateIssue   = errors.New("duplicate issue identifier")
	ErrUnknownIssue     = errors.New("unknown issue identifier")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
)

// ReferenceStore holds the issue table and the precedents attached to each
// issue. It is immutable once constructed.
type ReferenceStore struct {
	issues     []models.Issue
	index      map[string]int
	precedents map[string][]models.Precedent
}

// NewReferenceStore validates and copies the supplied tables.
// Issue identifiers must be non-empty, lowercase and unique, and every
// precedent list must belong to a known issue.
func NewReferenceStore(issues []models.Issue, precedents map[string][]models.Precedent) (*ReferenceStore, error) {
	s := &ReferenceStore{
		issues:     make([]models.Issue, 0, len(issues)),
		index:      make(map[string]int, len(issues)),
		precedents: make(map[string][]models.Precedent, len(precedents)),
	}

	for _, issue := range issues {
		if strings.TrimSpace(issue.ID) == "" {
			return nil, fmt.Errorf("%w: issue with empty identifier", ErrInvalidReference)
		}
		if issue.ID != strings.ToLower(issue.ID) {
			return nil, fmt.Errorf("%w: issue %q must be lowercase", ErrInvalidReference, issue.ID)
		}
		if _, exists := s.index[issue.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIssue, issue.ID)
		}
		s.index[issue.ID] = len(s.issues)
		s.issues = append(s.issues, issue)
	}

	for id, cases := range precedents {
		if _, ok := s.index[id]; !ok {
			return nil, fmt.Errorf("%w: precedents reference %q", ErrUnknownIssue, id)
		}
		if len(cases) == 0 {
			continue
		}
		s.precedents[id] = append([]models.Precedent(nil), cases...)
	}

	return s, nil
}

// Issue returns the metadata of the issue with the given identifier
func (s *ReferenceStore) Issue(id string) (models.Issue, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Issue{}, false
	}
	return s.issues[i], true
}

// Has reports whether the identifier is known
func (s *ReferenceStore) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Precedents returns the precedents of an issue in display order
func (s *ReferenceStore) Precedents(id string) []models.Precedent {
	cases := s.precedents[id]
	if len(cases) == 0 {
		return nil
	}
	return append([]models.Precedent(nil), cases...)
}

// IDs returns all issue identifiers in definition order
func (s *ReferenceStore) IDs() []string {
	ids := make([]string, len(s.issues))
	for i, issue := range s.issues {
		ids[i] = issue.ID
	}
	return ids
}

// Issues returns a copy of the issue table in definition order
func (s *ReferenceStore) Issues() []models.Issue {
	return append([]models.Issue(nil), s.issues...)
}

// Len returns the number of issues
func (s *ReferenceStore) Len() int {
	return len(s.issues)
}

// Crimes converts the issue table into dataset rows, one per issue, named
// after the identifier with each word capitalized
func (s *ReferenceStore) Crimes() []*models.Crime {
	crimes := make([]*models.Crime, 0, len(s.issues))
	for _, issue := range s.issues {
		crimes = append(crimes, &models.Crime{
			Category:    issue.Category,
			Name:        displayName(issue.ID),
			Section:     issue.Section,
			Description: issue.Description,
			Punishment:  issue.Punishment,
		})
	}
	return crimes
}

func displayName(id string) string {
	words := strings.Fields(id)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
