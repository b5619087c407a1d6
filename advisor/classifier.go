package advisor

import (
	"strings"
)

// MatchSource tells which pass of the classifier produced a result
type MatchSource string

const (
	MatchSourceKeyword  MatchSource = "keyword"
	MatchSourceFallback MatchSource = "fallback"
	MatchSourceNone     MatchSource = "none"
)

// Classifier maps free text to an ordered list of issue identifiers.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	store *ReferenceStore
	index *KeywordIndex
}

// NewClassifier creates a classifier over a validated store and index
func NewClassifier(store *ReferenceStore, index *KeywordIndex) *Classifier {
	return &Classifier{store: store, index: index}
}

// Classify returns the issues implied by text, in first-match order
func (c *Classifier) Classify(text string) []string {
	issues, _ := c.ClassifyWithSource(text)
	return issues
}

// ClassifyWithSource runs the keyword pass and, only when it finds nothing,
// the word fallback over the reference store identifiers.
func (c *Classifier) ClassifyWithSource(text string) ([]string, MatchSource) {
	normalized := strings.ToLower(text)

	issues := c.matchKeywords(normalized)
	if len(issues) > 0 {
		return issues, MatchSourceKeyword
	}

	issues = c.matchIdentifierWords(normalized)
	if len(issues) > 0 {
		return issues, MatchSourceFallback
	}

	return []string{}, MatchSourceNone
}

// matchKeywords collects the issues of every rule whose keyword occurs
// anywhere in text, dropping repeats so that the first position wins.
func (c *Classifier) matchKeywords(text string) []string {
	var matched []string
	for _, rule := range c.index.rules {
		if strings.Contains(text, rule.Keyword) {
			matched = append(matched, rule.Issues...)
		}
	}
	return dedupe(matched)
}

// matchIdentifierWords selects issues any of whose words occurs in text.
// Words are matched as substrings, not tokens.
func (c *Classifier) matchIdentifierWords(text string) []string {
	var matched []string
	for _, issue := range c.store.issues {
		for _, word := range strings.Fields(issue.ID) {
			if strings.Contains(text, word) {
				matched = append(matched, issue.ID)
				break
			}
		}
	}
	return matched
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
