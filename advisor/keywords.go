package advisor

import (
	"fmt"
	"strings"

	"advocate-backend/models"
)

// KeywordIndex is the ordered list of keyword rules. Rules are matched in
// the order they were defined, which decides de-duplication precedence.
type KeywordIndex struct {
	rules []models.KeywordRule
}

// NewKeywordIndex validates rules against the reference store. A rule that
// points at an issue the store does not define is a configuration error.
func NewKeywordIndex(rules []models.KeywordRule, store *ReferenceStore) (*KeywordIndex, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: reference store is required", ErrInvalidReference)
	}

	idx := &KeywordIndex{rules: make([]models.KeywordRule, 0, len(rules))}
	seen := make(map[string]struct{}, len(rules))

	for _, rule := range rules {
		// Text is lowercased before matching, so keywords are stored lowercased too.
		keyword := strings.ToLower(rule.Keyword)
		if strings.TrimSpace(keyword) == "" {
			return nil, fmt.Errorf("%w: keyword rule with empty keyword", ErrInvalidReference)
		}
		if _, dup := seen[keyword]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKeyword, keyword)
		}
		if len(rule.Issues) == 0 {
			return nil, fmt.Errorf("%w: keyword %q maps to no issues", ErrInvalidReference, keyword)
		}
		for _, id := range rule.Issues {
			if !store.Has(id) {
				return nil, fmt.Errorf("%w: keyword %q references %q", ErrUnknownIssue, keyword, id)
			}
		}
		seen[keyword] = struct{}{}
		idx.rules = append(idx.rules, models.KeywordRule{
			Keyword: keyword,
			Issues:  append([]string(nil), rule.Issues...),
		})
	}

	return idx, nil
}

// Rules returns a copy of the rules in definition order
func (k *KeywordIndex) Rules() []models.KeywordRule {
	out := make([]models.KeywordRule, len(k.rules))
	for i, rule := range k.rules {
		out[i] = models.KeywordRule{
			Keyword: rule.Keyword,
			Issues:  append([]string(nil), rule.Issues...),
		}
	}
	return out
}

// Len returns the number of rules
func (k *KeywordIndex) Len() int {
	return len(k.rules)
}
