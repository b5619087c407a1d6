// Package advisor maps free-text descriptions of a dispute onto a fixed
// taxonomy of legal issues and assembles structured advice for them.
//
// Tables are validated once at construction and never mutated afterwards,
// so an Advisor can be shared by any number of concurrent requests.
package advisor

import (
	"advocate-backend/models"
)

// Advisor classifies text and composes the matching advice
type Advisor struct {
	store      *ReferenceStore
	index      *KeywordIndex
	classifier *Classifier
	composer   *Composer
}

// New builds an advisor from raw tables, failing on any configuration error
func New(issues []models.Issue, precedents map[string][]models.Precedent, rules []models.KeywordRule) (*Advisor, error) {
	store, err := NewReferenceStore(issues, precedents)
	if err != nil {
		return nil, err
	}

	index, err := NewKeywordIndex(rules, store)
	if err != nil {
		return nil, err
	}

	return &Advisor{
		store:      store,
		index:      index,
		classifier: NewClassifier(store, index),
		composer:   NewComposer(store),
	}, nil
}

// NewDefault builds an advisor over the built-in tables
func NewDefault() (*Advisor, error) {
	return New(DefaultIssues(), DefaultPrecedents(), DefaultKeywordRules())
}

// Advise classifies text and composes the advice for the result
func (a *Advisor) Advise(text string) models.Advice {
	advice, _ := a.AdviseWithSource(text)
	return advice
}

// AdviseWithSource is Advise that also reports which classifier pass matched
func (a *Advisor) AdviseWithSource(text string) (models.Advice, MatchSource) {
	issues, source := a.classifier.ClassifyWithSource(text)
	return a.composer.Compose(issues), source
}

// Classify exposes the classifier
func (a *Advisor) Classify(text string) []string {
	return a.classifier.Classify(text)
}

// Compose exposes the composer
func (a *Advisor) Compose(issues []string) models.Advice {
	return a.composer.Compose(issues)
}

// Store returns the reference store
func (a *Advisor) Store() *ReferenceStore {
	return a.store
}

// Keywords returns the keyword index
func (a *Advisor) Keywords() *KeywordIndex {
	return a.index
}
