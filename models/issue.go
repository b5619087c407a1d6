package models

// Issue represents a legal issue category with its statutory metadata
type Issue struct {
	ID          string `json:"-" yaml:"id"`
	Section     string `json:"section" yaml:"section"`
	Description string `json:"description" yaml:"description"`
	Punishment  string `json:"punishment" yaml:"punishment"`
	Category    string `json:"category" yaml:"category"`
}

// Precedent represents a prior case illustrating how an issue was adjudicated
type Precedent struct {
	Case    string `json:"case" yaml:"case"`
	Year    string `json:"year" yaml:"year"`
	Summary string `json:"summary" yaml:"summary"`
}

// KeywordRule maps a literal phrase to the issues it implies
type KeywordRule struct {
	Keyword string   `json:"keyword" yaml:"keyword"`
	Issues  []string `json:"issues" yaml:"issues"`
}
