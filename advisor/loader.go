package advisor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"advocate-backend/models"

	"gopkg.in/yaml.v3"
)

// referenceFile is the on-disk layout of an editable reference dataset.
// Sequences keep their order, which the keyword rules depend on.
type referenceFile struct {
	Issues   []issueEntry         `yaml:"issues"`
	Keywords []models.KeywordRule `yaml:"keywords"`
}

type issueEntry struct {
	models.Issue `yaml:",inline"`
	Precedents   []models.Precedent `yaml:"precedents,omitempty"`
}

// LoadReference decodes a YAML reference dataset and builds an advisor from it
func LoadReference(r io.Reader) (*Advisor, error) {
	var file referenceFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty reference file", ErrInvalidReference)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	if len(file.Issues) == 0 {
		return nil, fmt.Errorf("%w: no issues defined", ErrInvalidReference)
	}

	issues := make([]models.Issue, 0, len(file.Issues))
	precedents := make(map[string][]models.Precedent)
	for _, entry := range file.Issues {
		issues = append(issues, entry.Issue)
		if len(entry.Precedents) > 0 {
			precedents[entry.ID] = entry.Precedents
		}
	}

	return New(issues, precedents, file.Keywords)
}

// LoadReferenceFile reads a YAML reference dataset from path
func LoadReferenceFile(path string) (*Advisor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	a, err := LoadReference(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// WriteReference encodes the advisor's tables in the layout LoadReference reads
func WriteReference(w io.Writer, a *Advisor) error {
	file := referenceFile{
		Issues:   make([]issueEntry, 0, a.store.Len()),
		Keywords: a.index.Rules(),
	}
	for _, issue := range a.store.Issues() {
		file.Issues = append(file.Issues, issueEntry{
			Issue:      issue,
			Precedents: a.store.Precedents(issue.ID),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to encode reference data: %w", err)
	}
	return enc.Close()
}
