package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"advocate-backend/models"
	"advocate-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DatasetService manages the editable reference crimes dataset
type DatasetService struct {
	crimes CrimeStore
	logger *zap.Logger
}

// DatasetServiceOption is a functional option for DatasetService
type DatasetServiceOption func(*DatasetService)

// DatasetWithCrimeStore sets the crime store
func DatasetWithCrimeStore(store CrimeStore) DatasetServiceOption {
	return func(s *DatasetService) {
		s.crimes = store
	}
}

// DatasetWithLogger sets the logger
func DatasetWithLogger(logger *zap.Logger) DatasetServiceOption {
	return func(s *DatasetService) {
		s.logger = logger
	}
}

// NewDatasetService creates a new dataset service
func NewDatasetService(opts ...DatasetServiceOption) *DatasetService {
	s := &DatasetService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListDatasetResult represents the dataset grouped by category
type ListDatasetResult struct {
	Categories []models.CrimeCategory
}

// ListDataset returns categories in alphabetical order, each with its rows
// sorted by name
func (s *DatasetService) ListDataset(ctx context.Context) (*ListDatasetResult, error) {
	crimes, err := s.crimes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crimes: %w", err)
	}

	return &ListDatasetResult{Categories: groupByCategory(crimes)}, nil
}

func groupByCategory(crimes []*models.Crime) []models.CrimeCategory {
	index := make(map[string]int)
	categories := []models.CrimeCategory{}
	for _, crime := range crimes {
		i, ok := index[crime.Category]
		if !ok {
			i = len(categories)
			index[crime.Category] = i
			categories = append(categories, models.CrimeCategory{Name: crime.Category})
		}
		categories[i].Crimes = append(categories[i].Crimes, crime)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	for _, c := range categories {
		sort.SliceStable(c.Crimes, func(i, j int) bool {
			return c.Crimes[i].Name < c.Crimes[j].Name
		})
	}
	return categories
}

// CrimeInput represents the editable fields of a dataset row
type CrimeInput struct {
	Category    string
	Name        string
	Section     string
	Description string
	Punishment  string
}

func (in CrimeInput) normalize() (CrimeInput, error) {
	out := CrimeInput{
		Category:    strings.TrimSpace(in.Category),
		Name:        strings.TrimSpace(in.Name),
		Section:     strings.TrimSpace(in.Section),
		Description: strings.TrimSpace(in.Description),
		Punishment:  strings.TrimSpace(in.Punishment),
	}
	if out.Category == "" || out.Name == "" || out.Section == "" {
		return CrimeInput{}, ErrInvalidCrime
	}
	return out, nil
}

func (in CrimeInput) apply(crime *models.Crime) {
	crime.Category = in.Category
	crime.Name = in.Name
	crime.Section = in.Section
	crime.Description = in.Description
	crime.Punishment = in.Punishment
}

// CreateCrimeRequest represents a request to add a dataset row
type CreateCrimeRequest struct {
	CrimeInput
}

// CreateCrimeResult represents the created row
type CreateCrimeResult struct {
	Crime *models.Crime
}

// CreateCrime adds a dataset row
func (s *DatasetService) CreateCrime(ctx context.Context, req CreateCrimeRequest) (*CreateCrimeResult, error) {
	in, err := req.normalize()
	if err != nil {
		return nil, err
	}

	crime := &models.Crime{}
	in.apply(crime)

	if err := s.crimes.Create(ctx, crime); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrCrimeExists
		}
		return nil, fmt.Errorf("failed to create crime: %w", err)
	}

	s.logger.Info("crime created", zap.String("crime_id", crime.ID.String()), zap.String("name", crime.Name))
	return &CreateCrimeResult{Crime: crime}, nil
}

// UpdateCrimeRequest represents a request to edit a dataset row
type UpdateCrimeRequest struct {
	ID uuid.UUID
	CrimeInput
}

// UpdateCrimeResult represents the edited row
type UpdateCrimeResult struct {
	Crime *models.Crime
}

// UpdateCrime edits a dataset row
func (s *DatasetService) UpdateCrime(ctx context.Context, req UpdateCrimeRequest) (*UpdateCrimeResult, error) {
	in, err := req.normalize()
	if err != nil {
		return nil, err
	}

	crime, err := s.crimes.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCrimeNotFound
		}
		return nil, fmt.Errorf("failed to get crime: %w", err)
	}
	in.apply(crime)

	if err := s.crimes.Update(ctx, crime); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCrimeNotFound
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrCrimeExists
		}
		return nil, fmt.Errorf("failed to update crime: %w", err)
	}

	return &UpdateCrimeResult{Crime: crime}, nil
}

// DeleteCrimeRequest represents a request to remove a dataset row
type DeleteCrimeRequest struct {
	ID uuid.UUID
}

// DeleteCrime removes a dataset row
func (s *DatasetService) DeleteCrime(ctx context.Context, req DeleteCrimeRequest) error {
	if err := s.crimes.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCrimeNotFound
		}
		return fmt.Errorf("failed to delete crime: %w", err)
	}
	s.logger.Info("crime deleted", zap.String("crime_id", req.ID.String()))
	return nil
}
