package repository

import (
	"context"
	"fmt"

	"advocate-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CrimeRepository handles database operations for the reference crimes dataset
type CrimeRepository struct {
	db *pgxpool.Pool
}

// NewCrimeRepository creates a new crime repository
func NewCrimeRepository(db *pgxpool.Pool) *CrimeRepository {
	return &CrimeRepository{db: db}
}

const crimeColumns = `id, category, name, section, description, punishment, created_at, updated_at`

// List retrieves all crimes ordered by category and name
func (r *CrimeRepository) List(ctx context.Context) ([]*models.Crime, error) {
	query := `SELECT ` + crimeColumns + ` FROM crimes ORDER BY category, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crimes []*models.Crime
	for rows.Next() {
		crime, err := scanCrime(rows)
		if err != nil {
			return nil, err
		}
		crimes = append(crimes, crime)
	}

	return crimes, rows.Err()
}

// GetByID retrieves a crime by ID
func (r *CrimeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Crime, error) {
	query := `SELECT ` + crimeColumns + ` FROM crimes WHERE id = $1`
	crime, err := scanCrime(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return crime, nil
}

// FindByName retrieves a crime by name, ignoring case
func (r *CrimeRepository) FindByName(ctx context.Context, name string) (*models.Crime, error) {
	query := `SELECT ` + crimeColumns + ` FROM crimes WHERE lower(name) = lower($1)`
	crime, err := scanCrime(r.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, translateError(err)
	}
	return crime, nil
}

// Create creates a new crime row. A name taken in any letter case yields
// ErrConflict.
func (r *CrimeRepository) Create(ctx context.Context, crime *models.Crime) error {
	query := `
		INSERT INTO crimes (category, name, section, description, punishment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		crime.Category,
		crime.Name,
		crime.Section,
		crime.Description,
		crime.Punishment,
	).Scan(&crime.ID, &crime.CreatedAt, &crime.UpdatedAt)

	return translateError(err)
}

// CreateIfMissing inserts a crime unless one with the same name, ignoring
// case, exists. It reports whether a row was inserted.
func (r *CrimeRepository) CreateIfMissing(ctx context.Context, crime *models.Crime) (bool, error) {
	query := `
		INSERT INTO crimes (category, name, section, description, punishment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ((lower(name))) DO NOTHING`

	tag, err := r.db.Exec(
		ctx, query,
		crime.Category,
		crime.Name,
		crime.Section,
		crime.Description,
		crime.Punishment,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Seed inserts every crime not already present and returns how many rows
// were added
func (r *CrimeRepository) Seed(ctx context.Context, crimes []*models.Crime) (int, error) {
	inserted := 0
	for _, crime := range crimes {
		created, err := r.CreateIfMissing(ctx, crime)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed crime %q: %w", crime.Name, err)
		}
		if created {
			inserted++
		}
	}
	return inserted, nil
}

// Update updates a crime row
func (r *CrimeRepository) Update(ctx context.Context, crime *models.Crime) error {
	query := `
		UPDATE crimes SET
			category = $2,
			name = $3,
			section = $4,
			description = $5,
			punishment = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		crime.ID,
		crime.Category,
		crime.Name,
		crime.Section,
		crime.Description,
		crime.Punishment,
	).Scan(&crime.CreatedAt, &crime.UpdatedAt)

	return translateError(err)
}

// Delete deletes a crime row
func (r *CrimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM crimes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCrime(row pgx.Row) (*models.Crime, error) {
	crime := &models.Crime{}
	err := row.Scan(
		&crime.ID,
		&crime.Category,
		&crime.Name,
		&crime.Section,
		&crime.Description,
		&crime.Punishment,
		&crime.CreatedAt,
		&crime.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return crime, nil
}
