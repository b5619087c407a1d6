package repository

import (
	"context"

	"advocate-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for stored documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record. The ID is assigned by the caller
// because it also names the stored object.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			id, owner_id, document_type, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.OwnerID,
		doc.DocumentType,
		doc.Filename,
		doc.MimeType,
		doc.Size,
		doc.StoragePath,
	).Scan(&doc.CreatedAt)

	return translateError(err)
}

// GetByID retrieves a document record by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, owner_id, document_type, filename, mime_type, size, storage_path, created_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.DocumentType,
		&doc.Filename,
		&doc.MimeType,
		&doc.Size,
		&doc.StoragePath,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return doc, nil
}

// ListByOwner retrieves all documents of an owner, newest first
func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error) {
	query := `
		SELECT id, owner_id, document_type, filename, mime_type, size, storage_path, created_at
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.OwnerID,
			&doc.DocumentType,
			&doc.Filename,
			&doc.MimeType,
			&doc.Size,
			&doc.StoragePath,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// Delete deletes a document record
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
