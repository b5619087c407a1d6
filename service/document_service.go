package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"advocate-backend/models"
	"advocate-backend/repository"
	"advocate-backend/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	documentMimeType = "text/plain; charset=utf-8"

	// MaxDocumentTypeLength bounds the type in bytes. The type names the
	// stored file, so it must fit a file name.
	MaxDocumentTypeLength = 100
)

// DocumentService renders legal document templates and optionally
// persists them
type DocumentService struct {
	crimes    CrimeStore
	documents DocumentStore
	storage   storage.Storage
	logger    *zap.Logger
	now       func() time.Time
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocumentWithCrimeStore sets the dataset used for annex lookups
func DocumentWithCrimeStore(store CrimeStore) DocumentServiceOption {
	return func(s *DocumentService) {
		s.crimes = store
	}
}

// DocumentWithDocumentStore sets the document record store
func DocumentWithDocumentStore(store DocumentStore) DocumentServiceOption {
	return func(s *DocumentService) {
		s.documents = store
	}
}

// DocumentWithStorage sets the object storage for rendered documents
func DocumentWithStorage(st storage.Storage) DocumentServiceOption {
	return func(s *DocumentService) {
		s.storage = st
	}
}

// DocumentWithLogger sets the logger
func DocumentWithLogger(logger *zap.Logger) DocumentServiceOption {
	return func(s *DocumentService) {
		s.logger = logger
	}
}

// DocumentWithClock overrides the date source
func DocumentWithClock(now func() time.Time) DocumentServiceOption {
	return func(s *DocumentService) {
		s.now = now
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateDocumentRequest represents a request to render a document
type GenerateDocumentRequest struct {
	OwnerID string
	Type    string
	Details models.DocumentDetails
	Crime   string
	Store   bool
}

// GenerateDocumentResult represents a rendered document
type GenerateDocumentResult struct {
	Document string
	Record   *models.Document
}

// GenerateDocument renders the template and, when asked, uploads the text
// and records it
func (s *DocumentService) GenerateDocument(ctx context.Context, req GenerateDocumentRequest) (*GenerateDocumentResult, error) {
	docType := strings.TrimSpace(req.Type)
	if docType == "" {
		docType = defaultDocumentType
	}
	if len(docType) > MaxDocumentTypeLength {
		return nil, ErrInvalidDocumentType
	}

	var annex *models.Crime
	if name := strings.TrimSpace(req.Crime); name != "" {
		if s.crimes == nil {
			return nil, ErrCrimeNotFound
		}
		crime, err := s.crimes.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCrimeNotFound
			}
			return nil, fmt.Errorf("failed to look up crime: %w", err)
		}
		annex = crime
	}

	text := renderDocument(docType, req.Details, annex, s.now())
	result := &GenerateDocumentResult{Document: text}

	if !req.Store {
		return result, nil
	}

	record, err := s.storeDocument(ctx, req.OwnerID, docType, text)
	if err != nil {
		return nil, err
	}
	result.Record = record

	return result, nil
}

func (s *DocumentService) storeDocument(ctx context.Context, ownerID, docType, text string) (*models.Document, error) {
	if s.storage == nil || s.documents == nil {
		return nil, ErrStorageUnavailable
	}

	id := uuid.New()
	filename := fmt.Sprintf("%s.txt", strings.ReplaceAll(strings.ToLower(docType), " ", "_"))

	path, err := s.storage.Upload(ctx, id, filename, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	record := &models.Document{
		ID:           id,
		OwnerID:      ownerID,
		DocumentType: docType,
		Filename:     filename,
		MimeType:     documentMimeType,
		Size:         int64(len(text)),
		StoragePath:  path,
	}

	if err := s.documents.Create(ctx, record); err != nil {
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			s.logger.Warn("failed to remove orphaned document",
				zap.String("path", path),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}

	s.logger.Info("document stored",
		zap.String("document_id", id.String()),
		zap.String("type", docType),
	)

	return record, nil
}

// GetDocumentRequest represents a request for a stored document
type GetDocumentRequest struct {
	OwnerID string
	ID      uuid.UUID
}

// GetDocumentResult represents a stored document and its content
type GetDocumentResult struct {
	Record  *models.Document
	Content []byte
}

// GetDocument returns a stored document owned by the caller. Documents of
// other owners are reported as not found.
func (s *DocumentService) GetDocument(ctx context.Context, req GetDocumentRequest) (*GetDocumentResult, error) {
	if s.storage == nil || s.documents == nil {
		return nil, ErrStorageUnavailable
	}

	record, err := s.documents.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if record.OwnerID != req.OwnerID {
		return nil, ErrDocumentNotFound
	}

	rc, err := s.storage.Download(ctx, record.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to download document: %w", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return &GetDocumentResult{Record: record, Content: buf.Bytes()}, nil
}
