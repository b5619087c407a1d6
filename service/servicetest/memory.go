// Package servicetest provides in-memory implementations of the service
// store interfaces for tests.
package servicetest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"advocate-backend/models"
	"advocate-backend/repository"
	"advocate-backend/storage"

	"github.com/google/uuid"
)

// ConversationLog is an in-memory conversation log
type ConversationLog struct {
	mu        sync.Mutex
	entries   map[string][]models.ConversationEntry
	AppendErr error
}

func NewConversationLog() *ConversationLog {
	return &ConversationLog{entries: make(map[string][]models.ConversationEntry)}
}

func (l *ConversationLog) Append(ctx context.Context, sessionID string, entry models.ConversationEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.AppendErr != nil {
		return l.AppendErr
	}
	l.entries[sessionID] = append(l.entries[sessionID], entry)
	return nil
}

func (l *ConversationLog) List(ctx context.Context, sessionID string) ([]models.ConversationEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.ConversationEntry, len(l.entries[sessionID]))
	copy(out, l.entries[sessionID])
	return out, nil
}

func (l *ConversationLog) Clear(ctx context.Context, sessionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, sessionID)
	return nil
}

// SessionStore is an in-memory token store. TTLs are ignored.
type SessionStore struct {
	mu     sync.Mutex
	tokens map[string]uuid.UUID
}

func NewSessionStore() *SessionStore {
	return &SessionStore{tokens: make(map[string]uuid.UUID)}
}

func (s *SessionStore) Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, repository.ErrNotFound
	}
	return id, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// UserStore is an in-memory user store with case-insensitive emails
type UserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrConflict
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// CrimeStore is an in-memory crimes dataset with names unique ignoring case
type CrimeStore struct {
	mu     sync.Mutex
	crimes []*models.Crime
}

func NewCrimeStore(crimes ...*models.Crime) *CrimeStore {
	s := &CrimeStore{}
	for _, c := range crimes {
		_ = s.Create(context.Background(), c)
	}
	return s
}

func (s *CrimeStore) List(ctx context.Context) ([]*models.Crime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Crime, 0, len(s.crimes))
	for _, c := range s.crimes {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (s *CrimeStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Crime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.crimes {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *CrimeStore) FindByName(ctx context.Context, name string) (*models.Crime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.crimes {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *CrimeStore) Create(ctx context.Context, crime *models.Crime) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.crimes {
		if strings.EqualFold(c.Name, crime.Name) {
			return repository.ErrConflict
		}
	}
	crime.ID = uuid.New()
	crime.CreatedAt = time.Now()
	crime.UpdatedAt = crime.CreatedAt
	cp := *crime
	s.crimes = append(s.crimes, &cp)
	return nil
}

func (s *CrimeStore) Update(ctx context.Context, crime *models.Crime) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.crimes {
		if c.ID != crime.ID && strings.EqualFold(c.Name, crime.Name) {
			return repository.ErrConflict
		}
	}
	for i, c := range s.crimes {
		if c.ID == crime.ID {
			crime.CreatedAt = c.CreatedAt
			crime.UpdatedAt = time.Now()
			cp := *crime
			s.crimes[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *CrimeStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.crimes {
		if c.ID == id {
			s.crimes = append(s.crimes[:i], s.crimes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// PreferenceStore is an in-memory preference store
type PreferenceStore struct {
	mu    sync.Mutex
	prefs map[string]models.UserPreferences
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{prefs: make(map[string]models.UserPreferences)}
}

func (s *PreferenceStore) Get(ctx context.Context, ownerID string) (*models.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prefs[ownerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *PreferenceStore) Upsert(ctx context.Context, prefs *models.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs.UpdatedAt = time.Now()
	s.prefs[prefs.OwnerID] = *prefs
	return nil
}

// DocumentStore is an in-memory document record store
type DocumentStore struct {
	mu        sync.Mutex
	docs      map[uuid.UUID]models.Document
	CreateErr error
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[uuid.UUID]models.Document)}
}

func (s *DocumentStore) Create(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return s.CreateErr
	}
	doc.CreatedAt = time.Now()
	s.docs[doc.ID] = *doc
	return nil
}

func (s *DocumentStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

// Storage is an in-memory object store
type Storage struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewStorage() *Storage {
	return &Storage{Objects: make(map[string][]byte)}
}

func (s *Storage) Upload(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (string, error) {
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := "documents/" + id.String() + "_" + filename
	s.Objects[path] = b
	return path, nil
}

func (s *Storage) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.Objects[storagePath]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *Storage) Delete(ctx context.Context, storagePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Objects[storagePath]; !ok {
		return storage.ErrObjectNotFound
	}
	delete(s.Objects, storagePath)
	return nil
}

var ErrInjected = errors.New("injected failure")
