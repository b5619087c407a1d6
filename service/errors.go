package service

import (
	"errors"
)

var (
	ErrEmptyMessage        = errors.New("please enter a message")
	ErrInvalidRegistration = errors.New("invalid registration details")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrCrimeNotFound       = errors.New("crime not found")
	ErrCrimeExists         = errors.New("crime already exists")
	ErrInvalidCrime        = errors.New("crime requires name, category and section")
	ErrInvalidTheme        = errors.New("theme must be light or dark")
	ErrInvalidDocumentType = errors.New("document type is too long")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrStorageUnavailable  = errors.New("document storage not configured")
)
