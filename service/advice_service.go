package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"advocate-backend/advisor"
	"advocate-backend/metrics"
	"advocate-backend/models"

	"go.uber.org/zap"
)

// AdviceService answers descriptions of disputes and keeps the session's
// conversation log
type AdviceService struct {
	advisor       *advisor.Advisor
	conversations ConversationLog
	metrics       *metrics.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// AdviceServiceOption is a functional option for AdviceService
type AdviceServiceOption func(*AdviceService)

// AdviceWithAdvisor sets the classification core
func AdviceWithAdvisor(a *advisor.Advisor) AdviceServiceOption {
	return func(s *AdviceService) {
		s.advisor = a
	}
}

// AdviceWithConversationLog sets the conversation log
func AdviceWithConversationLog(log ConversationLog) AdviceServiceOption {
	return func(s *AdviceService) {
		s.conversations = log
	}
}

// AdviceWithMetrics sets the metrics collectors
func AdviceWithMetrics(m *metrics.Metrics) AdviceServiceOption {
	return func(s *AdviceService) {
		s.metrics = m
	}
}

// AdviceWithLogger sets the logger
func AdviceWithLogger(logger *zap.Logger) AdviceServiceOption {
	return func(s *AdviceService) {
		s.logger = logger
	}
}

// AdviceWithClock overrides the timestamp source
func AdviceWithClock(now func() time.Time) AdviceServiceOption {
	return func(s *AdviceService) {
		s.now = now
	}
}

// NewAdviceService creates a new advice service
func NewAdviceService(opts ...AdviceServiceOption) *AdviceService {
	s := &AdviceService{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAdviceRequest represents a request for advice
type GetAdviceRequest struct {
	SessionID string
	Message   string
}

// GetAdviceResult represents the advice for a message
type GetAdviceResult struct {
	Advice models.Advice
	Source advisor.MatchSource
}

// GetAdvice classifies the message and records the exchange in the
// session's log. A failing log does not fail the request.
func (s *AdviceService) GetAdvice(ctx context.Context, req GetAdviceRequest) (*GetAdviceResult, error) {
	if s.advisor == nil {
		return nil, errors.New("advisor not set")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	advice, source := s.advisor.AdviseWithSource(message)
	s.metrics.ObserveAdvice(string(advice.Status), string(source), advice.IssuesIdentified)
	s.logger.Debug("advice composed",
		zap.String("status", string(advice.Status)),
		zap.String("source", string(source)),
		zap.Strings("issues", advice.IssuesIdentified),
	)

	if s.conversations != nil && req.SessionID != "" {
		entry := models.ConversationEntry{
			User:      message,
			AI:        advice,
			Timestamp: s.now(),
		}
		if err := s.conversations.Append(ctx, req.SessionID, entry); err != nil {
			s.logger.Warn("failed to record conversation",
				zap.String("session_id", req.SessionID),
				zap.Error(err),
			)
		}
	}

	return &GetAdviceResult{Advice: advice, Source: source}, nil
}

// GetHistoryRequest represents a request for a session's conversation log
type GetHistoryRequest struct {
	SessionID string
}

// GetHistoryResult represents a session's conversation log
type GetHistoryResult struct {
	Entries []models.ConversationEntry
}

// GetHistory returns the session's exchanges in the order they happened
func (s *AdviceService) GetHistory(ctx context.Context, req GetHistoryRequest) (*GetHistoryResult, error) {
	if s.conversations == nil || req.SessionID == "" {
		return &GetHistoryResult{Entries: []models.ConversationEntry{}}, nil
	}

	entries, err := s.conversations.List(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ConversationEntry{}
	}

	return &GetHistoryResult{Entries: entries}, nil
}

// ClearHistoryRequest represents a request to clear a session's log
type ClearHistoryRequest struct {
	SessionID string
}

// ClearHistoryResult represents the result of clearing a session's log
type ClearHistoryResult struct{}

// ClearHistory drops the session's conversation log
func (s *AdviceService) ClearHistory(ctx context.Context, req ClearHistoryRequest) (*ClearHistoryResult, error) {
	if s.conversations == nil || req.SessionID == "" {
		return &ClearHistoryResult{}, nil
	}

	if err := s.conversations.Clear(ctx, req.SessionID); err != nil {
		return nil, err
	}

	return &ClearHistoryResult{}, nil
}
