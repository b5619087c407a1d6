package service_test

import (
	"context"
	"testing"
	"time"

	"advocate-backend/advisor"
	"advocate-backend/metrics"
	"advocate-backend/models"
	"advocate-backend/service"
	"advocate-backend/service/servicetest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdviceService(t *testing.T, opts ...service.AdviceServiceOption) (*service.AdviceService, *servicetest.ConversationLog) {
	t.Helper()
	a, err := advisor.NewDefault()
	require.NoError(t, err)

	log := servicetest.NewConversationLog()
	base := []service.AdviceServiceOption{
		service.AdviceWithAdvisor(a),
		service.AdviceWithConversationLog(log),
	}
	return service.NewAdviceService(append(base, opts...)...), log
}

func TestGetAdvice_RejectsBlankMessage(t *testing.T) {
	svc, log := newAdviceService(t)

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.GetAdvice(context.Background(), service.GetAdviceRequest{SessionID: "s1", Message: msg})
		assert.ErrorIs(t, err, service.ErrEmptyMessage)
	}

	entries, err := log.List(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetAdvice_RecordsExchange(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc, log := newAdviceService(t, service.AdviceWithClock(func() time.Time { return now }))

	result, err := svc.GetAdvice(context.Background(), service.GetAdviceRequest{
		SessionID: "s1",
		Message:   "  someone stole my phone  ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AdviceStatusSuccess, result.Advice.Status)
	assert.Equal(t, []string{"theft", "robbery"}, result.Advice.IssuesIdentified)
	assert.Equal(t, advisor.MatchSourceKeyword, result.Source)

	entries, err := log.List(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "someone stole my phone", entries[0].User)
	assert.Equal(t, result.Advice, entries[0].AI)
	assert.Equal(t, now, entries[0].Timestamp)
}

func TestGetAdvice_UnclearIsNotAnError(t *testing.T) {
	svc, _ := newAdviceService(t)

	result, err := svc.GetAdvice(context.Background(), service.GetAdviceRequest{SessionID: "s1", Message: "hello"})
	require.NoError(t, err)
	assert.True(t, result.Advice.IsUnclear())
	assert.Equal(t, advisor.MatchSourceNone, result.Source)
}

func TestGetAdvice_LogFailureStillAnswers(t *testing.T) {
	svc, log := newAdviceService(t)
	log.AppendErr = servicetest.ErrInjected

	result, err := svc.GetAdvice(context.Background(), service.GetAdviceRequest{SessionID: "s1", Message: "nuisance"})
	require.NoError(t, err)
	assert.Equal(t, advisor.MatchSourceFallback, result.Source)
	assert.Equal(t, []string{"nuisance"}, result.Advice.IssuesIdentified)
}

func TestGetAdvice_ObservesMetrics(t *testing.T) {
	m := metrics.New()
	svc, _ := newAdviceService(t, service.AdviceWithMetrics(m))

	_, err := svc.GetAdvice(context.Background(), service.GetAdviceRequest{SessionID: "s1", Message: "someone stole my phone"})
	require.NoError(t, err)

	advice, err := testutil.GatherAndCount(m.Registry(), "advocate_advice_total")
	require.NoError(t, err)
	assert.Equal(t, 1, advice)

	issues, err := testutil.GatherAndCount(m.Registry(), "advocate_issue_matches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, issues)
}

func TestHistory_AppendOrderAndClear(t *testing.T) {
	svc, _ := newAdviceService(t)
	ctx := context.Background()

	for _, msg := range []string{"someone stole my phone", "hello", "my husband hit me"} {
		_, err := svc.GetAdvice(ctx, service.GetAdviceRequest{SessionID: "s1", Message: msg})
		require.NoError(t, err)
	}
	_, err := svc.GetAdvice(ctx, service.GetAdviceRequest{SessionID: "other", Message: "fraud"})
	require.NoError(t, err)

	history, err := svc.GetHistory(ctx, service.GetHistoryRequest{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, history.Entries, 3)
	assert.Equal(t, "someone stole my phone", history.Entries[0].User)
	assert.Equal(t, "hello", history.Entries[1].User)
	assert.Equal(t, "my husband hit me", history.Entries[2].User)

	_, err = svc.ClearHistory(ctx, service.ClearHistoryRequest{SessionID: "s1"})
	require.NoError(t, err)

	history, err = svc.GetHistory(ctx, service.GetHistoryRequest{SessionID: "s1"})
	require.NoError(t, err)
	assert.NotNil(t, history.Entries)
	assert.Empty(t, history.Entries)

	other, err := svc.GetHistory(ctx, service.GetHistoryRequest{SessionID: "other"})
	require.NoError(t, err)
	assert.Len(t, other.Entries, 1)
}
