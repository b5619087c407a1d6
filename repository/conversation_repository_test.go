package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"advocate-backend/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(t *testing.T) (models.ConversationEntry, string) {
	t.Helper()
	entry := models.ConversationEntry{
		User: "someone stole my phone",
		AI: models.Advice{
			Status:           models.AdviceStatusSuccess,
			IssuesIdentified: []string{"theft", "robbery"},
		},
		Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	return entry, string(data)
}

func TestConversationRepository_Append(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewConversationRepository(db, time.Hour)
	entry, encoded := sampleEntry(t)

	mock.ExpectTxPipeline()
	mock.ExpectRPush("advocate:conversation:s1", encoded).SetVal(1)
	mock.ExpectExpire("advocate:conversation:s1", time.Hour).SetVal(true)
	mock.ExpectTxPipelineExec()

	require.NoError(t, repo.Append(context.Background(), "s1", entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_AppendWithoutTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewConversationRepository(db, 0)
	entry, encoded := sampleEntry(t)

	mock.ExpectTxPipeline()
	mock.ExpectRPush("advocate:conversation:s1", encoded).SetVal(1)
	mock.ExpectTxPipelineExec()

	require.NoError(t, repo.Append(context.Background(), "s1", entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_AppendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewConversationRepository(db, time.Hour)
	entry, encoded := sampleEntry(t)

	mock.ExpectTxPipeline()
	mock.ExpectRPush("advocate:conversation:s1", encoded).SetErr(errors.New("connection refused"))

	err := repo.Append(context.Background(), "s1", entry)
	assert.ErrorContains(t, err, "connection refused")
}

func TestConversationRepository_List(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewConversationRepository(db, time.Hour)
	entry, encoded := sampleEntry(t)

	mock.ExpectLRange("advocate:conversation:s1", 0, -1).SetVal([]string{encoded, encoded})

	entries, err := repo.List(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entry.User, entries[0].User)
	assert.Equal(t, entry.AI.IssuesIdentified, entries[1].AI.IssuesIdentified)
	assert.True(t, entry.Timestamp.Equal(entries[0].Timestamp))
}

func TestConversationRepository_ListEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewConversationRepository(db, time.Hour)

	mock.ExpectLRange("advocate:conversation:s2", 0, -1).SetVal([]string{})

	entries, err := repo.List(context.Background(), "s2")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestConversationRepository_ListCorrupt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewConversationRepository(db, time.Hour)

	mock.ExpectLRange("advocate:conversation:s1", 0, -1).SetVal([]string{"{not json"})

	_, err := repo.List(context.Background(), "s1")
	assert.Error(t, err)
}

func TestConversationRepository_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewConversationRepository(db, time.Hour)

	mock.ExpectDel("advocate:conversation:s1").SetVal(1)

	require.NoError(t, repo.Clear(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
