package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateAndResolve(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewSessionRepository(db)
	userID := uuid.New()

	mock.ExpectSet("advocate:session:tok", userID.String(), 2*time.Hour).SetVal("OK")
	mock.ExpectGet("advocate:session:tok").SetVal(userID.String())

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, "tok", userID, 2*time.Hour))

	got, err := repo.Resolve(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_ResolveUnknown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewSessionRepository(db)

	mock.ExpectGet("advocate:session:missing").RedisNil()

	_, err := repo.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepository_ResolveCorrupt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewSessionRepository(db)

	mock.ExpectGet("advocate:session:tok").SetVal("not-a-uuid")

	_, err := repo.Resolve(context.Background(), "tok")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewSessionRepository(db)

	mock.ExpectDel("advocate:session:tok").SetVal(1)

	require.NoError(t, repo.Delete(context.Background(), "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
