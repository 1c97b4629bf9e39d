package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/clock/internal/domain/session"
	"github.com/rpggio/clock/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewSessionRepository(db)
	clockIn := time.Date(2024, 3, 1, 9, 30, 15, 250_000_000, time.Local)
	sess := &session.Session{
		JobName: "writing",
		ClockIn: clockIn,
	}

	require.NoError(t, repo.Create(ctx, sess))
	require.NotZero(t, sess.ID)

	loaded, err := repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess.ID, loaded.ID)
	require.Equal(t, "writing", loaded.JobName)
	require.True(t, clockIn.Equal(loaded.ClockIn), "clock_in %v != %v", loaded.ClockIn, clockIn)
	require.True(t, loaded.IsOpen())
}

func TestSessionRepository_IDsIncrease(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	first := &session.Session{JobName: "a", ClockIn: time.Now()}
	second := &session.Session{JobName: "b", ClockIn: time.Now()}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.Greater(t, second.ID, first.ID)
}

func TestSessionRepository_UpdateCloses(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	clockIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	clockOut := clockIn.Add(2*time.Hour + 500*time.Millisecond)
	sess := &session.Session{JobName: "writing", ClockIn: clockIn}
	require.NoError(t, repo.Create(ctx, sess))

	sess.Closure = &session.Closure{ClockOut: clockOut, Message: "finished chapter 3"}
	require.NoError(t, repo.Update(ctx, sess))

	loaded, err := repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.False(t, loaded.IsOpen())
	require.True(t, clockOut.Equal(loaded.Closure.ClockOut))
	require.Equal(t, "finished chapter 3", loaded.Closure.Message)
}

func TestSessionRepository_UpdateEmptyMessage(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	sess := &session.Session{JobName: "writing", ClockIn: time.Now()}
	require.NoError(t, repo.Create(ctx, sess))

	sess.Closure = &session.Closure{ClockOut: time.Now(), Message: ""}
	require.NoError(t, repo.Update(ctx, sess))

	var message *string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT message FROM work_hours WHERE id = ?`, sess.ID).Scan(&message))
	require.NotNil(t, message, "empty message is stored, not NULL")
	require.Equal(t, "", *message)
}

func TestSessionRepository_UpdateMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSessionRepository(db)

	err := repo.Update(context.Background(), &session.Session{ID: 42, JobName: "x", ClockIn: time.Now()})
	require.Equal(t, repository.ErrNotFound, err)
}

func TestSessionRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSessionRepository(db)

	_, err := repo.Get(context.Background(), 42)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestSessionRepository_ListAndListOpen(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	closed := &session.Session{JobName: "first", ClockIn: base}
	require.NoError(t, repo.Create(ctx, closed))
	closed.Closure = &session.Closure{ClockOut: base.Add(time.Hour), Message: "done"}
	require.NoError(t, repo.Update(ctx, closed))

	open := &session.Session{JobName: "second", ClockIn: base.Add(2 * time.Hour)}
	require.NoError(t, repo.Create(ctx, open))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "first", all[0].JobName)
	require.Equal(t, "second", all[1].JobName)

	openSessions, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, openSessions, 1)
	require.Equal(t, open.ID, openSessions[0].ID)
}

func TestSessionRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSessionRepository(db)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)

	open, err := repo.ListOpen(context.Background())
	require.NoError(t, err)
	require.Empty(t, open)
}

func TestSessionRepository_NullMessageReadsEmpty(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	now := time.Now()
	_, err := db.ExecContext(ctx,
		`INSERT INTO work_hours (job_name, clock_in, clock_out, message) VALUES (?, ?, ?, NULL)`,
		"legacy", now.Add(-time.Hour), now)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.False(t, all[0].IsOpen())
	require.Equal(t, "", all[0].Closure.Message)
}

func TestSessionRepository_CreateRejectsBlankJob(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSessionRepository(db)

	err := repo.Create(context.Background(), &session.Session{JobName: "  ", ClockIn: time.Now()})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}
