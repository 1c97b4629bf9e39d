package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rpggio/clock/internal/domain/session"
	"github.com/rpggio/clock/internal/repository"
)

var _ session.Repository = (*SessionRepository)(nil)

const sessionColumns = `id, job_name, clock_in, clock_out, message`

// SessionRepository implements session.Repository for SQLite
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a session and sets its ID
func (r *SessionRepository) Create(ctx context.Context, sess *session.Session) error {
	query := `
		INSERT INTO work_hours (job_name, clock_in, clock_out, message)
		VALUES (?, ?, ?, ?)
	`

	clockOut, message := closureColumns(sess.Closure)
	result, err := r.db.ExecContext(ctx, query,
		sess.JobName,
		sess.ClockIn,
		clockOut,
		message,
	)
	if err != nil {
		if isNotNullViolation(err) || isCheckViolation(err) {
			return fmt.Errorf("%w: %v", repository.ErrInvalidInput, err)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get session id: %w", err)
	}
	sess.ID = id

	return nil
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(ctx context.Context, id int64) (*session.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_hours WHERE id = ?`

	sess, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return sess, nil
}

// List returns all sessions in insertion order
func (r *SessionRepository) List(ctx context.Context) ([]session.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_hours ORDER BY id ASC`
	return r.query(ctx, query)
}

// ListOpen returns sessions that have not been clocked out
func (r *SessionRepository) ListOpen(ctx context.Context) ([]session.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_hours WHERE clock_out IS NULL ORDER BY id ASC`
	return r.query(ctx, query)
}

// Update overwrites every mutable column of the row with sess.ID
func (r *SessionRepository) Update(ctx context.Context, sess *session.Session) error {
	query := `
		UPDATE work_hours
		SET job_name = ?, clock_in = ?, clock_out = ?, message = ?
		WHERE id = ?
	`

	clockOut, message := closureColumns(sess.Closure)
	result, err := r.db.ExecContext(ctx, query,
		sess.JobName,
		sess.ClockIn,
		clockOut,
		message,
		sess.ID,
	)
	if err != nil {
		if isNotNullViolation(err) || isCheckViolation(err) {
			return fmt.Errorf("%w: %v", repository.ErrInvalidInput, err)
		}
		return fmt.Errorf("failed to update session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *SessionRepository) query(ctx context.Context, query string, args ...any) ([]session.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*session.Session, error) {
	var sess session.Session
	var clockOut sql.NullTime
	var message sql.NullString
	if err := row.Scan(
		&sess.ID,
		&sess.JobName,
		&sess.ClockIn,
		&clockOut,
		&message,
	); err != nil {
		return nil, err
	}

	sess.ClockIn = sess.ClockIn.Local()
	if clockOut.Valid {
		sess.Closure = &session.Closure{
			ClockOut: clockOut.Time.Local(),
			Message:  message.String,
		}
	}

	return &sess, nil
}

// closureColumns splits the closed/open variant into its two nullable columns.
func closureColumns(c *session.Closure) (*time.Time, *string) {
	if c == nil {
		return nil, nil
	}
	clockOut := c.ClockOut
	message := c.Message
	return &clockOut, &message
}
