package mocks

import (
	"context"

	"github.com/rpggio/clock/internal/domain/session"
	"github.com/stretchr/testify/mock"
)

// SessionRepository is a mock for session.Repository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Get(ctx context.Context, id int64) (*session.Session, error) {
	args := m.Called(ctx, id)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) List(ctx context.Context) ([]session.Session, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]session.Session); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) ListOpen(ctx context.Context) ([]session.Session, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]session.Session); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Update(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}
