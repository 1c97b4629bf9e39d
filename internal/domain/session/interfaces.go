package session

import "context"

// Repository provides persistence for sessions.
type Repository interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id int64) (*Session, error)
	List(ctx context.Context) ([]Session, error)
	ListOpen(ctx context.Context) ([]Session, error)
	Update(ctx context.Context, sess *Session) error
}
