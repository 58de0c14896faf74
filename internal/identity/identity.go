package identity

import (
	"context"
	"errors"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

// Principal is the resolved identity of the caller for one request.
// It is resolved once and immutable afterwards.
type Principal struct {
	ID       int64
	Username string
}

type contextKey struct{}

var subjectKey contextKey

// WithSubject returns a context carrying the verified token subject.
func WithSubject(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, subjectKey, username)
}

// SubjectFromContext returns the verified subject placed in the context by the
// authorization middleware, or false if the request carried no identity.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}

// UserDirectory is the user lookup the resolver needs.
type UserDirectory interface {
	FindIdentityByUsername(username string) (*Principal, error)
}

// Resolver turns a request context into the calling Principal.
type Resolver interface {
	CurrentPrincipal(ctx context.Context) (*Principal, error)
}

type resolver struct {
	users UserDirectory
}

func NewResolver(users UserDirectory) Resolver {
	return &resolver{users: users}
}

// CurrentPrincipal fails with ErrNoActiveUser when the request carries no
// verified subject or the subject no longer maps to a stored user.
func (r *resolver) CurrentPrincipal(ctx context.Context) (*Principal, error) {
	subject, ok := SubjectFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrNoActiveUser
	}

	principal, err := r.users.FindIdentityByUsername(subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoActiveUser
		}
		return nil, apperrors.ErrInternal
	}

	return principal, nil
}
