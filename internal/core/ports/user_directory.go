package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

// UserDirectory is the persistence gateway for user records. Lookups surface
// "not found" as a nil user with a nil error, never as an error, so the
// workflow can branch on absence without unwrapping. Insert and Update are
// each a single all-or-nothing write.
//
// Username/email uniqueness is enforced by the workflow's query-then-insert,
// not by the directory.
type UserDirectory interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
