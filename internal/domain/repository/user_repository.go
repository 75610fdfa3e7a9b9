package repository

import (
	"context"

	"github.com/rhythmicmansion/server/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Insert(ctx context.Context, u *entity.User) error
	UpdateRole(ctx context.Context, id string, role entity.Role) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
