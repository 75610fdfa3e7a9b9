package repository

import (
	"context"

	"github.com/rhythmicmansion/server/internal/domain/entity"
)

// ClassRepository defines the interface for class listing operations.
type ClassRepository interface {
	List(ctx context.Context) ([]entity.Class, error)
	// Top returns up to limit classes ordered by student count descending.
	Top(ctx context.Context, limit int) ([]entity.Class, error)
	Insert(ctx context.Context, cl *entity.Class) error
	Delete(ctx context.Context, id string) (int64, error)
}
