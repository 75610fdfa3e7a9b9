package repository

import (
	"context"

	"github.com/rhythmicmansion/server/internal/domain/entity"
)

// InstructorRepository exposes the read-only instructor projection.
type InstructorRepository interface {
	List(ctx context.Context) ([]entity.Instructor, error)
}
