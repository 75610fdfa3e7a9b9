package application

import (
	"context"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
)

// InstructorService exposes the read-only instructor projection.
type InstructorService struct {
	repo repository.InstructorRepository
}

func NewInstructorService(repo repository.InstructorRepository) *InstructorService {
	return &InstructorService{repo: repo}
}

func (s *InstructorService) List(ctx context.Context) ([]entity.Instructor, error) {
	return s.repo.List(ctx)
}
