package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
)

// topClassLimit caps the popularity listing at six entries.
const topClassLimit = 6

// ClassService owns class listings.
type ClassService struct {
	repo   repository.ClassRepository
	logger *logrus.Logger
}

func NewClassService(repo repository.ClassRepository, logger *logrus.Logger) *ClassService {
	return &ClassService{repo: repo, logger: logger}
}

func (s *ClassService) List(ctx context.Context) ([]entity.Class, error) {
	return s.repo.List(ctx)
}

// Top returns the most popular classes by student count, descending.
func (s *ClassService) Top(ctx context.Context) ([]entity.Class, error) {
	return s.repo.Top(ctx, topClassLimit)
}

func (s *ClassService) Create(ctx context.Context, cl *entity.Class) (string, error) {
	if err := s.repo.Insert(ctx, cl); err != nil {
		return "", err
	}
	s.logger.WithFields(logrus.Fields{"id": cl.ID, "name": cl.Name}).Info("class created")
	return cl.ID, nil
}

func (s *ClassService) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
