package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
)

// CartService owns cart items, keyed by owner email.
type CartService struct {
	repo   repository.CartRepository
	logger *logrus.Logger
}

func NewCartService(repo repository.CartRepository, logger *logrus.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *CartService) Add(ctx context.Context, item *entity.CartItem) (string, error) {
	if err := s.repo.Insert(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (s *CartService) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
