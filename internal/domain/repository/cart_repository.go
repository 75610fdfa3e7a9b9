package repository

import (
	"context"

	"github.com/rhythmicmansion/server/internal/domain/entity"
)

// CartRepository defines the interface for cart item operations.
type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error)
	Insert(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, id string) (int64, error)
}
