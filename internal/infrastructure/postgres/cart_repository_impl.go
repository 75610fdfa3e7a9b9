package postgres

import (
	"context"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
)

type CartRepository struct {
	db *DB
}

func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, email, class_id, class_name, price, created_at
		FROM carts
		WHERE email = $1
		ORDER BY created_at
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.CartItem, 0)
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.Email, &it.ClassID, &it.ClassName,
			&it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CartRepository) Insert(ctx context.Context, item *entity.CartItem) error {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO carts (email, class_id, class_name, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, item.Email, item.ClassID, item.ClassName, item.Price)
	return row.Scan(&item.ID, &item.CreatedAt)
}

func (r *CartRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.Pool.Exec(ctx, `
		DELETE FROM carts
		WHERE id = $1
	`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.CartRepository = (*CartRepository)(nil)
