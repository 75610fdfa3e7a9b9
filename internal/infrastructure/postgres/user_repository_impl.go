package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
	"github.com/rhythmicmansion/server/internal/errs"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, email, name, photo_url, role, created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, photo_url, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *entity.User) error {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, photo_url, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Name, u.PhotoURL, u.Role)
	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) (int64, error) {
	res, err := r.db.Pool.Exec(ctx, `
		UPDATE users
		SET role = $2, updated_at = now()
		WHERE id = $1
	`, id, role)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.Pool.Exec(ctx, `
		DELETE FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
