package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
)

type ClassRepository struct {
	db *DB
}

func NewClassRepository(db *DB) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = `id, name, image, instructor_name, instructor_email, price, available_seats, students, details, created_at`

func scanClasses(rows pgx.Rows) ([]entity.Class, error) {
	defer rows.Close()
	classes := make([]entity.Class, 0)
	for rows.Next() {
		var cl entity.Class
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Image, &cl.InstructorName,
			&cl.InstructorEmail, &cl.Price, &cl.AvailableSeats, &cl.Students,
			&cl.Details, &cl.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return classes, rows.Err()
}

func (r *ClassRepository) List(ctx context.Context) ([]entity.Class, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+classColumns+`
		FROM classes
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return scanClasses(rows)
}

func (r *ClassRepository) Top(ctx context.Context, limit int) ([]entity.Class, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+classColumns+`
		FROM classes
		ORDER BY students DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return scanClasses(rows)
}

func (r *ClassRepository) Insert(ctx context.Context, cl *entity.Class) error {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO classes (name, image, instructor_name, instructor_email, price, available_seats, students, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, cl.Name, cl.Image, cl.InstructorName, cl.InstructorEmail, cl.Price,
		cl.AvailableSeats, cl.Students, cl.Details)
	return row.Scan(&cl.ID, &cl.CreatedAt)
}

func (r *ClassRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.Pool.Exec(ctx, `
		DELETE FROM classes
		WHERE id = $1
	`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.ClassRepository = (*ClassRepository)(nil)
