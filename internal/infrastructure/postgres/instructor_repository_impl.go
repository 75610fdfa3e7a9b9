package postgres

import (
	"context"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
)

type InstructorRepository struct {
	db *DB
}

func NewInstructorRepository(db *DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

func (r *InstructorRepository) List(ctx context.Context) ([]entity.Instructor, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, email, image, details
		FROM instructors
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instructors := make([]entity.Instructor, 0)
	for rows.Next() {
		var in entity.Instructor
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Image, &in.Details); err != nil {
			return nil, err
		}
		instructors = append(instructors, in)
	}
	return instructors, rows.Err()
}

var _ repository.InstructorRepository = (*InstructorRepository)(nil)
