package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/errs"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

var userColumns = []string{"id", "email", "name", "photo_url", "role", "created_at", "updated_at"}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, name, photo_url, role, created_at, updated_at`).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("u1", "a@x.com", "Ada", "", entity.RoleAdmin, now, now))
	u, err := r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, entity.RoleAdmin, u.Role)

	mock.ExpectQuery(`SELECT id, email, name, photo_url, role, created_at, updated_at`).
		WithArgs("missing@x.com").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.FindByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Insert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepository(db)
	now := time.Now()

	u := &entity.User{Email: "a@x.com", Name: "Ada"}
	mock.ExpectQuery(`INSERT INTO users \(email, name, photo_url, role\)`).
		WithArgs("a@x.com", "Ada", "", entity.RoleNone).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("u1", now, now))

	require.NoError(t, r.Insert(context.Background(), u))
	require.Equal(t, "u1", u.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateRole(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE users`).
		WithArgs("u1", entity.RoleAdmin).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	n, err := r.UpdateRole(ctx, "u1", entity.RoleAdmin)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	// granting to a missing id matches zero rows, not an error
	mock.ExpectExec(`UPDATE users`).
		WithArgs("missing", entity.RoleInstructor).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	n, err = r.UpdateRole(ctx, "missing", entity.RoleInstructor)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs("u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	n, err := r.Delete(context.Background(), "u1")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, name, photo_url, role, created_at, updated_at`).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("u1", "a@x.com", "Ada", "", entity.RoleNone, now, now).
			AddRow("u2", "b@x.com", "Ben", "", entity.RoleInstructor, now, now))

	users, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "b@x.com", users[1].Email)

	require.NoError(t, mock.ExpectationsWereMet())
}
