package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	user := User{
		ID:           "user-1",
		Email:        "ada@example.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "$2a$10$hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID,
			user.Email,
			user.FirstName,
			user.LastName,
			user.PasswordHash,
			nil, // picture_url
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))

	err = repo.Create(context.Background(), User{ID: "user-1", Email: "ada@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestPGRepoGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "password_hash", "picture_url", "created_at", "updated_at",
	}).AddRow("user-1", "ada@example.com", "Ada", "Lovelace", "$2a$10$hash", nil, created, created)

	mock.ExpectQuery("SELECT id, email, first_name, last_name, password_hash, picture_url").
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if user.FirstName != "Ada" || user.PasswordHash != "$2a$10$hash" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, email, first_name, last_name, password_hash, picture_url").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "first_name", "last_name", "password_hash", "picture_url", "created_at", "updated_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
