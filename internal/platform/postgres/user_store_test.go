package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPostgresUserStore_NilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresUserStore(nil, bcrypt.MinCost, nil) })
}

func TestPostgresUserStore_Create(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresUserStore(db, bcrypt.MinCost, discardLogger())

	user, err := domain.NewUser("learner@example.com", "correct-horse-battery")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, "learner@example.com", sqlmock.AnyArg(), user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), user))
	assert.Empty(t, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("correct-horse-battery")))
}

func TestPostgresUserStore_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresUserStore(db, bcrypt.MinCost, discardLogger())

	user, err := domain.NewUser("learner@example.com", "correct-horse-battery")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err = s.Create(context.Background(), user)
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.Empty(t, user.HashedPassword)
}

func TestPostgresUserStore_Create_Invalid(t *testing.T) {
	db, _ := newMock(t)
	s := NewPostgresUserStore(db, bcrypt.MinCost, discardLogger())

	err := s.Create(context.Background(), &domain.User{ID: uuid.New(), Email: "nope"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestPostgresUserStore_GetByEmail(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresUserStore(db, bcrypt.MinCost, discardLogger())

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("learner@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "created_at", "updated_at"}).
			AddRow(id.String(), "learner@example.com", "$2a$04$hash", now, now))

	user, err := s.GetByEmail(context.Background(), "  Learner@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "$2a$04$hash", user.HashedPassword)
}

func TestPostgresUserStore_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresUserStore(db, bcrypt.MinCost, discardLogger())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
