package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Register(ctx, RegisterInput{Name: "Ann", Surnames: "Lee", Email: " a@x.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.True(t, auth.VerifyPassword("secret1", u.PasswordHash))
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"missing name", RegisterInput{Surnames: "L", Email: "a@x.com", Password: "p"}, common.ErrValidation},
		{"missing surnames", RegisterInput{Name: "A", Email: "a@x.com", Password: "p"}, common.ErrValidation},
		{"missing email", RegisterInput{Name: "A", Surnames: "L", Password: "p"}, common.ErrValidation},
		{"missing password", RegisterInput{Name: "A", Surnames: "L", Email: "a@x.com"}, common.ErrValidation},
		{"bad email", RegisterInput{Name: "A", Surnames: "L", Email: "invalidemail.com", Password: "p"}, common.ErrInvalidEmail},
		{"password too long", RegisterInput{Name: "A", Surnames: "L", Email: "a@x.com", Password: strings.Repeat("p", 100)}, common.ErrPasswordTooLong},
		{"name too long", RegisterInput{Name: strings.Repeat("n", 101), Surnames: "L", Email: "a@x.com", Password: "p"}, common.ErrTooLong},
		{"surnames too long", RegisterInput{Name: "A", Surnames: strings.Repeat("s", 101), Email: "a@x.com", Password: "p"}, common.ErrTooLong},
		{"email too long", RegisterInput{Name: "A", Surnames: "L", Email: strings.Repeat("a", 115) + "@x.com", Password: "p"}, common.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.Register(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, f.repos.UserCount())
}

func TestRegister_LengthLimitsCountCharacters(t *testing.T) {
	f := newFixture(t)

	// 100 two-byte runes fit a VARCHAR(100) column.
	name := strings.Repeat("é", 100)
	u, err := f.users.Register(context.Background(), RegisterInput{Name: name, Surnames: "L", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
}

func TestRegister_Duplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := RegisterInput{Name: "Ann", Surnames: "Lee", Email: "a@x.com", Password: "secret1"}

	_, err := f.users.Register(ctx, in)
	require.NoError(t, err)

	_, err = f.users.Register(ctx, in)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Equal(t, 1, f.repos.UserCount())
}

func TestRegister_DuplicateRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	iss, err := auth.NewIssuer([]byte("k"), 0)
	require.NoError(t, err)
	svc := NewUserService(dbx.NewSQLRunner(db), repomanager.NewPostgresRepositoryManager(), iss).WithHashCost(bcrypt.MinCost)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, surnames, email, password_hash, created_at FROM users`)).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "surnames", "email", "password_hash", "created_at"}).
			AddRow(1, "Ann", "Lee", "a@x.com", "h", time.Time{}))
	mock.ExpectRollback()

	_, err = svc.Register(context.Background(), RegisterInput{Name: "Ann", Surnames: "Lee", Email: "a@x.com", Password: "p"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_StorageErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	iss, err := auth.NewIssuer([]byte("k"), 0)
	require.NoError(t, err)
	svc := NewUserService(dbx.NewSQLRunner(db), repomanager.NewPostgresRepositoryManager(), iss).WithHashCost(bcrypt.MinCost)

	boom := errors.New("conn lost")
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, surnames, email, password_hash, created_at FROM users`)).
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err = svc.Register(context.Background(), RegisterInput{Name: "Ann", Surnames: "Lee", Email: "a@x.com", Password: "p"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, RegisterInput{Name: "Ann", Surnames: "Lee", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	sess, err := f.users.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", sess.User.Name)

	email, err := f.issuer.Parse(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	_, err = f.users.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = f.users.Login(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = f.users.Login(ctx, "", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.users.Login(ctx, "invalidemail.com", "password123")
	assert.ErrorIs(t, err, common.ErrInvalidEmail)
}
