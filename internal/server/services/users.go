package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/mcnijman/go-emailaddress"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Surnames string
	Email    string
	Password string
}

// Session is what a successful login hands to the HTTP layer.
type Session struct {
	Token string
	User  *models.User
}

type UserService struct {
	runner      dbx.TxRunner
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	hashCost    int
}

func NewUserService(runner dbx.TxRunner, m repomanager.RepositoryManager, issuer *auth.Issuer) *UserService {
	return &UserService{
		runner:      runner,
		repomanager: m,
		issuer:      issuer,
		hashCost:    bcrypt.DefaultCost,
	}
}

// WithHashCost overrides the bcrypt work factor.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

// Register validates the input and stores a new user. Missing fields yield
// ErrValidation, oversized ones ErrTooLong or ErrPasswordTooLong, a malformed
// address ErrInvalidEmail and a taken address ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if blank(in.Name, in.Surnames, in.Email, in.Password) {
		return nil, common.ErrValidation
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if tooLong(maxNameLen, in.Name, in.Surnames) || tooLong(maxEmailLen, email) {
		return nil, common.ErrTooLong
	}

	digest, err := auth.HashPasswordCost(in.Password, s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, common.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var created *models.User
	err = s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			return common.ErrAlreadyExists
		case !errors.Is(err, common.ErrNotFound):
			return err
		}

		created, err = repo.Create(ctx, &models.User{
			Name:         in.Name,
			Surnames:     in.Surnames,
			Email:        email,
			PasswordHash: digest,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login checks the credentials and mints a session token. Unknown emails and
// wrong passwords both yield ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	if blank(email, password) {
		return nil, common.ErrValidation
	}

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.runner.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	token, err := s.issuer.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}

func normalizeEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := emailaddress.Parse(s); err != nil {
		return "", common.ErrInvalidEmail
	}
	return s, nil
}
