package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openboard/backend/internal/db"
	"github.com/openboard/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	store  UserStore
	tokens *TokenService
}

func NewAuthService(store UserStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Signup registers a new user. No token is issued; the caller must log in
// separately.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingField
	}

	// Advisory pre-check only: the UNIQUE constraint on users.email is the
	// real guarantee. Two concurrent signups can both pass this lookup.
	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrDuplicateEmail
	}
	if !db.IsNoRows(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.store.CreateUser(ctx, name, email, string(hash)); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

// Login verifies the password against the stored hash and issues a token.
// Unknown email and wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
