// Package users registers accounts and logs them in, handing out session
// tokens from an auth.Issuer.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/photoalbum/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs a session token for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type Service struct {
	repo   Repository
	issuer TokenIssuer
	cost   int
}

func NewService(repo Repository, issuer TokenIssuer) *Service {
	return &Service{repo: repo, issuer: issuer, cost: bcrypt.DefaultCost}
}

// Register creates the account and returns a session token for it.
// Empty fields yield common.ErrorValidation and a taken email
// common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (string, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)
	if email == "" || password == "" || fullName == "" {
		return "", common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %w", common.ErrorInternal, err)
	}

	user, err := s.repo.Create(ctx, &User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("%w: create user: %w", common.ErrorInternal, err)
	}

	return s.issue(user)
}

// Login checks the credentials and returns a fresh session token. Unknown
// emails and wrong passwords both yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: find user: %w", common.ErrorInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}

	return s.issue(user)
}

func (s *Service) issue(user *User) (string, error) {
	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return token, nil
}
