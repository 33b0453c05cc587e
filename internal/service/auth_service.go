package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"
)

// OperatorCredentials is the single admin account, loaded from config. The
// password is stored as an Argon2id hash, never in the clear.
type OperatorCredentials struct {
	Username     string
	PasswordHash string
}

// AuthServiceImpl implements ports.AuthService for the operator console.
type AuthServiceImpl struct {
	creds    OperatorCredentials
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(creds OperatorCredentials, hashSvc ports.HashService, tokenSvc ports.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		creds:    creds,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
	}
}

// Login validates operator credentials and returns a JWT token with its
// expiry as unix seconds.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, int64, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1

	valid, err := s.hashSvc.Verify(password, s.creds.PasswordHash)
	if err != nil {
		return "", 0, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !usernameMatch || !valid {
		return "", 0, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(s.creds.Username)
	if err != nil {
		return "", 0, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

var _ ports.AuthService = (*AuthServiceImpl)(nil)
