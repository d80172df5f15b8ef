package usecase

import (
	"context"
	"errors"
	"strings"

	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type Auth struct {
	users    user.Repository
	jwt      jwt.Service
	sessions SessionStore
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, sessions SessionStore) *Auth {
	return &Auth{users: users, jwt: jwtSvc, sessions: sessions}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(strings.TrimSpace(in.Password)) < 8 {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	if exists {
		return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	usr := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	pair, err := u.issueTokens(ctx, usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(ctx, usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}

	// Revoked tokens are rejected only when the store can answer; an
	// unavailable store degrades to stateless validation.
	if active, known := u.sessions.IsActive(ctx, refreshToken, claims.UserID); known && !active {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}

	_ = u.sessions.Revoke(ctx, refreshToken)
	return u.issueTokens(ctx, usr)
}

func (u *Auth) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return u.sessions.Revoke(ctx, refreshToken)
}

func (u *Auth) issueTokens(ctx context.Context, usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	_ = u.sessions.Save(ctx, refresh, usr.ID)
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
