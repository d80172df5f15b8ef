package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	user    user.User
	getErr  error
	exists  bool
	created *user.User
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.created = &u
	return nil
}

func (m *mockUserRepo) GetByID(context.Context, uuid.UUID) (user.User, error) {
	return m.user, m.getErr
}

func (m *mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return m.user, m.getErr
}

func (m *mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return m.exists, nil
}

type mockSessionStore struct {
	active  bool
	known   bool
	saved   []string
	revoked []string
}

func (m *mockSessionStore) Save(_ context.Context, token string, _ uuid.UUID) error {
	m.saved = append(m.saved, token)
	return nil
}

func (m *mockSessionStore) IsActive(context.Context, string, uuid.UUID) (bool, bool) {
	return m.active, m.known
}

func (m *mockSessionStore) Revoke(_ context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	return nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 720*time.Hour)
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, testJWT(), &mockSessionStore{})

	_, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.fr", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{exists: true}, testJWT(), &mockSessionStore{})

	_, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.fr", Password: "longenough"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthUsecase_Register_NormalizesEmailAndIssuesTokens(t *testing.T) {
	repo := &mockUserRepo{}
	sessions := &mockSessionStore{}
	uc := NewAuthUsecase(repo, testJWT(), sessions)

	usr, pair, err := uc.Register(context.Background(), RegisterInput{Email: "  User@Example.FR ", Password: "longenough"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "user@example.fr" {
		t.Fatalf("expected normalized email, got %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens issued")
	}
	if len(sessions.saved) != 1 || sessions.saved[0] != pair.RefreshToken {
		t.Fatalf("expected refresh token saved to the session store")
	}
	if repo.created == nil || repo.created.PasswordHash == "longenough" {
		t.Fatalf("expected stored hash, not the raw password")
	}
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	repo := &mockUserRepo{user: user.User{ID: uuid.New(), Email: "a@b.fr", PasswordHash: string(hash)}}
	uc := NewAuthUsecase(repo, testJWT(), &mockSessionStore{})

	_, _, err = uc.Login(context.Background(), LoginInput{Email: "a@b.fr", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{getErr: user.ErrNotFound}, testJWT(), &mockSessionStore{})

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.fr", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_Refresh_RejectsAccessToken(t *testing.T) {
	jwtSvc := testJWT()
	uc := NewAuthUsecase(&mockUserRepo{}, jwtSvc, &mockSessionStore{})

	access, err := jwtSvc.GenerateAccessToken(uuid.New(), "a@b.fr")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err = uc.Refresh(context.Background(), access)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_Refresh_RejectsRevokedToken(t *testing.T) {
	jwtSvc := testJWT()
	userID := uuid.New()
	uc := NewAuthUsecase(
		&mockUserRepo{user: user.User{ID: userID, Email: "a@b.fr"}},
		jwtSvc,
		&mockSessionStore{known: true, active: false},
	)

	refresh, err := jwtSvc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err = uc.Refresh(context.Background(), refresh)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_Refresh_RotatesToken(t *testing.T) {
	jwtSvc := testJWT()
	userID := uuid.New()
	sessions := &mockSessionStore{known: true, active: true}
	uc := NewAuthUsecase(
		&mockUserRepo{user: user.User{ID: userID, Email: "a@b.fr"}},
		jwtSvc,
		sessions,
	)

	refresh, err := jwtSvc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pair, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a fresh token pair")
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != refresh {
		t.Fatalf("expected the old refresh token revoked")
	}
	if len(sessions.saved) != 1 || sessions.saved[0] != pair.RefreshToken {
		t.Fatalf("expected the new refresh token saved")
	}
}

func TestAuthUsecase_Refresh_UnknownStoreFallsBackToStateless(t *testing.T) {
	jwtSvc := testJWT()
	userID := uuid.New()
	uc := NewAuthUsecase(
		&mockUserRepo{user: user.User{ID: userID, Email: "a@b.fr"}},
		jwtSvc,
		&mockSessionStore{known: false, active: false},
	)

	refresh, err := jwtSvc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Refresh(context.Background(), refresh); err != nil {
		t.Fatalf("expected stateless fallback to succeed, got %v", err)
	}
}

func TestAuthUsecase_Logout_EmptyTokenIsNoop(t *testing.T) {
	sessions := &mockSessionStore{}
	uc := NewAuthUsecase(&mockUserRepo{}, testJWT(), sessions)

	if err := uc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sessions.revoked) != 0 {
		t.Fatalf("expected no revocation for empty token")
	}
}
