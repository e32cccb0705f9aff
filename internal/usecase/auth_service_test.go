package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
)

func TestAuthService_RegisterLoginVerify(t *testing.T) {
	ctx := context.Background()
	userRepo := memory.NewUserRepository(nil)
	service := NewAuthService(userRepo, "test-secret", 24*time.Hour, nil)

	registeredID, err := service.Register(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registeredID == 0 {
		t.Fatalf("expected registered user to have an id")
	}

	stored, exists, err := userRepo.GetByID(ctx, registeredID)
	if err != nil || !exists {
		t.Fatalf("stored user missing: exists=%v err=%v", exists, err)
	}
	if stored.PasswordHash == "s3cret" {
		t.Fatalf("password must not be stored in plain text")
	}

	token, userID, err := service.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if userID != registeredID {
		t.Fatalf("unexpected login user id: got=%d want=%d", userID, registeredID)
	}

	principal, err := service.VerifyAccessToken(ctx, token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.UserID != registeredID {
		t.Fatalf("unexpected subject: got=%d want=%d", principal.UserID, registeredID)
	}
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(memory.NewUserRepository(nil), "test-secret", 24*time.Hour, nil)

	if _, err := service.Register(ctx, "alice", "one"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := service.Register(ctx, "alice", "two"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(memory.NewUserRepository(nil), "test-secret", 24*time.Hour, nil)

	if _, err := service.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := service.Login(ctx, "alice", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", err)
	}
	if _, _, err := service.Login(ctx, "nobody", "s3cret"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestAuthService_TokenExpires(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(memory.NewUserRepository(nil), "test-secret", 24*time.Hour, nil)

	current := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return current }

	if _, err := service.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := service.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	current = current.Add(25 * time.Hour)
	if _, err := service.VerifyAccessToken(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestAuthService_VerifyRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(memory.NewUserRepository(nil), "test-secret", 24*time.Hour, nil)

	if _, err := service.VerifyAccessToken(ctx, "not-a-jwt"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
