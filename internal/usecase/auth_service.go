package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService issues and verifies stateless bearer tokens. Verification
// never touches the store: the signed claims are the whole session.
type AuthService struct {
	userRepo user.Repository
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewAuthService(userRepo user.Repository, secret string, tokenTTL time.Duration, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if password == "" {
		return 0, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.userRepo.Create(ctx, user.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if errors.Is(err, user.ErrDuplicateUsername) {
		return 0, fmt.Errorf("%w: username %q is taken", ErrConflict, username)
	}
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", userID)
	return userID, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", 0, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", 0, fmt.Errorf("get user by username: %w", err)
	}
	if !exists {
		return "", 0, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(item.PasswordHash), []byte(password)); err != nil {
		return "", 0, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(item.ID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}

	return token, item.ID, nil
}

// VerifyAccessToken checks the signature and expiry of a bearer token and
// returns the embedded principal. It is deliberately store-free so auth
// checks stay O(1).
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyAccessToken")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", ErrUnauthorized)
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Principal{}, fmt.Errorf("%w: token is expired", ErrUnauthorized)
		}
		return user.Principal{}, fmt.Errorf("%w: token is invalid", ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return user.Principal{}, fmt.Errorf("%w: token is invalid", ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return user.Principal{}, fmt.Errorf("%w: token subject is invalid", ErrUnauthorized)
	}

	return user.Principal{UserID: userID}, nil
}
