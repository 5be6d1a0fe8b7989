package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const bcryptCost = 10

type Config struct {
	Email      string
	Password   string
	LoginDelay time.Duration
	SessionTTL time.Duration
}

// Service owns the session lifecycle: login sets it, logout clears it, and
// every protected request checks it. Sessions live in a TTL cache so a token
// is revocable before its JWT expiry.
type Service struct {
	cfg          Config
	passwordHash []byte
	jwtSvc       auth.JWTService
	sessions     *cache.Cache
}

func NewService(cfg Config, jwtSvc auth.JWTService) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash configured password: %w", err)
	}

	return &Service{
		cfg:          cfg,
		passwordHash: hash,
		jwtSvc:       jwtSvc,
		sessions:     cache.New(cfg.SessionTTL, 10*time.Minute),
	}, nil
}

// Login checks the staff credential after the configured artificial delay.
// The delay is cancellable: if ctx wins, the caller gets ctx.Err() and no
// credential check happens.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	if s.cfg.LoginDelay > 0 {
		timer := time.NewTimer(s.cfg.LoginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if email != s.cfg.Email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(sessionID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.sessions.Set(sessionID, email, cache.DefaultExpiration)

	return &model.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Validate accepts a token only while its session is registered, so logout
// actually revokes access rather than waiting out the JWT expiry.
func (s *Service) Validate(ctx context.Context, token string) (*model.SessionClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if _, ok := s.sessions.Get(claims.SessionID); !ok {
		return nil, fmt.Errorf("session expired or logged out")
	}

	return &model.SessionClaims{
		SessionID: claims.SessionID,
		Email:     claims.Email,
	}, nil
}

// Logout clears the session. An invalid or already-expired token clears
// nothing and is not an error; logout is idempotent.
func (s *Service) Logout(ctx context.Context, token string) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return
	}
	s.sessions.Delete(claims.SessionID)
}
