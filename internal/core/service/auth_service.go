package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tendermarket/tendering-api/internal/core/domain"
	"github.com/tendermarket/tendering-api/internal/core/ports"
)

var emailValidator = validator.New()

// AuthService implements registration and login. Both operations issue a
// signed HS256 token embedding the principal's id and role.
type AuthService struct {
	repo      ports.AuthRepository
	audit     ports.AuditRecorder
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, audit ports.AuditRecorder, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, audit: audit, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if input.Username == "" || input.Email == "" {
		return "", domain.ErrEmptyUserFields
	}
	if err := emailValidator.Var(input.Email, "email"); err != nil {
		return "", domain.ErrInvalidEmail
	}
	if !domain.ValidRole(input.Role) {
		return "", domain.ErrInvalidRole
	}

	// Pre-checks give deterministic conflict messages; the unique indexes on
	// username and email remain the backstop under concurrent registration.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return "", domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return "", domain.ErrUsernameExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.audit.Record(domain.AuditEvent{
		EntityType: "user",
		EntityID:   created.ID,
		Action:     domain.AuditUserRegistered,
		ActorID:    created.ID,
		Detail:     created.Role,
		Timestamp:  time.Now().UTC(),
	})

	return s.generateToken(created)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(user)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
