package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"starwars/internal/domain"
	"starwars/internal/pkg/validator"
)

// Service handles registration, login and the user directory.
type Service struct {
	users     UserRepositoryInterface
	jwt       jwtService
	accessTTL time.Duration
}

type LoginResult struct {
	User        domain.UserSnapshot
	AccessToken string
	ExpiresIn   time.Duration
}

func NewService(users UserRepositoryInterface, jwt jwtService, accessTTL time.Duration) *Service {
	return &Service{
		users:     users,
		jwt:       jwt,
		accessTTL: accessTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByLogin(ctx, strings.TrimSpace(req.Login))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.UserSnapshot, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := user.Serialize()
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.UserSnapshot, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserSnapshot, 0, len(users))
	for i := range users {
		snap, err := users[i].Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// Deactivate blocks further logins; issued tokens stay valid until expiry.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	return s.users.SetActive(ctx, id, false)
}

// DeleteAccount removes the user together with all favorite links.
func (s *Service) DeleteAccount(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) issue(user *domain.User) (*LoginResult, error) {
	snap, err := user.Serialize()
	if err != nil {
		return nil, err
	}
	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: snap, AccessToken: token, ExpiresIn: s.accessTTL}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
