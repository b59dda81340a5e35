package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"familykitchen/internal/database"
	"familykitchen/internal/domain"
	"familykitchen/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultGuestName  = "Guest"
	maxDisplayNameLen = 50
)

type Service struct {
	users  UserRepository
	tokens *jwt.Service
	now    func() time.Time
}

func NewService(users UserRepository, tokens *jwt.Service) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		now:    time.Now,
	}
}

// Login checks a member's password and issues a session token. Unknown users,
// guests and wrong passwords all fail with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("load user: %w", err)
	}

	if user.IsGuest || user.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.IsGuest)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

// GuestLogin creates a throwaway guest account and signs it in.
func (s *Service) GuestLogin(ctx context.Context, req GuestRequest) (*domain.User, string, error) {
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		name = defaultGuestName
	}
	if utf8.RuneCountInString(name) > maxDisplayNameLen {
		return nil, "", ErrInvalidDisplayName
	}

	user := &domain.User{
		Username:    s.guestUsername(),
		DisplayName: name,
		IsGuest:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("create guest: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, true)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// UpdateDisplayName renames the user. Existing comments and selections keep
// the name they were posted under.
func (s *Service) UpdateDisplayName(ctx context.Context, userID int64, req UpdateMeRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.DisplayName)
	if name == "" || utf8.RuneCountInString(name) > maxDisplayNameLen {
		return nil, ErrInvalidDisplayName
	}

	user, err := s.users.UpdateDisplayName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// SessionTTL is how long issued tokens, and so the cookie, stay valid.
func (s *Service) SessionTTL() time.Duration {
	return s.tokens.TTL()
}

// guestUsername is guest_<unix millis>_<suffix>; the suffix keeps two guests
// created in the same millisecond apart.
func (s *Service) guestUsername() string {
	return fmt.Sprintf("guest_%d_%s", s.now().UnixMilli(), uuid.NewString()[:8])
}
