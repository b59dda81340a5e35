package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"familykitchen/internal/domain"
	"familykitchen/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) UpdateDisplayName(ctx context.Context, id int64, displayName string) (*domain.User, error) {
	args := m.Called(ctx, id, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(repo UserRepository) (*Service, *jwt.Service) {
	tokens := jwt.New("test-secret", time.Hour)
	return NewService(repo, tokens), tokens
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc, tokens := newTestService(repo)
	ctx := context.Background()

	user := &domain.User{ID: 2, Username: "you", PasswordHash: hashed(t, "password")}
	repo.On("GetByUsername", ctx, "you").Return(user, nil)

	got, token, err := svc.Login(ctx, LoginRequest{Username: " you ", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, user, got)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 2, claims.UserID)
	assert.False(t, claims.IsGuest)
	repo.AssertExpectations(t)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(*mockUserRepo)
		req   LoginRequest
	}{
		{
			name: "unknown user",
			setup: func(r *mockUserRepo) {
				r.On("GetByUsername", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			req: LoginRequest{Username: "ghost", Password: "password"},
		},
		{
			name: "wrong password",
			setup: func(r *mockUserRepo) {
				r.On("GetByUsername", ctx, "you").
					Return(&domain.User{ID: 2, Username: "you", PasswordHash: hashed(t, "password")}, nil)
			},
			req: LoginRequest{Username: "you", Password: "nope"},
		},
		{
			name: "guest account",
			setup: func(r *mockUserRepo) {
				r.On("GetByUsername", ctx, "guest_1").
					Return(&domain.User{ID: 9, Username: "guest_1", IsGuest: true}, nil)
			},
			req: LoginRequest{Username: "guest_1", Password: ""},
		},
		{
			name:  "blank username",
			setup: func(*mockUserRepo) {},
			req:   LoginRequest{Username: "   ", Password: "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepo)
			tt.setup(repo)
			svc, _ := newTestService(repo)

			_, token, err := svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestLogin_StoreError(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "you").Return(nil, errors.New("disk on fire"))

	_, _, err := svc.Login(ctx, LoginRequest{Username: "you", Password: "password"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGuestLogin_DefaultsName(t *testing.T) {
	repo := new(mockUserRepo)
	svc, tokens := newTestService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.IsGuest && u.DisplayName == "Guest" && strings.HasPrefix(u.Username, "guest_") && u.PasswordHash == ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 10
	}).Return(nil)

	user, token, err := svc.GuestLogin(ctx, GuestRequest{DisplayName: "   "})
	require.NoError(t, err)
	assert.EqualValues(t, 10, user.ID)
	assert.Equal(t, "Guest", user.MemberName())

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsGuest)
	repo.AssertExpectations(t)
}

func TestGuestLogin_UsernamesAreUnique(t *testing.T) {
	svc, _ := newTestService(new(mockUserRepo))
	fixed := time.UnixMilli(1700000000000)
	svc.now = func() time.Time { return fixed }

	a := svc.guestUsername()
	b := svc.guestUsername()
	assert.True(t, strings.HasPrefix(a, "guest_1700000000000_"))
	assert.NotEqual(t, a, b)
}

func TestGuestLogin_NameTooLong(t *testing.T) {
	svc, _ := newTestService(new(mockUserRepo))

	_, _, err := svc.GuestLogin(context.Background(), GuestRequest{DisplayName: strings.Repeat("a", 51)})
	assert.ErrorIs(t, err, ErrInvalidDisplayName)
}

func TestUpdateDisplayName(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)
	ctx := context.Background()

	repo.On("UpdateDisplayName", ctx, int64(2), "Chef").
		Return(&domain.User{ID: 2, Username: "you", DisplayName: "Chef"}, nil)

	user, err := svc.UpdateDisplayName(ctx, 2, UpdateMeRequest{DisplayName: "  Chef "})
	require.NoError(t, err)
	assert.Equal(t, "Chef", user.DisplayName)

	_, err = svc.UpdateDisplayName(ctx, 2, UpdateMeRequest{DisplayName: " "})
	assert.ErrorIs(t, err, ErrInvalidDisplayName)
	repo.AssertExpectations(t)
}
