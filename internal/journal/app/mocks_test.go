package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/domain/services"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetAll(ctx context.Context) []*entities.User {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.User)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entities.User), args.Bool(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, bool) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entities.User), args.Bool(1)
}

func (m *mockUserRepository) Create(ctx context.Context, reg entities.UserRegistration) (*entities.User, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Upsert(ctx context.Context, data entities.UserUpsert) (*entities.User, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) {
	m.Called(ctx, id)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockSessionAuthenticator struct {
	mock.Mock
}

func (m *mockSessionAuthenticator) Login(ctx context.Context, userID string) (*entities.IssuedSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.IssuedSession), args.Error(1)
}

func (m *mockSessionAuthenticator) Validate(ctx context.Context, token string) (string, bool) {
	args := m.Called(ctx, token)
	return args.String(0), args.Bool(1)
}

func (m *mockSessionAuthenticator) Destroy(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *mockSessionAuthenticator) Authorize(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(ctx context.Context, claims services.TokenClaims) (string, error) {
	args := m.Called(ctx, claims)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Parse(ctx context.Context, token string) (*services.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenClaims), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Store(ctx context.Context, s *entities.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSessionRepository) Find(ctx context.Context, id string) (*entities.Session, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entities.Session), args.Bool(1), args.Error(2)
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSessionRepository) CleanupExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockSessionRepository) Close() error {
	return m.Called().Error(0)
}

type mockInsightRepository struct {
	mock.Mock
}

func (m *mockInsightRepository) GetAll(ctx context.Context) []*entities.Insight {
	return m.Called(ctx).Get(0).([]*entities.Insight)
}

func (m *mockInsightRepository) GetByID(ctx context.Context, id string) (*entities.Insight, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entities.Insight), args.Bool(1)
}

func (m *mockInsightRepository) Create(ctx context.Context, in entities.InsightInput) (*entities.Insight, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Insight), args.Error(1)
}

func (m *mockInsightRepository) Update(ctx context.Context, id string, patch entities.InsightPatch) (*entities.Insight, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Insight), args.Error(1)
}

func (m *mockInsightRepository) Delete(ctx context.Context, id string) {
	m.Called(ctx, id)
}
