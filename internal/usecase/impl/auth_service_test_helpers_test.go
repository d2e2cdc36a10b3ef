package impl

import (
	"context"
	"io"
	"log/slog"

	"forum/internal/domain/entity"
	"forum/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- hand-written testify mocks for the domain contracts ---

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) FindByIdentifier(ctx context.Context, pseudo string, email string) (*entity.Member, error) {
	args := m.Called(ctx, pseudo, email)
	if member, ok := args.Get(0).(*entity.Member); ok {
		return member, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	args := m.Called(ctx, id)
	if member, ok := args.Get(0).(*entity.Member); ok {
		return member, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMemberRepo) Create(ctx context.Context, member *entity.Member) error {
	args := m.Called(ctx, member)

	return args.Error(0)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(memberID uuid.UUID, pseudo string, isAdmin bool) (string, error) {
	args := m.Called(memberID, pseudo, isAdmin)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}
