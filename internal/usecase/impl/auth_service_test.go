package impl

import (
	"context"
	"testing"

	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	memberRepo   *mockMemberRepo
	hasher       *mockHasher
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	memberRepo := &mockMemberRepo{}
	hasher := &mockHasher{}
	tokenService := &mockTokenService{}

	service := NewAuthService(AuthServiceParams{
		MemberRepo:   memberRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	t.Cleanup(func() {
		memberRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenService.AssertExpectations(t)
	})

	return authServiceFixtures{
		service:      service,
		memberRepo:   memberRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Pseudo:   "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	}
	memberID := uuid.New()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.memberRepo.On("Create", ctx, mock.AnythingOfType("*entity.Member")).
		Run(func(args mock.Arguments) {
			member := args.Get(1).(*entity.Member)
			member.ID = memberID
		}).
		Return(nil)
	fx.tokenService.On("Issue", memberID, "alice", false).Return("signed.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.Token)
	assert.Equal(t, "alice", output.Member.Pseudo)
	// The stored email keeps its original casing.
	assert.Equal(t, "Alice@Example.com", output.Member.Email)
	assert.Equal(t, "hashed_password", output.Member.PasswordHash)
	// Fresh accounts are never admins.
	assert.False(t, output.Member.IsAdmin)
}

func TestAuthService_Register_DuplicateAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Pseudo:   "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.memberRepo.On("Create", ctx, mock.AnythingOfType("*entity.Member")).
		Return(domainerrors.ErrDuplicateAccount.WrapMessage("pseudo or email already exists"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
	// No token must be issued for a failed registration.
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_HashingFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Pseudo:   "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	fx.hasher.On("Hash", input.Password).
		Return("", domainerrors.ErrPasswordHashFailed.WrapMessage("entropy failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	member := &entity.Member{
		ID:           uuid.New(),
		Pseudo:       "alice",
		Email:        "alice@example.com",
		PasswordHash: "stored_hash",
	}

	fx.memberRepo.On("FindByIdentifier", ctx, "alice", "alice").Return(member, nil)
	fx.hasher.On("Check", "secret123", "stored_hash").Return(true)
	fx.tokenService.On("Issue", member.ID, "alice", false).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.Token)
}

func TestAuthService_Login_IdentifierReachesStoreVerbatim(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	member := &entity.Member{
		ID:           uuid.New(),
		Pseudo:       "alice",
		Email:        "Alice@Example.com",
		PasswordHash: "stored_hash",
	}

	// Email case normalization belongs to the store; the service passes
	// the identifier untouched in both predicate positions.
	fx.memberRepo.On("FindByIdentifier", ctx, "ALICE@example.com", "ALICE@example.com").
		Return(member, nil)
	fx.hasher.On("Check", "secret123", "stored_hash").Return(true)
	fx.tokenService.On("Issue", member.ID, "alice", false).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ALICE@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token", output.Token)
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.memberRepo.On("FindByIdentifier", ctx, "ghost", "ghost").
		Return(nil, repository.ErrMemberNotFound)
	// The dummy comparison still runs so the timing matches the
	// wrong-password path.
	fx.hasher.On("Check", "secret123", dummyHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrBadCredential))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	member := &entity.Member{
		ID:           uuid.New(),
		Pseudo:       "alice",
		PasswordHash: "stored_hash",
	}

	fx.memberRepo.On("FindByIdentifier", ctx, "alice", "alice").Return(member, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrBadCredential))
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	member := &entity.Member{
		ID:           uuid.New(),
		Pseudo:       "alice",
		PasswordHash: "stored_hash",
	}

	fx.memberRepo.On("FindByIdentifier", ctx, "ghost", "ghost").
		Return(nil, repository.ErrMemberNotFound)
	fx.memberRepo.On("FindByIdentifier", ctx, "alice", "alice").Return(member, nil)
	fx.hasher.On("Check", "wrong", dummyHash).Return(false)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "wrong"})
	_, wrongPassErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	// Both paths must resolve to the exact same client-visible error.
	var unknownApp, wrongPassApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongPassErr, &wrongPassApp))
	assert.Equal(t, unknownApp.HTTPCode(), wrongPassApp.HTTPCode())
	assert.Equal(t, unknownApp.Message(), wrongPassApp.Message())
	assert.Equal(t, unknownApp.ErrorCode(), wrongPassApp.ErrorCode())
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	memberID := uuid.New()
	// The account was promoted after its current token was issued; the
	// refreshed token must carry the new flag.
	member := &entity.Member{
		ID:      memberID,
		Pseudo:  "alice",
		IsAdmin: true,
	}

	fx.memberRepo.On("FindByID", ctx, memberID).Return(member, nil)
	fx.tokenService.On("Issue", memberID, "alice", true).Return("fresh.token", nil)

	output, err := fx.service.Refresh(ctx, memberID)

	require.NoError(t, err)
	assert.Equal(t, "fresh.token", output.Token)
	assert.True(t, output.Member.IsAdmin)
}

func TestAuthService_Refresh_AccountVanished(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	memberID := uuid.New()

	fx.memberRepo.On("FindByID", ctx, memberID).Return(nil, repository.ErrMemberNotFound)

	output, err := fx.service.Refresh(ctx, memberID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}
