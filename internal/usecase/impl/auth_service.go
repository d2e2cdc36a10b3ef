// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "forum/internal/delivery/context"
	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/domain/service"
	"forum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyHash is a well-formed bcrypt hash used to burn a comparison when
// the identifier is unknown, so that path costs roughly the same as a
// wrong password against a real account.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	memberRepo   repository.MemberRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	MemberRepo   repository.MemberRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		memberRepo:   params.MemberRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a member account and issues its first token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("pseudo", input.Pseudo))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newMember := &entity.Member{
		Pseudo:       input.Pseudo,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsAdmin:      false,
	}

	// No pre-check: the store's unique constraints arbitrate concurrent
	// registrations, and a violation surfaces as ErrDuplicateAccount.
	if err := srv.memberRepo.Create(ctx, newMember); err != nil {
		srv.log(ctx).Warn("Failed to create member", slog.String("pseudo", input.Pseudo), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create member during registration")
	}

	srv.log(ctx).Debug("Member registered successfully", slog.Any("memberID", newMember.ID))

	return srv.issueToken(ctx, newMember)
}

// Login verifies a credential pair and issues a token on success.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting login")

	// The identifier is matched against pseudo verbatim and against
	// email case-insensitively; the store owns the normalization.
	member, err := srv.memberRepo.FindByIdentifier(ctx, input.Identifier, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			// Burn a comparison so an unknown identifier is not
			// distinguishable from a wrong password by response time.
			srv.hasher.Check(input.Password, dummyHash)
			srv.log(ctx).Warn("Login failed", slog.Any("error", domainerrors.ErrBadCredential))

			return nil, errors.Wrap(domainerrors.ErrBadCredential, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find member by identifier")
	}

	// Wrong password and unknown identifier produce the same failure;
	// the caller must not learn which one happened.
	if !srv.hasher.Check(input.Password, member.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("error", domainerrors.ErrBadCredential))

		return nil, errors.Wrap(domainerrors.ErrBadCredential, "login failed")
	}

	srv.log(ctx).Debug("Member logged in successfully", slog.Any("memberID", member.ID))

	return srv.issueToken(ctx, member)
}

// Refresh issues a fresh token for an already-authenticated member id.
// Reloading the account lets a changed isAdmin flag propagate into the
// new token without requiring re-login.
func (srv *authService) Refresh(ctx context.Context, memberID uuid.UUID) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Refreshing token", slog.Any("memberID", memberID))

	member, err := srv.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			srv.log(ctx).Warn("Refresh for vanished account", slog.Any("memberID", memberID))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return srv.issueToken(ctx, member)
}

// issueToken signs a claim set from the member's current state.
func (srv *authService) issueToken(ctx context.Context, member *entity.Member) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.Issue(member.ID, member.Pseudo, member.IsAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("memberID", member.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.TokenOutput{
		Token:  token,
		Member: member,
	}, nil
}
