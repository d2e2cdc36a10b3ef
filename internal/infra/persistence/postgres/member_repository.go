// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"forum/internal/domain/entity"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/repository"
	"forum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memberRepository implements the repository.MemberRepository interface using GORM.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
// It returns the repository as a repository.MemberRepository interface, adhering to dependency inversion.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// FindByIdentifier retrieves the member matching the pseudo verbatim or
// the email case-insensitively. Email case normalization happens here
// and nowhere else; both sides of the predicate are lowercased. The
// unique constraints on both columns guarantee at most one row can match.
func (repo *memberRepository) FindByIdentifier(ctx context.Context, pseudo string, email string) (*entity.Member, error) {
	var memberM model.MemberModel

	err := repo.db.WithContext(ctx).
		Where("pseudo = ? OR LOWER(email) = ?", pseudo, strings.ToLower(email)).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by identifier")
	}

	return toMemberDomain(&memberM), nil
}

// FindByID retrieves a single member by their unique ID.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return toMemberDomain(&memberM), nil
}

// Create persists a new member. A unique-constraint violation surfaced
// by the insert becomes ErrDuplicateAccount; the row is never written,
// so a failed registration leaves the store unchanged.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		return mapMemberCreateError(err)
	}

	// Propagate the generated ID and timestamps back to the entity.
	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// mapMemberCreateError classifies an insert failure. A unique-constraint
// violation is the duplicate-account case; everything else stays an
// opaque database error.
func mapMemberCreateError(err error) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrDuplicateAccount.WrapMessage("pseudo or email already exists")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, "missing required member information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:           data.ID,
		Pseudo:       data.Pseudo,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromMemberDomain(data *entity.Member) *model.MemberModel {
	if data == nil {
		return nil
	}

	return &model.MemberModel{
		ID:           data.ID,
		Pseudo:       data.Pseudo,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
	}
}
