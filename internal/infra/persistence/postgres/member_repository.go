package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// FindMemberByID retrieves a member by their unique ID.
func (repo *memberRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by ID")
	}

	return toMemberDomain(&memberM), nil
}

// TouchTokenUpdate bumps the member's last_token_update timestamp.
func (repo *memberRepository) TouchTokenUpdate(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", id).
		Update("last_token_update", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last token update")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// UpdatePreferences stores the full preference set for a member. The
// caller merges partial updates over the current values first.
func (repo *memberRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs entity.NotificationPreferences) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"notify_events":   prefs.Events,
			"notify_projects": prefs.Projects,
			"notify_admin":    prefs.Admin,
			"notify_email":    prefs.Email,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMemberDomain converts a GORM MemberModel to a domain Member entity.
func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:          data.ID,
		DisplayName: data.DisplayName,
		Role:        entity.Role(data.Role),
		Preferences: entity.NotificationPreferences{
			Events:   data.NotifyEvents,
			Projects: data.NotifyProjects,
			Admin:    data.NotifyAdmin,
			Email:    data.NotifyEmail,
		},
		LastTokenUpdate: data.LastTokenUpdate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
