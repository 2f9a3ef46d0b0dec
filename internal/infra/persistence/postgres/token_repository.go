// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// UpsertToken creates the token row or reassigns an existing row to the
// given owner, reactivating it. Registration is idempotent: re-registering
// the same token under the same member only bumps updated_at.
func (repo *tokenRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.Assignments(map[string]any{
				"user_id":    tokenM.UserID,
				"is_active":  true,
				"updated_at": tokenM.UpdatedAt,
			}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMemberNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTokenRequired
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	token.Active = true
	token.SubscribedAt = tokenM.SubscribedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindTokenByValue retrieves a token row by its opaque value.
func (repo *tokenRepository) FindTokenByValue(ctx context.Context, token string) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token")
	}

	return toTokenDomain(&tokenM), nil
}

// FindActiveTokensByUser retrieves all active tokens owned by a member.
// This backs the dispatch fan-out, so it reads from a replica when one
// is configured.
func (repo *tokenRepository) FindActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("subscribed_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeactivateToken marks a single token inactive.
func (repo *tokenRepository) DeactivateToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("token = ?", token).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeactivateTokensByUser marks every token owned by a member inactive.
// Zero affected rows is not an error: unsubscribing with nothing
// registered is a no-op.
func (repo *tokenRepository) DeactivateTokensByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate tokens by user")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		Token:        data.Token,
		UserID:       data.UserID,
		Active:       data.IsActive,
		SubscribedAt: data.SubscribedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	now := time.Now()
	subscribedAt := data.SubscribedAt
	if subscribedAt.IsZero() {
		subscribedAt = now
	}

	return &model.DeviceTokenModel{
		Token:        data.Token,
		UserID:       data.UserID,
		IsActive:     data.Active,
		SubscribedAt: subscribedAt,
		UpdatedAt:    now,
	}
}
