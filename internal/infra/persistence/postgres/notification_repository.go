package postgres

import (
	"context"
	"encoding/json"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new inbox record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, record *entity.NotificationRecord) error {
	recordM, err := fromNotificationDomain(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode notification payload")
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMemberNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDispatchValidation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindRecentByUser retrieves the newest records for a member, ordered by
// creation time descending with ties broken by id. Inbox reads go to a
// replica when one is configured.
func (repo *notificationRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationRecord, error) {
	var recordModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent notifications")
	}

	return toNotificationDomainList(recordModels)
}

// FindUnreadByUser retrieves up to limit unread records in unspecified
// order. The caller sorts and truncates; combining the read filter with
// ordering stays out of the query contract.
func (repo *notificationRepository) FindUnreadByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationRecord, error) {
	var recordModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ? AND read = ?", userID, false).
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unread notifications")
	}

	return toNotificationDomainList(recordModels)
}

// CountUnreadByUser returns the member's true unread count, independent
// of any page truncation.
func (repo *notificationRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// CountByUserAndIDs returns how many of the given ids exist and belong
// to the member, regardless of read state.
func (repo *notificationRepository) CountByUserAndIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notifications by ids")
	}

	return count, nil
}

// MarkRead transitions the given records to read. The read filter keeps
// the transition one-way: rows already read keep their original read_at.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, readAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND id IN ? AND read = ?", userID, ids, false).
		Updates(map[string]any{
			"read":    true,
			"read_at": readAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark notifications read")
	}

	return result.RowsAffected, nil
}

// MarkAllRead transitions every unread record of a member to read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]any{
			"read":    true,
			"read_at": readAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain NotificationRecord entity.
func toNotificationDomain(data *model.NotificationModel) (*entity.NotificationRecord, error) {
	if data == nil {
		return nil, nil
	}

	var payload map[string]string
	if data.Data != "" {
		if err := json.Unmarshal([]byte(data.Data), &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification payload")
		}
	}

	return &entity.NotificationRecord{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		URL:       data.URL,
		Icon:      data.Icon,
		Tag:       data.Tag,
		Data:      payload,
		Read:      data.Read,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}, nil
}

func toNotificationDomainList(models []*model.NotificationModel) ([]*entity.NotificationRecord, error) {
	records := make([]*entity.NotificationRecord, 0, len(models))
	for _, recordM := range models {
		record, err := toNotificationDomain(recordM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// fromNotificationDomain converts a domain NotificationRecord entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.NotificationRecord) (*model.NotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	var payload string
	if len(data.Data) > 0 {
		raw, err := json.Marshal(data.Data)
		if err != nil {
			return nil, err
		}
		payload = string(raw)
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		URL:       data.URL,
		Icon:      data.Icon,
		Tag:       data.Tag,
		Data:      payload,
		Read:      data.Read,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}, nil
}
