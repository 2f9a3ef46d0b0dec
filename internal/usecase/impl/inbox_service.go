// Package impl contains the concrete implementations of the use case
// interfaces.
package impl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/cache"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type inboxService struct {
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	pageCache        *cache.InboxCache
	cfg              *config.InboxConfig
}

// NewInboxService creates a new inbox service instance
func NewInboxService(
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	pageCache *cache.InboxCache,
	cfg *config.Config,
) usecase.InboxUsecase {
	return &inboxService{
		notificationRepo: notificationRepo,
		txManager:        txManager,
		pageCache:        pageCache,
		cfg:              cfg.Inbox,
	}
}

// ListInbox returns the newest records for a member, serving repeated
// queries from the page cache within its TTL.
func (s *inboxService) ListInbox(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) (*usecase.InboxPage, error) {
	limit = s.clampLimit(limit)

	key := cache.Key{UserID: userID, Limit: limit, UnreadOnly: unreadOnly}
	if cached, ok := s.pageCache.Get(key); ok {
		if page, ok := cached.(*usecase.InboxPage); ok {
			return page, nil
		}
	}

	var records []*entity.NotificationRecord
	var err error

	if unreadOnly {
		records, err = s.loadUnread(ctx, userID, limit)
	} else {
		records, err = s.notificationRepo.FindRecentByUser(ctx, userID, limit)
	}
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	// The unread count is always computed over the whole inbox, never
	// derived from the truncated page.
	unreadCount, err := s.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	page := &usecase.InboxPage{
		Notifications: records,
		UnreadCount:   unreadCount,
		Total:         len(records),
	}
	s.pageCache.Put(key, page)

	return page, nil
}

// MarkRead marks the given records as read. The returned count is how
// many of the requested ids exist and belong to the member, so a retry
// of the same batch reports the same number.
func (s *inboxService) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.ErrMarkReadInput
	}
	if len(ids) > s.cfg.MaxMarkReadBatch {
		return 0, domainerrors.ErrMarkReadInput.WrapMessage(
			fmt.Sprintf("at most %d ids per request", s.cfg.MaxMarkReadBatch))
	}

	var matched int64
	now := time.Now()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewNotificationRepository()

		count, err := repo.CountByUserAndIDs(ctx, userID, ids)
		if err != nil {
			return err
		}
		matched = count

		if _, err := repo.MarkRead(ctx, userID, ids, now); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return 0, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	s.pageCache.Invalidate(userID)

	return matched, nil
}

// MarkAllRead marks every unread record of the member as read.
func (s *inboxService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var transitioned int64
	now := time.Now()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		count, err := factory.NewNotificationRepository().MarkAllRead(ctx, userID, now)
		if err != nil {
			return err
		}
		transitioned = count

		return nil
	})
	if err != nil {
		return 0, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	s.pageCache.Invalidate(userID)

	return transitioned, nil
}

// loadUnread fetches unread records in store order, then sorts and
// truncates in memory. The scan cap bounds the rows pulled for members
// with a large unread backlog.
func (s *inboxService) loadUnread(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationRecord, error) {
	records, err := s.notificationRepo.FindUnreadByUser(ctx, userID, s.cfg.UnreadScanLimit)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}

		return records[i].ID.String() > records[j].ID.String()
	})

	if len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

func (s *inboxService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}

	return limit
}
