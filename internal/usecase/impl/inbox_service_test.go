package impl

import (
	"context"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/cache"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInboxTestConfig() *config.Config {
	return &config.Config{
		Inbox: &config.InboxConfig{
			CacheTTL:         2 * time.Minute,
			CacheMaxEntries:  100,
			DefaultPageSize:  20,
			MaxPageSize:      40,
			MaxMarkReadBatch: 500,
			UnreadScanLimit:  500,
		},
	}
}

func record(userID uuid.UUID, createdAt time.Time, read bool) *entity.NotificationRecord {
	return &entity.NotificationRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "title",
		Body:      "body",
		Read:      read,
		CreatedAt: createdAt,
	}
}

func TestInboxService_ListInbox_DefaultLimit(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	cfg := newInboxTestConfig()
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ctx := context.Background()
	userID := uuid.New()
	records := []*entity.NotificationRecord{record(userID, time.Now(), false)}

	mockNotifRepo.EXPECT().
		FindRecentByUser(ctx, userID, 20).
		Return(records, nil)

	mockNotifRepo.EXPECT().
		CountUnreadByUser(ctx, userID).
		Return(int64(7), nil)

	page, err := service.ListInbox(ctx, userID, 0, false)
	require.NoError(t, err)
	assert.Len(t, page.Notifications, 1)
	assert.Equal(t, int64(7), page.UnreadCount)
	assert.Equal(t, 1, page.Total)
}

func TestInboxService_ListInbox_ClampsLimit(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	cfg := newInboxTestConfig()
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ctx := context.Background()
	userID := uuid.New()

	mockNotifRepo.EXPECT().
		FindRecentByUser(ctx, userID, 40).
		Return(nil, nil)

	mockNotifRepo.EXPECT().
		CountUnreadByUser(ctx, userID).
		Return(int64(0), nil)

	_, err := service.ListInbox(ctx, userID, 999, false)
	require.NoError(t, err)
}

func TestInboxService_ListInbox_ServedFromCache(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	cfg := newInboxTestConfig()
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ctx := context.Background()
	userID := uuid.New()

	mockNotifRepo.EXPECT().
		FindRecentByUser(ctx, userID, 20).
		Return(nil, nil).
		Once()

	mockNotifRepo.EXPECT().
		CountUnreadByUser(ctx, userID).
		Return(int64(0), nil).
		Once()

	first, err := service.ListInbox(ctx, userID, 20, false)
	require.NoError(t, err)

	second, err := service.ListInbox(ctx, userID, 20, false)
	require.NoError(t, err)
	assert.Same(t, first, second, "second read within the TTL is a cache hit")
}

func TestInboxService_ListInbox_UnreadSortedAndTruncated(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	cfg := newInboxTestConfig()
	cfg.Inbox.DefaultPageSize = 2
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ctx := context.Background()
	userID := uuid.New()
	base := time.Now()

	oldest := record(userID, base.Add(-2*time.Hour), false)
	middle := record(userID, base.Add(-time.Hour), false)
	newest := record(userID, base, false)

	// The store returns unread rows in arbitrary order.
	mockNotifRepo.EXPECT().
		FindUnreadByUser(ctx, userID, 500).
		Return([]*entity.NotificationRecord{oldest, newest, middle}, nil)

	mockNotifRepo.EXPECT().
		CountUnreadByUser(ctx, userID).
		Return(int64(3), nil)

	page, err := service.ListInbox(ctx, userID, 0, true)
	require.NoError(t, err)
	require.Len(t, page.Notifications, 2)
	assert.Equal(t, newest.ID, page.Notifications[0].ID)
	assert.Equal(t, middle.ID, page.Notifications[1].ID)
	assert.Equal(t, int64(3), page.UnreadCount, "unread count reflects the full backlog, not the page")
}

func TestInboxService_MarkRead_ReturnsMatchedCount(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	cfg := newInboxTestConfig()
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	mockFactory.EXPECT().NewNotificationRepository().Return(mockNotifRepo)

	mockNotifRepo.EXPECT().
		CountByUserAndIDs(ctx, userID, ids).
		Return(int64(2), nil)

	// Only one row actually transitions; the other matched row was read
	// before. The reported count stays at the matched number.
	mockNotifRepo.EXPECT().
		MarkRead(ctx, userID, ids, mock.AnythingOfType("time.Time")).
		Return(int64(1), nil)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	count, err := service.MarkRead(ctx, userID, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestInboxService_MarkRead_EmptyInput(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	cfg := newInboxTestConfig()
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	_, err := service.MarkRead(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMarkReadInput)
}

func TestInboxService_MarkRead_BatchTooLarge(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	cfg := newInboxTestConfig()
	cfg.Inbox.MaxMarkReadBatch = 2
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	_, err := service.MarkRead(context.Background(), uuid.New(), ids)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMarkReadInput)
}

func TestInboxService_MarkRead_InvalidatesCache(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	cfg := newInboxTestConfig()
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New()}

	pageCache.Put(cache.Key{UserID: userID, Limit: 20}, "stale")

	mockFactory.EXPECT().NewNotificationRepository().Return(mockNotifRepo)

	mockNotifRepo.EXPECT().
		CountByUserAndIDs(ctx, userID, ids).
		Return(int64(1), nil)

	mockNotifRepo.EXPECT().
		MarkRead(ctx, userID, ids, mock.AnythingOfType("time.Time")).
		Return(int64(1), nil)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	_, err := service.MarkRead(ctx, userID, ids)
	require.NoError(t, err)

	_, ok := pageCache.Get(cache.Key{UserID: userID, Limit: 20})
	assert.False(t, ok, "cached pages are dropped before the call returns")
}

func TestInboxService_MarkAllRead(t *testing.T) {
	mockNotifRepo := mockRepo.NewMockNotificationRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	cfg := newInboxTestConfig()
	pageCache := cache.NewInboxCache(cfg.Inbox.CacheTTL, cfg.Inbox.CacheMaxEntries, nil)
	service := NewInboxService(mockNotifRepo, mockTx, pageCache, cfg)

	ctx := context.Background()
	userID := uuid.New()

	mockFactory.EXPECT().NewNotificationRepository().Return(mockNotifRepo)

	mockNotifRepo.EXPECT().
		MarkAllRead(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(int64(5), nil)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	count, err := service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
