package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/infra/cache"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchMocks struct {
	memberRepo *mockRepo.MockMemberRepository
	tokenRepo  *mockRepo.MockTokenRepository
	notifRepo  *mockRepo.MockNotificationRepository
	pushSvc    *mockSvc.MockPushService
	publisher  *mockSvc.MockEventPublisher
	pageCache  *cache.InboxCache
}

func newDispatchService(t *testing.T) (usecase.DispatchUsecase, *dispatchMocks) {
	t.Helper()

	m := &dispatchMocks{
		memberRepo: mockRepo.NewMockMemberRepository(t),
		tokenRepo:  mockRepo.NewMockTokenRepository(t),
		notifRepo:  mockRepo.NewMockNotificationRepository(t),
		pushSvc:    mockSvc.NewMockPushService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		pageCache:  cache.NewInboxCache(2*time.Minute, 100, nil),
	}

	svc := NewDispatchService(
		m.memberRepo,
		m.tokenRepo,
		m.notifRepo,
		m.pushSvc,
		m.publisher,
		m.pageCache,
		slog.Default(),
	)

	return svc, m
}

func member(id uuid.UUID) *entity.Member {
	return &entity.Member{
		ID:          id,
		DisplayName: "Test Member",
		Role:        entity.RoleMember,
		Preferences: entity.DefaultPreferences(),
	}
}

func activeToken(userID uuid.UUID, value string) *entity.DeviceToken {
	return &entity.DeviceToken{Token: value, UserID: userID, Active: true}
}

func TestDispatchService_Dispatch_SingleMember(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.memberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(member(userID), nil)

	m.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{activeToken(userID, "tok-1"), activeToken(userID, "tok-2")}, nil)

	m.pushSvc.EXPECT().
		SendToToken(ctx, "tok-1", mock.AnythingOfType("*service.PushMessage")).
		Return("msg-1", nil)

	m.pushSvc.EXPECT().
		SendToToken(ctx, "tok-2", mock.AnythingOfType("*service.PushMessage")).
		Return("msg-2", nil)

	m.notifRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Run(func(_ context.Context, record *entity.NotificationRecord) {
			assert.Equal(t, userID, record.UserID)
			assert.Equal(t, entity.DefaultNotificationURL, record.URL)
			assert.Equal(t, entity.DefaultNotificationIcon, record.Icon)
			assert.False(t, record.Read)
		}).
		Return(nil).
		Once()

	result, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{userID},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
}

func TestDispatchService_Dispatch_PartialFailure(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()
	sendErr := errors.New("registration-token-not-registered")

	m.memberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(member(userID), nil)

	m.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{activeToken(userID, "dead"), activeToken(userID, "alive")}, nil)

	m.pushSvc.EXPECT().
		SendToToken(ctx, "dead", mock.AnythingOfType("*service.PushMessage")).
		Return("", sendErr)

	m.pushSvc.EXPECT().
		SendToToken(ctx, "alive", mock.AnythingOfType("*service.PushMessage")).
		Return("msg-1", nil)

	m.pushSvc.EXPECT().
		IsTokenInvalid(sendErr).
		Return(true)

	m.tokenRepo.EXPECT().
		DeactivateToken(ctx, "dead").
		Return(nil)

	// The inbox record is written exactly once even though one device
	// send failed.
	m.notifRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil).
		Once()

	result, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{userID},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "token dead:")
}

func TestDispatchService_Dispatch_SkipsUnknownMember(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	unknown := uuid.New()
	known := uuid.New()

	m.memberRepo.EXPECT().
		FindMemberByID(ctx, unknown).
		Return(nil, repository.ErrMemberNotFound)

	m.memberRepo.EXPECT().
		FindMemberByID(ctx, known).
		Return(member(known), nil)

	m.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, known).
		Return([]*entity.DeviceToken{activeToken(known, "tok-1")}, nil)

	m.pushSvc.EXPECT().
		SendToToken(ctx, "tok-1", mock.AnythingOfType("*service.PushMessage")).
		Return("msg-1", nil)

	m.notifRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil).
		Once()

	result, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{unknown, known},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 0, result.Failed, "an unknown recipient is skipped, not counted as failed")
}

func TestDispatchService_Dispatch_RespectsOptOut(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	optedOut := member(userID)
	optedOut.Preferences.Events = false

	m.memberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(optedOut, nil)

	result, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{userID},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World", Category: "events"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 0, result.Failed)
}

func TestDispatchService_Dispatch_MemberWithoutDevicesStillGetsRecord(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.memberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(member(userID), nil)

	m.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, userID).
		Return(nil, nil)

	m.notifRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil).
		Once()

	result, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{userID},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Success)
}

func TestDispatchService_Dispatch_StoreFailureAborts(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.memberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(member(userID), nil)

	m.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, userID).
		Return(nil, nil)

	m.notifRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(errors.New("connection refused"))

	_, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{userID},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestDispatchService_Dispatch_Topic(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	m.pushSvc.EXPECT().
		SendToTopic(ctx, "announcements", mock.AnythingOfType("*service.PushMessage")).
		Return("msg-1", nil)

	result, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		Topic:   "announcements",
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
}

func TestDispatchService_Dispatch_Validation(t *testing.T) {
	svc, _ := newDispatchService(t)
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{uuid.New()},
		Message: usecase.DispatchMessage{Title: "", Body: "World"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrDispatchValidation)

	_, err = svc.Dispatch(ctx, &usecase.DispatchRequest{
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrDispatchTarget)

	_, err = svc.Dispatch(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{uuid.New()},
		Topic:   "announcements",
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrDispatchTarget)
}

func TestDispatchService_Enqueue(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Run(func(_ context.Context, event *service.DispatchEvent) {
			require.Len(t, event.UserIDs, 1)
			assert.Equal(t, userID.String(), event.UserIDs[0])
			assert.Equal(t, "Hello", event.Title)
		}).
		Return(nil)

	err := svc.Enqueue(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{userID},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.NoError(t, err)
}

func TestDispatchService_Enqueue_PublisherDown(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	m.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(errors.New("topic unreachable"))

	err := svc.Enqueue(ctx, &usecase.DispatchRequest{
		UserIDs: []uuid.UUID{uuid.New()},
		Message: usecase.DispatchMessage{Title: "Hello", Body: "World"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPushUnavailable)
}
