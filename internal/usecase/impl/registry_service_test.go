package impl

import (
	"context"
	"net/http"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistryService_Subscribe_NewToken(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewRegistryService(mockTokenRepo, mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockMemberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(&entity.Member{ID: userID}, nil)

	mockTokenRepo.EXPECT().
		UpsertToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Run(func(_ context.Context, token *entity.DeviceToken) {
			assert.Equal(t, "fcm-token-1", token.Token)
			assert.Equal(t, userID, token.UserID)
			assert.True(t, token.Active)
		}).
		Return(nil)

	mockMemberRepo.EXPECT().
		TouchTokenUpdate(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := service.Subscribe(ctx, userID, "fcm-token-1")
	require.NoError(t, err)
}

func TestRegistryService_Subscribe_EmptyToken(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewRegistryService(mockTokenRepo, mockMemberRepo)

	err := service.Subscribe(context.Background(), uuid.New(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)
}

func TestRegistryService_Subscribe_UnknownMember(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewRegistryService(mockTokenRepo, mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockMemberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(nil, repository.ErrMemberNotFound)

	err := service.Subscribe(ctx, userID, "fcm-token-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestRegistryService_Unsubscribe_SingleToken(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewRegistryService(mockTokenRepo, mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockTokenRepo.EXPECT().
		FindTokenByValue(ctx, "fcm-token-1").
		Return(&entity.DeviceToken{Token: "fcm-token-1", UserID: userID, Active: true}, nil)

	mockTokenRepo.EXPECT().
		DeactivateToken(ctx, "fcm-token-1").
		Return(nil)

	removed, err := service.Unsubscribe(ctx, userID, "fcm-token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestRegistryService_Unsubscribe_UnknownTokenIsNoop(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewRegistryService(mockTokenRepo, mockMemberRepo)

	ctx := context.Background()

	mockTokenRepo.EXPECT().
		FindTokenByValue(ctx, "gone").
		Return(nil, repository.ErrTokenNotFound)

	removed, err := service.Unsubscribe(ctx, uuid.New(), "gone")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestRegistryService_Unsubscribe_ForeignTokenIsNoop(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewRegistryService(mockTokenRepo, mockMemberRepo)

	ctx := context.Background()
	owner := uuid.New()
	caller := uuid.New()

	mockTokenRepo.EXPECT().
		FindTokenByValue(ctx, "fcm-token-1").
		Return(&entity.DeviceToken{Token: "fcm-token-1", UserID: owner, Active: true}, nil)

	removed, err := service.Unsubscribe(ctx, caller, "fcm-token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed, "a member cannot detach another member's token")
}

func TestRegistryService_Unsubscribe_AllTokens(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockTokenRepository(t)
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewRegistryService(mockTokenRepo, mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockTokenRepo.EXPECT().
		DeactivateTokensByUser(ctx, userID).
		Return(int64(3), nil)

	removed, err := service.Unsubscribe(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
