package impl

import (
	"context"
	"net/http"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestPreferencesService_GetPreferences(t *testing.T) {
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewPreferencesService(mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockMemberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(&entity.Member{
			ID:          userID,
			Preferences: entity.NotificationPreferences{Events: true, Projects: false, Admin: true, Email: true},
		}, nil)

	prefs, err := service.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.True(t, prefs.Events)
	assert.False(t, prefs.Projects)
}

func TestPreferencesService_GetPreferences_UnknownMember(t *testing.T) {
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewPreferencesService(mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockMemberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(nil, repository.ErrMemberNotFound)

	_, err := service.GetPreferences(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestPreferencesService_UpdatePreferences_UnknownMember(t *testing.T) {
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewPreferencesService(mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockMemberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(nil, repository.ErrMemberNotFound)

	_, err := service.UpdatePreferences(ctx, userID, usecase.PreferencesPatch{Events: boolPtr(false)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}

func TestPreferencesService_UpdatePreferences_ShallowMerge(t *testing.T) {
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewPreferencesService(mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockMemberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(&entity.Member{ID: userID, Preferences: entity.DefaultPreferences()}, nil)

	mockMemberRepo.EXPECT().
		UpdatePreferences(ctx, userID, entity.NotificationPreferences{
			Events:   false,
			Projects: true,
			Admin:    true,
			Email:    true,
		}).
		Return(nil)

	merged, err := service.UpdatePreferences(ctx, userID, usecase.PreferencesPatch{
		Events: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, merged.Events)
	assert.True(t, merged.Projects, "absent fields keep their current value")
	assert.True(t, merged.Admin)
	assert.True(t, merged.Email)
}

func TestPreferencesService_UpdatePreferences_AllFields(t *testing.T) {
	mockMemberRepo := mockRepo.NewMockMemberRepository(t)
	service := NewPreferencesService(mockMemberRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockMemberRepo.EXPECT().
		FindMemberByID(ctx, userID).
		Return(&entity.Member{ID: userID, Preferences: entity.DefaultPreferences()}, nil)

	mockMemberRepo.EXPECT().
		UpdatePreferences(ctx, userID, entity.NotificationPreferences{}).
		Return(nil)

	merged, err := service.UpdatePreferences(ctx, userID, usecase.PreferencesPatch{
		Events:   boolPtr(false),
		Projects: boolPtr(false),
		Admin:    boolPtr(false),
		Email:    boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, merged.Events)
	assert.False(t, merged.Email)
}
