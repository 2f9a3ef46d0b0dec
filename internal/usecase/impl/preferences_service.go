package impl

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type preferencesService struct {
	memberRepo repository.MemberRepository
}

// NewPreferencesService creates a new preferences service instance
func NewPreferencesService(memberRepo repository.MemberRepository) usecase.PreferencesUsecase {
	return &preferencesService{
		memberRepo: memberRepo,
	}
}

// GetPreferences returns the member's stored preferences.
func (s *preferencesService) GetPreferences(ctx context.Context, userID uuid.UUID) (entity.NotificationPreferences, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, userID)
	if err != nil {
		return entity.NotificationPreferences{}, memberLookupError(err)
	}

	return member.Preferences, nil
}

// UpdatePreferences merges the patch over the member's current values
// and persists the result. Absent fields keep their current value, so a
// patch toggling one category never resets the others.
func (s *preferencesService) UpdatePreferences(ctx context.Context, userID uuid.UUID, patch usecase.PreferencesPatch) (entity.NotificationPreferences, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, userID)
	if err != nil {
		return entity.NotificationPreferences{}, memberLookupError(err)
	}

	merged := member.Preferences
	if patch.Events != nil {
		merged.Events = *patch.Events
	}
	if patch.Projects != nil {
		merged.Projects = *patch.Projects
	}
	if patch.Admin != nil {
		merged.Admin = *patch.Admin
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}

	if err := s.memberRepo.UpdatePreferences(ctx, userID, merged); err != nil {
		return entity.NotificationPreferences{}, err
	}

	return merged, nil
}

// memberLookupError translates the store sentinel into the 404 surfaced
// to callers; anything else passes through untouched.
func memberLookupError(err error) error {
	if errors.Is(err, repository.ErrMemberNotFound) {
		return domainerrors.ErrMemberNotFound
	}

	return err
}
