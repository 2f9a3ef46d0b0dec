package impl

import (
	"context"
	"strings"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type registryService struct {
	tokenRepo  repository.TokenRepository
	memberRepo repository.MemberRepository
}

// NewRegistryService creates a new registry service instance
func NewRegistryService(
	tokenRepo repository.TokenRepository,
	memberRepo repository.MemberRepository,
) usecase.RegistryUsecase {
	return &registryService{
		tokenRepo:  tokenRepo,
		memberRepo: memberRepo,
	}
}

// Subscribe registers a push token for the member. The upsert makes the
// call idempotent and reassigns the token when another member owned it;
// either way the member's last token activity timestamp is bumped.
func (s *registryService) Subscribe(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrTokenRequired
	}

	if _, err := s.memberRepo.FindMemberByID(ctx, userID); err != nil {
		return memberLookupError(err)
	}

	deviceToken := &entity.DeviceToken{
		Token:  token,
		UserID: userID,
		Active: true,
	}
	if err := s.tokenRepo.UpsertToken(ctx, deviceToken); err != nil {
		return err
	}

	return s.memberRepo.TouchTokenUpdate(ctx, userID, time.Now())
}

// Unsubscribe deactivates one token, or every token of the member when
// token is empty. Unknown tokens and members with nothing registered are
// treated as already unsubscribed.
func (s *registryService) Unsubscribe(ctx context.Context, userID uuid.UUID, token string) (int64, error) {
	token = strings.TrimSpace(token)

	if token == "" {
		return s.tokenRepo.DeactivateTokensByUser(ctx, userID)
	}

	owned, err := s.tokenRepo.FindTokenByValue(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return 0, nil
		}

		return 0, err
	}

	// A member can only detach their own registrations.
	if owned.UserID != userID {
		return 0, nil
	}

	if err := s.tokenRepo.DeactivateToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return 0, nil
		}

		return 0, err
	}

	return 1, nil
}
