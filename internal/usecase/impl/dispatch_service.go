package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/infra/cache"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	memberRepo       repository.MemberRepository
	tokenRepo        repository.TokenRepository
	notificationRepo repository.NotificationRepository
	pushSvc          service.PushService
	publisher        service.EventPublisher
	pageCache        *cache.InboxCache
	logger           *slog.Logger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	memberRepo repository.MemberRepository,
	tokenRepo repository.TokenRepository,
	notificationRepo repository.NotificationRepository,
	pushSvc service.PushService,
	publisher service.EventPublisher,
	pageCache *cache.InboxCache,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		memberRepo:       memberRepo,
		tokenRepo:        tokenRepo,
		notificationRepo: notificationRepo,
		pushSvc:          pushSvc,
		publisher:        publisher,
		pageCache:        pageCache,
		logger:           logger,
	}
}

// Dispatch fans the message out to every target member, or to a topic.
// Individual send failures are collected into the result; only invalid
// input and store failures abort the request.
func (s *dispatchService) Dispatch(ctx context.Context, req *usecase.DispatchRequest) (*usecase.DispatchResult, error) {
	if err := validateDispatch(req); err != nil {
		return nil, err
	}

	msg := &service.PushMessage{
		Title: req.Message.Title,
		Body:  req.Message.Body,
		Icon:  defaultString(req.Message.Icon, entity.DefaultNotificationIcon),
		URL:   defaultString(req.Message.URL, entity.DefaultNotificationURL),
		Data:  req.Message.Data,
	}

	if req.Topic != "" {
		return s.dispatchToTopic(ctx, req.Topic, msg)
	}

	result := &usecase.DispatchResult{}
	for _, userID := range req.UserIDs {
		if err := s.dispatchToMember(ctx, userID, req.Message.Category, msg, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Enqueue hands the request to the event pipeline; the push worker picks
// it up and runs the same fan-out out of band.
func (s *dispatchService) Enqueue(ctx context.Context, req *usecase.DispatchRequest) error {
	if err := validateDispatch(req); err != nil {
		return err
	}

	userIDs := make([]string, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		userIDs = append(userIDs, id.String())
	}

	event := &service.DispatchEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserIDs:   userIDs,
		Topic:     req.Topic,
		Title:     req.Message.Title,
		Body:      req.Message.Body,
		Icon:      req.Message.Icon,
		URL:       req.Message.URL,
		Category:  req.Message.Category,
		Data:      req.Message.Data,
	}

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		return domainerrors.ErrPushUnavailable.WrapMessage(err.Error())
	}

	return nil
}

// dispatchToMember sends to every active device of one member and writes
// exactly one inbox record, regardless of how many devices received the
// push. Unknown members and opted-out categories are skipped silently.
func (s *dispatchService) dispatchToMember(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	msg *service.PushMessage,
	result *usecase.DispatchResult,
) error {
	member, err := s.memberRepo.FindMemberByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			s.logger.Warn("dispatch target does not exist, skipping",
				slog.String("user_id", userID.String()),
			)

			return nil
		}

		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	if !member.Preferences.Allows(category) {
		s.logger.Debug("member opted out of category, skipping",
			slog.String("user_id", userID.String()),
			slog.String("category", category),
		)

		return nil
	}

	tokens, err := s.tokenRepo.FindActiveTokensByUser(ctx, userID)
	if err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	var invalidTokens []string
	for _, token := range tokens {
		if _, sendErr := s.pushSvc.SendToToken(ctx, token.Token, msg); sendErr != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("token %s: %s", token.Token, sendErr))

			if s.pushSvc.IsTokenInvalid(sendErr) {
				invalidTokens = append(invalidTokens, token.Token)
			}

			continue
		}
		result.Success++
	}

	// Dead tokens are pruned best-effort; a pruning failure never fails
	// the dispatch.
	for _, token := range invalidTokens {
		if err := s.tokenRepo.DeactivateToken(ctx, token); err != nil {
			s.logger.Warn("failed to deactivate invalid token",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	// One inbox record per member per dispatch, written even when every
	// device send failed, so the inbox stays the durable record.
	record := entity.NewNotificationRecord(userID, msg.Title, msg.Body)
	record.Icon = msg.Icon
	record.URL = msg.URL
	record.Data = msg.Data
	if err := s.notificationRepo.CreateNotification(ctx, record); err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	s.pageCache.Invalidate(userID)

	return nil
}

// dispatchToTopic delivers through the provider's topic fan-out. No
// inbox records are written: topic subscribers are resolved provider-side
// and are unknown here.
func (s *dispatchService) dispatchToTopic(ctx context.Context, topic string, msg *service.PushMessage) (*usecase.DispatchResult, error) {
	if _, err := s.pushSvc.SendToTopic(ctx, topic, msg); err != nil {
		return &usecase.DispatchResult{
			Failed: 1,
			Errors: []string{fmt.Sprintf("topic %s: %s", topic, err)},
		}, nil
	}

	return &usecase.DispatchResult{Success: 1}, nil
}

func validateDispatch(req *usecase.DispatchRequest) error {
	if strings.TrimSpace(req.Message.Title) == "" || strings.TrimSpace(req.Message.Body) == "" {
		return domainerrors.ErrDispatchValidation
	}
	if len(req.UserIDs) == 0 && req.Topic == "" {
		return domainerrors.ErrDispatchTarget
	}
	if len(req.UserIDs) > 0 && req.Topic != "" {
		return domainerrors.ErrDispatchTarget.WrapMessage("userIds and topic are mutually exclusive")
	}

	return nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
