package usecase

import (
	"context"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/pkg/errors"
)

type SubscriberUseCase struct {
	store repository.Store
}

func NewSubscriberUseCase(store repository.Store) *SubscriberUseCase {
	return &SubscriberUseCase{
		store: store,
	}
}

// Subscribe registers a push token. Re-registering an existing token returns
// the existing record rather than duplicating it.
func (uc *SubscriberUseCase) Subscribe(ctx context.Context, token, userAgent string) (*entity.Subscriber, error) {
	if token == "" {
		return nil, errors.Validation("token")
	}

	existing, err := uc.store.List(ctx, repository.CollectionSubscribers, repository.ListOptions{
		Filter: map[string]interface{}{"token": token},
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return entity.SubscriberFromRecord(existing[0]), nil
	}

	record, err := uc.store.Insert(ctx, repository.CollectionSubscribers, map[string]interface{}{
		"token":      token,
		"user_agent": userAgent,
	})
	if err != nil {
		return nil, err
	}
	return entity.SubscriberFromRecord(record), nil
}

// Unsubscribe removes a token; unknown tokens are a no-op.
func (uc *SubscriberUseCase) Unsubscribe(ctx context.Context, token string) error {
	if token == "" {
		return errors.Validation("token")
	}

	records, err := uc.store.List(ctx, repository.CollectionSubscribers, repository.ListOptions{
		Filter: map[string]interface{}{"token": token},
	})
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := uc.store.Remove(ctx, repository.CollectionSubscribers, record.ID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *SubscriberUseCase) ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	records, err := uc.store.List(ctx, repository.CollectionSubscribers, repository.ListOptions{
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, err
	}

	subscribers := make([]*entity.Subscriber, 0, len(records))
	for _, record := range records {
		subscribers = append(subscribers, entity.SubscriberFromRecord(record))
	}
	return subscribers, nil
}
