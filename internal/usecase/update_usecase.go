package usecase

import (
	"context"
	"encoding/json"
	"html"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/internal/infrastructure/notification"
	"starlinkwifi/pkg/errors"
	"starlinkwifi/pkg/logger"
)

type UpdateUseCase struct {
	store       repository.Store
	subscribers *SubscriberUseCase
	notifier    Notifier
	broadcaster Broadcaster
	adminEmail  string
	siteURL     string
}

func NewUpdateUseCase(store repository.Store, subscribers *SubscriberUseCase, notifier Notifier, broadcaster Broadcaster, adminEmail, siteURL string) *UpdateUseCase {
	return &UpdateUseCase{
		store:       store,
		subscribers: subscribers,
		notifier:    notifier,
		broadcaster: broadcaster,
		adminEmail:  adminEmail,
		siteURL:     siteURL,
	}
}

type PushUpdateInput struct {
	Title    string
	Content  string
	Priority string
}

// PushUpdate stores the broadcast, feeds connected websocket clients, and
// queues one push notification per subscriber plus an admin email. The store
// write is the only step that can fail the operation.
func (uc *UpdateUseCase) PushUpdate(ctx context.Context, input PushUpdateInput) (*entity.SiteUpdate, error) {
	if input.Content == "" {
		return nil, errors.Validation("content")
	}
	if input.Title == "" {
		input.Title = "Site Update"
	}
	switch input.Priority {
	case "":
		input.Priority = entity.UpdatePriorityNormal
	case entity.UpdatePriorityNormal, entity.UpdatePriorityHigh, entity.UpdatePriorityUrgent:
	default:
		return nil, errors.BadRequest("priority must be normal, high or urgent", nil)
	}

	record, err := uc.store.Insert(ctx, repository.CollectionSiteUpdates, map[string]interface{}{
		"title":    input.Title,
		"content":  input.Content,
		"priority": input.Priority,
	})
	if err != nil {
		return nil, err
	}

	update := entity.SiteUpdateFromRecord(record)

	if uc.broadcaster != nil {
		if payload, err := json.Marshal(update); err == nil {
			uc.broadcaster.Broadcast(payload)
		}
	}

	if uc.notifier != nil {
		uc.notifyAll(ctx, update)
	}

	return update, nil
}

// Poll returns pending updates oldest first and drains them. Delivery is
// at-most-once per polling client and best effort: a crash between the list
// and the deletes re-delivers, updates nobody polls for are simply lost.
func (uc *UpdateUseCase) Poll(ctx context.Context) ([]*entity.SiteUpdate, error) {
	records, err := uc.store.List(ctx, repository.CollectionSiteUpdates, repository.ListOptions{
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, err
	}

	updates := make([]*entity.SiteUpdate, 0, len(records))
	for _, record := range records {
		updates = append(updates, entity.SiteUpdateFromRecord(record))
		if err := uc.store.Remove(ctx, repository.CollectionSiteUpdates, record.ID); err != nil {
			logger.Warn("failed to drain site update %s: %v", record.ID, err)
		}
	}

	return updates, nil
}

func (uc *UpdateUseCase) notifyAll(ctx context.Context, update *entity.SiteUpdate) {
	uc.notifier.Enqueue(notification.Notification{
		Channel:   notification.ChannelEmail,
		Recipient: uc.adminEmail,
		Subject:   "Site Update Notification",
		Template:  notification.TemplateAdmin,
		Body:      "<h2>" + html.EscapeString(update.Title) + "</h2><p>" + html.EscapeString(update.Content) + "</p>",
	})

	if uc.subscribers == nil {
		return
	}
	subs, err := uc.subscribers.ListSubscribers(ctx)
	if err != nil {
		logger.Warn("failed to list push subscribers: %v", err)
		return
	}
	for _, sub := range subs {
		uc.notifier.Enqueue(notification.Notification{
			Channel:   notification.ChannelPush,
			Recipient: sub.Token,
			Subject:   update.Title,
			Body:      update.Content,
			Link:      uc.siteURL,
		})
	}
}
