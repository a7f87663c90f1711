package notification

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"starlinkwifi/pkg/logger"
)

// FCMSender delivers web push through Firebase Cloud Messaging, one
// registration token per subscriber. OnDeadToken, when set, is called for
// tokens the relay reports as unregistered so the caller can prune them.
type FCMSender struct {
	client      *messaging.Client
	OnDeadToken func(ctx context.Context, token string)
}

func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

func (s *FCMSender) Send(ctx context.Context, token, title, body, link string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if link != "" {
		msg.Webpush = &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{Link: link},
		}
	}

	_, err := s.client.Send(ctx, msg)
	if err != nil && messaging.IsUnregistered(err) && s.OnDeadToken != nil {
		logger.Info("pruning unregistered push token %s", token)
		s.OnDeadToken(ctx, token)
	}
	return err
}
