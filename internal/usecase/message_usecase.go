package usecase

import (
	"context"
	"fmt"
	"html"
	"time"

	"starlinkwifi/internal/domain/entity"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/internal/infrastructure/notification"
	"starlinkwifi/pkg/errors"
)

type MessageUseCase struct {
	store      repository.Store
	notifier   Notifier
	adminEmail string
}

func NewMessageUseCase(store repository.Store, notifier Notifier, adminEmail string) *MessageUseCase {
	return &MessageUseCase{
		store:      store,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

type CreateMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

func (uc *MessageUseCase) CreateMessage(ctx context.Context, input CreateMessageInput) (*entity.Message, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, errors.Validation(missing...)
	}

	record, err := uc.store.Insert(ctx, repository.CollectionMessages, map[string]interface{}{
		"name":    input.Name,
		"email":   input.Email,
		"phone":   input.Phone,
		"service": input.Service,
		"message": input.Message,
		"read":    false,
		"status":  entity.MessageStatusReceived,
	})
	if err != nil {
		return nil, err
	}

	message := entity.MessageFromRecord(record)

	// Best effort: a failed notification never rolls back the create.
	if uc.notifier != nil {
		uc.notifier.Enqueue(notification.Notification{
			Channel:   notification.ChannelEmail,
			Recipient: uc.adminEmail,
			Subject:   "New Contact Message Received",
			Template:  notification.TemplateAdmin,
			Body:      newMessageBody(message),
		})
	}

	return message, nil
}

func (uc *MessageUseCase) ListMessages(ctx context.Context, unreadOnly bool, limit int) ([]*entity.Message, error) {
	opts := repository.ListOptions{
		OrderBy: "created_at",
		Desc:    true,
		Limit:   limit,
	}
	if unreadOnly {
		opts.Filter = map[string]interface{}{"read": false}
	}

	records, err := uc.store.List(ctx, repository.CollectionMessages, opts)
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, entity.MessageFromRecord(record))
	}
	return messages, nil
}

func (uc *MessageUseCase) UnreadCount(ctx context.Context) (int, error) {
	records, err := uc.store.List(ctx, repository.CollectionMessages, repository.ListOptions{
		Filter: map[string]interface{}{"read": false},
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// ToggleRead inverts the read flag and stamps when it last changed. Calling
// it twice restores the original value.
func (uc *MessageUseCase) ToggleRead(ctx context.Context, id string) (*entity.Message, error) {
	record, err := uc.store.Get(ctx, repository.CollectionMessages, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"read": !record.Bool("read")}
	if !record.Bool("read") {
		fields["read_at"] = time.Now().UTC()
	} else {
		fields["read_at"] = nil
	}

	patched, err := uc.store.Patch(ctx, repository.CollectionMessages, id, fields)
	if err != nil {
		return nil, err
	}
	return entity.MessageFromRecord(patched), nil
}

// MarkResponded moves a message from received to responded. The transition
// is one-directional and admin-triggered only.
func (uc *MessageUseCase) MarkResponded(ctx context.Context, id string) (*entity.Message, error) {
	record, err := uc.store.Get(ctx, repository.CollectionMessages, id)
	if err != nil {
		return nil, err
	}

	if record.String("status") != entity.MessageStatusReceived {
		return nil, errors.BadRequest("message has already been responded to", nil)
	}

	patched, err := uc.store.Patch(ctx, repository.CollectionMessages, id, map[string]interface{}{
		"status":       entity.MessageStatusResponded,
		"responded_at": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return entity.MessageFromRecord(patched), nil
}

func (uc *MessageUseCase) DeleteMessage(ctx context.Context, id string) error {
	return uc.store.Remove(ctx, repository.CollectionMessages, id)
}

func newMessageBody(m *entity.Message) string {
	phone := m.Phone
	if phone == "" {
		phone = "Not provided"
	}
	service := m.Service
	if service == "" {
		service = "Not specified"
	}

	return fmt.Sprintf(`<h2>New Message from Website Contact Form</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Message:</strong></p>
<blockquote>%s</blockquote>
<p><small>Received at: %s</small></p>`,
		html.EscapeString(m.Name),
		html.EscapeString(m.Email),
		html.EscapeString(phone),
		html.EscapeString(service),
		html.EscapeString(m.Message),
		m.CreatedAt.Format(time.RFC1123))
}
