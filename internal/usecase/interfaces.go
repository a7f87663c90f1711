package usecase

import (
	"context"
	"io"

	"starlinkwifi/internal/infrastructure/notification"
)

// Notifier is the dispatcher surface the managers use: fire-and-forget
// enqueue, never an error back into the mutation path.
type Notifier interface {
	Enqueue(n notification.Notification) bool
}

// ObjectStorage uploads gallery bytes and deletes them by their public URL.
type ObjectStorage interface {
	UploadImage(ctx context.Context, file io.Reader, fileType string) (string, error)
	DeleteByURL(ctx context.Context, fileURL string) error
}

// Broadcaster pushes a payload to every connected live-update client.
type Broadcaster interface {
	Broadcast(message []byte)
}
