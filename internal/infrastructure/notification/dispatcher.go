package notification

import (
	"context"
	"sync"

	"starlinkwifi/pkg/logger"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// Notification is one outbound message. Template selects the email wrapper;
// Link is the click target for push notifications.
type Notification struct {
	Channel   Channel
	Recipient string
	Subject   string
	Body      string
	Template  string
	Link      string
}

// Result reports whether a notification went out. Failures are carried here
// and in the log, never as an error to the producing operation.
type Result struct {
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type PushSender interface {
	Send(ctx context.Context, token, title, body, link string) error
}

// Dispatcher queues notifications and delivers them from a single worker so
// producers never wait on SMTP or the push relay. Either sender may be nil,
// in which case sends on that channel are logged as skipped.
type Dispatcher struct {
	email EmailSender
	push  PushSender

	queue     chan Notification
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(email EmailSender, push PushSender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		email: email,
		push:  push,
		queue: make(chan Notification, queueSize),
	}
}

// Start runs the worker loop in a goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case n, ok := <-d.queue:
				if !ok {
					return
				}
				d.Dispatch(ctx, n)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Enqueue hands a notification to the worker without blocking. A full queue
// drops the notification with a single warning.
func (d *Dispatcher) Enqueue(n Notification) bool {
	select {
	case d.queue <- n:
		return true
	default:
		logger.Warn("notification queue full, dropping %s to %s", n.Channel, n.Recipient)
		return false
	}
}

// Dispatch delivers synchronously. It never returns an error: failures are
// logged exactly once and reported through the Result.
func (d *Dispatcher) Dispatch(ctx context.Context, n Notification) Result {
	var err error

	switch n.Channel {
	case ChannelEmail:
		if d.email == nil {
			logger.Info("email channel not configured, skipping notification to %s", n.Recipient)
			return Result{Delivered: false, Error: "email channel not configured"}
		}
		body, renderErr := RenderTemplate(n.Template, n.Body)
		if renderErr != nil {
			logger.Error("failed to render %s template: %v", n.Template, renderErr)
			return Result{Delivered: false, Error: renderErr.Error()}
		}
		err = d.email.Send(ctx, n.Recipient, n.Subject, body)

	case ChannelPush:
		if d.push == nil {
			logger.Info("push channel not configured, skipping notification to %s", n.Recipient)
			return Result{Delivered: false, Error: "push channel not configured"}
		}
		err = d.push.Send(ctx, n.Recipient, n.Subject, n.Body, n.Link)

	default:
		logger.Warn("unknown notification channel %q", n.Channel)
		return Result{Delivered: false, Error: "unknown channel"}
	}

	if err != nil {
		logger.Warn("failed to deliver %s notification to %s: %v", n.Channel, n.Recipient, err)
		return Result{Delivered: false, Error: err.Error()}
	}

	return Result{Delivered: true}
}

// Close stops accepting work and waits for the worker to drain the queue.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
