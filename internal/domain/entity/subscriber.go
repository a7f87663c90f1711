package entity

import (
	"time"
)

// Subscriber holds one push registration token. Tokens that the messaging
// relay reports as dead get pruned by the dispatcher.
type Subscriber struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func SubscriberFromRecord(r *Record) *Subscriber {
	return &Subscriber{
		ID:        r.ID,
		Token:     r.String("token"),
		UserAgent: r.String("user_agent"),
		CreatedAt: r.CreatedAt,
	}
}
