package entity

import (
	"time"
)

const (
	MessageStatusReceived  = "received"
	MessageStatusResponded = "responded"
)

// Message is a contact form submission. Only the read flag and the status
// field mutate after creation.
type Message struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Service     string     `json:"service,omitempty"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	Status      string     `json:"status"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func MessageFromRecord(r *Record) *Message {
	m := &Message{
		ID:        r.ID,
		Name:      r.String("name"),
		Email:     r.String("email"),
		Phone:     r.String("phone"),
		Service:   r.String("service"),
		Message:   r.String("message"),
		Read:      r.Bool("read"),
		Status:    r.String("status"),
		CreatedAt: r.CreatedAt,
	}
	if t := r.Time("read_at"); !t.IsZero() {
		m.ReadAt = &t
	}
	if t := r.Time("responded_at"); !t.IsZero() {
		m.RespondedAt = &t
	}
	return m
}
