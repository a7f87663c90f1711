package entity

import (
	"time"
)

const (
	UpdatePriorityNormal = "normal"
	UpdatePriorityHigh   = "high"
	UpdatePriorityUrgent = "urgent"
)

// SiteUpdate is an ephemeral admin broadcast. It sits in the site_updates
// collection until the next poll drains it; delivery is best-effort.
type SiteUpdate struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

func SiteUpdateFromRecord(r *Record) *SiteUpdate {
	return &SiteUpdate{
		ID:        r.ID,
		Title:     r.String("title"),
		Content:   r.String("content"),
		Priority:  r.String("priority"),
		CreatedAt: r.CreatedAt,
	}
}
