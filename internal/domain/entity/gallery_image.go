package entity

import (
	"time"
)

// GalleryImage is a photo shown on the public gallery page. URL holds either
// a public object storage URL or an embedded data URI depending on which
// backend stored the bytes; consumers only ever see this one field.
type GalleryImage struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	URL         string     `json:"url"`
	Filename    string     `json:"filename"`
	Size        int64      `json:"size"`
	Type        string     `json:"type"`
	Visible     bool       `json:"visible"`
	HiddenAt    *time.Time `json:"hidden_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func GalleryImageFromRecord(r *Record) *GalleryImage {
	img := &GalleryImage{
		ID:          r.ID,
		Title:       r.String("title"),
		Description: r.String("description"),
		Category:    r.String("category"),
		URL:         r.String("url"),
		Filename:    r.String("filename"),
		Size:        r.Int("size"),
		Type:        r.String("type"),
		Visible:     r.Bool("visible"),
		CreatedAt:   r.CreatedAt,
	}
	// Older rows from the remote store carried the URL under image_url.
	if img.URL == "" {
		img.URL = r.String("image_url")
	}
	if t := r.Time("hidden_at"); !t.IsZero() {
		img.HiddenAt = &t
	}
	return img
}
