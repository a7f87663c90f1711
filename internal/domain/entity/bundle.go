package entity

import (
	"time"
)

// BundleSlugs is the fixed set of bundles the site sells. The slug doubles
// as the record id, so there is at most one record per bundle.
var BundleSlugs = []string{"daily", "weekly", "monthly", "unlimited"}

func ValidBundleSlug(slug string) bool {
	for _, s := range BundleSlugs {
		if s == slug {
			return true
		}
	}
	return false
}

type Bundle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Features  []string  `json:"features"`
	Visible   bool      `json:"visible"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

func BundleFromRecord(r *Record) *Bundle {
	b := &Bundle{
		ID:        r.ID,
		Name:      r.String("name"),
		Price:     r.Float("price"),
		Features:  r.Strings("features"),
		Visible:   r.Bool("visible"),
		UpdatedAt: r.Time("updated_at"),
		CreatedAt: r.CreatedAt,
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = r.CreatedAt
	}
	return b
}
