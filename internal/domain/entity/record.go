package entity

import (
	"time"
)

// Record is the envelope every collection shares: an id unique within its
// collection, a free-form payload, and an immutable creation timestamp. Both
// store backends produce this normalized shape so domain code never branches
// on which backend a record came from.
type Record struct {
	ID        string                 `json:"id"`
	Fields    map[string]interface{} `json:"fields"`
	CreatedAt time.Time              `json:"created_at"`
}

func (r *Record) String(key string) string {
	if v, ok := r.Fields[key].(string); ok {
		return v
	}
	return ""
}

func (r *Record) Bool(key string) bool {
	if v, ok := r.Fields[key].(bool); ok {
		return v
	}
	return false
}

func (r *Record) Float(key string) float64 {
	switch v := r.Fields[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

func (r *Record) Int(key string) int64 {
	return int64(r.Float(key))
}

func (r *Record) Time(key string) time.Time {
	switch v := r.Fields[key].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}

func (r *Record) Strings(key string) []string {
	switch v := r.Fields[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
