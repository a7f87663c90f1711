package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Values cross a JSON round-trip in the local backend, so the accessors must
// cope with the widened types json.Unmarshal produces.
func TestRecordAccessorsAfterJSONWidening(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	r := &Record{
		ID: "r1",
		Fields: map[string]interface{}{
			"name":     "Daily Pass",
			"price":    float64(50),
			"count":    42,
			"visible":  true,
			"read_at":  now.Format(time.RFC3339Nano),
			"features": []interface{}{"24h access", "no data cap"},
		},
		CreatedAt: now,
	}

	assert.Equal(t, "Daily Pass", r.String("name"))
	assert.Equal(t, float64(50), r.Float("price"))
	assert.Equal(t, int64(42), r.Int("count"))
	assert.True(t, r.Bool("visible"))
	assert.True(t, r.Time("read_at").Equal(now))
	assert.Equal(t, []string{"24h access", "no data cap"}, r.Strings("features"))
}

func TestRecordAccessorZeroValues(t *testing.T) {
	r := &Record{ID: "r1", Fields: map[string]interface{}{
		"name": 7, // wrong type
	}}

	assert.Equal(t, "", r.String("name"))
	assert.Equal(t, "", r.String("missing"))
	assert.False(t, r.Bool("missing"))
	assert.Equal(t, float64(0), r.Float("missing"))
	assert.True(t, r.Time("missing").IsZero())
	assert.Nil(t, r.Strings("missing"))
}
