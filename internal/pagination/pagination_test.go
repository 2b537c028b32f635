package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDefaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"absent", "", 1, 10},
		{"explicit", "page=3&limit=20", 3, 20},
		{"non-numeric", "page=abc&limit=xyz", 1, 10},
		{"zero", "page=0&limit=0", 1, 10},
		{"negative", "page=-2&limit=-5", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			p := Decode(values, 10)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
		})
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, int64(0), Params{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, int64(10), Params{Page: 2, Limit: 10}.Skip())
	assert.Equal(t, int64(40), Params{Page: 9, Limit: 5}.Skip())
}

func TestNewMeta(t *testing.T) {
	// 15 items, page 2, limit 10: one trailing page of 5.
	meta := NewMeta(Params{Page: 2, Limit: 10}, 15)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = NewMeta(Params{Page: 1, Limit: 10}, 15)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	meta = NewMeta(Params{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
