package pagination

import (
	"net/url"

	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Params is the page/limit pair decoded from a query string.
type Params struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

// Decode parses page and limit from query values. Absent or invalid values
// fall back to page 1 and the caller's default limit. No upper bound is
// applied to limit.
func Decode(values url.Values, defaultLimit int) Params {
	var p Params
	// Decode errors (non-numeric values) are treated the same as absence.
	_ = decoder.Decode(&p, values)

	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Meta is the pagination metadata attached to list responses.
type Meta struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewMeta computes pagination metadata for a page over total items.
func NewMeta(p Params, total int64) Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		HasNext:     p.Page < totalPages,
		HasPrev:     p.Page > 1,
	}
}
