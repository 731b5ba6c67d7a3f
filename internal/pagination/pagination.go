// Package pagination turns raw page parameters into bounded, deterministic
// offsets and describes the resulting page.
package pagination

import (
	"math"
	"net/url"
	"strconv"

	"github.com/vadimbarashkov/bookmarker/internal/entity"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 100

	// MaxPage keeps Offset within int for any normalized PerPage.
	MaxPage = math.MaxInt / MaxPerPage
)

// Params are normalized page parameters. Page and PerPage are 1-based.
type Params struct {
	Page    int
	PerPage int
}

// Offset is the number of rows preceding the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Limit is the maximum number of rows on the page.
func (p Params) Limit() int {
	return p.PerPage
}

// Normalize coerces page and perPage into range: both are at least 1, page is
// capped at MaxPage and perPage at MaxPerPage.
func Normalize(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Params{Page: page, PerPage: perPage}
}

// FromQuery reads "page" and "per_page" from a query string. Absent or
// non-integer values fall back to the defaults before normalization.
func FromQuery(q url.Values) Params {
	return Normalize(
		intOrDefault(q.Get("page"), DefaultPage),
		intOrDefault(q.Get("per_page"), DefaultPerPage),
	)
}

func intOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// Meta describes page p of a result set with total items.
func Meta(p Params, total int64) entity.PageMeta {
	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if pages < 1 {
		pages = 1
	}

	meta := entity.PageMeta{
		Page:       p.Page,
		Pages:      pages,
		TotalCount: total,
		HasPrev:    p.Page > 1,
		HasNext:    p.Page < pages,
	}

	if meta.HasPrev {
		prev := p.Page - 1
		meta.PrevPage = &prev
	}
	if meta.HasNext {
		next := p.Page + 1
		meta.NextPage = &next
	}

	return meta
}
