package view

import "github.com/gravitrone/cardlist/internal/catalog"

// Page is the window of a filtered view currently on screen.
type Page struct {
	Visible     []catalog.Record
	HasPrevious bool
	HasNext     bool
	Offset      int
	Limit       int
	Total       int
}

// Paginate slices view at [offset, offset+limit). Offsets past the end give
// an empty page. A negative offset is treated as 0 and a non-positive limit
// as 1.
func Paginate(view []catalog.Record, offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 1
	}
	total := len(view)

	var visible []catalog.Record
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		visible = view[offset:end:end]
	}

	return Page{
		Visible:     visible,
		HasPrevious: offset > 0,
		HasNext:     offset+limit < total,
		Offset:      offset,
		Limit:       limit,
		Total:       total,
	}
}

// Number returns the 1-based page index.
func (p Page) Number() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

// Pages returns the page count, at least 1 so an empty view reads "1/1".
func (p Page) Pages() int {
	if p.Limit <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
