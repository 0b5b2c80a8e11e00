package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateBoundaryFlags(t *testing.T) {
	view := numbered(25)

	first := Paginate(view, 0, 10)
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)
	assert.Equal(t, ids(view[0:10]), ids(first.Visible))

	middle := Paginate(view, 10, 10)
	assert.True(t, middle.HasPrevious)
	assert.True(t, middle.HasNext)

	last := Paginate(view, 20, 10)
	assert.True(t, last.HasPrevious)
	assert.False(t, last.HasNext)
	assert.Len(t, last.Visible, 5)
	assert.Equal(t, ids(view[20:]), ids(last.Visible))
}

func TestPaginateExactMultiple(t *testing.T) {
	view := numbered(20)
	page := Paginate(view, 10, 10)
	assert.Len(t, page.Visible, 10)
	assert.False(t, page.HasNext, "offset+limit == len must not offer a next page")
}

func TestPaginateOffsetPastEnd(t *testing.T) {
	page := Paginate(numbered(3), 10, 10)
	assert.Empty(t, page.Visible)
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}

func TestPaginateEmptyView(t *testing.T) {
	page := Paginate(nil, 0, 10)
	assert.Empty(t, page.Visible)
	assert.False(t, page.HasPrevious)
	assert.False(t, page.HasNext)
	assert.Equal(t, 1, page.Number())
	assert.Equal(t, 1, page.Pages())
}

func TestPaginateClampsOutOfContractInput(t *testing.T) {
	view := numbered(3)
	page := Paginate(view, -5, 0)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 1, page.Limit)
	assert.Equal(t, ids(view[:1]), ids(page.Visible))
}

func TestPaginateVisibleCannotGrowIntoView(t *testing.T) {
	view := numbered(12)
	page := Paginate(view, 0, 10)
	extended := append(page.Visible, record("new"))
	assert.Equal(t, "r10", view[10].ID)
	assert.Equal(t, "new", extended[10].ID)
}

func TestPageNumberAndPages(t *testing.T) {
	view := numbered(23)
	assert.Equal(t, 1, Paginate(view, 0, 10).Number())
	assert.Equal(t, 3, Paginate(view, 20, 10).Number())
	assert.Equal(t, 3, Paginate(view, 0, 10).Pages())
	assert.Equal(t, 2, Paginate(numbered(20), 0, 10).Pages())
}
