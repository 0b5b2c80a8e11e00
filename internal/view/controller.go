package view

import (
	"go.uber.org/zap"

	"github.com/gravitrone/cardlist/internal/catalog"
)

// PageSize is the fixed number of records per page.
const PageSize = 10

// Session is the mutable state of one browsing session.
type Session struct {
	SearchTerm string
	Offset     int
}

// Controller owns a session over an immutable dataset and keeps the
// filtered view and current page in sync with it.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	dataset  []catalog.Record
	limit    int
	session  Session
	filtered []catalog.Record
	page     Page
	logger   *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for navigation diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController starts a session showing the first page of dataset. The
// dataset is referenced, never modified.
func NewController(dataset []catalog.Record, opts ...Option) *Controller {
	c := &Controller{
		dataset:  dataset,
		limit:    PageSize,
		filtered: dataset,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recompute()
	return c
}

// SetSearchTerm replaces the filter and returns to the first page.
func (c *Controller) SetSearchTerm(term string) {
	c.session.SearchTerm = term
	c.session.Offset = 0
	c.filtered = Filter(c.dataset, term)
	c.recompute()
	c.logger.Debug("search term set",
		zap.String("term", term),
		zap.Int("matches", len(c.filtered)),
	)
}

// GoNext advances one page. It reports false and leaves the session
// unchanged when there is no next page.
func (c *Controller) GoNext() bool {
	if !c.page.HasNext {
		c.logger.Debug("next page rejected", zap.Int("offset", c.session.Offset), zap.Int("total", len(c.filtered)))
		return false
	}
	c.session.Offset += c.limit
	c.recompute()
	return true
}

// GoPrevious moves back one page. It reports false and leaves the session
// unchanged when already on the first page.
func (c *Controller) GoPrevious() bool {
	if !c.page.HasPrevious {
		c.logger.Debug("previous page rejected", zap.Int("offset", c.session.Offset))
		return false
	}
	c.session.Offset -= c.limit
	c.recompute()
	return true
}

// CurrentPage returns the visible page and navigation flags.
func (c *Controller) CurrentPage() Page {
	return c.page
}

// Session returns a copy of the current session state.
func (c *Controller) Session() Session {
	return c.session
}

// Filtered returns the current filtered view.
func (c *Controller) Filtered() []catalog.Record {
	return c.filtered
}

// Dataset returns the full dataset the session was started with.
func (c *Controller) Dataset() []catalog.Record {
	return c.dataset
}

// Limit returns the page size.
func (c *Controller) Limit() int {
	return c.limit
}

// recompute derives the current page from the session and filtered view.
// Every mutating operation ends with it.
func (c *Controller) recompute() {
	c.page = Paginate(c.filtered, c.session.Offset, c.limit)
}
