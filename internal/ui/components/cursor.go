package components

// Cursor tracks the highlighted row of a fixed window of rows.
type Cursor struct {
	Index int
	Count int
}

// NewCursor creates a cursor over count rows.
func NewCursor(count int) *Cursor {
	c := &Cursor{}
	c.Reset(count)
	return c
}

// Reset sets the row count and moves the cursor to the first row.
func (c *Cursor) Reset(count int) {
	if count < 0 {
		count = 0
	}
	c.Count = count
	c.Index = 0
}

// Down moves the cursor down, stopping at the last row.
func (c *Cursor) Down() {
	if c.Index < c.Count-1 {
		c.Index++
	}
}

// Up moves the cursor up, stopping at the first row.
func (c *Cursor) Up() {
	if c.Index > 0 {
		c.Index--
	}
}

// Selected returns the highlighted row, or -1 when there are no rows.
func (c *Cursor) Selected() int {
	if c.Count == 0 {
		return -1
	}
	return c.Index
}

// IsSelected returns true if row is the highlighted one.
func (c *Cursor) IsSelected(row int) bool {
	return c.Count > 0 && row == c.Index
}
