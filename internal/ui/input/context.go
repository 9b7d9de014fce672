package input

// ModelContext is a snapshot of the model state the input modes need
type ModelContext struct {
	Index      int
	Items      int
	Categories int
	Query      string
	Filter     string
	Overlay    bool
}

// CurrentIndex returns the index of the focused tile
func (c *ModelContext) CurrentIndex() int {
	return c.Index
}

// TotalItems returns the number of tiles that can be focused
func (c *ModelContext) TotalItems() int {
	return c.Items
}

// CategoryCount returns how many categories the bar shows
func (c *ModelContext) CategoryCount() int {
	return c.Categories
}

// QueryText returns the current search text
func (c *ModelContext) QueryText() string {
	return c.Query
}

// FilterQuery returns the active filter expression
func (c *ModelContext) FilterQuery() string {
	return c.Filter
}

// OverlayOpen reports whether a detail overlay is shown
func (c *ModelContext) OverlayOpen() bool {
	return c.Overlay
}
