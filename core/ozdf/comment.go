package ozdf

// Comment is a raw text element. Its body is stored verbatim: never
// normalized, never wrapped, and excluded from name-based lookup.
type Comment struct {
	text  string
	owner *Document
}

func (c *Comment) element() {}

// Text returns the raw comment body.
func (c *Comment) Text() string {
	return c.text
}

// SetText replaces the comment body. The text is stored as-is.
func (c *Comment) SetText(s string) {
	c.text = s
	if c.owner != nil {
		c.owner.markDirty()
	}
}
