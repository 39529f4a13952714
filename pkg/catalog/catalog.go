// Package catalog defines the structured form of a parsed weekly deals
// document: stack deals grouped by tier, and single-line deals grouped
// under named categories.
package catalog

// StackDeal is one multi-field combo deal spanning several document lines.
type StackDeal struct {
	// Name is the deal's display heading.
	Name string `json:"name"`

	// Sale lists the sale-priced items in the combo.
	Sale []string `json:"sale"`

	// Coupons lists the digital coupons that apply.
	Coupons []string `json:"coupons"`

	// Buy lists what to purchase at checkout.
	Buy []string `json:"buy"`

	// Why is an optional one-line rationale for the stack.
	Why string `json:"why,omitempty"`
}

// NewStackDeal returns a deal with the given name and empty field lists.
// Fields are non-nil so a name-only deal still serializes as empty lists.
func NewStackDeal(name string) *StackDeal {
	return &StackDeal{
		Name:    name,
		Sale:    []string{},
		Coupons: []string{},
		Buy:     []string{},
	}
}

// CategoryList holds flat deal lines grouped under named categories.
// Categories keep first-seen order and lines keep document order, both of
// which are user-visible in the generated site.
type CategoryList struct {
	names []string
	items map[string][]RawLine
}

// NewCategoryList returns an empty category list.
func NewCategoryList() *CategoryList {
	return &CategoryList{
		items: make(map[string][]RawLine),
	}
}

// Register adds a category with an empty line list if it has not been seen
// before. Re-registering an existing category is a no-op.
func (c *CategoryList) Register(category string) {
	if _, ok := c.items[category]; ok {
		return
	}
	c.names = append(c.names, category)
	c.items[category] = []RawLine{}
}

// Append adds a line to the named category, registering it if needed.
func (c *CategoryList) Append(category string, line RawLine) {
	c.Register(category)
	c.items[category] = append(c.items[category], line)
}

// Categories returns category names in first-seen order.
func (c *CategoryList) Categories() []string {
	return c.names
}

// Lines returns the lines under a category in document order, or nil if the
// category is unknown.
func (c *CategoryList) Lines(category string) []RawLine {
	return c.items[category]
}

// Len returns the total number of lines across all categories.
func (c *CategoryList) Len() int {
	total := 0
	for _, lines := range c.items {
		total += len(lines)
	}
	return total
}

// Catalog is the root output of a parse: every deal in the document,
// grouped the way the site presents them.
type Catalog struct {
	TripleStacks   []StackDeal
	DoubleStacks   []StackDeal
	BogoDeals      *CategoryList
	DigitalCoupons *CategoryList
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		BogoDeals:      NewCategoryList(),
		DigitalCoupons: NewCategoryList(),
	}
}

// Stats holds per-section deal counts for progress reporting.
type Stats struct {
	TripleStacks   int `json:"triple_stacks"`
	DoubleStacks   int `json:"double_stacks"`
	BogoDeals      int `json:"bogo_deals"`
	DigitalCoupons int `json:"digital_coupons"`
}

// Stats returns the deal counts per section.
func (c *Catalog) Stats() Stats {
	return Stats{
		TripleStacks:   len(c.TripleStacks),
		DoubleStacks:   len(c.DoubleStacks),
		BogoDeals:      c.BogoDeals.Len(),
		DigitalCoupons: c.DigitalCoupons.Len(),
	}
}
