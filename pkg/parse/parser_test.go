package parse

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nointernetrex/publix-deals/pkg/catalog"
)

func TestParse_TripleStack(t *testing.T) {
	paragraphs := []string{
		"TRIPLE STACKS",
		"Cereal Combo",
		"Sale:",
		"- Cereal $2",
		"Buy:",
		"- 2 Cereal",
		"Why this works:",
		"Stacks with coupon",
	}

	c := New().Parse(paragraphs)

	if len(c.TripleStacks) != 1 {
		t.Fatalf("Triple stack count mismatch: got %d, want 1", len(c.TripleStacks))
	}

	deal := c.TripleStacks[0]
	if deal.Name != "Cereal Combo" {
		t.Errorf("Name mismatch: got %q, want %q", deal.Name, "Cereal Combo")
	}
	if !reflect.DeepEqual(deal.Sale, []string{"Cereal $2"}) {
		t.Errorf("Sale mismatch: got %v", deal.Sale)
	}
	if !reflect.DeepEqual(deal.Buy, []string{"2 Cereal"}) {
		t.Errorf("Buy mismatch: got %v", deal.Buy)
	}
	if deal.Why != "Stacks with coupon" {
		t.Errorf("Why mismatch: got %q", deal.Why)
	}
	if len(deal.Coupons) != 0 {
		t.Errorf("Coupons should be empty, got %v", deal.Coupons)
	}
}

func TestParse_BogoLine(t *testing.T) {
	paragraphs := []string{
		"BOGO DEALS",
		"Snacks",
		"- Chips — Buy 1 Get 1 Free — Save $3.00 — Valid 1/1-1/7",
	}

	c := New().Parse(paragraphs)

	categories := c.BogoDeals.Categories()
	if !reflect.DeepEqual(categories, []string{"Snacks"}) {
		t.Fatalf("Categories mismatch: got %v", categories)
	}

	lines := c.BogoDeals.Lines("Snacks")
	if len(lines) != 1 {
		t.Fatalf("Line count mismatch: got %d, want 1", len(lines))
	}

	item := lines[0].SplitBogo()
	if item.Name != "Chips" {
		t.Errorf("Name mismatch: got %q", item.Name)
	}
	if item.Offer != "Buy 1 Get 1 Free" {
		t.Errorf("Offer mismatch: got %q", item.Offer)
	}
	if item.Savings != "Save $3.00" {
		t.Errorf("Savings mismatch: got %q", item.Savings)
	}
	if item.Valid != "Valid 1/1-1/7" {
		t.Errorf("Valid mismatch: got %q", item.Valid)
	}
}

func TestParse_ConsecutiveDealNames(t *testing.T) {
	c := New().Parse([]string{"TRIPLE STACKS", "Deal A", "Deal B"})

	if len(c.TripleStacks) != 2 {
		t.Fatalf("Deal count mismatch: got %d, want 2", len(c.TripleStacks))
	}
	if c.TripleStacks[0].Name != "Deal A" || c.TripleStacks[1].Name != "Deal B" {
		t.Errorf("Deal order mismatch: got %q, %q", c.TripleStacks[0].Name, c.TripleStacks[1].Name)
	}
	for _, deal := range c.TripleStacks {
		if len(deal.Sale) != 0 || len(deal.Coupons) != 0 || len(deal.Buy) != 0 || deal.Why != "" {
			t.Errorf("Deal %q should have empty fields", deal.Name)
		}
	}
}

func TestParse_EmptyCategoryBeforeSectionSwitch(t *testing.T) {
	c := New().Parse([]string{"BOGO DEALS", "Bakery", "DIGITAL COUPONS"})

	if !reflect.DeepEqual(c.BogoDeals.Categories(), []string{"Bakery"}) {
		t.Errorf("Categories mismatch: got %v", c.BogoDeals.Categories())
	}
	if got := c.BogoDeals.Lines("Bakery"); len(got) != 0 {
		t.Errorf("Bakery should be empty, got %v", got)
	}
}

func TestParse_TrailingDealFlushed(t *testing.T) {
	paragraphs := []string{
		"DOUBLE STACKS",
		"Last Deal",
		"Sale:",
		"- Item $1",
	}

	c := New().Parse(paragraphs)

	if len(c.DoubleStacks) != 1 {
		t.Fatalf("Trailing deal was dropped: got %d deals", len(c.DoubleStacks))
	}
	if c.DoubleStacks[0].Name != "Last Deal" {
		t.Errorf("Name mismatch: got %q", c.DoubleStacks[0].Name)
	}
}

func TestParse_SectionSwitchFlushesDeal(t *testing.T) {
	paragraphs := []string{
		"TRIPLE STACKS",
		"Triple Deal",
		"DOUBLE STACKS",
		"Double Deal",
	}

	c := New().Parse(paragraphs)

	if len(c.TripleStacks) != 1 || c.TripleStacks[0].Name != "Triple Deal" {
		t.Errorf("Triple section mismatch: got %v", c.TripleStacks)
	}
	if len(c.DoubleStacks) != 1 || c.DoubleStacks[0].Name != "Double Deal" {
		t.Errorf("Double section mismatch: got %v", c.DoubleStacks)
	}
}

func TestParse_CouponsSwitchFlushesDeal(t *testing.T) {
	paragraphs := []string{
		"TRIPLE STACKS",
		"Pending Deal",
		"DIGITAL COUPONS",
		"Household",
		"- Brand — Save $1.00",
	}

	c := New().Parse(paragraphs)

	if len(c.TripleStacks) != 1 || c.TripleStacks[0].Name != "Pending Deal" {
		t.Errorf("Deal in progress should flush on coupon section switch: got %v", c.TripleStacks)
	}
	if c.DigitalCoupons.Len() != 1 {
		t.Errorf("Coupon count mismatch: got %d", c.DigitalCoupons.Len())
	}
}

func TestParse_DigitalCouponHeuristic(t *testing.T) {
	// A field-label line containing "Digital Coupons" ends with ":" and must
	// not switch sections; the real heading has no trailing colon.
	paragraphs := []string{
		"TRIPLE STACKS",
		"Combo",
		"Digital Coupons:",
		"- $1 off cereal",
		"DIGITAL COUPONS",
		"Pantry",
		"- Brand — Save $0.75",
	}

	c := New().Parse(paragraphs)

	if len(c.TripleStacks) != 1 {
		t.Fatalf("Deal count mismatch: got %d", len(c.TripleStacks))
	}
	if !reflect.DeepEqual(c.TripleStacks[0].Coupons, []string{"$1 off cereal"}) {
		t.Errorf("Coupons mismatch: got %v", c.TripleStacks[0].Coupons)
	}
	if c.DigitalCoupons.Len() != 1 {
		t.Errorf("Coupon section item count mismatch: got %d", c.DigitalCoupons.Len())
	}
}

func TestParse_ListMarkerVariants(t *testing.T) {
	paragraphs := []string{
		"TRIPLE STACKS",
		"Marker Deal",
		"Sale:",
		"- hyphen item",
		"– en-dash item",
		"• bullet item",
	}

	c := New().Parse(paragraphs)

	want := []string{"hyphen item", "en-dash item", "bullet item"}
	if !reflect.DeepEqual(c.TripleStacks[0].Sale, want) {
		t.Errorf("Sale mismatch: got %v, want %v", c.TripleStacks[0].Sale, want)
	}
}

func TestParse_WhyContinuationThenNewDeal(t *testing.T) {
	// An unmarked rationale line clears field focus, so the following
	// unmarked line starts a new deal rather than overwriting the rationale.
	paragraphs := []string{
		"TRIPLE STACKS",
		"First Deal",
		"Why this works:",
		"Coupon covers both items",
		"Second Deal",
	}

	c := New().Parse(paragraphs)

	if len(c.TripleStacks) != 2 {
		t.Fatalf("Deal count mismatch: got %d, want 2", len(c.TripleStacks))
	}
	if c.TripleStacks[0].Why != "Coupon covers both items" {
		t.Errorf("Why mismatch: got %q", c.TripleStacks[0].Why)
	}
	if c.TripleStacks[1].Name != "Second Deal" {
		t.Errorf("Second deal name mismatch: got %q", c.TripleStacks[1].Name)
	}
}

func TestParse_MarkedWhyItem(t *testing.T) {
	paragraphs := []string{
		"TRIPLE STACKS",
		"Deal",
		"Why this works:",
		"- Sale price stacks with the store coupon",
	}

	c := New().Parse(paragraphs)

	if got := c.TripleStacks[0].Why; got != "Sale price stacks with the store coupon" {
		t.Errorf("Why mismatch: got %q", got)
	}
}

func TestParse_IgnoresLinesOutsideSections(t *testing.T) {
	paragraphs := []string{
		"Weekly Deals for January",
		"",
		"Some intro text",
		"TRIPLE STACKS",
		"Real Deal",
	}

	c := New().Parse(paragraphs)

	if len(c.TripleStacks) != 1 || c.TripleStacks[0].Name != "Real Deal" {
		t.Errorf("Preamble lines should be ignored: got %v", c.TripleStacks)
	}
}

func TestParse_ListItemWithoutDealDropped(t *testing.T) {
	c := New().Parse([]string{"TRIPLE STACKS", "- orphan item"})

	if len(c.TripleStacks) != 0 {
		t.Errorf("Orphan list item should be dropped: got %v", c.TripleStacks)
	}
}

func TestParse_FlatItemWithoutCategoryDropped(t *testing.T) {
	c := New().Parse([]string{"BOGO DEALS", "- Chips — Buy 1 Get 1 Free"})

	if c.BogoDeals.Len() != 0 {
		t.Errorf("Item before any category should be dropped: got %d items", c.BogoDeals.Len())
	}
	if len(c.BogoDeals.Categories()) != 0 {
		t.Errorf("No categories should be registered: got %v", c.BogoDeals.Categories())
	}
}

func TestParse_LongOrSentinelLinesAreNotCategories(t *testing.T) {
	paragraphs := []string{
		"BOGO DEALS",
		"Snacks",
		"Save big this week on Free samples with $5 purchase",
		strings.Repeat("x", 60),
		"- Pretzels — Buy 1 Get 1 Free",
	}

	c := New().Parse(paragraphs)

	if !reflect.DeepEqual(c.BogoDeals.Categories(), []string{"Snacks"}) {
		t.Errorf("Categories mismatch: got %v", c.BogoDeals.Categories())
	}
	if got := len(c.BogoDeals.Lines("Snacks")); got != 1 {
		t.Errorf("Snacks item count mismatch: got %d", got)
	}
}

func TestParse_CategoryOrderAndReselection(t *testing.T) {
	paragraphs := []string{
		"BOGO DEALS",
		"Snacks",
		"- Chips — Buy 1 Get 1 Free",
		"Frozen",
		"- Pizza — Buy 1 Get 1 Free",
		"Snacks",
		"- Crackers — Buy 1 Get 1 Free",
	}

	c := New().Parse(paragraphs)

	if !reflect.DeepEqual(c.BogoDeals.Categories(), []string{"Snacks", "Frozen"}) {
		t.Fatalf("Category order mismatch: got %v", c.BogoDeals.Categories())
	}

	snacks := c.BogoDeals.Lines("Snacks")
	if len(snacks) != 2 {
		t.Fatalf("Snacks should have 2 items after reselection, got %d", len(snacks))
	}
	if snacks[0].SplitBogo().Name != "Chips" || snacks[1].SplitBogo().Name != "Crackers" {
		t.Errorf("Snacks item order mismatch: got %v", snacks)
	}
}

func TestParse_DealOrderPreserved(t *testing.T) {
	paragraphs := []string{
		"DOUBLE STACKS",
		"Alpha", "Beta", "Gamma",
	}

	c := New().Parse(paragraphs)

	var names []string
	for _, deal := range c.DoubleStacks {
		names = append(names, deal.Name)
	}
	if !reflect.DeepEqual(names, []string{"Alpha", "Beta", "Gamma"}) {
		t.Errorf("Deal order mismatch: got %v", names)
	}
}

func TestParse_Idempotent(t *testing.T) {
	paragraphs := []string{
		"TRIPLE STACKS",
		"Deal",
		"Sale:",
		"- Item $1",
		"BOGO DEALS",
		"Snacks",
		"- Chips — Buy 1 Get 1 Free",
	}

	first := New().Parse(paragraphs)
	second := New().Parse(paragraphs)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Re-parse produced a different catalog")
	}

	// A reused parser must start clean too.
	p := New()
	p.Parse(paragraphs)
	third := p.Parse(paragraphs)
	if !reflect.DeepEqual(first, third) {
		t.Errorf("Reused parser produced a different catalog")
	}
}

func TestParse_ArbitraryInputIsTotal(t *testing.T) {
	inputs := [][]string{
		nil,
		{},
		{""},
		{"   ", "\t"},
		{"-", "–", "•", ":", "—"},
		{"DIGITAL COUPONS:", "Sale:", "Buy:"},
		{"BOGO DEALS", "$", "Save", "---", "— — —"},
		{strings.Repeat("—", 100)},
	}

	for i, paragraphs := range inputs {
		c := New().Parse(paragraphs)
		if c == nil || c.BogoDeals == nil || c.DigitalCoupons == nil {
			t.Errorf("Input %d: catalog is malformed", i)
		}
	}
}

func TestParseReader(t *testing.T) {
	input := "TRIPLE STACKS\nReader Deal\nSale:\n- Item $2\n"

	c, err := New().ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if len(c.TripleStacks) != 1 || c.TripleStacks[0].Name != "Reader Deal" {
		t.Errorf("ParseReader mismatch: got %v", c.TripleStacks)
	}
}

func TestParse_FullDocument(t *testing.T) {
	paragraphs := []string{
		"Weekly Ad Highlights",
		"TRIPLE STACKS (Checkout-Safe)",
		"Cereal Combo",
		"Sale:",
		"- Cereal $2.50",
		"Digital Coupons:",
		"- $1 off 2 boxes",
		"Buy:",
		"- 2 boxes",
		"Why this works:",
		"- Sale and coupon apply to the same boxes",
		"DOUBLE STACKS (Specific)",
		"Detergent Pair",
		"Sale:",
		"- Detergent $5.99",
		"Digital Coupon:",
		"- $2 off detergent",
		"BOGO DEALS",
		"Snacks",
		"- Chips — Buy 1 Get 1 Free — Save $4.29",
		"- Cookies — Buy 1 Get 1 Free",
		"Frozen",
		"- Pizza — Buy 1 Get 1 Free — Save $6.99 — Valid 1/1 - 1/7",
		"DIGITAL COUPONS",
		"Household",
		"- Paper Towels — Save $1.50 — Any variety — Expires 1/14",
	}

	c := New().Parse(paragraphs)
	stats := c.Stats()

	want := catalog.Stats{TripleStacks: 1, DoubleStacks: 1, BogoDeals: 3, DigitalCoupons: 1}
	if stats != want {
		t.Errorf("Stats mismatch: got %+v, want %+v", stats, want)
	}

	coupon := c.DigitalCoupons.Lines("Household")[0].SplitCoupon()
	if coupon.Name != "Paper Towels" || coupon.Savings != "Save $1.50" ||
		coupon.Description != "Any variety" || coupon.Expires != "Expires 1/14" {
		t.Errorf("Coupon split mismatch: got %+v", coupon)
	}
}
