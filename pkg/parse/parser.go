// Package parse reconstructs a structured deal catalog from the flat
// paragraph stream of a weekly deals document.
//
// The document carries no machine-readable structure: sections are announced
// by heading text, deals by bare name lines, fields by label sentinels, and
// items by list markers. The parser walks the paragraphs once, in order,
// classifying each line against the currently active section and folding it
// into an in-progress record. It is total over all input: lines that match
// no rule are dropped, and a parse never fails.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/nointernetrex/publix-deals/pkg/catalog"
)

// Section identifies which top-level document grouping is active. The
// section gates which classification rules apply.
type Section int

const (
	SectionNone Section = iota
	SectionTriple
	SectionDouble
	SectionBogo
	SectionCoupons
)

// String returns the section's document heading form.
func (s Section) String() string {
	switch s {
	case SectionTriple:
		return "Triple Stacks"
	case SectionDouble:
		return "Double Stacks"
	case SectionBogo:
		return "BOGO Deals"
	case SectionCoupons:
		return "Digital Coupons"
	}
	return "None"
}

// isStack reports whether the section accumulates multi-field stack deals.
func (s Section) isStack() bool {
	return s == SectionTriple || s == SectionDouble
}

// isFlat reports whether the section accumulates categorized flat deals.
func (s Section) isFlat() bool {
	return s == SectionBogo || s == SectionCoupons
}

// Field identifies which stack-deal field subsequent list items belong to.
type Field int

const (
	FieldNone Field = iota
	FieldSale
	FieldCoupons
	FieldBuy
	FieldWhy
)

// lineKind is the classifier's verdict on a single paragraph.
type lineKind int

const (
	lineIgnored lineKind = iota
	lineSectionHeader
	lineFieldLabel
	lineListItem
	lineWhyText
	lineDealName
	lineCategoryHeader
	lineFlatItem
)

// classification pairs a verdict with its cleaned payload.
type classification struct {
	kind    lineKind
	section Section // target section, for lineSectionHeader
	field   Field   // target field, for lineFieldLabel
	text    string  // cleaned item, name, or category text
}

// listMarkers are the characters that introduce a list item in stack
// sections. Flat sections are stricter and only accept the ASCII hyphen,
// which is what lets short unmarked lines read as category headers there.
const listMarkers = "-–• "

// categorySentinels never appear in a category header line. A short line
// containing any of them is a deal line, not a header.
var categorySentinels = []string{"$", "—", "Save", "Buy", "Free"}

// maxCategoryRunes bounds the length of a category header line.
const maxCategoryRunes = 50

// Parser walks a paragraph stream and accumulates a catalog. The zero
// value is not usable; call New. A Parser may be reused; each Parse starts
// from a clean state.
type Parser struct {
	section  Section
	field    Field
	category string
	deal     *catalog.StackDeal
	out      *catalog.Catalog
}

// New returns a ready Parser.
func New() *Parser {
	return &Parser{}
}

// Parse consumes the paragraphs in order and returns the catalog. Blank
// paragraphs are skipped before classification. Parse cannot fail: any
// finite input yields a well-formed (possibly empty) catalog.
func (p *Parser) Parse(paragraphs []string) *catalog.Catalog {
	p.reset()

	for _, para := range paragraphs {
		text := strings.TrimSpace(para)
		if text == "" {
			continue
		}
		p.apply(p.classify(text))
	}

	// The document usually ends mid-deal with no trailing header, so the
	// final stack deal is flushed here rather than dropped.
	p.flushDeal()

	return p.out
}

// ParseReader reads one paragraph per line from r and parses them. The only
// possible error is a read failure.
func (p *Parser) ParseReader(r io.Reader) (*catalog.Catalog, error) {
	scanner := bufio.NewScanner(r)

	var paragraphs []string
	for scanner.Scan() {
		paragraphs = append(paragraphs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return p.Parse(paragraphs), nil
}

func (p *Parser) reset() {
	p.section = SectionNone
	p.field = FieldNone
	p.category = ""
	p.deal = nil
	p.out = catalog.New()
}

// classify decides what kind of line this is under the current state.
// Section boundaries win over everything; the remaining rules are gated by
// the active section and evaluated in precedence order.
func (p *Parser) classify(text string) classification {
	if section, ok := sectionHeader(text); ok {
		return classification{kind: lineSectionHeader, section: section}
	}

	switch {
	case p.section.isStack():
		return p.classifyStack(text)
	case p.section.isFlat():
		return p.classifyFlat(text)
	}

	// Before any section header, nothing is meaningful.
	return classification{kind: lineIgnored}
}

// sectionHeader matches the four top-level headings. "DIGITAL COUPONS" only
// counts when the line does not end with ":", because a field-label line
// inside a stack deal can itself contain the word "Coupon". That exclusion
// is a heuristic inherited from the document format, not a grammar rule.
func sectionHeader(text string) (Section, bool) {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "TRIPLE STACKS"):
		return SectionTriple, true
	case strings.Contains(upper, "DOUBLE STACKS"):
		return SectionDouble, true
	case strings.Contains(upper, "BOGO DEALS"):
		return SectionBogo, true
	case strings.Contains(upper, "DIGITAL COUPONS") && !strings.HasSuffix(text, ":"):
		return SectionCoupons, true
	}
	return SectionNone, false
}

// classifyStack applies the Triple/Double section rules.
func (p *Parser) classifyStack(text string) classification {
	// Field labels consume the line and shift focus.
	switch {
	case text == "Sale:":
		return classification{kind: lineFieldLabel, field: FieldSale}
	case strings.HasPrefix(text, "Digital Coupon"):
		return classification{kind: lineFieldLabel, field: FieldCoupons}
	case text == "Buy:":
		return classification{kind: lineFieldLabel, field: FieldBuy}
	case text == "Why this works:":
		return classification{kind: lineFieldLabel, field: FieldWhy}
	}

	// List items require an in-progress deal and a focused field.
	if hasListMarker(text) && p.deal != nil && p.field != FieldNone {
		return classification{kind: lineListItem, field: p.field, text: stripMarker(text)}
	}

	// An unmarked line after "Why this works:" is the rationale itself.
	if p.field == FieldWhy && p.deal != nil && !strings.HasPrefix(text, "-") {
		return classification{kind: lineWhyText, text: text}
	}

	// Anything else unmarked starts a new deal.
	if !strings.HasPrefix(text, "-") && p.field != FieldWhy {
		return classification{kind: lineDealName, text: text}
	}

	return classification{kind: lineIgnored}
}

// classifyFlat applies the BOGO/Digital Coupons section rules.
func (p *Parser) classifyFlat(text string) classification {
	if !strings.HasPrefix(text, "-") && utf8.RuneCountInString(text) < maxCategoryRunes && !containsSentinel(text) {
		return classification{kind: lineCategoryHeader, text: text}
	}
	if strings.HasPrefix(text, "-") && p.category != "" {
		return classification{kind: lineFlatItem, text: strings.TrimSpace(strings.TrimLeft(text, "- "))}
	}
	return classification{kind: lineIgnored}
}

// apply mutates the parser state and catalog per the classification.
func (p *Parser) apply(c classification) {
	switch c.kind {
	case lineSectionHeader:
		p.flushDeal()
		p.section = c.section
		p.field = FieldNone

	case lineFieldLabel:
		p.field = c.field

	case lineListItem:
		switch c.field {
		case FieldSale:
			p.deal.Sale = append(p.deal.Sale, c.text)
		case FieldCoupons:
			p.deal.Coupons = append(p.deal.Coupons, c.text)
		case FieldBuy:
			p.deal.Buy = append(p.deal.Buy, c.text)
		case FieldWhy:
			// Rationale is single-valued, not a list.
			p.deal.Why = c.text
		}

	case lineWhyText:
		p.deal.Why = c.text
		// Clear focus so the next unmarked line reads as a new deal name.
		p.field = FieldNone

	case lineDealName:
		p.flushDeal()
		p.deal = catalog.NewStackDeal(c.text)
		p.field = FieldNone

	case lineCategoryHeader:
		p.category = c.text
		p.active().Register(c.text)

	case lineFlatItem:
		p.active().Append(p.category, catalog.RawLine(c.text))
	}
}

// flushDeal moves the in-progress stack deal into the active section's list
// and clears it. A deal is flushed exactly once; a deal pending while a flat
// section is active has nowhere to go and is dropped.
func (p *Parser) flushDeal() {
	if p.deal == nil {
		return
	}
	switch p.section {
	case SectionTriple:
		p.out.TripleStacks = append(p.out.TripleStacks, *p.deal)
	case SectionDouble:
		p.out.DoubleStacks = append(p.out.DoubleStacks, *p.deal)
	}
	p.deal = nil
	p.field = FieldNone
}

// active returns the category list for the current flat section.
func (p *Parser) active() *catalog.CategoryList {
	if p.section == SectionCoupons {
		return p.out.DigitalCoupons
	}
	return p.out.BogoDeals
}

func containsSentinel(text string) bool {
	for _, s := range categorySentinels {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func hasListMarker(text string) bool {
	return strings.HasPrefix(text, "-") ||
		strings.HasPrefix(text, "–") ||
		strings.HasPrefix(text, "•") ||
		strings.HasPrefix(text, " ")
}

// stripMarker removes any leading run of list markers and spaces.
func stripMarker(text string) string {
	return strings.TrimSpace(strings.TrimLeft(text, listMarkers))
}
