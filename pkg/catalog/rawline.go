package catalog

import "strings"

// RawLine is a single flat deal exactly as it appeared in the document.
// Sub-fields are separated by em-dashes; splitting is deferred until render
// time because trailing fields are optional and the line as a whole is
// already unambiguous at parse time.
type RawLine string

// fieldDelimiter separates sub-fields within a flat deal line.
const fieldDelimiter = "—"

// BogoItem is a flat BOGO line split into its positional sub-fields.
type BogoItem struct {
	Name    string
	Offer   string
	Savings string
	Valid   string
}

// CouponItem is a flat digital coupon line split into its positional
// sub-fields.
type CouponItem struct {
	Name        string
	Savings     string
	Description string
	Expires     string
}

// SplitBogo splits the line as "Name — Offer — Savings — Valid". Missing
// trailing fields resolve to empty strings, except the offer which defaults
// to the standard BOGO wording.
func (l RawLine) SplitBogo() BogoItem {
	parts := splitFields(l)
	item := BogoItem{
		Name:    part(parts, 0),
		Offer:   part(parts, 1),
		Savings: part(parts, 2),
		Valid:   part(parts, 3),
	}
	if item.Offer == "" {
		item.Offer = "Buy 1 Get 1 Free"
	}
	return item
}

// SplitCoupon splits the line as "Name — Savings — Description — Expires".
// Missing trailing fields resolve to empty strings.
func (l RawLine) SplitCoupon() CouponItem {
	parts := splitFields(l)
	return CouponItem{
		Name:        part(parts, 0),
		Savings:     part(parts, 1),
		Description: part(parts, 2),
		Expires:     part(parts, 3),
	}
}

func splitFields(l RawLine) []string {
	parts := strings.Split(string(l), fieldDelimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func part(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
