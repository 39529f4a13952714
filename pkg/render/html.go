// Package render turns a parsed deal catalog into the site's single
// self-contained HTML page: inline styles, no external assets beyond web
// fonts, and a small smooth-scroll script.
package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/nointernetrex/publix-deals/pkg/catalog"
)

// Page holds the branding and provenance values interpolated into the
// generated page.
type Page struct {
	// Title is the site name shown in the header and <title>.
	Title string

	// Tagline is the short line under the title.
	Tagline string

	// Domain is the site's public hostname, shown in the footer.
	Domain string

	// BuildID identifies this generation run; stamped into a meta tag.
	BuildID string

	// GeneratedAt is when the page was generated.
	GeneratedAt time.Time
}

// HTML generates the complete page for the catalog. Generation is
// deterministic for a given catalog and page; all catalog text is escaped.
func HTML(c *catalog.Catalog, page Page) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	if page.BuildID != "" {
		b.WriteString(fmt.Sprintf("<meta name=\"build-id\" content=\"%s\">\n", html.EscapeString(page.BuildID)))
	}
	if !page.GeneratedAt.IsZero() {
		b.WriteString(fmt.Sprintf("<!-- generated %s -->\n", page.GeneratedAt.UTC().Format(time.RFC3339)))
	}
	b.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(page.Title)))
	b.WriteString("<link rel=\"preconnect\" href=\"https://fonts.googleapis.com\">\n")
	b.WriteString("<link rel=\"preconnect\" href=\"https://fonts.gstatic.com\" crossorigin>\n")
	b.WriteString("<link href=\"https://fonts.googleapis.com/css2?family=Fredoka:wght@400;500;600;700&family=Inter:wght@400;500;600&display=swap\" rel=\"stylesheet\">\n")
	b.WriteString(pageStyles())
	b.WriteString("</head>\n<body>\n")

	b.WriteString("<div class=\"container\">\n")
	writeHeader(&b, page)
	writeNav(&b)

	writeStackSection(&b, "triple-stacks", "Triple Stacks (Checkout-Safe)", "Digital Coupons:", c.TripleStacks, true)
	writeStackSection(&b, "double-stacks", "Double Stacks (Specific)", "Digital Coupon:", c.DoubleStacks, false)
	writeBogoSection(&b, c.BogoDeals)
	writeCouponSection(&b, c.DigitalCoupons)

	writeFooter(&b, page)
	b.WriteString("</div>\n")

	b.WriteString(scrollScript())
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func writeHeader(b *strings.Builder, page Page) {
	b.WriteString("<header>\n")
	b.WriteString(fmt.Sprintf("<h1 class=\"logo-text\">%s</h1>\n", html.EscapeString(page.Title)))
	if page.Tagline != "" {
		b.WriteString(fmt.Sprintf("<p class=\"tagline\">%s</p>\n", html.EscapeString(page.Tagline)))
	}
	b.WriteString("<div class=\"valid-dates\">Updated Weekly</div>\n")
	b.WriteString("</header>\n\n")
}

func writeNav(b *strings.Builder) {
	b.WriteString("<nav>\n<ul>\n")
	b.WriteString("<li><a href=\"#triple-stacks\">Triple Stacks</a></li>\n")
	b.WriteString("<li><a href=\"#double-stacks\">Double Stacks</a></li>\n")
	b.WriteString("<li><a href=\"#bogo-deals\">BOGO Deals</a></li>\n")
	b.WriteString("<li><a href=\"#digital-coupons\">Digital Coupons</a></li>\n")
	b.WriteString("</ul>\n</nav>\n\n")
}

// writeStackSection renders one tier of stack deals. The triple tier shows
// the rationale block, the double tier does not, matching the print layout
// the document was authored for.
func writeStackSection(b *strings.Builder, id, heading, couponLabel string, deals []catalog.StackDeal, withWhy bool) {
	b.WriteString(fmt.Sprintf("<section id=\"%s\">\n", id))
	b.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(heading)))

	for _, deal := range deals {
		b.WriteString("<div class=\"stack-deal\">\n")
		b.WriteString(fmt.Sprintf("<h4>%s</h4>\n", html.EscapeString(deal.Name)))

		writeItemList(b, "sale-items", "Sale:", deal.Sale)
		writeItemList(b, "coupons", couponLabel, deal.Coupons)
		writeItemList(b, "buy-list", "Buy:", deal.Buy)

		if withWhy {
			b.WriteString(fmt.Sprintf("<div class=\"why-works\"><strong>Why this works:</strong> %s</div>\n",
				html.EscapeString(deal.Why)))
		}

		b.WriteString("</div>\n")
	}

	b.WriteString("</section>\n\n")
}

func writeItemList(b *strings.Builder, class, label string, items []string) {
	b.WriteString(fmt.Sprintf("<div class=\"%s\">\n<strong>%s</strong>\n<ul>", class, html.EscapeString(label)))
	for _, item := range items {
		b.WriteString(fmt.Sprintf("<li>%s</li>", html.EscapeString(item)))
	}
	b.WriteString("</ul>\n</div>\n")
}

func writeBogoSection(b *strings.Builder, list *catalog.CategoryList) {
	b.WriteString("<section id=\"bogo-deals\">\n")
	b.WriteString("<h2>BOGO Deals - Buy One Get One Free</h2>\n")

	for _, category := range list.Categories() {
		lines := list.Lines(category)
		if len(lines) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("<div class=\"category-header\">%s</div>\n", html.EscapeString(category)))
		b.WriteString("<div class=\"bogo-grid\">\n")

		for _, line := range lines {
			item := line.SplitBogo()
			b.WriteString("<div class=\"deal-card\">\n")
			b.WriteString(fmt.Sprintf("<h5>%s</h5>\n", html.EscapeString(item.Name)))
			b.WriteString(fmt.Sprintf("<span class=\"offer\">%s</span>\n", html.EscapeString(item.Offer)))
			if item.Savings != "" {
				b.WriteString(fmt.Sprintf("<div class=\"savings\">%s</div>\n", html.EscapeString(item.Savings)))
			}
			b.WriteString(fmt.Sprintf("<div class=\"valid\">%s</div>\n", html.EscapeString(item.Valid)))
			b.WriteString("</div>\n")
		}

		b.WriteString("</div>\n")
	}

	b.WriteString("</section>\n\n")
}

func writeCouponSection(b *strings.Builder, list *catalog.CategoryList) {
	b.WriteString("<section id=\"digital-coupons\">\n")
	b.WriteString("<h2>Digital Coupons</h2>\n")

	for _, category := range list.Categories() {
		lines := list.Lines(category)
		if len(lines) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("<div class=\"category-header\">%s</div>\n", html.EscapeString(category)))
		b.WriteString("<div class=\"coupon-grid\">\n")

		for _, line := range lines {
			item := line.SplitCoupon()
			b.WriteString("<div class=\"deal-card coupon-card\">\n")
			b.WriteString(fmt.Sprintf("<h5>%s</h5>\n", html.EscapeString(item.Name)))
			b.WriteString(fmt.Sprintf("<span class=\"savings-amount\">%s</span>\n", html.EscapeString(item.Savings)))
			if item.Description != "" {
				b.WriteString(fmt.Sprintf("<div class=\"description\">%s</div>\n", html.EscapeString(item.Description)))
			}
			b.WriteString(fmt.Sprintf("<div class=\"expires\">%s</div>\n", html.EscapeString(item.Expires)))
			b.WriteString("</div>\n")
		}

		b.WriteString("</div>\n")
	}

	b.WriteString("</section>\n\n")
}

func writeFooter(b *strings.Builder, page Page) {
	b.WriteString("<footer>\n")
	b.WriteString(fmt.Sprintf("<p><strong>%s</strong> - Helping you save big on weekly deals!</p>\n",
		html.EscapeString(page.Title)))
	b.WriteString("<p>Clip digital coupons in the store app before shopping</p>\n")
	if page.Domain != "" {
		b.WriteString(fmt.Sprintf("<p class=\"footer-domain\">%s</p>\n", html.EscapeString(page.Domain)))
	}
	b.WriteString("</footer>\n")
}

func scrollScript() string {
	return `<script>
document.querySelectorAll('nav a').forEach(anchor => {
    anchor.addEventListener('click', function(e) {
        e.preventDefault();
        const target = document.querySelector(this.getAttribute('href'));
        target.scrollIntoView({ behavior: 'smooth', block: 'start' });
    });
});
</script>
`
}
