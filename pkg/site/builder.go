package site

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nointernetrex/publix-deals/pkg/catalog"
	"github.com/nointernetrex/publix-deals/pkg/docx"
	"github.com/nointernetrex/publix-deals/pkg/parse"
	"github.com/nointernetrex/publix-deals/pkg/render"
)

// Builder runs the read-parse-render-write pipeline for one configuration.
type Builder struct {
	cfg Config
}

// NewBuilder returns a builder for the given configuration.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Config returns the builder's configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// BuildResult summarizes one completed generation run.
type BuildResult struct {
	// BuildID uniquely identifies this run; it is also stamped into the
	// generated page's meta tags.
	BuildID string

	// Output is the path the page was written to.
	Output string

	// Stats holds the per-section deal counts found in the document.
	Stats catalog.Stats

	// Duration is how long the run took end to end.
	Duration time.Duration
}

// Summary returns the console report for the run.
func (r *BuildResult) Summary() string {
	var sb strings.Builder
	sb.WriteString(StatsReport(r.Stats))
	fmt.Fprintf(&sb, "Output: %s (%s)\n", r.Output, r.Duration.Round(time.Millisecond))
	return sb.String()
}

// StatsReport returns the per-section count report for a parsed catalog.
func StatsReport(stats catalog.Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d triple stack deals\n", stats.TripleStacks)
	fmt.Fprintf(&sb, "Found %d double stack deals\n", stats.DoubleStacks)
	fmt.Fprintf(&sb, "Found %d BOGO deals\n", stats.BogoDeals)
	fmt.Fprintf(&sb, "Found %d digital coupons\n", stats.DigitalCoupons)
	return sb.String()
}

// Catalog reads and parses the source document without writing anything.
func (b *Builder) Catalog() (*catalog.Catalog, error) {
	paragraphs, err := docx.ReadParagraphs(b.cfg.Source)
	if err != nil {
		return nil, err
	}
	return parse.New().Parse(paragraphs), nil
}

// Build runs the full pipeline and writes the page.
func (b *Builder) Build() (*BuildResult, error) {
	start := time.Now()

	cat, err := b.Catalog()
	if err != nil {
		return nil, err
	}

	buildID := uuid.NewString()
	page := render.Page{
		Title:       b.cfg.Title,
		Tagline:     b.cfg.Tagline,
		Domain:      b.cfg.Domain,
		BuildID:     buildID,
		GeneratedAt: time.Now(),
	}

	html := render.HTML(cat, page)
	if err := os.WriteFile(b.cfg.Output, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	return &BuildResult{
		BuildID:  buildID,
		Output:   b.cfg.Output,
		Stats:    cat.Stats(),
		Duration: time.Since(start),
	}, nil
}
