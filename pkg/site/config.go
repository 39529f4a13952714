// Package site wires the deals pipeline together: configuration, document
// reading, parsing, rendering, and output writing.
package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSource is the document the generator reads when no config is given.
const DefaultSource = "Publix_Final.docx"

// DefaultOutput is the page the generator writes when no config is given.
const DefaultOutput = "index.html"

// Config holds the generator's settings, normally loaded from dealsite.yaml
// next to the source document.
type Config struct {
	// Source is the path to the weekly deals document (.docx or .txt).
	Source string `yaml:"source"`

	// Output is the path of the generated HTML page.
	Output string `yaml:"output"`

	// Title is the site name shown in the page header.
	Title string `yaml:"title"`

	// Tagline is the short line under the title.
	Tagline string `yaml:"tagline"`

	// Domain is the site's public hostname, shown in the footer.
	Domain string `yaml:"domain"`

	// ExportPath is where the shopping-list workbook is written.
	ExportPath string `yaml:"export_path"`
}

// DefaultConfig returns the settings the original weekly workflow uses.
func DefaultConfig() Config {
	return Config{
		Source:     DefaultSource,
		Output:     DefaultOutput,
		Title:      "Squatchy Stacks",
		Tagline:    "Your Friendly Neighborhood Deal Hunter",
		Domain:     "squatchystacks.com",
		ExportPath: "shopping-list.xlsx",
	}
}

// LoadConfig reads a YAML config file. Fields left empty in the file keep
// their defaults, so a config may override only what it needs to.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
