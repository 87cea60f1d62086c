// Package style holds the terminal theme for shinydir output.
//
// Styles are defined in the embedded styles.yaml under semantic names
// (RuleName, Ok, EntryError, ...) and rendered through a lipgloss renderer
// bound to one output stream, so stdout and stderr detect color support
// independently.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Definitions is the parsed contents of a styles file
type Definitions struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// ParseDefinitions parses a styles YAML document
func ParseDefinitions(data []byte) (*Definitions, error) {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	for name, def := range defs.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" {
				continue
			}
			if _, ok := defs.Colors[ref]; !ok {
				return nil, fmt.Errorf("style %s references unknown color %q", name, ref)
			}
		}
	}
	return &defs, nil
}

// DefaultDefinitions returns the built-in theme
func DefaultDefinitions() *Definitions {
	defs, err := ParseDefinitions(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("embedded styles are invalid: %v", err))
	}
	return defs
}

// build constructs the named lipgloss styles for renderer
func (d *Definitions) build(renderer *lipgloss.Renderer) map[string]lipgloss.Style {
	colors := make(map[string]lipgloss.AdaptiveColor, len(d.Colors))
	for name, def := range d.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(d.Styles))
	for name, def := range d.Styles {
		style := renderer.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if def.Faint {
			style = style.Faint(true)
		}
		if def.Foreground != "" {
			style = style.Foreground(colors[def.Foreground])
		}
		if def.Background != "" {
			style = style.Background(colors[def.Background])
		}
		registry[name] = style
	}
	return registry
}
