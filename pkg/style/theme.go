package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Glyph names
const (
	GlyphOK    = "ok"
	GlyphDot   = "dot"
	GlyphArrow = "arrow"
)

var unicodeGlyphs = map[string]string{
	GlyphOK:    "\uf00c", // nf-fa-check
	GlyphDot:   "\uf444", // nf-oct-dot_fill
	GlyphArrow: "=>",
}

var asciiGlyphs = map[string]string{
	GlyphOK:    "OK",
	GlyphDot:   "-",
	GlyphArrow: "=>",
}

// Options are the presentation settings for one output stream
type Options struct {
	// Color enables ANSI styling when the stream supports it
	Color bool
	// Unicode selects Nerd Font glyphs over ASCII
	Unicode bool
	// ForceColor skips terminal and NO_COLOR detection
	ForceColor bool
}

// Theme renders styled text for one output stream
type Theme struct {
	styles  map[string]lipgloss.Style
	color   bool
	unicode bool
}

// NewTheme builds a theme for w using the built-in style definitions
func NewTheme(w io.Writer, opts Options) *Theme {
	return NewThemeWith(w, opts, DefaultDefinitions())
}

// NewThemeWith builds a theme for w from defs
func NewThemeWith(w io.Writer, opts Options, defs *Definitions) *Theme {
	color := opts.Color && (opts.ForceColor || ColorSupported(w))

	renderer := lipgloss.NewRenderer(w)
	if color {
		if opts.ForceColor {
			renderer.SetColorProfile(termenv.ANSI256)
		}
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Theme{
		styles:  defs.build(renderer),
		color:   color,
		unicode: opts.Unicode,
	}
}

// ColorSupported reports whether w is a terminal and NO_COLOR is unset
func ColorSupported(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Color reports whether the theme emits ANSI sequences
func (t *Theme) Color() bool {
	return t.color
}

// Unicode reports whether the theme uses Nerd Font glyphs
func (t *Theme) Unicode() bool {
	return t.unicode
}

// Render styles text with the named style. Unknown names and colorless themes return text unchanged.
func (t *Theme) Render(name, text string) string {
	if !t.color {
		return text
	}
	style, ok := t.styles[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Style returns the named style, or an empty one
func (t *Theme) Style(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Glyph returns the unicode or ASCII variant of a glyph
func (t *Theme) Glyph(name string) string {
	if t.unicode {
		return unicodeGlyphs[name]
	}
	return asciiGlyphs[name]
}
