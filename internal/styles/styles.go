// Package styles renders terminal output for mathops.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Colors shared by every renderer.
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8A8A8A"}
)

// Palette holds styles bound to a single output writer.
type Palette struct {
	enabled bool
	sum     lipgloss.Style
	dim     lipgloss.Style
}

// Option configures a Palette.
type Option func(*lipgloss.Renderer)

// WithProfile forces the color profile instead of detecting it from w.
func WithProfile(p termenv.Profile) Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(p)
	}
}

// New returns a palette for w. When color is false every Render* call
// returns its input unchanged.
func New(w io.Writer, color bool, opts ...Option) *Palette {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}
	return &Palette{
		enabled: color,
		sum:     r.NewStyle().Bold(true).Foreground(ColorAccent),
		dim:     r.NewStyle().Foreground(ColorGray),
	}
}

// RenderSum styles a computed result.
func (p *Palette) RenderSum(s string) string {
	if !p.enabled {
		return s
	}
	return p.sum.Render(s)
}

// RenderDim styles secondary text such as operators.
func (p *Palette) RenderDim(s string) string {
	if !p.enabled {
		return s
	}
	return p.dim.Render(s)
}

// Plain strips any escape sequences from s.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Width returns the printable cell width of s.
func Width(s string) int {
	return ansi.StringWidth(s)
}
