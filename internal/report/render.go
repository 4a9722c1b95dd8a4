package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/josephfleet/infodump/internal/ui"
)

// bannerWidth is the fixed width of section title banners.
const bannerWidth = 60

// Renderer writes sections to an output stream with optional color.
type Renderer struct {
	out    io.Writer
	styles ui.Styles
}

// NewRenderer creates a renderer. With noColor set, everything is emitted
// as plain text.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	return &Renderer{
		out:    out,
		styles: ui.GetStyles(noColor),
	}
}

// Styles returns the styles the renderer applies, for callers that style
// body text before handing it over.
func (r *Renderer) Styles() ui.Styles {
	return r.styles
}

// Section writes one section: its title banner, then the body.
func (r *Renderer) Section(s Section) {
	_, _ = fmt.Fprintln(r.out, r.styles.Banner.Render(Banner(s.Title)))
	if s.Body != "" {
		_, _ = fmt.Fprintln(r.out, s.Body)
	}
	_, _ = fmt.Fprintln(r.out)
}

// Banner formats a title as a fixed-width banner line. The "=" fill keeps
// the banner visually distinct even when styling is disabled.
func Banner(title string) string {
	fill := bannerWidth - len(title) - 2
	if fill < 2 {
		fill = 2
	}
	left := fill / 2
	right := fill - left
	return strings.Repeat("=", left) + " " + title + " " + strings.Repeat("=", right)
}
