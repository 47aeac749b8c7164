package static

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// RenderSVG writes the scene as a standalone SVG document
func RenderSVG(w io.Writer, s *Scene) error {
	var svg strings.Builder

	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, hex(colorBackground))

	if s.Title != "" {
		fmt.Fprintf(&svg, `<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Go, Arial, sans-serif" font-size="%.1f" fill="%s">%s</text>
`, float64(s.Width)/2, s.TitleBaseline, s.TitleSize, hex(colorTitle), escapeXML(s.Title))
	}

	fmt.Fprintf(&svg, `<g fill="none" stroke="%s" stroke-width="%.2f" stroke-linejoin="round">
`, hex(colorBorder), s.LineWidth)
	for _, line := range s.Lines {
		svg.WriteString(`<path d="`)
		for i, p := range line {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&svg, "%s%.1f %.1f", cmd, p.X, p.Y)
		}
		svg.WriteString("\"/>\n")
	}
	f := s.Frame
	fmt.Fprintf(&svg, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
</g>
`, f.X, f.Y, f.W, f.H)

	fmt.Fprintf(&svg, "<g fill=\"%s\">\n", hex(colorHotel))
	for _, d := range s.Dots {
		fmt.Fprintf(&svg, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, d.X, d.Y, s.DotRadius)
	}
	svg.WriteString("</g>\n</svg>\n")

	if _, err := io.WriteString(w, svg.String()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// escapeXML escapes special XML characters in a string to ensure valid SVG output.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
