package timeline

import (
	"fmt"
	"html"
	"strings"
)

// Marker is a labelled point to draw on the rendered timeline.
type Marker struct {
	Position
	Title    string
	Subtitle string
	Label    Label
}

// Style holds the colors and font used by Render.
type Style struct {
	Background string
	Line       string
	Marker     string
	Text       string
	Muted      string
	Font       string
	FontSize   int
}

func DefaultStyle() Style {
	return Style{
		Background: "none",
		Line:       "#64748b",
		Marker:     "#38bdf8",
		Text:       "#e2e8f0",
		Muted:      "#94a3b8",
		Font:       "Inter, Arial, sans-serif",
		FontSize:   13,
	}
}

// labelOffset is the vertical distance between a marker and its title.
const labelOffset = 22

// ExperienceMarkers converts positioned items into markers using title and
// subtitle callbacks.
func ExperienceMarkers[T Dated](items []Positioned[T], title, subtitle func(T) string) []Marker {
	markers := make([]Marker, 0, len(items))
	for _, p := range items {
		m := Marker{Position: p.Position, Label: p.LabelPosition, Title: title(p.Item)}
		if subtitle != nil {
			m.Subtitle = subtitle(p.Item)
		}
		markers = append(markers, m)
	}
	return markers
}

// GroupMarkers converts technology groups into markers. The title joins the
// member names and the subtitle is the formatted date.
func GroupMarkers[T Dated](groups []Group[T], name func(T) string) []Marker {
	markers := make([]Marker, 0, len(groups))
	for _, g := range groups {
		names := make([]string, len(g.Items))
		for i, item := range g.Items {
			names[i] = name(item)
		}
		markers = append(markers, Marker{
			Position: g.Position,
			Label:    g.LabelPosition,
			Title:    strings.Join(names, ", "),
			Subtitle: FormatDate(g.Date),
		})
	}
	return markers
}

// Render draws the timeline path, its year ticks and markers as a
// standalone SVG document.
func Render(tl *Timeline, markers []Marker, style Style) string {
	cfg := tl.Config()

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">
<defs>
<style>
.tl-title { font-family: %s; font-size: %dpx; font-weight: 600; fill: %s; }
.tl-sub { font-family: %s; font-size: %dpx; fill: %s; }
.tl-year { font-family: %s; font-size: %dpx; fill: %s; }
</style>
<marker id="tl-arrow" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">
<path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>
</marker>
</defs>
`,
		formatNumber(cfg.SVGWidth), formatNumber(cfg.SVGHeight),
		formatNumber(cfg.SVGWidth), formatNumber(cfg.SVGHeight),
		style.Font, style.FontSize, style.Text,
		style.Font, style.FontSize-2, style.Muted,
		style.Font, style.FontSize-3, style.Muted,
		style.Line)

	if style.Background != "" && style.Background != "none" {
		fmt.Fprintf(&svg, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", style.Background)
	}

	fmt.Fprintf(&svg, `<path d="%s" fill="none" stroke="%s" stroke-width="2" marker-end="url(#tl-arrow)"/>`+"\n",
		tl.PathDataWithArrow(), style.Line)

	for _, tick := range tl.Ticks() {
		fmt.Fprintf(&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			formatNumber(tick.X), formatNumber(tick.Y-4), formatNumber(tick.X), formatNumber(tick.Y+4), style.Line)
		fmt.Fprintf(&svg, `<text class="tl-year" x="%s" y="%s" text-anchor="middle">%d</text>`+"\n",
			formatNumber(tick.X), formatNumber(tick.Y+16), tick.Year)
	}

	for _, m := range markers {
		drawMarker(&svg, m, style)
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

func drawMarker(svg *strings.Builder, m Marker, style Style) {
	fmt.Fprintf(svg, `<circle cx="%s" cy="%s" r="6" fill="%s"/>`+"\n",
		formatNumber(m.X), formatNumber(m.Y), style.Marker)

	// Titles sit nearest the line, subtitles further out.
	titleY, subY := m.Y+labelOffset+8, m.Y+labelOffset+24
	if m.Label == LabelAbove {
		titleY, subY = m.Y-labelOffset, m.Y-labelOffset-16
	}

	fmt.Fprintf(svg, `<text class="tl-title" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
		formatNumber(m.X), formatNumber(titleY), html.EscapeString(m.Title))
	if m.Subtitle != "" {
		fmt.Fprintf(svg, `<text class="tl-sub" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
			formatNumber(m.X), formatNumber(subY), html.EscapeString(m.Subtitle))
	}
}
