package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/display"
	"github.com/san-kum/sortviz/internal/palette"
)

const (
	svgBackground = "#0a0a0a"
	svgAxis       = "#666688"
	svgText       = "#e0e0e0"
	svgPadding    = 24.0
	svgFallback   = "blues"
)

// FrameToSVG draws one recorded frame as a bar chart. Bar heights follow
// the frame's values over [0, max]; default colors come from the blues
// scale the bar display uses.
func FrameToSVG(frame animate.Frame[int], width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	items := frame.Items
	if len(items) == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	maxV := items[0].Value
	for _, it := range items {
		if it.Value > maxV {
			maxV = it.Value
		}
	}
	if maxV <= 0 {
		maxV = 1
	}

	plotW := float64(width) - 2*svgPadding
	plotH := float64(height) - 2*svgPadding
	band := plotW / float64(len(items))
	baseY := svgPadding + plotH

	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, svgPadding, baseY, svgPadding+plotW, baseY, svgAxis))

	sb.WriteString("<g>\n")
	for i, it := range items {
		h := float64(it.Value) / float64(maxV) * plotH
		if h < 0 {
			h = 0
		}
		x := svgPadding + float64(i)*band
		fill := palette.Resolve(it.Color, float64(it.Value), -5, float64(maxV), svgFallback)
		if fill == "" {
			fill = svgText
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x+1, baseY-h, band-2, h, fill))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="monospace" font-size="10" text-anchor="middle">
`, svgText))
	for i, it := range items {
		x := svgPadding + (float64(i)+0.5)*band
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, x, baseY+14, display.Label(it.Value)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="16" fill="%s" font-family="monospace" font-size="11">push %d/%d %s</text>
`, svgPadding, svgText, frame.Step.Push, frame.Step.Total, frame.Step.Kind))

	sb.WriteString("</svg>")
	return sb.String()
}
