package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/pksim/internal/pk"
)

// SeriesSVG renders a concentration series as a bare SVG path in ng/mL,
// scaled to fill the given size.
func SeriesSVG(s pk.Series, width, height int, strokeColor string) string {
	if len(s) < 2 {
		return ""
	}

	minX, maxX := s[0].TimeH, s[len(s)-1].TimeH
	maxY := 0.0
	for _, p := range s {
		if p.ValueMgL > maxY {
			maxY = p.ValueMgL
		}
	}

	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	if maxY == 0 {
		maxY = 1
	}
	maxY *= 1.1

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<title>peak %.1f ng/mL</title>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, pk.MgLToNgML(maxY/1.1), strokeColor))

	for i, p := range s {
		x := (p.TimeH - minX) / rangeX * float64(width)
		y := float64(height) - p.ValueMgL/maxY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
