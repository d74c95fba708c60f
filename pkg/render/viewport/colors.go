package viewport

import (
	"fmt"
	"hash/fnv"
	"image/color"
)

// palette holds the fill colors cycled through by entity group. Chosen
// for contrast against the dark dashboard background.
var palette = []string{
	"#6ea8fe", // blue
	"#50fa7b", // green
	"#ff79c6", // pink
	"#ffb86c", // orange
	"#bd93f9", // purple
	"#8be9fd", // cyan
	"#f1fa8c", // yellow
	"#ff5555", // red
}

// NeutralColor is the fill for nodes without a group.
const NeutralColor = "#6272a4"

// GroupColor returns the hex fill color for a group. The mapping is
// deterministic: the same group always gets the same color, across runs
// and across renderers. Empty groups get [NeutralColor].
func GroupColor(group string) string {
	if group == "" {
		return NeutralColor
	}
	h := fnv.New32a()
	h.Write([]byte(group))
	return palette[h.Sum32()%uint32(len(palette))]
}

// GroupRGBA is [GroupColor] decoded for raster renderers.
func GroupRGBA(group string) color.RGBA {
	return parseHex(GroupColor(group))
}

// EdgeColor is the shared stroke color for edges.
const EdgeColor = "#39424e"

// parseHex decodes a "#rrggbb" string. The palette is the only source of
// inputs, so malformed strings fall back to the neutral gray.
func parseHex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{R: 0x62, G: 0x72, B: 0xa4, A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
