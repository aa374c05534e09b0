package dashsmart

// presetPalette is the ordered color cycle used when a series has no
// explicit color and when the customizer appends a new series. New series
// take palette[len(series) % len(palette)] at append time, so removal and
// re-append of the last series reproduces the same color.
var presetPalette = []string{
	"#3B82F6", // blue
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#6366F1", // indigo
}

// piePalette colors pie slices by slice index; pies ignore per-series colors.
var piePalette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6", "#EC4899",
}

// PresetColor returns the palette entry for index i, cycling past the end.
func PresetColor(i int) string {
	if i < 0 {
		i = -i
	}
	return presetPalette[i%len(presetPalette)]
}

// PieColor returns the slice color for index i, cycling past the end.
func PieColor(i int) string {
	if i < 0 {
		i = -i
	}
	return piePalette[i%len(piePalette)]
}

// PresetPalette returns a copy of the series color cycle.
func PresetPalette() []string {
	return append([]string(nil), presetPalette...)
}
