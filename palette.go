package spritecut

// Palette holds the track display colors in assignment order.
var Palette = []string{
	"#FFC500FF",
	"#7BFF00FF",
	"#FF6A00FF",
	"#00FF95FF",
	"#00FF33FF",
	"#00FFFFFF",
	"#006FFFFF",
	"#8400FFFF",
	"#FF00F2FF",
	"#FF0073FF",
	"#ff0000",
}

// FallbackTrackColor is shared by every track created once the palette is
// exhausted.
const FallbackTrackColor = "#0048ff"

// freeColor returns the first palette entry not used by any of the given
// colors, or "" when every entry is taken.
func freeColor(used map[string]bool) string {
	for _, c := range Palette {
		if !used[c] {
			return c
		}
	}
	return ""
}
