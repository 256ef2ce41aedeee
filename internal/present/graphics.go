package present

// Graphics maps a glyph key (category, optionally suffixed with "_night") to
// its rendering.
type Graphics map[string]string

// ASCIIArt is used by the classic output mode.
var ASCIIArt = Graphics{
	"clear": `
     \ | /
    -  O  -
     / | \
    `,
	"clear_night": `
       )\
       //
    .-"
    `,
	"partly_cloudy": `
     \ | /_
    -  o(  )_
     / (_____)
    `,
	"partly_cloudy_night": `
      )\   __
      //  (  )_
    .-"  (_____)
    `,
	"cloudy": `
      __
     (  )_
    (_____)
    `,
	"rain": `
      __
     (  )_
    (_____)
     \ \ \
    `,
	"snow": `
      __
     (  )_
    (_____)
     * * *
    `,
	"thunderstorm": `
      __
     (  )_
    (_____)
     /_ /_
      /  /
    `,
	"fog": `
     _______
    ( ~ ~ ~ )
    ( ~ ~ ~ )
    ( ~ ~ ~ )
    '-------'
    `,
}

// Symbols are single unicode glyphs for the data output modes.
var Symbols = Graphics{
	"clear":               "\u2600",       // black sun with rays
	"clear_night":         "\u263e",       // crescent moon
	"partly_cloudy":       "\u26c5",       // sun behind cloud
	"partly_cloudy_night": "\u263e\u2601", // crescent moon, cloud
	"cloudy":              "\u2601",       // cloud
	"rain":                "\U0001f327",   // cloud with rain
	"snow":                "\U0001f328",   // cloud with snow
	"thunderstorm":        "\u26c8",       // thunder cloud and rain
	"fog":                 "\U0001f32b",   // fog
}

// GlyphKey picks the table key for a weather code.
//
// The night suffix is applied when the category is clear, or when it is
// partly cloudy at night. Clear therefore gets the night glyph during the day
// as well.
//
// TODO: confirm with the menu wrapper whether daytime clear should switch to
// the sun glyph before changing the precedence here.
func GlyphKey(code int, isDay bool) string {
	category := CategoryOf(code)
	if category == CategoryClear || category == CategoryPartlyCloudy && !isDay {
		return string(category) + "_night"
	}
	return string(category)
}

// Graphic returns the glyph for a weather code, falling back to cloudy.
func Graphic(table Graphics, code int, isDay bool) string {
	if g, ok := table[GlyphKey(code, isDay)]; ok {
		return g
	}
	return table[string(CategoryCloudy)]
}
