package render

import (
	"unicode"
	"unicode/utf8"
)

// Pictogram runes the atlas draws by hand.
const (
	PicWrench    = '🔧'
	PicHelmet    = '🪖'
	PicBook      = '📘'
	PicBottle    = '🧴'
	PicParty     = '🎉'
	PicHourglass = '⏳'
	PicRocket    = '🚀'
	PicSparkle   = '✨'
)

var pictogramOrder = []rune{
	PicWrench, PicHelmet, PicBook, PicBottle,
	PicParty, PicHourglass, PicRocket, PicSparkle,
}

// pictograms are 16x16 bitmaps; '#' is lit.
var pictograms = map[rune][]string{
	PicWrench: {
		"................",
		"..........####..",
		".........##..#..",
		"........##...##.",
		"........#...###.",
		".......##..###..",
		"......###.###...",
		".....######.....",
		"....#####.......",
		"...####.........",
		"..####..........",
		".####...........",
		"####............",
		"###.............",
		"##..............",
		"................",
	},
	PicHelmet: {
		"................",
		"................",
		".....######.....",
		"...##########...",
		"..############..",
		".##############.",
		".####......####.",
		".###........###.",
		".###........###.",
		".####......####.",
		".##############.",
		"################",
		"################",
		"................",
		"................",
		"................",
	},
	PicBook: {
		"................",
		"..###########...",
		"..#.........##..",
		"..#.#######.##..",
		"..#.........##..",
		"..#.#####...##..",
		"..#.........##..",
		"..#.........##..",
		"..#.........##..",
		"..#.........##..",
		"..#.........##..",
		"..###########...",
		"..##########.#..",
		"...###########..",
		"................",
		"................",
	},
	PicBottle: {
		"......####......",
		"......####......",
		".......##.......",
		".......##.......",
		".....######.....",
		"....##....##....",
		"...##......##...",
		"...#........#...",
		"...#.######.#...",
		"...#.#....#.#...",
		"...#.######.#...",
		"...#........#...",
		"...#........#...",
		"...##########...",
		"................",
		"................",
	},
	PicParty: {
		"..........#..#..",
		".#....#.......#.",
		"...#......##....",
		".........#..#...",
		"..#..##.......#.",
		"....#..#...#....",
		"...##...#.......",
		"..####...#..#...",
		"..#####.........",
		".#######........",
		".########.......",
		"#########.......",
		"###########.....",
		"................",
		"................",
		"................",
	},
	PicHourglass: {
		"..############..",
		"...##########...",
		"...#........#...",
		"....#......#....",
		".....#....#.....",
		"......#..#......",
		".......##.......",
		".......##.......",
		"......#..#......",
		".....#.##.#.....",
		"....#.####.#....",
		"...#.######.#...",
		"...##########...",
		"..############..",
		"................",
		"................",
	},
	PicRocket: {
		".......##.......",
		"......####......",
		".....######.....",
		".....##..##.....",
		".....##..##.....",
		".....######.....",
		".....######.....",
		"....########....",
		"...##.####.##...",
		"..##..####..##..",
		"..#...#..#...#..",
		"......#..#......",
		".......##.......",
		"......#..#......",
		".......##.......",
		"................",
	},
	PicSparkle: {
		".......#........",
		".......#........",
		"......###.......",
		"......###.......",
		"..###########...",
		"....#######.....",
		".....#####......",
		"....###.###.....",
		"....##...##.....",
		"...#.......#....",
		"................",
		"............#...",
		"...........###..",
		"............#...",
		"................",
		"................",
	},
}

// IconRune picks the glyph for an item: its emoji when the atlas has a
// pictogram for it, otherwise the upper-cased first letter of label.
func IconRune(emoji, label string) rune {
	if r, _ := utf8.DecodeRuneInString(emoji); r != utf8.RuneError {
		if _, ok := pictograms[r]; ok {
			return r
		}
	}
	if r, _ := utf8.DecodeRuneInString(label); r != utf8.RuneError {
		return unicode.ToUpper(r)
	}
	return FallbackGlyph
}
