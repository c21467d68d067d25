package render

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/spacehole-rogue/spacecleanup/internal/game"
	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

// rowText reads a buffer row back as a string, trimming blanks.
func rowText(buf *CellBuffer, y int) string {
	var sb strings.Builder
	for x := 0; x < buf.Cols; x++ {
		sb.WriteRune(buf.Get(x, y).Glyph)
	}
	return strings.TrimSpace(sb.String())
}

func newHUDSession(duration int) *game.Session {
	s := game.NewSession(game.Settings{
		Duration: duration,
		Items:    world.DefaultItems(),
		Stage:    world.DefaultStage(1280, 720),
	}, game.WithSeed(11))
	s.Start()
	return s
}

func placeAll(s *game.Session) {
	for _, t := range s.Targets() {
		x, y := t.Rect.Center()
		s.ResolveDrop(game.DropAttempt{ItemID: t.Accept, X: x, Y: y})
	}
}

func TestComposeHUD(t *testing.T) {
	convey.Convey("Given a running round on an 80x45 grid", t, func() {
		buf := NewCellBuffer(80, 45)
		s := newHUDSession(45)

		convey.Convey("The status line shows time and progress", func() {
			button := ComposeHUD(buf, s, 16, 16)
			convey.So(button, convey.ShouldResemble, world.Rect{})
			convey.So(rowText(buf, 0), convey.ShouldStartWith, "Space Cleanup")
			convey.So(rowText(buf, 0), convey.ShouldContainSubstring, "Tempo: 45s")
			convey.So(rowText(buf, 0), convey.ShouldEndWith, "Itens: 0/4")
			convey.So(rowText(buf, 1), convey.ShouldEndWith, "0%")
		})

		convey.Convey("The comms feed shows the round start", func() {
			ComposeHUD(buf, s, 16, 16)
			convey.So(rowText(buf, 45-1-commsMax), convey.ShouldEqual, "Arrume a nave antes da decolagem!")
		})

		convey.Convey("When the round is won", func() {
			placeAll(s)
			button := ComposeHUD(buf, s, 16, 16)

			convey.Convey("Then the energy bar is full", func() {
				convey.So(rowText(buf, 1), convey.ShouldEndWith, "100%")
				full := 0
				for x := 0; x < buf.Cols; x++ {
					if buf.Get(x, 1).Glyph == BlockFull {
						full++
					}
				}
				convey.So(full, convey.ShouldEqual, barWidth)
			})

			convey.Convey("Then the modal carries the restart button", func() {
				convey.So(button.W, convey.ShouldEqual, float64(TextWidth(buttonLabel)*16))
				convey.So(button.H, convey.ShouldEqual, 16.0)
				col := int(button.X) / 16
				row := int(button.Y) / 16
				convey.So(buf.Get(col, row).Glyph, convey.ShouldEqual, '[')
				convey.So(buf.Get(col, row).BG, convey.ShouldEqual, uint8(ColorLightCyan))
			})
		})

		convey.Convey("When time runs out", func() {
			for range 45 {
				s.Tick()
			}
			button := ComposeHUD(buf, s, 16, 16)
			convey.So(s.Phase(), convey.ShouldEqual, game.PhaseLost)
			convey.So(button.W, convey.ShouldBeGreaterThan, 0)

			found := false
			for y := 0; y < buf.Rows; y++ {
				if strings.Contains(rowText(buf, y), "Tempo esgotado") {
					found = true
				}
			}
			convey.So(found, convey.ShouldBeTrue)
		})
	})
}

func TestWriteStringSubstitutes(t *testing.T) {
	buf := NewCellBuffer(10, 1)
	n := buf.WriteString(0, 0, "a—b\uFE0F", ColorWhite, ColorBlack)
	if n != 3 {
		t.Fatalf("wrote %d cells, want 3", n)
	}
	if got := rowText(buf, 0); got != "a-b" {
		t.Errorf("row = %q, want %q", got, "a-b")
	}
	if TextWidth("a—b\uFE0F") != 3 {
		t.Errorf("TextWidth disagrees with WriteString")
	}
}

func TestBoxCorners(t *testing.T) {
	buf := NewCellBuffer(6, 4)
	buf.Box(0, 0, 6, 4, ColorWhite, ColorBlue)
	want := map[[2]int]rune{
		{0, 0}: BoxTL, {5, 0}: BoxTR, {0, 3}: BoxBL, {5, 3}: BoxBR,
		{2, 0}: BoxH, {0, 1}: BoxV, {2, 2}: ' ',
	}
	for pos, r := range want {
		if got := buf.Get(pos[0], pos[1]).Glyph; got != r {
			t.Errorf("cell %v = %q, want %q", pos, got, r)
		}
	}
	if buf.Get(2, 2).BG != ColorBlue {
		t.Errorf("interior background not filled")
	}
}

func TestIconRune(t *testing.T) {
	cases := []struct {
		emoji, label string
		want         rune
	}{
		{"🔧", "Chave", PicWrench},
		{"🧴", "Garrafa", PicBottle},
		{"🦖", "dino", 'D'},
		{"", "ímã", 'Í'},
		{"", "", FallbackGlyph},
	}
	for _, c := range cases {
		if got := IconRune(c.emoji, c.label); got != c.want {
			t.Errorf("IconRune(%q, %q) = %q, want %q", c.emoji, c.label, got, c.want)
		}
	}
}

func TestAtlasCoversCatalog(t *testing.T) {
	img, runes := rasterizeAtlas()
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			t.Fatalf("rune %q placed twice", r)
		}
		index[r] = i
	}

	lit := func(r rune) int {
		i, ok := index[r]
		if !ok {
			t.Fatalf("rune %q missing from atlas", r)
		}
		cx, cy := cellOrigin(i)
		n := 0
		for y := cy; y < cy+GlyphHeight; y++ {
			for x := cx; x < cx+GlyphWidth; x++ {
				if img.NRGBAAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}

	for _, it := range world.DefaultItems() {
		r := IconRune(it.Emoji, it.Label)
		if lit(r) < 20 {
			t.Errorf("pictogram for %s is nearly empty", it.ID)
		}
	}
	for _, r := range "Aã?" + string([]rune{BoxTL, BlockFull, PicParty, PicHourglass}) {
		if lit(r) == 0 {
			t.Errorf("glyph %q is blank", r)
		}
	}
	if lit(' ') != 0 {
		t.Errorf("space should be blank")
	}
}

func TestPictogramsAreSquare(t *testing.T) {
	for r, rows := range pictograms {
		if len(rows) != GlyphHeight {
			t.Errorf("%q has %d rows", r, len(rows))
		}
		for i, row := range rows {
			if len(row) != GlyphWidth {
				t.Errorf("%q row %d is %d wide", r, i, len(row))
			}
		}
	}
}
