package game

import (
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

type recordingSound struct{ played []Tone }

func (r *recordingSound) Play(t Tone) { r.played = append(r.played, t) }

type recordingHaptics struct{ pulses []time.Duration }

func (r *recordingHaptics) Vibrate(d time.Duration) { r.pulses = append(r.pulses, d) }

func newTestSession(duration int, snd Sound, hap Haptics) *Session {
	return NewSession(Settings{
		Duration: duration,
		Items:    world.DefaultItems(),
		Stage:    world.DefaultStage(1280, 720),
	}, WithSound(snd), WithHaptics(hap), WithSeed(7))
}

// centerOf returns the middle of the target accepting itemID.
func centerOf(s *Session, itemID string) (float64, float64) {
	for _, t := range s.Targets() {
		if t.Accept == itemID {
			return t.Rect.Center()
		}
	}
	panic("no target for " + itemID)
}

func TestSessionLifecycle(t *testing.T) {
	convey.Convey("Given a new session", t, func() {
		snd := &recordingSound{}
		hap := &recordingHaptics{}
		s := newTestSession(45, snd, hap)

		convey.So(s.Phase(), convey.ShouldEqual, PhaseIdle)

		convey.Convey("Ticks before Start do nothing", func() {
			s.Tick()
			convey.So(s.TimeRemaining(), convey.ShouldEqual, 0)
			convey.So(s.Phase(), convey.ShouldEqual, PhaseIdle)
		})

		convey.Convey("When the round starts", func() {
			s.Start()

			convey.Convey("Then counters and layout are fresh", func() {
				convey.So(s.Phase(), convey.ShouldEqual, PhasePlaying)
				convey.So(s.Score(), convey.ShouldEqual, 0)
				convey.So(s.Energy(), convey.ShouldEqual, 0)
				convey.So(s.TimeRemaining(), convey.ShouldEqual, 45)
				convey.So(len(s.Targets()), convey.ShouldEqual, 4)
				convey.So(len(s.Items()), convey.ShouldEqual, 4)
				convey.So(s.Targets()[2].ID, convey.ShouldEqual, "t2")
				convey.So(s.Targets()[2].Accept, convey.ShouldEqual, "itm-2")
				convey.So(s.RoundID(), convey.ShouldNotBeEmpty)
				convey.So(s.Popup(), convey.ShouldBeNil)
			})

			convey.Convey("And all four items are placed in any order", func() {
				scores := []int{}
				for _, id := range []string{"itm-2", "itm-0", "itm-3", "itm-1"} {
					x, y := centerOf(s, id)
					out := s.ResolveDrop(DropAttempt{ItemID: id, X: x, Y: y})
					convey.So(out.Kind, convey.ShouldEqual, Match)
					scores = append(scores, s.Score())
				}

				convey.Convey("Then the round is won on the last match", func() {
					convey.So(scores, convey.ShouldResemble, []int{1, 2, 3, 4})
					convey.So(s.Phase(), convey.ShouldEqual, PhaseWon)
					convey.So(s.Energy(), convey.ShouldEqual, 100)
					convey.So(s.TimeRemaining(), convey.ShouldEqual, 45)
					convey.So(s.Popup(), convey.ShouldNotBeNil)
					convey.So(s.Popup().Title, convey.ShouldContainSubstring, "Missão cumprida")
					convey.So(s.Rocket(), convey.ShouldNotBeNil)
					convey.So(snd.played[len(snd.played)-1], convey.ShouldResemble, ToneWin)
				})

				convey.Convey("Then later ticks do not touch the state", func() {
					for range 100 {
						s.Tick()
					}
					for range 5 * TicksPerSecond {
						s.Update()
					}
					convey.So(s.Phase(), convey.ShouldEqual, PhaseWon)
					convey.So(s.TimeRemaining(), convey.ShouldEqual, 45)
					convey.So(s.Score(), convey.ShouldEqual, 4)
				})

				convey.Convey("Then restart resets everything", func() {
					s.Restart()
					convey.So(s.Phase(), convey.ShouldEqual, PhasePlaying)
					convey.So(s.Score(), convey.ShouldEqual, 0)
					convey.So(s.Energy(), convey.ShouldEqual, 0)
					convey.So(s.TimeRemaining(), convey.ShouldEqual, 45)
					convey.So(s.Popup(), convey.ShouldBeNil)
					for _, tg := range s.Targets() {
						convey.So(tg.Filled, convey.ShouldBeFalse)
					}
					for _, it := range s.Items() {
						convey.So(it.Draggable(), convey.ShouldBeTrue)
						convey.So(it.Rect, convey.ShouldResemble, it.Home)
					}
				})
			})
		})
	})
}

func TestCountdown(t *testing.T) {
	convey.Convey("Given a three second round with no matches", t, func() {
		snd := &recordingSound{}
		s := newTestSession(3, snd, nil)
		s.Start()

		convey.Convey("When three ticks fire", func() {
			s.Tick()
			s.Tick()
			convey.So(s.Phase(), convey.ShouldEqual, PhasePlaying)
			convey.So(s.TimeRemaining(), convey.ShouldEqual, 1)
			s.Tick()

			convey.Convey("Then the round is lost", func() {
				convey.So(s.Phase(), convey.ShouldEqual, PhaseLost)
				convey.So(s.TimeRemaining(), convey.ShouldEqual, 0)
				convey.So(s.Popup().Title, convey.ShouldContainSubstring, "Tempo esgotado")
				convey.So(snd.played, convey.ShouldResemble, []Tone{ToneLose})
			})

			convey.Convey("Then a fourth tick is a no-op", func() {
				s.Tick()
				convey.So(s.TimeRemaining(), convey.ShouldEqual, 0)
				convey.So(s.Phase(), convey.ShouldEqual, PhaseLost)
				convey.So(len(snd.played), convey.ShouldEqual, 1)
			})

			convey.Convey("Then restart brings back the full duration", func() {
				s.Restart()
				convey.So(s.Phase(), convey.ShouldEqual, PhasePlaying)
				convey.So(s.TimeRemaining(), convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the game loop runs one second of frames", func() {
			for range TicksPerSecond - 1 {
				s.Update()
			}
			convey.So(s.TimeRemaining(), convey.ShouldEqual, 3)
			s.Update()

			convey.Convey("Then exactly one tick fired", func() {
				convey.So(s.TimeRemaining(), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the round is restarted mid-second", func() {
			for range TicksPerSecond / 2 {
				s.Update()
			}
			s.Restart()
			for range TicksPerSecond / 2 {
				s.Update()
			}

			convey.Convey("Then the previous round's partial second is discarded", func() {
				convey.So(s.TimeRemaining(), convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the last item lands with one second left", func() {
			s.Tick()
			s.Tick()
			for _, it := range s.Items() {
				x, y := centerOf(s, it.ID)
				s.ResolveDrop(DropAttempt{ItemID: it.ID, X: x, Y: y})
			}
			s.Tick()

			convey.Convey("Then the win stands and the tick is ignored", func() {
				convey.So(s.Phase(), convey.ShouldEqual, PhaseWon)
				convey.So(s.TimeRemaining(), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When one item short at expiry", func() {
			for _, it := range s.Items()[:3] {
				x, y := centerOf(s, it.ID)
				s.ResolveDrop(DropAttempt{ItemID: it.ID, X: x, Y: y})
			}
			s.Tick()
			s.Tick()
			s.Tick()

			convey.Convey("Then the round is still lost", func() {
				convey.So(s.Score(), convey.ShouldEqual, 3)
				convey.So(s.Phase(), convey.ShouldEqual, PhaseLost)
			})
		})
	})
}

func TestEnergyAfterMatches(t *testing.T) {
	cases := []struct {
		items int
		step  int
	}{
		{1, 100},
		{3, 33},
		{4, 25},
		{6, 17},
		{7, 14},
	}
	for _, c := range cases {
		items := make([]world.Item, c.items)
		for i := range items {
			items[i] = world.Item{ID: string(rune('a' + i)), Label: "x"}
		}
		s := NewSession(Settings{Duration: 10, Items: items, Stage: world.DefaultStage(1280, 720)}, WithSeed(1))
		s.Start()
		for n, it := range s.Items() {
			x, y := centerOf(s, it.ID)
			s.ResolveDrop(DropAttempt{ItemID: it.ID, X: x, Y: y})
			want := min(100, (n+1)*c.step)
			if s.Energy() != want {
				t.Errorf("%d items, after %d matches: energy %d, want %d", c.items, n+1, s.Energy(), want)
			}
		}
		if s.Phase() != PhaseWon {
			t.Errorf("%d items: phase %v, want won", c.items, s.Phase())
		}
	}
}

func TestSentinelErrors(t *testing.T) {
	s := newTestSession(45, nil, nil)
	if err := s.BeginDrag("itm-0", SourceMouse, 0, 0); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("BeginDrag before start: %v", err)
	}
}
