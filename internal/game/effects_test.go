package game

import (
	"math"
	"testing"
)

func TestSparkFadesAndGrows(t *testing.T) {
	sp := Spark{}
	if sp.Alpha() != 1 || math.Abs(sp.Scale()-0.6) > 1e-9 {
		t.Errorf("fresh spark alpha=%v scale=%v", sp.Alpha(), sp.Scale())
	}
	sp.age = sparkTicks
	if sp.Alpha() != 0 || math.Abs(sp.Scale()-3) > 1e-9 {
		t.Errorf("spent spark alpha=%v scale=%v", sp.Alpha(), sp.Scale())
	}
}

func TestSparksExpire(t *testing.T) {
	s := newTestSession(45, nil, nil)
	s.Start()
	s.spawnSpark()
	b := s.Stage().Bounds
	sp := s.Sparks()[0]
	if sp.X < b.X+0.2*b.W || sp.X > b.X+0.8*b.W || sp.Y < b.Y+0.3*b.H || sp.Y > b.Y+0.6*b.H {
		t.Errorf("spark at (%v,%v) outside spawn window", sp.X, sp.Y)
	}
	for range sparkTicks {
		s.Update()
	}
	if n := len(s.Sparks()); n != 0 {
		t.Errorf("%d sparks still alive", n)
	}
}

func TestRocketAscent(t *testing.T) {
	r := &Rocket{}
	if r.Lift() != 0 {
		t.Errorf("lift at launch = %v", r.Lift())
	}
	prev := 0.0
	for range rocketTicks {
		r.age++
		if l := r.Lift(); l < prev {
			t.Fatalf("lift went down at age %d: %v < %v", r.age, l, prev)
		} else {
			prev = l
		}
	}
	if !r.Done() || math.Abs(prev-1.2) > 1e-6 {
		t.Errorf("done=%v final lift=%v", r.Done(), prev)
	}
}

func TestLaunchCurveEndsExact(t *testing.T) {
	for _, c := range []struct{ t, want float64 }{{-1, 0}, {0, 0}, {1, 1}, {2, 1}} {
		if got := launchCurve(c.t); got != c.want {
			t.Errorf("launchCurve(%v) = %v, want exactly %v", c.t, got, c.want)
		}
	}
}

func TestLaunchCurveEasesOut(t *testing.T) {
	if v := launchCurve(0.25); v < 0.5 {
		t.Errorf("curve(0.25) = %v, expected a fast start", v)
	}
}
