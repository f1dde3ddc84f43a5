package motion

import (
	"math"
	"testing"
)

func TestCursorPitch(t *testing.T) {
	tests := []struct {
		y    int
		want float64
	}{
		{0, -MaxPitch},
		{50, 0},
		{100, MaxPitch},
		{75, MaxPitch / 2},
		{-40, -MaxPitch},
		{500, MaxPitch},
	}
	for _, tt := range tests {
		y := tt.y
		c := &Cursor{Position: func() (int, int) { return 10, y }, Height: 100}
		if got := c.Pitch(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("y=%d: pitch %f, want %f", tt.y, got, tt.want)
		}
	}
}

func TestCursorWithoutWindow(t *testing.T) {
	if got := (&Cursor{}).Pitch(); got != 0 {
		t.Errorf("Expected level pitch, got %f", got)
	}
}

func TestKeysTiltAndSettle(t *testing.T) {
	up := false
	k := &Keys{Up: func() bool { return up }, Down: func() bool { return false }}

	up = true
	for i := 0; i < 10; i++ {
		k.Tick()
	}
	if k.Pitch() >= 0 {
		t.Fatalf("Expected negative tilt, got %f", k.Pitch())
	}
	for i := 0; i < 1000; i++ {
		k.Tick()
	}
	if k.Pitch() != -MaxPitch {
		t.Errorf("Expected clamped tilt, got %f", k.Pitch())
	}

	up = false
	for i := 0; i < 500; i++ {
		k.Tick()
	}
	if math.Abs(k.Pitch()) > 1e-6 {
		t.Errorf("Expected tilt to settle, got %f", k.Pitch())
	}
}

type stubLevel float64

func (s *stubLevel) Level() float64 { return float64(*s) }

func TestLevelFollowsDeviation(t *testing.T) {
	v := stubLevel(0.2)
	l := &Level{Source: &v}

	if got := l.Pitch(); got != 0 {
		t.Errorf("First sample should be level, got %f", got)
	}

	v = 0.6
	if got := l.Pitch(); got <= 0 {
		t.Errorf("Louder than baseline should tilt positive, got %f", got)
	}

	v = 0
	if got := l.Pitch(); got >= 0 {
		t.Errorf("Quieter than baseline should tilt negative, got %f", got)
	}
}

func TestSmoother(t *testing.T) {
	s := &Smoother{Source: Fixed(1), Factor: 0.5}
	want := []float64{0.5, 0.75, 0.875}
	for i, w := range want {
		if got := s.Pitch(); math.Abs(got-w) > 1e-12 {
			t.Errorf("step %d: %f, want %f", i, got, w)
		}
	}
	s.Reset()
	if got := s.Pitch(); got != 0.5 {
		t.Errorf("after reset: %f, want 0.5", got)
	}
}

func TestNewSmootherConverges(t *testing.T) {
	s := NewSmoother(Fixed(0.3))
	var got float64
	for i := 0; i < 200; i++ {
		got = s.Pitch()
	}
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Expected convergence to 0.3, got %f", got)
	}
}
