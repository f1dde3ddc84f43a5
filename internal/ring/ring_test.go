package ring

import (
	"image"
	"image/color"
	"math"
	"testing"
)

const eps = 1e-9

type fakeElement struct {
	base     Image
	origin   Point
	size     Size
	rotation float64
	tint     color.Color
	frames   int
	attached bool
}

func (e *fakeElement) SetFrame(origin Point, size Size) {
	e.origin = origin
	e.size = size
	e.frames++
}

func (e *fakeElement) SetRotation(radians float64) { e.rotation = radians }

type fakeContainer struct {
	center   Point
	attached map[*fakeElement]bool
	attaches int
	detaches int
	order    []*fakeElement
}

func newFakeContainer(center Point) *fakeContainer {
	return &fakeContainer{center: center, attached: map[*fakeElement]bool{}}
}

func (c *fakeContainer) Attach(base Image, origin Point, size Size, tint color.Color) Element {
	e := &fakeElement{base: base, origin: origin, size: size, tint: tint, attached: true}
	c.attached[e] = true
	c.attaches++
	c.order = append(c.order, e)
	return e
}

func (c *fakeContainer) Detach(el Element) {
	e := el.(*fakeElement)
	e.attached = false
	delete(c.attached, e)
	c.detaches++
}

func (c *fakeContainer) Center() Point { return c.center }

var testImage = image.NewRGBA(image.Rect(0, 0, 4, 4))

func newTestRing(c *fakeContainer, count int, radius float64) *ImageRing {
	return NewImageRing(testImage, count, radius, c.center, Size{W: 50, H: 50}, color.White, 1, 0.1, c)
}

func TestNewImageRingPlacesElementsOnCircle(t *testing.T) {
	center := Point{X: 100, Y: 200}
	for n := 1; n <= 9; n++ {
		c := newFakeContainer(center)
		r := newTestRing(c, n, 37.5)

		if r.Len() != n {
			t.Fatalf("Expected %d elements, got %d", n, r.Len())
		}
		if c.attaches != n {
			t.Errorf("Expected %d attaches, got %d", n, c.attaches)
		}
		for i := 0; i < n; i++ {
			e := r.Element(i).(*fakeElement)
			dist := math.Hypot(e.origin.X-center.X, e.origin.Y-center.Y)
			if math.Abs(dist-37.5) > eps {
				t.Errorf("n=%d i=%d: distance %f, want 37.5", n, i, dist)
			}
			angle := math.Atan2(e.origin.Y-center.Y, e.origin.X-center.X)
			want := 2 * math.Pi * float64(i) / float64(n)
			if d := math.Remainder(angle-want, 2*math.Pi); math.Abs(d) > 1e-9 {
				t.Errorf("n=%d i=%d: angle %f, want %f", n, i, angle, want)
			}
		}
	}
}

func TestNewImageRingNegativeCount(t *testing.T) {
	c := newFakeContainer(Point{})
	r := newTestRing(c, -3, 20)
	if r.Len() != 0 || c.attaches != 0 {
		t.Errorf("Expected empty ring, got %d elements, %d attaches", r.Len(), c.attaches)
	}
}

func TestNewImageRingTintsElements(t *testing.T) {
	c := newFakeContainer(Point{})
	red := color.RGBA{255, 0, 0, 255}
	r := NewImageRing(testImage, 5, 20, Point{}, Size{W: 30, H: 40}, red, 1, 0.1, c)
	for i := 0; i < r.Len(); i++ {
		e := r.Element(i).(*fakeElement)
		if e.tint != red {
			t.Errorf("element %d tint %v, want %v", i, e.tint, red)
		}
		if e.size != (Size{W: 30, H: 40}) {
			t.Errorf("element %d size %v", i, e.size)
		}
	}
}

func TestUpdateRadius(t *testing.T) {
	c := newFakeContainer(Point{X: 10, Y: 10})
	r := newTestRing(c, 6, 20)
	r.Spin()
	r.Spin()

	r.UpdateRadius(15)

	if r.Radius() != 35 {
		t.Fatalf("Expected radius 35, got %f", r.Radius())
	}
	for i := 0; i < r.Len(); i++ {
		e := r.Element(i).(*fakeElement)
		want := elementPosition(i, 6, 35, Point{X: 10, Y: 10}, 0.2)
		if math.Abs(e.origin.X-want.X) > eps || math.Abs(e.origin.Y-want.Y) > eps {
			t.Errorf("element %d at %v, want %v", i, e.origin, want)
		}
	}

	r.UpdateRadius(-40)
	if r.Radius() != -5 {
		t.Errorf("Expected radius -5, got %f", r.Radius())
	}
}

func TestSpinDoesNotMoveElements(t *testing.T) {
	c := newFakeContainer(Point{})
	r := newTestRing(c, 5, 50)
	before := make([]Point, r.Len())
	for i := range before {
		before[i] = r.Element(i).(*fakeElement).origin
	}

	r.Spin()

	if math.Abs(r.SpinOffset()-0.1) > eps {
		t.Errorf("Expected spin offset 0.1, got %f", r.SpinOffset())
	}
	for i := range before {
		e := r.Element(i).(*fakeElement)
		if e.origin != before[i] || e.frames != 0 {
			t.Errorf("element %d moved on spin", i)
		}
	}
}

func TestUpdateFromMotion(t *testing.T) {
	c := newFakeContainer(Point{})
	r := NewImageRing(testImage, 5, 100, Point{}, Size{W: 20, H: 20}, color.White, 1.5, 0.11, c)

	pitch := 0.3
	r.UpdateFromMotion(pitch)

	if want := 100 + pitch*10*1.5; math.Abs(r.Radius()-want) > eps {
		t.Errorf("radius %f, want %f", r.Radius(), want)
	}
	wantRot := (pitch + math.Pi) * 12
	for i := 0; i < r.Len(); i++ {
		if rot := r.Element(i).(*fakeElement).rotation; math.Abs(rot-wantRot) > eps {
			t.Errorf("element %d rotation %f, want %f", i, rot, wantRot)
		}
	}
	if want := 0.11*math.Sin(pitch)*3 + 0.005; math.Abs(r.SpinRate()-want) > eps {
		t.Errorf("spin rate %f, want %f", r.SpinRate(), want)
	}
}

func TestUpdateFromMotionZeroPitchResetsSpinRate(t *testing.T) {
	for _, prior := range []float64{0, 0.06, 0.17, 42} {
		c := newFakeContainer(Point{})
		r := NewImageRing(testImage, 5, 100, Point{}, Size{W: 20, H: 20}, color.White, 2, prior, c)
		r.UpdateFromMotion(0)
		if r.SpinRate() != 0.005 {
			t.Errorf("prior %f: spin rate %f, want 0.005", prior, r.SpinRate())
		}
		if r.Radius() != 100 {
			t.Errorf("prior %f: radius changed to %f", prior, r.Radius())
		}
	}
}

func TestSpinRateRecurrenceDiverges(t *testing.T) {
	c := newFakeContainer(Point{})
	r := NewImageRing(testImage, 5, 100, Point{}, Size{W: 20, H: 20}, color.White, 1, 0.1, c)
	for i := 0; i < 20; i++ {
		r.UpdateFromMotion(math.Pi / 2)
	}
	if r.SpinRate() < 1000 {
		t.Errorf("Expected runaway spin rate, got %f", r.SpinRate())
	}
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		radius     float64
		small, big bool
	}{
		{-1, true, false},
		{9.999, true, false},
		{10, false, false},
		{250, false, false},
		{500, false, false},
		{500.001, false, true},
	}
	for _, tt := range tests {
		r := newTestRing(newFakeContainer(Point{}), 5, tt.radius)
		if r.TooSmall() != tt.small {
			t.Errorf("radius %f: TooSmall = %v", tt.radius, r.TooSmall())
		}
		if r.TooBig() != tt.big {
			t.Errorf("radius %f: TooBig = %v", tt.radius, r.TooBig())
		}
		if r.TooSmall() && r.TooBig() {
			t.Errorf("radius %f: both thresholds hold", tt.radius)
		}
	}
}

func TestReleaseDetachesAll(t *testing.T) {
	c := newFakeContainer(Point{})
	r := newTestRing(c, 7, 30)

	r.Release()
	if len(c.attached) != 0 || c.detaches != 7 {
		t.Errorf("Expected all 7 detached, %d still attached, %d detaches", len(c.attached), c.detaches)
	}

	r.Release()
	if c.detaches != 7 {
		t.Errorf("Second release detached again: %d", c.detaches)
	}
}
