package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Stack
	DefaultRingCount = 8
	RingSpacing      = 30.0

	// Ring spawn radii
	CenterRadius = 20.0
	EdgeRadius   = 400.0

	// Recycling thresholds
	MinRadius = 10.0
	MaxRadius = 500.0

	// Images per ring: MinImages + [0, ImageVariety)
	MinImages    = 5
	ImageVariety = 5

	// Image size per axis: MinImageSize + [0, ImageSizeVariety)
	MinImageSize     = 20
	ImageSizeVariety = 55

	// Expand rate multiplier bounds, drawn in hundredths
	MinExpandRate = 1.0
	MaxExpandRate = 2.0

	// Motion response
	PitchRadiusGain = 10.0
	RotationSpeed   = 12.0
	SpinGain        = 3.0
	SpinFloor       = 0.005

	// Keyboard tilt
	KeyTiltStep  = 0.04
	KeyTiltDecay = 0.92

	// Audio tilt
	LevelGain     = 4.0
	LevelBaseline = 0.98
)

// SpinRates is the fixed set a new ring's spin rate is drawn from.
var SpinRates = []float64{0.06, 0.08, 0.11, 0.14, 0.17}
