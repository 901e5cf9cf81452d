package transform

const (
	// ScaleUnit maps a raw parameter value onto a multiplier: v/ScaleUnit.
	ScaleUnit = 50.0

	// DefaultPositionMultiplier is the pixel offset produced by a position
	// parameter at either end of its range.
	DefaultPositionMultiplier = 300.0

	// MaxRotation is the rotation in degrees at either end of the angle range.
	MaxRotation = 90.0

	// StageAspectX and StageAspectY give the stage its 16:9 shape.
	StageAspectX = 16
	StageAspectY = 9

	DefaultStageScalar = 50.0
)

type Vec2 struct {
	X, Y float64
}

// Stage is the fixed-aspect rectangle the composition is framed in, in
// viewport pixels.
type Stage struct {
	X, Y          float64
	Width, Height float64
}

// NewStage centers a 16:9 stage of the given scalar in a viewport.
func NewStage(viewWidth, viewHeight, scalar float64) Stage {
	width := StageAspectX * scalar
	height := StageAspectY * scalar
	return Stage{
		X:      (viewWidth - width) / 2,
		Y:      (viewHeight - height) / 2,
		Width:  width,
		Height: height,
	}
}

func (s Stage) Origin() Vec2 {
	return Vec2{X: s.X, Y: s.Y}
}

// Rendered is the set of renderer-space attributes derived from a Values.
// It is recomputed every frame and never written back.
type Rendered struct {
	Position Vec2
	Rotation float64 // degrees
	Skew     Vec2    // radians
	Width    float64
	Height   float64
}

// Normalize maps [0,100] onto [-1,1] with Neutral at 0.
func Normalize(v float64) float64 {
	return v/ScaleUnit - 1
}

// Compute projects values onto the stage. Position, skew and rotation are
// zero-centered on Neutral; width and height are the raw value over
// ScaleUnit times the stage size, so they are not.
func Compute(values Values, stage Stage, positionMultiplier float64) Rendered {
	return Rendered{
		Position: Vec2{
			X: stage.X + Normalize(values[ParamX])*positionMultiplier,
			Y: stage.Y + Normalize(values[ParamY])*positionMultiplier,
		},
		Rotation: Normalize(values[ParamAngle]) * MaxRotation,
		Skew: Vec2{
			X: Normalize(values[ParamSkewX]) / 2,
			Y: Normalize(values[ParamSkewY]) / 2,
		},
		Width:  stage.Width * (values[ParamScaleX] / ScaleUnit),
		Height: stage.Height * (values[ParamScaleY] / ScaleUnit),
	}
}
