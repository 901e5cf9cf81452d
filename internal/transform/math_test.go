package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testStage = NewStage(1200, 850, DefaultStageScalar)

func TestNewStage_CentersSixteenByNine(t *testing.T) {
	assert.Equal(t, Stage{X: 200, Y: 200, Width: 800, Height: 450}, testStage)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, -1.0, Normalize(0))
	assert.Equal(t, 0.0, Normalize(50))
	assert.Equal(t, 1.0, Normalize(100))
}

func TestCompute_IsPure(t *testing.T) {
	values := Values{12.5, 87.25, 33, 66.6, 10, 140, 99.9}

	first := Compute(values, testStage, DefaultPositionMultiplier)
	second := Compute(values, testStage, DefaultPositionMultiplier)

	assert.Equal(t, first, second)
	assert.Equal(t, Values{12.5, 87.25, 33, 66.6, 10, 140, 99.9}, values)
}

func TestCompute_NeutralValues(t *testing.T) {
	r := Compute(DefaultValues(), testStage, DefaultPositionMultiplier)

	assert.Equal(t, testStage.Origin(), r.Position)
	assert.Equal(t, 0.0, r.Rotation)
	assert.Equal(t, Vec2{}, r.Skew)
	assert.Equal(t, testStage.Width, r.Width)
	assert.Equal(t, testStage.Height, r.Height)
}

func TestCompute_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		value float64
		check func(t *testing.T, r Rendered)
	}{
		{"x at 0", ParamX, 0, func(t *testing.T, r Rendered) {
			assert.Equal(t, testStage.X-DefaultPositionMultiplier, r.Position.X)
		}},
		{"x at 100", ParamX, 100, func(t *testing.T, r Rendered) {
			assert.Equal(t, testStage.X+DefaultPositionMultiplier, r.Position.X)
		}},
		{"y at 0", ParamY, 0, func(t *testing.T, r Rendered) {
			assert.Equal(t, testStage.Y-DefaultPositionMultiplier, r.Position.Y)
		}},
		{"angle at 0", ParamAngle, 0, func(t *testing.T, r Rendered) {
			assert.Equal(t, -90.0, r.Rotation)
		}},
		{"angle at 100", ParamAngle, 100, func(t *testing.T, r Rendered) {
			assert.Equal(t, 90.0, r.Rotation)
		}},
		{"skewX at 100", ParamSkewX, 100, func(t *testing.T, r Rendered) {
			assert.Equal(t, 0.5, r.Skew.X)
		}},
		{"skewY at 0", ParamSkewY, 0, func(t *testing.T, r Rendered) {
			assert.Equal(t, -0.5, r.Skew.Y)
		}},
		{"scaleX at 100 doubles", ParamScaleX, 100, func(t *testing.T, r Rendered) {
			assert.Equal(t, testStage.Width*2, r.Width)
		}},
		{"scaleY at 0 collapses", ParamScaleY, 0, func(t *testing.T, r Rendered) {
			assert.Equal(t, 0.0, r.Height)
		}},
		{"scaleX at 25 halves", ParamScaleX, 25, func(t *testing.T, r Rendered) {
			assert.Equal(t, testStage.Width/2, r.Width)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := DefaultValues()
			values[tt.param] = tt.value
			tt.check(t, Compute(values, testStage, DefaultPositionMultiplier))
		})
	}
}

func TestCompute_AngleSliderOnlyChangesRotation(t *testing.T) {
	s := NewStore(DefaultValues())
	neutral := Compute(s.Snapshot(), testStage, DefaultPositionMultiplier)

	assert.NoError(t, s.Set("angle", 100))
	r := Compute(s.Snapshot(), testStage, DefaultPositionMultiplier)

	assert.Equal(t, 90.0, r.Rotation)
	r.Rotation = neutral.Rotation
	assert.Equal(t, neutral, r)
}
