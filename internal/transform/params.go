// Package transform holds the slider-driven transform parameters and the pure
// mapping from those parameters to renderer-space attributes.
package transform

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned for any lookup or write against a name
// outside the fixed parameter set.
var ErrInvalidParameter = errors.New("invalid transform parameter")

type Param int

const (
	ParamX Param = iota
	ParamY
	ParamSkewX
	ParamSkewY
	ParamScaleX
	ParamScaleY
	ParamAngle

	paramCount
)

// Neutral is the value every parameter starts at. It maps to no offset, no
// rotation, no skew and the stage's natural size.
const Neutral = 50.0

var paramNames = [paramCount]string{
	ParamX:      "x",
	ParamY:      "y",
	ParamSkewX:  "skewX",
	ParamSkewY:  "skewY",
	ParamScaleX: "scaleX",
	ParamScaleY: "scaleY",
	ParamAngle:  "angle",
}

func (p Param) String() string {
	if p < 0 || p >= paramCount {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

func (p Param) valid() bool {
	return p >= 0 && p < paramCount
}

// Params lists every parameter in display order.
func Params() []Param {
	params := make([]Param, paramCount)
	for i := range params {
		params[i] = Param(i)
	}
	return params
}

// ParseParam resolves a parameter name. Names are case sensitive.
func ParseParam(name string) (Param, error) {
	for i, n := range paramNames {
		if n == name {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidParameter, name)
}

// Values is a complete TransformSet. Being a fixed-size array, it can never
// be partially populated.
type Values [paramCount]float64

func DefaultValues() Values {
	var v Values
	for i := range v {
		v[i] = Neutral
	}
	return v
}

// FromMap builds a Values from named entries on top of DefaultValues.
// Unknown names are rejected rather than ignored.
func FromMap(m map[string]float64) (Values, error) {
	values := DefaultValues()
	for name, value := range m {
		p, err := ParseParam(name)
		if err != nil {
			return values, err
		}
		values[p] = value
	}
	return values, nil
}
