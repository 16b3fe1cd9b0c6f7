package presenter

import "math"

// MinScale keeps the canvas renderable when the viewport is smaller than
// its margins
const MinScale = 0.01

// ComputeScale fits a canvas inside a viewport, margin on every side
func ComputeScale(viewportW, viewportH, canvasW, canvasH, margin float64) float64 {
	if canvasW <= 0 || canvasH <= 0 {
		return MinScale
	}
	s := math.Min((viewportW-2*margin)/canvasW, (viewportH-2*margin)/canvasH)
	if math.IsNaN(s) || s < MinScale {
		return MinScale
	}
	return s
}

// Scaler keeps the last computed scale for a fixed canvas
type Scaler struct {
	canvasW, canvasH, margin float64
	scale                    float64
}

// NewScaler computes the initial scale for the given viewport
func NewScaler(canvasW, canvasH, margin, viewportW, viewportH float64) *Scaler {
	s := &Scaler{canvasW: canvasW, canvasH: canvasH, margin: margin}
	s.Resize(viewportW, viewportH)
	return s
}

// Resize recomputes the scale for a new viewport
func (s *Scaler) Resize(viewportW, viewportH float64) float64 {
	s.scale = ComputeScale(viewportW, viewportH, s.canvasW, s.canvasH, s.margin)
	return s.scale
}

func (s *Scaler) Scale() float64 {
	return s.scale
}
