package common

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color returns the effect's HSV parameters as a colorful.Color
func (e Effect) Color() colorful.Color {
	return colorful.Hsv(e.Hue, e.Saturation, e.Value)
}

// WithColor returns a copy of the effect with its hue, saturation and value
// taken from c.
func (e Effect) WithColor(c colorful.Color) Effect {
	e.Hue, e.Saturation, e.Value = c.Clamped().Hsv()
	return e
}
