package common

import (
	"fmt"
	"strings"
)

// EffectMode selects the lighting behaviour applied to synchronized devices.
// Values start at one and are sent on the wire unchanged.
type EffectMode int

const (
	// EffectSingle shows a static colour
	EffectSingle EffectMode = iota + 1
	// EffectBreathing fades the colour in and out
	EffectBreathing
	// EffectColorCycle steps through colours
	EffectColorCycle
	// EffectRainbow runs a rainbow across the LEDs
	EffectRainbow
	// EffectCPU reacts to CPU load.  The service's handling of this mode is
	// not reliable.
	EffectCPU
	// EffectMusic reacts to audio output
	EffectMusic
	// EffectClose turns the lighting off
	EffectClose
)

var effectModeNames = map[EffectMode]string{
	EffectSingle:     `Single`,
	EffectBreathing:  `Breathing`,
	EffectColorCycle: `ColorCycle`,
	EffectRainbow:    `Rainbow`,
	EffectCPU:        `CPU`,
	EffectMusic:      `Music`,
	EffectClose:      `Close`,
}

func (m EffectMode) String() string {
	if name, ok := effectModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf(`EffectMode(%d)`, int(m))
}

// ParseEffectMode returns the EffectMode named s, ignoring case.
func ParseEffectMode(s string) (EffectMode, error) {
	for mode, name := range effectModeNames {
		if strings.EqualFold(name, s) {
			return mode, nil
		}
	}
	return 0, fmt.Errorf(`unknown effect mode %q`, s)
}

// Effect holds the parameters of a lighting effect.  No range checks are
// performed, the service decides what to do with out of range values.
type Effect struct {
	Speed     int        `json:"speed" yaml:"speed"`
	Mode      EffectMode `json:"mode" yaml:"mode"`
	CPULow    int        `json:"cpuLow" yaml:"cpuLow"`
	CPUHigh   int        `json:"cpuHigh" yaml:"cpuHigh"`
	MusicMode int        `json:"musicMode" yaml:"musicMode"`
	// Hue in degrees, 0 to 360
	Hue float64 `json:"hue" yaml:"hue"`
	// Saturation from 0 to 1
	Saturation float64 `json:"saturation" yaml:"saturation"`
	// Value (brightness) from 0 to 1
	Value float64 `json:"value" yaml:"value"`
}

// DefaultEffect returns the effect the vendor tool applies when no parameters
// are chosen: a static blue.
func DefaultEffect() Effect {
	return Effect{
		Speed:      1,
		Mode:       EffectSingle,
		CPULow:     30,
		CPUHigh:    70,
		Hue:        220,
		Saturation: 0.73,
		Value:      1,
	}
}

// SleepEffect returns the preset that switches all synchronized lighting off
func SleepEffect() Effect {
	return Effect{
		Speed:   0,
		Mode:    EffectSingle,
		CPULow:  30,
		CPUHigh: 70,
	}
}
