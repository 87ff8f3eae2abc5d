package service

import (
	"context"
	"errors"
)

// ErrModelNotReady is returned when detection is requested before model
// artifacts have been loaded.
var ErrModelNotReady = errors.New("detection model is not loaded")

// UnknownLanguage is the label used when no prediction could be made.
const UnknownLanguage = "Unknown"

// Detection represents the result of language detection
type Detection struct {
	Language      string             `json:"language"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	Warning       string             `json:"warning,omitempty"`
}

// Detector defines the interface for language detection
type Detector interface {
	// Detect identifies the language of a single text
	Detect(ctx context.Context, text string) (*Detection, error)

	// Languages returns the labels the loaded model can detect
	Languages() []string

	// Ready reports whether model artifacts are loaded
	Ready() bool
}
