// Package detector serves language predictions from trained model artifacts.
package detector

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/service"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/langid"
)

// Detector implements service.Detector over model artifacts loaded into
// memory. The active model sits behind an atomic pointer: requests read it
// without locking, reloads swap it wholesale. A Detector with no loaded
// model answers every Detect with service.ErrModelNotReady.
type Detector struct {
	dir           string
	lowConfidence float64
	log           *zap.Logger

	model atomic.Pointer[langid.Model]
}

// New creates a detector for the given model directory. No artifacts are
// read until Load is called. lowConfidence <= 0 keeps the model default.
func New(dir string, lowConfidence float64, log *zap.Logger) *Detector {
	return &Detector{
		dir:           dir,
		lowConfidence: lowConfidence,
		log:           log,
	}
}

// Load reads the artifacts from the model directory and makes them the
// active model. On failure the previously active model, if any, keeps
// serving.
func (d *Detector) Load() error {
	model, err := langid.Load(d.dir)
	if err != nil {
		return fmt.Errorf("load model from %s: %w", d.dir, err)
	}
	if d.lowConfidence > 0 {
		model.LowConfidence = d.lowConfidence
	}

	d.model.Store(model)
	d.log.Info("Model artifacts loaded",
		zap.String("dir", d.dir),
		zap.Strings("languages", model.Languages()),
		zap.Int("features", model.Vectorizer.NumFeatures()),
	)
	return nil
}

// Ready reports whether a model is loaded
func (d *Detector) Ready() bool {
	return d.model.Load() != nil
}

// Languages returns the labels the active model can detect
func (d *Detector) Languages() []string {
	model := d.model.Load()
	if model == nil {
		return nil
	}
	return model.Languages()
}

// Detect identifies the language of a single text
func (d *Detector) Detect(ctx context.Context, text string) (*service.Detection, error) {
	model := d.model.Load()
	if model == nil {
		return nil, service.ErrModelNotReady
	}

	pred, err := model.Predict(text)
	if err != nil {
		return nil, err
	}

	return &service.Detection{
		Language:      pred.Language,
		Confidence:    pred.Confidence,
		Probabilities: pred.Probabilities,
		Warning:       pred.Warning,
	}, nil
}
