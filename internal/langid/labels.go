package langid

import (
	"errors"
	"fmt"
	"sort"
)

// Error definitions for the label encoder
var (
	ErrNoLabels     = errors.New("cannot fit label encoder on empty label set")
	ErrUnknownLabel = errors.New("unknown label")
)

// LabelEncoder maps language names to contiguous class indices and back.
// Classes are the sorted distinct labels seen at fit time; the ordering is
// part of the persisted model, so it must never change for a fitted encoder.
type LabelEncoder struct {
	Classes []string

	index map[string]int
}

// NewLabelEncoder creates an unfitted encoder.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// NewLabelEncoderFromClasses restores an encoder from a persisted class
// list. The list must already be in fit order.
func NewLabelEncoderFromClasses(classes []string) *LabelEncoder {
	e := &LabelEncoder{Classes: classes}
	e.buildIndex()
	return e
}

func (e *LabelEncoder) buildIndex() {
	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
}

// Fit learns the class set from labels. Distinct labels are sorted
// alphabetically and assigned indices 0..n-1.
func (e *LabelEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return ErrNoLabels
	}

	seen := make(map[string]struct{}, len(labels))
	classes := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	e.Classes = classes
	e.buildIndex()
	return nil
}

// Encode returns the class index for a fitted label.
func (e *LabelEncoder) Encode(label string) (int, error) {
	idx, ok := e.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return idx, nil
}

// EncodeAll encodes every label in order.
func (e *LabelEncoder) EncodeAll(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		idx, err := e.Encode(l)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// Decode returns the label for a class index produced by Encode.
func (e *LabelEncoder) Decode(index int) (string, error) {
	if index < 0 || index >= len(e.Classes) {
		return "", fmt.Errorf("class index %d out of range [0, %d)", index, len(e.Classes))
	}
	return e.Classes[index], nil
}

// NumClasses returns the number of fitted classes.
func (e *LabelEncoder) NumClasses() int {
	return len(e.Classes)
}
