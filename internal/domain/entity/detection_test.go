package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDetection(t *testing.T) {
	detection := NewDetection("hello world", "English", 0.97, "")

	assert.NotEmpty(t, detection.ID)
	assert.Equal(t, "hello world", detection.Text)
	assert.Equal(t, "English", detection.Language)
	assert.Equal(t, 0.97, detection.Confidence)
	assert.Empty(t, detection.Warning)
}

func TestNewDetection_KeepsWarning(t *testing.T) {
	detection := NewDetection("hi", "English", 0.61, "Text is very short (2 characters). Results may be less accurate.")

	assert.Contains(t, detection.Warning, "very short")
}

func TestDetection_TableName(t *testing.T) {
	detection := Detection{}
	assert.Equal(t, "detections", detection.TableName())
}
