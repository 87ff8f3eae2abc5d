package entity

import (
	"time"

	"github.com/google/uuid"
)

// Detection represents one recorded language detection
type Detection struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	Language   string    `json:"language" gorm:"type:varchar(50);not null"`
	Confidence float64   `json:"confidence" gorm:"not null"`
	Warning    string    `json:"warning,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (Detection) TableName() string {
	return "detections"
}

// NewDetection creates a new Detection record
func NewDetection(text, language string, confidence float64, warning string) *Detection {
	return &Detection{
		ID:         uuid.New(),
		Text:       text,
		Language:   language,
		Confidence: confidence,
		Warning:    warning,
	}
}
