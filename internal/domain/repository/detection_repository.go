package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/entity"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/service"
)

// DetectionRepository defines the interface for detection history operations
type DetectionRepository interface {
	// Create stores a detection record
	Create(ctx context.Context, detection *entity.Detection) error

	// GetByID retrieves a detection record by its ID, or nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Detection, error)

	// List retrieves detection records with pagination, newest first
	List(ctx context.Context, limit, offset int) ([]*entity.Detection, int64, error)

	// CountByLanguage counts stored detections per language
	CountByLanguage(ctx context.Context) (map[string]int64, error)
}

// DetectionCache defines the interface for caching detection results
type DetectionCache interface {
	// Get returns the cached detection for a text, or nil on a miss
	Get(ctx context.Context, text string) (*service.Detection, error)

	// Set caches the detection for a text
	Set(ctx context.Context, text string, detection *service.Detection) error
}
