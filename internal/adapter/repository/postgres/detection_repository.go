package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/entity"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/repository"
)

type detectionRepository struct {
	db *gorm.DB
}

// NewDetectionRepository creates a new detection history repository
func NewDetectionRepository(db *gorm.DB) repository.DetectionRepository {
	return &detectionRepository{db: db}
}

func (r *detectionRepository) Create(ctx context.Context, detection *entity.Detection) error {
	return r.db.WithContext(ctx).Create(detection).Error
}

func (r *detectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Detection, error) {
	var detection entity.Detection
	err := r.db.WithContext(ctx).First(&detection, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detection, nil
}

func (r *detectionRepository) List(ctx context.Context, limit, offset int) ([]*entity.Detection, int64, error) {
	var detections []*entity.Detection
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Detection{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&detections).Error
	if err != nil {
		return nil, 0, err
	}

	return detections, total, nil
}

func (r *detectionRepository) CountByLanguage(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Language string
		Count    int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.Detection{}).
		Select("language, count(*) as count").
		Group("language").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Language] = r.Count
	}
	return counts, nil
}
