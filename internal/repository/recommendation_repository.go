package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"prep-dashboard/internal/model"
)

// RecommendationRepository manages the append-only AI recommendation log.
type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *model.AIRecommendation) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create recommendation: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *RecommendationRepository) ListRecent(ctx context.Context, limit int) ([]model.AIRecommendation, error) {
	if limit <= 0 || limit > aggregateQueryLimit {
		limit = aggregateQueryLimit
	}
	var recs []model.AIRecommendation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, nil
}
