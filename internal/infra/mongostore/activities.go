package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) ListActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	opts := newestFirst()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.db.Collection(collActivities).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]domain.Activity, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return out, nil
}

func (s *Store) CreateActivity(ctx context.Context, in domain.InsertActivity) (*domain.Activity, error) {
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	a := domain.Activity{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
		UserID:      in.UserID,
	}
	if _, err := s.db.Collection(collActivities).InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return &a, nil
}
