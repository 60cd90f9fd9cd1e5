package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) ListCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error) {
	cur, err := s.db.Collection(collCampaigns).Find(ctx, bson.M{"userId": userID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	out := make([]domain.Campaign, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return out, nil
}

func (s *Store) GetCampaign(ctx context.Context, id, userID string) (*domain.Campaign, error) {
	var c domain.Campaign
	found, err := s.findOne(ctx, collCampaigns, byOwner(id, userID), &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateCampaign(ctx context.Context, in domain.InsertCampaign) (*domain.Campaign, error) {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = "draft"
	}
	metrics := domain.CampaignMetrics{}
	if in.Metrics != nil {
		metrics = *in.Metrics
	}

	c := domain.Campaign{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Type:           in.Type,
		Status:         status,
		Description:    in.Description,
		TargetAudience: in.TargetAudience,
		Budget:         in.Budget,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Metrics:        metrics,
		CreatedAt:      now,
		UpdatedAt:      now,
		UserID:         in.UserID,
	}
	if _, err := s.db.Collection(collCampaigns).InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate, userID string) (*domain.Campaign, error) {
	sets := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		sets["name"] = *upd.Name
	}
	if upd.Type != nil {
		sets["type"] = *upd.Type
	}
	if upd.Status != nil {
		sets["status"] = *upd.Status
	}
	if upd.Description != nil {
		sets["description"] = *upd.Description
	}
	if upd.TargetAudience != nil {
		sets["targetAudience"] = *upd.TargetAudience
	}
	if upd.Budget != nil {
		sets["budget"] = *upd.Budget
	}
	if upd.StartDate != nil {
		sets["startDate"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		sets["endDate"] = *upd.EndDate
	}
	if upd.Metrics != nil {
		sets["metrics"] = *upd.Metrics
	}

	var c domain.Campaign
	found, err := s.updateOne(ctx, collCampaigns, byOwner(id, userID), sets, &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) DeleteCampaign(ctx context.Context, id, userID string) (bool, error) {
	return s.deleteOne(ctx, collCampaigns, byOwner(id, userID))
}
