package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	cur, err := s.db.Collection(collTasks).Find(ctx, bson.M{"userId": userID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]domain.Task, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return out, nil
}

func (s *Store) GetTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	var t domain.Task
	found, err := s.findOne(ctx, collTasks, byOwner(id, userID), &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, in domain.InsertTask) (*domain.Task, error) {
	now := time.Now().UTC()
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	status := in.Status
	if status == "" {
		status = "todo"
	}

	t := domain.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     in.DueDate,
		AssignedTo:  in.AssignedTo,
		Category:    in.Category,
		CampaignID:  in.CampaignID,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      in.UserID,
	}
	if _, err := s.db.Collection(collTasks).InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &t, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, upd domain.TaskUpdate, userID string) (*domain.Task, error) {
	sets := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		sets["title"] = *upd.Title
	}
	if upd.Description != nil {
		sets["description"] = *upd.Description
	}
	if upd.Priority != nil {
		sets["priority"] = *upd.Priority
	}
	if upd.Status != nil {
		sets["status"] = *upd.Status
	}
	if upd.DueDate != nil {
		sets["dueDate"] = *upd.DueDate
	}
	if upd.AssignedTo != nil {
		sets["assignedTo"] = *upd.AssignedTo
	}
	if upd.Category != nil {
		sets["category"] = *upd.Category
	}
	if upd.CampaignID != nil {
		sets["campaignId"] = *upd.CampaignID
	}

	var t domain.Task
	found, err := s.updateOne(ctx, collTasks, byOwner(id, userID), sets, &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id, userID string) (bool, error) {
	return s.deleteOne(ctx, collTasks, byOwner(id, userID))
}
