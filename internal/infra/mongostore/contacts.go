package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	cur, err := s.db.Collection(collContacts).Find(ctx, bson.M{"userId": userID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	out := make([]domain.Contact, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	return out, nil
}

func (s *Store) GetContact(ctx context.Context, id, userID string) (*domain.Contact, error) {
	var c domain.Contact
	found, err := s.findOne(ctx, collContacts, byOwner(id, userID), &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateContact(ctx context.Context, in domain.InsertContact) (*domain.Contact, error) {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = "new"
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	c := domain.Contact{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Position:  in.Position,
		LeadScore: in.LeadScore,
		Status:    status,
		Source:    in.Source,
		Tags:      tags,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    in.UserID,
	}
	if _, err := s.db.Collection(collContacts).InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateContact(ctx context.Context, id string, upd domain.ContactUpdate, userID string) (*domain.Contact, error) {
	sets := bson.M{"updatedAt": time.Now().UTC()}
	if upd.FirstName != nil {
		sets["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		sets["lastName"] = *upd.LastName
	}
	if upd.Email != nil {
		sets["email"] = *upd.Email
	}
	if upd.Phone != nil {
		sets["phone"] = *upd.Phone
	}
	if upd.Company != nil {
		sets["company"] = *upd.Company
	}
	if upd.Position != nil {
		sets["position"] = *upd.Position
	}
	if upd.LeadScore != nil {
		sets["leadScore"] = *upd.LeadScore
	}
	if upd.Status != nil {
		sets["status"] = *upd.Status
	}
	if upd.Source != nil {
		sets["source"] = *upd.Source
	}
	if upd.Tags != nil {
		sets["tags"] = *upd.Tags
	}
	if upd.Notes != nil {
		sets["notes"] = *upd.Notes
	}

	var c domain.Contact
	found, err := s.updateOne(ctx, collContacts, byOwner(id, userID), sets, &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *Store) DeleteContact(ctx context.Context, id, userID string) (bool, error) {
	return s.deleteOne(ctx, collContacts, byOwner(id, userID))
}
