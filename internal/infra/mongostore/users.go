package mongostore

import (
	"context"
	"fmt"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	found, err := s.findOne(ctx, collUsers, bson.M{"id": id}, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	found, err := s.findOne(ctx, collUsers, bson.M{"username": username}, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = "founder"
	}
	u := domain.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
	}

	_, err := s.db.Collection(collUsers).InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return nil, &domain.ErrConflict{Message: fmt.Sprintf("username %q already taken", in.Username)}
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}
