// Package memstore is the map-backed storage used when no MongoDB URI is
// configured. It self-seeds demo fixtures at construction so the app is
// usable with zero external dependencies; all data is lost on restart.
package memstore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"github.com/google/uuid"
)

// Store implements port.Storage over in-process maps. Handlers run
// concurrently, so every entry point takes the mutex.
type Store struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	campaigns  map[string]domain.Campaign
	contacts   map[string]domain.Contact
	tasks      map[string]domain.Task
	activities map[string]domain.Activity

	thresholds domain.LeadThresholds
}

// New creates a store seeded with the demo fixtures.
func New(thresholds domain.LeadThresholds) *Store {
	s := &Store{
		users:      make(map[string]domain.User),
		campaigns:  make(map[string]domain.Campaign),
		contacts:   make(map[string]domain.Contact),
		tasks:      make(map[string]domain.Task),
		activities: make(map[string]domain.Activity),
		thresholds: thresholds,
	}
	s.seedFixtures()
	return s
}

// ------------------------------------------------------------
// Users
// ------------------------------------------------------------

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username {
			return nil, &domain.ErrConflict{Message: fmt.Sprintf("username %q already taken", in.Username)}
		}
	}

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
	s.users[u.ID] = u
	return &u, nil
}

// ------------------------------------------------------------
// Campaigns
// ------------------------------------------------------------

func (s *Store) ListCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Campaign, 0)
	for _, c := range s.campaigns {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetCampaign(ctx context.Context, id, userID string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) CreateCampaign(ctx context.Context, in domain.InsertCampaign) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.campaigns[c.ID] = c
	return &c, nil
}

func (s *Store) UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate, userID string) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Type != nil {
		c.Type = *upd.Type
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.TargetAudience != nil {
		c.TargetAudience = *upd.TargetAudience
	}
	if upd.Budget != nil {
		c.Budget = *upd.Budget
	}
	if upd.StartDate != nil {
		c.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		c.EndDate = upd.EndDate
	}
	if upd.Metrics != nil {
		c.Metrics = *upd.Metrics
	}
	c.UpdatedAt = time.Now().UTC()

	s.campaigns[id] = c
	return &c, nil
}

func (s *Store) DeleteCampaign(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(s.campaigns, id)
	return true, nil
}

// ------------------------------------------------------------
// Contacts
// ------------------------------------------------------------

func (s *Store) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Contact, 0)
	for _, c := range s.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetContact(ctx context.Context, id, userID string) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contacts[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) CreateContact(ctx context.Context, in domain.InsertContact) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.contacts[c.ID] = c
	return &c, nil
}

func (s *Store) UpdateContact(ctx context.Context, id string, upd domain.ContactUpdate, userID string) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}

	if upd.FirstName != nil {
		c.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		c.LastName = *upd.LastName
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Company != nil {
		c.Company = *upd.Company
	}
	if upd.Position != nil {
		c.Position = *upd.Position
	}
	if upd.LeadScore != nil {
		c.LeadScore = *upd.LeadScore
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Source != nil {
		c.Source = *upd.Source
	}
	if upd.Tags != nil {
		c.Tags = *upd.Tags
	}
	if upd.Notes != nil {
		c.Notes = *upd.Notes
	}
	c.UpdatedAt = time.Now().UTC()

	s.contacts[id] = c
	return &c, nil
}

func (s *Store) DeleteContact(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(s.contacts, id)
	return true, nil
}

// ------------------------------------------------------------
// Tasks
// ------------------------------------------------------------

func (s *Store) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, 0)
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, in domain.InsertTask) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.tasks[t.ID] = t
	return &t, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, upd domain.TaskUpdate, userID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.DueDate != nil {
		t.DueDate = upd.DueDate
	}
	if upd.AssignedTo != nil {
		t.AssignedTo = *upd.AssignedTo
	}
	if upd.Category != nil {
		t.Category = *upd.Category
	}
	if upd.CampaignID != nil {
		t.CampaignID = *upd.CampaignID
	}
	t.UpdatedAt = time.Now().UTC()

	s.tasks[id] = t
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}

// ------------------------------------------------------------
// Activities
// ------------------------------------------------------------

func (s *Store) ListActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Activity, 0)
	for _, a := range s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CreateActivity(ctx context.Context, in domain.InsertActivity) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.activities[a.ID] = a
	return &a, nil
}

// ------------------------------------------------------------
// Dashboard metrics
// ------------------------------------------------------------

func (s *Store) GetDashboardMetrics(ctx context.Context, userID string) (*domain.DashboardMetrics, error) {
	campaigns, err := s.ListCampaigns(ctx, userID)
	if err != nil {
		return nil, err
	}
	contacts, err := s.ListContacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := 0
	totalCampaignLeads := 0
	totalConversions := 0
	roiSum := 0.0
	for _, c := range campaigns {
		if c.Status == "active" {
			active++
		}
		totalCampaignLeads += c.Metrics.Leads
		totalConversions += c.Metrics.Conversions
		roiSum += c.Metrics.ROI
	}

	scores := domain.LeadScores{}
	for _, c := range contacts {
		switch s.thresholds.Bucket(c.LeadScore) {
		case "hot":
			scores.Hot++
		case "warm":
			scores.Warm++
		default:
			scores.Cold++
		}
	}

	conversionRate := "0.0%"
	if totalCampaignLeads > 0 {
		conversionRate = fmt.Sprintf("%.1f%%", float64(totalConversions)/float64(totalCampaignLeads)*100)
	}

	roi := "0%"
	if len(campaigns) > 0 {
		roi = fmt.Sprintf("%d%%", int(math.Round(roiSum/float64(len(campaigns)))))
	}

	return &domain.DashboardMetrics{
		ActiveCampaigns: active,
		TotalLeads:      len(contacts),
		ConversionRate:  conversionRate,
		ROI:             roi,
		LeadScores:      scores,
		Growth:          domain.GrowthPlaceholder(),
	}, nil
}
