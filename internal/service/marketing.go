package service

import (
	"context"
	"fmt"

	"github.com/campaignforge/campaignforge-go/internal/domain"
	"github.com/campaignforge/campaignforge-go/internal/infra/observability"
	"github.com/campaignforge/campaignforge-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/marketing")

// MarketingService fronts the storage backend for campaigns, contacts,
// tasks, the activity feed and the dashboard aggregation. It validates
// input shapes before they reach storage and appends feed entries for the
// notable mutations.
type MarketingService struct {
	store   port.Storage
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewMarketingService creates the service with all dependencies injected.
func NewMarketingService(store port.Storage, metrics *observability.Metrics, logger *zap.Logger) *MarketingService {
	return &MarketingService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// recordActivity appends a feed entry. Feed failures never fail the
// mutation that triggered them; they are logged and counted instead.
func (s *MarketingService) recordActivity(ctx context.Context, in domain.InsertActivity) {
	if _, err := s.store.CreateActivity(ctx, in); err != nil {
		s.metrics.IncrStorageError("create_activity")
		s.logger.Warn("failed to record activity",
			zap.String("type", in.Type),
			zap.Error(err),
		)
		return
	}
	s.metrics.IncrActivity(in.Type)
}

// ============================================================
// Campaigns
// ============================================================

func (s *MarketingService) ListCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.ListCampaigns")
	defer span.End()

	return s.store.ListCampaigns(ctx, userID)
}

func (s *MarketingService) GetCampaign(ctx context.Context, id, userID string) (*domain.Campaign, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.GetCampaign")
	defer span.End()
	span.SetAttributes(attribute.String("campaign.id", id))

	c, err := s.store.GetCampaign(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &domain.ErrNotFound{Resource: "campaign", ID: id}
	}
	return c, nil
}

func (s *MarketingService) CreateCampaign(ctx context.Context, in domain.InsertCampaign) (*domain.Campaign, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.CreateCampaign")
	defer span.End()

	if err := validateInsertCampaign(&in); err != nil {
		return nil, err
	}

	c, err := s.store.CreateCampaign(ctx, in)
	if err != nil {
		s.metrics.IncrStorageError("create_campaign")
		return nil, err
	}

	s.recordActivity(ctx, domain.InsertActivity{
		Type:     "campaign_created",
		Title:    fmt.Sprintf("Campaign %q created", c.Name),
		Metadata: map[string]any{"campaignId": c.ID, "type": c.Type},
		UserID:   c.UserID,
	})
	return c, nil
}

func (s *MarketingService) UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate, userID string) (*domain.Campaign, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.UpdateCampaign")
	defer span.End()
	span.SetAttributes(attribute.String("campaign.id", id))

	if err := validateCampaignUpdate(&upd); err != nil {
		return nil, err
	}

	c, err := s.store.UpdateCampaign(ctx, id, upd, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &domain.ErrNotFound{Resource: "campaign", ID: id}
	}
	return c, nil
}

func (s *MarketingService) DeleteCampaign(ctx context.Context, id, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.DeleteCampaign")
	defer span.End()
	span.SetAttributes(attribute.String("campaign.id", id))

	return s.store.DeleteCampaign(ctx, id, userID)
}

// ============================================================
// Contacts
// ============================================================

func (s *MarketingService) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.ListContacts")
	defer span.End()

	return s.store.ListContacts(ctx, userID)
}

func (s *MarketingService) GetContact(ctx context.Context, id, userID string) (*domain.Contact, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.GetContact")
	defer span.End()
	span.SetAttributes(attribute.String("contact.id", id))

	c, err := s.store.GetContact(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &domain.ErrNotFound{Resource: "contact", ID: id}
	}
	return c, nil
}

func (s *MarketingService) CreateContact(ctx context.Context, in domain.InsertContact) (*domain.Contact, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.CreateContact")
	defer span.End()

	if err := validateInsertContact(&in); err != nil {
		return nil, err
	}

	c, err := s.store.CreateContact(ctx, in)
	if err != nil {
		s.metrics.IncrStorageError("create_contact")
		return nil, err
	}

	s.recordActivity(ctx, domain.InsertActivity{
		Type:     "contact_added",
		Title:    fmt.Sprintf("Contact %s %s added", c.FirstName, c.LastName),
		Metadata: map[string]any{"contactId": c.ID, "leadScore": c.LeadScore},
		UserID:   c.UserID,
	})
	return c, nil
}

func (s *MarketingService) UpdateContact(ctx context.Context, id string, upd domain.ContactUpdate, userID string) (*domain.Contact, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.UpdateContact")
	defer span.End()
	span.SetAttributes(attribute.String("contact.id", id))

	if err := validateContactUpdate(&upd); err != nil {
		return nil, err
	}

	c, err := s.store.UpdateContact(ctx, id, upd, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &domain.ErrNotFound{Resource: "contact", ID: id}
	}
	return c, nil
}

func (s *MarketingService) DeleteContact(ctx context.Context, id, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.DeleteContact")
	defer span.End()
	span.SetAttributes(attribute.String("contact.id", id))

	return s.store.DeleteContact(ctx, id, userID)
}

// ============================================================
// Tasks
// ============================================================

func (s *MarketingService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.ListTasks")
	defer span.End()

	return s.store.ListTasks(ctx, userID)
}

func (s *MarketingService) GetTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.GetTask")
	defer span.End()
	span.SetAttributes(attribute.String("task.id", id))

	t, err := s.store.GetTask(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &domain.ErrNotFound{Resource: "task", ID: id}
	}
	return t, nil
}

func (s *MarketingService) CreateTask(ctx context.Context, in domain.InsertTask) (*domain.Task, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.CreateTask")
	defer span.End()

	if err := validateInsertTask(&in); err != nil {
		return nil, err
	}

	t, err := s.store.CreateTask(ctx, in)
	if err != nil {
		s.metrics.IncrStorageError("create_task")
		return nil, err
	}

	s.recordActivity(ctx, domain.InsertActivity{
		Type:     "task_created",
		Title:    fmt.Sprintf("Task %q created", t.Title),
		Metadata: map[string]any{"taskId": t.ID, "priority": t.Priority},
		UserID:   t.UserID,
	})
	return t, nil
}

func (s *MarketingService) UpdateTask(ctx context.Context, id string, upd domain.TaskUpdate, userID string) (*domain.Task, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.UpdateTask")
	defer span.End()
	span.SetAttributes(attribute.String("task.id", id))

	if err := validateTaskUpdate(&upd); err != nil {
		return nil, err
	}

	// Completion is feed-worthy; detect the transition before the write.
	wasCompleted := false
	if upd.Status != nil && *upd.Status == "completed" {
		if prev, err := s.store.GetTask(ctx, id, userID); err == nil && prev != nil {
			wasCompleted = prev.Status == "completed"
		}
	}

	t, err := s.store.UpdateTask(ctx, id, upd, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &domain.ErrNotFound{Resource: "task", ID: id}
	}

	if upd.Status != nil && *upd.Status == "completed" && !wasCompleted {
		s.recordActivity(ctx, domain.InsertActivity{
			Type:     "task_completed",
			Title:    fmt.Sprintf("Task %q completed", t.Title),
			Metadata: map[string]any{"taskId": t.ID},
			UserID:   t.UserID,
		})
	}
	return t, nil
}

func (s *MarketingService) DeleteTask(ctx context.Context, id, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.DeleteTask")
	defer span.End()
	span.SetAttributes(attribute.String("task.id", id))

	return s.store.DeleteTask(ctx, id, userID)
}

// ============================================================
// Activity feed
// ============================================================

const defaultActivityLimit = 20

func (s *MarketingService) ListActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.ListActivities")
	defer span.End()

	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.store.ListActivities(ctx, userID, limit)
}

// ============================================================
// Dashboard
// ============================================================

// GetDashboardMetrics delegates the aggregation to the active backend.
// Store errors surface unchanged: no retry, no stale cache.
func (s *MarketingService) GetDashboardMetrics(ctx context.Context, userID string) (*domain.DashboardMetrics, error) {
	ctx, span := tracer.Start(ctx, "MarketingService.GetDashboardMetrics")
	defer span.End()

	m, err := s.store.GetDashboardMetrics(ctx, userID)
	if err != nil {
		s.metrics.IncrStorageError("dashboard_metrics")
		return nil, err
	}
	return m, nil
}
