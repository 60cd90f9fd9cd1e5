package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campaignforge/campaignforge-go/internal/domain"
	"github.com/campaignforge/campaignforge-go/internal/infra/memstore"
	"github.com/campaignforge/campaignforge-go/internal/infra/observability"
	"github.com/campaignforge/campaignforge-go/internal/service"

	"go.uber.org/zap"
)

func newMarketingService(t *testing.T) (*service.MarketingService, *domain.User) {
	t.Helper()
	store := memstore.New(domain.DefaultLeadThresholds())
	user, err := store.CreateUser(context.Background(), domain.InsertUser{
		Username:     "tester",
		PasswordHash: "x",
		Name:         "Tester",
		Email:        "tester@example.com",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	svc := service.NewMarketingService(store, observability.NewMetrics(), zap.NewNop())
	return svc, user
}

func TestCreateCampaign_RecordsActivity(t *testing.T) {
	svc, user := newMarketingService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, domain.InsertCampaign{
		Name:   "Launch",
		Type:   "email",
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	activities, err := svc.ListActivities(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	if activities[0].Type != "campaign_created" {
		t.Errorf("expected campaign_created, got %q", activities[0].Type)
	}
	if activities[0].Metadata["campaignId"] != c.ID {
		t.Errorf("expected activity metadata to reference the campaign")
	}
}

func TestCreateCampaign_InvalidType(t *testing.T) {
	svc, user := newMarketingService(t)

	_, err := svc.CreateCampaign(context.Background(), domain.InsertCampaign{
		Name:   "Launch",
		Type:   "billboard",
		UserID: user.ID,
	})
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGetCampaign_NotFound(t *testing.T) {
	svc, user := newMarketingService(t)

	_, err := svc.GetCampaign(context.Background(), "no-such-id", user.ID)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCampaign_NotFound(t *testing.T) {
	svc, user := newMarketingService(t)

	name := "New Name"
	_, err := svc.UpdateCampaign(context.Background(), "no-such-id", domain.CampaignUpdate{Name: &name}, user.ID)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateContact_RecordsActivityAndValidatesScore(t *testing.T) {
	svc, user := newMarketingService(t)
	ctx := context.Background()

	_, err := svc.CreateContact(ctx, domain.InsertContact{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		LeadScore: 101,
		UserID:    user.ID,
	})
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation for score 101, got %v", err)
	}

	if _, err := svc.CreateContact(ctx, domain.InsertContact{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		LeadScore: 90,
		UserID:    user.ID,
	}); err != nil {
		t.Fatalf("create contact: %v", err)
	}

	activities, _ := svc.ListActivities(ctx, user.ID, 10)
	if len(activities) != 1 || activities[0].Type != "contact_added" {
		t.Errorf("expected a contact_added activity, got %+v", activities)
	}
}

func TestUpdateTask_CompletionActivityOnce(t *testing.T) {
	svc, user := newMarketingService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, domain.InsertTask{
		Title:  "Follow up",
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	completed := "completed"
	if _, err := svc.UpdateTask(ctx, task.ID, domain.TaskUpdate{Status: &completed}, user.ID); err != nil {
		t.Fatalf("complete task: %v", err)
	}
	// Completing an already completed task must not duplicate the entry.
	if _, err := svc.UpdateTask(ctx, task.ID, domain.TaskUpdate{Status: &completed}, user.ID); err != nil {
		t.Fatalf("re-complete task: %v", err)
	}

	activities, _ := svc.ListActivities(ctx, user.ID, 10)
	completions := 0
	for _, a := range activities {
		if a.Type == "task_completed" {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("expected exactly 1 task_completed activity, got %d", completions)
	}
}

func TestDeleteTask_ForeignUser(t *testing.T) {
	svc, user := newMarketingService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, domain.InsertTask{Title: "Mine", UserID: user.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	deleted, err := svc.DeleteTask(ctx, task.ID, "someone-else")
	if err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if deleted {
		t.Error("expected foreign delete to report false")
	}
}

func TestUpdateTask_InvalidStatus(t *testing.T) {
	svc, user := newMarketingService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, domain.InsertTask{Title: "Follow up", UserID: user.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	bogus := "paused"
	_, err = svc.UpdateTask(ctx, task.ID, domain.TaskUpdate{Status: &bogus}, user.ID)
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListActivities_DefaultLimit(t *testing.T) {
	svc, user := newMarketingService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if _, err := svc.CreateTask(ctx, domain.InsertTask{Title: "T", UserID: user.ID}); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	activities, err := svc.ListActivities(ctx, user.ID, 0)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(activities) != 20 {
		t.Errorf("expected default limit of 20, got %d", len(activities))
	}
}

func TestGetDashboardMetrics_Passthrough(t *testing.T) {
	svc, user := newMarketingService(t)
	ctx := context.Background()

	if _, err := svc.CreateContact(ctx, domain.InsertContact{
		FirstName: "Ada", LastName: "L", Email: "a@b.com",
		LeadScore: 85, UserID: user.ID,
	}); err != nil {
		t.Fatalf("create contact: %v", err)
	}

	m, err := svc.GetDashboardMetrics(ctx, user.ID)
	if err != nil {
		t.Fatalf("dashboard metrics: %v", err)
	}
	if m.TotalLeads != 1 || m.LeadScores.Hot != 1 {
		t.Errorf("expected one hot lead, got %+v", m)
	}
}
