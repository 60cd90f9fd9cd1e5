// Package fixtures holds the demo workspace data shared by the
// self-seeding in-memory backend and the Mongo seed command.
package fixtures

import (
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Demo login for seeded backends.
const (
	Username = "founder"
	Password = "password"
)

// Demo is a fully linked demo workspace: one user, three campaigns,
// two contacts, three tasks and a short activity feed.
type Demo struct {
	User       domain.User
	Campaigns  []domain.Campaign
	Contacts   []domain.Contact
	Tasks      []domain.Task
	Activities []domain.Activity
}

func timePtr(t time.Time) *time.Time { return &t }

// NewDemo builds the demo workspace with fresh IDs and timestamps
// relative to now. The demo password is bcrypt-hashed like every other
// credential.
func NewDemo() Demo {
	now := time.Now().UTC()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.DefaultCost)
	if err != nil {
		panic("fixtures: hash demo password: " + err.Error())
	}

	userID := uuid.New().String()
	user := domain.User{
		ID:           userID,
		Username:     Username,
		PasswordHash: string(hash),
		Name:         "Sarah Chen",
		Email:        "sarah@startup.com",
		Role:         "founder",
	}

	emailCampaign := domain.Campaign{
		ID:             uuid.New().String(),
		Name:           "Summer Product Launch",
		Type:           "email",
		Status:         "active",
		Description:    "Email campaign for new product launch",
		TargetAudience: "Enterprise customers",
		Budget:         5000,
		StartDate:      timePtr(now.AddDate(0, 0, -5)),
		EndDate:        timePtr(now.AddDate(0, 0, 25)),
		Metrics:        domain.CampaignMetrics{Leads: 1234, Conversions: 52, ROI: 285},
		CreatedAt:      now.AddDate(0, 0, -5),
		UpdatedAt:      now,
		UserID:         userID,
	}
	socialCampaign := domain.Campaign{
		ID:             uuid.New().String(),
		Name:           "Social Media Boost",
		Type:           "social",
		Status:         "active",
		Description:    "Multi-platform social media campaign",
		TargetAudience: "SMB customers",
		Budget:         3000,
		StartDate:      timePtr(now.AddDate(0, 0, -7)),
		EndDate:        timePtr(now.AddDate(0, 0, 23)),
		Metrics:        domain.CampaignMetrics{Leads: 892, Conversions: 34, ROI: 192},
		CreatedAt:      now.AddDate(0, 0, -7),
		UpdatedAt:      now,
		UserID:         userID,
	}
	contentCampaign := domain.Campaign{
		ID:             uuid.New().String(),
		Name:           "Content Marketing Series",
		Type:           "content",
		Status:         "paused",
		Description:    "Educational content series",
		TargetAudience: "Tech professionals",
		Budget:         2000,
		StartDate:      timePtr(now.AddDate(0, 0, -14)),
		EndDate:        timePtr(now.AddDate(0, 0, 16)),
		Metrics:        domain.CampaignMetrics{Leads: 721, Conversions: 37, ROI: 348},
		CreatedAt:      now.AddDate(0, 0, -14),
		UpdatedAt:      now,
		UserID:         userID,
	}

	contacts := []domain.Contact{
		{
			ID:        uuid.New().String(),
			FirstName: "Alex",
			LastName:  "Johnson",
			Email:     "alex@techstart.com",
			Phone:     "+1-555-0123",
			Company:   "TechStart Inc.",
			Position:  "CEO",
			LeadScore: 95,
			Status:    "qualified",
			Source:    emailCampaign.ID,
			Tags:      []string{"enterprise", "hot-lead"},
			Notes:     "Very interested in our enterprise solution",
			CreatedAt: now.AddDate(0, 0, -2),
			UpdatedAt: now,
			UserID:    userID,
		},
		{
			ID:        uuid.New().String(),
			FirstName: "Maria",
			LastName:  "Garcia",
			Email:     "maria@growthco.com",
			Phone:     "+1-555-0124",
			Company:   "GrowthCo",
			Position:  "Marketing Director",
			LeadScore: 88,
			Status:    "contacted",
			Source:    socialCampaign.ID,
			Tags:      []string{"marketing", "warm-lead"},
			Notes:     "Interested in marketing automation features",
			CreatedAt: now.AddDate(0, 0, -3),
			UpdatedAt: now,
			UserID:    userID,
		},
	}

	tasks := []domain.Task{
		{
			ID:          uuid.New().String(),
			Title:       "Review email campaign performance",
			Description: "Analyze the performance metrics of the Summer Product Launch campaign",
			Priority:    "high",
			Status:      "todo",
			DueDate:     timePtr(now.Add(6 * time.Hour)),
			AssignedTo:  "Marketing Team",
			Category:    "campaign",
			CampaignID:  emailCampaign.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      userID,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Update lead scoring criteria",
			Description: "Review and update the lead scoring algorithm based on recent data",
			Priority:    "medium",
			Status:      "todo",
			DueDate:     timePtr(now.Add(24 * time.Hour)),
			AssignedTo:  "Sales Team",
			Category:    "crm",
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      userID,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Create content calendar for next month",
			Description: "Plan and schedule content for the upcoming month",
			Priority:    "low",
			Status:      "todo",
			DueDate:     timePtr(now.AddDate(0, 0, 3)),
			AssignedTo:  "Content Team",
			Category:    "content",
			CampaignID:  contentCampaign.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      userID,
		},
	}

	activities := []domain.Activity{
		{
			ID:          uuid.New().String(),
			Type:        "campaign_launched",
			Title:       `Email Campaign "Summer Sale" launched`,
			Description: "2,340 recipients",
			Metadata:    map[string]any{"recipients": 2340, "campaignId": emailCampaign.ID},
			CreatedAt:   now.Add(-15 * time.Minute),
			UserID:      userID,
		},
		{
			ID:          uuid.New().String(),
			Type:        "leads_generated",
			Title:       `47 new leads from "Product Demo" landing page`,
			Description: "Conversion rate: 6.2%",
			Metadata:    map[string]any{"leads": 47, "conversionRate": 6.2, "source": "landing_page"},
			CreatedAt:   now.Add(-1 * time.Hour),
			UserID:      userID,
		},
		{
			ID:          uuid.New().String(),
			Type:        "social_campaign",
			Title:       "Social media campaign reached 12.5K impressions",
			Description: "Instagram & LinkedIn",
			Metadata:    map[string]any{"impressions": 12500, "platforms": []string{"instagram", "linkedin"}},
			CreatedAt:   now.Add(-3 * time.Hour),
			UserID:      userID,
		},
		{
			ID:          uuid.New().String(),
			Type:        "crm_sync",
			Title:       "CRM sync completed",
			Description: "2,847 contacts updated",
			Metadata:    map[string]any{"contactsUpdated": 2847},
			CreatedAt:   now.Add(-5 * time.Hour),
			UserID:      userID,
		},
	}

	return Demo{
		User:       user,
		Campaigns:  []domain.Campaign{emailCampaign, socialCampaign, contentCampaign},
		Contacts:   contacts,
		Tasks:      tasks,
		Activities: activities,
	}
}
