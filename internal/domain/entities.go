// Package domain holds the core entities of the marketing dashboard:
// users, campaigns, contacts, tasks and the activity feed. All records
// except users are scoped to an owning user; there is no cross-user
// visibility anywhere in the system.
package domain

import "time"

// User is an account holder. The password hash never leaves the server.
type User struct {
	ID           string `json:"id" bson:"id"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"password"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Role         string `json:"role" bson:"role"`
}

// InsertUser carries the fields needed to create a user. Password is the
// plaintext credential from the register request; storage only ever sees
// the bcrypt hash.
type InsertUser struct {
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Role         string
}

// CampaignMetrics are the per-campaign counters feeding the dashboard KPIs.
// A campaign always carries a metrics object, even if all zeros.
type CampaignMetrics struct {
	Leads       int     `json:"leads" bson:"leads"`
	Conversions int     `json:"conversions" bson:"conversions"`
	ROI         float64 `json:"roi" bson:"roi"`
}

// Campaign is a marketing campaign owned by a user.
type Campaign struct {
	ID             string          `json:"id" bson:"id"`
	Name           string          `json:"name" bson:"name"`
	Type           string          `json:"type" bson:"type"`
	Status         string          `json:"status" bson:"status"`
	Description    string          `json:"description,omitempty" bson:"description,omitempty"`
	TargetAudience string          `json:"targetAudience,omitempty" bson:"targetAudience,omitempty"`
	Budget         float64         `json:"budget,omitempty" bson:"budget,omitempty"`
	StartDate      *time.Time      `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate        *time.Time      `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Metrics        CampaignMetrics `json:"metrics" bson:"metrics"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
	UserID         string          `json:"userId" bson:"userId"`
}

// Campaign enums.
var (
	CampaignTypes    = []string{"email", "social", "content"}
	CampaignStatuses = []string{"draft", "active", "paused", "completed"}
)

// InsertCampaign is the input for creating a campaign. Zero values fall
// back to defaults: status "draft", metrics all zeros.
type InsertCampaign struct {
	Name           string           `json:"name"`
	Type           string           `json:"type"`
	Status         string           `json:"status"`
	Description    string           `json:"description"`
	TargetAudience string           `json:"targetAudience"`
	Budget         float64          `json:"budget"`
	StartDate      *time.Time       `json:"startDate"`
	EndDate        *time.Time       `json:"endDate"`
	Metrics        *CampaignMetrics `json:"metrics"`
	UserID         string           `json:"-"`
}

// CampaignUpdate is a partial update: nil fields are left untouched.
type CampaignUpdate struct {
	Name           *string          `json:"name"`
	Type           *string          `json:"type"`
	Status         *string          `json:"status"`
	Description    *string          `json:"description"`
	TargetAudience *string          `json:"targetAudience"`
	Budget         *float64         `json:"budget"`
	StartDate      *time.Time       `json:"startDate"`
	EndDate        *time.Time       `json:"endDate"`
	Metrics        *CampaignMetrics `json:"metrics"`
}

// Contact is a lead/contact in the CRM, classified by lead score.
type Contact struct {
	ID        string    `json:"id" bson:"id"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Company   string    `json:"company,omitempty" bson:"company,omitempty"`
	Position  string    `json:"position,omitempty" bson:"position,omitempty"`
	LeadScore int       `json:"leadScore" bson:"leadScore"`
	Status    string    `json:"status" bson:"status"`
	Source    string    `json:"source,omitempty" bson:"source,omitempty"`
	Tags      []string  `json:"tags" bson:"tags"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	UserID    string    `json:"userId" bson:"userId"`
}

var ContactStatuses = []string{"new", "contacted", "qualified", "converted", "nurturing"}

// InsertContact is the input for creating a contact. Defaults: status
// "new", leadScore 0, tags empty slice (never nil on the stored record).
type InsertContact struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Company   string   `json:"company"`
	Position  string   `json:"position"`
	LeadScore int      `json:"leadScore"`
	Status    string   `json:"status"`
	Source    string   `json:"source"`
	Tags      []string `json:"tags"`
	Notes     string   `json:"notes"`
	UserID    string   `json:"-"`
}

// ContactUpdate is a partial update: nil fields are left untouched.
type ContactUpdate struct {
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Position  *string   `json:"position"`
	LeadScore *int      `json:"leadScore"`
	Status    *string   `json:"status"`
	Source    *string   `json:"source"`
	Tags      *[]string `json:"tags"`
	Notes     *string   `json:"notes"`
}

// Task is a to-do item, optionally linked to a campaign. The campaign
// reference is weak: no referential integrity is enforced.
type Task struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Priority    string     `json:"priority" bson:"priority"`
	Status      string     `json:"status" bson:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	Category    string     `json:"category,omitempty" bson:"category,omitempty"`
	CampaignID  string     `json:"campaignId,omitempty" bson:"campaignId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
	UserID      string     `json:"userId" bson:"userId"`
}

var (
	TaskPriorities = []string{"low", "medium", "high"}
	TaskStatuses   = []string{"todo", "in_progress", "completed"}
	TaskCategories = []string{"campaign", "crm", "content"}
)

// InsertTask is the input for creating a task. Defaults: priority
// "medium", status "todo".
type InsertTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
	Category    string     `json:"category"`
	CampaignID  string     `json:"campaignId"`
	UserID      string     `json:"-"`
}

// TaskUpdate is a partial update: nil fields are left untouched.
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *string    `json:"assignedTo"`
	Category    *string    `json:"category"`
	CampaignID  *string    `json:"campaignId"`
}

// Activity is an append-only feed entry. Activities are never updated or
// deleted by normal flow.
type Activity struct {
	ID          string         `json:"id" bson:"id"`
	Type        string         `json:"type" bson:"type"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Metadata    map[string]any `json:"metadata" bson:"metadata"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UserID      string         `json:"userId" bson:"userId"`
}

// InsertActivity is the input for appending an activity.
type InsertActivity struct {
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	UserID      string         `json:"-"`
}
