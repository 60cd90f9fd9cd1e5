// Package port defines the interfaces decoupling the service layer from
// concrete infrastructure: the storage backends and the session store.
package port

import (
	"context"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"
)

// Storage is the persistence contract shared by the in-memory and the
// MongoDB backends. Exactly one implementation is active per process,
// chosen at startup.
//
// Conventions:
//   - every entity operation except the user ones is scoped by userId;
//     a record owned by a different user behaves as if it didn't exist
//   - Get*/Update* return (nil, nil) when the record is absent or not
//     owned; the caller decides how to surface that
//   - Delete* report whether a record was actually removed; deleting a
//     missing or foreign record is a no-op returning false
//   - Create* assign the ID and timestamps and apply entity defaults
type Storage interface {
	// Users. Not userId-scoped; usernames are globally unique and
	// CreateUser fails with domain.ErrConflict on a duplicate.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error)

	// Campaigns.
	ListCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id, userID string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, in domain.InsertCampaign) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate, userID string) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id, userID string) (bool, error)

	// Contacts.
	ListContacts(ctx context.Context, userID string) ([]domain.Contact, error)
	GetContact(ctx context.Context, id, userID string) (*domain.Contact, error)
	CreateContact(ctx context.Context, in domain.InsertContact) (*domain.Contact, error)
	UpdateContact(ctx context.Context, id string, upd domain.ContactUpdate, userID string) (*domain.Contact, error)
	DeleteContact(ctx context.Context, id, userID string) (bool, error)

	// Tasks.
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
	GetTask(ctx context.Context, id, userID string) (*domain.Task, error)
	CreateTask(ctx context.Context, in domain.InsertTask) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, upd domain.TaskUpdate, userID string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id, userID string) (bool, error)

	// Activities (append-only feed, newest first).
	ListActivities(ctx context.Context, userID string, limit int) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, in domain.InsertActivity) (*domain.Activity, error)

	// Dashboard aggregation over the user's campaigns/contacts/tasks.
	GetDashboardMetrics(ctx context.Context, userID string) (*domain.DashboardMetrics, error)
}

// Sessions manages server-side session state. The returned token is an
// opaque cookie value; sessions stay revocable on the server regardless
// of what the token encodes.
type Sessions interface {
	Issue(userID string) (token string, err error)
	Validate(token string) (userID string, err error)
	Revoke(token string)
	TTL() time.Duration
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
