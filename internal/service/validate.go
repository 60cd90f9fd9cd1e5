package service

import (
	"github.com/campaignforge/campaignforge-go/internal/domain"
)

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// enumErr builds the standard invalid-enum validation error.
func enumErr(field string) *domain.ErrValidation {
	return &domain.ErrValidation{Field: field, Message: "invalid value"}
}

func validateInsertCampaign(in *domain.InsertCampaign) error {
	if in.Name == "" {
		return &domain.ErrValidation{Field: "name", Message: "required"}
	}
	if !oneOf(in.Type, domain.CampaignTypes) {
		return enumErr("type")
	}
	if in.Status != "" && !oneOf(in.Status, domain.CampaignStatuses) {
		return enumErr("status")
	}
	return nil
}

func validateCampaignUpdate(upd *domain.CampaignUpdate) error {
	if upd.Name != nil && *upd.Name == "" {
		return &domain.ErrValidation{Field: "name", Message: "cannot be empty"}
	}
	if upd.Type != nil && !oneOf(*upd.Type, domain.CampaignTypes) {
		return enumErr("type")
	}
	if upd.Status != nil && !oneOf(*upd.Status, domain.CampaignStatuses) {
		return enumErr("status")
	}
	return nil
}

func validateLeadScore(score int) error {
	if score < 0 || score > 100 {
		return &domain.ErrValidation{Field: "leadScore", Message: "must be between 0 and 100"}
	}
	return nil
}

func validateInsertContact(in *domain.InsertContact) error {
	if in.FirstName == "" {
		return &domain.ErrValidation{Field: "firstName", Message: "required"}
	}
	if in.LastName == "" {
		return &domain.ErrValidation{Field: "lastName", Message: "required"}
	}
	if in.Email == "" {
		return &domain.ErrValidation{Field: "email", Message: "required"}
	}
	if err := validateLeadScore(in.LeadScore); err != nil {
		return err
	}
	if in.Status != "" && !oneOf(in.Status, domain.ContactStatuses) {
		return enumErr("status")
	}
	return nil
}

func validateContactUpdate(upd *domain.ContactUpdate) error {
	if upd.LeadScore != nil {
		if err := validateLeadScore(*upd.LeadScore); err != nil {
			return err
		}
	}
	if upd.Status != nil && !oneOf(*upd.Status, domain.ContactStatuses) {
		return enumErr("status")
	}
	return nil
}

func validateInsertTask(in *domain.InsertTask) error {
	if in.Title == "" {
		return &domain.ErrValidation{Field: "title", Message: "required"}
	}
	if in.Priority != "" && !oneOf(in.Priority, domain.TaskPriorities) {
		return enumErr("priority")
	}
	if in.Status != "" && !oneOf(in.Status, domain.TaskStatuses) {
		return enumErr("status")
	}
	if in.Category != "" && !oneOf(in.Category, domain.TaskCategories) {
		return enumErr("category")
	}
	return nil
}

func validateTaskUpdate(upd *domain.TaskUpdate) error {
	if upd.Title != nil && *upd.Title == "" {
		return &domain.ErrValidation{Field: "title", Message: "cannot be empty"}
	}
	if upd.Priority != nil && !oneOf(*upd.Priority, domain.TaskPriorities) {
		return enumErr("priority")
	}
	if upd.Status != nil && !oneOf(*upd.Status, domain.TaskStatuses) {
		return enumErr("status")
	}
	if upd.Category != nil && *upd.Category != "" && !oneOf(*upd.Category, domain.TaskCategories) {
		return enumErr("category")
	}
	return nil
}
