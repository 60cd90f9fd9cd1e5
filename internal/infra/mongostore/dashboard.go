package mongostore

import (
	"context"
	"fmt"
	"math"

	"github.com/campaignforge/campaignforge-go/internal/domain"

	"golang.org/x/sync/errgroup"
)

// GetDashboardMetrics aggregates the user's campaigns and contacts into
// the dashboard KPI payload. The collection reads are independent,
// so they fan out concurrently; any store error surfaces unchanged.
func (s *Store) GetDashboardMetrics(ctx context.Context, userID string) (*domain.DashboardMetrics, error) {
	var (
		campaigns []domain.Campaign
		contacts  []domain.Contact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = s.ListCampaigns(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = s.ListContacts(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard metrics: %w", err)
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
