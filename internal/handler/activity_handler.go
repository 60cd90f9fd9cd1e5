package handler

import (
	"net/http"

	"github.com/campaignforge/campaignforge-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Activity feed — GET /api/activities?limit=N
// ============================================================

func listActivitiesHandler(svc *service.MarketingService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/activities")
		defer span.End()

		limit := parseLimit(r, 0)
		activities, err := svc.ListActivities(ctx, UserIDFromContext(ctx), limit)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, activities)
	}
}
