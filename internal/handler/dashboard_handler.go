package handler

import (
	"net/http"

	"github.com/campaignforge/campaignforge-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Dashboard — GET /api/dashboard/metrics
// ============================================================

func dashboardMetricsHandler(svc *service.MarketingService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/dashboard/metrics")
		defer span.End()

		metrics, err := svc.GetDashboardMetrics(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, metrics)
	}
}
