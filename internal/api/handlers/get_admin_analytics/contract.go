package get_admin_analytics

import (
	"context"

	"github.com/Lingges29/mypark/internal/service/analytics/models"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*models.AnalyticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
