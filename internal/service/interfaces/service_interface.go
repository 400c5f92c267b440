package interfaces

import (
	"context"
	"io"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
)

type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type AutoDialServiceInterface interface {
	Next(ctx context.Context) (*models.AutoDialCandidate, error)
}

type ReportServiceInterface interface {
	NPLSummary(ctx context.Context) ([]models.NPLSummaryRow, error)
	CollectionPerformance(ctx context.Context) ([]models.CollectionPerformanceRow, error)
	ExportNPLSummary(ctx context.Context) (*models.ReportExport, error)
}

type ProfixServiceInterface interface {
	Sync(ctx context.Context, loanID string) (*models.ProfixSyncResult, error)
	LastSync(ctx context.Context, loanID string) (*models.ProfixSyncResult, error)
}

// ObjectUploaderInterface writes a single object to blob storage.
type ObjectUploaderInterface interface {
	Upload(ctx context.Context, objectName, contentType string, body io.Reader) (string, error)
	Bucket() string
}

type HealthCheckerInterface interface {
	Ping(ctx context.Context) error
}
