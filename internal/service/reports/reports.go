package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"strconv"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/repository"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const csvContentType = "text/csv"

var nplCSVHeader = []string{"branch_code", "total_loans", "total_outstanding", "total_arrears", "avg_days_arrears"}

type ReportService struct {
	loans    interfaces.Aggregator
	promises interfaces.Aggregator
	uploader interfaces.ObjectUploaderInterface
	now      func() time.Time
}

// NewReportService takes a nil uploader when report storage is not configured.
func NewReportService(loans, promises interfaces.Aggregator, uploader interfaces.ObjectUploaderInterface) *ReportService {
	return &ReportService{
		loans:    loans,
		promises: promises,
		uploader: uploader,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func NewReportServiceFromClient(client *mongodb.MongoClient, uploader interfaces.ObjectUploaderInterface) *ReportService {
	return NewReportService(
		repository.NewMongoRepository[models.LoanAccount](client.Database.Collection(consts.LoanAccountsCollection)),
		repository.NewMongoRepository[models.PromiseToPay](client.Database.Collection(consts.PromisesToPayCollection)),
		uploader,
	)
}

// NPLSummary groups non-performing loans by branch, largest outstanding first.
func (s *ReportService) NPLSummary(ctx context.Context) ([]models.NPLSummaryRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: models.LoanStatusNonPerforming}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$branch_code"},
			{Key: "total_loans", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_outstanding", Value: bson.D{{Key: "$sum", Value: "$outstanding_balance"}}},
			{Key: "total_arrears", Value: bson.D{{Key: "$sum", Value: "$arrears_amount"}}},
			{Key: "avg_days_arrears", Value: bson.D{{Key: "$avg", Value: "$days_in_arrears"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_outstanding", Value: -1}}}},
	}

	rows := []models.NPLSummaryRow{}
	if err := s.loans.AggregateAll(ctx, pipeline, &rows); err != nil {
		logger.CtxError(ctx, log_messages.ErrorAggregatingDocuments, err, slog.String("report", "npl_summary"))
		return nil, repository.TranslateError(err, "Report")
	}
	return rows, nil
}

// CollectionPerformance groups promises due in the last 30 days by status.
func (s *ReportService) CollectionPerformance(ctx context.Context) ([]models.CollectionPerformanceRow, error) {
	since := s.now().AddDate(0, 0, -consts.CollectionPerformanceDays)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "promised_date", Value: bson.D{{Key: "$gte", Value: since}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_amount", Value: bson.D{{Key: "$sum", Value: "$promised_amount"}}},
		}}},
	}

	rows := []models.CollectionPerformanceRow{}
	if err := s.promises.AggregateAll(ctx, pipeline, &rows); err != nil {
		logger.CtxError(ctx, log_messages.ErrorAggregatingDocuments, err, slog.String("report", "collection_performance"))
		return nil, repository.TranslateError(err, "Report")
	}
	return rows, nil
}

// ExportNPLSummary uploads the NPL summary as CSV to report storage.
func (s *ReportService) ExportNPLSummary(ctx context.Context) (*models.ReportExport, error) {
	if s.uploader == nil {
		return nil, apperrors.ServiceUnavailable("Report storage is not configured", nil)
	}

	rows, err := s.NPLSummary(ctx)
	if err != nil {
		return nil, err
	}

	body, err := encodeNPLSummary(rows)
	if err != nil {
		return nil, apperrors.Internal("failed to encode report", err)
	}

	exportedAt := s.now()
	objectName := "npl_summary_" + exportedAt.Format("20060102T150405Z") + ".csv"
	object, err := s.uploader.Upload(ctx, objectName, csvContentType, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.ExternalService("Report upload failed", err)
	}

	logger.CtxInfo(ctx, "NPL summary exported", slog.String("object", object), slog.Int("rows", len(rows)))
	return &models.ReportExport{
		Bucket:     s.uploader.Bucket(),
		Object:     object,
		Rows:       len(rows),
		ExportedAt: exportedAt,
	}, nil
}

func encodeNPLSummary(rows []models.NPLSummaryRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(nplCSVHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.BranchCode,
			strconv.FormatInt(r.TotalLoans, 10),
			strconv.FormatFloat(r.TotalOutstanding, 'f', 2, 64),
			strconv.FormatFloat(r.TotalArrears, 'f', 2, 64),
			strconv.FormatFloat(r.AvgDaysArrears, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
