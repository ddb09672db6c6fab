package exporting

import (
	"context"
	"time"

	"github.com/vfg2006/ga4-traffic-export/internal/config"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	"github.com/vfg2006/ga4-traffic-export/pkg/log"
)

// RunRequest traz as datas explícitas (opcionais) e o dia de referência da execução
type RunRequest struct {
	StartDate string
	EndDate   string
	Today     time.Time
}

type RunResult struct {
	DateRange domain.DateRange
	FilePath  string
	RowCount  int
	RunID     string
}

type Service struct {
	propertyID string
	loader     CredentialLoader
	fetcher    ReportFetcher
	exporter   CSVExporter
	logger     log.Logger
}

func NewService(cfg *config.Config, loader CredentialLoader, fetcher ReportFetcher, exporter CSVExporter, logger log.Logger) *Service {
	return &Service{
		propertyID: cfg.GA4.PropertyID,
		loader:     loader,
		fetcher:    fetcher,
		exporter:   exporter,
		logger:     logger,
	}
}

// Run executa o pipeline autenticar -> consultar -> exportar.
// A primeira falha interrompe as etapas seguintes e é devolvida ao chamador.
func (s *Service) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	ctx, runID := log.WithRunID(ctx)
	logger := s.logger.WithContext(ctx)

	today := req.Today
	if today.IsZero() {
		today = time.Now()
	}

	dateRange, err := domain.ResolveDateRange(req.StartDate, req.EndDate, today)
	if err != nil {
		logger.WithError(err).Error("Invalid date arguments")
		return nil, err
	}

	logger.Infof("Fetching data from %s to %s...", dateRange.StartString(), dateRange.EndString())

	client, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("Authentication failed, nothing will be exported")
		return nil, err
	}

	result, err := s.fetcher.FetchReport(ctx, client, s.propertyID, dateRange)
	if err != nil {
		logger.WithError(err).Error("No data retrieved from Google Analytics.")
		return nil, err
	}

	path, err := s.exporter.Export(result, dateRange)
	if err != nil {
		logger.WithError(err).Error("Failed to save data to CSV")
		return nil, err
	}

	rowCount := 0
	if result != nil {
		rowCount = len(result.Rows)
	}
	logger.WithField("row_count", rowCount).Infof("Data saved to %s", path)

	return &RunResult{
		DateRange: dateRange,
		FilePath:  path,
		RowCount:  rowCount,
		RunID:     runID,
	}, nil
}
