package ga4

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/ga4-traffic-export/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/ga4-traffic-export/internal/config"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	"github.com/vfg2006/ga4-traffic-export/pkg/log"
	"google.golang.org/api/googleapi"
)

type GA4Integrator struct {
	timeout time.Duration
	logger  log.Logger
}

func New(cfg *config.Config, logger log.Logger) *GA4Integrator {
	return &GA4Integrator{
		timeout: cfg.GA4.RequestTimeout,
		logger:  logger,
	}
}

// FetchReport faz uma única chamada runReport, sem retentativa, e traduz a resposta para domain.ReportResult
func (s *GA4Integrator) FetchReport(ctx context.Context, client ga4client.Client, propertyID string, dateRange domain.DateRange) (*domain.ReportResult, error) {
	propertyID = strings.TrimSpace(propertyID)
	logger := s.logger.WithContext(ctx).WithFields(log.Fields{
		"property_id": propertyID,
		"start_date":  dateRange.StartString(),
		"end_date":    dateRange.EndString(),
	})

	if propertyID == "" {
		return nil, domain.NewFetchError(domain.ErrInvalidPropertyID, propertyID, "")
	}

	if err := dateRange.Validate(); err != nil {
		return nil, domain.NewFetchError(err, propertyID, "")
	}

	query := domain.NewTrafficSourcesQuery(propertyID, dateRange)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := client.RunReport(ctx, query)
	if err != nil {
		logger.WithError(err).Errorf("Error occurred: %s", propertyID)
		return nil, domain.NewFetchError(err, propertyID, describeAPIError(err))
	}

	result, err := FactoryReportResult(resp, query)
	if err != nil {
		logger.WithError(err).Error("report: failed to convert GA4 response")
		return nil, domain.NewFetchError(err, propertyID, "")
	}

	if result.IsEmpty() {
		logger.Warnf("GA_PROPERTY_ID %s is valid but returned no data.", propertyID)
	} else {
		logger.WithField("row_count", len(result.Rows)).Infof("GA_PROPERTY_ID %s is valid and returned data.", propertyID)
	}

	return result, nil
}

func describeAPIError(err error) string {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return ""
	}

	switch apiErr.Code {
	case http.StatusBadRequest:
		return "request rejected by GA4, check property id and field names"
	case http.StatusUnauthorized, http.StatusForbidden:
		return "service account is not allowed to read this property"
	case http.StatusTooManyRequests:
		return "GA4 quota exhausted"
	default:
		return ""
	}
}
