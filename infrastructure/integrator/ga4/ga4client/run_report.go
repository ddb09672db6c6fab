package ga4client

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

func NewRunReportRequest(query domain.ReportQuery) *analyticsdata.RunReportRequest {
	metrics := make([]*analyticsdata.Metric, 0, len(query.Metrics))
	for _, name := range query.Metrics {
		metrics = append(metrics, &analyticsdata.Metric{Name: name})
	}

	dimensions := make([]*analyticsdata.Dimension, 0, len(query.Dimensions))
	for _, name := range query.Dimensions {
		dimensions = append(dimensions, &analyticsdata.Dimension{Name: name})
	}

	return &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{
				StartDate: query.DateRange.StartString(),
				EndDate:   query.DateRange.EndString(),
			},
		},
		Metrics:    metrics,
		Dimensions: dimensions,
	}
}

func (c *GA4Client) RunReport(ctx context.Context, query domain.ReportQuery) (*analyticsdata.RunReportResponse, error) {
	resp, err := c.service.Properties.RunReport(query.Property(), NewRunReportRequest(query)).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "ga4: run report for %s", query.Property())
	}

	return resp, nil
}
