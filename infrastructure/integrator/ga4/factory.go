package ga4

import (
	"fmt"

	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

// FactoryReportResult converte a resposta da Data API em domain.ReportResult.
// Cada linha precisa ter exatamente os valores pedidos na consulta, na mesma ordem.
func FactoryReportResult(resp *analyticsdata.RunReportResponse, query domain.ReportQuery) (*domain.ReportResult, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", domain.ErrMalformedResponse)
	}

	rows := make([]domain.ReportRow, 0, len(resp.Rows))
	for i, row := range resp.Rows {
		if row == nil {
			return nil, fmt.Errorf("%w: row %d is null", domain.ErrMalformedResponse, i)
		}

		if len(row.DimensionValues) != len(query.Dimensions) || len(row.MetricValues) != len(query.Metrics) {
			return nil, fmt.Errorf("%w: row %d has %d dimensions and %d metrics, expected %d and %d",
				domain.ErrMalformedResponse, i,
				len(row.DimensionValues), len(row.MetricValues),
				len(query.Dimensions), len(query.Metrics))
		}

		reportRow := domain.ReportRow{
			DimensionValues: make([]string, len(row.DimensionValues)),
			MetricValues:    make([]string, len(row.MetricValues)),
		}
		for j, value := range row.DimensionValues {
			if value != nil {
				reportRow.DimensionValues[j] = value.Value
			}
		}
		for j, value := range row.MetricValues {
			if value != nil {
				reportRow.MetricValues[j] = value.Value
			}
		}

		rows = append(rows, reportRow)
	}

	rowCount := resp.RowCount
	if rowCount == 0 {
		rowCount = int64(len(rows))
	}

	return &domain.ReportResult{
		Rows:     rows,
		RowCount: rowCount,
	}, nil
}
