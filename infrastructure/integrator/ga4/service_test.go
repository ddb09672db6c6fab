package ga4

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ga4-traffic-export/infrastructure/integrator/ga4/ga4client/mocks"
	"github.com/vfg2006/ga4-traffic-export/internal/config"
	"github.com/vfg2006/ga4-traffic-export/internal/domain"
	"github.com/vfg2006/ga4-traffic-export/pkg/log"
	"go.uber.org/mock/gomock"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/googleapi"
)

func apiRow(dimensions []string, metrics []string) *analyticsdata.Row {
	row := &analyticsdata.Row{}
	for _, v := range dimensions {
		row.DimensionValues = append(row.DimensionValues, &analyticsdata.DimensionValue{Value: v})
	}
	for _, v := range metrics {
		row.MetricValues = append(row.MetricValues, &analyticsdata.MetricValue{Value: v})
	}
	return row
}

func TestGA4Integrator_FetchReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	dateRange := domain.NewDateRange(
		time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
	)
	expectedQuery := domain.NewTrafficSourcesQuery("354503001", dateRange)

	tests := []struct {
		name       string
		propertyID string
		dateRange  domain.DateRange
		setup      func()
		validate   func(t *testing.T, result *domain.ReportResult, err error, hook *test.Hook)
	}{
		{
			name:       "Resposta com linhas - deve traduzir para ReportResult",
			propertyID: "354503001",
			dateRange:  dateRange,
			setup: func() {
				mockClient.EXPECT().
					RunReport(gomock.Any(), expectedQuery).
					Return(&analyticsdata.RunReportResponse{
						Rows: []*analyticsdata.Row{
							apiRow([]string{"20240301", "Organic Search", "Brazil"}, []string{"10", "7", "0.7"}),
							apiRow([]string{"20240302", "Direct", "India"}, []string{"4", "1", "0.25"}),
						},
						RowCount: 2,
					}, nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, hook *test.Hook) {
				require.NoError(t, err)
				require.Len(t, result.Rows, 2)
				assert.Equal(t, int64(2), result.RowCount)
				assert.Equal(t, []string{"20240301", "Organic Search", "Brazil"}, result.Rows[0].DimensionValues)
				assert.Equal(t, []string{"4", "1", "0.25"}, result.Rows[1].MetricValues)

				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
				assert.Equal(t, 2, hook.LastEntry().Data["row_count"])
			},
		},
		{
			name:       "Resposta sem linhas - resultado vazio e aviso, sem erro",
			propertyID: "354503001",
			dateRange:  dateRange,
			setup: func() {
				mockClient.EXPECT().
					RunReport(gomock.Any(), expectedQuery).
					Return(&analyticsdata.RunReportResponse{}, nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, hook *test.Hook) {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Empty(t, result.Rows)
				assert.NotNil(t, result.Rows)

				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
				assert.Contains(t, hook.LastEntry().Message, "returned no data")
			},
		},
		{
			name:       "Erro da API - FetchError com a causa",
			propertyID: "354503001",
			dateRange:  dateRange,
			setup: func() {
				mockClient.EXPECT().
					RunReport(gomock.Any(), gomock.Any()).
					Return(nil, &googleapi.Error{Code: http.StatusForbidden, Message: "permission denied"})
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, hook *test.Hook) {
				assert.Nil(t, result)
				require.Error(t, err)
				assert.True(t, domain.IsFetchError(err))

				var apiErr *googleapi.Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusForbidden, apiErr.Code)
				assert.Contains(t, err.Error(), "not allowed to read this property")

				assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
			},
		},
		{
			name:       "Erro de rede - FetchError",
			propertyID: "354503001",
			dateRange:  dateRange,
			setup: func() {
				mockClient.EXPECT().
					RunReport(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("dial tcp: connection refused")).
					Times(1)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, _ *test.Hook) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrFetch)
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
		{
			name:       "Linha com quantidade errada de valores - FetchError",
			propertyID: "354503001",
			dateRange:  dateRange,
			setup: func() {
				mockClient.EXPECT().
					RunReport(gomock.Any(), gomock.Any()).
					Return(&analyticsdata.RunReportResponse{
						Rows: []*analyticsdata.Row{apiRow([]string{"20240301"}, []string{"10"})},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, _ *test.Hook) {
				assert.Nil(t, result)
				assert.True(t, domain.IsFetchError(err))
				assert.ErrorIs(t, err, domain.ErrMalformedResponse)
			},
		},
		{
			name:       "Resposta nula - FetchError",
			propertyID: "354503001",
			dateRange:  dateRange,
			setup: func() {
				mockClient.EXPECT().
					RunReport(gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, _ *test.Hook) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrMalformedResponse)
			},
		},
		{
			name:       "Property vazia - não chama a API",
			propertyID: "  ",
			dateRange:  dateRange,
			setup: func() {
				mockClient.EXPECT().RunReport(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, _ *test.Hook) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrInvalidPropertyID)
				assert.True(t, domain.IsFetchError(err))
			},
		},
		{
			name:       "Período invertido - não chama a API",
			propertyID: "354503001",
			dateRange:  domain.DateRange{Start: dateRange.End, End: dateRange.Start},
			setup: func() {
				mockClient.EXPECT().RunReport(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, result *domain.ReportResult, err error, _ *test.Hook) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, hook := test.NewNullLogger()
			integrator := New(&config.Config{GA4: config.GA4{RequestTimeout: time.Second}}, log.FromLogrus(base))

			tt.setup()
			result, err := integrator.FetchReport(context.Background(), mockClient, tt.propertyID, tt.dateRange)
			tt.validate(t, result, err, hook)
		})
	}
}

func TestGA4Integrator_FetchReport_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		RunReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.ReportQuery) (*analyticsdata.RunReportResponse, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
			return &analyticsdata.RunReportResponse{}, nil
		})

	base, _ := test.NewNullLogger()
	integrator := New(&config.Config{GA4: config.GA4{RequestTimeout: 5 * time.Second}}, log.FromLogrus(base))

	dateRange := domain.DefaultDateRange(time.Now())
	_, err := integrator.FetchReport(context.Background(), mockClient, "354503001", dateRange)
	require.NoError(t, err)
}

func TestFactoryReportResult_NilValues(t *testing.T) {
	query := domain.NewTrafficSourcesQuery("1", domain.DefaultDateRange(time.Now()))
	resp := &analyticsdata.RunReportResponse{
		Rows: []*analyticsdata.Row{
			{
				DimensionValues: []*analyticsdata.DimensionValue{{Value: "20240301"}, nil, {Value: "Brazil"}},
				MetricValues:    []*analyticsdata.MetricValue{{Value: "1"}, {Value: "1"}, {Value: "1"}},
			},
		},
	}

	result, err := FactoryReportResult(resp, query)

	require.NoError(t, err)
	assert.Equal(t, []string{"20240301", "", "Brazil"}, result.Rows[0].DimensionValues)
	assert.Equal(t, int64(1), result.RowCount)
}
