package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/ga4-traffic-export/pkg/utils"
)

// Posições das dimensões na consulta e em cada linha do resultado
const (
	DimensionDate = iota
	DimensionChannel
	DimensionCountry
)

// Posições das métricas na consulta e em cada linha do resultado
const (
	MetricSessions = iota
	MetricEngagedSessions
	MetricEngagementRate
)

// TrafficSourcesDimensions e TrafficSourcesMetrics seguem as posições acima.
// Qualquer reordenação precisa ser refletida em NewCSVRecord.
var (
	TrafficSourcesDimensions = []string{
		DimensionDate:    "date",
		DimensionChannel: "sessionDefaultChannelGrouping",
		DimensionCountry: "country",
	}

	TrafficSourcesMetrics = []string{
		MetricSessions:        "sessions",
		MetricEngagedSessions: "engagedSessions",
		MetricEngagementRate:  "engagementRate",
	}
)

// CSVHeader é o cabeçalho fixo do arquivo exportado
var CSVHeader = []string{"Date", "Source", "Country", "Sessions", "Engaged Sessions", "Engagement Rate (%)"}

type ReportQuery struct {
	PropertyID string
	DateRange  DateRange
	Metrics    []string
	Dimensions []string
}

func NewTrafficSourcesQuery(propertyID string, dateRange DateRange) ReportQuery {
	metrics := make([]string, len(TrafficSourcesMetrics))
	copy(metrics, TrafficSourcesMetrics)

	dimensions := make([]string, len(TrafficSourcesDimensions))
	copy(dimensions, TrafficSourcesDimensions)

	return ReportQuery{
		PropertyID: strings.TrimSpace(propertyID),
		DateRange:  dateRange,
		Metrics:    metrics,
		Dimensions: dimensions,
	}
}

// Property retorna o nome do recurso no formato properties/<id>
func (q ReportQuery) Property() string {
	if strings.HasPrefix(q.PropertyID, "properties/") {
		return q.PropertyID
	}
	return "properties/" + q.PropertyID
}

type ReportRow struct {
	DimensionValues []string
	MetricValues    []string
}

// ReportResult com zero linhas é um resultado válido
type ReportResult struct {
	Rows     []ReportRow
	RowCount int64
}

func (r *ReportResult) IsEmpty() bool {
	return r == nil || len(r.Rows) == 0
}

type CSVRecord struct {
	Date            string
	Channel         string
	Country         string
	Sessions        string
	EngagedSessions string
	EngagementRate  float64
}

// NewCSVRecord desempacota uma linha por posição e converte a taxa de engajamento em porcentagem
func NewCSVRecord(row ReportRow) (CSVRecord, error) {
	if len(row.DimensionValues) < len(TrafficSourcesDimensions) {
		return CSVRecord{}, fmt.Errorf("%w: expected %d dimension values, got %d",
			ErrMalformedRow, len(TrafficSourcesDimensions), len(row.DimensionValues))
	}

	if len(row.MetricValues) < len(TrafficSourcesMetrics) {
		return CSVRecord{}, fmt.Errorf("%w: expected %d metric values, got %d",
			ErrMalformedRow, len(TrafficSourcesMetrics), len(row.MetricValues))
	}

	rate, err := strconv.ParseFloat(row.MetricValues[MetricEngagementRate], 64)
	if err != nil {
		return CSVRecord{}, fmt.Errorf("%w: engagement rate %q: %v", ErrMalformedRow, row.MetricValues[MetricEngagementRate], err)
	}

	return CSVRecord{
		Date:            row.DimensionValues[DimensionDate],
		Channel:         row.DimensionValues[DimensionChannel],
		Country:         row.DimensionValues[DimensionCountry],
		Sessions:        row.MetricValues[MetricSessions],
		EngagedSessions: row.MetricValues[MetricEngagedSessions],
		EngagementRate:  utils.FractionToPercentage(rate),
	}, nil
}

// Fields retorna os campos na mesma ordem de CSVHeader
func (r CSVRecord) Fields() []string {
	return []string{
		r.Date,
		r.Channel,
		r.Country,
		r.Sessions,
		r.EngagedSessions,
		utils.FormatFloat(r.EngagementRate),
	}
}
