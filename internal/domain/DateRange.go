package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/ga4-traffic-export/pkg/utils"
)

// DefaultWindowDays é o tamanho da janela padrão, contada a partir de ontem
const DefaultWindowDays = 30

type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: utils.TruncateToDay(start),
		End:   utils.TruncateToDay(end),
	}
}

// DefaultDateRange retorna a janela de ontem - 30 dias até ontem, relativa a today
func DefaultDateRange(today time.Time) DateRange {
	end := utils.TruncateToDay(today).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -DefaultWindowDays)

	return DateRange{Start: start, End: end}
}

func (d DateRange) Validate() error {
	if d.Start.IsZero() || d.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidDateRange)
	}

	if d.Start.After(d.End) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange, d.StartString(), d.EndString())
	}

	return nil
}

func (d DateRange) StartString() string {
	return d.Start.Format(time.DateOnly)
}

func (d DateRange) EndString() string {
	return d.End.Format(time.DateOnly)
}

func (d DateRange) String() string {
	return fmt.Sprintf("%s to %s", d.StartString(), d.EndString())
}

// ResolveDateRange monta o período efetivo da execução.
// Datas ausentes são preenchidas pela janela padrão; datas mal formadas
// ou um início posterior ao fim resultam em ConfigError.
// Datas explícitas são lidas no fuso de today, o mesmo da janela padrão.
func ResolveDateRange(startDate, endDate string, today time.Time) (DateRange, error) {
	dateRange := DefaultDateRange(today)

	if startDate != "" {
		start, err := utils.ParseDateInLocation(startDate, today.Location())
		if err != nil {
			return DateRange{}, NewConfigError(ErrInvalidDate, "start_date", fmt.Sprintf("expected YYYY-MM-DD, got %q", startDate))
		}
		dateRange.Start = start
	}

	if endDate != "" {
		end, err := utils.ParseDateInLocation(endDate, today.Location())
		if err != nil {
			return DateRange{}, NewConfigError(ErrInvalidDate, "end_date", fmt.Sprintf("expected YYYY-MM-DD, got %q", endDate))
		}
		dateRange.End = end
	}

	if err := dateRange.Validate(); err != nil {
		return DateRange{}, NewConfigError(err, "date_range", "")
	}

	return dateRange, nil
}
