package seasonal

import (
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"seasonal-weather-api/internal/models"
)

// Clock is the source of "today".
type Clock interface {
	Now() time.Time
}

// LocationClock reads wall-clock time in a fixed location.
type LocationClock struct {
	Loc *time.Location
}

func (c LocationClock) Now() time.Time {
	if c.Loc == nil {
		return time.Now()
	}
	return time.Now().In(c.Loc)
}

// Average returns the mean of column over the rows recorded on now's month-day in
// any year, rounded to 2 decimals. A nil result means no data: no row matched,
// the column is absent, or every matched cell was empty.
func Average(table *models.WeatherTable, column models.Column, now time.Time) (*float64, error) {
	if table == nil || !table.HasDate {
		return nil, errors.WithStack(&SchemaError{Column: models.ColumnDate})
	}

	day := models.FilterByDateKey(table.Observations, now.Format(models.DateKeyLayout))
	if len(day) == 0 || !table.HasColumn(column) {
		return nil, nil
	}

	var sum float64
	var n int
	for _, o := range day {
		v := o.Value(column)
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil, nil
	}

	mean := round2(sum / float64(n))
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, nil
	}
	return &mean, nil
}

// round2 rounds the exact decimal value of v, ties to even, so 0.125 -> 0.12.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
