package models

// Column is a CSV header label as published in the source data.
type Column string

const (
	ColumnDate          Column = "일시"
	ColumnTemperature   Column = "평균기온(°C)"
	ColumnPrecipitation Column = "1시간 최다강수량(mm)"
	ColumnWindSpeed     Column = "최대 순간 풍속(m/s)"
)

// MeasurementColumns are the numeric columns parsed into every Observation.
var MeasurementColumns = []Column{ColumnTemperature, ColumnPrecipitation, ColumnWindSpeed}

// DateKeyLayout formats a time into the same shape as Observation.DateKey.
const DateKeyLayout = "01-02"

// Observation is one daily row. A nil value means the cell was empty.
type Observation struct {
	Date   string
	Values map[Column]*float64
}

// Value returns the parsed cell for col, nil when empty or not a parsed column.
func (o Observation) Value(col Column) *float64 {
	return o.Values[col]
}

// DateKey drops the leading "YYYY-" of the stored date, e.g. "2023-04-18" -> "04-18".
func (o Observation) DateKey() string {
	if len(o.Date) < 5 {
		return ""
	}
	return o.Date[5:]
}

// WeatherTable is the parsed content of one city CSV. It lives for a single request.
type WeatherTable struct {
	HasDate      bool
	Columns      map[Column]bool
	Observations []Observation
}

// HasColumn reports whether col was present in the CSV header.
func (t *WeatherTable) HasColumn(col Column) bool {
	return t.Columns[col]
}

// FilterByDateKey returns the observations whose DateKey equals key.
func FilterByDateKey(data []Observation, key string) []Observation {
	var out []Observation
	for _, o := range data {
		if o.DateKey() == key {
			out = append(out, o)
		}
	}
	return out
}
