package seasonal

import (
	"fmt"

	"seasonal-weather-api/internal/models"
)

// UnsupportedCityError is returned for a region outside the registry.
type UnsupportedCityError struct {
	City string
}

func (e *UnsupportedCityError) Error() string {
	return fmt.Sprintf("%s은 지원하지 않는 도시입니다.", e.City)
}

// SchemaError is returned when the table has no date column.
type SchemaError struct {
	Column models.Column
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("CSV에 '%s' 컬럼이 없습니다.", e.Column)
}
