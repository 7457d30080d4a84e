package seasonal

import (
	"context"

	"github.com/pkg/errors"

	"seasonal-weather-api/internal/models"
	"seasonal-weather-api/internal/repositories"
	"seasonal-weather-api/pkg/observe"
)

// SeasonalService answers "what is this calendar day usually like" for a registered city.
// It keeps no state between calls.
type SeasonalService struct {
	cities models.CityRegistry
	repo   repositories.ClimateRepository
	clock  Clock
	l      *observe.Logger
}

func NewSeasonalService(cities models.CityRegistry, repo repositories.ClimateRepository, clock Clock, l *observe.Logger) *SeasonalService {
	return &SeasonalService{
		cities: cities,
		repo:   repo,
		clock:  clock,
		l:      l,
	}
}

// Regions lists the supported city ids in registry order.
func (s *SeasonalService) Regions() []string {
	return s.cities.Cities()
}

// Predict loads the region's table and averages each measurement for today's month-day.
// Each field falls back to no data on its own.
func (s *SeasonalService) Predict(ctx context.Context, region string) (models.Prediction, error) {
	if !s.cities.Contains(region) {
		return models.Prediction{}, errors.WithStack(&UnsupportedCityError{City: region})
	}

	now := s.clock.Now()
	prediction := models.Prediction{
		Region:      region,
		PredictDate: models.PredictDateLabel(now),
	}

	table, err := s.repo.LoadTable(ctx, region)
	if err != nil {
		return models.Prediction{}, err
	}

	readings := make(map[models.Column]models.Reading, len(models.MeasurementColumns))
	for _, col := range models.MeasurementColumns {
		v, err := Average(table, col, now)
		if err != nil {
			return models.Prediction{}, err
		}
		readings[col] = models.NewReading(v)
	}

	prediction.Temperature = readings[models.ColumnTemperature]
	prediction.Precipitation = readings[models.ColumnPrecipitation]
	prediction.WindSpeed = readings[models.ColumnWindSpeed]

	s.l.Debug("seasonal prediction computed", map[string]any{
		"params":     prediction.RequestParams(),
		"repository": s.repo.Name(),
		"rows":       len(table.Observations),
	})

	return prediction, nil
}
