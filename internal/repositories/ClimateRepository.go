package repositories

import (
	"context"

	"seasonal-weather-api/config"
	"seasonal-weather-api/internal/models"
	"seasonal-weather-api/pkg/observe"
)

// ClimateRepository loads the historical daily table of one city.
type ClimateRepository interface {
	Name() string
	LoadTable(ctx context.Context, city string) (*models.WeatherTable, error)
}

func InitClimateRepository(cfg *config.Config, l *observe.Logger) ClimateRepository {
	return NewCSVRepository(CSVOptions{
		DataDir:    cfg.DataDir,
		FileSuffix: cfg.FileSuffix,
		Encoding:   cfg.CSVEncoding,
	}, l)
}
