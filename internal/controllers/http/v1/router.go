package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "seasonal-weather-api/docs"
	"seasonal-weather-api/internal/models"
	"seasonal-weather-api/internal/services/seasonal"
	"seasonal-weather-api/pkg/observe"
)

type routes struct {
	service Predictor
	l       *observe.Logger
}

// Predictor is the part of the seasonal service the handlers need.
type Predictor interface {
	Predict(ctx context.Context, region string) (models.Prediction, error)
	Regions() []string
}

var _ Predictor = (*seasonal.SeasonalService)(nil)

func NewRouter(
	app *fiber.App,
	service Predictor,
	l *observe.Logger,
) {
	r := &routes{
		service: service,
		l:       l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/predict", r.handlePredict)
	app.Get("/regions", r.handleRegions)
}
