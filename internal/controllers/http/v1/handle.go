package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"seasonal-weather-api/internal/models"
	"seasonal-weather-api/internal/repositories"
	"seasonal-weather-api/internal/services/seasonal"
	"seasonal-weather-api/pkg/httpserver"
	"seasonal-weather-api/pkg/observe"
)

// PredictResponse documents the success payload. Weather fields are a number or "데이터 없음".
type PredictResponse = models.Prediction

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"seoul은 지원하지 않는 도시입니다."`
}

// RegionsResponse lists the supported city ids
type RegionsResponse struct {
	Regions []string `json:"regions" example:"boryeong,buyeo,cheonan,geumsan,seosan"`
}

// handlePredict godoc
// @Summary Seasonal average for today
// @Description Averages temperature, precipitation and wind speed recorded on today's month-day across all years of the city's CSV.
// @Description Domain errors (unsupported city, missing data file, bad CSV) are returned as {"error": "..."} with status 200.
// @Tags Predict
// @Produce json
// @Param region query string true "City id" Enums(boryeong, buyeo, cheonan, geumsan, seosan)
// @Success 200 {object} PredictResponse "Prediction, or ErrorResponse on a domain error"
// @Failure 400 {object} ErrorResponse "Missing region parameter"
// @Router /predict [get]
func (r *routes) handlePredict(c *fiber.Ctx) error {
	start := time.Now()

	// an empty value is still a city id and gets the unsupported-city answer
	if !c.Context().QueryArgs().Has("region") {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: region",
		})
	}

	region := c.Query("region")
	prediction, err := r.service.Predict(c.UserContext(), region)
	outcome := classify(err)

	observe.PredictRequestsTotal.WithLabelValues(metricRegion(outcome, region), outcome).Inc()
	observe.PredictDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		fields := map[string]any{
			"region":     region,
			"outcome":    outcome,
			"request_id": httpserver.RequestID(c),
		}
		if outcome == observe.OutcomeFailure {
			r.l.Error(err, fields)
		} else {
			fields["err"] = err
			r.l.Warning("predict request failed", fields)
		}

		return c.JSON(ErrorResponse{Error: err.Error()})
	}

	r.l.Info("predict request served", map[string]any{
		"params":     prediction.RequestParams(),
		"request_id": httpserver.RequestID(c),
	})

	return c.JSON(prediction)
}

// handleRegions godoc
// @Summary Supported regions
// @Tags Predict
// @Produce json
// @Success 200 {object} RegionsResponse
// @Router /regions [get]
func (r *routes) handleRegions(c *fiber.Ctx) error {
	return c.JSON(RegionsResponse{Regions: r.service.Regions()})
}

func classify(err error) string {
	var (
		unsupported *seasonal.UnsupportedCityError
		schema      *seasonal.SchemaError
		notFound    *repositories.NotFoundError
	)
	switch {
	case err == nil:
		return observe.OutcomeSuccess
	case errors.As(err, &unsupported):
		return observe.OutcomeUnsupported
	case errors.As(err, &notFound):
		return observe.OutcomeNotFound
	case errors.As(err, &schema):
		return observe.OutcomeSchema
	default:
		return observe.OutcomeFailure
	}
}

// metricRegion keeps arbitrary user input out of label values.
func metricRegion(outcome, region string) string {
	if outcome == observe.OutcomeUnsupported {
		return "unsupported"
	}
	return region
}
