package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"seasonal-weather-api/config"
	"seasonal-weather-api/internal/models"
	"seasonal-weather-api/internal/repositories"
	"seasonal-weather-api/internal/services/seasonal"
	"seasonal-weather-api/pkg/httpserver"
	"seasonal-weather-api/pkg/observe"
)

type mockPredictor struct {
	prediction models.Prediction
	err        error
	regions    []string
}

func (m *mockPredictor) Predict(ctx context.Context, region string) (models.Prediction, error) {
	if m.err != nil {
		return models.Prediction{}, m.err
	}
	p := m.prediction
	p.Region = region
	return p, nil
}

func (m *mockPredictor) Regions() []string {
	return m.regions
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func newTestApp(p Predictor) *fiber.App {
	app := httpserver.InitFiberServer("test-app")
	NewRouter(app, p, observe.NewNopLogger())
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp, out
}

func TestHandlePredict_Success(t *testing.T) {
	app := newTestApp(&mockPredictor{prediction: models.Prediction{
		PredictDate:   "04월 18일 예측",
		Temperature:   models.ReadingOf(11),
		Precipitation: models.Reading{},
		WindSpeed:     models.ReadingOf(6.28),
	}})

	resp, body := doGet(t, app, "/predict?region=buyeo")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(httpserver.RequestIDHeader))
	assert.Equal(t, map[string]any{
		"region":        "buyeo",
		"predict_date":  "04월 18일 예측",
		"temperature":   float64(11),
		"precipitation": "데이터 없음",
		"windspeed":     6.28,
	}, body)
}

func TestHandlePredict_DomainErrorsAre200(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unsupported city",
			err:  errors.WithStack(&seasonal.UnsupportedCityError{City: "seoul"}),
			want: "seoul은 지원하지 않는 도시입니다.",
		},
		{
			name: "missing directory",
			err:  errors.WithStack(&repositories.NotFoundError{Path: "data/buyeo", IsDir: true}),
			want: "도시 폴더가 없습니다: data/buyeo",
		},
		{
			name: "schema",
			err:  errors.WithStack(&seasonal.SchemaError{Column: models.ColumnDate}),
			want: "CSV에 '일시' 컬럼이 없습니다.",
		},
		{
			name: "catch-all",
			err:  errors.New("disk on fire"),
			want: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockPredictor{err: tt.err})

			resp, body := doGet(t, app, "/predict?region=seoul")

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, map[string]any{"error": tt.want}, body)
		})
	}
}

func TestHandlePredict_MissingRegion(t *testing.T) {
	app := newTestApp(&mockPredictor{})

	resp, body := doGet(t, app, "/predict")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required parameter: region", body["error"])
}

func TestHandlePredict_CORS(t *testing.T) {
	app := newTestApp(&mockPredictor{})

	req := httptest.NewRequest(http.MethodGet, "/predict?region=buyeo", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestHandlePredict_EmptyRegionReachesService(t *testing.T) {
	app := newTestApp(&mockPredictor{err: errors.WithStack(&seasonal.UnsupportedCityError{City: ""})})

	resp, body := doGet(t, app, "/predict?region=")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "은 지원하지 않는 도시입니다."}, body)
}

func TestHandleRegions(t *testing.T) {
	app := newTestApp(&mockPredictor{regions: []string{"boryeong", "buyeo"}})

	resp, body := doGet(t, app, "/regions")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"boryeong", "buyeo"}, body["regions"])
}

func TestClassify(t *testing.T) {
	assert.Equal(t, observe.OutcomeSuccess, classify(nil))
	assert.Equal(t, observe.OutcomeUnsupported, classify(errors.WithStack(&seasonal.UnsupportedCityError{})))
	assert.Equal(t, observe.OutcomeNotFound, classify(errors.WithStack(&repositories.NotFoundError{})))
	assert.Equal(t, observe.OutcomeSchema, classify(errors.WithStack(&seasonal.SchemaError{})))
	assert.Equal(t, observe.OutcomeFailure, classify(&repositories.ParseError{Err: io.ErrUnexpectedEOF}))
}

// End to end through the CSV repository and the seasonal service.
func TestPredict_EndToEnd(t *testing.T) {
	root := t.TempDir()
	csvBody := "지점,일시,평균기온(°C),1시간 최다강수량(mm),최대 순간 풍속(m/s)\n" +
		"236,2022-04-18,10.0,,5.0\n" +
		"236,2023-04-18,12.0,,7.0\n" +
		"236,2024-04-18,,,\n" +
		"236,2024-04-19,30.0,3.0,9.0\n"
	encoded, err := korean.EUCKR.NewEncoder().String(csvBody)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "buyeo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "buyeo", "buyeo_20222025.csv"), []byte(encoded), 0o644))

	noDate, err := korean.EUCKR.NewEncoder().String("날짜,평균기온(°C)\n2023-04-18,1\n")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "seosan"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "seosan", "seosan_20222025.csv"), []byte(noDate), 0o644))

	cfg := &config.Config{
		DataDir:     root,
		FileSuffix:  "_20222025.csv",
		CSVEncoding: config.EncodingEUCKR,
		Cities:      []string{"boryeong", "buyeo", "cheonan", "geumsan", "seosan"},
	}
	l := observe.NewNopLogger()
	clock := fixedClock(time.Date(2025, time.April, 18, 12, 0, 0, 0, time.UTC))
	service := seasonal.NewSeasonalService(
		models.NewCityRegistry(cfg.Cities),
		repositories.InitClimateRepository(cfg, l),
		clock,
		l,
	)
	app := newTestApp(service)

	_, body := doGet(t, app, "/predict?region=buyeo")
	assert.Equal(t, map[string]any{
		"region":        "buyeo",
		"predict_date":  "04월 18일 예측",
		"temperature":   float64(11),
		"precipitation": "데이터 없음",
		"windspeed":     float64(6),
	}, body)

	// same static file, same day, same answer
	_, again := doGet(t, app, "/predict?region=buyeo")
	assert.Equal(t, body, again)

	_, body = doGet(t, app, "/predict?region=seoul")
	assert.Equal(t, map[string]any{"error": "seoul은 지원하지 않는 도시입니다."}, body)

	resp, body := doGet(t, app, "/predict?region=")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "은 지원하지 않는 도시입니다."}, body)

	_, body = doGet(t, app, "/predict?region=cheonan")
	assert.Equal(t, map[string]any{"error": "도시 폴더가 없습니다: " + filepath.Join(root, "cheonan")}, body)

	_, body = doGet(t, app, "/predict?region=seosan")
	assert.Equal(t, map[string]any{"error": "CSV에 '일시' 컬럼이 없습니다."}, body)
}
