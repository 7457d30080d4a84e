package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seasonal-weather-api/config"
	v1 "seasonal-weather-api/internal/controllers/http/v1"
	"seasonal-weather-api/internal/models"
	"seasonal-weather-api/internal/repositories"
	"seasonal-weather-api/internal/services/seasonal"
	"seasonal-weather-api/pkg/httpserver"
	"seasonal-weather-api/pkg/observe"
)

// @title Seasonal Weather API
// @version 1.0.0
// @description Averages historical weather observations recorded on today's calendar date for a fixed set of cities.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Predict
// @tag.description Seasonal climatology lookup
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	loc, err := cnf.Location()
	if err != nil {
		panic(err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.ReportsToSentry() {
		hook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.SentryDSN, cnf.LogLevel == "debug", loc)
		writers = append(writers, hook)
	}

	l := observe.NewZapLogger(cnf.AppName, cnf.AppEnv, cnf.LogLevel, loc, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	app := httpserver.InitFiberServer(cnf.AppName)

	repo := repositories.InitClimateRepository(cnf, l)

	service := seasonal.NewSeasonalService(
		models.NewCityRegistry(cnf.Cities),
		repo,
		seasonal.LocationClock{Loc: loc},
		l,
	)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Port,
		"version":  cnf.AppVersion,
		"data_dir": cnf.DataDir,
		"timezone": loc.String(),
		"regions":  service.Regions(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
