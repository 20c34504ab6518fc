package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/BuKarData/inkframe/internal/dashboard"
	"github.com/BuKarData/inkframe/internal/font"
	"github.com/BuKarData/inkframe/internal/locale"
	"github.com/BuKarData/inkframe/internal/render"
	"github.com/BuKarData/inkframe/internal/server"
	"github.com/BuKarData/inkframe/internal/store"
	"github.com/BuKarData/inkframe/internal/weather"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	var (
		addr       = flag.String("addr", envOr("INKFRAME_ADDR", ":8080"), "listen address")
		dbPath     = flag.String("db", envOr("INKFRAME_DB", "inkframe.db"), "sqlite database path")
		weatherURL = flag.String("weather-url", envOr("INKFRAME_WEATHER_URL", "https://api.open-meteo.com"), "weather API base URL")
		lat        = flag.Float64("lat", 52.23, "dashboard latitude")
		lon        = flag.Float64("lon", 21.01, "dashboard longitude")
		units      = flag.String("units", envOr("INKFRAME_UNITS", "metric"), "unit system, metric or imperial")
		lang       = flag.String("lang", envOr("INKFRAME_LANG", "en"), "dashboard locale")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := store.Open(*dbPath)
	if err != nil {
		slog.Error("Couldn't open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	fonts := font.NewTable()
	srv := &server.Server{
		Images:   &store.ImageRepository{Db: db},
		Devices:  &store.DeviceRepository{Db: db},
		Pipeline: render.NewPipeline(fonts),
		Composer: dashboard.NewComposer(fonts, locale.NewTable()),
		Weather:  weather.NewClient(*weatherURL, weather.NewCache(15*time.Minute)),
		Config: server.Config{
			Latitude:  *lat,
			Longitude: *lon,
			Units:     *units,
			Lang:      *lang,
		},
	}

	slog.Info("Starting server", "addr", *addr, "db", *dbPath)
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
