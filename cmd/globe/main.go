// Command globe shows campaign activities on an interactive globe and
// flat world map.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/campaign-globe/internal/config"
	"github.com/elektrokombinacija/campaign-globe/internal/core"
	"github.com/elektrokombinacija/campaign-globe/internal/dataset"
	"github.com/elektrokombinacija/campaign-globe/internal/locate"
	"github.com/elektrokombinacija/campaign-globe/internal/logging"
	"github.com/elektrokombinacija/campaign-globe/internal/vis"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/interact"
	"github.com/elektrokombinacija/campaign-globe/internal/vis/state"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: $GLOBE_CONFIG or ./globe.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.Init(cfg.Logging)

	world, err := dataset.LoadWorld(cfg.Data.WorldPath, logging.Component("dataset"))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load world geometry")
	}
	countries, err := dataset.LoadCountries(cfg.Data.CountriesPath)
	if err != nil {
		log.Warn().Err(err).Msg("country records unavailable")
	}

	src := activitySource(cfg.Data)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Data.RequestTimeout)
	acts, err := src.Activities(ctx)
	cancel()
	if err != nil {
		log.Warn().Err(err).Str("source", src.Name()).Msg("starting without activities")
	}

	mode, _ := core.ParseMode(cfg.Window.Mode)
	engine := state.NewEngine(engineConfig(cfg.Map), mode, logging.Component("engine"))
	st := state.NewState(world, acts, countries, engine)
	log.Info().
		Int("countries", world.Len()).
		Int("activities", len(st.Activities)).
		Stringer("mode", mode).
		Msg("globe ready")

	loc, closer, err := locator(cfg.Locate)
	var requester *locate.Requester
	if err != nil {
		log.Warn().Err(err).Str("provider", cfg.Locate.Provider).Msg("location disabled")
	} else {
		requester = locate.NewRequester(loc, cfg.Locate.Timeout, logging.Component("locate"))
	}

	bg, stop := context.WithCancel(context.Background())
	var updates chan []core.Activity
	if cfg.Data.RefreshInterval > 0 {
		updates = make(chan []core.Activity, 1)
		r := &dataset.Refresher{Source: src, Interval: cfg.Data.RefreshInterval, Log: logging.Component("refresh")}
		go r.Run(bg, updates)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title(cfg.Window.Title),
			app.Size(unit.Dp(float32(cfg.Window.Width)), unit.Dp(float32(cfg.Window.Height))),
		)

		application := vis.NewApp(st, requester, updates, vis.Options{
			MessageTTL:   cfg.Locate.MessageTTL,
			LocateZoom:   cfg.Locate.FlatZoom,
			LabelMinArea: cfg.Map.LabelMinArea,
		}, logging.Component("app"))
		err := application.Run(window)

		stop()
		if closer != nil {
			closer.Close()
		}
		if err != nil {
			log.Fatal().Err(err).Msg("window closed with error")
		}
		os.Exit(0)
	}()
	app.Main()
}

func engineConfig(m config.MapConfig) state.Config {
	return state.Config{
		MaxZoom:            m.MaxZoom,
		FlatDefaultZoom:    m.FlatDefaultZoom,
		FocusFill:          m.FocusFill,
		TransitionDuration: m.TransitionDuration,
		ZoomStep:           m.ZoomStep,
		ZoomDuration:       m.ZoomDuration,
		AmbientSpeed:       m.AmbientSpeed,
		ManualSpeed:        m.ManualSpeed,
		ResizeDebounce:     m.ResizeDebounce,
		Gestures: interact.Config{
			DragSensitivity:  m.DragSensitivity,
			WheelSensitivity: m.WheelSensitivity,
			TapSlop:          m.TapSlop,
		},
	}
}

// activitySource reads the local file, preferring the remote feed when
// one is configured.
func activitySource(d config.DataConfig) dataset.Source {
	file := &dataset.FileSource{Path: d.ActivitiesPath, Log: logging.Component("dataset")}
	if d.ActivitiesURL == "" {
		return file
	}
	feed := dataset.NewHTTPSource(d.ActivitiesURL, d.ActivitiesAPIKey, d.RequestTimeout, logging.Component("feed"))
	return &dataset.FallbackSource{Primary: feed, Secondary: file, Log: logging.Component("dataset")}
}

func locator(l config.LocateConfig) (locate.Locator, io.Closer, error) {
	switch l.Provider {
	case "http":
		return &locate.HTTP{URL: l.URL}, nil, nil
	case "geoip":
		g, err := locate.OpenGeoIP(l.GeoIPDB, l.IP)
		if err != nil {
			return nil, nil, err
		}
		return g, g, nil
	default:
		return locate.Static{Position: locate.Position{Lat: l.Lat, Lon: l.Lon}}, nil, nil
	}
}
