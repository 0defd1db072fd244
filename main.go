package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"github.com/optakt/rangelp/config"
	"github.com/optakt/rangelp/engine"
	"github.com/optakt/rangelp/position"
	"github.com/optakt/rangelp/report"
	"github.com/optakt/rangelp/scenario"
	"github.com/optakt/rangelp/write"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	var (
		configFile   string
		scenarioFile string
		logLevel     string
		workers      int

		lower    float64
		upper    float64
		entry    float64
		current  float64
		amount   float64
		withdraw float64

		gridSize int
		window   int

		influxURL         string
		influxToken       string
		influxOrg         string
		influxBucket      string
		influxMeasurement string
	)

	def := config.Default

	pflag.StringVarP(&configFile, "config", "f", "", "YAML configuration file")
	pflag.StringVarP(&scenarioFile, "scenarios", "s", "", "CSV file with named positions to evaluate instead of the flags")
	pflag.StringVar(&logLevel, "log-level", def.LogLevel, "log output level")
	pflag.IntVar(&workers, "workers", def.Workers, "maximum number of positions evaluated concurrently")

	pflag.Float64VarP(&lower, "lower", "l", def.Position.Lower, "lower bound of the price range")
	pflag.Float64VarP(&upper, "upper", "u", def.Position.Upper, "upper bound of the price range")
	pflag.Float64VarP(&entry, "entry", "e", def.Position.Entry, "price at which the position was entered")
	pflag.Float64VarP(&current, "current", "c", def.Position.Current, "current market price")
	pflag.Float64VarP(&amount, "amount", "a", def.Position.Amount, "initial base asset amount")
	pflag.Float64VarP(&withdraw, "withdraw", "w", def.Position.Withdraw, "hypothetical withdrawal price")

	pflag.IntVar(&gridSize, "grid-size", def.Engine.GridSize, "number of price samples across the range, at most 1048576")
	pflag.IntVar(&window, "window", def.Engine.Window, "samples on each side of the withdraw price for the tangent slope")

	pflag.StringVar(&influxURL, "influx-url", "", "InfluxDB server URL, empty disables the sink")
	pflag.StringVar(&influxToken, "influx-token", "", "InfluxDB authentication token")
	pflag.StringVar(&influxOrg, "influx-org", def.Influx.Org, "InfluxDB organization")
	pflag.StringVar(&influxBucket, "influx-bucket", def.Influx.Bucket, "InfluxDB bucket")
	pflag.StringVar(&influxMeasurement, "influx-measurement", def.Influx.Measurement, "InfluxDB measurement name")

	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Error().Err(err).Str("file", configFile).Msg("could not load configuration")
			return failure
		}
	}

	set := func(name string, apply func()) {
		if configFile == "" || pflag.CommandLine.Changed(name) {
			apply()
		}
	}
	set("log-level", func() { cfg.LogLevel = logLevel })
	set("workers", func() { cfg.Workers = workers })
	set("lower", func() { cfg.Position.Lower = lower })
	set("upper", func() { cfg.Position.Upper = upper })
	set("entry", func() { cfg.Position.Entry = entry })
	set("current", func() { cfg.Position.Current = current })
	set("amount", func() { cfg.Position.Amount = amount })
	set("withdraw", func() { cfg.Position.Withdraw = withdraw })
	set("grid-size", func() { cfg.Engine.GridSize = gridSize })
	set("window", func() { cfg.Engine.Window = window })
	set("influx-url", func() { cfg.Influx.URL = influxURL })
	set("influx-token", func() { cfg.Influx.Token = influxToken })
	set("influx-org", func() { cfg.Influx.Org = influxOrg })
	set("influx-bucket", func() { cfg.Influx.Bucket = influxBucket })
	set("influx-measurement", func() { cfg.Influx.Measurement = influxMeasurement })

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Error().Err(err).Str("level", cfg.LogLevel).Msg("could not parse log level")
		return failure
	}
	zerolog.SetGlobalLevel(level)

	scenarios := []scenario.Scenario{{Name: "position", Params: cfg.Position}}
	if scenarioFile != "" {
		scenarios, err = scenario.Load(scenarioFile)
		if err != nil {
			log.Error().Err(err).Str("file", scenarioFile).Msg("could not load scenarios")
			return failure
		}
	}

	for _, s := range scenarios {
		outside := s.Params.Outside()
		if len(outside) > 0 {
			log.Warn().
				Str("scenario", s.Name).
				Strs("prices", outside).
				Float64("lower", s.Params.Lower).
				Float64("upper", s.Params.Upper).
				Msg("prices outside of range are evaluated without clamping")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	start := time.Now()
	results, err := runBatch(ctx, cfg.Engine, scenarios, cfg.Workers)
	if err != nil {
		log.Error().Err(err).Msg("could not evaluate positions")
		return failure
	}

	log.Debug().
		Int("positions", len(results)).
		Int("grid_size", cfg.Engine.GridSize).
		Dur("duration", time.Since(start)).
		Msg("positions evaluated")

	for i, result := range results {
		if _, ok := result.(engine.Degenerate); ok {
			log.Info().Str("scenario", scenarios[i].Name).Msg("entry price equals upper bound, liquidity is undefined")
		}
		err = report.Write(os.Stdout, scenarios[i].Name, result)
		if err != nil {
			log.Error().Err(err).Str("scenario", scenarios[i].Name).Msg("could not write report")
			return failure
		}
	}

	if cfg.Influx.URL == "" {
		return success
	}

	client := influxdb2.NewClient(cfg.Influx.URL, cfg.Influx.Token)
	outbound := client.WriteAPI(cfg.Influx.Org, cfg.Influx.Bucket)

	errs := outbound.Errors()
	failures := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		for err := range errs {
			log.Error().Err(err).Msg("could not write point")
			failures++
		}
	}()

	timestamp := time.Now().UTC()
	for i, result := range results {
		s := scenarios[i]
		write.Curves(timestamp, cfg.Influx.Measurement, s.Name, s.Params, result, outbound)
		write.Position(timestamp, cfg.Influx.Measurement, s.Name, s.Params, result, outbound)
	}

	// closing the client flushes pending points and closes the error channel
	outbound.Flush()
	client.Close()
	<-done

	if failures > 0 {
		return failure
	}

	log.Info().
		Str("bucket", cfg.Influx.Bucket).
		Str("measurement", cfg.Influx.Measurement).
		Int("positions", len(results)).
		Msg("points written")

	return success
}

func runBatch(ctx context.Context, cfg engine.Config, scenarios []scenario.Scenario, workers int) ([]engine.Result, error) {

	params := make([]position.Params, 0, len(scenarios))
	for _, s := range scenarios {
		params = append(params, s.Params)
	}

	return engine.Batch(ctx, cfg, params, workers)
}
