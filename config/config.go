package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/optakt/rangelp/engine"
	"github.com/optakt/rangelp/position"
)

// Config is the file representation of a run. Flags override its values.
type Config struct {
	Engine   engine.Config   `yaml:"engine"`
	Position position.Params `yaml:"position"`
	Influx   Influx          `yaml:"influx"`
	Workers  int             `yaml:"workers"`
	LogLevel string          `yaml:"log_level"`
}

// Influx configures the optional InfluxDB sink. It is disabled without a URL.
type Influx struct {
	URL         string `yaml:"url"`
	Token       string `yaml:"token"`
	Org         string `yaml:"org"`
	Bucket      string `yaml:"bucket"`
	Measurement string `yaml:"measurement"`
}

// Default mirrors the reference position of the original calculator.
var Default = Config{
	Engine: engine.DefaultConfig,
	Position: position.Params{
		Lower:    1000,
		Upper:    3000,
		Entry:    1000,
		Current:  3000,
		Amount:   1,
		Withdraw: 2000,
	},
	Influx: Influx{
		Org:         "optakt",
		Bucket:      "liquidity",
		Measurement: "uniswapv3",
	},
	Workers:  4,
	LogLevel: "info",
}

// Load reads a YAML file on top of the defaults.
func Load(file string) (Config, error) {

	cfg := Default

	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode config file: %w", err)
	}

	return cfg, nil
}
