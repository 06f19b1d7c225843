package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type StockConfig struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type SimConfig struct {
	Traders         int           `yaml:"traders"`
	Rounds          int           `yaml:"rounds"`
	MatchIntervalMS int64         `yaml:"match_interval_ms"`
	BuyThreshold    string        `yaml:"buy_threshold"`
	SellThreshold   string        `yaml:"sell_threshold"`
	BuyQty          int64         `yaml:"buy_qty"`
	SellQty         int64         `yaml:"sell_qty"`
	Stocks          []StockConfig `yaml:"stocks"`
}

type AppConfig struct {
	ServiceName string     `yaml:"service_name"`
	Sim         *SimConfig `yaml:"sim"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	sugar := zap.S().With("func", "config.Load", "filePath", filePath)
	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}
	if err := yaml.Unmarshal(configBytes, cfg); err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
