package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `
service_name: exchange-sim
sim:
  traders: 3
  rounds: 10
  match_interval_ms: 25
  buy_threshold: "150"
  sell_threshold: "160"
  buy_qty: 12
  sell_qty: 13
  stocks:
    - name: AAPL
      price: "145"
`
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.ServiceName != "exchange-sim" {
		t.Errorf("service_name = %q", cfg.ServiceName)
	}
	if cfg.Sim == nil || cfg.Sim.Traders != 3 || cfg.Sim.MatchIntervalMS != 25 {
		t.Errorf("unexpected sim config: %+v", cfg.Sim)
	}
	if len(cfg.Sim.Stocks) != 1 || cfg.Sim.Stocks[0].Name != "AAPL" {
		t.Errorf("unexpected stocks: %+v", cfg.Sim.Stocks)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("SIM_TRADERS", "7")
	content := "service_name: exchange-sim\nsim:\n  traders: ${SIM_TRADERS}\n"

	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sim.Traders != 7 {
		t.Errorf("expected env-expanded traders 7, got %d", cfg.Sim.Traders)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
