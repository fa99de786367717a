package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Providers struct {
		Structured struct {
			APIKey      string `yaml:"api_key"`
			Credentials string `yaml:"credentials"`
			Endpoint    string `yaml:"endpoint"`
		} `yaml:"structured"`

		Proxy struct {
			APIKey            string `yaml:"api_key"`
			Endpoint          string `yaml:"endpoint"`
			SearchURLTemplate string `yaml:"search_url_template"`
		} `yaml:"proxy"`
	} `yaml:"providers"`

	Limits struct {
		HostReqPerSec       float64 `yaml:"host_req_per_sec"`
		HostBurst           int     `yaml:"host_burst"`
		FetchTimeoutSeconds int     `yaml:"fetch_timeout_seconds"`
	} `yaml:"limits"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8090
	}
	if cfg.Limits.HostReqPerSec == 0 {
		cfg.Limits.HostReqPerSec = 2
	}
	if cfg.Limits.HostBurst == 0 {
		cfg.Limits.HostBurst = 4
	}
	if cfg.Limits.FetchTimeoutSeconds == 0 {
		cfg.Limits.FetchTimeoutSeconds = 30
	}
}
