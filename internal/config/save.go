package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.Limits.HostReqPerSec < 0 {
		errs = append(errs, "limits.host_req_per_sec must be >= 0")
	}
	if cfg.Limits.HostBurst < 0 {
		errs = append(errs, "limits.host_burst must be >= 0")
	}
	if cfg.Limits.FetchTimeoutSeconds < 0 {
		errs = append(errs, "limits.fetch_timeout_seconds must be >= 0")
	}

	if t := cfg.Providers.Proxy.SearchURLTemplate; t != "" {
		if strings.Count(t, "%s") != 2 {
			errs = append(errs, fmt.Sprintf(
				"providers.proxy.search_url_template must have exactly two %%s slots, got %q", t))
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
