package config

import (
	"encoding/json"
	"os"

	"github.com/stylocoin/dashboard/internal/flagx"
	"github.com/stylocoin/dashboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are timex.Duration so they can be written as "25s" or as nanoseconds.
type JsonConfig struct {
	BackendURL          string         `json:"backend_url"`
	AuthTimeout         timex.Duration `json:"auth_timeout"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DatabasePath        string         `json:"database_path"`
	ListenAddr          string         `json:"listen_addr"`
	AllowedOrigins      []string       `json:"allowed_origins"`
	PageSize            int            `json:"page_size"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LogLevel            string         `json:"log_level"`
	LogFormat           string         `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c or -config. Keys missing
// from the file leave the current value alone. Read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	setString(&cfg.BackendURL, jc.BackendURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.ListenAddr, jc.ListenAddr)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.AuthTimeout.Duration != 0 {
		cfg.AuthTimeout = jc.AuthTimeout.Duration
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.AllowedOrigins != nil {
		cfg.AllowedOrigins = jc.AllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
