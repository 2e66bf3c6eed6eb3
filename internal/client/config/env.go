package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/stylocoin/dashboard/internal/flagx"
)

// EnvPrefix is prepended to every variable name read into Config.
const EnvPrefix = "STYLO_"

// parseEnv overlays cfg with STYLO_* variables. A dotenv file named by -e is
// loaded first and must exist; otherwise ./.env is loaded if present.
// Variables already set in the process environment win over the file.
//
// environ replaces the process environment when non-nil.
func parseEnv(cfg *Config, args []string, environ map[string]string) {
	if environ == nil {
		loadDotEnv(flagx.EnvFilePath(args))
	}
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		panic(err)
	}
}

func loadDotEnv(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}
