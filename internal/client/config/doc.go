// Package config loads runtime configuration for the StyloCoin dashboard.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with STYLO_, after loading a dotenv
//     file given with -e/-env or ./.env when present.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base url
//	-t int      sign-in/sign-up timeout (seconds)
//	-r int      request timeout (seconds)
//	-d string   session database file
//	-l string   web gateway listen address
//	-p int      default page size
//	-i int      online status check interval (seconds)
//	-v string   log level
//	-f string   log format
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "25s" or
// integer nanoseconds:
//
//	{
//	  "backend_url": "https://api.stylocoin.io",
//	  "auth_timeout": "25s",
//	  "request_timeout": "15s",
//	  "database_path": "stylo.db",
//	  "listen_addr": "127.0.0.1:8090",
//	  "allowed_origins": ["http://localhost:3000"],
//	  "page_size": 10,
//	  "online_check_interval": "5s",
//	  "log_level": "info",
//	  "log_format": "console"
//	}
//
// Primary API
//
//   - type Config                     - holds every runtime setting
//   - func LoadConfig() *Config       - defaults, env, JSON, then flags from os.Args
//   - func Load(args) *Config         - the same for an explicit argument list
//   - func (*Config) Validate() error - rejects settings that cannot work
package config
