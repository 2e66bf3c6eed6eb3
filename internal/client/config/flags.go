package config

import (
	"flag"
	"io"
	"time"

	"github.com/stylocoin/dashboard/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-r", "-d", "-l", "-p", "-i", "-v", "-f"}

// parseFlags populates Config fields from command-line flags.
//
//	-a string   backend base url
//	-t int      sign-in and sign-up timeout (seconds)
//	-r int      timeout of other backend requests (seconds)
//	-d string   session database file
//	-l string   web gateway listen address
//	-p int      default page size
//	-i int      online status check interval (seconds)
//	-v string   log level
//	-f string   log format (console, json, text)
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// stages (-c, -e) do not get in the way. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("stylo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "backend base url")
	authTimeout := fs.Int("t", int(cfg.AuthTimeout.Seconds()), "auth timeout (in seconds)")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database file")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "web gateway listen address")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "default page size")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if seen["t"] {
		cfg.AuthTimeout = time.Duration(*authTimeout) * time.Second
	}
	if seen["r"] {
		cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	}
	if seen["i"] {
		cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	}
}
