// Package flagx lets independent config stages pick their own flags out of a
// shared command line without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the allowed flags of args, in order. Both
// "-f value" and "-f=value" forms are recognised; a following token is taken
// as the value only when it does not start with '-'.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if name, _, hasValue := strings.Cut(arg, "="); hasValue && strings.HasPrefix(arg, "-") {
			if allowed[name] {
				filtered = append(filtered, arg)
			}
			continue
		}
		if !allowed[arg] {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// lookup parses a single string option registered under several names and
// returns the last value given. Everything else in args is ignored.
func lookup(args []string, names ...string) string {
	var value string
	dashed := make([]string, len(names))
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for i, n := range names {
		fs.StringVar(&value, n, "", "")
		dashed[i] = "-" + n
	}
	_ = fs.Parse(FilterArgs(args, dashed))
	return value
}

// ConfigPath returns the JSON config file given with -c or -config.
func ConfigPath(args []string) string {
	return lookup(args, "c", "config")
}

// EnvFilePath returns the dotenv file given with -e or -env.
func EnvFilePath(args []string) string {
	return lookup(args, "e", "env")
}
