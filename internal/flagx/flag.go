// Package flagx helps several independent flag sets share one command line.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags named in allowedFlags, together with
// their values, so a flag.FlagSet can parse args it does not fully own.
//
// Both forms are recognized:
//
//	-c conf.json
//	--config=conf.json
//
// A following argument is taken as the value only if it does not start
// with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigPaths extracts the JSON config file (-c/-config) and the dotenv
// file (-env) from args. Missing flags yield empty strings; the last
// occurrence wins.
func ConfigPaths(args []string) (configFile, envFile string) {
	filtered := FilterArgs(args, []string{"-c", "-config", "--config", "-env", "--env"})

	fs := flag.NewFlagSet("config-files", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&configFile, "config", "", "path to JSON config file")
	fs.StringVar(&configFile, "c", "", "path to JSON config file (short)")
	fs.StringVar(&envFile, "env", "", "path to .env file")
	_ = fs.Parse(filtered)

	return configFile, envFile
}
