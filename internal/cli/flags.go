package cli

import "github.com/spf13/pflag"

// BindLogFlags registers --log-level and --log-format on flags. Values
// already in cfg act as defaults.
func BindLogFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (json, pretty, auto)")
}
