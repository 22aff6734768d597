package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries the front-end settings threaded through the command tree.
// The core library in internal/ipv4 never reads it.
type Config struct {
	Version string
	Plain   bool
	NoColor bool
	Debug   bool
}

// resolveConfig layers an optional config file and IP_NAVIGATOR_* env vars
// under the command-line flags. Flags win over env, env wins over file.
func resolveConfig(base Config, flags *pflag.FlagSet, cfgFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ip_navigator")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".ip-navigator")
		v.AddConfigPath("$HOME")
	}

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil && cfgFile != "" {
		// Only an explicitly requested config file is required to exist.
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := base
	cfg.Plain = v.GetBool("plain")
	cfg.NoColor = v.GetBool("no-color")
	cfg.Debug = v.GetBool("debug")
	return cfg, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
