package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// serverConfig holds the resolved server settings.
type serverConfig struct {
	Port        int
	KeyFile     string
	CatalogFile string
	MaxSessions int
	LogLevel    slog.Level
	RecordBrews bool
}

// configResolver describes one setting: its flag, the environment variable
// that backs it, and how to apply the resolved string.
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*serverConfig, string) error
}

var resolvers = []configResolver{
	{
		flagName:    "port",
		envVarName:  "POTION_BREWER_PORT",
		defaultVal:  "2222",
		description: "SSH server port",
		setter: func(c *serverConfig, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("invalid port %q", v)
			}
			c.Port = n
			return nil
		},
	},
	{
		flagName:    "key",
		envVarName:  "POTION_BREWER_KEY",
		defaultVal:  "server_host_key",
		description: "path to the PEM-encoded host key (generated if absent)",
		setter:      func(c *serverConfig, v string) error { c.KeyFile = v; return nil },
	},
	{
		flagName:    "catalog",
		envVarName:  "POTION_BREWER_CATALOG",
		defaultVal:  "",
		description: "optional JSON catalog replacing the built-in ingredients and levels",
		setter:      func(c *serverConfig, v string) error { c.CatalogFile = v; return nil },
	},
	{
		flagName:    "max-sessions",
		envVarName:  "POTION_BREWER_MAX_SESSIONS",
		defaultVal:  "16",
		description: "maximum number of players brewing at once",
		setter: func(c *serverConfig, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid max-sessions %q", v)
			}
			c.MaxSessions = n
			return nil
		},
	},
	{
		flagName:    "log-level",
		envVarName:  "POTION_BREWER_LOG_LEVEL",
		defaultVal:  "info",
		description: "log level: debug, info, warn or error",
		setter: func(c *serverConfig, v string) error {
			if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("invalid log-level %q", v)
			}
			return nil
		},
	},
	{
		flagName:    "record-brews",
		envVarName:  "POTION_BREWER_RECORD_BREWS",
		defaultVal:  "true",
		description: "append every brew to brews.jsonl in the data directory",
		setter: func(c *serverConfig, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid record-brews %q", v)
			}
			c.RecordBrews = b
			return nil
		},
	},
}

// registerFlags adds one string flag per resolver. Environment values are
// layered in by resolveConfig, not baked into the flag defaults.
func registerFlags(fs *pflag.FlagSet) {
	for _, r := range resolvers {
		fs.String(r.flagName, r.defaultVal, fmt.Sprintf("%s (env %s)", r.description, r.envVarName))
	}
}

// resolveConfig applies flag > environment > default for every setting.
func resolveConfig(fs *pflag.FlagSet) (serverConfig, error) {
	var cfg serverConfig
	for _, r := range resolvers {
		val := r.defaultVal
		if env, ok := os.LookupEnv(r.envVarName); ok && env != "" {
			val = env
		}
		if f := fs.Lookup(r.flagName); f != nil && f.Changed {
			val = f.Value.String()
		}
		if err := r.setter(&cfg, val); err != nil {
			return serverConfig{}, err
		}
	}
	return cfg, nil
}
