package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds everything the server needs at startup.
type Settings struct {
	Port            string
	DatabaseDriver  string
	DatabaseDSN     string
	LogLevel        string
	LogFormat       string
	AllowedOrigins  []string
	HubQueueSize    int
	HubWriteTimeout time.Duration
	HubPingInterval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "goals.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "*"})
	v.SetDefault("hub.queue_size", 64)
	v.SetDefault("hub.write_timeout", 10*time.Second)
	v.SetDefault("hub.ping_interval", 30*time.Second)
}

// LoadSettings reads an optional config file and environment variables into v.
// Keys map to env vars by upper-casing and replacing dots with underscores,
// so database.dsn is read from DATABASE_DSN.
func LoadSettings(v *viper.Viper, cfgFile string) (*Settings, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("goalpulse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "goalpulse"))
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	s := &Settings{
		Port:            v.GetString("port"),
		DatabaseDriver:  v.GetString("database.driver"),
		DatabaseDSN:     v.GetString("database.dsn"),
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		AllowedOrigins:  v.GetStringSlice("cors.allowed_origins"),
		HubQueueSize:    v.GetInt("hub.queue_size"),
		HubWriteTimeout: v.GetDuration("hub.write_timeout"),
		HubPingInterval: v.GetDuration("hub.ping_interval"),
	}
	if s.HubQueueSize <= 0 {
		return nil, fmt.Errorf("hub.queue_size must be positive, got %d", s.HubQueueSize)
	}
	return s, nil
}
