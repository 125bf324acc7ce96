package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Redis      RedisConfig
	NATS       NATSConfig
	Presence   PresenceConfig
	Retention  RetentionConfig
	Notify     NotifyConfig
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type NATSConfig struct {
	URL  string
	Name string
}

// PresenceConfig controls the decay sweep. ActivityWindow is how old a
// record's last activity must be before it is decayed; GraceWindow protects
// records with fresher activity from a racing sweep pass.
type PresenceConfig struct {
	SweepInterval  time.Duration
	ActivityWindow time.Duration
	GraceWindow    time.Duration
}

// RetentionConfig controls how long properties in a terminal status are kept
// before the expiration sweep cascades them away.
type RetentionConfig struct {
	Window        time.Duration
	SweepInterval time.Duration
}

type NotifyConfig struct {
	QueueSize  int
	MaxRetries int
	RetryDelay time.Duration
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}
