package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Session picks a backend ("memory" or "redis") and fixes the absolute
// cookie/session lifetime. SweepMinutes only applies to the memory
// backend's janitor.
type Session struct {
	Store        string `mapstructure:"store"`
	CookieName   string `mapstructure:"cookie_name"`
	TTLHours     int    `mapstructure:"ttl_hours"`
	SweepMinutes int    `mapstructure:"sweep_minutes"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Upload struct {
	Dir        string `mapstructure:"dir"`
	PublicPath string `mapstructure:"public_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
}

type Config struct {
	App     App
	Log     Log
	DB      DB
	Session Session `mapstructure:"session"`
	Redis   Redis   `mapstructure:"redis"`
	Upload  Upload  `mapstructure:"upload"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.cookie_name", "portal_sid")
	v.SetDefault("session.ttl_hours", 24)
	v.SetDefault("session.sweep_minutes", 10)
	v.SetDefault("upload.dir", "public/uploads")
	v.SetDefault("upload.public_path", "/uploads")
	v.SetDefault("upload.max_size_mb", 5)

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}
