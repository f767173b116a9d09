package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Import ImportConfig `mapstructure:"import"`
	Cron   CronConfig   `mapstructure:"cron"`
	Search SearchConfig `mapstructure:"search"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

// ImportConfig carries the dump location and the pricing/rating constants
// inherited from the vendor feed. The conversion rate and default rating are
// business assumptions from the feed provider, kept configurable rather than
// re-derived.
type ImportConfig struct {
	DumpPath      string  `mapstructure:"dump_path"`
	Force         bool    `mapstructure:"force"`
	AEDToJOD      float64 `mapstructure:"aed_to_jod"`
	DefaultRating float64 `mapstructure:"default_rating"`
}

type CronConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	ImportResync string `mapstructure:"import_resync"`
}

type SearchConfig struct {
	DefaultRadiusKm float64 `mapstructure:"default_radius_km"`
	MaxReviews      int     `mapstructure:"max_reviews"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("import.dump_path", "data/gcc-car-database.sql")
	v.SetDefault("import.force", false)
	v.SetDefault("import.aed_to_jod", 0.19)
	v.SetDefault("import.default_rating", 4.0)
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.import_resync", "@every 24h")
	v.SetDefault("search.default_radius_km", 50)
	v.SetDefault("search.max_reviews", 50)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.DB.DSN) == "" {
		return Config{}, fmt.Errorf("db.dsn is required (set IW_DB_DSN or the config file)")
	}

	return cfg, nil
}
