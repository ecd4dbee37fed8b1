package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Log        LogConfig
	Auth       AuthConfig
	Meals      MealsConfig
	TopUp      TopUpConfig
	Complaints ComplaintsConfig
	Scanner    ScannerConfig
	App        AppConfig
	Seed       SeedConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string
	DSN    string
}

type LogConfig struct {
	Level       string
	Format      string
	Output      string
	FilePath    string
	Development bool
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminPassword string
	// PasswordScheme is "plain" or "bcrypt".
	PasswordScheme string
}

type MealRates struct {
	Breakfast int
	Lunch     int
	Dinner    int
}

type MealsConfig struct {
	Rates  MealRates
	Locked bool
}

type TopUpConfig struct {
	Minimum int64
}

type ComplaintsConfig struct {
	AllowPostResolutionEdits bool
}

type ScannerConfig struct {
	DedupeTTL time.Duration
}

type AppConfig struct {
	Timezone string
}

type SeedConfig struct {
	Demo bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:messhall.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "")
	v.SetDefault("log.development", false)
	v.SetDefault("auth.jwt_secret", "change-me")
	v.SetDefault("auth.token_ttl", "60m")
	v.SetDefault("auth.admin_password", "admin123")
	v.SetDefault("auth.password_scheme", "plain")
	v.SetDefault("meals.rates.breakfast", 30)
	v.SetDefault("meals.rates.lunch", 60)
	v.SetDefault("meals.rates.dinner", 40)
	v.SetDefault("meals.locked", false)
	v.SetDefault("topup.minimum", 100)
	v.SetDefault("complaints.allow_post_resolution_edits", true)
	v.SetDefault("scanner.dedupe_ttl", "10s")
	v.SetDefault("app.timezone", "Asia/Kolkata")
	v.SetDefault("seed.demo", true)
}

// Load reads .env (if any), then config.yaml from CONFIG_PATH or the working
// directory, then MESS_* environment overrides (MESS_MEALS_RATES_LUNCH=70).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if os.Getenv("CONFIG_PATH") != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v), nil
}

// Default returns the built-in configuration without reading files or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{Port: v.GetInt("server.port")},
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("database.driver")),
			DSN:    v.GetString("database.dsn"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Format:      v.GetString("log.format"),
			Output:      v.GetString("log.output"),
			FilePath:    v.GetString("log.file_path"),
			Development: v.GetBool("log.development"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("auth.jwt_secret"),
			TokenTTL:       v.GetDuration("auth.token_ttl"),
			AdminPassword:  v.GetString("auth.admin_password"),
			PasswordScheme: strings.ToLower(v.GetString("auth.password_scheme")),
		},
		Meals: MealsConfig{
			Rates: MealRates{
				Breakfast: v.GetInt("meals.rates.breakfast"),
				Lunch:     v.GetInt("meals.rates.lunch"),
				Dinner:    v.GetInt("meals.rates.dinner"),
			},
			Locked: v.GetBool("meals.locked"),
		},
		TopUp:      TopUpConfig{Minimum: v.GetInt64("topup.minimum")},
		Complaints: ComplaintsConfig{AllowPostResolutionEdits: v.GetBool("complaints.allow_post_resolution_edits")},
		Scanner:    ScannerConfig{DedupeTTL: v.GetDuration("scanner.dedupe_ttl")},
		App:        AppConfig{Timezone: v.GetString("app.timezone")},
		Seed:       SeedConfig{Demo: v.GetBool("seed.demo")},
	}
}
