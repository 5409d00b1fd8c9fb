package utils

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Splash   SplashConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Driver   string // "memory" or "postgres"
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// SplashConfig carries the interstitial timings used by the navigation state
// machine between page transitions.
type SplashConfig struct {
	SwapDelay     time.Duration
	FirstDuration time.Duration
	Duration      time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "streaming-catalog")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_DRIVER", "memory")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SPLASH_SWAP_DELAY_MS", 300)
	viper.SetDefault("SPLASH_FIRST_DURATION_MS", 5000)
	viper.SetDefault("SPLASH_DURATION_MS", 2000)

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; defaults and the environment cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Splash: SplashConfig{
			SwapDelay:     time.Duration(viper.GetInt("SPLASH_SWAP_DELAY_MS")) * time.Millisecond,
			FirstDuration: time.Duration(viper.GetInt("SPLASH_FIRST_DURATION_MS")) * time.Millisecond,
			Duration:      time.Duration(viper.GetInt("SPLASH_DURATION_MS")) * time.Millisecond,
		},
	}

	return config, nil
}
