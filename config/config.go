package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	DB   DBConfig
	Seed SeedConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type DBConfig struct {
	Path string
}

type SeedConfig struct {
	DoctorCount int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_PATH", "doctors.db")
	viper.SetDefault("SEED_COUNT", 1000)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional when everything comes from the environment
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Path: viper.GetString("DB_PATH"),
		},
		Seed: SeedConfig{
			DoctorCount: viper.GetInt("SEED_COUNT"),
		},
	}

	return config, nil
}
