package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Scheduling rules.
	SlotHorizonMonths   int    `mapstructure:"SLOT_HORIZON_MONTHS"`
	UpdateHorizonMonths int    `mapstructure:"UPDATE_HORIZON_MONTHS"`
	BusinessOpen        string `mapstructure:"BUSINESS_OPEN"`
	BusinessClose       string `mapstructure:"BUSINESS_CLOSE"`
	ReasonMinLen        int    `mapstructure:"REASON_MIN_LEN"`
	ReasonMaxLen        int    `mapstructure:"REASON_MAX_LEN"`
	NotesMaxLen         int    `mapstructure:"NOTES_MAX_LEN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SLOT_HORIZON_MONTHS", 3)
	viper.SetDefault("UPDATE_HORIZON_MONTHS", 6)
	viper.SetDefault("BUSINESS_OPEN", "08:00")
	viper.SetDefault("BUSINESS_CLOSE", "18:00")
	viper.SetDefault("REASON_MIN_LEN", 10)
	viper.SetDefault("REASON_MAX_LEN", 500)
	viper.SetDefault("NOTES_MAX_LEN", 1000)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
