package config

import (
	"log"

	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional .env file and the
// process environment. A missing .env is not an error: the serverless
// adapter runs from plain environment variables only.
func InitConfig() {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("MONGODB_DB", "school")
	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGINS", "*")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No .env file loaded, using environment variables only")
	}
}

// IsProduction reports whether the service runs in production mode.
// Diagnostic detail is only surfaced to callers outside production.
func IsProduction() bool {
	return viper.GetString("ENVIRONMENT") == "production"
}
