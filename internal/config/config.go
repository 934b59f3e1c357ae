package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the extractor CLI.
type Config struct {
	OCR        OCRConfig
	Gemini     GeminiConfig
	Processing ProcessingConfig
}

// OCRConfig holds Tesseract configuration.
type OCRConfig struct {
	Language string
}

// GeminiConfig holds Gemini API configuration for clinical PDF extraction.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ProcessingConfig holds pipeline tuning parameters.
type ProcessingConfig struct {
	DeskewThreshold float64
	FooterFraction  float64
	ExpectedCount   int
}

// Load loads configuration from environment variables and an optional
// .env file in the working directory. Environment variables override
// values from the file.
func Load() (*Config, error) {
	viper.SetDefault("TESSERACT_LANG", "eng")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-pro")
	viper.SetDefault("DESKEW_THRESHOLD", 0.5)
	viper.SetDefault("FOOTER_FRACTION", 0.1)
	viper.SetDefault("EXPECTED_COUNT", 9)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // file may not exist

	viper.AutomaticEnv()

	viper.BindEnv("TESSERACT_LANG")
	viper.BindEnv("GEMINI_API_KEY")
	viper.BindEnv("GEMINI_MODEL")
	viper.BindEnv("DESKEW_THRESHOLD")
	viper.BindEnv("FOOTER_FRACTION")
	viper.BindEnv("EXPECTED_COUNT")

	var config Config
	config.OCR.Language = viper.GetString("TESSERACT_LANG")
	config.Gemini.APIKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Processing.DeskewThreshold = viper.GetFloat64("DESKEW_THRESHOLD")
	config.Processing.FooterFraction = viper.GetFloat64("FOOTER_FRACTION")
	config.Processing.ExpectedCount = viper.GetInt("EXPECTED_COUNT")

	return &config, nil
}
