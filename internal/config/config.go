// Package config loads cardprep settings from the config file, environment,
// and defaults.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from all sources.
//
// Precedence, highest first: command-line flags (bound by cobra), CARDPREP_*
// environment variables, .env file, ~/.cardprep.yaml, defaults.
type Config struct {
	// Margin is the default percentage margin added around a detected
	// card.
	Margin float64

	// Quality is the JPEG encode quality for cropped output.
	Quality int

	// MaxWorkDim bounds the longer side of the detection work image.
	MaxWorkDim int

	// Method is the default detector: auto, brightness, edges, or center.
	Method string

	// AspectMin / AspectMax bound the detection ratios accepted without
	// snapping; AspectTarget is the ratio snapped detections take.
	AspectMin    float64
	AspectMax    float64
	AspectTarget float64

	// AspectGoodMin / AspectGoodMax is the band reported as a good final
	// crop.
	AspectGoodMin float64
	AspectGoodMax float64

	// Language is the Tesseract language code for the verify command.
	Language string

	// Glob matches card photos inside tip folders during batch runs.
	Glob string

	// Logging configuration.
	LogLevel  string
	LogFormat string

	// Flag shortcuts resolved into LogLevel by the CLI.
	Verbose bool
	Quiet   bool
}

// Load reads configuration from all sources. cfgFile overrides the default
// config file search when non-empty.
func Load(cfgFile string) (*Config, error) {
	loadEnvFile()

	v := viper.New()

	v.SetDefault("margin", 3.0)
	v.SetDefault("quality", 95)
	v.SetDefault("max_work_dim", 1200)
	v.SetDefault("method", "auto")
	v.SetDefault("aspect_min", 1.1)
	v.SetDefault("aspect_max", 1.8)
	v.SetDefault("aspect_target", 1.4)
	v.SetDefault("aspect_good_min", 1.2)
	v.SetDefault("aspect_good_max", 1.6)
	v.SetDefault("language", "eng")
	v.SetDefault("glob", "Tip*.png")
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".cardprep")
	}

	v.SetEnvPrefix("CARDPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Missing config file is fine; a malformed one is not, wherever it
	// was found.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Margin:        v.GetFloat64("margin"),
		Quality:       v.GetInt("quality"),
		MaxWorkDim:    v.GetInt("max_work_dim"),
		Method:        v.GetString("method"),
		AspectMin:     v.GetFloat64("aspect_min"),
		AspectMax:     v.GetFloat64("aspect_max"),
		AspectTarget:  v.GetFloat64("aspect_target"),
		AspectGoodMin: v.GetFloat64("aspect_good_min"),
		AspectGoodMax: v.GetFloat64("aspect_good_max"),
		Language:      v.GetString("language"),
		Glob:          v.GetString("glob"),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
	}, nil
}

// loadEnvFile loads a .env from the working directory when present, before
// viper binds the environment.
func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}
