package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

const devEnv = "dev"

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env             string `envconfig:"APP_ENV" default:"dev"`
	Port            string `envconfig:"PORT" default:"8080"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	DBPath          string `envconfig:"DB_PATH" default:""`
	AssumptionsFile string `envconfig:"ASSUMPTIONS_FILE" default:""`

	ReportLocale   string `envconfig:"REPORT_LOCALE" default:"en-US"`
	CurrencySymbol string `envconfig:"REPORT_CURRENCY_SYMBOL" default:"$"`
	ProviderName   string `envconfig:"PROVIDER_NAME" default:"Roots"`
	ReportContact  string `envconfig:"REPORT_CONTACT" default:"Questions? Contact the Roots team at hello@roots.example to start saving."`
}

// Load reads the optional .env file and the environment and returns a populated Config.
func Load() (Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path.
// A missing dotenv file is not an error, and it never overrides variables already set.
func LoadFrom(dotenvPath string) (Config, error) {
	if err := loadDotEnv(dotenvPath); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if _, err := language.Parse(cfg.ReportLocale); err != nil {
		return Config{}, fmt.Errorf("REPORT_LOCALE %q: %w", cfg.ReportLocale, err)
	}

	return cfg, nil
}

// IsDev reports whether the process runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == devEnv
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv %s: %w", path, err)
	}
	return nil
}
