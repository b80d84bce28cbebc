package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// TokenEnvName is the environment variable holding the PartnerBoost API
// credential. It has no default: a missing token is a fatal configuration
// error raised before any network call.
const TokenEnvName = "PARTNERBOOST_TOKEN"

var ErrMissingToken = errors.New(
	"missing PartnerBoost token: set " + TokenEnvName + " in the environment or a local .env file")

type Config struct {
	Token            string        `mapstructure:"token"`
	BaseURL          string        `mapstructure:"base_url"`
	DbPath           string        `mapstructure:"db_path"`
	ReportsDir       string        `mapstructure:"reports_dir"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	ProductPageSize  int           `mapstructure:"product_page_size"`
	TransactionLimit int           `mapstructure:"transaction_limit"`
	AmazonPageSize   int           `mapstructure:"amazon_page_size"`
}

// Load reads configuration from the environment with sensible defaults for
// everything except the token. The token is not validated here: components
// that never talk to the API (the report server) work without one.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", "https://app.partnerboost.com")
	v.SetDefault("db_path", "products.db")
	v.SetDefault("reports_dir", "docs")
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("product_page_size", 50)
	v.SetDefault("transaction_limit", 1000)
	v.SetDefault("amazon_page_size", 500)

	_ = v.BindEnv("token", TokenEnvName)
	_ = v.BindEnv("base_url", "PARTNERBOOST_BASE_URL")
	_ = v.BindEnv("db_path", "PARTNERBOOST_DB_PATH")
	_ = v.BindEnv("reports_dir", "PARTNERBOOST_REPORTS_DIR")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	// the token key has no default, so resolve it explicitly
	cfg.Token = v.GetString("token")
	return &cfg, nil
}

// LoadAPI is Load plus the credential check, for anything that is about to
// call the PartnerBoost API. The check runs before any network activity.
func LoadAPI() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	return cfg, nil
}
