// Package config loads and validates the process configuration. Everything is
// resolved once at startup into an explicit Config that gets passed around -
// nothing downstream reads the environment.
package config

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeySpreadsheetID = "spreadsheet_id"
	KeyCredentials   = "credentials"
	KeyOutputDir     = "output_dir"
)

var spreadsheetID = regexp.MustCompile(`^[A-Za-z0-9\-_]{20,}$`)
var whitespace = regexp.MustCompile(`\s+`)

type Config struct {
	SpreadsheetID string `mapstructure:"spreadsheet_id" validate:"required"`
	Credentials   string `mapstructure:"credentials" validate:"required"`
	OutputDir     string `mapstructure:"output_dir" validate:"required"`
}

// The credential blob only has to prove it is a usable service account key -
// the full shape is left to the oauth2 library.
type serviceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Load reads the SHEETFEED_* environment variables and validates them.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("sheetfeed")
	v.AutomaticEnv()

	for _, key := range []string{KeySpreadsheetID, KeyCredentials, KeyOutputDir} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	setDefaults(v)

	return loadAndValidate(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, "data")
}

func loadAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("missing configuration (set SHEETFEED_SPREADSHEET_ID and SHEETFEED_CREDENTIALS): %w", err)
	}

	cfg.SpreadsheetID = whitespace.ReplaceAllString(cfg.SpreadsheetID, "")
	if !spreadsheetID.MatchString(cfg.SpreadsheetID) {
		return nil, fmt.Errorf("invalid spreadsheet ID '%s' - expected the document ID from the spreadsheet URL e.g. '1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", cfg.SpreadsheetID)
	}

	var account serviceAccount
	if err := json.Unmarshal([]byte(cfg.Credentials), &account); err != nil {
		return nil, fmt.Errorf("invalid service account credentials - expected a JSON key file (%v)", err)
	}

	if account.ClientEmail == "" || account.PrivateKey == "" {
		return nil, fmt.Errorf("invalid service account credentials - missing 'client_email' and/or 'private_key'")
	}

	return &cfg, nil
}
