package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/wellywell/ordersheet/internal/spapi"
	"github.com/wellywell/ordersheet/internal/types"
)

// registryOrder fixes the marketplace iteration order and with it the
// worksheet index inside a sheet. Do not reorder.
var registryOrder = []string{"BE", "SE", "NL", "ES", "IT", "FR", "DE", "UK"}

type marketplaceEnv struct {
	RefreshTokenBE string `env:"REFRESH_TOKEN_BE"`
	RefreshTokenSE string `env:"REFRESH_TOKEN_SE"`
	RefreshTokenNL string `env:"REFRESH_TOKEN_NL"`
	RefreshTokenES string `env:"REFRESH_TOKEN_ES"`
	RefreshTokenIT string `env:"REFRESH_TOKEN_IT"`
	RefreshTokenFR string `env:"REFRESH_TOKEN_FR"`
	RefreshTokenDE string `env:"REFRESH_TOKEN_DE"`
	RefreshTokenUK string `env:"REFRESH_TOKEN_UK"`

	WorksheetBE string `env:"GOOGLE_WORKSHEET_NAME_BE"`
	WorksheetSE string `env:"GOOGLE_WORKSHEET_NAME_SE"`
	WorksheetNL string `env:"GOOGLE_WORKSHEET_NAME_NL"`
	WorksheetES string `env:"GOOGLE_WORKSHEET_NAME_ES"`
	WorksheetIT string `env:"GOOGLE_WORKSHEET_NAME_IT"`
	WorksheetFR string `env:"GOOGLE_WORKSHEET_NAME_FR"`
	WorksheetDE string `env:"GOOGLE_WORKSHEET_NAME_DE"`
	WorksheetUK string `env:"GOOGLE_WORKSHEET_NAME_UK"`
}

type Config struct {
	LWAAppID        string `env:"LWA_APP_ID"`
	LWAClientSecret string `env:"CLIENT_SECRET"`
	AWSAccessKey    string `env:"AWS_ACCESS_KEY"`
	AWSSecretKey    string `env:"AWS_SECRET_KEY"`
	RoleARN         string `env:"ROLE_ARN"`

	GoogleClientEmail string `env:"GOOGLE_CLIENT_EMAIL"`
	GooglePrivateKey  string `env:"GOOGLE_PRIVATE_KEY"`
	GoogleFolderID    string `env:"GOOGLE_FOLDER_ID"`

	SheetBackend string        `env:"SHEET_BACKEND" envDefault:"google"`
	XLSXDir      string        `env:"XLSX_DIR" envDefault:"workbooks"`
	SheetPrefix  string        `env:"SHEET_PREFIX" envDefault:"amazon_orders"`
	OrderDelay   time.Duration `env:"ORDER_DELAY" envDefault:"1s"`

	SPAPIEndpoint string `env:"SPAPI_ENDPOINT" envDefault:"https://sellingpartnerapi-eu.amazon.com"`

	Marketplaces marketplaceEnv
}

// MissingSettingError signals a required environment value absent at
// startup. The process must not start a run without it.
type MissingSettingError struct {
	Name string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("required setting %s is not set", e.Name)
}

func NewConfig() (*Config, error) {

	// optional local .env, real deployments set the environment directly
	_ = godotenv.Load()

	var params Config
	if err := env.Parse(&params); err != nil {
		return nil, err
	}

	var commandLineParams Config

	flag.StringVar(&commandLineParams.SheetBackend, "b", "", "Sheet backend, google or xlsx")
	flag.StringVar(&commandLineParams.SheetPrefix, "p", "", "Destination sheet name prefix")
	flag.StringVar(&commandLineParams.XLSXDir, "o", "", "Directory for xlsx workbooks")
	flag.Parse()

	if commandLineParams.SheetBackend != "" {
		params.SheetBackend = commandLineParams.SheetBackend
	}
	if commandLineParams.SheetPrefix != "" {
		params.SheetPrefix = commandLineParams.SheetPrefix
	}
	if commandLineParams.XLSXDir != "" {
		params.XLSXDir = commandLineParams.XLSXDir
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &params, nil
}

func (c *Config) Validate() error {

	required := map[string]string{
		"LWA_APP_ID":     c.LWAAppID,
		"CLIENT_SECRET":  c.LWAClientSecret,
		"AWS_ACCESS_KEY": c.AWSAccessKey,
		"AWS_SECRET_KEY": c.AWSSecretKey,
		"ROLE_ARN":       c.RoleARN,
	}
	if c.SheetBackend == "google" {
		required["GOOGLE_CLIENT_EMAIL"] = c.GoogleClientEmail
		required["GOOGLE_PRIVATE_KEY"] = c.GooglePrivateKey
		required["GOOGLE_FOLDER_ID"] = c.GoogleFolderID
	}

	// deterministic order keeps the first reported setting stable
	for _, name := range []string{
		"LWA_APP_ID", "CLIENT_SECRET", "AWS_ACCESS_KEY", "AWS_SECRET_KEY", "ROLE_ARN",
		"GOOGLE_CLIENT_EMAIL", "GOOGLE_PRIVATE_KEY", "GOOGLE_FOLDER_ID",
	} {
		if value, ok := required[name]; ok && value == "" {
			return fmt.Errorf("%w", &MissingSettingError{Name: name})
		}
	}

	if len(c.Registry()) == 0 {
		return fmt.Errorf("%w", &MissingSettingError{Name: "REFRESH_TOKEN_<country>"})
	}

	return nil
}

// Registry returns the configured marketplaces in fixed order. A country is
// part of the run when its refresh token is set; the worksheet name falls
// back to the country code.
func (c *Config) Registry() []types.MarketplaceConfig {

	tokens := map[string]string{
		"BE": c.Marketplaces.RefreshTokenBE,
		"SE": c.Marketplaces.RefreshTokenSE,
		"NL": c.Marketplaces.RefreshTokenNL,
		"ES": c.Marketplaces.RefreshTokenES,
		"IT": c.Marketplaces.RefreshTokenIT,
		"FR": c.Marketplaces.RefreshTokenFR,
		"DE": c.Marketplaces.RefreshTokenDE,
		"UK": c.Marketplaces.RefreshTokenUK,
	}
	worksheets := map[string]string{
		"BE": c.Marketplaces.WorksheetBE,
		"SE": c.Marketplaces.WorksheetSE,
		"NL": c.Marketplaces.WorksheetNL,
		"ES": c.Marketplaces.WorksheetES,
		"IT": c.Marketplaces.WorksheetIT,
		"FR": c.Marketplaces.WorksheetFR,
		"DE": c.Marketplaces.WorksheetDE,
		"UK": c.Marketplaces.WorksheetUK,
	}

	registry := []types.MarketplaceConfig{}
	for _, country := range registryOrder {
		if tokens[country] == "" {
			continue
		}
		worksheet := worksheets[country]
		if worksheet == "" {
			worksheet = country
		}
		registry = append(registry, types.MarketplaceConfig{
			MarketplaceID: spapi.MarketplaceIDs[country],
			CountryCode:   country,
			WorksheetName: worksheet,
			RefreshToken:  tokens[country],
		})
	}
	return registry
}
