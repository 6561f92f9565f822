package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer HttpServer `yaml:"http_server"`
	Sheets     Sheets     `yaml:"sheets"`
	Site       Site       `yaml:"site"`
}

type HttpServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// Sheets holds the credentials and target of the lead spreadsheet.
type Sheets struct {
	SpreadsheetID       string        `yaml:"spreadsheet_id" env:"GOOGLE_SHEET_ID" env-required:"true"`
	ServiceAccountEmail string        `yaml:"service_account_email" env:"GOOGLE_SERVICE_ACCOUNT_EMAIL" env-required:"true"`
	PrivateKey          string        `yaml:"private_key" env:"GOOGLE_PRIVATE_KEY" env-required:"true"`
	SheetName           string        `yaml:"sheet_name" env:"GOOGLE_SHEET_NAME" env-default:"Sheet1"`
	TimeZone            string        `yaml:"time_zone" env:"SUBMISSION_TIME_ZONE" env-default:"Asia/Kolkata"`
	AppendTimeout       time.Duration `yaml:"append_timeout" env:"SHEETS_APPEND_TIMEOUT" env-default:"10s"`
}

// Site holds values rendered on the landing page.
type Site struct {
	PhoneNumber string `yaml:"phone_number" env:"PHONE_NUMBER,NEXT_PUBLIC_PHONE_NUMBER"`
}

// Location resolves the time zone submission timestamps are rendered in.
func (s Sheets) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("config: time zone %q: %w", s.TimeZone, err)
	}
	return loc, nil
}

// MustLoad panics if config can not be read.
func MustLoad() *Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

// Load reads the YAML file at path, overlaid with environment variables.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	// keys pasted from the service account JSON keep literal \n escapes
	cfg.Sheets.PrivateKey = strings.ReplaceAll(cfg.Sheets.PrivateKey, `\n`, "\n")

	if err := cfg.Sheets.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s Sheets) validate() error {
	var missing []string
	if s.SpreadsheetID == "" {
		missing = append(missing, "spreadsheet_id")
	}
	if s.ServiceAccountEmail == "" {
		missing = append(missing, "service_account_email")
	}
	if s.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if len(missing) > 0 {
		return errors.New("sheets: missing " + strings.Join(missing, ", "))
	}
	return nil
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "" (environment only).
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
