package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage and scan profile
	DBPath     string `long:"db-path" env:"DB_PATH" default:"./pressradar.sqlite" description:"Path to the SQLite seen-item database"`
	ConfigPath string `long:"config" env:"CONFIG_PATH" default:"./scanner.yaml" description:"Path to the scan profile YAML file"`

	// Fetch behavior
	FetchTimeout int  `long:"timeout" env:"FETCH_TIMEOUT" default:"60" description:"Per-request fetch timeout in seconds"`
	DryRun       bool `long:"dry-run" env:"DRY_RUN" description:"Print the digest to stdout instead of emailing it"`

	// SMTP delivery
	SMTPHost     string `long:"smtp-host" env:"SMTP_HOST" description:"SMTP server host"`
	SMTPPort     int    `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP server port"`
	SMTPUser     string `long:"smtp-user" env:"SMTP_USER" description:"SMTP username"`
	SMTPPassword string `long:"smtp-pass" env:"SMTP_PASS" description:"SMTP password"`
	EmailFrom    string `long:"email-from" env:"EMAIL_FROM" description:"Digest sender address"`
	EmailTo      string `long:"email-to" env:"EMAIL_TO" description:"Digest recipient address"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	// A local .env is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:       raw.DBPath,
		ConfigPath:   raw.ConfigPath,
		FetchTimeout: raw.FetchTimeout,
		DryRun:       raw.DryRun,
		SMTPHost:     raw.SMTPHost,
		SMTPPort:     raw.SMTPPort,
		SMTPUser:     raw.SMTPUser,
		SMTPPassword: raw.SMTPPassword,
		EmailFrom:    raw.EmailFrom,
		EmailTo:      raw.EmailTo,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
