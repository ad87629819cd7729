package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the scan profile
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the scan profile YAML file
func (l *Loader) Load() (*ScanConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config ScanConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return &config, nil
}

func (l *Loader) setDefaults(config *ScanConfig) {
	if config.Email.SubjectPrefix == "" {
		config.Email.SubjectPrefix = "Daily M&A Radar"
	}
}

func (l *Loader) validate(config *ScanConfig) error {
	if len(config.Keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	if config.Sources.BusinessWire == "" {
		return fmt.Errorf("sources.businesswire URL is required")
	}
	if config.Sources.PRNewswire == "" {
		return fmt.Errorf("sources.prnewswire URL is required")
	}
	if config.Sources.GlobeNewswireJSON == "" {
		return fmt.Errorf("sources.globenewswire_json URL is required")
	}
	return nil
}
