package config

// ScanConfig is the scan profile: what to look for and where.
type ScanConfig struct {
	Keywords []string    `yaml:"keywords"`
	Sources  SourceURLs  `yaml:"sources"`
	Email    EmailConfig `yaml:"email"`
}

// SourceURLs holds the per-source feed URLs.
type SourceURLs struct {
	BusinessWire      string `yaml:"businesswire"`
	PRNewswire        string `yaml:"prnewswire"`
	GlobeNewswireJSON string `yaml:"globenewswire_json"`
}

type EmailConfig struct {
	SubjectPrefix string `yaml:"subject_prefix"`
}
