package cfg

type Cfg struct {
	// Storage and scan profile
	DBPath     string
	ConfigPath string

	// Fetch behavior
	FetchTimeout int // seconds
	DryRun       bool

	// SMTP delivery
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string
	EmailTo      string

	// Application metadata
	Debug   bool
	Version string
}
