package domain

// Config represents the addrbook workspace configuration loaded from addrbook.yaml.
type Config struct {
	Defaults DefaultsConfig
	Logging  LoggingConfig
}

type DefaultsConfig struct {
	// Book is the seed file, relative to the workspace root.
	Book         string
	BatchSize    int
	UpcomingDays int
}

type LoggingConfig struct {
	Dir string
}

// DefaultConfig provides sane defaults if addrbook.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Book:         "book.yaml",
			BatchSize:    2,
			UpcomingDays: 7,
		},
		Logging: LoggingConfig{
			Dir: ".addrbook/logs",
		},
	}
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root string
}
