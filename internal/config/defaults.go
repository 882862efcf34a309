package config

// Default returns the repository default configuration. Paths are expanded
// during Load.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: "~/.local/share/slate",
			LogDir:  "~/.local/share/slate/logs",
		},
		Project: Project{
			Name:            "Untitled Production",
			DefaultTimeline: "main",
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
