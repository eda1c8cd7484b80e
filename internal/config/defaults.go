package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Path:           "vlc",
			Host:           "127.0.0.1",
			Port:           8080,
			StartupWait:    3,
			RequestTimeout: 3,
		},
		RC: RCConfig{
			Address: "127.0.0.1:4212",
			Timeout: 1000,
		},
		Library: LibraryConfig{
			Root:       "~/Videos",
			Extensions: []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v"},
		},
		TUI: TUIConfig{
			Theme:           "auto",
			RefreshInterval: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Player
	if c.Player.Path == "" {
		c.Player.Path = d.Player.Path
	}
	if c.Player.Host == "" {
		c.Player.Host = d.Player.Host
	}
	if c.Player.Port == 0 {
		c.Player.Port = d.Player.Port
	}
	if c.Player.StartupWait == 0 {
		c.Player.StartupWait = d.Player.StartupWait
	}
	if c.Player.RequestTimeout == 0 {
		c.Player.RequestTimeout = d.Player.RequestTimeout
	}

	// RC
	if c.RC.Address == "" {
		c.RC.Address = d.RC.Address
	}
	if c.RC.Timeout == 0 {
		c.RC.Timeout = d.RC.Timeout
	}

	// Library
	if c.Library.Root == "" {
		c.Library.Root = d.Library.Root
	}
	if len(c.Library.Extensions) == 0 {
		c.Library.Extensions = d.Library.Extensions
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = d.TUI.RefreshInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
