package config

// Config is the root configuration structure.
type Config struct {
	Player  PlayerConfig  `toml:"player"`
	RC      RCConfig      `toml:"rc"`
	Library LibraryConfig `toml:"library"`
	TUI     TUIConfig     `toml:"tui"`
	Log     LogConfig     `toml:"log"`
}

// PlayerConfig holds the VLC binary and http interface settings.
type PlayerConfig struct {
	Path           string   `toml:"path"`
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	Password       string   `toml:"password"`
	StartupWait    int      `toml:"startup_wait"`    // seconds
	RequestTimeout int      `toml:"request_timeout"` // seconds
	ExtraArgs      []string `toml:"extra_args"`
}

// RCConfig holds settings for VLC's line-oriented remote control socket.
type RCConfig struct {
	Address string `toml:"address"`
	Timeout int    `toml:"timeout"` // milliseconds
}

// LibraryConfig holds the movie library location and the video extensions it lists.
type LibraryConfig struct {
	Root       string   `toml:"root"`
	Extensions []string `toml:"extensions"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme           string `toml:"theme"`
	RefreshInterval int    `toml:"refresh_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
