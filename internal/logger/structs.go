package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled  bool   `toml:"enabled"`
	Path     string `toml:"path"`
	Filename string `toml:"filename"`

	MaxSize    int `toml:"maxSize"`
	MaxBackups int `toml:"maxBackups"`
	MaxAge     int `toml:"maxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `toml:"logLevel"` // trace, debug, info, warn, error.

	ReportCaller bool `toml:"reportCaller"`

	AppName string `toml:"appName"`

	// Console used for interactive runs.
	Console Console `toml:"console"`

	// File keeps a rotated log next to the tool for auditing generated runs.
	File LogFile `toml:"file"`
}
