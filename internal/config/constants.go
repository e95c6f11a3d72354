package config

import "time"

// app constants
const (
	AppName = "logdeck"
	Version = "0.3.0"

	AppDescription = "Terminal console for browsing, filtering and exporting application logs"

	ConfigFile = "logdeck.yaml"
	EnvPrefix  = "LOGDECK"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// store constants
const (
	DefaultStoreCapacity = 1000
	DefaultBusBuffer     = 100
)

// stream constants
const (
	DefaultStreamInterval = 2000 * time.Millisecond
)

// ui constants
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultTheme = ThemeDark
)

// export constants
const (
	ExportJSON = "json"
	ExportYAML = "yaml"

	DefaultExportFormat = ExportJSON
	DefaultExportPath   = "logdeck-export"
)

// shutdown constants
const (
	ShutdownTimeout = 5 * time.Second
)
