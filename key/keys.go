// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Upstream API - these keys locate the third-party resolver endpoints.
const (
	APIBase          = "api.base"
	APITimeout       = "api.timeout"
	APITLSCamouflage = "api.tls_camouflage"

	// APIEndpointsPrefix + "." + <platform id> overrides one resolver path.
	APIEndpointsPrefix = "api.endpoints"
)

// Download Behavior - these keys govern file transfers and their destinations.
const (
	DownloadDir          = "download.dir"
	DownloadMaxAudioMB   = "download.max_audio_mb"
	DownloadProxyTimeout = "download.proxy_timeout"
)

// HTTP Server - these keys configure the REST front end.
const (
	ServerPort = "server.port"
	ServerHost = "server.host"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Command Line Interface - these keys define terminal presentation behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliPageSize     = "cli.page_size"
)

// Diagnostics - these keys control the structured logging subsystem.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
