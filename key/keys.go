// Package key defines the canonical set of configuration identifiers.
package key

// Network Transport - these keys tune the HTTP client handed to the downloader.
const (
	NetworkTimeout        = "network.timeout"
	NetworkUserAgent      = "network.user_agent"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Extraction Engine - these keys govern which service is queried and for which region.
const (
	ExtractorDefaultService = "extractor.default_service"
	ExtractorCountry        = "extractor.country"
)

// Output Rendering - these keys shape the JSON written by the streams and search commands.
const (
	OutputPretty = "output.pretty"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
	CliIcons   = "cli.icons"
)
