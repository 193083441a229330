// Package constant defines immutable application-level identifiers and defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "newpipe"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every engine request that does not carry its own User-Agent.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
