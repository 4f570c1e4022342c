// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Preniv is the canonical application identifier used for filesystem paths and CLI branding.
	Preniv = "preniv"

	// Version is the current application semantic version string.
	Version = "1.0.0"

	// UserAgent is the mobile HTTP User-Agent string used for upstream metadata requests.
	// The upstream resolver serves its mobile response shapes for this agent.
	UserAgent = "Mozilla/5.0 (Linux; Android 10; Mobile) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.210 Mobile Safari/537.36"

	// DesktopUserAgent is used for direct media file transfers.
	DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)
