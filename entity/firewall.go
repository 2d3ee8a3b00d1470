package entity

// Firewall maps the [firewall] section. When enabled, a rate-based rule
// keyed by client address is associated with the gateway stage.
type Firewall struct {
	Enabled   bool `toml:"enabled"`
	RateLimit int  `toml:"rate_limit"`
}
