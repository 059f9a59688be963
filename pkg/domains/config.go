package domains

// Config holds the domain policy configuration. Both lists are optional: an
// empty allow list admits every domain, and the block list always wins over
// the allow list. Entries are comma-separated in the environment.
type Config struct {
	AllowedDomains []string `env:"EMAIL_ALLOWED_DOMAINS" envSeparator:","`
	BlockedDomains []string `env:"EMAIL_BLOCKED_DOMAINS" envSeparator:","`
}
