package domains

import (
	"fmt"
	"strings"

	emailvalidator "github.com/arraypress/email-validator"
)

// Policy decides which address domains are acceptable. Matching is exact and
// case-insensitive; subdomains of an allowed domain are not implicitly
// allowed.
type Policy struct {
	allowed map[string]bool
	blocked map[string]bool
}

// New builds a Policy from cfg. Every configured entry is normalized to
// lowercase and must parse as a plausible domain under the address grammar:
// at least two dot-separated alphanumeric labels with an alphabetic TLD.
func New(cfg Config) (*Policy, error) {
	p := &Policy{
		allowed: make(map[string]bool, len(cfg.AllowedDomains)),
		blocked: make(map[string]bool, len(cfg.BlockedDomains)),
	}

	for _, domain := range cfg.AllowedDomains {
		normalized, err := normalizeDomain(domain)
		if err != nil {
			return nil, err
		}
		p.allowed[normalized] = true
	}

	for _, domain := range cfg.BlockedDomains {
		normalized, err := normalizeDomain(domain)
		if err != nil {
			return nil, err
		}
		p.blocked[normalized] = true
	}

	return p, nil
}

// MustNew creates a Policy that panics on invalid configuration.
func MustNew(cfg Config) *Policy {
	p, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Allows reports whether the domain of email is acceptable. Input without a
// usable domain part is never acceptable.
func (p *Policy) Allows(email string) bool {
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 {
		return false
	}
	return p.AllowsDomain(email[at+1:])
}

// AllowsDomain reports whether domain is acceptable: not on the block list,
// and either the allow list is empty or the domain appears on it.
func (p *Policy) AllowsDomain(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return false
	}
	if p.blocked[domain] {
		return false
	}
	if len(p.allowed) == 0 {
		return true
	}
	return p.allowed[domain]
}

// normalizeDomain lowercases a configured entry and verifies it against the
// address grammar by probing it with a synthetic local part.
func normalizeDomain(domain string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(domain))
	if normalized == "" || !emailvalidator.IsValidEmail("probe@"+normalized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	return normalized, nil
}
