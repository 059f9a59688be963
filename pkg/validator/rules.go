package validator

import (
	"fmt"
	"strings"

	emailvalidator "github.com/arraypress/email-validator"
)

// RequiredEmail validates that an address field is not empty after trimming
// whitespace.
func RequiredEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail validates the address against the package grammar: ASCII-only,
// single @, alphanumeric dot-separated labels, alphabetic TLD.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailvalidator.IsValidEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RepairableEmail passes when the address is valid or can be repaired by
// sanitization. Use it on intake forms where cleanup runs before storage.
func RepairableEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailvalidator.SanitizeEmail(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "cannot be repaired into a valid email address",
			TranslationKey: "validation.email_repairable",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailMinLen validates the total address length against a lower bound.
func EmailMinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// EmailMaxLen validates the total address length against an upper bound,
// typically a storage column cap tighter than the grammar's 254.
func EmailMaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LocalPartMaxLen validates the length of the part before the first @. The
// check fails when no local part exists at all.
func LocalPartMaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			at := strings.IndexByte(value, '@')
			return at >= 1 && at <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("local part must be at most %d characters long", max),
			TranslationKey: "validation.email_local_max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// EmailInDomains validates that the address domain matches one of the allowed
// domains, compared case-insensitively.
func EmailInDomains(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			domain := emailDomain(value)
			if domain == "" {
				return false
			}
			for _, d := range allowed {
				if strings.EqualFold(domain, d) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("email domain must be one of: %s", strings.Join(allowed, ", ")),
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field":           field,
				"allowed_domains": allowed,
			},
		},
	}
}

// EmailNotInDomains validates that the address domain matches none of the
// blocked domains. An address without a domain part passes, since there is
// nothing to match against the list.
func EmailNotInDomains(field, value string, blocked []string) Rule {
	return Rule{
		Check: func() bool {
			domain := emailDomain(value)
			if domain == "" {
				return true
			}
			for _, d := range blocked {
				if strings.EqualFold(domain, d) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "email domain is not allowed",
			TranslationKey: "validation.email_domain_blocked",
			TranslationValues: map[string]any{
				"field":           field,
				"blocked_domains": blocked,
			},
		},
	}
}

// emailDomain returns the domain of value lowercased, or "" when value has no
// usable domain part.
func emailDomain(value string) string {
	at := strings.IndexByte(value, '@')
	if at < 1 || at == len(value)-1 {
		return ""
	}
	return strings.ToLower(value[at+1:])
}
