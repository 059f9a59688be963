package sanitizer

import (
	"strings"

	emailvalidator "github.com/arraypress/email-validator"
)

// CleanEmail runs the full grammar repair: trims, lowercases, strips
// disallowed characters, collapses dot runs, and drops broken domain labels.
// Returns "" when the input cannot be repaired into a plausible address.
func CleanEmail(email string) string {
	return emailvalidator.SanitizeEmail(email)
}

// NormalizeEmail applies the minimal lossless normalization: trim and
// lowercase. Unlike CleanEmail it never strips characters, so malformed
// input comes back malformed rather than altered or emptied.
func NormalizeEmail(email string) string {
	return TrimToLower(email)
}

// CollapseDots consolidates consecutive dots in the domain part, which cause
// delivery failures with some providers. The local part is left untouched.
func CollapseDots(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + dotRunRegex.ReplaceAllString(email[at+1:], ".")
}

// StripDisplayName extracts the address from a display form like
// `Jane Doe <jane@example.com>`. Input without an angle-bracketed address is
// returned unchanged.
func StripDisplayName(email string) string {
	m := angleAddrRegex.FindStringSubmatch(email)
	if m == nil {
		return email
	}
	return m[1]
}

// ExtractDomain returns the lowercased domain part, or "" when the input does
// not split into exactly a local part and a domain.
func ExtractDomain(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// ExtractLocalPart returns the lowercased part before the @, or "" when the
// input does not split into exactly a local part and a domain.
func ExtractLocalPart(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[0])
}

// MaskEmail hides the local part for display while keeping the domain
// recognizable: john.doe@example.com becomes j*******@example.com.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local, domain := parts[0], parts[1]
	if local == "" {
		return email
	}
	if len(local) == 1 {
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}
