package sanitizer

import (
	emailvalidator "github.com/arraypress/email-validator"
)

// CleanEmailList repairs every entry, unwrapping display forms first, and
// drops entries that cannot be repaired. Survivors are deduplicated with the
// order of first appearance preserved.
func CleanEmailList(emails []string) []string {
	result := make([]string, 0, len(emails))
	seen := make(map[string]bool, len(emails))

	for _, email := range emails {
		cleaned := emailvalidator.SanitizeEmail(StripDisplayName(email))
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		result = append(result, cleaned)
	}

	return result
}

// FilterValidEmails returns only the entries that already pass validation,
// unaltered.
func FilterValidEmails(emails []string) []string {
	result := make([]string, 0, len(emails))

	for _, email := range emails {
		if emailvalidator.IsValidEmail(email) {
			result = append(result, email)
		}
	}

	return result
}

// DeduplicateEmails removes case-insensitive duplicates, keeping the first
// occurrence in its original casing.
func DeduplicateEmails(emails []string) []string {
	result := make([]string, 0, len(emails))
	seen := make(map[string]bool, len(emails))

	for _, email := range emails {
		key := TrimToLower(email)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, email)
	}

	return result
}
