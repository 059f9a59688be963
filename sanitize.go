package emailvalidator

import "strings"

// SanitizeEmail attempts to repair email into a usable address: trims
// surrounding whitespace, lowercases, strips characters outside the allowed
// local-part set, collapses repeated dots in the domain, and per label trims
// edge hyphens and whitespace before removing anything outside [a-z0-9-].
// Labels left empty by the repair are dropped. The empty string is returned
// when no plausible address remains.
//
// Repair is best effort: length caps, the top-level-domain rule, and the
// local-part edge-dot rules are not enforced here, so a non-empty result is
// not guaranteed to pass IsValidEmail for pathological input.
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.Trim(email, edgeCutset))
	if len(email) < minEmailLen {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at < 1 {
		return ""
	}

	local := filterLocal(email[:at])
	if local == "" {
		return ""
	}

	domain := strings.Trim(collapseDots(email[at+1:]), domainCutset)
	if domain == "" {
		return ""
	}

	labels := strings.Split(domain, ".")
	kept := make([]string, 0, len(labels))
	for _, label := range labels {
		label = filterLabel(strings.Trim(label, labelCutset))
		if label != "" {
			kept = append(kept, label)
		}
	}
	if len(kept) < 2 {
		return ""
	}

	return local + "@" + strings.Join(kept, ".")
}

// filterLocal drops every byte outside the allowed local-part set.
func filterLocal(local string) string {
	var b strings.Builder
	b.Grow(len(local))
	for i := 0; i < len(local); i++ {
		if isLocalChar(local[i]) {
			b.WriteByte(local[i])
		}
	}
	return b.String()
}

// filterLabel drops every byte outside [a-z0-9-]. Input is already
// lowercased, so uppercase letters are stripped rather than folded.
func filterLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		if (c >= 'a' && c <= 'z') || isDigit(c) || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// collapseDots rewrites every run of two or more dots as a single dot.
func collapseDots(domain string) string {
	if !strings.Contains(domain, "..") {
		return domain
	}
	var b strings.Builder
	b.Grow(len(domain))
	prevDot := false
	for i := 0; i < len(domain); i++ {
		c := domain[i]
		if c == '.' {
			if prevDot {
				continue
			}
			prevDot = true
		} else {
			prevDot = false
		}
		b.WriteByte(c)
	}
	return b.String()
}
