package emailvalidator

import "strings"

// IsValidEmail reports whether email is a syntactically acceptable address.
//
// The input is trimmed of surrounding whitespace first; the trimmed form must
// be 6 to 254 characters long, contain exactly one @ with a non-empty local
// part of at most 64 characters, and carry a domain of at least two
// dot-separated alphanumeric labels ending in an alphabetic top-level domain
// of two or more characters. Whitespace or control characters anywhere in the
// trimmed string reject the address, as does any non-ASCII character.
//
// The check never panics and performs no I/O.
func IsValidEmail(email string) bool {
	email = strings.Trim(email, edgeCutset)

	for i := 0; i < len(email); i++ {
		if email[i] <= ' ' || email[i] == 0x7f {
			return false
		}
	}

	if len(email) < minEmailLen || len(email) > maxEmailLen {
		return false
	}

	at := strings.IndexByte(email, '@')
	if at < 1 || strings.IndexByte(email[at+1:], '@') >= 0 {
		return false
	}
	local, domain := email[:at], email[at+1:]

	if len(local) > maxLocalLen {
		return false
	}
	for i := 0; i < len(local); i++ {
		if !isLocalChar(local[i]) {
			return false
		}
	}
	if local[0] == '.' || local[len(local)-1] == '.' || strings.Contains(local, "..") {
		return false
	}

	if strings.Contains(domain, "..") || strings.Trim(domain, domainCutset) != domain {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			if !isLabelChar(label[i]) {
				return false
			}
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < minTLDLen {
		return false
	}
	for i := 0; i < len(tld); i++ {
		if !isAlpha(tld[i]) {
			return false
		}
	}

	return true
}
