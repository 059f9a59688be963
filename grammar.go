package emailvalidator

import "strings"

// Shared grammar constants. The symbol set and cutsets are the
// behavior-determining core of the package; changing any of them changes
// which addresses are accepted or repaired.
const (
	minEmailLen = 6
	maxEmailLen = 254
	maxLocalLen = 64
	minTLDLen   = 2

	// localSymbols lists the special characters allowed in a local part
	// alongside ASCII letters and digits.
	localSymbols = "!#$%&'*+/=?^_`{|}~.-"

	// edgeCutset is trimmed from both ends of raw input.
	edgeCutset = " \t\n\r\x00\x0b"

	// domainCutset additionally strips dots from domain edges.
	domainCutset = edgeCutset + "."

	// labelCutset strips hyphens and whitespace from label edges during repair.
	labelCutset = "-" + edgeCutset
)

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLocalChar reports whether c may appear in a local part. The class is
// ASCII-only, so any byte of a multi-byte UTF-8 sequence fails it.
func isLocalChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || strings.IndexByte(localSymbols, c) >= 0
}

// isLabelChar reports whether c may appear in a domain label.
func isLabelChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-'
}
