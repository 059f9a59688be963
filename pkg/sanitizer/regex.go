package sanitizer

import "regexp"

// Pre-compiled patterns shared by the address helpers.
var (
	// Runs of dots, collapsed by CollapseDots.
	dotRunRegex = regexp.MustCompile(`\.+`)

	// Angle-bracketed address inside a display form like `Jane <jane@x.com>`.
	// Bracketed fragments without an @ are not treated as addresses.
	angleAddrRegex = regexp.MustCompile(`<([^<>\s]+@[^<>\s]+)>`)
)
