package domains

import "errors"

var (
	ErrInvalidDomain = errors.New("domains.errors.invalid_domain")
)
