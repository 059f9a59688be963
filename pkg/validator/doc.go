// Package validator provides composable rule-based validation for email
// address fields, built on top of the root grammar checks.
//
// The package promotes declarative validation by letting you build small Rule
// values that pair a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with the Apply helper, which aggregates any
// failures into a ValidationErrors slice that satisfies the error interface,
// so multiple field-specific problems bubble up in a single error return.
//
// # Architecture
//
// Every exported rule constructor simply returns a Rule instance; there is no
// hidden global state, so the package is stateless, allocation-light, and
// goroutine-safe.
//
// Core building blocks:
//   - Rule              - lightweight struct containing Check func and error meta
//   - ValidationError   - describes a single failure and supports i18n keys
//   - ValidationErrors  - slice type that implements the error interface
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredEmail("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.EmailNotInDomains("email", email, blockedDomains),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and Is, so errors.Is(err,
// validator.ErrValidationFailed) detects validation problems while the
// helper methods Has, Get, and Fields expose the per-field details.
package validator
