// Package sanitizer provides helper functions for cleaning and normalizing
// email addresses and address lists before storage or delivery.
//
// The functions are grouped conceptually into several areas:
//
//   - Strings – trimming, lowercasing, truncation and control-character
//     removal, the primitives the address helpers are built from.
//
//   - Addresses – repair and normalization of a single address: CleanEmail
//     (full grammar repair), NormalizeEmail (lossless trim+lowercase),
//     CollapseDots, StripDisplayName, ExtractDomain, ExtractLocalPart and
//     MaskEmail for privacy-preserving display.
//
//   - Lists – recipient-list hygiene: repairing, filtering and deduplicating
//     slices of addresses while preserving order of first appearance.
//
// The package is completely stateless. All helpers are small, focused
// functions that can be freely combined; the higher-order Apply and Compose
// helpers build reusable cleanup pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripDisplayName,
//	    sanitizer.CleanEmail,
//	)
//
//	addr := clean("Jane Doe <JANE@EXAMPLE..COM>") // "jane@example.com"
//
// # Error handling
//
// None of the helpers returns an error – they always fall back to a safe
// result (the original input or an empty string) if cleanup fails. An empty
// string from CleanEmail or CleanEmailList means the input was unrepairable.
//
// # Performance
//
// All operations allocate only what is necessary, and because there is no
// global state the helpers are safe for use from multiple goroutines
// concurrently.
package sanitizer
