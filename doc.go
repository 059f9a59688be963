// Package emailvalidator provides syntactic validation and best-effort
// sanitization of email addresses under a practical RFC 5321 subset.
//
// The package exposes two pure functions sharing one grammar: IsValidEmail
// rejects any string that violates the grammar, while SanitizeEmail repairs
// what it can (trimming, lowercasing, stripping disallowed characters,
// collapsing repeated dots, dropping broken domain labels) and returns an
// empty string when nothing usable remains.
//
// # Usage
//
//	if !emailvalidator.IsValidEmail(input) {
//		cleaned := emailvalidator.SanitizeEmail(input)
//		if cleaned == "" {
//			return ErrUnusableAddress
//		}
//		input = cleaned
//	}
//
// Both functions are total over arbitrary string input, never panic, and hold
// no state, so they are safe for concurrent use without coordination.
//
// # Guarantees and Limits
//
// The grammar is ASCII-only and deliberately narrower than full RFC 5321:
// quoted local parts, comments, IP-literal domains, and internationalized
// addresses are all rejected. No DNS lookups or mailbox checks are performed.
//
// Sanitization is a repair pass, not a proof of validity. It restores the
// structural minimums (a usable local part and at least two domain labels)
// but does not re-apply every validator rule, so callers needing a hard
// guarantee should validate the sanitized result.
package emailvalidator
