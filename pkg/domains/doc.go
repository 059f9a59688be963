// Package domains implements an environment-configured allow/block policy
// for email address domains, the gate applications put in front of signup
// and invite flows.
//
// The policy is built from two comma-separated environment lists:
//
//	EMAIL_ALLOWED_DOMAINS=example.com,corp.example.org
//	EMAIL_BLOCKED_DOMAINS=tempmail.dev
//
// An empty allow list admits every domain; the block list always wins. Every
// configured entry is validated against the address grammar at construction,
// so typos fail at startup instead of becoming rules that never match.
//
// # Usage
//
//	var cfg domains.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
//	policy, err := domains.New(cfg)
//	if err != nil {
//	    log.Fatalf("building domain policy: %v", err)
//	}
//
//	if !policy.Allows(signupEmail) {
//	    // reject the signup
//	}
//
// A Policy is immutable after construction and safe for concurrent use.
package domains
