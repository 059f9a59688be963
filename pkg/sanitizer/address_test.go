package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arraypress/email-validator/pkg/sanitizer"
)

func TestCleanEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean",
			input:    "user@example.com",
			expected: "user@example.com",
		},
		{
			name:     "uppercase with padding",
			input:    "  USER@EXAMPLE.COM  ",
			expected: "user@example.com",
		},
		{
			name:     "dot runs and stray characters",
			input:    "  TE<S>T@..DOM-AIN..COM.  ",
			expected: "test@dom-ain.com",
		},
		{
			name:     "unrepairable",
			input:    "plainaddress",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.CleanEmail(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims and lowercases",
			input:    "  John.Doe@EXAMPLE.COM  ",
			expected: "john.doe@example.com",
		},
		{
			name:     "keeps malformed input",
			input:    "not-an-email",
			expected: "not-an-email",
		},
		{
			name:     "keeps dot runs",
			input:    "user@domain..com",
			expected: "user@domain..com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.NormalizeEmail(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCollapseDots(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "domain dot runs",
			input:    "user@domain...com",
			expected: "user@domain.com",
		},
		{
			name:     "local dots preserved",
			input:    "u..ser@domain..com",
			expected: "u..ser@domain.com",
		},
		{
			name:     "single dots unchanged",
			input:    "user@sub.domain.com",
			expected: "user@sub.domain.com",
		},
		{
			name:     "no at sign",
			input:    "no.dots..here",
			expected: "no.dots..here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.CollapseDots(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStripDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "display form",
			input:    "Jane Doe <jane@example.com>",
			expected: "jane@example.com",
		},
		{
			name:     "bare address unchanged",
			input:    "jane@example.com",
			expected: "jane@example.com",
		},
		{
			name:     "empty angle brackets unchanged",
			input:    "Jane <>",
			expected: "Jane <>",
		},
		{
			name:     "bracketed text with spaces unchanged",
			input:    "<not an address>",
			expected: "<not an address>",
		},
		{
			name:     "bracketed fragment without at sign unchanged",
			input:    "TE<S>T@example.com",
			expected: "TE<S>T@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.StripDisplayName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases domain",
			input:    "user@Example.COM",
			expected: "example.com",
		},
		{
			name:     "padded input",
			input:    "  user@example.com  ",
			expected: "example.com",
		},
		{
			name:     "no at sign",
			input:    "plainaddress",
			expected: "",
		},
		{
			name:     "two at signs",
			input:    "a@b@c.com",
			expected: "",
		},
		{
			name:     "missing domain",
			input:    "user@",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.ExtractDomain(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractLocalPart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases local part",
			input:    "User.Name@example.com",
			expected: "user.name",
		},
		{
			name:     "no at sign",
			input:    "plainaddress",
			expected: "",
		},
		{
			name:     "missing local part",
			input:    "@example.com",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.ExtractLocalPart(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "typical address",
			input:    "john.doe@example.com",
			expected: "j*******@example.com",
		},
		{
			name:     "single character local",
			input:    "j@example.com",
			expected: "*@example.com",
		},
		{
			name:     "two character local",
			input:    "jd@example.com",
			expected: "j*@example.com",
		},
		{
			name:     "not an address",
			input:    "plainaddress",
			expected: "plainaddress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.MaskEmail(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
