package service

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultPasswordSymbols is the symbol set accepted by the default policy.
const DefaultPasswordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?/|~"

// PasswordPolicy validates candidate secrets before they are hashed.
type PasswordPolicy struct {
	MinLength int
	Symbols   string
}

// DefaultPasswordPolicy requires at least 8 characters with an upper, a
// lower, a digit and a symbol.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength: 8,
		Symbols:   DefaultPasswordSymbols,
	}
}

// Validate returns an error wrapping ErrWeakPassword describing the first
// failed requirement, or nil when the candidate satisfies the policy.
func (p PasswordPolicy) Validate(password string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, p.MinLength)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(p.Symbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return fmt.Errorf("%w: must contain an uppercase letter", ErrWeakPassword)
	case !hasLower:
		return fmt.Errorf("%w: must contain a lowercase letter", ErrWeakPassword)
	case !hasDigit:
		return fmt.Errorf("%w: must contain a digit", ErrWeakPassword)
	case !hasSymbol:
		return fmt.Errorf("%w: must contain a symbol", ErrWeakPassword)
	}

	return nil
}
