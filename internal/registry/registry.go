// Package registry is the service layer of the inventory: one registry per
// entity kind, each enforcing required fields, validating optional input
// (email syntax, enum values, dates), and delegating storage and relation
// loading to the inventory store.
//
// Registries never call each other; all cross-entity linkage is a foreign
// key resolved by the store. Errors are classified with the sentinels in
// package domain and always propagate to the caller; nothing here logs,
// retries, or recovers.
package registry

import (
	"fmt"
	"regexp"
	"strings"

	"serverbook/internal/domain"
)

// emailRe is deliberately loose: one @, no whitespace, a dot in the domain.
// Full RFC 5322 parsing buys nothing for an internal contact field.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("registry: invalid email %q: %w", email, domain.ErrValidation)
	}
	return nil
}

// requireText checks a required string field was supplied and is non-blank.
func requireText(field string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", fmt.Errorf("registry: %s is required: %w", field, domain.ErrConstraint)
	}
	return *v, nil
}
