package domain

import "fmt"

// Status describes the lifecycle state of a server record.
// Any value may be assigned over any other; there is no transition rule.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusStandby Status = "STANDBY"
	StatusToDecom Status = "TO_DECOM"
)

// Purpose describes what a server is used for.
type Purpose string

const (
	PurposeProd    Purpose = "PROD"
	PurposeStaging Purpose = "STAGING"
	PurposeDev     Purpose = "DEV"
	PurposeTest    Purpose = "TEST"
)

// BillingType describes how a server is billed by its provider.
type BillingType string

const (
	BillingHourly  BillingType = "HOURLY"
	BillingMonthly BillingType = "MONTHLY"
	BillingSpot    BillingType = "SPOT"
)

// ParseStatus validates a raw status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusStandby, StatusToDecom:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q: %w", s, ErrValidation)
}

// ParsePurpose validates a raw purpose value.
func ParsePurpose(s string) (Purpose, error) {
	switch Purpose(s) {
	case PurposeProd, PurposeStaging, PurposeDev, PurposeTest:
		return Purpose(s), nil
	}
	return "", fmt.Errorf("unknown purpose %q: %w", s, ErrValidation)
}

// ParseBillingType validates a raw billing type value.
func ParseBillingType(s string) (BillingType, error) {
	switch BillingType(s) {
	case BillingHourly, BillingMonthly, BillingSpot:
		return BillingType(s), nil
	}
	return "", fmt.Errorf("unknown billing type %q: %w", s, ErrValidation)
}
