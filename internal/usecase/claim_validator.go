package usecase

import (
	"fmt"
	"strings"

	"lecturer_claims/internal/domain/entities"
)

const (
	MinHoursWorked = 1.0
	MaxHoursWorked = 300.0
	MinHourlyRate  = 1.0
	MaxHourlyRate  = 2000.0
)

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError wraps the full set of violations for one candidate
// claim. It is returned by Submit so handlers can redisplay per-field
// messages instead of a generic failure.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid claim: " + strings.Join(msgs, "; ")
}

// ValidateClaim checks field-level constraints on a candidate claim.
// It is pure: no side effects, an empty result means valid.
//
// Rules:
//   - lecturer name and claim month are required
//   - hours worked must be within [1, 300]
//   - hourly rate must be within [1, 2000]
func ValidateClaim(c entities.Claim) []FieldError {
	var violations []FieldError

	if strings.TrimSpace(c.LecturerName) == "" {
		violations = append(violations, FieldError{Field: "lecturer_name", Message: "Lecturer name is required."})
	}
	if strings.TrimSpace(c.ClaimMonth) == "" {
		violations = append(violations, FieldError{Field: "claim_month", Message: "Claim month is required."})
	}
	if c.HoursWorked < MinHoursWorked || c.HoursWorked > MaxHoursWorked {
		violations = append(violations, FieldError{Field: "hours_worked", Message: "Hours must be between 1 and 300."})
	}
	if c.HourlyRate < MinHourlyRate || c.HourlyRate > MaxHourlyRate {
		violations = append(violations, FieldError{Field: "hourly_rate", Message: "Hourly rate must be between 1 and 2000."})
	}

	return violations
}
