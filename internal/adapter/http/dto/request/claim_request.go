package request

import (
	"strings"

	"lecturer_claims/internal/domain/entities"
)

// ClaimRequest is the submission payload. It binds from multipart
// form fields (the submission form posts files alongside the claim)
// and from JSON for API clients.
//
// Deliberately no binding:"required" tags: requiredness and ranges
// are owned by the claim validator so every failure comes back
// field-scoped instead of as a generic bad-request.
type ClaimRequest struct {
	LecturerName string  `form:"lecturer_name" json:"lecturer_name"`
	ClaimMonth   string  `form:"claim_month" json:"claim_month"`
	HoursWorked  float64 `form:"hours_worked" json:"hours_worked"`
	HourlyRate   float64 `form:"hourly_rate" json:"hourly_rate"`
}

// ToClaim maps the payload onto a candidate claim. Status and id are
// not client-settable; the workflow forces them.
func (r ClaimRequest) ToClaim() entities.Claim {
	return entities.Claim{
		LecturerName: strings.TrimSpace(r.LecturerName),
		ClaimMonth:   strings.TrimSpace(r.ClaimMonth),
		HoursWorked:  r.HoursWorked,
		HourlyRate:   r.HourlyRate,
	}
}
