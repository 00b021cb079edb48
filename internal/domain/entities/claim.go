package entities

import "time"

// ClaimStatus represents the lifecycle of a lecturer claim.
//
// Domain notes:
//   - Every claim starts as Pending; a coordinator moves it to
//     Approved or Rejected during verification.
//   - Transitions are permissive: re-approving a rejected claim is
//     allowed (matches the coordinator workflow in production).

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "Pending"
	ClaimStatusApproved ClaimStatus = "Approved"
	ClaimStatusRejected ClaimStatus = "Rejected"
)

// Claim is a lecturer's monthly work-hour claim.
//
// Identity:
//   - ID is assigned by the repository (max existing id + 1) and is
//     never reused.
//
// SupportingDocument holds the generated storage name of the uploaded
// evidence file; empty when nothing was uploaded.
type Claim struct {
	ID                 int         `json:"id"`
	LecturerName       string      `json:"lecturer_name"`
	ClaimMonth         string      `json:"claim_month"`
	HoursWorked        float64     `json:"hours_worked"`
	HourlyRate         float64     `json:"hourly_rate"`
	Status             ClaimStatus `json:"status"`
	SupportingDocument string      `json:"supporting_document,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// TotalAmount is derived from hours and rate on every access.
// It is intentionally not a stored field so it can never drift from
// its inputs.
func (c Claim) TotalAmount() float64 {
	return c.HoursWorked * c.HourlyRate
}

// HasSupportingDocument reports whether an evidence file was attached.
func (c Claim) HasSupportingDocument() bool {
	return c.SupportingDocument != ""
}
