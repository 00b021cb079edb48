package response

import (
	"testing"
	"time"

	"lecturer_claims/internal/domain/entities"
)

func TestFromClaim(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Claim{
		ID:                 2,
		LecturerName:       "n.khanye",
		ClaimMonth:         "March 2025",
		HoursWorked:        8,
		HourlyRate:         500,
		Status:             entities.ClaimStatusApproved,
		SupportingDocument: "abc_timesheet_mar.pdf",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	res := FromClaim(c)
	if res.ID != 2 || res.LecturerName != "n.khanye" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.TotalAmount != 4000 {
		t.Fatalf("expected total 4000, got %v", res.TotalAmount)
	}
	if res.Status != "Approved" || !res.HasDocument {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromClaims(t *testing.T) {
	out := FromClaims([]entities.Claim{{ID: 1}, {ID: 2}})
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("unexpected mapping: %+v", out)
	}
}

func TestFromClaimWithMessage(t *testing.T) {
	res := FromClaimWithMessage("Claim #1 approved successfully.", entities.Claim{ID: 1})
	if res.Message != "Claim #1 approved successfully." || res.Claim.ID != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
}
