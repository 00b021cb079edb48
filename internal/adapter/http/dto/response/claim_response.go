package response

import (
	"lecturer_claims/internal/domain/entities"
	"time"
)

type ClaimResponse struct {
	ID                 int       `json:"id"`
	LecturerName       string    `json:"lecturer_name"`
	ClaimMonth         string    `json:"claim_month"`
	HoursWorked        float64   `json:"hours_worked"`
	HourlyRate         float64   `json:"hourly_rate"`
	TotalAmount        float64   `json:"total_amount"`
	Status             string    `json:"status"`
	SupportingDocument string    `json:"supporting_document,omitempty"`
	HasDocument        bool      `json:"has_document"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ClaimStatusResponse carries a mutating operation's outcome message
// next to the affected claim. The message is the one-shot status line
// the UI shows exactly once after a redirect; the server keeps no
// message state, single-use display is the client's responsibility.
type ClaimStatusResponse struct {
	Message string        `json:"message"`
	Claim   ClaimResponse `json:"claim"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ID:                 c.ID,
		LecturerName:       c.LecturerName,
		ClaimMonth:         c.ClaimMonth,
		HoursWorked:        c.HoursWorked,
		HourlyRate:         c.HourlyRate,
		TotalAmount:        c.TotalAmount(),
		Status:             string(c.Status),
		SupportingDocument: c.SupportingDocument,
		HasDocument:        c.HasSupportingDocument(),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromClaims(claims []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}

func FromClaimWithMessage(message string, c entities.Claim) ClaimStatusResponse {
	return ClaimStatusResponse{Message: message, Claim: FromClaim(c)}
}
