package repository

import (
	"context"
	"sync"
	"time"

	"lecturer_claims/internal/domain/entities"
	"lecturer_claims/internal/usecase/interfaces"
)

// ClaimMemoryRepository keeps the claim collection in process memory.
//
// Concurrency model:
//   - Insert and UpdateStatus serialize behind a write lock so two
//     concurrent submissions can never compute the same next id and
//     two decisions can never race on the same claim.
//   - All and GetByID take a read lock and return copies, so readers
//     observe a consistent snapshot and callers can never mutate the
//     canonical collection through a returned value.
//
// The collection is append-only with respect to identities: claims
// are never deleted and ids are never reused.

type ClaimMemoryRepository struct {
	mu     sync.RWMutex
	claims []entities.Claim
}

var _ interfaces.IClaimRepository = (*ClaimMemoryRepository)(nil)

func NewClaimMemoryRepository() *ClaimMemoryRepository {
	return &ClaimMemoryRepository{}
}

// Seed loads fixture claims verbatim, keeping their ids. Intended for
// wiring demo data and tests; not part of IClaimRepository.
func (r *ClaimMemoryRepository) Seed(claims ...entities.Claim) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims = append(r.claims, claims...)
}

// Insert assigns the next free id (max existing id + 1, or 1 when
// empty) and appends the claim.
func (r *ClaimMemoryRepository) Insert(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := 1
	for _, existing := range r.claims {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	c.ID = next
	r.claims = append(r.claims, c)
	return c, nil
}

// All returns every claim in insertion order.
func (r *ClaimMemoryRepository) All(ctx context.Context) ([]entities.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Claim, len(r.claims))
	copy(out, r.claims)
	return out, nil
}

// GetByID returns the claim with the given id, or a zero-value claim
// when absent.
func (r *ClaimMemoryRepository) GetByID(ctx context.Context, id int) (entities.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.claims {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Claim{}, nil
}

// UpdateStatus sets the status of the claim with the given id and
// returns the updated claim, or a zero-value claim when absent.
func (r *ClaimMemoryRepository) UpdateStatus(ctx context.Context, id int, status entities.ClaimStatus) (entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.claims {
		if r.claims[i].ID == id {
			r.claims[i].Status = status
			r.claims[i].UpdatedAt = time.Now().UTC()
			return r.claims[i], nil
		}
	}
	return entities.Claim{}, nil
}

// SampleClaims returns the demo fixtures seeded at startup so the
// verification and tracking views have data on a fresh process.
func SampleClaims() []entities.Claim {
	now := time.Now().UTC()
	return []entities.Claim{
		{ID: 1, LecturerName: "t.mokoena", ClaimMonth: "March 2025", HoursWorked: 12, HourlyRate: 450, Status: entities.ClaimStatusPending, SupportingDocument: "timesheet_mar.pdf", CreatedAt: now, UpdatedAt: now},
		{ID: 2, LecturerName: "n.khanye", ClaimMonth: "March 2025", HoursWorked: 8, HourlyRate: 500, Status: entities.ClaimStatusApproved, SupportingDocument: "timesheet_mar.pdf", CreatedAt: now, UpdatedAt: now},
		{ID: 3, LecturerName: "a.naidoo", ClaimMonth: "April 2025", HoursWorked: 10, HourlyRate: 420, Status: entities.ClaimStatusPending, SupportingDocument: "evidence.zip", CreatedAt: now, UpdatedAt: now},
	}
}
