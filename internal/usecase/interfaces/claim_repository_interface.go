package interfaces

import (
	"context"
	"lecturer_claims/internal/domain/entities"
)

// IClaimRepository abstracts the claim collection.
//
// The claims service must be able to:
//   - insert a submitted claim, assigning the next free id
//   - list every claim in insertion order (verification and tracking
//     read the same sequence)
//   - look a claim up by id
//   - update a claim's status during verification
//
// Not-found is signalled by a zero-value Claim (ID == 0) with a nil
// error; errors are reserved for storage faults.
type IClaimRepository interface {
	Insert(ctx context.Context, c entities.Claim) (entities.Claim, error)
	All(ctx context.Context) ([]entities.Claim, error)
	GetByID(ctx context.Context, id int) (entities.Claim, error)
	UpdateStatus(ctx context.Context, id int, status entities.ClaimStatus) (entities.Claim, error)
}
