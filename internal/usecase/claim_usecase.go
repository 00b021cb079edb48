package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"lecturer_claims/internal/domain/entities"
	"lecturer_claims/internal/usecase/interfaces"
)

var (
	ErrClaimNotFound        = errors.New("claim not found")
	ErrInvalidClaimID       = errors.New("invalid claim id")
	ErrNoSupportingDocument = errors.New("claim has no supporting document")
	ErrDocumentFileMissing  = errors.New("supporting document file missing")
)

// ClaimAttachment is an uploaded supporting document accompanying a
// submission. Content is consumed exactly once during Submit.
type ClaimAttachment struct {
	FileName string
	Content  io.Reader
}

// IClaimUseCase exposes the claim lifecycle operations.
//
// These map onto the lecturer/coordinator workflow:
//   - lecturer submits a monthly claim (optionally with evidence)
//   - coordinator lists claims for verification and approves/rejects
//   - lecturer tracks claim progress and downloads evidence

type IClaimUseCase interface {
	NewClaimTemplate() entities.Claim
	Submit(ctx context.Context, candidate entities.Claim, attachment *ClaimAttachment) (entities.Claim, error)
	Approve(ctx context.Context, id int) (entities.Claim, error)
	Reject(ctx context.Context, id int) (entities.Claim, error)
	ListForVerification(ctx context.Context) ([]entities.Claim, error)
	ListForTracking(ctx context.Context) ([]entities.Claim, error)
	Download(ctx context.Context, id int) (interfaces.Document, error)
}

type ClaimUseCase struct {
	repo        interfaces.IClaimRepository
	attachments interfaces.IAttachmentStore
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(repo interfaces.IClaimRepository, attachments interfaces.IAttachmentStore) *ClaimUseCase {
	return &ClaimUseCase{repo: repo, attachments: attachments}
}

// NewClaimTemplate returns the empty claim presented by the
// submission form.
func (u *ClaimUseCase) NewClaimTemplate() entities.Claim {
	return entities.Claim{Status: entities.ClaimStatusPending}
}

// Submit validates the candidate, stores the attachment when present
// and inserts the claim as Pending.
//
// Ordering matters: a failed attachment write aborts the submission
// before anything reaches the repository, so no claim ever references
// a document that was not durably stored.
func (u *ClaimUseCase) Submit(ctx context.Context, candidate entities.Claim, attachment *ClaimAttachment) (entities.Claim, error) {
	if violations := ValidateClaim(candidate); len(violations) > 0 {
		return entities.Claim{}, &ValidationError{Fields: violations}
	}

	if attachment != nil {
		ref, err := u.attachments.Store(ctx, attachment.FileName, attachment.Content)
		if err != nil {
			log.Printf("[claims][usecase] attachment store failed lecturer=%q file=%q err=%v", candidate.LecturerName, attachment.FileName, err)
			return entities.Claim{}, err
		}
		candidate.SupportingDocument = ref
	}

	now := time.Now().UTC()
	candidate.ID = 0
	candidate.Status = entities.ClaimStatusPending
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	created, err := u.repo.Insert(ctx, candidate)
	if err != nil {
		return entities.Claim{}, err
	}
	log.Printf("[claims][usecase] submitted claim id=%d lecturer=%q month=%q total=%.2f", created.ID, created.LecturerName, created.ClaimMonth, created.TotalAmount())
	return created, nil
}

func (u *ClaimUseCase) Approve(ctx context.Context, id int) (entities.Claim, error) {
	return u.updateStatus(ctx, id, entities.ClaimStatusApproved)
}

func (u *ClaimUseCase) Reject(ctx context.Context, id int) (entities.Claim, error) {
	return u.updateStatus(ctx, id, entities.ClaimStatusRejected)
}

// updateStatus applies a verification decision. The transition is
// deliberately unguarded with respect to the current status: a claim
// already decided can be decided again.
func (u *ClaimUseCase) updateStatus(ctx context.Context, id int, status entities.ClaimStatus) (entities.Claim, error) {
	if id <= 0 {
		return entities.Claim{}, ErrInvalidClaimID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Claim{}, err
	}
	if updated.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}
	log.Printf("[claims][usecase] claim id=%d status=%s", updated.ID, updated.Status)
	return updated, nil
}

// ListForVerification returns every claim in insertion order for the
// coordinator's verification view.
func (u *ClaimUseCase) ListForVerification(ctx context.Context) ([]entities.Claim, error) {
	return u.repo.All(ctx)
}

// ListForTracking returns every claim in insertion order for the
// lecturer's tracking view. Kept as a separate operation from
// ListForVerification because the two presentation contexts evolve
// independently, even though today they read the same sequence.
func (u *ClaimUseCase) ListForTracking(ctx context.Context) ([]entities.Claim, error) {
	return u.repo.All(ctx)
}

// Download resolves the supporting document of a claim.
//
// The three failure modes are distinct so callers can report them
// apart: unknown claim, claim without a document, and a reference
// whose file is gone from disk.
func (u *ClaimUseCase) Download(ctx context.Context, id int) (interfaces.Document, error) {
	if id <= 0 {
		return interfaces.Document{}, ErrInvalidClaimID
	}

	claim, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return interfaces.Document{}, err
	}
	if claim.ID == 0 {
		return interfaces.Document{}, ErrClaimNotFound
	}
	if !claim.HasSupportingDocument() {
		return interfaces.Document{}, ErrNoSupportingDocument
	}

	doc, err := u.attachments.Resolve(ctx, claim.SupportingDocument)
	if err != nil {
		if errors.Is(err, interfaces.ErrAttachmentNotFound) {
			log.Printf("[claims][usecase] document missing on disk claim_id=%d ref=%q", claim.ID, claim.SupportingDocument)
			return interfaces.Document{}, ErrDocumentFileMissing
		}
		return interfaces.Document{}, err
	}
	return doc, nil
}
