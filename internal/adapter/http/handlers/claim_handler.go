package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	request "lecturer_claims/internal/adapter/http/dto/request"
	response "lecturer_claims/internal/adapter/http/dto/response"
	"lecturer_claims/internal/domain/entities"
	"lecturer_claims/internal/usecase"
	"lecturer_claims/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim payload", http.StatusBadRequest)
)

// ClaimHandler handles HTTP requests for lecturer claims.
//
// Mutating endpoints return a one-shot status message alongside the
// claim; the client shows it once and drops it (flash semantics).

type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// NewClaim returns the empty claim template backing the submission
// form.
func (h *ClaimHandler) NewClaim(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromClaim(h.usecase.NewClaimTemplate()))
}

// SubmitClaim accepts a claim submission, optionally with a
// supporting document under the "supporting_document" form field.
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var payload request.ClaimRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	var attachment *usecase.ClaimAttachment
	if fh, err := c.FormFile("supporting_document"); err == nil && fh != nil && fh.Size > 0 {
		f, err := fh.Open()
		if err != nil {
			log.Printf("[claims][handler] open uploaded file failed name=%q err=%v", fh.Filename, err)
			appErr := pkg.NewDomainError("ATTACHMENT_STORE_FAILED", "Could not read the uploaded document", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		defer f.Close()
		attachment = &usecase.ClaimAttachment{FileName: fh.Filename, Content: f}
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToClaim(), attachment)
	if err != nil {
		appErr := mapClaimError(0, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClaimWithMessage("Claim submitted successfully.", created))
}

// ApproveClaim marks a claim approved.
func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	h.patchClaimStatus(c, h.usecase.Approve, "Claim #%d approved successfully.")
}

// RejectClaim marks a claim rejected.
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.patchClaimStatus(c, h.usecase.Reject, "Claim #%d rejected.")
}

func (h *ClaimHandler) patchClaimStatus(
	c *gin.Context,
	updater func(ctx context.Context, id int) (entities.Claim, error),
	messageFormat string,
) {
	id, ok := claimIDParam(c)
	if !ok {
		return
	}

	claim, err := updater(c.Request.Context(), id)
	if err != nil {
		appErr := mapClaimError(id, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaimWithMessage(fmt.Sprintf(messageFormat, id), claim))
}

// ListForVerification returns every claim for the coordinator view.
func (h *ClaimHandler) ListForVerification(c *gin.Context) {
	claims, err := h.usecase.ListForVerification(c.Request.Context())
	if err != nil {
		appErr := mapClaimError(0, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

// ListForTracking returns every claim for the lecturer view.
func (h *ClaimHandler) ListForTracking(c *gin.Context) {
	claims, err := h.usecase.ListForTracking(c.Request.Context())
	if err != nil {
		appErr := mapClaimError(0, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

// DownloadDocument streams a claim's supporting document with its
// original filename.
func (h *ClaimHandler) DownloadDocument(c *gin.Context) {
	id, ok := claimIDParam(c)
	if !ok {
		return
	}

	doc, err := h.usecase.Download(c.Request.Context(), id)
	if err != nil {
		appErr := mapClaimError(id, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func claimIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_CLAIM_ID", "Invalid claim id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapClaimError(id int, err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		fields := make(map[string]string, len(vErr.Fields))
		for _, f := range vErr.Fields {
			fields[f.Field] = f.Message
		}
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Please correct the highlighted errors.", http.StatusBadRequest).WithDetails(fields)
	case errors.Is(err, usecase.ErrInvalidClaimID):
		return pkg.NewDomainErrorSimple("INVALID_CLAIM_ID", "Invalid claim id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", fmt.Sprintf("Claim #%d not found.", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoSupportingDocument):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", fmt.Sprintf("No supporting document for claim #%d.", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentFileMissing):
		return pkg.NewDomainErrorSimple("DOCUMENT_FILE_MISSING", fmt.Sprintf("Supporting document file is missing for claim #%d.", id), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
