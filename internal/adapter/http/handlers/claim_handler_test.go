package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lecturer_claims/internal/adapter/http/handlers/mocks"
	"lecturer_claims/internal/domain/entities"
	"lecturer_claims/internal/usecase"
	"lecturer_claims/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClaimHandler_SubmitClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with form fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, candidate entities.Claim, _ *usecase.ClaimAttachment) (entities.Claim, error) {
				if candidate.LecturerName != "J.Longmore" || candidate.ClaimMonth != "October 2025" {
					t.Fatalf("unexpected candidate: %+v", candidate)
				}
				candidate.ID = 4
				candidate.Status = entities.ClaimStatusPending
				return candidate, nil
			},
		)

		form := "lecturer_name=J.Longmore&claim_month=October+2025&hours_worked=10&hourly_rate=100"
		req := httptest.NewRequest(http.MethodPost, "/v1/claims", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Claim submitted successfully." {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
		claim, _ := body["claim"].(map[string]any)
		if claim["total_amount"] != 1000.0 || claim["status"] != "Pending" {
			t.Fatalf("unexpected claim body: %s", w.Body.String())
		}
	})

	t.Run("success with multipart attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, candidate entities.Claim, attachment *usecase.ClaimAttachment) (entities.Claim, error) {
				if attachment.FileName != "timesheet.pdf" {
					t.Fatalf("unexpected attachment name: %q", attachment.FileName)
				}
				data, err := io.ReadAll(attachment.Content)
				if err != nil || string(data) != "evidence" {
					t.Fatalf("unexpected attachment content: %q err=%v", data, err)
				}
				candidate.ID = 4
				candidate.Status = entities.ClaimStatusPending
				candidate.SupportingDocument = "abc_timesheet.pdf"
				return candidate, nil
			},
		)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("lecturer_name", "J.Longmore")
		_ = mw.WriteField("claim_month", "October 2025")
		_ = mw.WriteField("hours_worked", "10")
		_ = mw.WriteField("hourly_rate", "100")
		fw, _ := mw.CreateFormFile("supporting_document", "timesheet.pdf")
		_, _ = fw.Write([]byte("evidence"))
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation failure returns field details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Nil()).Return(entities.Claim{}, &usecase.ValidationError{
			Fields: []usecase.FieldError{{Field: "hours_worked", Message: "Hours must be between 1 and 300."}},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", strings.NewReader(`{"lecturer_name":"J.Longmore","claim_month":"October 2025","hours_worked":0,"hourly_rate":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		details, _ := body["details"].(map[string]any)
		if details["hours_worked"] != "Hours must be between 1 and 300." {
			t.Fatalf("expected hours violation in details: %s", w.Body.String())
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestClaimHandler_ApproveReject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.PATCH("/v1/claims/:id/approve", h.ApproveClaim)

		uc.EXPECT().Approve(gomock.Any(), 5).Return(entities.Claim{ID: 5, Status: entities.ClaimStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/5/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Claim #5 approved successfully." {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})

	t.Run("reject success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.PATCH("/v1/claims/:id/reject", h.RejectClaim)

		uc.EXPECT().Reject(gomock.Any(), 5).Return(entities.Claim{ID: 5, Status: entities.ClaimStatusRejected}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/5/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Claim #5 rejected." {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})

	t.Run("approve unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.PATCH("/v1/claims/:id/approve", h.ApproveClaim)

		uc.EXPECT().Approve(gomock.Any(), 999).Return(entities.Claim{}, usecase.ErrClaimNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/999/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Claim #999 not found." {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.PATCH("/v1/claims/:id/approve", h.ApproveClaim)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/abc/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestClaimHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	claims := []entities.Claim{
		{ID: 1, LecturerName: "t.mokoena", HoursWorked: 12, HourlyRate: 450, Status: entities.ClaimStatusPending},
		{ID: 2, LecturerName: "n.khanye", HoursWorked: 8, HourlyRate: 500, Status: entities.ClaimStatusApproved},
	}

	t.Run("verification list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims/verify", h.ListForVerification)

		uc.EXPECT().ListForVerification(gomock.Any()).Return(claims, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["total_amount"] != 5400.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("tracking list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims/track", h.ListForTracking)

		uc.EXPECT().ListForTracking(gomock.Any()).Return(claims, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/track", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClaimHandler_NewClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClaimUseCase(ctrl)
	h := NewClaimHandler(uc)

	r := gin.New()
	r.GET("/v1/claims/new", h.NewClaim)

	uc.EXPECT().NewClaimTemplate().Return(entities.Claim{Status: entities.ClaimStatusPending})

	req := httptest.NewRequest(http.MethodGet, "/v1/claims/new", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "Pending" || body["id"] != 0.0 {
		t.Fatalf("unexpected template: %s", w.Body.String())
	}
}

func TestClaimHandler_DownloadDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims/:id/document", h.DownloadDocument)

		uc.EXPECT().Download(gomock.Any(), 3).Return(interfaces.Document{
			FileName:    "evidence.zip",
			ContentType: "application/zip",
			Content:     []byte("zipbytes"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/3/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "zipbytes" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/zip" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "evidence.zip") {
			t.Fatalf("unexpected disposition: %q", cd)
		}
	})

	t.Run("claim has no document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims/:id/document", h.DownloadDocument)

		uc.EXPECT().Download(gomock.Any(), 7).Return(interfaces.Document{}, usecase.ErrNoSupportingDocument)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/7/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "No supporting document for claim #7." {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})

	t.Run("file missing on disk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.GET("/v1/claims/:id/document", h.DownloadDocument)

		uc.EXPECT().Download(gomock.Any(), 7).Return(interfaces.Document{}, usecase.ErrDocumentFileMissing)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/7/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "DOCUMENT_FILE_MISSING" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
