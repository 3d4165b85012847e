package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/pkg/ctxutil"
)

//go:generate moq -out vocab_service_mock_test.go -pkg rest . vocabService
//go:generate moq -out flashcard_service_mock_test.go -pkg rest . flashcardService
//go:generate moq -out progress_service_mock_test.go -pkg rest . progressService
//go:generate moq -out study_service_mock_test.go -pkg rest . studyService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out user_service_mock_test.go -pkg rest . userService

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	ctx = ctxutil.WithUserID(ctx, p.UserID)
	ctx = ctxutil.WithUserEmail(ctx, p.Email)
	return ctxutil.WithUserRole(ctx, p.Role.String())
}

func adminPrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.New(), Email: "admin@example.com", Role: domain.UserRoleAdmin}
}

func learnerPrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.New(), Email: "learner@example.com", Role: domain.UserRoleUser}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return m
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rec.Code, rec.Body.String())
	}
}

func assertErrorMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()

	if got := decodeBody(t, rec)["error"]; got != want {
		t.Errorf("expected error %q, got %v", want, got)
	}
}
