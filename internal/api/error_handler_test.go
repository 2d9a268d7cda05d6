package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad error body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, resp.Message
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err         error
		wantCode    int
		wantMessage string
	}{
		{domain.ErrEmptyUserFields, http.StatusBadRequest, "username or email cannot be empty"},
		{domain.ErrInvalidEmail, http.StatusBadRequest, "invalid email format"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{domain.ErrEmailExists, http.StatusBadRequest, "Email already exists"},
		{domain.ErrUsernameExists, http.StatusBadRequest, "Username already exists"},
		{domain.ErrMissingCredentials, http.StatusBadRequest, "Username and password are required"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
		{domain.ErrInvalidTenderData, http.StatusBadRequest, "Invalid tender data"},
		{domain.ErrInvalidTenderStatus, http.StatusBadRequest, "Invalid tender status"},
		{domain.ErrInvalidBidData, http.StatusBadRequest, "Invalid bid data"},
		{domain.ErrTenderNotOpen, http.StatusBadRequest, "Tender is not open for bids"},
		{domain.ErrAlreadyAwarded, http.StatusBadRequest, "Tender already has an awarded bid"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrTenderNotFound, http.StatusNotFound, "Tender not found"},
		{domain.ErrTenderAccess, http.StatusNotFound, "Tender not found or access denied"},
		{domain.ErrBidNotFound, http.StatusNotFound, "Bid not found"},
		{domain.ErrBidAccess, http.StatusNotFound, "Bid not found or access denied"},
	}

	for _, tc := range cases {
		t.Run(tc.wantMessage, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusUnauthorized, "Missing token"))
	if code != http.StatusUnauthorized || msg != "Missing token" {
		t.Fatalf("expected 401 Missing token, got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := render(t, errors.New("connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
