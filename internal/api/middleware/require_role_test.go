package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRequireRole(t *testing.T, required string, actual interface{}) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/client/tenders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actual != nil {
		c.Set("role", actual)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return RequireRole(required)(next)(c)
}

func TestRequireRole_Match(t *testing.T) {
	if err := runRequireRole(t, "client", "client"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestRequireRole_Mismatch(t *testing.T) {
	cases := []struct {
		name   string
		actual interface{}
	}{
		{"other role", "contractor"},
		{"no role", nil},
		{"non-string role", 42},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := runRequireRole(t, "client", tc.actual)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if he.Code != http.StatusUnauthorized || he.Message != "Unauthorized" {
				t.Fatalf("expected 401 Unauthorized, got %d %v", he.Code, he.Message)
			}
		})
	}
}
