package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/onetech-shop/onetech-backend/internal/auth"
)

// newEchoContext builds an echo context for direct handler invocation.
// Claims, when non-nil, are injected the same way the auth middleware does.
func newEchoContext(
	t *testing.T,
	method, target, body string,
	claims *auth.Claims,
) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}

	if claims != nil {
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return c, rec
}

func userClaims() *auth.Claims {
	return &auth.Claims{UserID: "u1", Email: "user@example.com"}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: "a1", Email: "admin@example.com", IsAdmin: true}
}
