package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"familykitchen/internal/domain"
	"familykitchen/internal/middleware"
	"familykitchen/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// Envelope mirrors the JSON body every endpoint answers with.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// SessionFor signs a session cookie for u.
func SessionFor(t *testing.T, tokens *jwt.Service, u *domain.User) *http.Cookie {
	t.Helper()
	token, err := tokens.GenerateToken(u.ID, u.IsGuest)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// DoJSON sends body encoded as JSON; a nil body sends no content.
func DoJSON(t *testing.T, h http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Decode parses the envelope and, when out is non-nil, its data field.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out any) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil {
		require.True(t, env.Success, w.Body.String())
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

// ErrorCode returns the error code of a failed response.
func ErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	env := Decode(t, w, nil)
	require.False(t, env.Success, w.Body.String())
	require.NotNil(t, env.Error)
	return env.Error.Code
}
