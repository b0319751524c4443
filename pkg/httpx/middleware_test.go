package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opencampus/edutrack/pkg/httpx"
	"github.com/opencampus/edutrack/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "edutrack-test"

var testSecret = []byte("unit-test-secret-do-not-reuse")

func mintToken(t *testing.T, subject, role string) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	token, err := signer.Sign(
		jwtx.NewAccessClaims(subject, role, testIssuer, time.Hour, time.Now().UTC()),
	)
	require.NoError(t, err)
	return token
}

// echoIdentity reports what the middleware attached to the context.
func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"user_id": httpx.UserIDFromContext(r.Context()),
			"role":    httpx.RoleFromContext(r.Context()),
		})
	})
}

func TestAuthnMiddleware(t *testing.T) {
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	handler := httpx.Chain(echoIdentity(), httpx.AuthnMiddleware(verifier))

	t.Run("valid token attaches identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-1", "student"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "user-1", body["user_id"])
		require.Equal(t, "student", body["role"])
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("empty bearer rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with other secret rejected", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte("forged-secret"))
		require.NoError(t, err)
		forged, err := other.Sign(
			jwtx.NewAccessClaims("user-1", "faculty", testIssuer, time.Hour, time.Now().UTC()),
		)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256(testSecret)
		require.NoError(t, err)
		stale, err := signer.Sign(jwtx.NewAccessClaims(
			"user-1", "student", testIssuer, time.Minute, time.Now().UTC().Add(-time.Hour),
		))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+stale)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAnyRole(t *testing.T) {
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)

	protected := func(roles ...string) http.Handler {
		return httpx.Chain(echoIdentity(),
			httpx.AuthnMiddleware(verifier),
			httpx.RequireAnyRole(roles...),
		)
	}

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-1", "student"))
		rec := httptest.NewRecorder()
		protected("student").ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-1", "student"))
		rec := httptest.NewRecorder()
		protected("faculty").ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "forbidden", body.Error)
	})

	t.Run("any of several roles passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-2", "faculty"))
		rec := httptest.NewRecorder()
		protected("student", "faculty").ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated request never reaches authz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		protected("student").ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
