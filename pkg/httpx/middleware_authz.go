package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole gates a route to callers whose role claim is one of the
// permitted values. Must run after AuthnMiddleware, which attaches the
// role to the request context. Pure predicate: no store access.
func RequireAnyRole(permitted ...string) Middleware {
	want := make(map[string]struct{}, len(permitted))
	for _, role := range permitted {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if _, ok := want[role]; !ok {
				writeRoleError(w, permitted...)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// 403 with a JSON body; the header names the roles the route accepts.
func writeRoleError(w http.ResponseWriter, permitted ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+strings.Join(permitted, " ")+`"`)
	WriteError(w, http.StatusForbidden, "forbidden")
}
