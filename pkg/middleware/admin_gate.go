package middleware

import "net/http"

// RefreshCookieName is the cookie carrying the long-lived refresh token.
const RefreshCookieName = "refreshToken"

// loginPath is exempt from the gate to avoid a redirect loop.
const loginPath = "/admin/login"

// AdminGate is the coarse perimeter around the admin pages: it checks only
// for the presence of the refresh-token cookie and redirects to the login
// page when it is missing. No signature or expiry validation happens here;
// each protected API endpoint performs its own bearer-token check
// (RequireAdmin), so the two failure domains stay separate: this layer
// redirects, that layer answers with a JSON error.
func AdminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == loginPath {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(RefreshCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, loginPath, http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
